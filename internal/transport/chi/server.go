package chi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/filter"
	"github.com/palsson-archive/leit/internal/i18n"
	"github.com/palsson-archive/leit/internal/index"
	healthuc "github.com/palsson-archive/leit/internal/usecase/health"
	searchuc "github.com/palsson-archive/leit/internal/usecase/search"
	sessionuc "github.com/palsson-archive/leit/internal/usecase/session"
)

// Server is the HTTP API for the archive search engine.
type Server struct {
	search   *searchuc.Service
	sessions *sessionuc.Service
	health   *healthuc.Service
	lang     *i18n.Resolver
	status   index.Status
	logger   *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	sessions *sessionuc.Service,
	health *healthuc.Service,
	lang *i18n.Resolver,
	status index.Status,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:   search,
		sessions: sessions,
		health:   health,
		lang:     lang,
		status:   status,
		logger:   logger,
	}
}

// Routes mounts the API handlers on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/search", s.handleSearch)
	r.Get("/api/session", s.handleSession)
	r.Get("/api/index/status", s.handleStatus)
	r.Get("/healthz", s.handleHealth)
}

// handleSearch handles GET /api/search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !s.status.Available {
		writeError(w, http.StatusServiceUnavailable, codeIndexUnavailable, "search index is unavailable")
		return
	}

	q := r.URL.Query()
	lang := s.lang.Resolve(r)

	f, err := filtersFromQuery(r)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFilter) {
			writeError(w, http.StatusBadRequest, codeInvalidFilter, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	rawQuery := q.Get("q")
	results := s.search.Search(r.Context(), rawQuery, f)

	if sid, page := q.Get("sid"), q.Get("page"); sid != "" && page != "" {
		s.sessions.Save(r.Context(), sid, rawQuery, f, results, page)
	}

	resp := SearchResponse{
		Query:   rawQuery,
		Lang:    lang,
		Count:   len(results),
		Results: presentResults(results, rawQuery, lang),
	}
	if len(results) > 0 {
		doc := results[0].Document()
		resp.Top = doc.URL()
	} else {
		resp.Message = i18n.NoResultsMessage(lang)
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleSession handles GET /api/session. Restoration is best effort:
// missing, expired, or mismatched state comes back as restored=false.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sid, page := q.Get("sid"), q.Get("page")
	if sid == "" || page == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "sid and page are required")
		return
	}
	lang := s.lang.Resolve(r)

	st := s.sessions.Restore(r.Context(), sid, page)
	if st.IsEmpty() {
		writeJSON(w, http.StatusOK, SessionResponse{Restored: false})
		return
	}

	f := st.Filters()
	savedAt := st.SavedAt()
	writeJSON(w, http.StatusOK, SessionResponse{
		Restored: true,
		Query:    st.Query(),
		Page:     st.Page(),
		SavedAt:  &savedAt,
		Filters: &FiltersDTO{
			Type:        f.Type(),
			YearMax:     f.YearMax(),
			Medium:      f.Medium(),
			Institution: f.Institution(),
		},
		Results: presentResults(st.Results(), st.Query(), lang),
	})
}

// handleStatus handles GET /api/index/status.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Available: s.status.Available,
		Documents: s.status.Documents,
		LoadedAt:  s.status.LoadedAt,
	})
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

func filtersFromQuery(r *http.Request) (filter.Filters, error) {
	q := r.URL.Query()

	yearMax := 0
	if raw := q.Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return filter.Filters{}, errors.New("year must be an integer")
		}
		yearMax = y
	}

	return filter.New(q.Get("type"), yearMax, q.Get("medium"), q.Get("institution"))
}
