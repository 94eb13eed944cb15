package chi

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/palsson-archive/leit/internal/db/memory"
	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/i18n"
	"github.com/palsson-archive/leit/internal/index"
	sessionrepo "github.com/palsson-archive/leit/internal/repository/session"
	healthuc "github.com/palsson-archive/leit/internal/usecase/health"
	searchuc "github.com/palsson-archive/leit/internal/usecase/search"
	sessionuc "github.com/palsson-archive/leit/internal/usecase/session"
)

// fixtureDocs is a small archive slice exercising types, years, and
// bilingual titles.
func fixtureDocs() []domain.Document {
	return []domain.Document{
		domain.Reconstruct(
			domain.NewBilingualText("Helicopter Landing", "Þyrlulending"),
			"a plaster sculpture about a helicopter landing in reykjavík",
			domain.NewPlainText("Plaster work"),
			domain.TypeWork, 1973, "/works.html#thyrlulending", "works",
		),
		domain.Reconstruct(
			domain.NewPlainText("Sound Sculpture"),
			"an early sound sculpture exhibited at the living art museum",
			domain.NewPlainText("Sound work"),
			domain.TypeWork, 1971, "/works.html#sound-sculpture", "works",
		),
		domain.Reconstruct(
			domain.NewPlainText("SÚM Group Show"),
			"group exhibition with the súm collective",
			domain.NewPlainText("Group exhibition"),
			domain.TypeGroupExhibition, 1969, "/exhibitions.html#sum", "exhibitions",
		),
	}
}

type testEnv struct {
	server *httptest.Server
}

func newTestEnv(t *testing.T, available bool) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	col := index.NewCollection(fixtureDocs())

	store := memory.NewStore()
	t.Cleanup(store.Close)

	searchSvc := searchuc.New(col, logger)
	sessionSvc := sessionuc.New(sessionrepo.New(store, "leit:"), logger)
	healthSvc := healthuc.New(store, nil)

	status := index.Status{
		Available: available,
		Documents: col.Len(),
		LoadedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if !available {
		status = index.Status{}
	}

	srv := NewServer(searchSvc, sessionSvc, healthSvc, i18n.NewResolver(i18n.English), status, logger)

	r := chi.NewRouter()
	srv.Routes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return &testEnv{server: ts}
}
