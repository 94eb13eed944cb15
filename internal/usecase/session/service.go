// Package session handles saving and restoring transient search state.
// Every failure path degrades to the empty state: a lost UX cache must never
// surface as an error to the visitor.
package session

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/filter"
	"github.com/palsson-archive/leit/internal/domain/search/result"
	domses "github.com/palsson-archive/leit/internal/domain/search/session"
	"github.com/palsson-archive/leit/internal/metrics"
)

// Service saves and restores search session state.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// New creates a session service.
func New(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// WithClock overrides the time source. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Save snapshots a successful search for the given caller and page.
// Persistence failures are logged, not returned: the search itself succeeded.
func (s *Service) Save(ctx context.Context, id, query string, f filter.Filters, results []result.Result, page string) {
	st := domses.New(query, f, results, page, s.now())
	if err := s.repo.Save(ctx, id, st); err != nil {
		s.logger.Warn("failed to save session state",
			zap.String("page", page), zap.Error(err))
	}
}

// Restore returns the stored state when it is still inside the validity
// window and was saved on the same page; otherwise the stored state is
// discarded and the empty state returned.
func (s *Service) Restore(ctx context.Context, id, page string) domses.State {
	st, err := s.repo.Load(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.logger.Warn("failed to load session state", zap.Error(err))
		}
		metrics.SessionRestoresTotal.WithLabelValues("missing").Inc()
		return domses.Empty()
	}

	if err := st.ValidFor(page, s.now()); err != nil {
		outcome := "expired"
		if errors.Is(err, domain.ErrPageMismatch) {
			outcome = "mismatch"
		}
		metrics.SessionRestoresTotal.WithLabelValues(outcome).Inc()

		if delErr := s.repo.Delete(ctx, id); delErr != nil {
			s.logger.Debug("failed to discard stale session state", zap.Error(delErr))
		}
		return domses.Empty()
	}

	metrics.SessionRestoresTotal.WithLabelValues("ok").Inc()
	return st
}
