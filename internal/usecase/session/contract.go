package session

import (
	"context"

	domses "github.com/palsson-archive/leit/internal/domain/search/session"
)

// Repository defines the storage contract for session state.
type Repository interface {
	Save(ctx context.Context, id string, st domses.State) error
	Load(ctx context.Context, id string) (domses.State, error)
	Delete(ctx context.Context, id string) error
}
