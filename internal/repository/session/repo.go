// Package session persists search session state in the KV store. State is
// written with the validity-window TTL so the store itself reaps stale
// entries; the use case layer re-validates age and page on restore.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/palsson-archive/leit/internal/db"
	"github.com/palsson-archive/leit/internal/domain"
	domses "github.com/palsson-archive/leit/internal/domain/search/session"
)

// store is the consumer interface for session persistence (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Repo implements usecase/session.Repository.
type Repo struct {
	store  store
	prefix string
}

// New creates a session repository. prefix namespaces keys in a shared store.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Save stores the state under the caller's session id with the window TTL.
func (r *Repo) Save(ctx context.Context, id string, st domses.State) error {
	data, err := json.Marshal(toDTO(st))
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	if err := r.store.SetWithTTL(ctx, r.key(id), data, domses.TTL); err != nil {
		return fmt.Errorf("save session state: %w", err)
	}
	return nil
}

// Load reads the state stored for the caller's session id.
// Missing and corrupt entries both surface as domain.ErrSessionNotFound:
// the distinction does not matter to a best-effort cache.
func (r *Repo) Load(ctx context.Context, id string) (domses.State, error) {
	data, err := r.store.Get(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domses.Empty(), domain.ErrSessionNotFound
		}
		return domses.Empty(), fmt.Errorf("load session state: %w", err)
	}

	var dto stateDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return domses.Empty(), fmt.Errorf("%w: corrupt payload", domain.ErrSessionNotFound)
	}
	return fromDTO(dto), nil
}

// Delete discards the stored state for the caller's session id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.store.Del(ctx, r.key(id)); err != nil {
		return fmt.Errorf("delete session state: %w", err)
	}
	return nil
}

func (r *Repo) key(id string) string {
	return r.prefix + "session:" + id
}
