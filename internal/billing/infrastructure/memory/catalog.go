package memory

import (
	"context"
	"errors"
	"sync"

	billing "theater-billing/internal/billing/domain"
)

// CatalogRepository is an in-memory play catalog.
type CatalogRepository struct {
	mu    sync.RWMutex
	plays billing.Catalog
}

// NewCatalogRepository constructs a repository seeded with plays.
func NewCatalogRepository(plays billing.Catalog) *CatalogRepository {
	repo := &CatalogRepository{plays: make(billing.Catalog, len(plays))}
	for id, play := range plays {
		repo.plays[id] = play
	}
	return repo
}

// Catalog returns a copy of the stored plays.
func (r *CatalogRepository) Catalog(ctx context.Context) (billing.Catalog, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(billing.Catalog, len(r.plays))
	for id, play := range r.plays {
		out[id] = play
	}
	return out, nil
}

// Save adds or replaces a play.
func (r *CatalogRepository) Save(ctx context.Context, playID string, play billing.Play) error {
	_ = ctx
	if playID == "" {
		return errors.New("catalog repo: empty play id")
	}
	r.mu.Lock()
	r.plays[playID] = play
	r.mu.Unlock()
	return nil
}
