package recipes

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-process Repository indexed by owner, so listing
// a caller's recipes does not scan other accounts' data.
type MemoryRepository struct {
	mu      sync.RWMutex
	byOwner map[uuid.UUID][]*Recipe
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byOwner: make(map[uuid.UUID][]*Recipe)}
}

// Create stores the recipe, assigning a fresh identifier.
func (r *MemoryRepository) Create(ctx context.Context, recipe *Recipe) (*Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &Recipe{
		ID:      uuid.New(),
		OwnerID: recipe.OwnerID,
		Name:    recipe.Name,
	}
	r.byOwner[stored.OwnerID] = append(r.byOwner[stored.OwnerID], stored)

	return stored, nil
}

// ListByOwner returns the recipes owned by ownerID, in insertion order.
// An account without recipes gets an empty list, not an error.
func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := r.byOwner[ownerID]
	out := make([]*Recipe, len(owned))
	copy(out, owned)
	return out, nil
}
