package recipes

import (
	"context"

	"github.com/google/uuid"
)

// Repository stores recipes.
type Repository interface {
	Create(ctx context.Context, recipe *Recipe) (*Recipe, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Recipe, error)
}
