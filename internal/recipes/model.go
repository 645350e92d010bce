// Package recipes holds the per-account recipe collection served behind the
// authentication gateway.
package recipes

import "github.com/google/uuid"

// Recipe is a resource owned by a single account.
type Recipe struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}
