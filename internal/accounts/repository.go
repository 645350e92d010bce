// Package accounts owns account records: storage, lookup, and credential
// verification against stored password hashes.
package accounts

import (
	"context"

	"github.com/google/uuid"
)

// Repository stores account records.
//
// Create must perform its uniqueness check and insert atomically: two
// concurrent Create calls with the same email must yield exactly one success
// and one common.ErrEmailAlreadyExists. Email comparison is case-sensitive.
type Repository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
}
