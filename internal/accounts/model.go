package accounts

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered credential record. Accounts are immutable once
// created: there is no update path, and identifiers are never reused.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
