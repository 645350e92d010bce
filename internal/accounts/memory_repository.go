package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rvault/recipevault/internal/common"
)

// MemoryRepository is a Repository backed by in-process maps, indexed by
// email and by id. Reads run concurrently; the check-then-insert in Create
// executes under the write lock, so the uniqueness invariant holds under
// concurrent registration.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*Account
	byID    map[uuid.UUID]*Account
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail: make(map[string]*Account),
		byID:    make(map[uuid.UUID]*Account),
	}
}

// Create stores the account, assigning a fresh identifier and creation time.
// Returns common.ErrEmailAlreadyExists when the email is already registered.
func (r *MemoryRepository) Create(ctx context.Context, account *Account) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return nil, common.ErrEmailAlreadyExists
	}

	stored := &Account{
		ID:           uuid.New(),
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		CreatedAt:    time.Now(),
	}
	r.byEmail[stored.Email] = stored
	r.byID[stored.ID] = stored

	return stored, nil
}

// GetByEmail returns the account registered under email, or common.ErrorNotFound.
func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return account, nil
}

// GetByID returns the account with the given identifier, or common.ErrorNotFound.
func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return account, nil
}
