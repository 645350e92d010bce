package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/rvault/recipevault/internal/common"
	"github.com/rvault/recipevault/internal/password"
)

// Service performs account registration and credential verification.
// Plaintext passwords never reach the Repository: only hashes are stored.
type Service struct {
	repo   Repository
	hasher password.Hasher
}

// NewService constructs a Service around a repository and a password hasher.
func NewService(repo Repository, hasher password.Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Register hashes the password and creates a new account. Returns
// common.ErrEmailAlreadyExists when the email is taken.
func (s *Service) Register(ctx context.Context, email string, pw []byte) (*Account, error) {
	hash, err := s.hasher.Hash(pw)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account, err := s.repo.Create(ctx, &Account{Email: email, PasswordHash: hash})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// VerifyCredentials looks up the account by email and checks the candidate
// password against the stored hash. Failures are distinguishable to the
// caller (common.ErrEmailNotFound vs common.ErrWrongPassword); user-facing
// surfaces must collapse the two, see gateway.PublicMessage.
func (s *Service) VerifyCredentials(ctx context.Context, email string, candidate []byte) (*Account, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrEmailNotFound
		}
		return nil, common.ErrorInternal
	}

	ok, err := s.hasher.Compare(account.PasswordHash, candidate)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrWrongPassword
	}

	return account, nil
}
