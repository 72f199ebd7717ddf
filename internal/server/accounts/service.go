package accounts

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dsmirnov/authgate/internal/common"
	"github.com/dsmirnov/authgate/internal/server/auth"
)

// Service implements the account flows: registration, login, and profile
// lookup. It owns no state beyond its injected collaborators and is safe for
// concurrent use.
type Service struct {
	repo   Repository
	tokens *auth.TokenIssuer
}

func NewService(repo Repository, tokens *auth.TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates a new account for the given credentials. The only write
// happens after validation, the duplicate pre-check, and hashing all pass;
// every failure path leaves the store untouched.
func (s *Service) Register(ctx context.Context, email, password string) (*AccountPublic, error) {

	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	account := &Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	// The pre-check above races concurrent registrations; the unique
	// constraint on email is the authority and reports the loser here.
	account, err = s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return account.Public(), nil
}

// Login verifies the credentials and returns a signed access token. A missing
// account and a wrong password produce the same common.ErrorUnauthorized so
// that callers cannot probe which emails are registered.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {

	if email == "" || password == "" {
		return "", common.ErrorValidation
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Profile returns the public projection for an authenticated account id.
// A verified token whose subject no longer resolves (account removed out of
// band) yields common.ErrorNotFound.
func (s *Service) Profile(ctx context.Context, id string) (*AccountPublic, error) {

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}
