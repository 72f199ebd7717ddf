package accounts

import "context"

// Repository is the storage contract for accounts. Implementations must bind
// all inputs as query parameters, never by string concatenation.
type Repository interface {
	// Create inserts the account and fills in CreatedAt. A duplicate email
	// surfaces as common.ErrorAlreadyExists, whether it was caught by a
	// pre-check or by the unique constraint racing a concurrent insert.
	Create(ctx context.Context, account *Account) (*Account, error)

	// GetByEmail returns the full record, hash included, for credential
	// verification. common.ErrorNotFound when no such account exists.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// GetByID looks up by primary key and returns the public projection
	// only; the password hash is not selected at all.
	GetByID(ctx context.Context, id string) (*AccountPublic, error)
}
