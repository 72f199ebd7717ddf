// Package accounts holds the account model, the storage contract, and the
// registration/login/profile flows built on top of it.
package accounts

import "time"

// Account is the persisted record. PasswordHash never leaves this package
// and the auth hasher; everything returned to transports is AccountPublic.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// AccountPublic is the externally visible projection of an Account.
type AccountPublic struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the account stripped of its credential material.
func (a *Account) Public() *AccountPublic {
	return &AccountPublic{ID: a.ID, Email: a.Email, CreatedAt: a.CreatedAt}
}
