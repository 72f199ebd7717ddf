// Package auth implements the credential primitives of the server: one-way
// password hashing and signed access tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dsmirnov/authgate/internal/common"
)

// ErrEmptySecret is returned by NewTokenIssuer when no signing secret is
// configured. It is a construction-time error so that a misconfigured server
// fails at startup rather than on the first login.
var ErrEmptySecret = errors.New("token signing secret is empty")

// TokenIssuer mints and verifies stateless HS256 access tokens. The account
// id travels in the registered "sub" claim; validity is bounded by "iat" and
// "exp". An issuer is safe for concurrent use: it is read-only after
// construction.
type TokenIssuer struct {
	secretKey []byte
	validity  time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given secret and token
// validity. An empty secret is rejected; a non-positive validity falls back
// to one hour.
func NewTokenIssuer(secretKey string, validity time.Duration) (*TokenIssuer, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	if validity <= 0 {
		validity = time.Hour
	}
	return &TokenIssuer{secretKey: []byte(secretKey), validity: validity}, nil
}

// Issue signs a token for the given subject (account id), expiring exactly
// one validity period after issuance.
func (i *TokenIssuer) Issue(subjectID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
	})

	return token.SignedString(i.secretKey)
}

// Verify validates the token's signature and expiry and returns the subject
// id. Every failure mode (bad signature, malformed token, wrong algorithm,
// expired) collapses into common.ErrInvalidToken; callers never learn which.
func (i *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
