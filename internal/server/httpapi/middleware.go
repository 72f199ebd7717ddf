package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dsmirnov/authgate/internal/common"
)

type ctxKey string

const accountIDKey ctxKey = "accountID"

// AccountIDFromContext returns the verified account id attached by the
// access-gate middleware.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok
}

// requireAuth is the access gate for protected endpoints. It extracts the
// bearer token from the authorization header, verifies it, and attaches the
// subject id to the request context; on any failure the request is rejected
// with 401 and the wrapped handler never runs.
//
// The "Bearer " scheme prefix (case-sensitive, single space) is optional:
// clients sending the bare token are accepted as well.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get(common.AuthorizationHeaderName)
		if header == "" {
			writeError(w, http.StatusUnauthorized, "no token provided")
			return
		}

		token := strings.TrimPrefix(header, common.BearerPrefix)

		accountID, err := s.tokens.Verify(token)
		if err != nil {
			s.logger.Warn(r.Context(), "rejected request with invalid token", "path", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
