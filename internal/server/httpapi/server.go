// Package httpapi exposes the account flows over a JSON HTTP API and gates
// the protected endpoints behind bearer-token authentication.
package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/dsmirnov/authgate/internal/logging"
	"github.com/dsmirnov/authgate/internal/server/accounts"
	"github.com/dsmirnov/authgate/internal/server/auth"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address  string
	logger   logging.Logger
	accounts *accounts.Service
	tokens   *auth.TokenIssuer
	db       *sql.DB
}

func NewServer(address string, l logging.Logger, svc *accounts.Service, tokens *auth.TokenIssuer, db *sql.DB) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		accounts: svc,
		tokens:   tokens,
		db:       db,
	}
}

// Routes builds the request multiplexer. Registration and login are open;
// the profile endpoint sits behind the access-gate middleware.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.Handle("GET /profile", s.requireAuth(http.HandlerFunc(s.handleProfile)))
	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
