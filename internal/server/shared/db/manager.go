// Package db wires the PostgreSQL connection pool, repositories, and schema
// migrations together behind a single manager.
package db

import (
	"context"
	"database/sql"

	"github.com/dsmirnov/authgate/internal/server/accounts"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Accounts() accounts.Repository
}
