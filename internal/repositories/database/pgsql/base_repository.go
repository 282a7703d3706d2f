package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories.
// Every operation in this application is a single statement, so there are no
// shared transaction helpers here; repositories use the pool directly.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
