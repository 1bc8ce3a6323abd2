package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx behavior the query layer needs. Both *pgxpool.Pool
// and pgx.Tx satisfy it, so queries run the same inside and outside a
// transaction scope.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries bundles every SQL statement the API issues.
type Queries struct {
	db DBTX
}

// New wraps a connection source into a Queries handle.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Category is a labeled grouping of questions.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Question is one quiz item. Category references Category.ID.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int32  `json:"difficulty"`
	Category   int64  `json:"category"`
}
