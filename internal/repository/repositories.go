// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries used to fetch, persist and delete
// authors and posts, keeping SQL out of the service layer. Missing rows
// are returned as pgx.ErrNoRows tagged with their table (sqlerr.WithTable)
// so the global error handler can name the entity that was not found.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of *pgxpool.Pool the repositories use.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Author *AuthorRepository
	Post   *PostRepository
}

// NewRepositories constructs the repository container on top of db,
// normally the server's connection pool.
func NewRepositories(db Querier) *Repositories {
	return &Repositories{
		Author: NewAuthorRepository(db),
		Post:   NewPostRepository(db),
	}
}
