package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Alias maps a user-facing place name to the query sent to the weather provider.
type Alias struct {
	Alias string `json:"alias"`
	Query string `json:"query"`
}

// Repository provides database access for place alias reference data.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// LookupAlias returns the provider query for alias. Matching ignores case and
// surrounding whitespace. found is false when no row matches.
func (r *Repository) LookupAlias(ctx context.Context, alias string) (string, bool, error) {
	const q = `
		SELECT query
		FROM place_aliases
		WHERE alias = $1
	`

	var query string
	if err := r.q.QueryRow(ctx, q, normalize(alias)).Scan(&query); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("querying alias %s: %w", alias, err)
	}

	return query, true, nil
}

// UpsertAlias inserts or replaces the query for alias.
func (r *Repository) UpsertAlias(ctx context.Context, alias, query string) error {
	const q = `
		INSERT INTO place_aliases (alias, query, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (alias) DO UPDATE
		SET query      = EXCLUDED.query,
		    updated_at = EXCLUDED.updated_at
	`

	if _, err := r.q.Exec(ctx, q, normalize(alias), strings.TrimSpace(query)); err != nil {
		return fmt.Errorf("upserting alias %s: %w", alias, err)
	}

	return nil
}

// ListAliases returns every alias ordered by name.
func (r *Repository) ListAliases(ctx context.Context) ([]Alias, error) {
	const q = `
		SELECT alias, query
		FROM place_aliases
		ORDER BY alias
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying aliases: %w", err)
	}
	defer rows.Close()

	var results []Alias
	for rows.Next() {
		var a Alias
		if err := rows.Scan(&a.Alias, &a.Query); err != nil {
			return nil, fmt.Errorf("scanning alias row: %w", err)
		}
		results = append(results, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating alias rows: %w", err)
	}

	return results, nil
}

func normalize(alias string) string {
	return strings.ToLower(strings.TrimSpace(alias))
}
