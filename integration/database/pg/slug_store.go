package pg

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var tableNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DBTX is the subset of *pgxpool.Pool, *pgx.Conn and pgx.Tx that SlugStore needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// SlugStore keeps slug reservations in a table whose primary key is
// (scope, slug). It implements slug.Store.
type SlugStore struct {
	db    DBTX
	table string
}

// NewSlugStore creates a SlugStore writing to table. An empty name means
// "slugs", the table created by Migrate.
func NewSlugStore(db DBTX, table string) (*SlugStore, error) {
	if table == "" {
		table = "slugs"
	}
	if !tableNameRegex.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}
	return &SlugStore{db: db, table: pgx.Identifier{table}.Sanitize()}, nil
}

// Reserve inserts the slug and reports whether the row was new.
func (s *SlugStore) Reserve(ctx context.Context, scope, slug string) (bool, error) {
	q := `INSERT INTO ` + s.table + ` (scope, slug) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	tag, err := s.conn(ctx).Exec(ctx, q, scope, slug)
	if err != nil {
		return false, fmt.Errorf("pg: reserve slug: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Release deletes the slug row.
func (s *SlugStore) Release(ctx context.Context, scope, slug string) error {
	q := `DELETE FROM ` + s.table + ` WHERE scope = $1 AND slug = $2`
	if _, err := s.conn(ctx).Exec(ctx, q, scope, slug); err != nil {
		return fmt.Errorf("pg: release slug: %w", err)
	}
	return nil
}

func (s *SlugStore) conn(ctx context.Context) DBTX {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return s.db
}
