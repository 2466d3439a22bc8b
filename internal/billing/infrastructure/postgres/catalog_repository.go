package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	billing "theater-billing/internal/billing/domain"
	"theater-billing/internal/observability/metrics"
)

const defaultPlaysTable = "plays"

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

// CatalogRepository reads the play catalog from postgres.
type CatalogRepository struct {
	db    *sql.DB
	table string
}

// CatalogOption configures the repository.
type CatalogOption func(*CatalogRepository)

// WithPlaysTable overrides the plays table name.
func WithPlaysTable(table string) CatalogOption {
	return func(r *CatalogRepository) {
		if table != "" {
			r.table = table
		}
	}
}

// NewCatalogRepository constructs a repository.
func NewCatalogRepository(db *sql.DB, opts ...CatalogOption) (*CatalogRepository, error) {
	if db == nil {
		return nil, errors.New("catalog repo: nil db")
	}
	r := &CatalogRepository{db: db, table: defaultPlaysTable}
	for _, opt := range opts {
		opt(r)
	}
	if !tableNamePattern.MatchString(r.table) {
		return nil, fmt.Errorf("catalog repo: invalid table name %q", r.table)
	}
	return r, nil
}

// Catalog loads every play.
func (r *CatalogRepository) Catalog(ctx context.Context) (billing.Catalog, error) {
	catalog, err := r.load(ctx)
	if err != nil {
		metrics.IncCatalogLoad("postgres", metrics.ResultError)
		return nil, err
	}
	metrics.IncCatalogLoad("postgres", metrics.ResultSuccess)
	return catalog, nil
}

func (r *CatalogRepository) load(ctx context.Context) (billing.Catalog, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
SELECT id, name, play_type
FROM %s
ORDER BY id ASC`, r.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	catalog := billing.Catalog{}
	for rows.Next() {
		var id, name, playType string
		if err := rows.Scan(&id, &name, &playType); err != nil {
			return nil, err
		}
		catalog[id] = billing.Play{Name: name, Type: billing.PlayType(playType)}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Save upserts a play.
func (r *CatalogRepository) Save(ctx context.Context, playID string, play billing.Play) error {
	if playID == "" {
		return errors.New("catalog repo: empty play id")
	}
	_, err := r.db.ExecContext(ctx, fmt.Sprintf(`
INSERT INTO %s (id, name, play_type, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (id)
DO UPDATE SET name = EXCLUDED.name, play_type = EXCLUDED.play_type, updated_at = NOW()`, r.table),
		playID, play.Name, string(play.Type))
	return err
}
