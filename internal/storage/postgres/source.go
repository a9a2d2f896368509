// Package postgres implements the optional remote catalog source.
//
// The remote table is loosely shaped: most columns are nullable and some
// carry alternate names (slug vs id, title vs name, image_url vs image).
// Fetches therefore return catalog.Record values with only the columns that
// were actually present, and the caller runs them through a Normalizer.
package postgres

import (
	"context"

	"github.com/go-faster/errors"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pixora/storefront/internal/domain/catalog"
)

const (
	fetchTopSQL = `SELECT id, slug, name, title, category, price, image, image_url, description, highlights
		FROM products ORDER BY created_at DESC LIMIT $1`

	fetchByIDSQL = `SELECT id, slug, name, title, category, price, image, image_url, description, highlights
		FROM products WHERE id = $1 OR slug = $1`
)

// NewPool creates a pgxpool.Pool with shopspring/decimal support registered
// for NUMERIC columns.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse database config")
	}

	cfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "create connection pool")
	}
	return pool, nil
}

var _ catalog.Source = (*CatalogSource)(nil)

// CatalogSource implements catalog.Source backed by PostgreSQL.
type CatalogSource struct {
	pool *pgxpool.Pool
}

// NewCatalogSource returns a CatalogSource using the given pool.
func NewCatalogSource(pool *pgxpool.Pool) *CatalogSource {
	return &CatalogSource{pool: pool}
}

// FetchTop returns up to limit of the most recent remote records.
func (s *CatalogSource) FetchTop(ctx context.Context, limit int) ([]catalog.Record, error) {
	rows, err := s.pool.Query(ctx, fetchTopSQL, limit)
	if err != nil {
		return nil, errors.Wrap(err, "fetch top products")
	}
	return pgx.CollectRows(rows, scanRecord)
}

// FetchByID returns the remote record matching the given id or slug.
// catalog.ErrNotFound is returned when no row matches.
func (s *CatalogSource) FetchByID(ctx context.Context, id string) (catalog.Record, error) {
	rows, err := s.pool.Query(ctx, fetchByIDSQL, id)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch product %q", id)
	}

	rec, err := pgx.CollectExactlyOneRow(rows, scanRecord)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, errors.Wrapf(err, "fetch product %q", id)
	}
	return rec, nil
}

// scanRecord builds a Record holding only the non-NULL columns of the row.
func scanRecord(row pgx.CollectableRow) (catalog.Record, error) {
	var (
		id, slug, name, title, category, image, imageURL, description *string

		price      *decimal.Decimal
		highlights []string
	)
	if err := row.Scan(
		&id, &slug, &name, &title, &category,
		&price, &image, &imageURL, &description, &highlights,
	); err != nil {
		return nil, err
	}

	rec := catalog.Record{}
	putString(rec, "id", id)
	putString(rec, "slug", slug)
	putString(rec, "name", name)
	putString(rec, "title", title)
	putString(rec, "category", category)
	putString(rec, "image", image)
	putString(rec, "image_url", imageURL)
	putString(rec, "description", description)
	if price != nil {
		rec["price"] = *price
	}
	if highlights != nil {
		rec["highlights"] = highlights
	}
	return rec, nil
}

func putString(rec catalog.Record, key string, v *string) {
	if v != nil {
		rec[key] = *v
	}
}
