package catalog

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product represents a catalog item available for purchase.
type Product struct {
	ID          string
	Name        string
	Category    string
	Price       decimal.Decimal
	Image       string
	Description string
	Highlights  []string
}

// Patch holds a partial product update. Nil fields are left unchanged.
type Patch struct {
	Name        *string
	Category    *string
	Price       *decimal.Decimal
	Image       *string
	Description *string
	Highlights  *[]string
}

// Snapshotter persists and restores full catalog snapshots. The snapshot is a
// convenience cache, not a source of truth: callers treat any Load error as
// "no snapshot" and log (but do not propagate) Save errors.
type Snapshotter interface {
	Load() ([]Product, error)
	Save(products []Product) error
}

// Source supplies candidate product records from an external read-only
// catalog. Records are loosely shaped; run them through a Normalizer before
// handing them to the Store.
type Source interface {
	FetchTop(ctx context.Context, limit int) ([]Record, error)
	FetchByID(ctx context.Context, id string) (Record, error)
}
