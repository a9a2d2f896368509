// Package bolt persists catalog snapshots to a local bbolt file.
//
// The snapshot is a single key holding the full product list, written on
// every catalog mutation and read once at startup. It is a convenience
// cache: callers fall back to the seed list whenever Load fails.
package bolt

import (
	"time"

	"github.com/go-faster/errors"
	bbolt "go.etcd.io/bbolt"

	"github.com/pixora/storefront/internal/domain/catalog"
)

var (
	bucketName  = []byte("catalog")
	productsKey = []byte("products")
)

// ErrNoSnapshot is returned by Load when no snapshot has been written yet.
var ErrNoSnapshot = errors.New("no catalog snapshot")

var _ catalog.Snapshotter = (*CatalogStore)(nil)

// CatalogStore implements catalog.Snapshotter on a bbolt database.
type CatalogStore struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the bbolt file at path.
func Open(path string) (*CatalogStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open bolt db")
	}
	return &CatalogStore{db: db}, nil
}

// Close releases the underlying database file.
func (s *CatalogStore) Close() error {
	return s.db.Close()
}

// Ping verifies the database is readable. Used as a readiness check.
func (s *CatalogStore) Ping() error {
	return s.db.View(func(*bbolt.Tx) error { return nil })
}

// Load reads the last saved product list. It returns ErrNoSnapshot when
// nothing has been written yet, and a decode error when the stored value is
// not a parseable product list.
func (s *CatalogStore) Load() ([]catalog.Product, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return ErrNoSnapshot
		}
		v := b.Get(productsKey)
		if v == nil {
			return ErrNoSnapshot
		}
		raw = append(raw, v...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	products, err := decodeProducts(raw)
	if err != nil {
		return nil, errors.Wrap(err, "decode snapshot")
	}
	return products, nil
}

// Save writes the full product list, replacing any previous snapshot.
func (s *CatalogStore) Save(products []catalog.Product) error {
	data := encodeProducts(products)
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return b.Put(productsKey, data)
	})
	return errors.Wrap(err, "write snapshot")
}
