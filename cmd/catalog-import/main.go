// Command catalog-import loads loosely shaped product records from a JSON
// file (optionally gzip-compressed) into the local catalog snapshot. It is
// an offline alternative to the startup remote refresh.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"

	"github.com/pixora/storefront/internal/domain/catalog"
	"github.com/pixora/storefront/internal/storage/bolt"
)

func main() {
	var (
		inputFile    string
		snapshotPath string
	)

	flag.StringVar(&inputFile, "input", "products.json", "path to a JSON array of product records (.gz supported)")
	flag.StringVar(&snapshotPath, "snapshot", "pixora.db", "path to the bbolt catalog snapshot file")
	flag.Parse()

	if err := run(inputFile, snapshotPath); err != nil {
		slog.Error("catalog import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(inputFile, snapshotPath string) error {
	records, err := readRecords(inputFile)
	if err != nil {
		return errors.Wrap(err, "read records")
	}
	if len(records) == 0 {
		return errors.New("input contains no records")
	}

	n := catalog.Normalizer{FallbackImage: catalog.SeedImage()}
	products := n.NormalizeAll(records)

	snap, err := bolt.Open(snapshotPath)
	if err != nil {
		return errors.Wrap(err, "open snapshot")
	}
	defer func() { _ = snap.Close() }()

	if err := snap.Save(products); err != nil {
		return errors.Wrap(err, "save snapshot")
	}

	slog.Info("catalog imported",
		slog.Int("products", len(products)),
		slog.String("snapshot", snapshotPath),
	)
	return nil
}

func readRecords(path string) ([]catalog.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "open gzip stream")
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	var records []catalog.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "decode records")
	}
	return records, nil
}
