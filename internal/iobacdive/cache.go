package iobacdive

import (
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/gnames/gnsys"
	"github.com/gnames/gnuuid"
)

// queryCache is a persistent Badger key-value store of raw fetch
// responses, keyed by a deterministic UUID of the species name. Unlike a
// per-run scratch cache it survives between runs: harvesting the same
// abundance table twice queries BacDive only for new species.
type queryCache struct {
	dir string
	db  *badger.DB
}

func newQueryCache(dir string) (*queryCache, error) {
	if err := gnsys.MakeDir(dir); err != nil {
		return nil, CacheError(dir, err)
	}

	options := badger.DefaultOptions(dir)
	options.Logger = nil // Disable badger's internal logging

	db, err := badger.Open(options)
	if err != nil {
		return nil, CacheError(dir, err)
	}

	slog.Info("Opened BacDive response cache", "dir", dir)
	return &queryCache{dir: dir, db: db}, nil
}

func (qc *queryCache) get(species string) ([]byte, bool) {
	var raw []byte
	err := qc.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(species))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, false
	}
	return raw, true
}

// put stores a response. Cache write failures are logged and absorbed;
// they never fail a query.
func (qc *queryCache) put(species string, raw []byte) {
	err := qc.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(species), raw)
	})
	if err != nil {
		slog.Warn("Cannot cache BacDive response",
			"species", species, "error", err)
	}
}

func (qc *queryCache) close() error {
	return qc.db.Close()
}

func cacheKey(species string) []byte {
	return []byte(gnuuid.New(species).String())
}
