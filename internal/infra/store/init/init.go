package infra_store_init

import (
	"log"

	"github.com/dgraph-io/badger/v4"

	"github.com/cinematch/core/internal/config"
)

func MustOpen(cfg config.LocalStore) *badger.DB {
	opts := badger.DefaultOptions(cfg.Dir).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("failed to open local store", err)
	}

	return db
}
