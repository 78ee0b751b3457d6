package infra_store_kv

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

var ErrNotFound = errors.New("key not found")

// Driver is a string-keyed durable record store over badger. Records are
// serialized to JSON, the device-local analogue of browser storage.
type Driver struct {
	db     *badger.DB
	prefix string
}

func New(db *badger.DB, prefix string) *Driver {
	return &Driver{
		db:     db,
		prefix: prefix,
	}
}

func (d *Driver) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(d.fullKey(key)), raw)
	})
}

// Get unmarshals the record under key into out. Returns ErrNotFound for
// absent keys so callers can default instead of failing.
func (d *Driver) Get(key string, out any) error {
	return d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(d.fullKey(key)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
}

func (d *Driver) Delete(key string) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(d.fullKey(key)))
	})
}

func (d *Driver) fullKey(key string) string {
	if d.prefix != "" {
		return d.prefix + ":" + key
	}
	return key
}
