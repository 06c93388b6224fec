// Package store implements persistent storage of the command history on top
// of a bbolt database. It is only used when a database path is given; by
// default the history lives in memory only.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.pina.sh/pkg/logutil"
	"src.pina.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// Buckets.
const (
	bucketCmd = "cmd"
)

// initDB maps a description of an initialization step to the function
// performing it. Files in this package register their steps in init.
var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the permanent storage backend.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore opens the bbolt database at the given path, creating it when it
// does not exist, and returns a DBStore backed by it.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new DBStore from a bbolt database. On error the
// database is closed.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &dbStore{db}, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}
