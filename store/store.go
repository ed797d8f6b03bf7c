package store

import (
	"fmt"

	"github.com/ghiac/suitenav/config"
	"github.com/ghiac/suitenav/model"
)

// Store is a header state store that owns a connection
type Store interface {
	model.HeaderStateStore
	Close() error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*MongoDBStore)(nil)
)

// New opens the backend selected by cfg.Backend
func New(cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case "", config.StoreMemory:
		return NewMemoryStore(), nil
	case config.StoreSQLite:
		return NewSQLiteStore(cfg.SQLitePath)
	case config.StoreMongoDB:
		return NewMongoDBStore(MongoDBStoreConfig{
			URI:        cfg.MongoDBURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Backend)
	}
}
