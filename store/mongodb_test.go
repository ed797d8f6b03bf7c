package store

import (
	"context"
	"os"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// TestMongoDBStore_BasicOperations requires a running MongoDB instance
// Set MONGODB_URI environment variable to override default connection string
func TestMongoDBStore_BasicOperations(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	mongoStore, err := NewMongoDBStore(MongoDBStoreConfig{
		URI:        uri,
		Database:   "suitenav_test",
		Collection: "header_states_test",
	})
	if err != nil {
		t.Skipf("Skipping test: MongoDB not available: %v", err)
	}
	defer mongoStore.Close()

	// Clean up test data
	ctx := context.Background()
	mongoStore.collection.DeleteMany(ctx, bson.M{})
	defer mongoStore.collection.DeleteMany(ctx, bson.M{})

	testHeaderStateStore(t, mongoStore)
}

func TestDefaultMongoDBStoreConfig(t *testing.T) {
	cfg := DefaultMongoDBStoreConfig()
	if cfg.Database != "suitenav" || cfg.Collection != "header_states" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}
