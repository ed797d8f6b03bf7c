package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ghiac/suitenav/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoOpTimeout = 5 * time.Second

// MongoDBStore is a MongoDB implementation of model.HeaderStateStore
type MongoDBStore struct {
	client     *mongo.Client
	database   *mongo.Database
	collection *mongo.Collection
}

// MongoDBStoreConfig holds configuration for MongoDBStore
type MongoDBStoreConfig struct {
	URI        string // MongoDB connection URI (e.g., "mongodb://localhost:27017")
	Database   string // Database name (default: "suitenav")
	Collection string // Collection name (default: "header_states")
}

// DefaultMongoDBStoreConfig returns default configuration
func DefaultMongoDBStoreConfig() MongoDBStoreConfig {
	return MongoDBStoreConfig{
		URI:        "mongodb://localhost:27017",
		Database:   "suitenav",
		Collection: "header_states",
	}
}

// NewMongoDBStore creates a new MongoDB header state store
func NewMongoDBStore(config MongoDBStoreConfig) (*MongoDBStore, error) {
	defaults := DefaultMongoDBStoreConfig()
	if config.URI == "" {
		config.URI = defaults.URI
	}
	if config.Database == "" {
		config.Database = defaults.Database
	}
	if config.Collection == "" {
		config.Collection = defaults.Collection
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	database := client.Database(config.Database)
	store := &MongoDBStore{
		client:     client,
		database:   database,
		collection: database.Collection(config.Collection),
	}

	if err := store.initIndexes(ctx); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return store, nil
}

// initIndexes creates the necessary indexes
func (s *MongoDBStore) initIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "updated_at", Value: -1}},
		},
	})
	return err
}

// Close closes the MongoDB connection
func (s *MongoDBStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Get retrieves the state of a session
func (s *MongoDBStore) Get(sessionID string) (*model.HeaderState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	var state model.HeaderState
	err := s.collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&state)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", model.ErrStateNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get header state: %w", err)
	}
	return &state, nil
}

// Put stores or updates a state
func (s *MongoDBStore) Put(state *model.HeaderState) error {
	if state == nil {
		return fmt.Errorf("header state cannot be nil")
	}
	if state.SessionID == "" {
		return fmt.Errorf("header state has no session id")
	}

	state.UpdatedAt = time.Now()
	if state.CreatedAt.IsZero() {
		state.CreatedAt = state.UpdatedAt
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"session_id": state.SessionID},
		state,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to put header state: %w", err)
	}
	return nil
}

// Delete removes a state
func (s *MongoDBStore) Delete(sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	if _, err := s.collection.DeleteOne(ctx, bson.M{"session_id": sessionID}); err != nil {
		return fmt.Errorf("failed to delete header state: %w", err)
	}
	return nil
}

// List returns all states, most recently updated first
func (s *MongoDBStore) List() ([]*model.HeaderState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list header states: %w", err)
	}
	defer cursor.Close(ctx)

	var states []*model.HeaderState
	if err := cursor.All(ctx, &states); err != nil {
		return nil, fmt.Errorf("failed to decode header states: %w", err)
	}
	return states, nil
}
