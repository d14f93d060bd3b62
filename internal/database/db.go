package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/devnook/devnook-api/internal/config"
)

// Collection names used by the application
const (
	BlogCollection     = "blogs"
	CommentCollection  = "comments"
	WishlistCollection = "wishlist"
)

// DB wraps the MongoDB client with additional functionality
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

// New creates a new MongoDB connection and verifies it with a ping
func New(ctx context.Context, cfg *config.DatabaseConfig, log zerolog.Logger) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.GetURI()).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Test connection with timeout
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	wrapper := &DB{
		client: client,
		db:     client.Database(cfg.Name),
		log:    log.With().Str("component", "database").Logger(),
	}

	wrapper.log.Info().
		Str("host", cfg.Host).
		Str("database", cfg.Name).
		Msg("Database connection established")

	return wrapper, nil
}

// Collection returns a handle to the named collection
func (db *DB) Collection(name string) *mongo.Collection {
	return db.db.Collection(name)
}

// EnsureIndexes creates the indexes the application depends on. The text
// index on blog title and short_description must exist before any search
// query is served.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	db.log.Info().Msg("Ensuring database indexes")

	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := db.Collection(BlogCollection).Indexes().CreateOne(indexCtx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "short_description", Value: "text"},
		},
		Options: options.Index().SetName("blog_text_search"),
	})
	if err != nil {
		return fmt.Errorf("failed to create blog text index: %w", err)
	}

	_, err = db.Collection(WishlistCollection).Indexes().CreateOne(indexCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_email", Value: 1}},
		Options: options.Index().SetName("wishlist_user_email"),
	})
	if err != nil {
		return fmt.Errorf("failed to create wishlist email index: %w", err)
	}

	db.log.Info().Msg("Indexes ready")
	return nil
}

// HealthCheck verifies the database connection is healthy
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (db *DB) Close(ctx context.Context) error {
	db.log.Info().Msg("Closing database connection")
	return db.client.Disconnect(ctx)
}
