package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/parworldgolf/storefront-backend/internal/models"
)

// mongoRepository implements Repository against the hosted document store
type mongoRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *slog.Logger
}

// MongoConfig holds document-store configuration
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// NewMongoRepository connects to the document store and returns a catalog
// repository over the items collection.
func NewMongoRepository(ctx context.Context, cfg MongoConfig, logger *slog.Logger) (Repository, func(context.Context) error, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	logger.Info("connected to catalog document store",
		slog.String("database", cfg.Database),
		slog.String("collection", cfg.Collection),
	)

	repo := &mongoRepository{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		logger:     logger,
	}

	return repo, client.Disconnect, nil
}

// FetchAll returns every item in the collection.
//
// The whole collection is fetched and filtered in application code rather
// than through compound queries; the collection is small and this avoids
// needing composite indexes on a hosted store we do not administer.
func (r *mongoRepository) FetchAll(ctx context.Context) ([]models.ProductRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.ProductRecord
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode catalog items: %w", err)
	}

	for i := range items {
		items[i].ApplyDefaults()
	}

	return items, nil
}

// Health checks if the document store is reachable
func (r *mongoRepository) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("document store health check failed: %w", err)
	}
	return nil
}
