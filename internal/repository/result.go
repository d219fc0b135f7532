package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

const (
	resultsCollection   = "results"
	defaultResultsLimit = 20
)

// ResultRepository archives finished games.
type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	ListRecent(ctx context.Context, limit int64) ([]entity.Result, error)
}

type dbResult struct {
	collection *mongo.Collection
}

func NewResultRepository(client *mongo.Client, database string) ResultRepository {
	return &dbResult{
		collection: client.Database(database).Collection(resultsCollection),
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	if _, err := that.collection.InsertOne(ctx, result); err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

// ListRecent - newest results first.
func (that *dbResult) ListRecent(ctx context.Context, limit int64) ([]entity.Result, error) {
	if limit <= 0 {
		limit = defaultResultsLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "finished_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := that.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("can't find results: %w", err)
	}

	results := make([]entity.Result, 0, limit)
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("can't decode results: %w", err)
	}

	return results, nil
}
