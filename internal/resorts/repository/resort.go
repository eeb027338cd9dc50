package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resortly/pkg/config"
	"resortly/pkg/model"
)

const CollectionName = "Resorts"

// InsertResult is the shape returned to catalog partners on insert.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type ResortRepository interface {
	Insert(ctx context.Context, resort model.Resort) (*InsertResult, error)
	FindAll(ctx context.Context) ([]model.Resort, error)
}

type mongoResortRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoResortRepository(cfg *config.Config) ResortRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoResortRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoResortRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoResortRepository) Insert(ctx context.Context, resort model.Resort) (*InsertResult, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	resort["createdAt"] = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, resort)
	if err != nil {
		return nil, fmt.Errorf("failed to insert resort: %w", err)
	}

	insertedID := ""
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		insertedID = oid.Hex()
	}
	return &InsertResult{InsertedID: insertedID}, nil
}

func (r *mongoResortRepository) FindAll(ctx context.Context) ([]model.Resort, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find resorts: %w", err)
	}
	defer cursor.Close(ctx)

	var resorts []model.Resort
	if err := cursor.All(ctx, &resorts); err != nil {
		return nil, fmt.Errorf("failed to decode resorts: %w", err)
	}

	return resorts, nil
}
