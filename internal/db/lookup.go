package db

import (
	"context"
	"fmt"

	"github.com/rideloop/vehicle-registry/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMakeCollection implements MakeCollection for MongoDB.
type MongoMakeCollection struct {
	Collection *mongo.Collection
}

// FindMakes returns all vehicle makes sorted by name.
func (c *MongoMakeCollection) FindMakes(ctx context.Context) ([]models.LookupItem, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := c.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var makes []models.LookupItem
	if err := cursor.All(ctx, &makes); err != nil {
		return nil, err
	}
	return makes, nil
}

// SeedMakes inserts the baseline make set when the collection is empty, so a
// fresh database serves a non-empty selector.
func (c *MongoMakeCollection) SeedMakes(ctx context.Context, seq Sequences, names []string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	count, err := c.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(names))
	for _, name := range names {
		id, err := seq.Next(ctx, "vehicle_makes")
		if err != nil {
			return err
		}
		docs = append(docs, models.VehicleMake{ID: id, Name: name})
	}
	_, err = c.Collection.InsertMany(ctx, docs)
	return err
}
