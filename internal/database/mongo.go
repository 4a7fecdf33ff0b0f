package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoClient connects and verifies the server with a ping. Connection
// establishment shares the same fixed-delay retry policy as the Postgres
// backend.
func NewMongoClient(ctx context.Context, url string) (*mongo.Client, error) {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(url))
		if err == nil {
			err = client.Ping(connectCtx, nil)
			if err == nil {
				cancel()
				return client, nil
			}
			_ = client.Disconnect(connectCtx)
		}
		cancel()
		lastErr = err
		if attempt < connectAttempts {
			time.Sleep(connectRetryDelay)
		}
	}
	return nil, lastErr
}

// EnsureMongoIndexes creates the indexes the stores rely on. The unique
// email index is what enforces duplicate-registration rejection on this
// backend.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = db.Collection("products").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "vendor_id", Value: 1}}},
		{Keys: bson.D{{Key: "is_approved", Value: 1}}},
	})
	if err != nil {
		return err
	}
	_, err = db.Collection("cart_items").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
