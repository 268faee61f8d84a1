// Package database owns the MongoDB client shared by the repositories.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forkful/forkful/config"
)

var client *mongo.Client

// Connect opens the MongoDB client and verifies the connection with a
// ping. Returns an error instead of exiting so the caller can shut down
// gracefully.
func Connect(ctx context.Context) error {
	opts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("database: ping: %w", err)
	}

	client = c
	return nil
}

// DB returns the application database handle.
// Connect must have succeeded first.
func DB() *mongo.Database {
	return client.Database(config.MongoDatabase())
}

// Ping verifies the connection is still live (used by the health check).
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("database: not connected")
	}
	return client.Ping(ctx, nil)
}

// Close disconnects the client.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
