package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const mongoConnectTimeout = 10 * time.Second

// slotDocument is the shape of one slot row in the slots collection.
type slotDocument struct {
	Key     string `bson:"_id"`
	Payload string `bson:"payload"`
}

// MongoStore is an optional hosted KeyValueStore mirror: one document per
// slot key, upserted whole on every write.
type MongoStore struct {
	client *mongo.Client
	slots  *mongo.Collection
}

// NewMongoStore connects to MongoDB, pings the primary to verify the
// connection, and binds the slots collection.
func NewMongoStore(uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	// The initial connect can succeed against an unresponsive server; ping
	// with a shorter timeout before handing the store out.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{
		client: client,
		slots:  client.Database(database).Collection("slots"),
	}, nil
}

func (m *MongoStore) Available(ctx context.Context) bool {
	if m == nil || m.client == nil {
		return false
	}
	return m.client.Ping(ctx, readpref.Primary()) == nil
}

func (m *MongoStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	var doc slotDocument
	err := m.slots.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read slot %q: %w", key, err)
	}
	return doc.Payload, true, nil
}

func (m *MongoStore) SetItem(ctx context.Context, key, value string) error {
	_, err := m.slots.ReplaceOne(ctx,
		bson.M{"_id": key},
		slotDocument{Key: key, Payload: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	return nil
}

func (m *MongoStore) RemoveItem(ctx context.Context, key string) error {
	if _, err := m.slots.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("remove slot %q: %w", key, err)
	}
	return nil
}

// Close gracefully disconnects the MongoDB client.
func (m *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()
	return m.client.Disconnect(ctx)
}
