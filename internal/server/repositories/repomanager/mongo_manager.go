package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/qaboard/internal/server/repositories/questions"
	"github.com/dmitrijs2005/qaboard/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoRepositoryManager is the document-store backend.
type MongoRepositoryManager struct {
	client    *mongo.Client
	db        *mongo.Database
	users     *users.MongoRepository
	questions *questions.MongoRepository
}

func NewMongoRepositoryManager(ctx context.Context, uri, dbName string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(dbName)
	return &MongoRepositoryManager{
		client:    client,
		db:        db,
		users:     users.NewMongoRepository(db),
		questions: questions.NewMongoRepository(db),
	}, nil
}

// RunMigrations creates the lookup indexes. Usernames are indexed but not
// unique; uniqueness is checked by the register handler.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	_, err := m.db.Collection(users.CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}

	_, err = m.db.Collection(questions.CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create questions index: %w", err)
	}
	return nil
}

func (m *MongoRepositoryManager) Users() users.Repository { return m.users }

func (m *MongoRepositoryManager) Questions() questions.Repository { return m.questions }

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
