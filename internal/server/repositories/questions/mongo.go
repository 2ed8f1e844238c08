package questions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/server/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CollectionName is the MongoDB collection holding questions.
const CollectionName = "questions"

type questionDocument struct {
	ID        bson.ObjectID      `bson:"_id,omitempty"`
	UserID    string             `bson:"user"`
	UserName  string             `bson:"username"`
	Body      string             `bson:"body"`
	CreatedAt time.Time          `bson:"createdAt"`
	Responses []responseDocument `bson:"responses"`
	Favorites []favoriteDocument `bson:"favorites"`
}

type responseDocument struct {
	ID        bson.ObjectID `bson:"_id"`
	UserName  string        `bson:"username"`
	Body      string        `bson:"body"`
	CreatedAt time.Time     `bson:"createdAt"`
}

type favoriteDocument struct {
	ID        bson.ObjectID `bson:"_id"`
	UserName  string        `bson:"username"`
	CreatedAt time.Time     `bson:"createdAt"`
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

func newObjectIDHex() string {
	return bson.NewObjectID().Hex()
}

func (r *MongoRepository) Create(ctx context.Context, q *models.Question) (*models.Question, error) {
	q.ID = newObjectIDHex()
	assignEmbeddedIDs(q, newObjectIDHex)

	doc, err := toDocument(q)
	if err != nil {
		return nil, err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return q, nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*models.Question, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	var doc questionDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return fromDocument(&doc), nil
}

func (r *MongoRepository) List(ctx context.Context) ([]*models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var docs []questionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	result := make([]*models.Question, 0, len(docs))
	for i := range docs {
		result = append(result, fromDocument(&docs[i]))
	}
	return result, nil
}

func (r *MongoRepository) Save(ctx context.Context, q *models.Question) error {
	assignEmbeddedIDs(q, newObjectIDHex)

	doc, err := toDocument(q)
	if err != nil {
		return err
	}

	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: doc.ID}}, doc)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrorNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func toDocument(q *models.Question) (*questionDocument, error) {
	oid, err := bson.ObjectIDFromHex(q.ID)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	doc := &questionDocument{
		ID:        oid,
		UserID:    q.UserID,
		UserName:  q.UserName,
		Body:      q.Body,
		CreatedAt: q.CreatedAt,
		Responses: make([]responseDocument, 0, len(q.Responses)),
		Favorites: make([]favoriteDocument, 0, len(q.Favorites)),
	}
	for _, resp := range q.Responses {
		rid, err := bson.ObjectIDFromHex(resp.ID)
		if err != nil {
			return nil, fmt.Errorf("response id %q: %w", resp.ID, err)
		}
		doc.Responses = append(doc.Responses, responseDocument{
			ID: rid, UserName: resp.UserName, Body: resp.Body, CreatedAt: resp.CreatedAt,
		})
	}
	for _, fav := range q.Favorites {
		fid, err := bson.ObjectIDFromHex(fav.ID)
		if err != nil {
			return nil, fmt.Errorf("favorite id %q: %w", fav.ID, err)
		}
		doc.Favorites = append(doc.Favorites, favoriteDocument{
			ID: fid, UserName: fav.UserName, CreatedAt: fav.CreatedAt,
		})
	}
	return doc, nil
}

func fromDocument(doc *questionDocument) *models.Question {
	q := &models.Question{
		ID:        doc.ID.Hex(),
		UserID:    doc.UserID,
		UserName:  doc.UserName,
		Body:      doc.Body,
		CreatedAt: doc.CreatedAt,
		Responses: make([]models.Response, 0, len(doc.Responses)),
		Favorites: make([]models.Favorite, 0, len(doc.Favorites)),
	}
	for _, r := range doc.Responses {
		q.Responses = append(q.Responses, models.Response{
			ID: r.ID.Hex(), UserName: r.UserName, Body: r.Body, CreatedAt: r.CreatedAt,
		})
	}
	for _, f := range doc.Favorites {
		q.Favorites = append(q.Favorites, models.Favorite{
			ID: f.ID.Hex(), UserName: f.UserName, CreatedAt: f.CreatedAt,
		})
	}
	return q
}
