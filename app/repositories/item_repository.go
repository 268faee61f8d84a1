package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forkful/forkful/app/models"
)

type itemRepository struct {
	col *mongo.Collection
}

// NewItemStore returns a Mongo-backed ItemStore.
func NewItemStore(db *mongo.Database) ItemStore {
	return &itemRepository{col: db.Collection(colItems)}
}

func (r *itemRepository) Create(ctx context.Context, it *models.Item) error {
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, it)
	if err != nil {
		return models.ErrUpstream(err)
	}
	it.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *itemRepository) FindByID(ctx context.Context, id string) (*models.Item, error) {
	oid, err := parseID(id, "item")
	if err != nil {
		return nil, err
	}
	var it models.Item
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&it); err != nil {
		return nil, mapFindErr(err, "item")
	}
	return &it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *models.Item) error {
	it.UpdatedAt = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": it.ID}, bson.M{"$set": bson.M{
		"quantity":  it.Quantity,
		"discount":  it.Discount,
		"updatedAt": it.UpdatedAt,
	}})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound("item")
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, "item")
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound("item")
	}
	return nil
}
