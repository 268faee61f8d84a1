package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forkful/forkful/app/models"
)

const colOrders = "orders"

type orderRepository struct {
	col *mongo.Collection
}

// NewOrderStore returns a Mongo-backed OrderStore.
func NewOrderStore(db *mongo.Database) OrderStore {
	return &orderRepository{col: db.Collection(colOrders)}
}

func (r *orderRepository) Create(ctx context.Context, o *models.Order) error {
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return models.ErrUpstream(err)
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	oid, err := parseID(id, "order")
	if err != nil {
		return nil, err
	}
	var o models.Order
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&o); err != nil {
		return nil, mapFindErr(err, "order")
	}
	return &o, nil
}

func (r *orderRepository) ListByAccount(ctx context.Context, accountID string) ([]models.Order, error) {
	oid, err := parseID(accountID, "account")
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"accountId": oid}, opts)
	if err != nil {
		return nil, models.ErrUpstream(err)
	}
	out := []models.Order{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, models.ErrUpstream(err)
	}
	return out, nil
}
