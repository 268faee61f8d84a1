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

type paymentRepository struct {
	col *mongo.Collection
}

// NewPaymentStore returns a Mongo-backed PaymentStore.
func NewPaymentStore(db *mongo.Database) PaymentStore {
	return &paymentRepository{col: db.Collection(colPayments)}
}

func (r *paymentRepository) Create(ctx context.Context, p *models.Payment) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return models.ErrUpstream(err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *paymentRepository) ListByAccount(ctx context.Context, accountID string) ([]models.Payment, error) {
	oid, err := parseID(accountID, "account")
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"accountId": oid}, opts)
	if err != nil {
		return nil, models.ErrUpstream(err)
	}
	out := []models.Payment{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, models.ErrUpstream(err)
	}
	return out, nil
}
