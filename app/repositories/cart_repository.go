package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forkful/forkful/app/models"
)

type cartRepository struct {
	col *mongo.Collection
}

// NewCartStore returns a Mongo-backed CartStore.
func NewCartStore(db *mongo.Database) CartStore {
	return &cartRepository{col: db.Collection(colCarts)}
}

func (r *cartRepository) Create(ctx context.Context, accountID string) (*models.Cart, error) {
	oid, err := parseID(accountID, "account")
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	cart := &models.Cart{
		AccountID: oid,
		Items:     []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.col.InsertOne(ctx, cart)
	if err != nil {
		return nil, models.ErrUpstream(err)
	}
	cart.ID = res.InsertedID.(primitive.ObjectID)
	return cart, nil
}

func (r *cartRepository) FindByAccount(ctx context.Context, accountID string) (*models.Cart, error) {
	oid, err := parseID(accountID, "account")
	if err != nil {
		return nil, err
	}
	var cart models.Cart
	if err := r.col.FindOne(ctx, bson.M{"accountId": oid}).Decode(&cart); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrCartNotFound()
		}
		return nil, models.ErrUpstream(err)
	}
	return &cart, nil
}

func (r *cartRepository) PushItem(ctx context.Context, accountID, itemID string) error {
	aid, err := parseID(accountID, "account")
	if err != nil {
		return err
	}
	iid, err := parseID(itemID, "item")
	if err != nil {
		return err
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"accountId": aid}, bson.M{
		"$push": bson.M{"items": iid},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.MatchedCount == 0 {
		return models.ErrCartNotFound()
	}
	return nil
}

func (r *cartRepository) PullItem(ctx context.Context, accountID, itemID string) error {
	aid, err := parseID(accountID, "account")
	if err != nil {
		return err
	}
	iid, err := parseID(itemID, "item")
	if err != nil {
		return err
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"accountId": aid}, bson.M{
		"$pull": bson.M{"items": iid},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.MatchedCount == 0 {
		return models.ErrCartNotFound()
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, accountID string) error {
	oid, err := parseID(accountID, "account")
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"accountId": oid})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.DeletedCount == 0 {
		return models.ErrCartNotFound()
	}
	return nil
}
