package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forkful/forkful/app/models"
)

type addressRepository struct {
	col *mongo.Collection
}

// NewAddressStore returns a Mongo-backed AddressStore.
func NewAddressStore(db *mongo.Database) AddressStore {
	return &addressRepository{col: db.Collection(colAddresses)}
}

func (r *addressRepository) Create(ctx context.Context, a *models.Address) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return models.ErrUpstream(err)
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *addressRepository) FindByID(ctx context.Context, id string) (*models.Address, error) {
	oid, err := parseID(id, "address")
	if err != nil {
		return nil, err
	}
	var a models.Address
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		return nil, mapFindErr(err, "address")
	}
	return &a, nil
}

func (r *addressRepository) ListByAccount(ctx context.Context, accountID string) ([]models.Address, error) {
	oid, err := parseID(accountID, "account")
	if err != nil {
		return nil, err
	}
	cur, err := r.col.Find(ctx, bson.M{"accountId": oid})
	if err != nil {
		return nil, models.ErrUpstream(err)
	}
	out := []models.Address{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, models.ErrUpstream(err)
	}
	return out, nil
}

func (r *addressRepository) Update(ctx context.Context, a *models.Address) error {
	a.UpdatedAt = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": a.ID}, bson.M{"$set": bson.M{
		"streetNumber": a.StreetNumber,
		"streetName":   a.StreetName,
		"city":         a.City,
		"postalCode":   a.PostalCode,
		"country":      a.Country,
		"updatedAt":    a.UpdatedAt,
	}})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound("address")
	}
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, "address")
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound("address")
	}
	return nil
}
