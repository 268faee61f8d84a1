package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forkful/forkful/app/models"
)

type accountRepository struct {
	col *mongo.Collection
}

// NewAccountStore returns a Mongo-backed AccountStore.
func NewAccountStore(db *mongo.Database) AccountStore {
	return &accountRepository{col: db.Collection(colAccounts)}
}

func (r *accountRepository) Create(ctx context.Context, a *models.Account) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return mapWriteErr(err)
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *accountRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	oid, err := parseID(id, "account")
	if err != nil {
		return nil, err
	}
	var a models.Account
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		return nil, mapFindErr(err, "account")
	}
	return &a, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&a); err != nil {
		return nil, mapFindErr(err, "account")
	}
	return &a, nil
}

func (r *accountRepository) Update(ctx context.Context, a *models.Account) error {
	a.UpdatedAt = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": a.ID}, bson.M{"$set": bson.M{
		"firstName":   a.FirstName,
		"lastName":    a.LastName,
		"phoneNumber": a.PhoneNumber,
		"addressId":   a.AddressID,
		"updatedAt":   a.UpdatedAt,
	}})
	if err != nil {
		return mapWriteErr(err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound("account")
	}
	return nil
}

func (r *accountRepository) SetToken(ctx context.Context, id, tok string) error {
	oid, err := parseID(id, "account")
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"token": tok, "updatedAt": time.Now().UTC()}}
	if tok == "" {
		update = bson.M{
			"$unset": bson.M{"token": ""},
			"$set":   bson.M{"updatedAt": time.Now().UTC()},
		}
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound("account")
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, "account")
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound("account")
	}
	return nil
}
