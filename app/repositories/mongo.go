package repositories

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forkful/forkful/app/models"
)

// Collection names.
const (
	colAccounts    = "accounts"
	colAddresses   = "addresses"
	colRestaurants = "restaurants"
	colMenus       = "menus"
	colMenuItems   = "menuItems"
	colCarts       = "carts"
	colItems       = "items"
	colPayments    = "payments"
)

// parseID converts a hex id, reporting a malformed one as a missing
// document of the given kind.
func parseID(id, kind string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.ErrNotFound(kind)
	}
	return oid, nil
}

// mapFindErr translates a driver lookup failure into a domain error.
func mapFindErr(err error, kind string) error {
	if err == mongo.ErrNoDocuments {
		return models.ErrNotFound(kind)
	}
	return models.ErrUpstream(err)
}

// mapWriteErr translates a driver write failure, recognizing unique-index
// conflicts by index name so the caller learns which field collided.
func mapWriteErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "email"):
			return models.ErrDuplicate("email")
		case strings.Contains(msg, "phoneNumber"):
			return models.ErrDuplicate("phoneNumber")
		default:
			return models.ErrDuplicate("field")
		}
	}
	return models.ErrUpstream(err)
}
