package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart holds the line-item ids for one account. AccountID is set once at
// signup and never reassigned; there is exactly one cart per account and
// it lives as long as the account does.
type Cart struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	AccountID primitive.ObjectID   `bson:"accountId" json:"accountId"`
	Items     []primitive.ObjectID `bson:"items" json:"items"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Item is one cart line. Discount is an absolute reduction in minor
// currency units applied to the whole line (price × quantity), clamped so
// a line never contributes a negative amount.
type Item struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MenuItemID primitive.ObjectID `bson:"menuItemId" json:"menuItemId"`
	Quantity   int64              `bson:"quantity" json:"quantity"`
	Discount   int64              `bson:"discount,omitempty" json:"discount,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CartLine is a resolved cart line joined to its catalog entry, as
// returned by the cart view endpoint.
type CartLine struct {
	Item     Item     `json:"item"`
	MenuItem MenuItem `json:"menuItem"`
	Subtotal int64    `json:"subtotal"`
}
