package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses. Reconciling pending payments against the gateway is
// a downstream flow; checkout only ever writes StatusPending.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusComplete = "complete"
	PaymentStatusFailed   = "failed"
)

// Order is a cart snapshot written at checkout, before the payment
// record that references it.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID    primitive.ObjectID `bson:"accountId" json:"accountId"`
	CartID       primitive.ObjectID `bson:"cartId" json:"cartId"`
	RestaurantID primitive.ObjectID `bson:"restaurantId,omitempty" json:"restaurantId,omitempty"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Payment records one payment-intent request. Total is in minor currency
// units; IntentID is the gateway's identifier.
type Payment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID primitive.ObjectID `bson:"accountId" json:"accountId"`
	OrderID   primitive.ObjectID `bson:"orderId,omitempty" json:"orderId,omitempty"`
	IntentID  string             `bson:"intentId" json:"intentId"`
	Total     int64              `bson:"total" json:"total"`
	Method    string             `bson:"method" json:"method"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
