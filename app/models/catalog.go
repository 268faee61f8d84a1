package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Restaurant is the top of the catalog tree.
type Restaurant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AddressID   primitive.ObjectID `bson:"addressId,omitempty" json:"addressId,omitempty"`
	Name        string             `bson:"name" json:"name"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Email       string             `bson:"email" json:"email"`
	Info        string             `bson:"info,omitempty" json:"info,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Menu groups menu items under a restaurant.
type Menu struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantID primitive.ObjectID `bson:"restaurantId" json:"restaurantId"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MenuItem is a priced catalog entry. Price is in integer minor currency
// units (cents); cart arithmetic never touches floating point.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MenuID      primitive.ObjectID `bson:"menuId" json:"menuId"`
	Name        string             `bson:"name" json:"name"`
	Price       int64              `bson:"price" json:"price"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageKey    string             `bson:"imageKey,omitempty" json:"imageKey,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
