package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is a registered user. Password holds the bcrypt digest and is
// never serialized. Token is a last-issued convenience pointer written at
// signin and cleared at signout; token verification never consults it.
type Account struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Password    string             `bson:"password" json:"-"`
	Role        string             `bson:"role" json:"role"`
	AddressID   primitive.ObjectID `bson:"addressId,omitempty" json:"addressId,omitempty"`
	Token       string             `bson:"token,omitempty" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Address is a delivery address owned by an account.
type Address struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID    primitive.ObjectID `bson:"accountId" json:"accountId"`
	StreetNumber string             `bson:"streetNumber" json:"streetNumber"`
	StreetName   string             `bson:"streetName" json:"streetName"`
	City         string             `bson:"city" json:"city"`
	PostalCode   string             `bson:"postalCode" json:"postalCode"`
	Country      string             `bson:"country" json:"country"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
