package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful/app/models"
	"github.com/forkful/forkful/app/repositories"
)

// AddressInput creates or updates a delivery address.
type AddressInput struct {
	StreetNumber string `json:"streetNumber" validate:"required,max=16"`
	StreetName   string `json:"streetName" validate:"required,min=1,max=128"`
	City         string `json:"city" validate:"required,min=1,max=64"`
	PostalCode   string `json:"postalCode" validate:"required,min=2,max=16"`
	Country      string `json:"country" validate:"required,min=2,max=64"`
}

// AddressService manages delivery addresses. Ownership enforcement lives
// in the route guards; services trust the account id they are handed.
type AddressService struct {
	addresses repositories.AddressStore
	accounts  repositories.AccountStore
}

func NewAddressService(addresses repositories.AddressStore, accounts repositories.AccountStore) *AddressService {
	return &AddressService{addresses: addresses, accounts: accounts}
}

// Create stores an address for accountID and points the account's
// primary addressId at it.
func (s *AddressService) Create(ctx context.Context, accountID string, in AddressInput) (*models.Address, error) {
	oid, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, models.ErrAccountNotFound()
	}

	addr := &models.Address{
		AccountID:    oid,
		StreetNumber: in.StreetNumber,
		StreetName:   in.StreetName,
		City:         in.City,
		PostalCode:   in.PostalCode,
		Country:      in.Country,
	}
	if err := s.addresses.Create(ctx, addr); err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	account.AddressID = addr.ID
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	return addr, nil
}

func (s *AddressService) Get(ctx context.Context, id string) (*models.Address, error) {
	return s.addresses.FindByID(ctx, id)
}

func (s *AddressService) ListByAccount(ctx context.Context, accountID string) ([]models.Address, error) {
	return s.addresses.ListByAccount(ctx, accountID)
}

func (s *AddressService) Update(ctx context.Context, id string, in AddressInput) (*models.Address, error) {
	addr, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	addr.StreetNumber = in.StreetNumber
	addr.StreetName = in.StreetName
	addr.City = in.City
	addr.PostalCode = in.PostalCode
	addr.Country = in.Country
	if err := s.addresses.Update(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *AddressService) Delete(ctx context.Context, id string) error {
	return s.addresses.Delete(ctx, id)
}
