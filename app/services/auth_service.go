// Package services holds the business logic between controllers and the
// persistence layer. Services accept validated inputs, return domain
// models, and report failures as *models.Error.
package services

import (
	"context"

	"github.com/forkful/forkful/app/models"
	"github.com/forkful/forkful/app/repositories"
	"github.com/forkful/forkful/config"
	"github.com/forkful/forkful/pkg/acl"
	"github.com/forkful/forkful/pkg/logger"
	"github.com/forkful/forkful/pkg/password"
	"github.com/forkful/forkful/pkg/token"
)

// SignupInput is the registration payload.
type SignupInput struct {
	FirstName   string `json:"firstName" validate:"required,min=1,max=64"`
	LastName    string `json:"lastName" validate:"required,min=1,max=64"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=6,max=24"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
}

// SigninInput is the credential payload.
type SigninInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthService handles registration, credential exchange, and profile
// lookups. Every new account gets its cart at signup so cart routes never
// have to lazily create one.
type AuthService struct {
	accounts repositories.AccountStore
	carts    repositories.CartStore
}

func NewAuthService(accounts repositories.AccountStore, carts repositories.CartStore) *AuthService {
	return &AuthService{accounts: accounts, carts: carts}
}

// Signup registers an account with the user role and provisions its cart.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.Account, error) {
	digest, err := password.Hash(in.Password)
	if err != nil {
		return nil, models.ErrUpstream(err)
	}

	account := &models.Account{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Password:    digest,
		Role:        acl.RoleUser,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	if _, err := s.carts.Create(ctx, account.ID.Hex()); err != nil {
		// The account exists but its cart does not. Surface the failure;
		// signin will not be blocked, but checkout would 404 on the cart.
		logger.Error("auth: cart provisioning failed", "accountId", account.ID.Hex(), "error", err)
		return nil, err
	}

	return account, nil
}

// Signin verifies credentials and issues a bearer token. The token is
// also written to the account document as a last-issued pointer; nothing
// ever reads it back for verification.
func (s *AuthService) Signin(ctx context.Context, in SigninInput) (*models.Account, string, error) {
	account, err := s.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		if de, ok := models.AsError(err); ok && de.Status == 404 {
			return nil, "", models.ErrAccountNotFound()
		}
		return nil, "", err
	}

	match, err := password.Compare(account.Password, in.Password)
	if err != nil {
		return nil, "", models.ErrUpstream(err)
	}
	if !match {
		return nil, "", models.ErrWrongPassword()
	}

	tok, err := token.Issue(account.ID.Hex(), account.Email, account.Role, config.JWTTTL())
	if err != nil {
		return nil, "", models.ErrUpstream(err)
	}

	if err := s.accounts.SetToken(ctx, account.ID.Hex(), tok); err != nil {
		return nil, "", err
	}
	account.Token = tok

	return account, tok, nil
}

// Signout clears the last-issued-token pointer. Outstanding tokens remain
// valid until they expire; this only drops the stored reference.
func (s *AuthService) Signout(ctx context.Context, accountID string) error {
	return s.accounts.SetToken(ctx, accountID, "")
}

// Profile returns the account behind a verified token subject.
func (s *AuthService) Profile(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if de, ok := models.AsError(err); ok && de.Status == 404 {
			return nil, models.ErrAccountNotFound()
		}
		return nil, err
	}
	return account, nil
}
