package controllers

import (
	"github.com/forkful/forkful/app/services"
	"github.com/forkful/forkful/pkg/ctx"
)

// AuthController serves signup, signin, signout, and the profile lookup.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Signup handles POST /api/auth/signup.
func (h *AuthController) Signup(c *ctx.Context) {
	var in services.SignupInput
	if !c.BindJSON(&in) {
		return
	}

	account, err := h.auth.Signup(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(account)
}

// Signin handles POST /api/auth/signin.
func (h *AuthController) Signin(c *ctx.Context) {
	var in services.SigninInput
	if !c.BindJSON(&in) {
		return
	}

	account, tok, err := h.auth.Signin(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]any{
		"account": account,
		"token":   tok,
	})
}

// Signout handles POST /api/auth/signout.
func (h *AuthController) Signout(c *ctx.Context) {
	p, ok := c.Principal()
	if !ok {
		c.Unauthorized()
		return
	}
	if err := h.auth.Signout(c.Context(), p.AccountID); err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]string{"message": "signed out"})
}

// Profile handles GET /api/auth/user.
func (h *AuthController) Profile(c *ctx.Context) {
	p, ok := c.Principal()
	if !ok {
		c.Unauthorized()
		return
	}
	account, err := h.auth.Profile(c.Context(), p.AccountID)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(account)
}
