package validate_test

import (
	"testing"

	"github.com/forkful/forkful/pkg/validate"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=10"`
	Quantity int64  `json:"quantity" validate:"required,integer,gte=1,lte=100"`
	Role     string `json:"role" validate:"nullable,in=user,admin"`
}

func TestStructValid(t *testing.T) {
	errs := validate.Struct(signupForm{
		Email:    "a@b.co",
		Name:     "Jordan",
		Quantity: 3,
	})
	if validate.HasErrors(errs) {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestStructRequired(t *testing.T) {
	errs := validate.Struct(signupForm{})
	for _, field := range []string{"email", "name", "quantity"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("missing required error for %q: %v", field, errs)
		}
	}
}

func TestStructEmail(t *testing.T) {
	errs := validate.Struct(signupForm{Email: "not-an-email", Name: "Jo", Quantity: 1})
	if _, ok := errs["email"]; !ok {
		t.Errorf("invalid email accepted: %v", errs)
	}
}

func TestStructBounds(t *testing.T) {
	errs := validate.Struct(signupForm{Email: "a@b.co", Name: "J", Quantity: 101})
	if _, ok := errs["name"]; !ok {
		t.Errorf("too-short name accepted: %v", errs)
	}
	if _, ok := errs["quantity"]; !ok {
		t.Errorf("quantity over the cap accepted: %v", errs)
	}
}

func TestStructIn(t *testing.T) {
	errs := validate.Struct(signupForm{Email: "a@b.co", Name: "Jo", Quantity: 1, Role: "root"})
	if _, ok := errs["role"]; !ok {
		t.Errorf("out-of-set role accepted: %v", errs)
	}

	errs = validate.Struct(signupForm{Email: "a@b.co", Name: "Jo", Quantity: 1, Role: "admin"})
	if _, ok := errs["role"]; ok {
		t.Errorf("listed role rejected: %v", errs)
	}
}

func TestStructNullableSkips(t *testing.T) {
	// Empty Role must skip the in= rule entirely.
	errs := validate.Struct(signupForm{Email: "a@b.co", Name: "Jo", Quantity: 1})
	if _, ok := errs["role"]; ok {
		t.Errorf("nullable empty field validated: %v", errs)
	}
}
