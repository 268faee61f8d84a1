package models

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable machine-readable error codes surfaced to clients.
const (
	CodeAccountNotFound  = "ACCOUNT_NOT_FOUND"
	CodeCartNotFound     = "CART_NOT_FOUND"
	CodeNotFound         = "NOT_FOUND"
	CodeDuplicate        = "DUPLICATE"
	CodeWrongPassword    = "WRONG_PASSWORD"
	CodeEmptyCart        = "EMPTY_CART"
	CodeInconsistentCart = "INCONSISTENT_CART"
	CodeInvalidQuantity  = "INVALID_QUANTITY"
	CodeInvalidDiscount  = "INVALID_DISCOUNT"
	CodePaymentGateway   = "PAYMENT_GATEWAY"
	CodeUpstream         = "UPSTREAM"
)

// Error is the domain error carried from services to controllers. Status
// is the HTTP code the controller maps it to; Cause stays server-side and
// is never serialized to the client.
type Error struct {
	Code    string
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	ok := errors.As(err, &de)
	return de, ok
}

// ErrNotFound marks a missing entity of the named kind.
func ErrNotFound(kind string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: kind + " not found",
		Status:  http.StatusNotFound,
	}
}

// ErrAccountNotFound is returned by signin for an unknown email and by
// profile lookups for a stale token subject.
func ErrAccountNotFound() *Error {
	return &Error{
		Code:    CodeAccountNotFound,
		Message: "account not found",
		Status:  http.StatusNotFound,
	}
}

// ErrCartNotFound is returned when the principal has no cart document.
func ErrCartNotFound() *Error {
	return &Error{
		Code:    CodeCartNotFound,
		Message: "cart not found",
		Status:  http.StatusNotFound,
	}
}

// ErrDuplicate reports a unique-index conflict on the given field.
func ErrDuplicate(field string) *Error {
	return &Error{
		Code:    CodeDuplicate,
		Message: field + " already in use",
		Status:  http.StatusConflict,
	}
}

// ErrWrongPassword is a credential mismatch at signin.
func ErrWrongPassword() *Error {
	return &Error{
		Code:    CodeWrongPassword,
		Message: "wrong password",
		Status:  http.StatusBadRequest,
	}
}

// ErrEmptyCart rejects checkout of a cart with no lines.
func ErrEmptyCart() *Error {
	return &Error{
		Code:    CodeEmptyCart,
		Message: "cart is empty",
		Status:  http.StatusBadRequest,
	}
}

// ErrInconsistentCart aborts aggregation when a referenced item or its
// catalog entry is missing. The whole checkout fails; no partial total is
// ever returned.
func ErrInconsistentCart(refID string) *Error {
	return &Error{
		Code:    CodeInconsistentCart,
		Message: "cart references missing document " + refID,
		Status:  http.StatusConflict,
	}
}

// ErrInvalidQuantity rejects a non-positive line quantity.
func ErrInvalidQuantity(refID string) *Error {
	return &Error{
		Code:    CodeInvalidQuantity,
		Message: "invalid quantity on item " + refID,
		Status:  http.StatusBadRequest,
	}
}

// ErrInvalidDiscount rejects a negative line discount.
func ErrInvalidDiscount(refID string) *Error {
	return &Error{
		Code:    CodeInvalidDiscount,
		Message: "invalid discount on item " + refID,
		Status:  http.StatusBadRequest,
	}
}

// ErrPaymentGateway wraps a payment processor failure.
func ErrPaymentGateway(cause error) *Error {
	return &Error{
		Code:    CodePaymentGateway,
		Message: "payment gateway failure",
		Status:  http.StatusBadGateway,
		Cause:   cause,
	}
}

// ErrUpstream wraps a document store failure.
func ErrUpstream(cause error) *Error {
	return &Error{
		Code:    CodeUpstream,
		Message: "upstream failure",
		Status:  http.StatusBadGateway,
		Cause:   cause,
	}
}
