// Package payments adapts the external payment processor behind a small
// interface so checkout logic never talks to the wire format directly.
package payments

import "context"

// Intent is the client-usable payment handle returned by the gateway.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// Gateway creates payment intents for a computed checkout total.
// Amounts are integer minor currency units (cents).
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}
