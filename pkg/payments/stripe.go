package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const stripeAPIURL = "https://api.stripe.com/v1"

// StripeGateway creates PaymentIntents via the Stripe REST API.
type StripeGateway struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewStripeGateway returns a gateway authenticated with the given secret
// key. baseURL overrides the Stripe endpoint for tests; pass "" for the
// real API.
func NewStripeGateway(apiKey, baseURL string) *StripeGateway {
	if baseURL == "" {
		baseURL = stripeAPIURL
	}
	return &StripeGateway{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type stripeIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type stripeError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent posts a PaymentIntent with the given amount (minor units)
// and currency. Gateway failures surface as errors with the upstream
// message attached; nothing is retried here.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("payments: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payments: create intent: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("payments: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var se stripeError
		if json.Unmarshal(body, &se) == nil && se.Error.Message != "" {
			return nil, fmt.Errorf("payments: gateway %d: %s", resp.StatusCode, se.Error.Message)
		}
		return nil, fmt.Errorf("payments: gateway returned %d", resp.StatusCode)
	}

	var si stripeIntent
	if err := json.Unmarshal(body, &si); err != nil {
		return nil, fmt.Errorf("payments: decode intent: %w", err)
	}

	return &Intent{
		ID:           si.ID,
		ClientSecret: si.ClientSecret,
		Amount:       si.Amount,
		Currency:     si.Currency,
	}, nil
}
