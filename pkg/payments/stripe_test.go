package payments_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/forkful/forkful/pkg/payments"
)

func TestCreateIntent(t *testing.T) {
	var gotPath, gotAuth, gotAmount, gotCurrency string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotAmount = r.PostFormValue("amount")
		gotCurrency = r.PostFormValue("currency")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret","amount":1500,"currency":"usd"}`))
	}))
	defer srv.Close()

	g := payments.NewStripeGateway("sk_test_abc", srv.URL)
	intent, err := g.CreateIntent(context.Background(), 1500, "usd")
	if err != nil {
		t.Fatalf("create intent failed: %v", err)
	}

	if gotPath != "/payment_intents" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer sk_test_abc" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotAmount != "1500" || gotCurrency != "usd" {
		t.Errorf("form = amount %q currency %q", gotAmount, gotCurrency)
	}
	if intent.ID != "pi_123" || intent.ClientSecret != "pi_123_secret" || intent.Amount != 1500 {
		t.Errorf("intent = %+v", intent)
	}
}

func TestCreateIntentGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	g := payments.NewStripeGateway("sk_test_abc", srv.URL)
	_, err := g.CreateIntent(context.Background(), 100, "usd")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "Your card was declined.") {
		t.Errorf("error lost upstream message: %v", err)
	}
}

func TestCreateIntentMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	g := payments.NewStripeGateway("sk_test_abc", srv.URL)
	if _, err := g.CreateIntent(context.Background(), 100, "usd"); err == nil {
		t.Fatal("expected a decode error")
	}
}
