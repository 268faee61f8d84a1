package ctx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/forkful/forkful/pkg/ctx"
)

type payload struct {
	Email string `json:"email" validate:"required,email"`
	Qty   int64  `json:"qty" validate:"required,integer,gte=1"`
}

func TestParamAndSuccess(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/things/{id}", ctx.Wrap(func(c *ctx.Context) {
		c.Success(map[string]string{"id": c.Param("id")})
	}))

	req := httptest.NewRequest(http.MethodGet, "/things/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Status int               `json:"status"`
		Data   map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != 200 || body.Data["id"] != "42" {
		t.Errorf("body = %+v", body)
	}
}

func TestBindJSONValidationFailure(t *testing.T) {
	h := ctx.Wrap(func(c *ctx.Context) {
		var p payload
		if !c.BindJSON(&p) {
			return
		}
		c.Success(p)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope","qty":0}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body.Errors["email"]; !ok {
		t.Errorf("missing email error: %v", body.Errors)
	}
	if _, ok := body.Errors["qty"]; !ok {
		t.Errorf("missing qty error: %v", body.Errors)
	}
}

func TestBindJSONMalformedBody(t *testing.T) {
	h := ctx.Wrap(func(c *ctx.Context) {
		var p payload
		if !c.BindJSON(&p) {
			return
		}
		c.Success(p)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestQueryInt(t *testing.T) {
	h := ctx.Wrap(func(c *ctx.Context) {
		if got := c.QueryInt("page", 1); got != 3 {
			t.Errorf("page = %d, want 3", got)
		}
		if got := c.QueryInt("limit", 20); got != 20 {
			t.Errorf("limit fallback = %d, want 20", got)
		}
		if got := c.QueryInt("bad", 7); got != 7 {
			t.Errorf("unparseable fallback = %d, want 7", got)
		}
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/?page=3&bad=x", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d", rec.Code)
	}
}
