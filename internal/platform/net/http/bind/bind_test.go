package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "pairmatch/internal/platform/errors"
)

type payload struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"gte=0"`
}

func TestParseJSONHappyPath(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"a","count":2}`))
	got, err := ParseJSON[payload](r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "a" || got.Count != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(""))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("got %v", err)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("got %v", err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"a","nope":1}`))
	if _, err := ParseJSON[payload](r); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestParseJSONValidation(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"count":-1}`))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("got %v", err)
	}
	if e, ok := perr.As(err); !ok || e.Field() == "" {
		t.Fatalf("expected a field on the validation error: %v", err)
	}
}

func TestStruct(t *testing.T) {
	if err := Struct(&payload{Name: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Struct(&payload{}); err == nil {
		t.Fatalf("expected validation error")
	}
}
