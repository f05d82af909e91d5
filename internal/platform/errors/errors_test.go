package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{ErrorCodeDB, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Errorf("code %d mapped to %d, want %d", c.code, got, c.want)
		}
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrs.New("low level")
	err := Wrap(cause, ErrorCodeDB, "query failed")
	if !stderrs.Is(err, cause) {
		t.Fatalf("cause not reachable via errors.Is")
	}
	if CodeOf(err) != ErrorCodeDB {
		t.Fatalf("got code %v", CodeOf(err))
	}
	if err.Error() != "query failed: low level" {
		t.Fatalf("got %q", err.Error())
	}
}

func TestCodeOfForeignError(t *testing.T) {
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatalf("foreign errors should map to unknown")
	}
}

func TestWireFrom(t *testing.T) {
	err := WithField(Validationf("name required"), "name")
	w := WireFrom(err)
	if w.Code != ErrorCodeValidation || w.Message != "name required" || w.Field != "name" {
		t.Fatalf("got %+v", w)
	}
}

func TestWireFromForeign(t *testing.T) {
	w := WireFrom(stderrs.New("oops"))
	if w.Code != ErrorCodeUnknown || w.Message != "oops" {
		t.Fatalf("got %+v", w)
	}
}

func TestWithFieldCopyOnWrite(t *testing.T) {
	base := Validationf("bad input")
	withF := WithField(base, "f")
	e, _ := As(base)
	if e.Field() != "" {
		t.Fatalf("original mutated")
	}
	e2, _ := As(withF)
	if e2.Field() != "f" {
		t.Fatalf("field not attached")
	}
}

func TestRoot(t *testing.T) {
	cause := stderrs.New("root")
	err := Wrap(Wrap(cause, ErrorCodeDB, "mid"), ErrorCodeUnknown, "outer")
	if Root(err) != cause {
		t.Fatalf("got %v", Root(err))
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode(NotFoundf("missing"), ErrorCodeNotFound) {
		t.Fatalf("IsCode failed")
	}
	if IsCode(NotFoundf("missing"), ErrorCodeDB) {
		t.Fatalf("IsCode false positive")
	}
}
