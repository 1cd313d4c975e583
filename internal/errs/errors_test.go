package errs

import (
	"fmt"
	"net/http"
	"testing"
)

func TestGetErrorStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrUnauthorized, http.StatusUnauthorized},
		{fmt.Errorf("cart: %w", ErrNotFound), http.StatusNotFound},
		{WithKey(ErrConflict, "outOfStock"), http.StatusConflict},
		{ErrCircuitOpen, http.StatusServiceUnavailable},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := GetErrorStatusCode(tc.err); got != tc.want {
			t.Fatalf("GetErrorStatusCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestKey(t *testing.T) {
	err := fmt.Errorf("add: %w", WithKey(ErrConflict, "outOfStock"))
	if Key(err) != "outOfStock" {
		t.Fatalf("expected outOfStock key, got %q", Key(err))
	}
	if Key(ErrNotFound) != "" {
		t.Fatalf("plain sentinel should carry no key")
	}
}
