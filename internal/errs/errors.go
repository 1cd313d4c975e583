package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
	ErrValidation     = errors.New("validation failed")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrBadCredentials = errors.New("email or password is incorrect")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("conflicting state")
	ErrUpstream       = errors.New("upstream api unavailable")
	ErrCircuitOpen    = errors.New("upstream api circuit open")
)

// order matters: the first sentinel matched by errors.Is wins.
var errorMap = []struct {
	err    error
	status int
}{
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrBadCredentials, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrNotFound, http.StatusNotFound},
	{ErrValidation, http.StatusUnprocessableEntity},
	{ErrBadRequest, http.StatusBadRequest},
	{ErrConflict, http.StatusConflict},
	{ErrCircuitOpen, http.StatusServiceUnavailable},
	{ErrUpstream, http.StatusBadGateway},
	{ErrInternalServer, http.StatusInternalServerError},
}

func GetErrorStatusCode(err error) int {
	for _, e := range errorMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// Keyed attaches a translation key to a sentinel so handlers can render
// a localized message for it.
type Keyed struct {
	Err error
	Key string
}

func (k *Keyed) Error() string { return k.Key + ": " + k.Err.Error() }

func (k *Keyed) Unwrap() error { return k.Err }

func WithKey(err error, key string) error {
	return &Keyed{Err: err, Key: key}
}

// Key returns the translation key carried by err, or "".
func Key(err error) string {
	var k *Keyed
	if errors.As(err, &k) {
		return k.Key
	}
	return ""
}
