package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/wichananm65/fashion-storefront/internal/errs"
)

// APIError is a non-2xx answer from the commerce API.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}

func parseError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Err: sentinelFor(status)}

	var eb errorBody
	if len(body) > 0 && json.Unmarshal(body, &eb) == nil {
		switch {
		case eb.Message != "":
			apiErr.Message = eb.Message
		case len(eb.Errors) > 0 && eb.Errors[0].Msg != "":
			apiErr.Message = eb.Errors[0].Msg
		}
	}
	return apiErr
}

func sentinelFor(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return errs.ErrUnauthorized
	case status == http.StatusForbidden:
		return errs.ErrForbidden
	case status == http.StatusNotFound:
		return errs.ErrNotFound
	case status == http.StatusConflict:
		return errs.ErrConflict
	case status == http.StatusUnprocessableEntity:
		return errs.ErrValidation
	case status >= 500:
		return errs.ErrUpstream
	default:
		return errs.ErrBadRequest
	}
}

// MessageOf returns the server supplied message carried by err, if any.
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func IsNotFound(err error) bool { return errors.Is(err, errs.ErrNotFound) }
