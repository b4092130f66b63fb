package auction

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// DefaultErrorMessage is shown when a request fails without a usable explanation
const DefaultErrorMessage = "Something went wrong. Try again in a moment."

var errNoData = errors.New("response carried no data")

// FieldError is a single rejection reason reported by the auction API
type FieldError struct {
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

// ServerError is an auction API error
type ServerError struct {
	StatusCode int          `json:"statusCode"`
	Status     string       `json:"status"`
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors"`
}

func (se ServerError) Error() string {
	if msg := se.fieldMessages(); msg != "" {
		return msg
	}
	if se.Message != "" {
		return se.Message
	}
	return se.Status
}

func (se ServerError) fieldMessages() string {
	messages := make([]string, 0, len(se.Errors))
	for _, e := range se.Errors {
		if e.Message != "" {
			messages = append(messages, e.Message)
		}
	}
	return strings.Join(messages, " ")
}

// parseResponseError attempts to read and unmarshal a server error
// from the provided *http.Response
func parseResponseError(res *http.Response) error {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return err
	}

	var serverError ServerError
	if buf.Len() > 0 {
		// an unreadable body still yields a ServerError without a message
		_ = json.Unmarshal(buf.Bytes(), &serverError)
	}
	serverError.StatusCode = res.StatusCode
	serverError.Status = res.Status
	return serverError
}

// ErrorMessage normalizes err into the single message shown to the user:
// the server's field errors joined by a space, else its top-level message,
// else the provided fallback. Anything that is not a server rejection
// reads as DefaultErrorMessage.
func ErrorMessage(err error, fallback string) string {
	var serverErr ServerError
	if !errors.As(err, &serverErr) {
		return DefaultErrorMessage
	}

	if msg := serverErr.fieldMessages(); msg != "" {
		return msg
	}
	if serverErr.Message != "" {
		return serverErr.Message
	}
	if fallback != "" {
		return fallback
	}
	return DefaultErrorMessage
}

// UserError is a failed user-initiated operation, carrying the normalized
// message alongside the underlying cause
type UserError struct {
	Message string
	Err     error
}

// NewUserError creates a new UserError for err
func NewUserError(err error, fallback string) error {
	return UserError{ErrorMessage(err, fallback), err}
}

func (ue UserError) Error() string { return ue.Message }

// Unwrap returns the underlying cause
func (ue UserError) Unwrap() error { return ue.Err }
