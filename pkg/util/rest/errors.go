package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const maxReasonLength = 512

// StatusError is returned when the exchange completed but the server
// answered with a 4xx or 5xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Reason     string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%v %v: unexpected status code %v", e.Method, e.URL, e.StatusCode)
	if e.Reason != "" {
		msg += fmt.Sprintf(": %v", e.Reason)
	}
	return msg
}

// TransportError is returned when no response could be obtained at all
// (connection refused, DNS, TLS handshake, cancelled context).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%v %v: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a successful response body does not have
// the expected shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding response from %v: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsRequestError reports whether err is a *StatusError or a *TransportError.
func IsRequestError(err error) bool {
	var statusErr *StatusError
	var transportErr *TransportError
	return errors.As(err, &statusErr) || errors.As(err, &transportErr)
}

func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not a
// *StatusError.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}

func IsClientError(err error) bool {
	code := StatusCode(err)
	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}

// the admin API reports failures as {"reason": "..."}
type errorBody struct {
	Reason string `json:"reason"`
}

func newStatusError(method, url string, statusCode int, body []byte) *StatusError {
	return &StatusError{
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Reason:     reason(body),
	}
}

func reason(body []byte) string {
	var b errorBody
	if err := json.Unmarshal(body, &b); err == nil && b.Reason != "" {
		return b.Reason
	}

	r := strings.TrimSpace(string(body))
	if len(r) > maxReasonLength {
		r = r[:maxReasonLength]
	}
	return r
}

// UnmarshalBodyJSON decodes a successful response body, wrapping any
// failure in a *DecodeError.
func UnmarshalBodyJSON(url string, body []byte, target interface{}) error {
	if err := json.Unmarshal(body, target); err != nil {
		return &DecodeError{URL: url, Err: err}
	}
	return nil
}
