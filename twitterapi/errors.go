package twitterapi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedResponse matches any *MalformedResponseError.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUnknownEnumValue matches any *UnknownEnumValueError.
	ErrUnknownEnumValue = errors.New("unknown enum value")
)

// RequestFailedError is returned for every non-2xx response. Body is the
// raw response body, never parsed as a resource.
type RequestFailedError struct {
	StatusCode int
	Body       []byte
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, string(e.Body))
}

// MalformedResponseError reports a 2xx body that lacks `data` or a field the
// API contract guarantees.
type MalformedResponseError struct {
	Field string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed response: missing %s", e.Field)
	}
	return fmt.Sprintf("malformed response: %s: %v", e.Field, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// UnknownEnumValueError is returned when the server sends a value outside a
// closed set (media type, voting status, reference type).
type UnknownEnumValueError struct {
	Enum  string
	Value string
	Field string
}

func (e *UnknownEnumValueError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("unknown %s value %q at %s", e.Enum, e.Value, e.Field)
	}
	return fmt.Sprintf("unknown %s value %q", e.Enum, e.Value)
}

func (e *UnknownEnumValueError) Is(target error) bool {
	return target == ErrUnknownEnumValue
}

// APIError is one entry of the `errors` array the API sends alongside (or
// instead of) `data`.
type APIError struct {
	Title        string
	Detail       string
	Type         string
	ResourceType string
	ResourceID   string
	Parameter    string
	Value        string
}

func (e APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

type APIErrors []APIError

func (e APIErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, apiErr := range e {
		msgs = append(msgs, apiErr.Error())
	}
	return "api errors: " + strings.Join(msgs, "; ")
}

func malformed(keys []string, err error) error {
	return &MalformedResponseError{Field: strings.Join(keys, "."), Err: err}
}
