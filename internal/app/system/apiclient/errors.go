package apiclient

import (
	"context"
	"errors"
	"fmt"
)

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	Method string
	URL    string
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// DecodeError wraps a response body that was not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "invalid JSON response"
	}
	return "invalid JSON response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status
	}
	return 0
}

// IsCanceled reports whether err came from the caller's context ending.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Message turns a request failure into text fit for showing to a person.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Error()
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return "The server sent a response that could not be read."
	}
	if IsCanceled(err) {
		return "The request was canceled."
	}
	return "Failed to fetch: the OctoFit API could not be reached."
}
