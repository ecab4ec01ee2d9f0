package client

import "fmt"

// The operation layer converts every failure into one of three kinds before
// it reaches a store: transport, HTTP status, or decode. None of them is ever
// raised past the operation boundary as a panic.

// TransportError wraps a network-level failure: unreachable host, connection
// reset, or a timed-out round-trip.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non-2xx response. Message carries the server-provided
// message when the body decoded to one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("http %d", e.Code)
}

// DecodeError is a response body that is not valid JSON of the expected
// shape, or a create/update result missing its id.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }
