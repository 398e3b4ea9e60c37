// Package gateway is the client side of the order calendar backend. It
// fetches providers, countries and events and classifies every failure as
// either an expired session or a generic gateway error.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Gateway is what the cascade controller needs from the backend.
type Gateway interface {
	FetchProviders(ctx context.Context) ([]string, error)
	FetchCountries(ctx context.Context, provider string) ([]string, error)
	FetchEvents(ctx context.Context, provider, country string) ([]Event, error)
}

// Event is one record returned by the events endpoint. Its content is
// opaque here and is handed to the calendar verbatim.
type Event struct {
	raw json.RawMessage
}

// NewEvent wraps an already encoded JSON value.
func NewEvent(raw string) Event {
	return Event{raw: json.RawMessage(raw)}
}

// Raw returns the encoded record.
func (e Event) Raw() json.RawMessage {
	return e.raw
}

func (e *Event) UnmarshalJSON(data []byte) error {
	e.raw = append(e.raw[:0], data...)
	return nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	if e.raw == nil {
		return []byte("null"), nil
	}
	return e.raw, nil
}

// Kind classifies a failed gateway call.
type Kind int

const (
	// KindGateway covers transport, cancellation and malformed payloads.
	KindGateway Kind = iota
	// KindUnauthenticated means the backend answered non-2xx: the session
	// is missing or expired.
	KindUnauthenticated
)

func (k Kind) String() string {
	if k == KindUnauthenticated {
		return "unauthenticated"
	}
	return "gateway"
}

var (
	// ErrUnauthenticated matches any *Error of KindUnauthenticated via errors.Is.
	ErrUnauthenticated = errors.New("session expired or missing")
	// ErrBadCredentials is returned by Login when the backend rejects the
	// username/password pair.
	ErrBadCredentials = errors.New("invalid credentials")
)

// Error is the classified failure of one gateway operation.
type Error struct {
	Kind   Kind
	Op     string // "providers", "countries", "events", "ics", "login"
	Status int    // HTTP status, 0 when no response was received
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Kind, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target == ErrUnauthenticated && e.Kind == KindUnauthenticated
}

// IsUnauthenticated reports whether err is a session failure.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

func unauthenticated(op string, status int) *Error {
	return &Error{Kind: KindUnauthenticated, Op: op, Status: status}
}

func failure(op string, err error) *Error {
	return &Error{Kind: KindGateway, Op: op, Err: err}
}
