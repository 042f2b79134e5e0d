// Package apperr defines the closed error taxonomy shared across
// adapters so callers switch on a kind instead of probing transport
// details.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for HTTP mapping and retry decisions.
type Kind int

const (
	// Server is the default for unclassified failures.
	Server Kind = iota
	// Validation marks rejected input; never retried.
	Validation
	// Unauthorized marks failed authentication against a collaborator.
	Unauthorized
	// NotFound marks a missing entity.
	NotFound
	// Network marks a transport failure reaching a collaborator;
	// retryable from the caller's perspective.
	Network
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not_found"
	case Network:
		return "network"
	default:
		return "server"
	}
}

// Error pairs a kind with a message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a classified error without a cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds a classified error around a cause.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from err, defaulting to Server for anything
// outside the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Server
}
