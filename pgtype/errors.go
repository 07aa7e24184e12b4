package pgtype

import (
	"errors"
	"fmt"
)

// Error kinds. Every construction failure unwraps to exactly one of these.
var (
	// ErrInvalidFormat means a string did not match the type's text grammar.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidObject means a structured (object) input was missing fields or had mistyped fields.
	ErrInvalidObject = errors.New("invalid object")

	// ErrInvalidArguments means positional arguments had the wrong arity or type.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrOutOfRange means a numeric, bit-width or calendar field bound was violated.
	ErrOutOfRange = errors.New("out of range")
)

// ParseError describes why a value could not be constructed.
type ParseError struct {
	TypeName string
	Kind     error
	Reason   string
	Err      error
}

func (e *ParseError) Error() string {
	var what string
	switch e.Kind {
	case ErrInvalidFormat:
		what = "string"
	case ErrInvalidObject:
		what = "object"
	case ErrInvalidArguments:
		what = "arguments"
	case ErrOutOfRange:
		what = "value"
	default:
		what = "input"
	}

	msg := fmt.Sprintf("invalid %s %s", e.TypeName, what)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil && !isKind(e.Err) {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns both the kind and the underlying cause so errors.Is matches either.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func formatError(typeName, reason string) error {
	return &ParseError{TypeName: typeName, Kind: ErrInvalidFormat, Reason: reason}
}

func formatErrorf(typeName string, err error, reason string) error {
	return &ParseError{TypeName: typeName, Kind: ErrInvalidFormat, Reason: reason, Err: err}
}

func objectError(typeName, reason string) error {
	return &ParseError{TypeName: typeName, Kind: ErrInvalidObject, Reason: reason}
}

func argumentsError(typeName, reason string) error {
	return &ParseError{TypeName: typeName, Kind: ErrInvalidArguments, Reason: reason}
}

func rangeError(typeName, reason string) error {
	return &ParseError{TypeName: typeName, Kind: ErrOutOfRange, Reason: reason}
}

func isKind(err error) bool {
	switch err {
	case ErrInvalidFormat, ErrInvalidObject, ErrInvalidArguments, ErrOutOfRange:
		return true
	}
	return false
}

// withKind re-reports a validation error under the kind of the constructor path that hit it. The earlier kind stays
// reachable through errors.Is.
func withKind(err error, kind error) error {
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind == kind {
		return err
	}
	return &ParseError{TypeName: pe.TypeName, Kind: kind, Reason: pe.Reason, Err: pe.Kind}
}

func withTypeName(err error, typeName string) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	renamed := *pe
	renamed.TypeName = typeName
	return &renamed
}
