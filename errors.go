package subschema

import (
	"errors"
	"fmt"
)

// === Parsing and type-conversion errors ===
var (
	// ErrInvalidSchemaType is returned when "type" is neither a string nor
	// an array of strings.
	ErrInvalidSchemaType = errors.New("invalid schema type")

	// ErrUnsupportedRatType is returned when a numeric keyword's JSON value
	// cannot be converted to a rational number.
	ErrUnsupportedRatType = errors.New("unsupported type for rational conversion")

	// ErrRatConversion is returned when a numeric literal cannot be parsed
	// as a rational number.
	ErrRatConversion = errors.New("rational conversion failed")
)

// === Decision-level error kinds ===
var (
	// ErrUnresolvedReference is returned when a $ref cannot be resolved
	// against the schema's $defs/definitions table.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrUnsupported is returned when a construct falls outside what the
	// decision procedure can represent exactly: a regex pattern outside the
	// restricted dialect, or a "not" whose complement cannot be represented
	// and whose containing query cannot fall back to a structural case.
	ErrUnsupported = errors.New("unsupported construct")
)

// InvalidSchemaError wraps a malformed-input error with the offending
// location, surfaced at the façade boundary: the canonicalizer rejects
// malformed input early, before any kernel runs.
type InvalidSchemaError struct {
	Location string
	Err      error
}

func (e *InvalidSchemaError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("invalid schema: %v", e.Err)
	}
	return fmt.Sprintf("invalid schema at %s: %v", e.Location, e.Err)
}

func (e *InvalidSchemaError) Unwrap() error { return e.Err }

// UnresolvedReferenceError names the $ref string and its containing
// location.
type UnresolvedReferenceError struct {
	Ref      string
	Location string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference %q at %s", e.Ref, e.Location)
}

func (e *UnresolvedReferenceError) Unwrap() error { return ErrUnresolvedReference }

// UnsupportedError names the subschema location and keyword that could not
// be decided exactly.
type UnsupportedError struct {
	Location string
	Keyword  string
	Reason   string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s at %s: %s", e.Keyword, e.Location, e.Reason)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }
