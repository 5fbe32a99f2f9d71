package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schemalattice/subschema"
)

func TestExitCodeForNilIsZero(t *testing.T) {
	assert.Equal(t, 0, exitCodeFor(nil))
}

func TestExitCodeForFalseResultIsOne(t *testing.T) {
	assert.Equal(t, 1, exitCodeFor(falseResultError{}))
}

func TestExitCodeForUnsupportedIsThree(t *testing.T) {
	err := &subschema.UnsupportedError{Location: "$.foo", Keyword: "multipleOf", Reason: "negation not representable"}
	assert.Equal(t, 3, exitCodeFor(err))
}

func TestExitCodeForWrappedUnsupportedIsThree(t *testing.T) {
	inner := &subschema.UnsupportedError{Location: "$.bar", Keyword: "pattern", Reason: "unsupported syntax"}
	wrapped := fmt.Errorf("reading schema.json: %w", inner)
	assert.Equal(t, 3, exitCodeFor(wrapped))
}

func TestExitCodeForInvalidSchemaIsTwo(t *testing.T) {
	err := &subschema.InvalidSchemaError{Location: "$.type", Err: subschema.ErrInvalidSchemaType}
	assert.Equal(t, 2, exitCodeFor(err))
}

func TestExitCodeForUnresolvedReferenceIsTwo(t *testing.T) {
	err := &subschema.UnresolvedReferenceError{Ref: "#/$defs/Missing", Location: "$.properties.x"}
	assert.Equal(t, 2, exitCodeFor(err))
}

func TestExitCodeForPlainIOErrorIsTwo(t *testing.T) {
	err := errors.New("open schema.json: no such file or directory")
	assert.Equal(t, 2, exitCodeFor(err))
}

func TestIsUnsupportedDoesNotMatchFalseResult(t *testing.T) {
	assert.False(t, isUnsupported(falseResultError{}))
}

func TestIsFalseResultDoesNotMatchUnsupported(t *testing.T) {
	err := &subschema.UnsupportedError{Location: "$.x", Keyword: "enum", Reason: "non-boolean"}
	assert.False(t, isFalseResult(err))
}

func TestFalseResultErrorHasEmptyMessage(t *testing.T) {
	assert.Equal(t, "", falseResultError{}.Error())
}
