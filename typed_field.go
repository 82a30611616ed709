// typed_field.go — type-safe field helpers for container errors.
//
// Every error raised by a container records its facts under a fixed set of
// keys. TypedField gives callers typed access to them without spelling out
// map lookups and assertions:
//
//	idx, ok := xgxvariant.FieldIndex.Get(err)       // requested index
//	act, ok := xgxvariant.FieldActive.Get(err)      // active index at the time
//	fb, ok  := xgxvariant.FieldFallback.Get(err)    // fallback taken by emplace
//
// Caveats
//   • The dynamic type stored in the context MUST match T exactly; no
//     implicit conversions are made.
//   • Get reads foreign errors through errors.As, so wrapped container errors
//     are found too.
package xgxvariant

import (
	"errors"
	"fmt"
)

// Context keys recorded by container errors.
const (
	KeyIndex    = "index"
	KeyActive   = "active"
	KeyType     = "type"
	KeyFallback = "fallback"
)

// Typed accessors for the keys above.
var (
	FieldIndex    = FieldOf[int](KeyIndex)
	FieldActive   = FieldOf[int](KeyActive)
	FieldType     = FieldOf[string](KeyType)
	FieldFallback = FieldOf[int](KeyFallback)
)

// TypedField provides typed access to one context key.
type TypedField[T any] struct {
	key string
}

// FieldOf constructs a TypedField[T] for a given key.
func FieldOf[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying string key for this field.
func (f TypedField[T]) Key() string { return f.key }

// Set attaches (key = val) to err and returns a NEW Error.
func (f TypedField[T]) Set(err error, val T) Error {
	return With(err, f.key, any(val))
}

// Get retrieves the typed value for this field from err or any error it
// wraps. Returns (zero, false) if absent or of a different dynamic type.
func (f TypedField[T]) Get(err error) (T, bool) {
	var zero T
	v, ok := lookupField(err, f.key)
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet retrieves the typed value or panics if it is missing or of a
// different dynamic type. Intended for tests.
func (f TypedField[T]) MustGet(err error) T {
	var zero T
	v, ok := lookupField(err, f.key)
	if !ok {
		panic(fmt.Errorf("xgxvariant.TypedField[%T](%q): field missing", zero, f.key))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("xgxvariant.TypedField[%T](%q): wrong dynamic type (%T)", zero, f.key, v))
	}
	return tv
}

// lookupField scans native errors without allocating and falls back to the
// Context() map for foreign Error implementations.
func lookupField(err error, key string) (any, bool) {
	if err == nil {
		return nil, false
	}
	var fe *failureErr
	if errors.As(err, &fe) {
		if v, ok := fe.ctx.lookup(key); ok {
			return v, true
		}
	}
	var de *defectErr
	if errors.As(err, &de) {
		if v, ok := de.ctx.lookup(key); ok {
			return v, true
		}
	}
	var xe Error
	if errors.As(err, &xe) {
		v, ok := xe.Context()[key]
		return v, ok
	}
	return nil, false
}
