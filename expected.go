// expected.go — Expected, a value or one of several error types.
package xgxvariant

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Expected holds a value of type T or an error of type E.
//
// The zero Expected holds T's zero value. When E is ErrorCode the value
// access reports a system_error, when E is Exception the captured error,
// and otherwise a *BadExpectedAccess[E].
type Expected[T, E any] struct {
	v V2[T, E]
}

// Expect returns an Expected holding x.
func Expect[T, E any](x T) (Expected[T, E], error) {
	var e Expected[T, E]
	if err := e.SetValue(x); err != nil {
		return Expected[T, E]{}, err
	}
	return e, nil
}

// Unexpect returns an Expected holding the error err.
func Unexpect[T, E any](err E) (Expected[T, E], error) {
	var e Expected[T, E]
	if err := e.SetError(err); err != nil {
		return Expected[T, E]{}, err
	}
	return e, nil
}

func (e Expected[T, E]) HasValue() bool { return e.v.Index() == 0 }
func (e Expected[T, E]) HasError() bool { return e.v.Index() == 1 }

// Value returns the value, or the access error for the held E.
func (e Expected[T, E]) Value() (T, error) {
	if p := e.v.If0(); p != nil {
		return *p, nil
	}
	var zero T
	return zero, e.accessError()
}

func (e Expected[T, E]) container() Container { return &e.v }

func (e Expected[T, E]) accessError() error {
	if p := e.v.If1(); p != nil {
		return unexpectedError(*p)
	}
	return errValuePresent()
}

// MustValue returns the value and panics with Value's error otherwise.
func (e Expected[T, E]) MustValue() T {
	x, err := e.Value()
	if err != nil {
		panic(err)
	}
	return x
}

// Ptr returns a pointer to the stored value, or nil.
func (e Expected[T, E]) Ptr() *T { return e.v.If0() }

// Err returns the held error, or a bad_expected_access error when e holds
// a value.
func (e Expected[T, E]) Err() (E, error) {
	if p := e.v.If1(); p != nil {
		return *p, nil
	}
	var zero E
	return zero, errValuePresent()
}

// Unexpected returns the error alternative as its own container, the
// subset of e without the value.
func (e Expected[T, E]) Unexpected() (*Union, error) {
	return unexpectedOf(e.v.core(), typedAlternatives(typeKey{reflect.TypeFor[E]()}, func() []*Alternative {
		return []*Alternative{AltOf[E]()}
	}))
}

func (e *Expected[T, E]) SetValue(x T) error   { return e.v.Set0(x) }
func (e *Expected[T, E]) SetError(err E) error { return e.v.Set1(err) }

// Emplace builds the value in place.
func (e *Expected[T, E]) Emplace(init func(*T) error) error { return e.v.Emplace0(init) }

// From replaces the content with a copy of src's, which must have the same
// value type and a subset of e's error types.
func (e *Expected[T, E]) From(src ExpectedLike) error { return adoptExpected(e.v.core(), src) }

// FromUnexpected replaces the content with the error held by u, whose
// alternatives must be a subset of e's error types.
func (e *Expected[T, E]) FromUnexpected(u *Union) error { return adoptUnexpected(e.v.core(), u) }

// Swap exchanges the contents of e and o.
func (e *Expected[T, E]) Swap(o *Expected[T, E]) error { return e.v.Swap(&o.v) }

// Clone returns an Expected with an independent copy of the content.
func (e Expected[T, E]) Clone() (Expected[T, E], error) {
	var n Expected[T, E]
	if err := n.v.Assign(&e.v); err != nil {
		return Expected[T, E]{}, err
	}
	return n, nil
}

// Equal reports whether e and o hold equal values or equal errors.
func (e Expected[T, E]) Equal(o Expected[T, E]) bool { return e.v.Equal(&o.v) }

func (e Expected[T, E]) String() string {
	if p := e.v.If0(); p != nil {
		return fmt.Sprintf("expected(%v)", *p)
	}
	return fmt.Sprintf("unexpected(%v)", *e.v.If1())
}

func (e Expected[T, E]) LogValue() slog.Value { return e.v.LogValue() }

// ExpectedThen applies fn to the value of e; an error passes through.
func ExpectedThen[T, U, E any](e Expected[T, E], fn func(T) U) (Expected[U, E], error) {
	if p := e.v.If0(); p != nil {
		return Expect[U, E](fn(*p))
	}
	return Unexpect[U](*e.v.If1())
}

// ExpectedAndThen is ExpectedThen for functions returning an Expected.
func ExpectedAndThen[T, U, E any](e Expected[T, E], fn func(T) (Expected[U, E], error)) (Expected[U, E], error) {
	if p := e.v.If0(); p != nil {
		return fn(*p)
	}
	return Unexpect[U](*e.v.If1())
}

// RemapError converts the error with fn; a value passes through.
func RemapError[T, E, F any](e Expected[T, E], fn func(E) F) (Expected[T, F], error) {
	if p := e.v.If1(); p != nil {
		return Unexpect[T](fn(*p))
	}
	return Expect[T, F](*e.v.If0())
}

// RemapErrorCode converts an enum-like error to its ErrorCode.
func RemapErrorCode[T any, E ErrorCoder](e Expected[T, E]) (Expected[T, ErrorCode], error) {
	return RemapError(e, MakeErrorCode[E])
}

// ToResult converts e to a Result, mapping the error through its ErrorCode.
func ToResult[T any, E ErrorCoder](e Expected[T, E]) (Result[T], error) {
	if p := e.v.If1(); p != nil {
		return Fail[T]((*p).ErrorCode()), nil
	}
	var r Result[T]
	if err := r.SetValue(*e.v.If0()); err != nil {
		return Result[T]{}, err
	}
	return r, nil
}
