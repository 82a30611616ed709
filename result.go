// result.go — Result, a value or an error code.
package xgxvariant

import (
	"fmt"
	"log/slog"
)

// Result holds either a value of type T or an ErrorCode.
//
// The zero Result is "not initialized": it has no value and Err reports
// ResultCategory's NotInitialized code. Copies of a Result share the stored
// value; use Clone for an independent copy.
type Result[T any] struct {
	v V2[ErrorCode, T]
}

// NewResult returns a not-initialized Result.
func NewResult[T any]() Result[T] {
	var r Result[T]
	r.SetError(ResultCategory().Code(NotInitialized))
	return r
}

// Ok returns a Result holding x. It panics with the construction error if
// T's Relocate hook fails; use SetValue to handle that case.
func Ok[T any](x T) Result[T] {
	var r Result[T]
	if err := r.SetValue(x); err != nil {
		panic(err)
	}
	return r
}

// Fail returns a Result holding ec.
func Fail[T any](ec ErrorCode) Result[T] {
	var r Result[T]
	r.SetError(ec)
	return r
}

// HasValue reports whether r holds a value.
func (r Result[T]) HasValue() bool { return r.v.Index() == 1 }

// HasError reports whether r holds an error code.
func (r Result[T]) HasError() bool { return r.v.Index() == 0 }

// Value returns the value, or a system_error wrapping the code.
func (r Result[T]) Value() (T, error) {
	if p := r.v.If1(); p != nil {
		return *p, nil
	}
	var zero T
	return zero, errSystem(r.Err())
}

// MustValue returns the value and panics with Value's error otherwise.
func (r Result[T]) MustValue() T {
	x, err := r.Value()
	if err != nil {
		panic(err)
	}
	return x
}

// Ptr returns a pointer to the stored value, or nil.
func (r Result[T]) Ptr() *T { return r.v.If1() }

// Err returns the stored code, or the zero ErrorCode when r holds a value.
func (r Result[T]) Err() ErrorCode {
	p := r.v.If0()
	if p == nil {
		return ErrorCode{}
	}
	if p.IsZero() {
		return ResultCategory().Code(NotInitialized)
	}
	return *p
}

// SetValue replaces the content with x.
func (r *Result[T]) SetValue(x T) error { return r.v.Set1(x) }

// SetError replaces the content with ec. A zero ec reads back as
// not initialized.
func (r *Result[T]) SetError(ec ErrorCode) {
	if err := r.v.Set0(ec); err != nil {
		panicDefect(err)
	}
}

// Swap exchanges the contents of r and o.
func (r *Result[T]) Swap(o *Result[T]) error { return r.v.Swap(&o.v) }

// Clone returns a Result with an independent copy of the content.
func (r Result[T]) Clone() (Result[T], error) {
	var n Result[T]
	if err := n.v.Assign(&r.v); err != nil {
		return Result[T]{}, err
	}
	return n, nil
}

// Equal reports whether r and o hold equal values or equal codes.
func (r Result[T]) Equal(o Result[T]) bool {
	if r.HasError() && o.HasError() {
		return r.Err() == o.Err()
	}
	return r.v.Equal(&o.v)
}

func (r Result[T]) String() string {
	if p := r.v.If1(); p != nil {
		return fmt.Sprintf("ok(%v)", *p)
	}
	return fmt.Sprintf("error(%v)", r.Err())
}

func (r Result[T]) LogValue() slog.Value {
	if p := r.v.If1(); p != nil {
		return slog.AnyValue(*p)
	}
	return r.Err().LogValue()
}

// Then applies fn to the value of r; an error passes through unchanged.
func Then[T, U any](r Result[T], fn func(T) U) Result[U] {
	if p := r.v.If1(); p != nil {
		return Ok(fn(*p))
	}
	return Fail[U](r.Err())
}

// AndThen is Then for functions that themselves return a Result.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if p := r.v.If1(); p != nil {
		return fn(*p)
	}
	return Fail[U](r.Err())
}
