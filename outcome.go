// outcome.go — Outcome, a value, an error code or an exception.
package xgxvariant

import (
	"fmt"
	"log/slog"
)

// Outcome holds a value of type T, an ErrorCode or an Exception.
//
// Like Result, the zero Outcome is not initialized and Err reports
// OutcomeCategory's NotInitialized code.
type Outcome[T any] struct {
	v V3[ErrorCode, T, Exception]
}

// NewOutcome returns a not-initialized Outcome.
func NewOutcome[T any]() Outcome[T] {
	var o Outcome[T]
	o.SetError(OutcomeCategory().Code(NotInitialized))
	return o
}

// OutcomeOk returns an Outcome holding x. A failing Relocate hook is
// captured as the exception.
func OutcomeOk[T any](x T) Outcome[T] {
	var o Outcome[T]
	if err := o.SetValue(x); err != nil {
		o.SetException(err)
	}
	return o
}

// OutcomeFail returns an Outcome holding ec.
func OutcomeFail[T any](ec ErrorCode) Outcome[T] {
	var o Outcome[T]
	o.SetError(ec)
	return o
}

// OutcomeException returns an Outcome holding err in its exception channel.
func OutcomeException[T any](err error) Outcome[T] {
	var o Outcome[T]
	o.SetException(err)
	return o
}

// Catch runs fn and captures its result: a value, or its error (an
// ErrorCode goes to the error channel, anything else to the exception
// channel), or a recovered panic as the exception.
func Catch[T any](fn func() (T, error)) (o Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			o = OutcomeException[T](errPanicked(r))
		}
	}()
	x, err := fn()
	if err == nil {
		return OutcomeOk(x)
	}
	if ec, ok := err.(ErrorCode); ok {
		return OutcomeFail[T](ec)
	}
	return OutcomeException[T](err)
}

func (o Outcome[T]) HasValue() bool     { return o.v.Index() == 1 }
func (o Outcome[T]) HasError() bool     { return o.v.Index() == 0 }
func (o Outcome[T]) HasException() bool { return o.v.Index() == 2 }

// Value returns the value. An error code is reported as system_error, an
// exception as its captured error.
func (o Outcome[T]) Value() (T, error) {
	var zero T
	switch o.v.Index() {
	case 1:
		return *o.v.If1(), nil
	case 2:
		x := o.v.If2()
		if x.Err == nil {
			return zero, New(CodeBadAccess, "null exception")
		}
		return zero, x.Err
	default:
		return zero, errSystem(o.Err())
	}
}

// MustValue returns the value and panics with Value's error otherwise.
func (o Outcome[T]) MustValue() T {
	x, err := o.Value()
	if err != nil {
		panic(err)
	}
	return x
}

// Ptr returns a pointer to the stored value, or nil.
func (o Outcome[T]) Ptr() *T { return o.v.If1() }

// Err returns the stored code, or the zero ErrorCode when o holds no code.
func (o Outcome[T]) Err() ErrorCode {
	p := o.v.If0()
	if p == nil {
		return ErrorCode{}
	}
	if p.IsZero() {
		return OutcomeCategory().Code(NotInitialized)
	}
	return *p
}

// Exception returns the captured exception; an error code is reported as
// a system_error. It is nil when o holds a value.
func (o Outcome[T]) Exception() error {
	switch o.v.Index() {
	case 1:
		return nil
	case 2:
		return o.v.If2().Err
	default:
		return errSystem(o.Err())
	}
}

func (o *Outcome[T]) SetValue(x T) error { return o.v.Set1(x) }

func (o *Outcome[T]) SetError(ec ErrorCode) {
	if err := o.v.Set0(ec); err != nil {
		panicDefect(err)
	}
}

func (o *Outcome[T]) SetException(err error) {
	if e := o.v.Set2(Exception{Err: err}); e != nil {
		panicDefect(e)
	}
}

// Swap exchanges the contents of o and p.
func (o *Outcome[T]) Swap(p *Outcome[T]) error { return o.v.Swap(&p.v) }

// Clone returns an Outcome with an independent copy of the content.
func (o Outcome[T]) Clone() (Outcome[T], error) {
	var n Outcome[T]
	if err := n.v.Assign(&o.v); err != nil {
		return Outcome[T]{}, err
	}
	return n, nil
}

// Equal reports whether o and p hold equal content. Exceptions are equal
// when they wrap equal errors.
func (o Outcome[T]) Equal(p Outcome[T]) bool {
	if o.HasError() && p.HasError() {
		return o.Err() == p.Err()
	}
	return o.v.Equal(&p.v)
}

func (o Outcome[T]) String() string {
	switch o.v.Index() {
	case 1:
		return fmt.Sprintf("ok(%v)", *o.v.If1())
	case 2:
		return fmt.Sprintf("exception(%v)", *o.v.If2())
	default:
		return fmt.Sprintf("error(%v)", o.Err())
	}
}

func (o Outcome[T]) LogValue() slog.Value {
	switch o.v.Index() {
	case 1:
		return slog.AnyValue(*o.v.If1())
	case 2:
		return slog.StringValue(o.v.If2().Error())
	default:
		return o.Err().LogValue()
	}
}

// OutcomeThen applies fn to the value of o; errors and exceptions pass
// through unchanged.
func OutcomeThen[T, U any](o Outcome[T], fn func(T) U) Outcome[U] {
	return OutcomeAndThen(o, func(x T) Outcome[U] { return OutcomeOk(fn(x)) })
}

// OutcomeAndThen is OutcomeThen for functions returning an Outcome.
func OutcomeAndThen[T, U any](o Outcome[T], fn func(T) Outcome[U]) Outcome[U] {
	switch o.v.Index() {
	case 1:
		return fn(*o.v.If1())
	case 2:
		return OutcomeException[U](o.v.If2().Err)
	default:
		return OutcomeFail[U](o.Err())
	}
}
