// expected_multi.go — Expected2 and Expected3, expectations with several
// error types, and the conversions between expectations.
//
// Go has no variadic type parameters, so each error arity is its own type.
// All of them satisfy ExpectedLike, which carries the type-based error
// access (HasErrorOf, ErrorOf) and the subset conversions (From,
// FromUnexpected).
package xgxvariant

import (
	"fmt"
	"log/slog"
	"reflect"
)

// ExpectedLike is implemented by Expected, Expected2 and Expected3. The
// underlying container holds the value at position 0 and the errors after
// it.
type ExpectedLike interface {
	HasValue() bool
	HasError() bool

	container() Container
	accessError() error
}

// HasErrorOf reports whether e holds an error of type E. E must occur
// exactly once among e's error types.
func HasErrorOf[E any](e ExpectedLike) bool {
	b := e.container().core()
	return b.index() == errorSlot(b.alts(), reflect.TypeFor[E]())
}

// ErrorOf returns the held error of type E. When e holds a value or a
// different error, the error is what Value would report for that content.
func ErrorOf[E any](e ExpectedLike) (E, error) {
	b := e.container().core()
	if b.index() == errorSlot(b.alts(), reflect.TypeFor[E]()) {
		return *b.obj().(*E), nil
	}
	var zero E
	return zero, e.accessError()
}

// errorSlot is the position of error type t in an expectation's set; t
// absent from the errors or repeated among them is a defect.
func errorSlot(s *Alternatives, t reflect.Type) int {
	j, err := findError(s, t)
	if err != nil {
		panicDefect(err)
	}
	return j
}

func findError(s *Alternatives, t reflect.Type) (int, error) {
	j, n := -1, 0
	for i := 1; i < s.Len(); i++ {
		if s.At(i).typ == t {
			if j < 0 {
				j = i
			}
			n++
		}
	}
	switch n {
	case 0:
		return -1, errNoMatch(t)
	case 1:
		return j, nil
	default:
		return -1, errAmbiguous(t, n)
	}
}

// adoptExpected copies the content of src into dst. src must have dst's
// value type and a subset of its error types; that is checked for every
// alternative of src before dst is touched.
func adoptExpected(dst *base, src ExpectedLike) error {
	sb := src.container().core()
	if sb == dst {
		return nil
	}
	sa, da := sb.alts(), dst.alts()
	if t := sa.At(0).typ; t != da.At(0).typ {
		return errMismatched().Ctx("value types differ", KeyType, typeName(t))
	}
	slots := make([]int, sa.Len())
	for k := 1; k < sa.Len(); k++ {
		j, err := findError(da, sa.At(k).typ)
		if err != nil {
			return err
		}
		slots[k] = j
	}
	k := sb.index()
	j := slots[k]
	return dst.emplace(j, da.At(j).copyConstruction(sb.obj()))
}

// adoptUnexpected copies the error held by u into dst. Every alternative of
// u must be one of dst's error types.
func adoptUnexpected(dst *base, u *Union) error {
	ub := u.core()
	ua, da := ub.alts(), dst.alts()
	slots := make([]int, ua.Len())
	for k := range slots {
		j, err := findError(da, ua.At(k).typ)
		if err != nil {
			return err
		}
		slots[k] = j
	}
	j := slots[ub.index()]
	return dst.emplace(j, da.At(j).copyConstruction(ub.obj()))
}

// unexpectedOf copies the error held by b into a Union over errs, the error
// alternatives of b in order.
func unexpectedOf(b *base, errs *Alternatives) (*Union, error) {
	i := b.index()
	if i == 0 {
		return nil, errValuePresent()
	}
	u := newUnion(errs)
	if err := u.b.emplace(i-1, errs.At(i-1).copyConstruction(b.obj())); err != nil {
		return nil, err
	}
	return u, nil
}

// Expected2 holds a value of type T or an error of type E0 or E1.
type Expected2[T, E0, E1 any] struct {
	v V3[T, E0, E1]
}

func (e Expected2[T, E0, E1]) HasValue() bool { return e.v.Index() == 0 }
func (e Expected2[T, E0, E1]) HasError() bool { return e.v.Index() != 0 }

// Value returns the value, or the access error for the held error.
func (e Expected2[T, E0, E1]) Value() (T, error) {
	if p := e.v.If0(); p != nil {
		return *p, nil
	}
	var zero T
	return zero, e.accessError()
}

// MustValue returns the value and panics with Value's error otherwise.
func (e Expected2[T, E0, E1]) MustValue() T {
	x, err := e.Value()
	if err != nil {
		panic(err)
	}
	return x
}

func (e Expected2[T, E0, E1]) Ptr() *T { return e.v.If0() }

func (e Expected2[T, E0, E1]) container() Container { return &e.v }

func (e Expected2[T, E0, E1]) accessError() error {
	switch e.v.Index() {
	case 1:
		return unexpectedError(*e.v.If1())
	case 2:
		return unexpectedError(*e.v.If2())
	}
	return errValuePresent()
}

// Unexpected returns the held error as a Union over E0 and E1.
func (e Expected2[T, E0, E1]) Unexpected() (*Union, error) {
	return unexpectedOf(e.v.core(), typedAlternatives(typeKey{reflect.TypeFor[E0](), reflect.TypeFor[E1]()}, func() []*Alternative {
		return []*Alternative{AltOf[E0](), AltOf[E1]()}
	}))
}

func (e *Expected2[T, E0, E1]) SetValue(x T) error     { return e.v.Set0(x) }
func (e *Expected2[T, E0, E1]) SetError0(err E0) error { return e.v.Set1(err) }
func (e *Expected2[T, E0, E1]) SetError1(err E1) error { return e.v.Set2(err) }

// Emplace builds the value in place.
func (e *Expected2[T, E0, E1]) Emplace(init func(*T) error) error { return e.v.Emplace0(init) }

// From replaces the content with a copy of src's, which must have the same
// value type and a subset of e's error types.
func (e *Expected2[T, E0, E1]) From(src ExpectedLike) error { return adoptExpected(e.v.core(), src) }

// FromUnexpected replaces the content with the error held by u.
func (e *Expected2[T, E0, E1]) FromUnexpected(u *Union) error {
	return adoptUnexpected(e.v.core(), u)
}

func (e *Expected2[T, E0, E1]) Swap(o *Expected2[T, E0, E1]) error { return e.v.Swap(&o.v) }

func (e Expected2[T, E0, E1]) Clone() (Expected2[T, E0, E1], error) {
	var n Expected2[T, E0, E1]
	if err := n.v.Assign(&e.v); err != nil {
		return Expected2[T, E0, E1]{}, err
	}
	return n, nil
}

func (e Expected2[T, E0, E1]) Equal(o Expected2[T, E0, E1]) bool { return e.v.Equal(&o.v) }

func (e Expected2[T, E0, E1]) String() string { return expectedString(e.v.core()) }

func (e Expected2[T, E0, E1]) LogValue() slog.Value { return e.v.LogValue() }

// Expected3 holds a value of type T or an error of type E0, E1 or E2.
type Expected3[T, E0, E1, E2 any] struct {
	v V4[T, E0, E1, E2]
}

func (e Expected3[T, E0, E1, E2]) HasValue() bool { return e.v.Index() == 0 }
func (e Expected3[T, E0, E1, E2]) HasError() bool { return e.v.Index() != 0 }

// Value returns the value, or the access error for the held error.
func (e Expected3[T, E0, E1, E2]) Value() (T, error) {
	if p := e.v.If0(); p != nil {
		return *p, nil
	}
	var zero T
	return zero, e.accessError()
}

func (e Expected3[T, E0, E1, E2]) MustValue() T {
	x, err := e.Value()
	if err != nil {
		panic(err)
	}
	return x
}

func (e Expected3[T, E0, E1, E2]) Ptr() *T { return e.v.If0() }

func (e Expected3[T, E0, E1, E2]) container() Container { return &e.v }

func (e Expected3[T, E0, E1, E2]) accessError() error {
	switch e.v.Index() {
	case 1:
		return unexpectedError(*e.v.If1())
	case 2:
		return unexpectedError(*e.v.If2())
	case 3:
		return unexpectedError(*e.v.If3())
	}
	return errValuePresent()
}

// Unexpected returns the held error as a Union over E0, E1 and E2.
func (e Expected3[T, E0, E1, E2]) Unexpected() (*Union, error) {
	return unexpectedOf(e.v.core(), typedAlternatives(typeKey{reflect.TypeFor[E0](), reflect.TypeFor[E1](), reflect.TypeFor[E2]()}, func() []*Alternative {
		return []*Alternative{AltOf[E0](), AltOf[E1](), AltOf[E2]()}
	}))
}

func (e *Expected3[T, E0, E1, E2]) SetValue(x T) error     { return e.v.Set0(x) }
func (e *Expected3[T, E0, E1, E2]) SetError0(err E0) error { return e.v.Set1(err) }
func (e *Expected3[T, E0, E1, E2]) SetError1(err E1) error { return e.v.Set2(err) }
func (e *Expected3[T, E0, E1, E2]) SetError2(err E2) error { return e.v.Set3(err) }

func (e *Expected3[T, E0, E1, E2]) Emplace(init func(*T) error) error { return e.v.Emplace0(init) }

// From replaces the content with a copy of src's, which must have the same
// value type and a subset of e's error types.
func (e *Expected3[T, E0, E1, E2]) From(src ExpectedLike) error {
	return adoptExpected(e.v.core(), src)
}

func (e *Expected3[T, E0, E1, E2]) FromUnexpected(u *Union) error {
	return adoptUnexpected(e.v.core(), u)
}

func (e *Expected3[T, E0, E1, E2]) Swap(o *Expected3[T, E0, E1, E2]) error { return e.v.Swap(&o.v) }

func (e Expected3[T, E0, E1, E2]) Clone() (Expected3[T, E0, E1, E2], error) {
	var n Expected3[T, E0, E1, E2]
	if err := n.v.Assign(&e.v); err != nil {
		return Expected3[T, E0, E1, E2]{}, err
	}
	return n, nil
}

func (e Expected3[T, E0, E1, E2]) Equal(o Expected3[T, E0, E1, E2]) bool { return e.v.Equal(&o.v) }

func (e Expected3[T, E0, E1, E2]) String() string { return expectedString(e.v.core()) }

func (e Expected3[T, E0, E1, E2]) LogValue() slog.Value { return e.v.LogValue() }

func expectedString(b *base) string {
	if b.index() == 0 {
		return fmt.Sprintf("expected(%v)", b.value())
	}
	return fmt.Sprintf("unexpected(%v)", b.value())
}

// Expected2Then applies fn to the value of e; an error passes through.
func Expected2Then[T, U, E0, E1 any](e Expected2[T, E0, E1], fn func(T) U) (Expected2[U, E0, E1], error) {
	var n Expected2[U, E0, E1]
	var err error
	switch e.v.Index() {
	case 0:
		err = n.SetValue(fn(*e.v.If0()))
	case 1:
		err = n.SetError0(*e.v.If1())
	default:
		err = n.SetError1(*e.v.If2())
	}
	if err != nil {
		return Expected2[U, E0, E1]{}, err
	}
	return n, nil
}

// Expected3Then applies fn to the value of e; an error passes through.
func Expected3Then[T, U, E0, E1, E2 any](e Expected3[T, E0, E1, E2], fn func(T) U) (Expected3[U, E0, E1, E2], error) {
	var n Expected3[U, E0, E1, E2]
	var err error
	switch e.v.Index() {
	case 0:
		err = n.SetValue(fn(*e.v.If0()))
	case 1:
		err = n.SetError0(*e.v.If1())
	case 2:
		err = n.SetError1(*e.v.If2())
	default:
		err = n.SetError2(*e.v.If3())
	}
	if err != nil {
		return Expected3[U, E0, E1, E2]{}, err
	}
	return n, nil
}

// RemapErrors2 converts whichever error e holds to F; a value passes
// through.
func RemapErrors2[T, E0, E1, F any](e Expected2[T, E0, E1], f0 func(E0) F, f1 func(E1) F) (Expected[T, F], error) {
	switch e.v.Index() {
	case 0:
		return Expect[T, F](*e.v.If0())
	case 1:
		return Unexpect[T](f0(*e.v.If1()))
	default:
		return Unexpect[T](f1(*e.v.If2()))
	}
}

// RemapErrors3 converts whichever error e holds to F; a value passes
// through.
func RemapErrors3[T, E0, E1, E2, F any](e Expected3[T, E0, E1, E2], f0 func(E0) F, f1 func(E1) F, f2 func(E2) F) (Expected[T, F], error) {
	switch e.v.Index() {
	case 0:
		return Expect[T, F](*e.v.If0())
	case 1:
		return Unexpect[T](f0(*e.v.If1()))
	case 2:
		return Unexpect[T](f1(*e.v.If2()))
	default:
		return Unexpect[T](f2(*e.v.If3()))
	}
}

// RemapErrorCodes2 collapses the enum-like errors of e into ErrorCode.
func RemapErrorCodes2[T any, E0, E1 ErrorCoder](e Expected2[T, E0, E1]) (Expected[T, ErrorCode], error) {
	return RemapErrors2(e, MakeErrorCode[E0], MakeErrorCode[E1])
}

// RemapErrorCodes3 collapses the enum-like errors of e into ErrorCode.
func RemapErrorCodes3[T any, E0, E1, E2 ErrorCoder](e Expected3[T, E0, E1, E2]) (Expected[T, ErrorCode], error) {
	return RemapErrors3(e, MakeErrorCode[E0], MakeErrorCode[E1], MakeErrorCode[E2])
}
