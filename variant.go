// variant.go — the typed containers V2, V3 and V4.
package xgxvariant

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Typed containers. The zero value of each is ready to use and holds
// alternative 0 at its zero value. All instances with the same type list
// share one *Alternatives, built on first use from the hooks of each type.

func typedGet[T any](b *base, i int) (*T, error) {
	p, err := b.get(i)
	if err != nil {
		return nil, err
	}
	return p.(*T), nil
}

func typedIf[T any](b *base, i int) *T {
	if p := b.getIf(i); p != nil {
		return p.(*T)
	}
	return nil
}

func typedSet[T any](b *base, i int, x T) error {
	return b.emplace(i, b.alts().At(i).moveConstruction(x))
}

func typedEmplace[T any](b *base, i int, init func(*T) error) error {
	return b.emplace(i, initConstruction(b.alts().At(i), init))
}

// V2 is a variant of two alternatives.
type V2[T0, T1 any] struct {
	b base
}

func (v *V2[T0, T1]) core() *base {
	if v.b.alts() == nil {
		v.b.bind(typedAlternatives(typeKey{reflect.TypeFor[T0](), reflect.TypeFor[T1]()}, func() []*Alternative {
			return []*Alternative{AltOf[T0](), AltOf[T1]()}
		}))
	}
	return &v.b
}

func (v *V2[T0, T1]) Index() int                  { return v.core().index() }
func (v *V2[T0, T1]) Len() int                    { return 2 }
func (v *V2[T0, T1]) Alternatives() *Alternatives { return v.core().alts() }

// Get0 returns a pointer to alternative 0, or a bad_access error when
// another alternative is active.
func (v *V2[T0, T1]) Get0() (*T0, error) { return typedGet[T0](v.core(), 0) }

func (v *V2[T0, T1]) Get1() (*T1, error) { return typedGet[T1](v.core(), 1) }

// If0 returns a pointer to alternative 0, or nil.
func (v *V2[T0, T1]) If0() *T0 { return typedIf[T0](v.core(), 0) }

func (v *V2[T0, T1]) If1() *T1 { return typedIf[T1](v.core(), 1) }

// Set0 destroys the current value and moves x into alternative 0.
func (v *V2[T0, T1]) Set0(x T0) error { return typedSet(v.core(), 0, x) }

func (v *V2[T0, T1]) Set1(x T1) error { return typedSet(v.core(), 1, x) }

// Emplace0 destroys the current value and builds alternative 0 in place
// with init. A nil init default constructs.
func (v *V2[T0, T1]) Emplace0(init func(*T0) error) error { return typedEmplace(v.core(), 0, init) }

func (v *V2[T0, T1]) Emplace1(init func(*T1) error) error { return typedEmplace(v.core(), 1, init) }

// Match calls the function for the active alternative.
func (v *V2[T0, T1]) Match(f0 func(*T0), f1 func(*T1)) {
	b := v.core()
	switch b.index() {
	case 0:
		f0(b.obj().(*T0))
	case 1:
		f1(b.obj().(*T1))
	}
}

// Clone returns an independent copy.
func (v *V2[T0, T1]) Clone() (*V2[T0, T1], error) {
	n := new(V2[T0, T1])
	if err := v.core().cloneInto(&n.b); err != nil {
		return nil, err
	}
	return n, nil
}

// Assign copies o's value into v.
func (v *V2[T0, T1]) Assign(o *V2[T0, T1]) error { return v.core().assign(o.core()) }

// Swap exchanges the values of v and o.
func (v *V2[T0, T1]) Swap(o *V2[T0, T1]) error { return v.core().swap(o.core()) }

// Equal reports whether v and o hold equal values of the same alternative.
func (v *V2[T0, T1]) Equal(o *V2[T0, T1]) bool { return Equal(v, o) }

// Compare orders v and o by index, then by value.
func (v *V2[T0, T1]) Compare(o *V2[T0, T1]) (int, error) { return Compare(v, o) }

// Reset destroys the live value; v then holds alternative 0's zero value.
func (v *V2[T0, T1]) Reset() { v.core().reset() }

func (v *V2[T0, T1]) String() string                { return v.core().String() }
func (v *V2[T0, T1]) LogValue() slog.Value          { return v.core().LogValue() }
func (v *V2[T0, T1]) Format(s fmt.State, verb rune) { v.core().Format(s, verb) }

// V3 is a variant of three alternatives.
type V3[T0, T1, T2 any] struct {
	b base
}

func (v *V3[T0, T1, T2]) core() *base {
	if v.b.alts() == nil {
		v.b.bind(typedAlternatives(typeKey{reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2]()}, func() []*Alternative {
			return []*Alternative{AltOf[T0](), AltOf[T1](), AltOf[T2]()}
		}))
	}
	return &v.b
}

func (v *V3[T0, T1, T2]) Index() int                  { return v.core().index() }
func (v *V3[T0, T1, T2]) Len() int                    { return 3 }
func (v *V3[T0, T1, T2]) Alternatives() *Alternatives { return v.core().alts() }

// Get0 returns a pointer to alternative 0, or a bad_access error when
// another alternative is active.
func (v *V3[T0, T1, T2]) Get0() (*T0, error) { return typedGet[T0](v.core(), 0) }

func (v *V3[T0, T1, T2]) Get1() (*T1, error) { return typedGet[T1](v.core(), 1) }

func (v *V3[T0, T1, T2]) Get2() (*T2, error) { return typedGet[T2](v.core(), 2) }

// If0 returns a pointer to alternative 0, or nil.
func (v *V3[T0, T1, T2]) If0() *T0 { return typedIf[T0](v.core(), 0) }

func (v *V3[T0, T1, T2]) If1() *T1 { return typedIf[T1](v.core(), 1) }

func (v *V3[T0, T1, T2]) If2() *T2 { return typedIf[T2](v.core(), 2) }

// Set0 destroys the current value and moves x into alternative 0.
func (v *V3[T0, T1, T2]) Set0(x T0) error { return typedSet(v.core(), 0, x) }

func (v *V3[T0, T1, T2]) Set1(x T1) error { return typedSet(v.core(), 1, x) }

func (v *V3[T0, T1, T2]) Set2(x T2) error { return typedSet(v.core(), 2, x) }

// Emplace0 destroys the current value and builds alternative 0 in place
// with init. A nil init default constructs.
func (v *V3[T0, T1, T2]) Emplace0(init func(*T0) error) error { return typedEmplace(v.core(), 0, init) }

func (v *V3[T0, T1, T2]) Emplace1(init func(*T1) error) error { return typedEmplace(v.core(), 1, init) }

func (v *V3[T0, T1, T2]) Emplace2(init func(*T2) error) error { return typedEmplace(v.core(), 2, init) }

// Match calls the function for the active alternative.
func (v *V3[T0, T1, T2]) Match(f0 func(*T0), f1 func(*T1), f2 func(*T2)) {
	b := v.core()
	switch b.index() {
	case 0:
		f0(b.obj().(*T0))
	case 1:
		f1(b.obj().(*T1))
	case 2:
		f2(b.obj().(*T2))
	}
}

func (v *V3[T0, T1, T2]) Clone() (*V3[T0, T1, T2], error) {
	n := new(V3[T0, T1, T2])
	if err := v.core().cloneInto(&n.b); err != nil {
		return nil, err
	}
	return n, nil
}

func (v *V3[T0, T1, T2]) Assign(o *V3[T0, T1, T2]) error { return v.core().assign(o.core()) }

func (v *V3[T0, T1, T2]) Swap(o *V3[T0, T1, T2]) error { return v.core().swap(o.core()) }

// Equal reports whether v and o hold equal values of the same alternative.
func (v *V3[T0, T1, T2]) Equal(o *V3[T0, T1, T2]) bool { return Equal(v, o) }

// Compare orders v and o by index, then by value.
func (v *V3[T0, T1, T2]) Compare(o *V3[T0, T1, T2]) (int, error) { return Compare(v, o) }

func (v *V3[T0, T1, T2]) Reset() { v.core().reset() }

func (v *V3[T0, T1, T2]) String() string                { return v.core().String() }
func (v *V3[T0, T1, T2]) LogValue() slog.Value          { return v.core().LogValue() }
func (v *V3[T0, T1, T2]) Format(s fmt.State, verb rune) { v.core().Format(s, verb) }

// V4 is a variant of four alternatives.
type V4[T0, T1, T2, T3 any] struct {
	b base
}

func (v *V4[T0, T1, T2, T3]) core() *base {
	if v.b.alts() == nil {
		v.b.bind(typedAlternatives(typeKey{reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]()}, func() []*Alternative {
			return []*Alternative{AltOf[T0](), AltOf[T1](), AltOf[T2](), AltOf[T3]()}
		}))
	}
	return &v.b
}

func (v *V4[T0, T1, T2, T3]) Index() int                  { return v.core().index() }
func (v *V4[T0, T1, T2, T3]) Len() int                    { return 4 }
func (v *V4[T0, T1, T2, T3]) Alternatives() *Alternatives { return v.core().alts() }

// Get0 returns a pointer to alternative 0, or a bad_access error when
// another alternative is active.
func (v *V4[T0, T1, T2, T3]) Get0() (*T0, error) { return typedGet[T0](v.core(), 0) }

func (v *V4[T0, T1, T2, T3]) Get1() (*T1, error) { return typedGet[T1](v.core(), 1) }

func (v *V4[T0, T1, T2, T3]) Get2() (*T2, error) { return typedGet[T2](v.core(), 2) }

func (v *V4[T0, T1, T2, T3]) Get3() (*T3, error) { return typedGet[T3](v.core(), 3) }

// If0 returns a pointer to alternative 0, or nil.
func (v *V4[T0, T1, T2, T3]) If0() *T0 { return typedIf[T0](v.core(), 0) }

func (v *V4[T0, T1, T2, T3]) If1() *T1 { return typedIf[T1](v.core(), 1) }

func (v *V4[T0, T1, T2, T3]) If2() *T2 { return typedIf[T2](v.core(), 2) }

func (v *V4[T0, T1, T2, T3]) If3() *T3 { return typedIf[T3](v.core(), 3) }

// Set0 destroys the current value and moves x into alternative 0.
func (v *V4[T0, T1, T2, T3]) Set0(x T0) error { return typedSet(v.core(), 0, x) }

func (v *V4[T0, T1, T2, T3]) Set1(x T1) error { return typedSet(v.core(), 1, x) }

func (v *V4[T0, T1, T2, T3]) Set2(x T2) error { return typedSet(v.core(), 2, x) }

func (v *V4[T0, T1, T2, T3]) Set3(x T3) error { return typedSet(v.core(), 3, x) }

// Emplace0 destroys the current value and builds alternative 0 in place
// with init. A nil init default constructs.
func (v *V4[T0, T1, T2, T3]) Emplace0(init func(*T0) error) error { return typedEmplace(v.core(), 0, init) }

func (v *V4[T0, T1, T2, T3]) Emplace1(init func(*T1) error) error { return typedEmplace(v.core(), 1, init) }

func (v *V4[T0, T1, T2, T3]) Emplace2(init func(*T2) error) error { return typedEmplace(v.core(), 2, init) }

func (v *V4[T0, T1, T2, T3]) Emplace3(init func(*T3) error) error { return typedEmplace(v.core(), 3, init) }

// Match calls the function for the active alternative.
func (v *V4[T0, T1, T2, T3]) Match(f0 func(*T0), f1 func(*T1), f2 func(*T2), f3 func(*T3)) {
	b := v.core()
	switch b.index() {
	case 0:
		f0(b.obj().(*T0))
	case 1:
		f1(b.obj().(*T1))
	case 2:
		f2(b.obj().(*T2))
	case 3:
		f3(b.obj().(*T3))
	}
}

func (v *V4[T0, T1, T2, T3]) Clone() (*V4[T0, T1, T2, T3], error) {
	n := new(V4[T0, T1, T2, T3])
	if err := v.core().cloneInto(&n.b); err != nil {
		return nil, err
	}
	return n, nil
}

func (v *V4[T0, T1, T2, T3]) Assign(o *V4[T0, T1, T2, T3]) error { return v.core().assign(o.core()) }

func (v *V4[T0, T1, T2, T3]) Swap(o *V4[T0, T1, T2, T3]) error { return v.core().swap(o.core()) }

// Equal reports whether v and o hold equal values of the same alternative.
func (v *V4[T0, T1, T2, T3]) Equal(o *V4[T0, T1, T2, T3]) bool { return Equal(v, o) }

// Compare orders v and o by index, then by value.
func (v *V4[T0, T1, T2, T3]) Compare(o *V4[T0, T1, T2, T3]) (int, error) { return Compare(v, o) }

func (v *V4[T0, T1, T2, T3]) Reset() { v.core().reset() }

func (v *V4[T0, T1, T2, T3]) String() string                { return v.core().String() }
func (v *V4[T0, T1, T2, T3]) LogValue() slog.Value          { return v.core().LogValue() }
func (v *V4[T0, T1, T2, T3]) Format(s fmt.State, verb rune) { v.core().Format(s, verb) }

var (
	_ Container = (*V2[int, string])(nil)
	_ Container = (*V3[int, string, error])(nil)
	_ Container = (*V4[int, string, error, Monostate])(nil)
)
