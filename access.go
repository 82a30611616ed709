// access.go — generic access, emplacement and assignment by type or index.
package xgxvariant

import (
	"reflect"
)

// Generic access by type or index. Type-based forms require T to occur
// exactly once in the alternative list; anything else is a defect, as is an
// index out of range or naming an alternative of another type.

// Holds reports whether the active alternative is the one of type T.
func Holds[T any](c Container) bool {
	b := c.core()
	return b.index() == b.alts().mustFind(reflect.TypeFor[T]())
}

// Get returns a pointer to the active T, or a bad_access error.
func Get[T any](c Container) (*T, error) {
	b := c.core()
	return typedGet[T](b, b.alts().mustFind(reflect.TypeFor[T]()))
}

// GetIf returns a pointer to the active T, or nil.
func GetIf[T any](c Container) *T {
	b := c.core()
	return typedIf[T](b, b.alts().mustFind(reflect.TypeFor[T]()))
}

// GetAt returns a pointer to alternative i, which must have type T.
func GetAt[T any](c Container, i int) (*T, error) {
	b := c.core()
	checkAlt[T](b, i)
	return typedGet[T](b, i)
}

// GetIfAt returns a pointer to alternative i when it is active, else nil.
func GetIfAt[T any](c Container, i int) *T {
	b := c.core()
	checkAlt[T](b, i)
	return typedIf[T](b, i)
}

// Emplace destroys the current value and builds the T alternative in place.
// A nil init default constructs. On failure the error says whether the
// container kept its old value or fell back (see FallbackOf).
//
// Only a resting alternative (one embedding Monostate or built with
// AsResting, without an Init hook) serves as the fallback of a
// single-buffered set. A set without one builds the new value in a
// temporary first, even when some alternative's zero value is always
// available.
func Emplace[T any](c Container, init func(*T) error) error {
	b := c.core()
	return typedEmplace(b, b.alts().mustFind(reflect.TypeFor[T]()), init)
}

// EmplaceAt is Emplace addressing the alternative by index, which is how
// repeated types are told apart.
func EmplaceAt[T any](c Container, i int, init func(*T) error) error {
	b := c.core()
	checkAlt[T](b, i)
	return typedEmplace(b, i, init)
}

// Set destroys the current value and moves x into the T alternative.
func Set[T any](c Container, x T) error {
	b := c.core()
	return typedSet(b, b.alts().mustFind(reflect.TypeFor[T]()), x)
}

// SetAt moves x into alternative i, which must have type T.
func SetAt[T any](c Container, i int, x T) error {
	b := c.core()
	checkAlt[T](b, i)
	return typedSet(b, i, x)
}

// Assign stores u in the best-matching alternative: the one whose type is
// identical to u's, else the one interface u is assignable to. Assigning to
// the active alternative replaces the value in place.
func Assign[U any](c Container, u U) error {
	b := c.core()
	i, err := b.alts().Match(matchType(u))
	if err != nil {
		return err
	}
	return b.assignValue(i, any(u))
}

// Default returns a typed container holding alternative 0, default
// constructed (its Init hook runs, unlike the zero container).
func Default[V any, PV interface {
	*V
	Container
}]() (*V, error) {
	v := new(V)
	b := PV(v).core()
	if err := b.emplace(0, b.alts().At(0).defaultConstruction()); err != nil {
		return nil, err
	}
	return v, nil
}

// Make returns a typed container holding u in its best-matching alternative.
func Make[V any, PV interface {
	*V
	Container
}, U any](u U) (*V, error) {
	v := new(V)
	b := PV(v).core()
	i, err := b.alts().Match(matchType(u))
	if err != nil {
		return nil, err
	}
	if err := b.emplace(i, b.alts().At(i).moveConstruction(any(u))); err != nil {
		return nil, err
	}
	return v, nil
}

// InPlaceIndex returns a typed container holding alternative i built by init.
func InPlaceIndex[V any, PV interface {
	*V
	Container
}, T any](i int, init func(*T) error) (*V, error) {
	v := new(V)
	b := PV(v).core()
	checkAlt[T](b, i)
	if err := typedEmplace(b, i, init); err != nil {
		return nil, err
	}
	return v, nil
}

// InPlaceType returns a typed container holding the T alternative built by
// init.
func InPlaceType[V any, PV interface {
	*V
	Container
}, T any](init func(*T) error) (*V, error) {
	v := new(V)
	b := PV(v).core()
	if err := typedEmplace(b, b.alts().mustFind(reflect.TypeFor[T]()), init); err != nil {
		return nil, err
	}
	return v, nil
}

// checkAlt panics with a defect unless alternative i has type T.
func checkAlt[T any](b *base, i int) {
	a := b.alts().At(i)
	if t := reflect.TypeFor[T](); a.typ != t {
		panicDefect(errNoMatch(t).Ctx("", KeyIndex, i, "want", a.name))
	}
}

// matchType is the type used for best-match resolution: the static type,
// or the dynamic type when U is an interface.
func matchType[U any](u U) reflect.Type {
	t := reflect.TypeFor[U]()
	if t.Kind() == reflect.Interface {
		return reflect.TypeOf(any(u))
	}
	return t
}
