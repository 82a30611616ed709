// compare.go — equality and ordering of containers.
package xgxvariant

import (
	"cmp"
	"reflect"
)

// Equal reports whether a and b have the same alternatives, the same active
// index and equal active values.
func Equal(a, b Container) bool {
	x, y := a.core(), b.core()
	if !x.alts().sameAs(y.alts()) {
		return false
	}
	i := x.index()
	if i != y.index() {
		return false
	}
	if x == y {
		return true
	}
	return x.alts().At(i).equal(x.obj(), y.obj())
}

// Compare orders a and b by active index, then by the active values. It
// fails with not_ordered when the active alternative has no ordering and
// with mismatched_alternatives when a and b have different alternatives.
func Compare(a, b Container) (int, error) {
	x, y := a.core(), b.core()
	if !x.alts().sameAs(y.alts()) {
		return 0, errMismatched()
	}
	i, j := x.index(), y.index()
	if i != j {
		return cmp.Compare(i, j), nil
	}
	alt := x.alts().At(i)
	if alt.compare == nil {
		return 0, errNotOrdered(i, alt.typ)
	}
	if x == y {
		return 0, nil
	}
	return alt.compare(x.obj(), y.obj()), nil
}

// Less reports whether a orders before b.
func Less(a, b Container) (bool, error) {
	c, err := Compare(a, b)
	return c < 0, err
}

func kindOrdered(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}

// compareKind orders two values of the same ordered kind.
func compareKind(x, y reflect.Value) int {
	switch {
	case x.CanInt():
		return cmp.Compare(x.Int(), y.Int())
	case x.CanUint():
		return cmp.Compare(x.Uint(), y.Uint())
	case x.CanFloat():
		return cmp.Compare(x.Float(), y.Float())
	default:
		return cmp.Compare(x.String(), y.String())
	}
}
