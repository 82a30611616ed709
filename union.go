// union.go — the Container contract and the run-time Union.
package xgxvariant

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Container is implemented by every variant container: the typed V2, V3 and
// V4 and the type-erased Union. The generic access functions (Get, Holds,
// Emplace, Visit, ...) accept any Container.
//
// Any number of goroutines may read a container, the zero container
// included. A mutation needs exclusive access. Containers must not be copied
// by value after first use; use Clone.
type Container interface {
	// Index returns the zero-based index of the active alternative.
	Index() int
	// Len returns the number of alternatives.
	Len() int
	// Alternatives returns the container's alternative set.
	Alternatives() *Alternatives

	core() *base
}

// Union is a variant over an alternative list chosen at run time. Build it
// with NewUnion, UnionOf or UnionAt; the zero Union is unusable.
type Union struct {
	b base
}

// NewUnion returns a Union holding alternative 0, default constructed.
func NewUnion(alts *Alternatives) (*Union, error) {
	u := newUnion(alts)
	if err := u.b.emplace(0, alts.At(0).defaultConstruction()); err != nil {
		return nil, err
	}
	return u, nil
}

// UnionOf returns a Union holding x in the alternative that best matches
// x's dynamic type.
func UnionOf(alts *Alternatives, x any) (*Union, error) {
	u := newUnion(alts)
	if err := u.Set(x); err != nil {
		return nil, err
	}
	return u, nil
}

// UnionAt returns a Union holding alternative i built by init, which
// receives a *T of the alternative's type. A nil init default constructs.
func UnionAt(alts *Alternatives, i int, init func(p any) error) (*Union, error) {
	u := newUnion(alts)
	if err := u.EmplaceAt(i, init); err != nil {
		return nil, err
	}
	return u, nil
}

func newUnion(alts *Alternatives) *Union {
	if alts == nil {
		defectf("nil alternative set")
	}
	u := &Union{}
	u.b.bind(alts)
	return u
}

func (u *Union) core() *base {
	if u.b.alts() == nil {
		defectf("zero Union used; build it with NewUnion")
	}
	return &u.b
}

func (u *Union) Index() int                  { return u.core().index() }
func (u *Union) Len() int                    { return u.core().alts().Len() }
func (u *Union) Alternatives() *Alternatives { return u.core().alts() }

// Get returns a pointer to alternative i, or a bad_access error when another
// alternative is active.
func (u *Union) Get(i int) (any, error) { return u.core().get(i) }

// GetIf returns a pointer to alternative i, or nil when it is not active.
func (u *Union) GetIf(i int) any { return u.core().getIf(i) }

// Value returns the active value itself (not a pointer).
func (u *Union) Value() any { return u.core().value() }

// Set assigns x to the best-matching alternative.
func (u *Union) Set(x any) error {
	b := u.core()
	i, err := b.alts().Match(reflect.TypeOf(x))
	if err != nil {
		return err
	}
	return b.assignValue(i, x)
}

// SetAt emplaces x into alternative i. x must have exactly that
// alternative's type, or implement it when the alternative is an interface;
// a value that merely converts (an unnamed []int for a named slice type) is
// rejected before the current value is touched.
func (u *Union) SetAt(i int, x any) error {
	b := u.core()
	a := b.alts().At(i)
	if !a.accepts(reflect.TypeOf(x)) {
		return errNoMatch(reflect.TypeOf(x)).Ctx("", KeyIndex, i)
	}
	return b.emplace(i, a.moveConstruction(x))
}

// EmplaceAt replaces the value with alternative i built by init. A nil init
// default constructs.
func (u *Union) EmplaceAt(i int, init func(p any) error) error {
	b := u.core()
	a := b.alts().At(i)
	if init == nil {
		return b.emplace(i, a.defaultConstruction())
	}
	return b.emplace(i, construction{init: init})
}

// Clone returns an independent copy.
func (u *Union) Clone() (*Union, error) {
	n := &Union{}
	if err := u.core().cloneInto(&n.b); err != nil {
		return nil, err
	}
	return n, nil
}

// Assign copies o's value into u.
func (u *Union) Assign(o *Union) error { return u.core().assign(o.core()) }

// Swap exchanges the values of u and o.
func (u *Union) Swap(o *Union) error { return u.core().swap(o.core()) }

// Equal reports whether u and o hold equal values of the same alternative.
func (u *Union) Equal(o *Union) bool { return Equal(u, o) }

// Compare orders u and o by index, then by value.
func (u *Union) Compare(o *Union) (int, error) { return Compare(u, o) }

// Reset destroys the live value; u then holds alternative 0's zero value.
func (u *Union) Reset() { u.core().reset() }

func (u *Union) String() string                { return u.core().String() }
func (u *Union) LogValue() slog.Value          { return u.core().LogValue() }
func (u *Union) Format(s fmt.State, verb rune) { u.core().Format(s, verb) }

var _ Container = (*Union)(nil)
