// alternative.go — alternative descriptors and lifecycle hooks.
package xgxvariant

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Lifecycle hooks. Go values have no constructors or destructors; an
// alternative type opts into each event by implementing the method on *T.
// The same hooks can be supplied through AltOption for types you do not own.
type (
	// Initializer is called after allocation when the alternative is default
	// constructed. Types without it default-construct without failure.
	Initializer interface{ Init() error }

	// Destroyer is called exactly once when a live value leaves the
	// container. Types without it are trivially destructible.
	Destroyer interface{ Destroy() }

	// Relocator is called after a value has been moved to new storage.
	// Types without it move without failure.
	Relocator interface{ Relocate() error }

	// Cloner produces the copy used when a container is copied.
	// Types without it copy by assignment, which cannot fail.
	Cloner[T any] interface{ Clone() (T, error) }

	// Equaler overrides equality of two values of the alternative.
	Equaler[T any] interface{ Equal(T) bool }

	// Comparer orders two values of the alternative.
	Comparer[T any] interface{ Compare(T) int }
)

// Resting marks alternatives that a failed mutation may fall back to.
// It is sealed: embed Monostate to implement it.
type Resting interface{ resting() }

// Monostate is an empty alternative, the natural resting state of a
// single-buffered container.
type Monostate struct{}

func (Monostate) resting() {}

// Compare orders all Monostate values equal.
func (Monostate) Compare(Monostate) int { return 0 }

func (Monostate) String() string { return "monostate" }

// Alternative describes how containers manage one alternative type.
// Build it with AltOf; the zero value is not usable.
type Alternative struct {
	typ  reflect.Type
	name string

	alloc       func() any
	init        func(p any) error // nil: nothrow default construction
	destroy     func(p any)       // nil: trivially destructible
	relocate    func(p any) error // nil: nothrow move
	copyInto    func(dst, src any) error
	nothrowCopy bool
	store       func(p, x any) bool
	swap        func(p, q any)
	equal       func(a, b any) bool
	compare     func(a, b any) int // nil: not ordered
	resting     bool
}

// AltOption configures an Alternative.
type AltOption[T any] func(*altConfig[T])

type altConfig[T any] struct {
	name     string
	init     func(*T) error
	destroy  func(*T)
	relocate func(*T) error
	clone    func(*T) (T, error)
	equal    func(a, b *T) bool
	compare  func(a, b *T) int
	resting  bool
}

// WithName overrides the name used in errors and log output.
func WithName[T any](name string) AltOption[T] {
	return func(c *altConfig[T]) { c.name = name }
}

// WithInit sets the default-construction hook.
func WithInit[T any](fn func(*T) error) AltOption[T] {
	return func(c *altConfig[T]) { c.init = fn }
}

// WithDestroy sets the destruction hook, e.g. closing a handle.
func WithDestroy[T any](fn func(*T)) AltOption[T] {
	return func(c *altConfig[T]) { c.destroy = fn }
}

// WithRelocate sets the move hook. Any alternative with a move hook makes
// its container double-buffered.
func WithRelocate[T any](fn func(*T) error) AltOption[T] {
	return func(c *altConfig[T]) { c.relocate = fn }
}

// WithClone sets the copy hook.
func WithClone[T any](fn func(*T) (T, error)) AltOption[T] {
	return func(c *altConfig[T]) { c.clone = fn }
}

// WithEqual sets the equality used by Equal and Compare.
func WithEqual[T any](fn func(a, b *T) bool) AltOption[T] {
	return func(c *altConfig[T]) { c.equal = fn }
}

// WithCompare sets the ordering used by Compare.
func WithCompare[T any](fn func(a, b *T) int) AltOption[T] {
	return func(c *altConfig[T]) { c.compare = fn }
}

// AsResting makes the alternative eligible as the fallback state even if
// it does not embed Monostate.
func AsResting[T any]() AltOption[T] {
	return func(c *altConfig[T]) { c.resting = true }
}

// AltOf describes alternative type T. Hooks implemented on *T are picked up
// first; options override them.
func AltOf[T any](opts ...AltOption[T]) *Alternative {
	cfg := hooksOf[T]()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	typ := reflect.TypeFor[T]()
	a := &Alternative{
		typ:         typ,
		name:        cfg.name,
		alloc:       func() any { return new(T) },
		nothrowCopy: cfg.clone == nil,
		resting:     cfg.resting,
		store: func(p, x any) bool {
			if x == nil {
				var zero T
				*p.(*T) = zero
				return typ.Kind() == reflect.Interface || typ.Kind() == reflect.Pointer
			}
			v, ok := x.(T)
			if ok {
				*p.(*T) = v
			}
			return ok
		},
		swap: func(p, q any) {
			pp, qq := p.(*T), q.(*T)
			*pp, *qq = *qq, *pp
		},
	}
	if a.name == "" {
		a.name = typ.String()
	}
	if fn := cfg.init; fn != nil {
		a.init = func(p any) error { return fn(p.(*T)) }
	}
	if fn := cfg.destroy; fn != nil {
		a.destroy = func(p any) { fn(p.(*T)) }
	}
	if fn := cfg.relocate; fn != nil {
		a.relocate = func(p any) error { return fn(p.(*T)) }
	}
	if fn := cfg.clone; fn != nil {
		a.copyInto = func(dst, src any) error {
			v, err := fn(src.(*T))
			if err != nil {
				return err
			}
			*dst.(*T) = v
			return nil
		}
	} else {
		a.copyInto = func(dst, src any) error {
			*dst.(*T) = *src.(*T)
			return nil
		}
	}
	if fn := cfg.equal; fn != nil {
		a.equal = func(x, y any) bool { return fn(x.(*T), y.(*T)) }
	} else {
		a.equal = func(x, y any) bool { return equalValues(*x.(*T), *y.(*T)) }
	}
	if fn := cfg.compare; fn != nil {
		a.compare = func(x, y any) int { return fn(x.(*T), y.(*T)) }
	} else if kindOrdered(typ.Kind()) {
		a.compare = func(x, y any) int {
			return compareKind(reflect.ValueOf(x).Elem(), reflect.ValueOf(y).Elem())
		}
	}
	return a
}

// hooksOf collects the lifecycle methods implemented by *T.
func hooksOf[T any]() altConfig[T] {
	var cfg altConfig[T]
	probe := any(new(T))
	if _, ok := probe.(Initializer); ok {
		cfg.init = func(p *T) error { return any(p).(Initializer).Init() }
	}
	if _, ok := probe.(Destroyer); ok {
		cfg.destroy = func(p *T) { any(p).(Destroyer).Destroy() }
	}
	if _, ok := probe.(Relocator); ok {
		cfg.relocate = func(p *T) error { return any(p).(Relocator).Relocate() }
	}
	if _, ok := probe.(Cloner[T]); ok {
		cfg.clone = func(p *T) (T, error) { return any(p).(Cloner[T]).Clone() }
	}
	if _, ok := probe.(Equaler[T]); ok {
		cfg.equal = func(a, b *T) bool { return any(a).(Equaler[T]).Equal(*b) }
	}
	if _, ok := probe.(Comparer[T]); ok {
		cfg.compare = func(a, b *T) int { return any(a).(Comparer[T]).Compare(*b) }
	}
	if _, ok := probe.(Resting); ok {
		cfg.resting = true
	}
	return cfg
}

// exportAll lets go-cmp look into unexported fields of alternative values.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// equalValues is == when the dynamic values are comparable and a deep
// structural comparison otherwise.
func equalValues(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if reflect.TypeOf(x) != reflect.TypeOf(y) {
		return false
	}
	if reflect.ValueOf(x).Comparable() && reflect.ValueOf(y).Comparable() {
		return x == y
	}
	return cmp.Equal(x, y, exportAll)
}

// Type returns the Go type of the alternative.
func (a *Alternative) Type() reflect.Type { return a.typ }

// Name returns the display name (the type string unless WithName was used).
func (a *Alternative) Name() string { return a.name }

// TriviallyDestructible reports whether the alternative has no destroy hook.
func (a *Alternative) TriviallyDestructible() bool { return a.destroy == nil }

// NothrowMove reports whether moving a value cannot fail.
func (a *Alternative) NothrowMove() bool { return a.relocate == nil }

// NothrowDefault reports whether default construction cannot fail.
func (a *Alternative) NothrowDefault() bool { return a.init == nil }

// NothrowCopy reports whether copying a value cannot fail.
func (a *Alternative) NothrowCopy() bool { return a.nothrowCopy }

// Ordered reports whether Compare is defined for the alternative.
func (a *Alternative) Ordered() bool { return a.compare != nil }

// Resting reports whether the alternative may serve as the fallback state.
func (a *Alternative) Resting() bool { return a.resting }

func (a *Alternative) String() string { return a.name }

// defaultConstruction builds the alternative from nothing (zero value + Init).
func (a *Alternative) defaultConstruction() construction {
	return construction{
		init: func(p any) error {
			if a.init == nil {
				return nil
			}
			return a.init(p)
		},
		nothrow: a.init == nil,
	}
}

// accepts reports whether a value of dynamic type t can be stored as a.
// A nil t stands for an untyped nil.
func (a *Alternative) accepts(t reflect.Type) bool {
	k := a.typ.Kind()
	switch {
	case t == nil:
		return k == reflect.Interface || k == reflect.Pointer
	case k == reflect.Interface:
		return t.Implements(a.typ)
	default:
		return t == a.typ
	}
}

// moveConstruction builds the alternative by moving x into new storage.
// x must already hold a value of the alternative's type.
func (a *Alternative) moveConstruction(x any) construction {
	return construction{
		init: func(p any) error {
			if !a.store(p, x) {
				panicDefect(errNoMatch(reflect.TypeOf(x)).Ctx("", "want", a.name))
			}
			if a.relocate == nil {
				return nil
			}
			return a.relocate(p)
		},
		nothrow: a.relocate == nil,
	}
}

// copyConstruction builds the alternative as a copy of *src.
func (a *Alternative) copyConstruction(src any) construction {
	return construction{
		init:    func(p any) error { return a.copyInto(p, src) },
		nothrow: a.nothrowCopy,
	}
}

// initConstruction wraps a typed in-place initializer. A nil fn means
// default construction.
func initConstruction[T any](a *Alternative, fn func(*T) error) construction {
	if fn == nil {
		return a.defaultConstruction()
	}
	return construction{
		init: func(p any) error { return fn(p.(*T)) },
	}
}
