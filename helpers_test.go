package xgxvariant

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// registry tracks the lifetimes of instrumented alternatives of one test.
type registry struct {
	mu     sync.Mutex
	live   map[string]int
	events []string
}

func newRegistry() *registry { return &registry{live: map[string]int{}} }

func (r *registry) born(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live[name]++
	r.events = append(r.events, "+"+name)
}

func (r *registry) died(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live[name]--
	r.events = append(r.events, "-"+name)
}

// total returns the number of live instrumented values.
func (r *registry) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.live {
		n += c
	}
	return n
}

func (r *registry) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live[name]
}

// build returns an initializer that constructs a resource named name.
func (r *registry) build(name string) func(*resource) error {
	return func(p *resource) error {
		*p = resource{name: name, reg: r}
		r.born(name)
		return nil
	}
}

// resource is trivially movable and needs destruction.
type resource struct {
	name string
	reg  *registry
}

func (r *resource) Destroy() {
	if r.reg != nil {
		r.reg.died(r.name)
	}
}

// flaky moves with a hook that can fail, which makes its sets
// double-buffered.
type flaky struct {
	n        int
	failMove bool
	reg      *registry
}

func (f *flaky) Relocate() error {
	if f.failMove {
		return errBoom
	}
	return nil
}

func (f *flaky) Destroy() {
	if f.reg != nil {
		f.reg.died("flaky")
	}
}

func buildFlaky(reg *registry, n int) func(*flaky) error {
	return func(p *flaky) error {
		*p = flaky{n: n, reg: reg}
		reg.born("flaky")
		return nil
	}
}

// widget has a default constructor that cannot fail.
type widget struct{ ready bool }

func (w *widget) Init() error {
	w.ready = true
	return nil
}

// brittle has a default constructor that always fails.
type brittle struct{}

func (*brittle) Init() error { return errBoom }

// copyShy fails to copy.
type copyShy struct{ n int }

func (c *copyShy) Clone() (copyShy, error) { return copyShy{}, errBoom }

// version orders itself by hand.
type version struct{ major, minor int }

func (v *version) Compare(o version) int {
	if v.major != o.major {
		return v.major - o.major
	}
	return v.minor - o.minor
}

func failWith[T any](err error) func(*T) error {
	return func(*T) error { return err }
}

func panicWith[T any](v any) func(*T) error {
	return func(*T) error { panic(v) }
}

// requireDefect asserts that fn panics with a defect error.
func requireDefect(t *testing.T, fn func()) error {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected a panic")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %#v is not an error", recovered)
	require.True(t, IsDefect(err), "panic %v is not a defect", err)
	return err
}
