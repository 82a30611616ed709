// base.go — container state and the two emplace strategies.
package xgxvariant

import (
	"reflect"
	"sync/atomic"
)

// base is the state shared by every container: a tag and two buffers.
//
// |tag|-1 is the active index. The sign names the buffer holding the live
// value: tag > 0 is buffer 0, tag < 0 is buffer 1. tag == 0 is the zero
// container, alternative 0 at its zero value; it was never constructed, so
// no destroy hook runs when it is replaced.
//
// set and zero are filled in lazily by readers and are therefore atomic.
// Everything else changes only under a mutation.
type base struct {
	set  atomic.Value // *Alternatives
	zero atomic.Value // alternative 0 of the zero container, a *T
	tag  int
	st   [2]storage
}

// construction describes how a new value is built into a buffer. nothrow
// promises init never fails.
type construction struct {
	init    func(p any) error
	nothrow bool
}

// buffering is the emplace strategy of an alternative set.
type buffering interface {
	strategy() Strategy
	emplace(b *base, i int, c construction) error
}

func tagOf(i, buf int) int {
	if buf == 0 {
		return i + 1
	}
	return -(i + 1)
}

func (b *base) index() int {
	if b.tag < 0 {
		return -b.tag - 1
	}
	if b.tag == 0 {
		return 0
	}
	return b.tag - 1
}

func (b *base) pristine() bool { return b.tag == 0 }

func (b *base) alts() *Alternatives {
	s, _ := b.set.Load().(*Alternatives)
	return s
}

// bind installs s unless a set is already bound. Racing readers of a zero
// typed container bind the same shared set.
func (b *base) bind(s *Alternatives) {
	b.set.CompareAndSwap(nil, s)
}

func (b *base) live() *storage {
	if b.tag < 0 {
		return &b.st[1]
	}
	return &b.st[0]
}

func (b *base) spare() *storage {
	if b.tag < 0 {
		return &b.st[0]
	}
	return &b.st[1]
}

// obj returns the live *T. The zero container materializes alternative 0's
// zero value on first access and keeps tag 0; concurrent first readers all
// get the same *T.
func (b *base) obj() any {
	if b.tag == 0 {
		if p := b.zero.Load(); p != nil {
			return p
		}
		b.zero.CompareAndSwap(nil, b.alts().At(0).alloc())
		return b.zero.Load()
	}
	s := b.live()
	if s.vacant() {
		defectf("container with tag %d has no live value", b.tag)
	}
	return s.get()
}

// destroyLive ends the lifetime of the current value. The zero container's
// value was never constructed and is dropped without hooks.
func (b *base) destroyLive() {
	if b.tag == 0 {
		b.zero = atomic.Value{}
		return
	}
	b.alts().drop(b.live(), b.alts().At(b.index()))
}

// emplace replaces the current value with alternative i built by c.
func (b *base) emplace(i int, c construction) error {
	b.alts().At(i)
	return b.alts().buf.emplace(b, i, c)
}

type singleBuffer struct{}

func (singleBuffer) strategy() Strategy { return SingleBuffered }

func (singleBuffer) emplace(b *base, i int, c construction) error {
	a := b.alts().At(i)
	switch {
	case c.nothrow:
		b.destroyLive()
		if err := b.st[0].construct(a, c.init); err != nil {
			panicDefect(errConstruction(i, a.typ, err, -1).Ctx("nothrow construction failed"))
		}
		b.tag = tagOf(i, 0)
		return nil
	case b.alts().fallback >= 0:
		return b.emplaceOrRest(i, a, c)
	default:
		var tmp storage
		if err := tmp.construct(a, c.init); err != nil {
			return errConstruction(i, a.typ, err, -1)
		}
		b.destroyLive()
		b.st[0].adopt(tmp.release())
		b.tag = tagOf(i, 0)
		return nil
	}
}

// emplaceOrRest constructs in place after destroying the old value. If the
// construction fails the container is left holding the fallback alternative;
// a panic is re-raised once the fallback is installed.
func (b *base) emplaceOrRest(i int, a *Alternative, c construction) error {
	b.destroyLive()
	defer func() {
		if r := recover(); r != nil {
			b.rest()
			panic(r)
		}
	}()
	if err := b.st[0].construct(a, c.init); err != nil {
		return errConstruction(i, a.typ, err, b.rest())
	}
	b.tag = tagOf(i, 0)
	return nil
}

// rest default-constructs the fallback alternative into the vacant buffer 0.
func (b *base) rest() int {
	k := b.alts().fallback
	fa := b.alts().At(k)
	if err := b.st[0].construct(fa, fa.defaultConstruction().init); err != nil {
		panicDefect(errConstruction(k, fa.typ, err, -1).Ctx("fallback construction failed"))
	}
	b.tag = tagOf(k, 0)
	return k
}

type doubleBuffer struct{}

func (doubleBuffer) strategy() Strategy { return DoubleBuffered }

func (doubleBuffer) emplace(b *base, i int, c construction) error {
	a := b.alts().At(i)
	next := 1
	if b.tag < 0 {
		next = 0
	}
	if err := b.spare().construct(a, c.init); err != nil {
		return errConstruction(i, a.typ, err, -1)
	}
	b.destroyLive()
	b.tag = tagOf(i, next)
	return nil
}

// get is the checked access to alternative i.
func (b *base) get(i int) (any, error) {
	a := b.alts().At(i)
	if active := b.index(); active != i {
		return nil, errBadAccess(i, active, a.typ)
	}
	return b.obj(), nil
}

// getIf returns the live object when alternative i is active, else nil.
func (b *base) getIf(i int) any {
	b.alts().At(i)
	if b.index() != i {
		return nil
	}
	return b.obj()
}

// cloneInto copy-constructs b into the fresh container dst.
func (b *base) cloneInto(dst *base) error {
	dst.bind(b.alts())
	if b.pristine() {
		z := b.zero.Load()
		if z == nil {
			return nil
		}
		a := b.alts().At(0)
		p := a.alloc()
		if err := a.copyInto(p, z); err != nil {
			return errConstruction(0, a.typ, err, -1)
		}
		dst.zero.Store(p)
		return nil
	}
	i := b.index()
	return dst.emplace(i, b.alts().At(i).copyConstruction(b.obj()))
}

// assign copy-assigns src into b. Same index with a plain copy assigns in
// place; everything else goes through emplace.
func (b *base) assign(src *base) error {
	if !b.alts().sameAs(src.alts()) {
		return errMismatched()
	}
	if b == src {
		return nil
	}
	j := src.index()
	a := b.alts().At(j)
	if b.index() == j && !b.pristine() && a.nothrowCopy && a.destroy == nil {
		return a.copyInto(b.obj(), src.obj())
	}
	return b.emplace(j, a.copyConstruction(src.obj()))
}

// assignValue stores x in alternative i: in place when i is already active
// and the old value needs no hooks, otherwise through emplace.
func (b *base) assignValue(i int, x any) error {
	a := b.alts().At(i)
	if b.index() == i && !b.pristine() && a.relocate == nil && a.destroy == nil {
		if !a.store(b.obj(), x) {
			panicDefect(errNoMatch(reflect.TypeOf(x)).Ctx("", "want", a.name))
		}
		return nil
	}
	return b.emplace(i, a.moveConstruction(x))
}

// swap exchanges the values of b and o.
func (b *base) swap(o *base) error {
	if !b.alts().sameAs(o.alts()) {
		return errMismatched()
	}
	if b == o {
		return nil
	}
	for _, s := range []*Alternatives{b.alts(), o.alts()} {
		if s.nothrowMove {
			continue
		}
		for _, a := range s.alts {
			if a.relocate != nil {
				return errSwapUnavailable(a.typ)
			}
		}
	}
	if i := b.index(); i == o.index() {
		b.alts().At(i).swap(b.obj(), o.obj())
		return nil
	}
	b.tag, o.tag = o.tag, b.tag
	b.st, o.st = o.st, b.st
	b.zero, o.zero = o.zero, b.zero
	return nil
}

// reset destroys the live value and returns b to the zero container.
func (b *base) reset() {
	b.destroyLive()
	b.tag = 0
}
