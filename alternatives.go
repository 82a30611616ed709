// alternatives.go — alternative sets, their traits and type matching.
package xgxvariant

import (
	"reflect"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// Strategy is the buffering strategy of an alternative set.
type Strategy uint8

const (
	// SingleBuffered containers keep one buffer; every alternative moves
	// without failure.
	SingleBuffered Strategy = iota + 1
	// DoubleBuffered containers keep a spare buffer so a failed mutation
	// leaves the old value untouched.
	DoubleBuffered
)

func (s Strategy) String() string {
	switch s {
	case SingleBuffered:
		return "single-buffered"
	case DoubleBuffered:
		return "double-buffered"
	default:
		return "unknown"
	}
}

// Alternatives is an ordered, immutable list of alternatives together with
// the traits computed from it. One value is shared by every container of the
// same type list.
type Alternatives struct {
	alts        []*Alternative
	trivial     bool
	nothrowMove bool
	fallback    int // -1: none
	buf         buffering
	drop        func(*storage, *Alternative)
}

// NewAlternatives validates alts and computes the set's traits. Every
// invalid position is reported in one joined error.
func NewAlternatives(alts ...*Alternative) (*Alternatives, error) {
	if len(alts) == 0 {
		return nil, errInvalidAlternative(0, "at least one alternative is required")
	}
	var errs []error
	for i, a := range alts {
		if a == nil || a.alloc == nil {
			errs = append(errs, errInvalidAlternative(i, "nil or zero Alternative, build it with AltOf"))
		}
	}
	if err := Join(errs...); err != nil {
		return nil, err
	}
	return buildAlternatives(alts), nil
}

func buildAlternatives(alts []*Alternative) *Alternatives {
	s := &Alternatives{
		alts:        append([]*Alternative(nil), alts...),
		trivial:     true,
		nothrowMove: true,
		fallback:    -1,
	}
	for i, a := range s.alts {
		if a.destroy != nil {
			s.trivial = false
		}
		if a.relocate != nil {
			s.nothrowMove = false
		}
		if s.fallback < 0 && a.resting && a.init == nil {
			s.fallback = i
		}
	}
	if s.nothrowMove {
		s.buf = singleBuffer{}
	} else {
		s.buf = doubleBuffer{}
	}
	if s.trivial {
		s.drop = (*storage).vacate
	} else {
		s.drop = (*storage).destroy
	}
	return s
}

// Len returns the number of alternatives.
func (s *Alternatives) Len() int { return len(s.alts) }

// At returns alternative i. An out-of-range index is a defect.
func (s *Alternatives) At(i int) *Alternative {
	if i < 0 || i >= len(s.alts) {
		defectf("alternative index %d out of range [0,%d)", i, len(s.alts))
	}
	return s.alts[i]
}

// Strategy reports how containers of this set buffer their value.
func (s *Alternatives) Strategy() Strategy { return s.buf.strategy() }

// TriviallyDestructible reports whether no alternative has a destroy hook.
func (s *Alternatives) TriviallyDestructible() bool { return s.trivial }

// NothrowMove reports whether every alternative moves without failure.
func (s *Alternatives) NothrowMove() bool { return s.nothrowMove }

// Fallback returns the resting alternative a single-buffered container
// falls back to when a mutation fails.
func (s *Alternatives) Fallback() (int, bool) { return s.fallback, s.fallback >= 0 }

// Count returns how many alternatives have exactly type t.
func (s *Alternatives) Count(t reflect.Type) int {
	n := 0
	for _, a := range s.alts {
		if a.typ == t {
			n++
		}
	}
	return n
}

// Find returns the index of the single alternative of type t.
func (s *Alternatives) Find(t reflect.Type) (int, error) {
	idx, n := -1, 0
	for i, a := range s.alts {
		if a.typ == t {
			if idx < 0 {
				idx = i
			}
			n++
		}
	}
	switch n {
	case 0:
		return -1, errNoMatch(t)
	case 1:
		return idx, nil
	default:
		return -1, errAmbiguous(t, n)
	}
}

// mustFind is Find for statically known types: absent or repeated types
// are defects.
func (s *Alternatives) mustFind(t reflect.Type) int {
	i, err := s.Find(t)
	if err != nil {
		panicDefect(err)
	}
	return i
}

// Match resolves the alternative a value of type t initializes: a unique
// identical type, else a unique alternative t is assignable to. A nil t
// stands for an untyped nil and matches interface and pointer alternatives.
func (s *Alternatives) Match(t reflect.Type) (int, error) {
	if t != nil {
		switch n := s.Count(t); {
		case n == 1:
			return s.Find(t)
		case n > 1:
			return -1, errAmbiguous(t, n)
		}
	}
	idx, n := -1, 0
	for i, a := range s.alts {
		var ok bool
		if t == nil {
			k := a.typ.Kind()
			ok = k == reflect.Interface || k == reflect.Pointer
		} else {
			ok = a.typ.Kind() == reflect.Interface && t.AssignableTo(a.typ)
		}
		if ok {
			if idx < 0 {
				idx = i
			}
			n++
		}
	}
	switch n {
	case 0:
		return -1, errNoMatch(t)
	case 1:
		return idx, nil
	default:
		return -1, errAmbiguous(t, n)
	}
}

// sameAs reports whether containers of s and o may exchange values: both
// sets list the very same Alternative descriptors, so a value built under
// one is destroyed, copied and compared by the same hooks under the other.
// Matching types with different hooks do not qualify.
func (s *Alternatives) sameAs(o *Alternatives) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil || len(s.alts) != len(o.alts) {
		return false
	}
	for i := range s.alts {
		if s.alts[i] != o.alts[i] {
			return false
		}
	}
	return true
}

func (s *Alternatives) String() string {
	var sb strings.Builder
	sb.WriteString("variant<")
	for i, a := range s.alts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.name)
	}
	sb.WriteByte('>')
	return sb.String()
}

// maxTypedArity is the widest typed container (V4).
const maxTypedArity = 4

type typeKey [maxTypedArity]reflect.Type

// typedSets holds one Alternatives per typed container instantiation.
var typedSets = xsync.NewMapOf[typeKey, *Alternatives]()

// typedAlternatives returns the shared set for key, building it on first use.
func typedAlternatives(key typeKey, build func() []*Alternative) *Alternatives {
	s, _ := typedSets.LoadOrCompute(key, func() *Alternatives {
		return buildAlternatives(build())
	})
	return s
}
