// storage.go — a single buffer and the ownership of its object.
package xgxvariant

// storage is one buffer of a container. It owns at most one live object,
// always a *T for the alternative it was constructed with.
type storage struct {
	obj any
}

func (s *storage) vacant() bool { return s.obj == nil }

// construct allocates a fresh object for a and runs init on it. The buffer
// only becomes occupied when init succeeds; a panic or error leaves it vacant.
func (s *storage) construct(a *Alternative, init func(p any) error) error {
	if s.obj != nil {
		defectf("construct %s into occupied storage", a.name)
	}
	p := a.alloc()
	if err := init(p); err != nil {
		return err
	}
	s.obj = p
	return nil
}

// adopt takes ownership of an object constructed elsewhere.
func (s *storage) adopt(p any) {
	if s.obj != nil {
		defectf("adopt into occupied storage")
	}
	s.obj = p
}

// release gives up ownership without running any hook.
func (s *storage) release() any {
	p := s.obj
	s.obj = nil
	return p
}

// destroy runs a's destroy hook on the live object and vacates the buffer.
func (s *storage) destroy(a *Alternative) {
	p := s.release()
	if p != nil && a.destroy != nil {
		a.destroy(p)
	}
}

// vacate drops the object of a trivially destructible set.
func (s *storage) vacate(*Alternative) { s.obj = nil }

// get returns the live object. No checking.
func (s *storage) get() any { return s.obj }
