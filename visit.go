// visit.go — visitation over one or more containers.
package xgxvariant

// Visit calls fn exactly once with pointers to the active alternative of each
// container, in order. Dispatch over the cross product of alternatives
// collapses to the one live tuple.
func Visit[R any](fn func(values ...any) R, cs ...Container) R {
	vals := make([]any, len(cs))
	for i, c := range cs {
		vals[i] = c.core().obj()
	}
	return fn(vals...)
}

// VisitIndexed is Visit that also passes the active index of each container,
// for lists with repeated types.
func VisitIndexed[R any](fn func(indices []int, values []any) R, cs ...Container) R {
	idx := make([]int, len(cs))
	vals := make([]any, len(cs))
	for i, c := range cs {
		b := c.core()
		idx[i] = b.index()
		vals[i] = b.obj()
	}
	return fn(idx, vals)
}

// VisitAt calls the function at the active index with a pointer to the
// active value. There must be one function per alternative.
func VisitAt[R any](c Container, fns ...func(p any) R) R {
	b := c.core()
	if n := b.alts().Len(); len(fns) != n {
		defectf("VisitAt: %d functions for %d alternatives", len(fns), n)
	}
	return fns[b.index()](b.obj())
}

// VisitByIndex2 calls the function of the active alternative only.
func VisitByIndex2[T0, T1, R any](v *V2[T0, T1], f0 func(*T0) R, f1 func(*T1) R) R {
	b := v.core()
	if b.index() == 0 {
		return f0(b.obj().(*T0))
	}
	return f1(b.obj().(*T1))
}

// VisitByIndex3 calls the function of the active alternative only.
func VisitByIndex3[T0, T1, T2, R any](v *V3[T0, T1, T2], f0 func(*T0) R, f1 func(*T1) R, f2 func(*T2) R) R {
	b := v.core()
	switch b.index() {
	case 0:
		return f0(b.obj().(*T0))
	case 1:
		return f1(b.obj().(*T1))
	default:
		return f2(b.obj().(*T2))
	}
}

// VisitByIndex4 calls the function of the active alternative only.
func VisitByIndex4[T0, T1, T2, T3, R any](v *V4[T0, T1, T2, T3], f0 func(*T0) R, f1 func(*T1) R, f2 func(*T2) R, f3 func(*T3) R) R {
	b := v.core()
	switch b.index() {
	case 0:
		return f0(b.obj().(*T0))
	case 1:
		return f1(b.obj().(*T1))
	case 2:
		return f2(b.obj().(*T2))
	default:
		return f3(b.obj().(*T3))
	}
}
