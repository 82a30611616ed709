// unwrap.go — traversal over single- and multi-wrapped errors.
//
// errors.As stops at the first match, but a construction failure can wrap an
// initializer error that itself carries a code (for example a bad access
// raised while building the new value). Walk visits the whole graph so
// HasCode sees every layer.
//
// Cycle guard: map[error] is only safe for comparable dynamic types, so
// pointer-typed errors are tracked by address and other non-comparable
// values are treated as acyclic (bounded by depth).
package xgxvariant

import (
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// markSeen returns true if err was newly marked; false if already seen.
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	switch err.(type) {
	case *failureErr, *defectErr, *errorList:
		return markPtr(reflect.ValueOf(err).Pointer(), seenPtr)
	}
	if reflect.TypeOf(err).Comparable() {
		if _, ok := seenErr[err]; ok {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	if rv := reflect.ValueOf(err); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return markPtr(rv.Pointer(), seenPtr)
	}
	return true
}

func markPtr(id uintptr, seen map[uintptr]struct{}) bool {
	if _, dup := seen[id]; dup {
		return false
	}
	seen[id] = struct{}{}
	return true
}

// Walk traverses an error graph depth-first and calls visit for each distinct
// node in pre-order (visit before children). If visit returns false,
// traversal stops. nil is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	const maxDepth = 1 << 12

	stack := make([]error, 0, 8)
	seenErr := make(map[error]struct{}, 8)
	seenPtr := make(map[uintptr]struct{}, 8)

	stack = append(stack, err)
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if markSeen(kids[i], seenErr, seenPtr) {
					stack = append(stack, kids[i])
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); markSeen(c, seenErr, seenPtr) {
				stack = append(stack, c)
			}
		}
	}
}
