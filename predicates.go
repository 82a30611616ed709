// predicates.go — classification helpers for container errors.
//
// All predicates use errors.As so they work on wrapped and joined errors.
package xgxvariant

import (
	"errors"
)

type coded interface{ CodeVal() Code }

// IsDefect reports whether err is (or wraps) a programming defect.
func IsDefect(err error) bool {
	if err == nil {
		return false
	}
	var d *defectErr
	if errors.As(err, &d) {
		return true
	}
	return HasCode(err, CodeDefect)
}

// IsBadAccess reports whether err signals a checked access to an alternative
// that is not active, including bad_expected_access from Expected.
func IsBadAccess(err error) bool {
	return HasCode(err, CodeBadAccess) || HasCode(err, CodeBadExpectedAccess)
}

// IsConstructionFailure reports whether err is a failed emplace/assignment.
func IsConstructionFailure(err error) bool {
	return HasCode(err, CodeConstructionFailed)
}

// FallbackOf returns the index of the resting alternative a failed mutation
// left the container in. ok is false when the container was left unchanged
// (or err is not a construction failure).
func FallbackOf(err error) (index int, ok bool) {
	if !IsConstructionFailure(err) {
		return 0, false
	}
	return FieldFallback.Get(err)
}

// HasCode reports whether any error in the unwrap graph carries the given code.
func HasCode(err error, code Code) bool {
	found := false
	walkCoded(err, func(c coded) bool {
		if c.CodeVal() == code {
			found = true
			return false
		}
		return true
	})
	return found
}

// CodeOf returns the first Code along err's chain, or "" if none.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var cv coded
	if errors.As(err, &cv) {
		return cv.CodeVal()
	}
	return ""
}

// walkCoded visits every node of err's unwrap graph that carries a code,
// pre-order, until fn returns false.
func walkCoded(err error, fn func(coded) bool) {
	Walk(err, func(e error) bool {
		if c, ok := e.(coded); ok {
			return fn(c)
		}
		return true
	})
}
