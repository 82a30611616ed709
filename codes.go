// codes.go — error codes reported by xgx-variant containers and wrappers.
//
// Conventions (documented, not enforced here):
//   - Codes are lowercase snake_case ASCII.
//   - The empty string is never a built-in.
//   - Callers classify with HasCode/CodeOf or the Is* predicates.
package xgxvariant

// Access
const (
	CodeBadAccess         Code = "bad_access"
	CodeBadExpectedAccess Code = "bad_expected_access"
)

// Mutation
const (
	CodeConstructionFailed Code = "construction_failed"
	CodeSwapUnavailable    Code = "swap_unavailable"
)

// Resolution / comparison
const (
	CodeAmbiguousAlternative  Code = "ambiguous_alternative"
	CodeNoMatchingAlternative Code = "no_matching_alternative"
	CodeMismatchedAlternative Code = "mismatched_alternatives"
	CodeInvalidAlternatives   Code = "invalid_alternatives"
	CodeNotOrdered            Code = "not_ordered"
)

// Wrappers / meta
const (
	CodeSystemError Code = "system_error"
	CodeDefect      Code = "defect"
)

// allBuiltinCodes is the ordered set of codes the core ships with.
var allBuiltinCodes = []Code{
	// Access (2)
	CodeBadAccess,
	CodeBadExpectedAccess,

	// Mutation (2)
	CodeConstructionFailed,
	CodeSwapUnavailable,

	// Resolution / comparison (5)
	CodeAmbiguousAlternative,
	CodeNoMatchingAlternative,
	CodeMismatchedAlternative,
	CodeInvalidAlternatives,
	CodeNotOrdered,

	// Wrappers / meta (2)
	CodeSystemError,
	CodeDefect,
}

var builtinCodeSet = map[Code]struct{}{
	CodeBadAccess:             {},
	CodeBadExpectedAccess:     {},
	CodeConstructionFailed:    {},
	CodeSwapUnavailable:       {},
	CodeAmbiguousAlternative:  {},
	CodeNoMatchingAlternative: {},
	CodeMismatchedAlternative: {},
	CodeInvalidAlternatives:   {},
	CodeNotOrdered:            {},
	CodeSystemError:           {},
	CodeDefect:                {},
}

// BuiltinCodes returns a copy of the built-in codes in a stable order.
func BuiltinCodes() []Code {
	out := make([]Code, len(allBuiltinCodes))
	copy(out, allBuiltinCodes)
	return out
}

// IsBuiltin reports whether c is one of the built-in codes.
func (c Code) IsBuiltin() bool {
	_, ok := builtinCodeSet[c]
	return ok
}
