package xgxvariant

import (
	"reflect"
	"testing"
)

func TestIsBuiltin(t *testing.T) {
	t.Parallel()

	for _, c := range BuiltinCodes() {
		if !c.IsBuiltin() {
			t.Fatalf("%q listed by BuiltinCodes but IsBuiltin is false", c)
		}
	}
	for _, c := range []Code{"", "custom_code", "Bad_Access"} {
		if c.IsBuiltin() {
			t.Fatalf("%q reported as builtin", c)
		}
	}
}

func TestBuiltinCodes_ReturnsCopy(t *testing.T) {
	t.Parallel()

	BuiltinCodes()[0] = "custom_code"
	if got := BuiltinCodes()[0]; got != CodeBadAccess {
		t.Fatalf("mutation leaked into BuiltinCodes: first=%q", got)
	}
}

func TestBuiltinCodes_LengthAndOrder(t *testing.T) {
	t.Parallel()

	// Keep this list in sync with codes.go.
	want := []Code{
		CodeBadAccess,
		CodeBadExpectedAccess,
		CodeConstructionFailed,
		CodeSwapUnavailable,
		CodeAmbiguousAlternative,
		CodeNoMatchingAlternative,
		CodeMismatchedAlternative,
		CodeInvalidAlternatives,
		CodeNotOrdered,
		CodeSystemError,
		CodeDefect,
	}

	got := BuiltinCodes()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuiltinCodes() order/content mismatch.\nwant=%v\ngot=%v", want, got)
	}
	if len(builtinCodeSet) != len(want) {
		t.Fatalf("builtinCodeSet out of sync: len=%d want=%d", len(builtinCodeSet), len(want))
	}
}

func TestErrorsCarryBuiltinCodes(t *testing.T) {
	t.Parallel()

	errs := map[Code]error{
		CodeBadAccess:             errBadAccess(1, 0, reflect.TypeFor[string]()),
		CodeConstructionFailed:    errConstruction(0, reflect.TypeFor[int](), errBoom, -1),
		CodeAmbiguousAlternative:  errAmbiguous(reflect.TypeFor[int](), 2),
		CodeNoMatchingAlternative: errNoMatch(reflect.TypeFor[int]()),
		CodeMismatchedAlternative: errMismatched(),
		CodeInvalidAlternatives:   errInvalidAlternative(0, "nil"),
		CodeNotOrdered:            errNotOrdered(0, reflect.TypeFor[[]int]()),
		CodeSwapUnavailable:       errSwapUnavailable(reflect.TypeFor[int]()),
		CodeSystemError:           errSystem(ResultCategory().Code(NotInitialized)),
	}
	for want, err := range errs {
		if got := CodeOf(err); got != want {
			t.Fatalf("CodeOf(%v) = %q, want %q", err, got, want)
		}
		if !want.IsBuiltin() {
			t.Fatalf("%q raised by the package but not builtin", want)
		}
	}
}
