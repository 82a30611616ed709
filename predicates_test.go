// predicates_test.go — verification of classification and query helpers.
package xgxvariant

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestIsDefect(t *testing.T) {
	t.Parallel()

	if !IsDefect(Defect(errors.New("boom"))) {
		t.Fatalf("IsDefect(defect) = false, want true")
	}
	if !IsDefect(New(CodeDefect, "x")) {
		t.Fatalf("IsDefect(failure with CodeDefect) = false, want true")
	}
	if IsDefect(nil) || IsDefect(errMismatched()) {
		t.Fatalf("IsDefect true for nil or a plain failure")
	}
}

func TestIsBadAccess(t *testing.T) {
	t.Parallel()

	if !IsBadAccess(errBadAccess(0, 1, reflect.TypeFor[int]())) {
		t.Fatalf("bad_access not recognized")
	}
	if !IsBadAccess(newBadExpectedAccess("nope")) {
		t.Fatalf("bad_expected_access not recognized")
	}
	if !IsBadAccess(fmt.Errorf("ctx: %w", errBadAccess(0, 1, nil))) {
		t.Fatalf("wrapped bad_access not recognized")
	}
	if IsBadAccess(errNoMatch(nil)) {
		t.Fatalf("no_matching_alternative classified as bad access")
	}
}

func TestIsConstructionFailure_AndFallbackOf(t *testing.T) {
	t.Parallel()

	kept := errConstruction(1, reflect.TypeFor[string](), errBoom, -1)
	if !IsConstructionFailure(kept) {
		t.Fatalf("IsConstructionFailure = false")
	}
	if _, ok := FallbackOf(kept); ok {
		t.Fatalf("FallbackOf reports a fallback for an unchanged container")
	}

	rested := errConstruction(1, reflect.TypeFor[string](), errBoom, 0)
	if fb, ok := FallbackOf(rested); !ok || fb != 0 {
		t.Fatalf("FallbackOf = %d,%v want 0,true", fb, ok)
	}
	if !errors.Is(rested, errBoom) {
		t.Fatalf("construction failure must wrap its cause")
	}
	if _, ok := FallbackOf(errBoom); ok {
		t.Fatalf("FallbackOf on a foreign error")
	}
}

func TestHasCode_WalksWholeGraph(t *testing.T) {
	t.Parallel()

	inner := errBadAccess(0, 1, reflect.TypeFor[int]())
	outer := errConstruction(1, reflect.TypeFor[string](), inner, -1)
	joined := Join(errMismatched(), fmt.Errorf("layer: %w", outer))

	for _, c := range []Code{CodeMismatchedAlternative, CodeConstructionFailed, CodeBadAccess} {
		if !HasCode(joined, c) {
			t.Fatalf("HasCode(joined, %q) = false", c)
		}
	}
	if HasCode(joined, CodeNotOrdered) {
		t.Fatalf("HasCode found an absent code")
	}
	if HasCode(nil, CodeBadAccess) {
		t.Fatalf("HasCode(nil) = true")
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	if got := CodeOf(fmt.Errorf("x: %w", errSwapUnavailable(nil))); got != CodeSwapUnavailable {
		t.Fatalf("CodeOf = %q", got)
	}
	if got := CodeOf(errBoom); got != "" {
		t.Fatalf("CodeOf(foreign) = %q, want empty", got)
	}
	if got := CodeOf(nil); got != "" {
		t.Fatalf("CodeOf(nil) = %q", got)
	}
}

func TestWalk_StopsEarlyAndSurvivesCycles(t *testing.T) {
	t.Parallel()

	a := errMismatched()
	j := Join(a, a, errBoom)

	var seen []error
	Walk(j, func(e error) bool {
		seen = append(seen, e)
		return true
	})
	if len(seen) != 3 {
		t.Fatalf("expected join + 2 distinct children, got %d", len(seen))
	}

	n := 0
	Walk(j, func(error) bool { n++; return false })
	if n != 1 {
		t.Fatalf("Walk did not stop early: %d visits", n)
	}
}
