// wrap_test.go — verification of adapter helpers: Wrap / With / WithStack.
package xgxvariant

import (
	"errors"
	"testing"
)

func TestWrap_NilBuildsFreshFailure(t *testing.T) {
	t.Parallel()

	got := Wrap(nil, CodeConstructionFailed, "init", "index", 1)
	if got.CodeVal() != CodeConstructionFailed || got.Unwrap() != nil {
		t.Fatalf("Wrap(nil) = %#v", got)
	}
	if v, ok := FieldIndex.Get(got); !ok || v != 1 {
		t.Fatalf("index field = %v,%v", v, ok)
	}
}

func TestWrap_XgxIsAugmentedImmutably(t *testing.T) {
	t.Parallel()

	base := errNoMatch(nil)
	got := Wrap(base, CodeDefect, "ignored message", "extra", true)

	if got.CodeVal() != CodeNoMatchingAlternative {
		t.Fatalf("code changed to %q", got.CodeVal())
	}
	if _, ok := base.Context()["extra"]; ok {
		t.Fatalf("Wrap mutated its input")
	}
	if got.Context()["extra"] != true {
		t.Fatalf("extra field missing: %v", got.Context())
	}
}

func TestWrap_PlainBecomesCause(t *testing.T) {
	t.Parallel()

	plain := errors.New("disk full")
	got := Wrap(plain, CodeConstructionFailed, "open log")
	if !errors.Is(got, plain) {
		t.Fatalf("errors.Is(wrapped, plain) = false")
	}
	if got.Error() != "construction_failed: open log" {
		t.Fatalf("Error() = %q", got.Error())
	}
}

func TestWith_AttachesSingleField(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")
	got := With(plain, KeyFallback, 0)
	if fb, ok := FieldFallback.Get(got); !ok || fb != 0 {
		t.Fatalf("fallback = %v,%v", fb, ok)
	}
	if got.Error() != "boom" || !errors.Is(got, plain) {
		t.Fatalf("With(plain) = %q", got.Error())
	}
	if With(nil, "k", 1).Error() != "error" {
		t.Fatalf("With(nil) should build a placeholder failure")
	}
}

func TestWithStack_CapturesForEveryKind(t *testing.T) {
	t.Parallel()

	cases := map[string]error{
		"nil":     nil,
		"failure": errMismatched(),
		"plain":   errors.New("plain"),
		"defect":  Defect(errors.New("x")),
	}
	for name, in := range cases {
		if got := WithStack(in); len(StackOf(got)) == 0 {
			t.Fatalf("%s: WithStack recorded no stack", name)
		}
	}

	base := errMismatched()
	_ = WithStack(base)
	if len(StackOf(base)) != 0 {
		t.Fatalf("WithStack mutated its input")
	}
}
