package xgxvariant

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFieldOf_Constructor(t *testing.T) {
	t.Parallel()

	if FieldOf[int]("i").Key() != "i" {
		t.Fatalf("Key() mismatch")
	}
	for _, f := range []string{FieldIndex.Key(), FieldActive.Key(), FieldType.Key(), FieldFallback.Key()} {
		if f == "" {
			t.Fatalf("predefined field with empty key")
		}
	}
}

func TestTypedFields_OnBadAccessFromContainer(t *testing.T) {
	t.Parallel()

	var v V3[int, string, float64]
	_ = v.Set2(1.5)

	_, err := v.Get1()
	if err == nil {
		t.Fatalf("Get1 on a float64 variant succeeded")
	}
	if idx := FieldIndex.MustGet(err); idx != 1 {
		t.Fatalf("index = %d, want 1", idx)
	}
	if act := FieldActive.MustGet(err); act != 2 {
		t.Fatalf("active = %d, want 2", act)
	}
	if typ := FieldType.MustGet(err); typ != "string" {
		t.Fatalf("type = %q, want string", typ)
	}
}

func TestTypedField_SetGetRoundTrip(t *testing.T) {
	t.Parallel()

	type attempt struct{ N int }
	f := FieldOf[attempt]("attempt")

	err := f.Set(errBoom, attempt{N: 3})
	got, ok := f.Get(err)
	if !ok || got.N != 3 {
		t.Fatalf("Get = %+v,%v", got, ok)
	}
	if !errors.Is(err, errBoom) {
		t.Fatalf("Set must keep the original error reachable")
	}

	// Found through foreign wrapping.
	wrapped := fmt.Errorf("outer: %w", err)
	if got, ok := f.Get(wrapped); !ok || got.N != 3 {
		t.Fatalf("Get through fmt wrap = %+v,%v", got, ok)
	}
}

func TestTypedField_WrongTypeOrMissing(t *testing.T) {
	t.Parallel()

	err := FieldOf[string](KeyIndex).Set(errBoom, "one")
	if _, ok := FieldIndex.Get(err); ok {
		t.Fatalf("Get succeeded with mismatched dynamic type")
	}
	if _, ok := FieldFallback.Get(err); ok {
		t.Fatalf("Get succeeded for a missing key")
	}
	if _, ok := FieldIndex.Get(nil); ok {
		t.Fatalf("Get(nil) succeeded")
	}

	defer func() {
		r := recover()
		if r == nil || !strings.Contains(fmt.Sprint(r), "wrong dynamic type") {
			t.Fatalf("MustGet panic = %v", r)
		}
	}()
	_ = FieldIndex.MustGet(err)
}

func TestTypedField_NewestValueWins(t *testing.T) {
	t.Parallel()

	err := FieldIndex.Set(FieldIndex.Set(errBoom, 1), 2)
	if got := FieldIndex.MustGet(err); got != 2 {
		t.Fatalf("index = %d, want newest 2", got)
	}
}
