package xgxvariant

import (
	"reflect"
	"testing"
)

func BenchmarkSetSingleBuffered(b *testing.B) {
	var v V3[int, string, float64]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			_ = v.Set0(i)
		} else {
			_ = v.Set1("x")
		}
	}
}

func BenchmarkSetDoubleBuffered(b *testing.B) {
	var v V2[flaky, int]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			_ = v.Set0(flaky{n: i})
		} else {
			_ = v.Set1(i)
		}
	}
}

func BenchmarkGetByType(b *testing.B) {
	var v V3[int, string, float64]
	_ = v.Set1("x")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Get[string](&v)
	}
}

func BenchmarkVisit(b *testing.B) {
	var v, w V2[int, string]
	_ = v.Set0(1)
	_ = w.Set1("y")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Visit(func(vals ...any) int { return len(vals) }, &v, &w)
	}
}

func BenchmarkBadAccessError(b *testing.B) {
	t := reflect.TypeFor[string]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = errBadAccess(1, 0, t)
	}
}

func BenchmarkCtxAppend(b *testing.B) {
	base := errMismatched()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = base.Ctx("step", "idx", i)
	}
}

func BenchmarkWalkJoined(b *testing.B) {
	errs := make([]error, 0, 64)
	for i := 0; i < 64; i++ {
		errs = append(errs, errInvalidAlternative(i, "nil"))
	}
	err := Join(errs...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Walk(err, func(error) bool { return true })
	}
}
