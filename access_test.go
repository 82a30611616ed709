package xgxvariant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldsAndGet(t *testing.T) {
	t.Parallel()

	var v V3[int, string, error]
	assert.True(t, Holds[int](&v))
	require.NoError(t, Set(&v, "ident"))
	assert.True(t, Holds[string](&v))
	assert.False(t, Holds[int](&v))

	s, err := Get[string](&v)
	require.NoError(t, err)
	assert.Equal(t, "ident", *s)

	_, err = Get[int](&v)
	assert.True(t, IsBadAccess(err))
	assert.Nil(t, GetIf[error](&v))
	assert.NotNil(t, GetIf[string](&v))
}

func TestGetAt_RepeatedTypes(t *testing.T) {
	t.Parallel()

	var v V3[int, int, string]
	require.NoError(t, SetAt(&v, 1, 5))

	p, err := GetAt[int](&v, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, *p)
	assert.Nil(t, GetIfAt[int](&v, 0))

	_, err = GetAt[int](&v, 0)
	assert.True(t, IsBadAccess(err))

	require.NoError(t, EmplaceAt(&v, 0, func(p *int) error { *p = 9; return nil }))
	assert.Equal(t, 9, *GetIfAt[int](&v, 0))
}

func TestAccess_MisuseIsDefect(t *testing.T) {
	t.Parallel()

	var v V3[int, int, string]
	cases := map[string]func(){
		"absent_type":     func() { _, _ = Get[float64](&v) },
		"repeated_type":   func() { _ = Holds[int](&v) },
		"index_too_large": func() { _ = GetIfAt[string](&v, 3) },
		"negative_index":  func() { v.Alternatives().At(-1) },
		"wrong_type":      func() { _ = SetAt(&v, 2, 1) },
		"emplace_absent":  func() { _ = Emplace[bool](&v, nil) },
		"visit_arity":     func() { _ = VisitAt[int](&v, func(any) int { return 0 }) },
		"zero_union":      func() { var u Union; _ = u.Index() },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			err := requireDefect(t, fn)
			assert.NotEmpty(t, StackOf(err))
		})
	}
}

func TestEmplace_ByType(t *testing.T) {
	t.Parallel()

	reg := newRegistry()
	var v V2[resource, string]
	require.NoError(t, Emplace(&v, reg.build("r")))
	assert.Equal(t, 1, reg.count("r"))

	err := Emplace[string](&v, failWith[string](errBoom))
	require.Error(t, err)
	assert.True(t, IsConstructionFailure(err))
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, reg.count("r"), "temporary construction leaves the value")
	assert.Equal(t, "string", FieldType.MustGet(err))
}

func TestAssign_BestMatch(t *testing.T) {
	t.Parallel()

	var v V3[int, stringer, error]
	require.NoError(t, Assign(&v, label("x")))
	assert.Equal(t, 1, v.Index())

	var e error = errBoom
	require.NoError(t, Assign(&v, e))
	assert.Equal(t, 2, v.Index(), "dynamic type of an interface argument")
	assert.Same(t, errBoom, *v.If2())

	require.NoError(t, Assign(&v, 3))
	require.NoError(t, Assign(&v, 4))
	assert.Equal(t, 4, *v.If0())

	err := Assign(&v, 1.5)
	assert.True(t, HasCode(err, CodeNoMatchingAlternative))
	assert.Equal(t, 4, *v.If0(), "failed resolution leaves the value")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	v, err := Default[V2[widget, int]]()
	require.NoError(t, err)
	assert.True(t, v.If0().ready)

	var zero V2[widget, int]
	assert.False(t, zero.If0().ready, "the zero container skips Init")

	_, err = Default[V2[brittle, int]]()
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
}

func TestMake(t *testing.T) {
	t.Parallel()

	v, err := Make[V2[int, float32]](float32(1.5))
	require.NoError(t, err)
	assert.Equal(t, 1, v.Index())

	_, err = Make[V2[int, float32]](1.5)
	assert.True(t, HasCode(err, CodeNoMatchingAlternative), "float64 does not convert")

	_, err = Make[V2[int, int]](1)
	assert.True(t, HasCode(err, CodeAmbiguousAlternative))

	f, err := Make[V2[flaky, int]](flaky{failMove: true})
	require.Error(t, err)
	assert.Nil(t, f)
	assert.True(t, IsConstructionFailure(err))
}

func TestInPlace(t *testing.T) {
	t.Parallel()

	v, err := InPlaceIndex[V3[int, int, string]](1, func(p *int) error { *p = 2; return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, v.Index())
	assert.Equal(t, 2, *v.If1())

	w, err := InPlaceType[V3[int, int, string]](func(p *string) error { *p = "s"; return nil })
	require.NoError(t, err)
	assert.Equal(t, "s", *w.If2())

	_, err = InPlaceType[V2[int, brittle]]((func(*brittle) error)(nil))
	assert.ErrorIs(t, err, errBoom)
}
