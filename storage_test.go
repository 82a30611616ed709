package xgxvariant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_ConstructAndDestroy(t *testing.T) {
	t.Parallel()

	reg := newRegistry()
	a := AltOf[resource]()
	var s storage

	require.True(t, s.vacant())
	require.NoError(t, s.construct(a, func(p any) error { return reg.build("r")(p.(*resource)) }))
	require.False(t, s.vacant())
	assert.Equal(t, "r", s.get().(*resource).name)

	s.destroy(a)
	assert.True(t, s.vacant())
	assert.Equal(t, 0, reg.total())
	assert.Equal(t, []string{"+r", "-r"}, reg.events)
}

func TestStorage_FailedConstructLeavesVacant(t *testing.T) {
	t.Parallel()

	var s storage
	err := s.construct(AltOf[int](), func(any) error { return errBoom })
	require.ErrorIs(t, err, errBoom)
	assert.True(t, s.vacant())

	assert.Panics(t, func() {
		_ = s.construct(AltOf[int](), func(any) error { panic("init") })
	})
	assert.True(t, s.vacant())
}

func TestStorage_ConstructIntoOccupiedIsDefect(t *testing.T) {
	t.Parallel()

	a := AltOf[int]()
	var s storage
	require.NoError(t, s.construct(a, func(any) error { return nil }))
	requireDefect(t, func() { _ = s.construct(a, func(any) error { return nil }) })
}

func TestStorage_VacateSkipsHooks(t *testing.T) {
	t.Parallel()

	reg := newRegistry()
	a := AltOf[resource]()
	var s storage
	require.NoError(t, s.construct(a, func(p any) error { return reg.build("r")(p.(*resource)) }))

	s.vacate(a)
	assert.True(t, s.vacant())
	assert.Equal(t, 1, reg.total(), "vacate must not run Destroy")
}
