package xgxvariant

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// parseErr is an enum-like error type with its own category.
type parseErr int

const (
	errEOF parseErr = iota + 1
	errSyntax
)

var parseCategory = RegisterCategory("parse", func(v int) string {
	switch parseErr(v) {
	case errEOF:
		return "unexpected end of input"
	case errSyntax:
		return "syntax error"
	}
	return "unknown parse error"
})

func (e parseErr) ErrorCode() ErrorCode { return parseCategory.Code(int(e)) }
func (e parseErr) Error() string { return e.ErrorCode().Message() }

func TestErrorCode(t *testing.T) {
	t.Parallel()

	ec := MakeErrorCode(errSyntax)
	assert.Equal(t, 2, ec.Value)
	assert.Same(t, parseCategory, ec.Category)
	assert.Equal(t, "parse:2: syntax error", ec.Error())
	assert.Equal(t, "parse", ec.CategoryName())
	assert.False(t, ec.IsZero())
	assert.Equal(t, ec, errSyntax.ErrorCode(), "codes compare with ==")

	var zero ErrorCode
	assert.True(t, zero.IsZero())
	assert.Equal(t, "generic:0: success", zero.Error())
	assert.Equal(t, "error 7", ErrorCode{Value: 7}.Message())
}

func TestErrorCodeOf(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("read: %w", errEOF.ErrorCode())
	ec, ok := ErrorCodeOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, errEOF.ErrorCode(), ec)

	ec, ok = ErrorCodeOf(errSystem(ResultCategory().Code(NotInitialized)))
	require.True(t, ok)
	assert.Equal(t, "result", ec.CategoryName())

	_, ok = ErrorCodeOf(errBoom)
	assert.False(t, ok)
}

func TestErrorCodeOf_Coder(t *testing.T) {
	t.Parallel()

	ec, ok := ErrorCodeOf(fmt.Errorf("lex: %w", errSyntax))
	require.True(t, ok)
	assert.Equal(t, errSyntax.ErrorCode(), ec)
}

func TestCategoryRegistry(t *testing.T) {
	t.Parallel()

	c, ok := LookupCategory("parse")
	require.True(t, ok)
	assert.Same(t, parseCategory, c)
	assert.Same(t, ResultCategory(), ResultCategory())
	assert.NotSame(t, ResultCategory(), OutcomeCategory())
	assert.Equal(t, "outcome<> not initialized", OutcomeCategory().Message(NotInitialized))

	_, ok = LookupCategory("never-registered")
	assert.False(t, ok)

	var built atomic.Int32
	cats := make([]*Category, 32)
	var g errgroup.Group
	for i := range cats {
		g.Go(func() error {
			cats[i] = RegisterCategory("registry-race", func(int) string {
				built.Add(1)
				return "x"
			})
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, c := range cats {
		assert.Same(t, cats[0], c)
	}
	assert.Equal(t, "x", cats[0].Message(1))
	assert.Equal(t, int32(1), built.Load(), "only the winning message func is kept")
}
