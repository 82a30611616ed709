package xgxvariant

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logged writes one record with the given attributes and decodes it.
func logged(t *testing.T, args ...any) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
				return slog.Attr{}
			}
			return a
		},
	}))
	logger.Info("", args...)
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestLogValue_Containers(t *testing.T) {
	t.Parallel()

	var v V2[int, string]
	require.NoError(t, v.Set1("ident"))
	u, err := UnionOf(tokenAlternatives(t), 3)
	require.NoError(t, err)

	got := logged(t, "token", &v, "union", u)
	want := map[string]any{
		"token": map[string]any{"index": 1.0, "type": "string", "value": "ident"},
		"union": map[string]any{"index": 1.0, "type": "number", "value": 3.0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("log record (-want +got):\n%s", diff)
	}
}

func TestLogValue_Errors(t *testing.T) {
	t.Parallel()

	var v V2[resource, string]
	err := v.Emplace1(failWith[string](errBoom))
	require.Error(t, err)

	got := logged(t, "err", err, "code", errEOF.ErrorCode())
	want := map[string]any{
		"err": map[string]any{
			"code":  "construction_failed",
			"msg":   "constructing alternative failed",
			"index": 1.0,
			"type":  "string",
			"cause": "boom",
		},
		"code": map[string]any{"category": "parse", "value": 1.0, "msg": "unexpected end of input"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("log record (-want +got):\n%s", diff)
	}
}

func TestLogValue_DefectCarriesLocation(t *testing.T) {
	t.Parallel()

	var v V2[int, string]
	err := requireDefect(t, func() { _ = Holds[bool](&v) })
	got := logged(t, "err", err)

	group, ok := got["err"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "defect", group["code"])
	assert.Contains(t, group["at"], ".go:")
}

func TestLogValue_Wrappers(t *testing.T) {
	t.Parallel()

	exp, err := Unexpect[int]("bad")
	require.NoError(t, err)
	got := logged(t,
		"ok", Ok(5),
		"fail", Fail[int](errSyntax.ErrorCode()),
		"exc", OutcomeException[int](errBoom),
		"exp", exp,
	)
	assert.Equal(t, 5.0, got["ok"])
	assert.Equal(t, map[string]any{"category": "parse", "value": 2.0, "msg": "syntax error"}, got["fail"])
	assert.Equal(t, "boom", got["exc"])
	assert.Equal(t, map[string]any{"index": 1.0, "type": "string", "value": "bad"}, got["exp"])
}
