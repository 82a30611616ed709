// context.go — immutable structured context attached to errors.
//
// Design:
//   • Internal representation: append-only []Field (deterministic order).
//   • Builders are non-mutating: they return NEW slices (no aliasing).
//   • Public view for callers: copy-on-read map[string]any.
//
// Container errors always record the same small vocabulary of keys (see
// typed_field.go): index, active, type, fallback. Order of insertion is kept
// so %+v output is stable.
package xgxvariant

// Field is a single contextual key-value pair attached to an error.
type Field struct {
	Key string
	Val any
}

// fields is the internal immutable representation of context.
// Never modify elements in place once published.
type fields []Field

var emptyFields = make(fields, 0)

// ctxCloneAppend returns a NEW slice with dst's contents followed by add.
// It always allocates a fresh backing array to avoid aliasing via append.
func ctxCloneAppend(dst fields, add ...Field) fields {
	n, m := len(dst), len(add)
	if n+m == 0 {
		return emptyFields
	}
	out := make(fields, n+m)
	copy(out, dst)
	copy(out[n:], add)
	return out
}

// ctxFromKV parses alternating key-value arguments into fields.
//
// A non-string key drops the whole pair (key and its value) so the following
// pairs stay aligned. A trailing key with no value becomes (key, nil).
func ctxFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return emptyFields
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			i += 2
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		i += 2
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return emptyFields
	}
	return out
}

// ctxToMap creates a NEW, never nil map from fields; later duplicates win
// and empty keys are skipped.
func ctxToMap(fs fields) map[string]any {
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		if f.Key != "" {
			m[f.Key] = f.Val
		}
	}
	return m
}

// lookup returns the newest value recorded under key without building a map.
func (fs fields) lookup(key string) (any, bool) {
	for i := len(fs) - 1; i >= 0; i-- {
		if fs[i].Key == key {
			return fs[i].Val, true
		}
	}
	return nil, false
}
