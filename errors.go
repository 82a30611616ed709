// errors.go — concrete error types & constructors for xgx-variant.
//
// Two categories, as concrete types:
//   - failureErr: a retrievable condition the caller is expected to handle
//     (bad access, construction failure, no matching alternative, ...).
//   - defectErr: misuse that a compiler would reject when the alternative
//     list is known statically (index out of range, type absent or repeated).
//     Defects capture a stack at creation and are raised with panic.
//
// Notes:
//   - Copy-on-write everywhere: each fluent method returns a fresh value.
//   - Construction failures wrap the initializer's error as cause so
//     errors.Is/As see it unchanged.
package xgxvariant

import (
	"fmt"
	"reflect"
)

// -----------------------------------------------------------------------------
// Concrete types
// -----------------------------------------------------------------------------

// failureErr is an expected, recoverable condition.
type failureErr struct {
	msg   string
	code  Code
	ctx   fields
	cause error
	stk   Stack
}

func (e *failureErr) Error() string {
	if e.msg == "" {
		if e.code != "" {
			return string(e.code)
		}
		return "error"
	}
	if e.code != "" {
		return fmt.Sprintf("%s: %s", e.code, e.msg)
	}
	return e.msg
}

func (e *failureErr) Unwrap() error           { return e.cause }
func (e *failureErr) CodeVal() Code           { return e.code }
func (e *failureErr) Context() map[string]any { return ctxToMap(e.ctx) }

// Ctx sets the message if it is still empty and appends kv as fields.
// It does NOT concatenate messages.
func (e *failureErr) Ctx(msg string, kv ...any) Error {
	n := e.clone()
	if msg != "" && n.msg == "" {
		n.msg = msg
	}
	if len(kv) > 0 {
		n.ctx = ctxCloneAppend(n.ctx, ctxFromKV(kv...)...)
	}
	return n
}

func (e *failureErr) With(key string, val any) Error {
	n := e.clone()
	n.ctx = ctxCloneAppend(n.ctx, Field{Key: key, Val: val})
	return n
}

func (e *failureErr) WithStack() Error {
	n := e.clone()
	n.stk = captureStackDefault(1)
	return n
}

func (e *failureErr) clone() *failureErr {
	n := *e
	n.ctx = ctxCloneAppend(e.ctx)
	return &n
}

// defectErr models misuse of the API; always carries a stack.
type defectErr struct {
	msg   string
	ctx   fields
	cause error
	stk   Stack
}

func (e *defectErr) Error() string {
	if e.msg != "" {
		return "defect: " + e.msg
	}
	if e.cause != nil {
		return "defect: " + e.cause.Error()
	}
	return "defect"
}

func (e *defectErr) Unwrap() error           { return e.cause }
func (e *defectErr) CodeVal() Code           { return CodeDefect }
func (e *defectErr) Context() map[string]any { return ctxToMap(e.ctx) }

func (e *defectErr) Ctx(msg string, kv ...any) Error {
	n := e.clone()
	if msg != "" && n.msg == "" {
		n.msg = msg
	}
	if len(kv) > 0 {
		n.ctx = ctxCloneAppend(n.ctx, ctxFromKV(kv...)...)
	}
	return n
}

func (e *defectErr) With(key string, val any) Error {
	n := e.clone()
	n.ctx = ctxCloneAppend(n.ctx, Field{Key: key, Val: val})
	return n
}

// WithStack is a no-op clone: the stack was captured at creation.
func (e *defectErr) WithStack() Error { return e.clone() }

func (e *defectErr) clone() *defectErr {
	n := *e
	n.ctx = ctxCloneAppend(e.ctx)
	return &n
}

// -----------------------------------------------------------------------------
// Exported constructors
// -----------------------------------------------------------------------------

// Defect wraps an unexpected programming error; always captures a stack.
func Defect(err error) Error {
	if err == nil {
		err = fmt.Errorf("nil defect")
	}
	return &defectErr{
		ctx:   emptyFields,
		cause: err,
		stk:   captureStackDefault(0),
	}
}

// New creates a failure with a message, code and optional context.
func New(code Code, msg string, kv ...any) Error {
	return &failureErr{msg: msg, code: code, ctx: ctxFromKV(kv...)}
}

// -----------------------------------------------------------------------------
// Internal constructors — one per condition the containers report
// -----------------------------------------------------------------------------

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// errBadAccess: the requested alternative is not the active one.
func errBadAccess(want, active int, t reflect.Type) Error {
	return &failureErr{
		msg:  "bad variant access",
		code: CodeBadAccess,
		ctx:  ctxFromKV(KeyIndex, want, KeyActive, active, KeyType, typeName(t)),
	}
}

// errConstruction wraps the initializer's failure. fallback < 0 means the
// container was left unchanged.
func errConstruction(index int, t reflect.Type, cause error, fallback int) Error {
	kv := []any{KeyIndex, index, KeyType, typeName(t)}
	if fallback >= 0 {
		kv = append(kv, KeyFallback, fallback)
	}
	return &failureErr{
		msg:   "constructing alternative failed",
		code:  CodeConstructionFailed,
		ctx:   ctxFromKV(kv...),
		cause: cause,
	}
}

// errPanicked converts a recovered panic value into an error cause.
func errPanicked(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}

func errAmbiguous(t reflect.Type, count int) Error {
	return &failureErr{
		msg:  "type matches more than one alternative",
		code: CodeAmbiguousAlternative,
		ctx:  ctxFromKV(KeyType, typeName(t), "matches", count),
	}
}

func errNoMatch(t reflect.Type) Error {
	return &failureErr{
		msg:  "type matches no alternative",
		code: CodeNoMatchingAlternative,
		ctx:  ctxFromKV(KeyType, typeName(t)),
	}
}

func errMismatched() Error {
	return &failureErr{
		msg:  "containers have different alternatives",
		code: CodeMismatchedAlternative,
		ctx:  emptyFields,
	}
}

func errInvalidAlternative(pos int, reason string) Error {
	return &failureErr{
		msg:  "invalid alternative",
		code: CodeInvalidAlternatives,
		ctx:  ctxFromKV(KeyIndex, pos, "reason", reason),
	}
}

func errNotOrdered(index int, t reflect.Type) Error {
	return &failureErr{
		msg:  "alternative has no ordering",
		code: CodeNotOrdered,
		ctx:  ctxFromKV(KeyIndex, index, KeyType, typeName(t)),
	}
}

func errSwapUnavailable(t reflect.Type) Error {
	return &failureErr{
		msg:  "swap requires every alternative to move without failure",
		code: CodeSwapUnavailable,
		ctx:  ctxFromKV(KeyType, typeName(t)),
	}
}

// errSystem reports a wrapper's error code through Value().
func errSystem(ec ErrorCode) Error {
	return Wrap(ec, CodeSystemError, ec.Message(), "category", ec.CategoryName(), "value", ec.Value)
}

// defectf panics with a defect built from a formatted message.
func defectf(format string, args ...any) {
	d := Defect(fmt.Errorf(format, args...))
	panic(d)
}

// panicDefect panics with err classified as a defect.
func panicDefect(err error) {
	panic(Defect(err))
}

var (
	_ Error = (*failureErr)(nil)
	_ Error = (*defectErr)(nil)
)
