// wrap.go — helpers that apply the fluent builders to ANY error value.
//
// Result and Outcome lift their ErrorCode into a system_error with Wrap;
// TypedField.Set uses With.
package xgxvariant

// Wrap adds a short message and key-values to any error.
//   - nil → a fresh failure carrying only the context
//   - Error → augmented immutably (message set only if empty)
//   - other error → wrapped as cause of a new failure with the given code
func Wrap(err error, code Code, msg string, kv ...any) Error {
	if err == nil {
		return &failureErr{msg: msg, code: code, ctx: ctxFromKV(kv...)}
	}
	if xe, ok := err.(Error); ok {
		return xe.Ctx(msg, kv...)
	}
	return &failureErr{
		msg:   msg,
		code:  code,
		ctx:   ctxFromKV(kv...),
		cause: err,
	}
}

// With attaches a single key/value to any error immutably.
func With(err error, key string, val any) Error {
	if err == nil {
		return &failureErr{msg: "error", ctx: ctxFromKV(key, val)}
	}
	if xe, ok := err.(Error); ok {
		return xe.With(key, val)
	}
	return &failureErr{
		msg:   err.Error(),
		ctx:   ctxFromKV(key, val),
		cause: err,
	}
}

// WithStack attaches a stack captured at the caller to any error.
func WithStack(err error) Error {
	var fe *failureErr
	switch e := err.(type) {
	case nil:
		fe = &failureErr{msg: "error", ctx: emptyFields}
	case Error:
		if f, ok := e.(*failureErr); ok {
			fe = f.clone()
		} else {
			return e.WithStack()
		}
	default:
		fe = &failureErr{msg: err.Error(), ctx: emptyFields, cause: err}
	}
	fe.stk = captureStackDefault(1)
	return fe
}
