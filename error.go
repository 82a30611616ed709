// error.go — the Code type and the Error contract.
//
// Design tenets for errors raised by containers:
//   - Interop-first: errors.Is/As reach the original constructor failure.
//   - Minimal surface: no logging/HTTP/JSON in core.
//   - Non-mutating ergonomics: fluent builders return a new value.
//   - Selective stacks: defects (misuse that a compiler would reject in a
//     language with variadic generics) capture a stack; failures do not.
package xgxvariant

// Code classifies errors into machine-readable categories.
//
// Codes are stringly-typed for stability across serialization boundaries.
// Callers may define their own codes; the core reserves only the built-ins
// listed in codes.go.
type Code string

// Error is the fluent, interop-friendly contract for every error this package
// returns or panics with.
//
// All fluent methods MUST be non-mutating: they return a new Error value
// (copy-on-write) and MUST NOT alter the receiver state, so an error value
// shared between goroutines needs no synchronization.
type Error interface {
	error

	// Ctx sets the message if it is empty and appends key-value fields.
	// Returns a NEW Error.
	//
	// Example:
	//   err = err.Ctx("assign failed", "op", "assign")
	Ctx(msg string, kv ...any) Error

	// With adds a single key-value field. Returns a NEW Error.
	With(key string, val any) Error

	// WithStack attaches a stack trace captured at the caller. Returns a NEW Error.
	WithStack() Error

	// CodeVal returns the classification code ("" when unspecified).
	CodeVal() Code

	// Context returns a COPY of the error's context as a map
	// (last write wins for duplicate keys).
	Context() map[string]any

	// Unwrap returns the causal parent (for construction failures: the error
	// returned by the alternative's initializer), or nil.
	Unwrap() error
}
