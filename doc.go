// doc.go — package documentation for xgx-variant
//
// Package xgxvariant provides a discriminated union ("variant") that always
// holds exactly one of a fixed list of alternatives, plus the Result, Outcome
// and Expected wrappers built on it. It is designed to be:
//   - Never empty: every mutation leaves exactly one live alternative
//   - Transactional: a failed mutation either keeps the old value or falls
//     back to a documented resting state
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter, slog)
//
// # Containers
//
// V2, V3 and V4 are typed containers; their zero value holds alternative 0 at
// its zero value. Union is the type-erased form built from an Alternatives
// set at run time. All of them implement Container:
//
//	var v xgxvariant.V3[int, string, error]
//	_ = v.Set1("ident")
//	s, err := xgxvariant.Get[string](&v)   // *string, nil
//	_, err = v.Get0()                       // bad_access
//
// # Lifecycle Hooks
//
// Go values have no constructors or destructors, so an alternative opts into
// lifecycle events with methods on *T, or with AltOf options:
//
//	+---------------------+-----------------------+----------------------------+
//	| Hook                | Absent means          | Effect on the container    |
//	+---------------------+-----------------------+----------------------------+
//	| Init() error        | nothrow default       | Default/EmplaceX(nil)      |
//	| Destroy()           | trivially destructible| runs when the value leaves |
//	| Relocate() error    | nothrow move          | any → double-buffered      |
//	| Clone() (T, error)  | nothrow copy          | Clone/Assign               |
//	| Equal(T) bool       | == or deep equality   | Equal                      |
//	| Compare(T) int      | builtin order or none | Compare/Less               |
//	| embed Monostate     | not resting           | fallback eligibility       |
//	+---------------------+-----------------------+----------------------------+
//
// # Failure Guarantees
//
// A mutation that fails returns a construction_failed error wrapping the
// cause. Double-buffered sets build the new value in a spare buffer, so the
// old value survives. Single-buffered sets with a resting alternative destroy
// the old value first and rest in the fallback on failure; FallbackOf(err)
// reports which. Otherwise the new value is built in a temporary first.
//
// # Misuse
//
// Requests a compiler would reject for a statically typed union (index out
// of range, Get[T] with T absent or repeated) panic with a defect that
// carries a stack. IsDefect recognizes it after recover.
//
// # Formatting & Logging
//
// Errors implement fmt.Formatter:
//   - `%v`, `%s`   → concise, single-line `Error()`
//   - `%+v`        → verbose, multi-line (code, msg, ctx, cause, stack)
//   - `%q`         → quoted `Error()`
//
// Containers print their active value (`%+v` adds index and type). The core
// never logs; errors, codes and containers implement slog.LogValuer.
package xgxvariant
