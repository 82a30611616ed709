// bad_access.go — Exception and the bad_expected_access errors.
package xgxvariant

import (
	"reflect"
	"strconv"
)

// Exception is a captured failure carried by the exception channel of an
// Outcome (or an Expected whose error type is Exception). Err may be nil,
// the "null exception".
type Exception struct {
	Err error
}

// ExceptionOf captures err.
func ExceptionOf(err error) Exception { return Exception{Err: err} }

func (x Exception) Error() string {
	if x.Err == nil {
		return "null exception"
	}
	return x.Err.Error()
}

func (x Exception) Unwrap() error { return x.Err }

// IsNull reports whether no error was captured.
func (x Exception) IsNull() bool { return x.Err == nil }

// BadExpectedAccess is returned when the value of an Expected holding an
// error of type E is requested. The message names E and, for integer enum
// types, the numeric value.
type BadExpectedAccess[E any] struct {
	err E
	msg string
}

func newBadExpectedAccess[E any](e E) *BadExpectedAccess[E] {
	t := reflect.TypeFor[E]()
	msg := "bad_expected_access<" + t.String() + ">"
	if v := reflect.ValueOf(&e).Elem(); isEnumKind(t) {
		if v.CanInt() {
			msg += ": " + strconv.FormatInt(v.Int(), 10)
		} else {
			msg += ": " + strconv.FormatUint(v.Uint(), 10)
		}
	}
	return &BadExpectedAccess[E]{err: e, msg: msg}
}

// isEnumKind reports whether t is a named integer type, Go's enum idiom.
func isEnumKind(t reflect.Type) bool {
	if t.PkgPath() == "" {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func (b *BadExpectedAccess[E]) Error() string { return b.msg }

// ErrorValue returns the error the Expected was holding.
func (b *BadExpectedAccess[E]) ErrorValue() E { return b.err }

// CodeVal classifies the error for HasCode and IsBadAccess.
func (b *BadExpectedAccess[E]) CodeVal() Code { return CodeBadExpectedAccess }

// errValuePresent is returned when an error is requested from an Expected
// that holds a value.
func errValuePresent() Error {
	return New(CodeBadExpectedAccess, "value present on error request")
}

// unexpectedError is the error reported when the value of an Expected
// holding e is requested.
func unexpectedError[E any](e E) error {
	switch x := any(e).(type) {
	case ErrorCode:
		return errSystem(x)
	case Exception:
		if x.Err == nil {
			return New(CodeBadExpectedAccess, "null exception")
		}
		return x.Err
	}
	return newBadExpectedAccess(e)
}
