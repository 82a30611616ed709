// category.go — error codes carried by the Result and Outcome wrappers.
//
// An ErrorCode is a small integer plus the Category that gives it meaning,
// the way an errno is interpreted by its subsystem. Categories live in a
// process-wide registry so the same name always yields the same *Category,
// which keeps codes comparable with ==.
package xgxvariant

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/puzpuzpuz/xsync/v3"
)

// NotInitialized is the code a Result or Outcome reports before a value or
// error has been stored.
const NotInitialized = 1

// Category names a family of error codes and renders their messages.
type Category struct {
	name    string
	message func(int) string
}

// Name returns the registered category name.
func (c *Category) Name() string {
	if c == nil {
		return "generic"
	}
	return c.name
}

// Message renders value in this category.
func (c *Category) Message(value int) string {
	if value == 0 {
		return "success"
	}
	if c == nil || c.message == nil {
		return "error " + strconv.Itoa(value)
	}
	return c.message(value)
}

// Code builds an ErrorCode in this category.
func (c *Category) Code(value int) ErrorCode {
	return ErrorCode{Value: value, Category: c}
}

func (c *Category) String() string { return c.Name() }

var categories = xsync.NewMapOf[string, *Category]()

// RegisterCategory returns the category registered under name, creating it
// with msg on first use. Later calls return the existing category and ignore
// msg. Safe for concurrent use.
func RegisterCategory(name string, msg func(int) string) *Category {
	c, _ := categories.LoadOrCompute(name, func() *Category {
		return &Category{name: name, message: msg}
	})
	return c
}

// LookupCategory finds a registered category.
func LookupCategory(name string) (*Category, bool) {
	return categories.Load(name)
}

// ResultCategory is the category of codes raised by Result itself.
func ResultCategory() *Category {
	return RegisterCategory("result", func(v int) string {
		if v == NotInitialized {
			return "result<> not initialized"
		}
		return "unknown result<> error " + strconv.Itoa(v)
	})
}

// OutcomeCategory is the category of codes raised by Outcome itself.
func OutcomeCategory() *Category {
	return RegisterCategory("outcome", func(v int) string {
		if v == NotInitialized {
			return "outcome<> not initialized"
		}
		return "unknown outcome<> error " + strconv.Itoa(v)
	})
}

// ErrorCode is a category-qualified integer error. The zero Value means
// "no error"; ErrorCode{} is the sentinel returned when nothing failed.
type ErrorCode struct {
	Value    int
	Category *Category
}

// IsZero reports whether ec is the "no error" sentinel.
func (ec ErrorCode) IsZero() bool { return ec.Value == 0 }

// Message renders the code through its category.
func (ec ErrorCode) Message() string { return ec.Category.Message(ec.Value) }

// CategoryName returns the category name, "generic" when unset.
func (ec ErrorCode) CategoryName() string { return ec.Category.Name() }

func (ec ErrorCode) Error() string {
	return fmt.Sprintf("%s:%d: %s", ec.CategoryName(), ec.Value, ec.Message())
}

// ErrorCoder is implemented by enum-like error types that map onto an
// ErrorCode.
type ErrorCoder interface {
	ErrorCode() ErrorCode
}

// MakeErrorCode converts e to its ErrorCode.
func MakeErrorCode[E ErrorCoder](e E) ErrorCode { return e.ErrorCode() }

// ErrorCodeOf finds an ErrorCode along err's chain, either stored directly
// or produced by an ErrorCoder.
func ErrorCodeOf(err error) (ErrorCode, bool) {
	var ec ErrorCode
	if errors.As(err, &ec) {
		return ec, true
	}
	var coder ErrorCoder
	if errors.As(err, &coder) {
		return coder.ErrorCode(), true
	}
	return ErrorCode{}, false
}
