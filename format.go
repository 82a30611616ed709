// format.go — fmt.Formatter implementations for container errors.
//
//	%s, %v   Error(), one line
//	%q       quoted Error()
//	%+v      code, message, then one line per section:
//	           code=construction_failed msg="constructing alternative failed"
//	           ctx: index=1 type=string fallback=0
//	           cause: <cause with %+v>
//	           stack:
//	             pkg.fn file.go:123
package xgxvariant

import (
	"fmt"
	"io"
)

// formatError dispatches on the verb; verbose renders %+v.
func formatError(s fmt.State, verb rune, err error, verbose func(io.Writer)) {
	switch {
	case verb == 'v' && s.Flag('+'):
		verbose(s)
	case verb == 'q':
		_, _ = fmt.Fprintf(s, "%q", err.Error())
	default:
		_, _ = io.WriteString(s, err.Error())
	}
}

func writeVerbose(w io.Writer, code Code, msg string, ctx fields, cause error, stk Stack) {
	if code != "" {
		_, _ = fmt.Fprintf(w, "code=%s ", code)
	}
	_, _ = fmt.Fprintf(w, "msg=%q", msg)
	if len(ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range ctx {
			if f.Key == "" {
				continue
			}
			_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
		}
	}
	if cause != nil {
		_, _ = fmt.Fprintf(w, "\ncause: %+v", cause)
	}
	if len(stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

func (e *failureErr) Format(s fmt.State, verb rune) {
	formatError(s, verb, e, func(w io.Writer) {
		writeVerbose(w, e.code, e.msg, e.ctx, e.cause, e.stk)
	})
}

func (e *defectErr) Format(s fmt.State, verb rune) {
	formatError(s, verb, e, func(w io.Writer) {
		writeVerbose(w, CodeDefect, e.plainMsgOrCause(), e.ctx, e.cause, e.stk)
	})
}

// plainMsgOrCause is the defect message without the "defect:" prefix that
// code=defect already states.
func (e *defectErr) plainMsgOrCause() string {
	switch {
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	}
	return ""
}
