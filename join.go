// join.go — the error NewAlternatives returns when several positions are
// invalid. Error() and Unwrap() behave like errors.Join; %+v prints each
// entry verbosely.
package xgxvariant

import (
	"fmt"
	"io"
	"strings"
)

type errorList struct {
	errs []error
}

func (l *errorList) Error() string {
	msgs := make([]string, len(l.errs))
	for i, e := range l.errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

func (l *errorList) Unwrap() []error { return l.errs }

func (l *errorList) Format(s fmt.State, verb rune) {
	formatError(s, verb, l, func(w io.Writer) {
		for i, e := range l.errs {
			if i > 0 {
				_, _ = io.WriteString(w, "\n")
			}
			_, _ = fmt.Fprintf(w, "%+v", e)
		}
	})
}

// Join wraps the non-nil errs. It returns nil when there are none and the
// error itself when there is exactly one.
func Join(errs ...error) error {
	var nz []error
	for _, e := range errs {
		if e != nil {
			nz = append(nz, e)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		return nz[0]
	}
	return &errorList{errs: nz}
}
