// slog.go — structured rendering of containers, errors and codes.
//
// The core never logs. Values implement slog.LogValuer so the caller's
// logger renders them as groups:
//
//	logger.Info("parsed", "token", v)
//	// token.index=1 token.type=string token.value=ident
//
//	logger.Error("emplace", "err", err)
//	// err.code=construction_failed err.msg="..." err.index=1 err.cause=...
package xgxvariant

import (
	"fmt"
	"log/slog"
	"reflect"
)

// value returns the active value itself.
func (b *base) value() any {
	return reflect.ValueOf(b.obj()).Elem().Interface()
}

func (b *base) String() string { return fmt.Sprint(b.value()) }

// Format renders the active value. %+v adds index and type:
//
//	%v    hello
//	%+v   1:string(hello)
//
// Other verbs apply to the value.
func (b *base) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		_, _ = fmt.Fprintf(s, "%d:%s(%+v)", b.index(), b.alts().At(b.index()).name, b.value())
	default:
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), b.value())
	}
}

func (b *base) LogValue() slog.Value {
	i := b.index()
	return slog.GroupValue(
		slog.Int(KeyIndex, i),
		slog.String(KeyType, b.alts().At(i).name),
		slog.Any("value", b.value()),
	)
}

func logAttrs(code Code, msg string, ctx fields, cause error) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(ctx)+3)
	if code != "" {
		attrs = append(attrs, slog.String("code", string(code)))
	}
	attrs = append(attrs, slog.String("msg", msg))
	for _, f := range ctx {
		if f.Key != "" {
			attrs = append(attrs, slog.Any(f.Key, f.Val))
		}
	}
	if cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}
	return attrs
}

func (e *failureErr) LogValue() slog.Value {
	return slog.GroupValue(logAttrs(e.code, e.msg, e.ctx, e.cause)...)
}

func (e *defectErr) LogValue() slog.Value {
	attrs := logAttrs(CodeDefect, e.plainMsgOrCause(), e.ctx, nil)
	if len(e.stk) > 0 {
		top := e.stk[0]
		attrs = append(attrs, slog.String("at", fmt.Sprintf("%s:%d", top.File, top.Line)))
	}
	return slog.GroupValue(attrs...)
}

func (ec ErrorCode) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("category", ec.CategoryName()),
		slog.Int("value", ec.Value),
		slog.String("msg", ec.Message()),
	)
}

var (
	_ slog.LogValuer = (*failureErr)(nil)
	_ slog.LogValuer = (*defectErr)(nil)
	_ slog.LogValuer = ErrorCode{}
	_ slog.LogValuer = (*Union)(nil)
)
