// stack.go — stack capture for defects.
//
// Defects are raised where a statically typed union would have failed to
// compile, so the interesting frame is the caller's misuse site. Capture uses
// runtime.Callers + runtime.CallersFrames so inlined frames resolve correctly.
package xgxvariant

import (
	"runtime"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const defaultMaxDepth = 64

// captureStackDefault captures a stack skipping 'skip' frames beyond the
// caller of captureStackDefault.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames.
//
// Skip accounting: +1 runtime.Callers, +1 captureStack, +1
// captureStackDefault, so skip==0 records the caller of
// captureStackDefault first.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// StackOf returns the stack recorded on err (defects always have one), or nil.
func StackOf(err error) Stack {
	switch e := err.(type) {
	case *defectErr:
		return e.stk
	case *failureErr:
		return e.stk
	}
	return nil
}
