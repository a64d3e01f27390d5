package errors

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the stack trace recorded by err or any error it wraps.
func stackTrace(err error) errors.StackTrace {
	var st errors.StackTrace
	visit(err, func(e error) bool {
		t, ok := e.(stackTracer)
		if ok {
			st = t.StackTrace()
		}
		return ok
	})
	return st
}

// Format implements fmt.Formatter.
//
//   %s  the message
//   %v  the message followed by the [file:line] of the innermost wrap
//   %+v the message followed by the full stack trace
func (e *wrappedError) Format(s fmt.State, verb rune) {
	io.WriteString(s, e.Error())
	if verb != 'v' {
		return
	}
	st := stackTrace(e)
	switch {
	case len(st) == 0:
	case s.Flag('+'):
		fmt.Fprintf(s, "%+v", st)
	default:
		fmt.Fprintf(s, " [%v]", st[0])
	}
}
