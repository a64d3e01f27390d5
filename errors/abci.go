package errors

import (
	"errors"
	"fmt"
)

const (
	// SuccessABCICode is returned for a nil error.
	SuccessABCICode = 0

	// Errors that do not carry a code are reported with the internal code
	// and a generic message.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

var errInternal = errors.New(internalABCILog)

// ABCIInfo returns the code and the log message a client receives for err.
//
// Errors without an ABCI code are internal and their message is replaced
// with a generic one, unless debug is set. In debug mode the log contains
// the full stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the outermost error in the chain that
// provides one.
func abciCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessABCICode
	}
	code := internalABCICode
	visit(err, func(e error) bool {
		c, ok := e.(coder)
		if ok {
			code = c.ABCICode()
		}
		return ok
	})
	return code
}

// Redact hides errors that may leak implementation details, panics and
// errors without an ABCI code, behind a generic internal error. It returns
// err unchanged in debug mode.
func Redact(err error, debug bool) error {
	if debug || isNilErr(err) {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errInternal
	}
	return err
}
