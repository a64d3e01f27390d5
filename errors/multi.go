package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no non-nil error is given, nil is returned. If exactly one non-nil error
// is given, it is returned as it is. Otherwise a multi error is created that
// contains all non-nil errors. Nested multi errors are flattened.
func Append(errs ...error) error {
	var flat []error
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(*multiErr); ok {
			flat = append(flat, m.errs...)
		} else {
			flat = append(flat, e)
		}
	}

	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return &multiErr{errs: flat}
	}
}

type unpacker interface {
	Unpack() []error
}

// multiErr represents a group of errors. The first error is used as the
// cause, so that ABCI code and Is tests follow the fail-fast approach.
type multiErr struct {
	errs []error
}

var (
	_ unpacker = (*multiErr)(nil)
	_ causer   = (*multiErr)(nil)
)

func (e *multiErr) Error() string {
	if len(e.errs) == 1 {
		return e.errs[0].Error()
	}
	points := make([]string, len(e.errs))
	for i, err := range e.errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(e.errs), strings.Join(points, "\n\t"))
}

// Unpack returns all errors grouped by this instance.
func (e *multiErr) Unpack() []error {
	return e.errs
}

// Cause returns the first error.
func (e *multiErr) Cause() error {
	return e.errs[0]
}
