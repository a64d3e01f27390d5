package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field wraps err as a failure of the named field. It returns nil for a nil
// err.
//
// Name nested fields using dot notation and list elements by their index,
// for example Admins.0 or Config.DonationDenom.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{field: fieldName, desc: description, parent: err}
}

// AppendField appends err, as an error of the named field, to errs.
func AppendField(errs error, fieldName string, err error) error {
	return Append(errs, Field(fieldName, err, ""))
}

type fieldError struct {
	field  string
	desc   string
	parent error
}

func (e *fieldError) Error() string {
	msg := fmt.Sprintf("field %q: ", e.field)
	if e.desc != "" {
		msg += e.desc + ": "
	}
	return msg + e.parent.Error()
}

func (e *fieldError) Cause() error {
	return e.parent
}

func (e *fieldError) Field() string {
	return e.field
}

type fielder interface {
	Field() string
}

// FieldErrors returns all errors within err created for the named field.
func FieldErrors(err error, fieldName string) []error {
	var found []error
	collectField(err, fieldName, &found)
	return found
}

func collectField(err error, name string, found *[]error) {
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && f.Field() == name {
			*found = append(*found, err)
			return
		}
		// A multi error causes its first error only, so all of its
		// members are searched here.
		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				collectField(e, name, found)
			}
			return
		}
		c, ok := err.(causer)
		if !ok {
			return
		}
		err = c.Cause()
	}
}
