package admins

import (
	"github.com/iov-one/adminlist/errors"
)

// Admin list contract reserves 300~309 error codes
var (
	// ErrAdminAlreadyExists is returned when an address to be added is
	// already an admin.
	ErrAdminAlreadyExists = errors.Register(300, "admin already exists")

	// ErrNoRecipients is returned when a donation is made while there is
	// nobody to distribute it to.
	ErrNoRecipients = errors.Register(301, "no recipients")
)
