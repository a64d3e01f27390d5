package admins

import (
	"github.com/iov-one/adminlist"
)

// IsAuthorized returns true if the caller is a member of the registry.
func IsAuthorized(registry *AdminList, caller adminlist.Address) bool {
	if registry == nil || caller == "" {
		return false
	}
	return registry.Contains(caller)
}
