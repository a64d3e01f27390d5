package identity

import (
	"strings"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/errors"
)

const (
	// MinMockLength is the shortest accepted mock address.
	MinMockLength = 3
	// MaxMockLength is the longest accepted mock address.
	MaxMockLength = 64
)

// Mock validates human readable test addresses like "alice" or "admin1".
type Mock struct{}

var _ adminlist.AddressValidator = Mock{}

// ValidateAddress accepts lowercase strings of 3 to 64 characters made of
// letters, digits and ".", "_", "-", starting with a letter or a digit.
func (Mock) ValidateAddress(raw string) (adminlist.Address, error) {
	switch {
	case len(raw) < MinMockLength:
		return "", errors.Wrapf(errors.ErrInput, "address too short: %q", raw)
	case len(raw) > MaxMockLength:
		return "", errors.Wrapf(errors.ErrInput, "address too long: %q", raw)
	case strings.ToLower(raw) != raw:
		return "", errors.Wrapf(errors.ErrInput, "address not normalized: %q", raw)
	}
	for i, r := range raw {
		if isAlnum(r) {
			continue
		}
		if i > 0 && (r == '.' || r == '_' || r == '-') {
			continue
		}
		return "", errors.Wrapf(errors.ErrInput, "invalid character %q in address %q", r, raw)
	}
	return adminlist.Address(raw), nil
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
