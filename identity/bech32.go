package identity

import (
	"strings"

	"github.com/btcsuite/btcutil/bech32"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/errors"
)

// Bech32 validates bech32 encoded addresses that use the configured human
// readable part.
type Bech32 struct {
	Prefix string
}

var _ adminlist.AddressValidator = Bech32{}

// ValidateAddress accepts only the lowercase form, with a 20 or 32 byte
// payload.
func (b Bech32) ValidateAddress(raw string) (adminlist.Address, error) {
	if strings.ToLower(raw) != raw {
		return "", errors.Wrapf(errors.ErrInput, "address not normalized: %q", raw)
	}
	hrp, payload, err := Decode(raw)
	if err != nil {
		return "", err
	}
	if hrp != b.Prefix {
		return "", errors.Wrapf(errors.ErrInput, "address prefix %q, want %q", hrp, b.Prefix)
	}
	if n := len(payload); n != 20 && n != 32 {
		return "", errors.Wrapf(errors.ErrInput, "address payload of %d bytes", n)
	}
	return adminlist.Address(raw), nil
}

// Decode converts given bech32 encoded representation into raw payload and a
// human readable part.
func Decode(raw string) (string, []byte, error) {
	hrp, payload, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "bech32 decode: %s", err)
	}
	payload, err = bech32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	return hrp, payload, nil
}

// Encode converts given bytes into bech32 encoded representation.
func Encode(hrp string, payload []byte) (string, error) {
	payload, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	raw, err := bech32.Encode(hrp, payload)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32 encode: %s", err)
	}
	return raw, nil
}
