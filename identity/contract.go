package identity

import (
	"golang.org/x/crypto/blake2b"

	"github.com/iov-one/adminlist"
)

// ContractAddress derives the address of the account owned by a contract
// instance from its label. The same label always yields the same address.
func ContractAddress(prefix, label string) (adminlist.Address, error) {
	hash := blake2b.Sum256([]byte("contract/" + label))
	raw, err := Encode(prefix, hash[:20])
	if err != nil {
		return "", err
	}
	return adminlist.Address(raw), nil
}
