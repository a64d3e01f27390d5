package adminlist

// Address is an opaque, already validated textual account identity.
//
// Two addresses are the same when their text is byte-for-byte equal. Use an
// AddressValidator to turn untrusted input into an Address.
type Address string

// Equals returns true if both addresses are identical.
func (a Address) Equals(b Address) bool {
	return a == b
}

// String returns the textual form of the address.
func (a Address) String() string {
	return string(a)
}

// AddressValidator checks that a raw string is a well formed address for the
// environment the contract is executed in and returns its canonical form.
type AddressValidator interface {
	ValidateAddress(raw string) (Address, error)
}

// AddressValidatorFunc allows to use a function as an AddressValidator.
type AddressValidatorFunc func(raw string) (Address, error)

// ValidateAddress calls the wrapped function.
func (fn AddressValidatorFunc) ValidateAddress(raw string) (Address, error) {
	return fn(raw)
}
