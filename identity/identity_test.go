package identity

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/contracttest/assert"
	"github.com/iov-one/adminlist/errors"
)

func TestMockValidateAddress(t *testing.T) {
	cases := map[string]struct {
		raw     string
		wantErr *errors.Error
	}{
		"simple name":          {raw: "alice"},
		"name with digits":     {raw: "admin1"},
		"name with separators": {raw: "a.b_c-d"},
		"shortest":             {raw: "abc"},
		"longest":              {raw: strings.Repeat("a", MaxMockLength)},
		"too short":            {raw: "ab", wantErr: errors.ErrInput},
		"empty":                {raw: "", wantErr: errors.ErrInput},
		"too long":             {raw: strings.Repeat("a", MaxMockLength+1), wantErr: errors.ErrInput},
		"upper case":           {raw: "Alice", wantErr: errors.ErrInput},
		"space":                {raw: "al ice", wantErr: errors.ErrInput},
		"leading separator":    {raw: "-alice", wantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			addr, err := Mock{}.ValidateAddress(tc.raw)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, adminlist.Address(tc.raw), addr)
			}
		})
	}
}

func TestBech32EncodeDecode(t *testing.T) {
	// bech32  -e -h tiov 746573742d7061796c6f6164
	const enc = `tiov1w3jhxapdwpshjmr0v9jqymqq4y`

	want, err := hex.DecodeString("746573742d7061796c6f6164")
	assert.Nil(t, err)

	hrp, payload, err := Decode(enc)
	assert.Nil(t, err)
	assert.Equal(t, "tiov", hrp)
	if !bytes.Equal(want, payload) {
		t.Fatalf("invalid decode: %x", payload)
	}

	raw, err := Encode(hrp, payload)
	assert.Nil(t, err)
	assert.Equal(t, enc, raw)
}

func TestBech32ValidateAddress(t *testing.T) {
	short, err := Encode("cosmos", bytes.Repeat([]byte{1}, 20))
	assert.Nil(t, err)
	long, err := Encode("cosmos", bytes.Repeat([]byte{2}, 32))
	assert.Nil(t, err)
	odd, err := Encode("cosmos", bytes.Repeat([]byte{3}, 12))
	assert.Nil(t, err)
	other, err := Encode("other", bytes.Repeat([]byte{1}, 20))
	assert.Nil(t, err)

	cases := map[string]struct {
		raw     string
		wantErr *errors.Error
	}{
		"20 byte payload":      {raw: short},
		"32 byte payload":      {raw: long},
		"wrong payload length": {raw: odd, wantErr: errors.ErrInput},
		"wrong prefix":         {raw: other, wantErr: errors.ErrInput},
		"upper case":           {raw: strings.ToUpper(short), wantErr: errors.ErrInput},
		"broken checksum":      {raw: breakChecksum(short), wantErr: errors.ErrInput},
		"not bech32 at all":    {raw: "alice", wantErr: errors.ErrInput},
	}

	v := Bech32{Prefix: "cosmos"}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			addr, err := v.ValidateAddress(tc.raw)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, adminlist.Address(tc.raw), addr)
			}
		})
	}
}

func TestContractAddress(t *testing.T) {
	a, err := ContractAddress("cosmos", "adminlist")
	assert.Nil(t, err)
	b, err := ContractAddress("cosmos", "adminlist")
	assert.Nil(t, err)
	c, err := ContractAddress("cosmos", "another")
	assert.Nil(t, err)

	assert.Equal(t, a, b)
	if a == c {
		t.Fatal("different labels must produce different addresses")
	}

	// a contract address is a valid account address
	_, err = Bech32{Prefix: "cosmos"}.ValidateAddress(string(a))
	assert.Nil(t, err)
	_, err = Mock{}.ValidateAddress(string(a))
	assert.Nil(t, err)
}

// breakChecksum replaces the last character with a different one from the
// bech32 charset.
func breakChecksum(s string) string {
	last := s[len(s)-1]
	if last == 'q' {
		return s[:len(s)-1] + "p"
	}
	return s[:len(s)-1] + "q"
}
