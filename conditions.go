package spread

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/iov-one/spread/errors"
)

var (
	// AddressLength is the length of all addresses. You can modify it in
	// init() before any addresses are calculated, but it must not change
	// during the lifetime of the kvstore.
	AddressLength = 20

	// it must have (?s) flags, otherwise it errors when the last section
	// contains 0x20 (newline)
	perm = regexp.MustCompile(`(?s)^([a-zA-Z0-9_\-]{3,8})/([a-zA-Z0-9_\-]{3,8})/(.+)$`)
)

// Condition is a specially formatted array, containing
// information on who can authorize an action.
// It is of the format:
//
//   sprintf("%s/%s/%s", extension, type, data)
type Condition []byte

func NewCondition(ext, typ string, data []byte) Condition {
	pre := fmt.Sprintf("%s/%s/", ext, typ)
	return append([]byte(pre), data...)
}

// Parse will extract the sections from the Condition bytes
// and verify it is properly formatted.
func (c Condition) Parse() (string, string, []byte, error) {
	chunks := perm.FindSubmatch(c)
	if len(chunks) == 0 {
		return "", "", nil, errors.Wrapf(errors.ErrInput, "condition: %X", []byte(c))
	}
	// returns [all, match1, match2, match3]
	return string(chunks[1]), string(chunks[2]), chunks[3], nil
}

// Address will convert a Condition into an Address.
func (c Condition) Address() Address {
	return NewAddress(c)
}

// Equals checks if two conditions are the same.
func (a Condition) Equals(b Condition) bool {
	return bytes.Equal(a, b)
}

// String returns a human readable string. We keep the extension and type
// in ascii and hex-encode the binary data.
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("Invalid Condition: %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}

// Validate returns an error if the Condition is not the proper format.
func (c Condition) Validate() error {
	if !perm.Match(c) {
		return errors.Wrapf(errors.ErrInput, "condition: %X", []byte(c))
	}
	return nil
}

func (c Condition) MarshalJSON() ([]byte, error) {
	var serialized string
	if c != nil {
		serialized = c.String()
	}
	return json.Marshal(serialized)
}

func (c *Condition) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	// No value zeroes the condition.
	if len(enc) == 0 {
		*c = nil
		return nil
	}
	args := strings.Split(enc, "/")
	if len(args) != 3 {
		return errors.Wrap(errors.ErrInput, "invalid condition format")
	}
	data, err := hex.DecodeString(args[2])
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "malformed condition data: %s", err)
	}
	*c = NewCondition(args[0], args[1], data)
	return nil
}

// Address represents a collision-free, one-way digest of a Condition.
//
// It will be of size AddressLength.
type Address []byte

// NewAddress hashes and truncates into the proper size.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AddressLength]
}

// ParseAddress accepts an address in a hex encoded format and returns its
// binary representation.
func ParseAddress(enc string) (Address, error) {
	val, err := hex.DecodeString(enc)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "hex decode: %s", err)
	}
	addr := Address(val)
	return addr, addr.Validate()
}

// Clone provides an independent copy of an address.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	cpy := make(Address, len(a))
	copy(cpy, a)
	return cpy
}

// Equals checks if two addresses are the same.
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

func (a Address) MarshalJSON() ([]byte, error) {
	return marshalHex(a)
}

func (a *Address) UnmarshalJSON(src []byte) error {
	dst := (*[]byte)(a)
	return unmarshalHex(src, dst)
}

// String returns a human readable string.
// Currently hex, may move to bech32.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Validate returns an error if the address is not the valid size.
func (a Address) Validate() error {
	if len(a) == 0 {
		return errors.Wrap(errors.ErrEmpty, "address missing")
	}
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address: invalid length %d", len(a))
	}
	return nil
}

// marshalHex serializes bytes as a JSON string in hex format.
func marshalHex(bz []byte) ([]byte, error) {
	s := strings.ToUpper(hex.EncodeToString(bz))
	return json.Marshal(s)
}

// unmarshalHex parses a JSON string in hex format into raw bytes.
func unmarshalHex(src []byte, dst *[]byte) error {
	var s string
	if err := json.Unmarshal(src, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "parse string")
	}
	bz, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrap(errors.ErrInput, "parse hex")
	}
	*dst = bz
	return nil
}
