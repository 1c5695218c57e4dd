// Package domain defines the wallet transaction summary model and its value objects.
package domain

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	base58 "github.com/bsv-blockchain/go-sdk/compat/base58"
	crypto "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"github.com/bsv-blockchain/go-sdk/script"
)

// ErrInvalidAddressFormat indicates that the provided string is not a valid base58check address.
var ErrInvalidAddressFormat = errors.New("invalid address format")

// AddressType is the output script kind an address pays to.
type AddressType uint8

// Supported address types.
const (
	AddressTypeP2PKH AddressType = iota + 1
	AddressTypeP2SH
)

// String returns the script kind name.
func (t AddressType) String() string {
	switch t {
	case AddressTypeP2PKH:
		return "p2pkh"
	case AddressTypeP2SH:
		return "p2sh"
	default:
		return "unknown"
	}
}

// base58check layout: version byte, 20-byte hash, 4-byte checksum.
const (
	addressPayloadLen  = 21
	addressChecksumLen = 4
	addressDecodedLen  = addressPayloadLen + addressChecksumLen
)

type addressVersion struct {
	addrType AddressType
	testnet  bool
}

var addressVersions = map[byte]addressVersion{
	0x00: {addrType: AddressTypeP2PKH},
	0x05: {addrType: AddressTypeP2SH},
	0x6f: {addrType: AddressTypeP2PKH, testnet: true},
	0xc4: {addrType: AddressTypeP2SH, testnet: true},
}

// Address is a resolved output address value object.
type Address struct {
	value   string
	version byte
	hash160 [20]byte
}

// NewAddress parses a base58check P2PKH or P2SH address string, mainnet or testnet.
// The checksum is verified and the address is kept as given.
func NewAddress(addr string) (Address, error) {
	cleanAddr := strings.TrimSpace(addr)
	if cleanAddr == "" {
		return Address{}, fmt.Errorf("%w: empty string", ErrInvalidAddressFormat)
	}

	decoded, err := base58.Decode(cleanAddr)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %s: %v", ErrInvalidAddressFormat, addr, err)
	}
	if len(decoded) != addressDecodedLen {
		return Address{}, fmt.Errorf("%w: %s: decoded length %d, want %d",
			ErrInvalidAddressFormat, addr, len(decoded), addressDecodedLen)
	}

	payload, sum := decoded[:addressPayloadLen], decoded[addressPayloadLen:]
	if !bytes.Equal(crypto.Sha256d(payload)[:addressChecksumLen], sum) {
		return Address{}, fmt.Errorf("%w: %s: checksum mismatch", ErrInvalidAddressFormat, addr)
	}
	if _, ok := addressVersions[payload[0]]; !ok {
		return Address{}, fmt.Errorf("%w: %s: unsupported version byte 0x%02x", ErrInvalidAddressFormat, addr, payload[0])
	}

	a := Address{value: cleanAddr, version: payload[0]}
	copy(a.hash160[:], payload[1:])
	return a, nil
}

// AddressFromScript wraps an address already decoded by the chain layer.
func AddressFromScript(a *script.Address) (Address, error) {
	if a == nil {
		return Address{}, fmt.Errorf("%w: nil script address", ErrInvalidAddressFormat)
	}
	return NewAddress(a.AddressString)
}

// String returns the base58check representation of the address.
func (a Address) String() string {
	return a.value
}

// Type returns the script kind the address pays to.
func (a Address) Type() AddressType {
	if a.IsZero() {
		return 0
	}
	return addressVersions[a.version].addrType
}

// IsTestnet reports whether the address carries a testnet version byte.
func (a Address) IsTestnet() bool {
	if a.IsZero() {
		return false
	}
	return addressVersions[a.version].testnet
}

// Hash160 returns a copy of the 20-byte public key or script hash.
func (a Address) Hash160() []byte {
	return bytes.Clone(a.hash160[:])
}

// IsZero checks if the Address is the zero value (empty).
func (a Address) IsZero() bool {
	return a.value == ""
}

// Equals checks if two Address objects render to the same address.
func (a Address) Equals(other Address) bool {
	return a.value == other.value
}
