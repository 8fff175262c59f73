// Package address validates host identities and remote EVM addresses.
package address

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalid is returned for a malformed address.
var ErrInvalid = errors.New("invalid address")

// Validator checks host-chain identities such as owners and senders.
type Validator interface {
	Validate(addr string) (string, error)
}

// Basic accepts any non-empty, whitespace-free, lower-case identifier.
// Hosts that need checksum validation supply their own Validator.
type Basic struct{}

// Validate returns addr unchanged when it is acceptable.
func (Basic) Validate(addr string) (string, error) {
	if addr == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalid)
	}
	if strings.IndexFunc(addr, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("%w: %q contains whitespace", ErrInvalid, addr)
	}
	if strings.ToLower(addr) != addr {
		return "", fmt.Errorf("%w: %q is not normalized", ErrInvalid, addr)
	}
	return addr, nil
}

// ParseEVM parses a 20-byte hex address with or without the 0x prefix.
func ParseEVM(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q is not a 20-byte hex address", ErrInvalid, s)
	}
	return common.HexToAddress(s), nil
}
