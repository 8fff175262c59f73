// Package remote encodes administrative commands for the remote sale
// contract. Payloads are Solidity call data: a 4-byte selector followed by
// 32-byte big-endian argument words.
package remote

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/VolumeFi/gpu-dao-cw/internal/address"
	"github.com/VolumeFi/gpu-dao-cw/internal/num"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"golang.org/x/crypto/sha3"
)

var (
	// ErrUnknownCommand is returned by Lookup for an unsupported name.
	ErrUnknownCommand = errors.New("unknown remote command")

	// ErrArgKind is returned when an encoder does not match the command's
	// parameter type.
	ErrArgKind = errors.New("argument type does not match command")
)

// Kind is the type of a command's single parameter.
type Kind int

const (
	KindNone Kind = iota
	KindAddress
	KindUint256
)

// String returns the Solidity type name.
func (k Kind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindUint256:
		return "uint256"
	default:
		return ""
	}
}

// Command is one remote function with a fixed parameter list.
type Command struct {
	Name string
	Arg  string // parameter name, empty for KindNone
	Kind Kind
}

var (
	SetPaloma                 = Command{Name: "set_paloma"}
	UpdateCompass             = Command{Name: "update_compass", Arg: "new_compass", Kind: KindAddress}
	UpdateRefundWallet        = Command{Name: "update_refund_wallet", Arg: "new_refund_wallet", Kind: KindAddress}
	UpdateGasFee              = Command{Name: "update_gas_fee", Arg: "new_gas_fee", Kind: KindUint256}
	UpdateServiceFeeCollector = Command{Name: "update_service_fee_collector", Arg: "new_service_fee_collector", Kind: KindAddress}
	UpdateServiceFee          = Command{Name: "update_service_fee", Arg: "new_service_fee", Kind: KindUint256}
)

var (
	commands = map[string]Command{}
	parsed   abi.ABI
)

func init() {
	var err error
	parsed, err = abi.JSON(strings.NewReader(receiverABI))
	if err != nil {
		panic(fmt.Sprintf("remote: parse receiver ABI: %v", err))
	}
	for _, c := range []Command{SetPaloma, UpdateCompass, UpdateRefundWallet, UpdateGasFee, UpdateServiceFeeCollector, UpdateServiceFee} {
		if _, ok := parsed.Methods[c.Name]; !ok {
			panic("remote: receiver ABI has no method " + c.Name)
		}
		commands[c.Name] = c
	}
}

// Lookup returns the command with the given name.
func Lookup(name string) (Command, error) {
	c, ok := commands[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return c, nil
}

// Commands returns every supported command sorted by name.
func Commands() []Command {
	out := make([]Command, 0, len(commands))
	for _, c := range commands {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// MethodID returns the selector go-ethereum derives for name from the
// receiver ABI.
func MethodID(name string) ([]byte, error) {
	m, ok := parsed.Methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return m.ID, nil
}

// Signature returns the canonical signature, e.g. "update_gas_fee(uint256)".
func (c Command) Signature() string {
	return c.Name + "(" + c.Kind.String() + ")"
}

// Selector returns the first four bytes of keccak256(Signature()).
func (c Command) Selector() [4]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(c.Signature()))
	var sel [4]byte
	copy(sel[:], h.Sum(nil)[:4])
	return sel
}

// SelectorHex returns the selector as 0x-prefixed hex.
func (c Command) SelectorHex() string {
	sel := c.Selector()
	return "0x" + hex.EncodeToString(sel[:])
}

// Encode parses a textual argument according to the command's kind and
// returns the payload. It backs the CLI; the contract uses the typed
// encoders directly.
func (c Command) Encode(arg string) ([]byte, error) {
	switch c.Kind {
	case KindNone:
		if arg != "" {
			return nil, fmt.Errorf("%w: %s takes no argument", ErrArgKind, c.Name)
		}
		return c.EncodeNone()
	case KindAddress:
		return c.EncodeAddress(arg)
	case KindUint256:
		v, err := num.ParseUint256(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Arg, err)
		}
		return c.EncodeUint(v)
	}
	return nil, fmt.Errorf("%w: %s", ErrArgKind, c.Name)
}

// EncodeNone encodes a command without parameters.
func (c Command) EncodeNone() ([]byte, error) {
	if c.Kind != KindNone {
		return nil, fmt.Errorf("%w: %s expects %s", ErrArgKind, c.Name, c.Kind)
	}
	return c.pack()
}

// EncodeAddress validates addr and encodes it as the single argument.
func (c Command) EncodeAddress(addr string) ([]byte, error) {
	if c.Kind != KindAddress {
		return nil, fmt.Errorf("%w: %s does not take an address", ErrArgKind, c.Name)
	}
	a, err := address.ParseEVM(addr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Arg, err)
	}
	return c.pack(a)
}

// EncodeUint encodes v as the single uint256 argument.
func (c Command) EncodeUint(v num.Uint256) ([]byte, error) {
	if c.Kind != KindUint256 {
		return nil, fmt.Errorf("%w: %s does not take a uint256", ErrArgKind, c.Name)
	}
	return c.pack(v.Big())
}

func (c Command) pack(args ...interface{}) ([]byte, error) {
	data, err := parsed.Pack(c.Name, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", c.Name, err)
	}
	return data, nil
}
