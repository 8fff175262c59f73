// Package num holds the fixed-width unsigned integers used in contract
// messages and state. Both types encode to JSON as quoted decimal strings.
package num

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

var (
	// ErrOverflow is returned when a result does not fit the type.
	ErrOverflow = errors.New("num: overflow")

	// ErrInvalid is returned when a string is not an unsigned decimal.
	ErrInvalid = errors.New("num: invalid unsigned integer")
)

// max128 is 2^128 - 1.
var max128 = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))

// Uint128 is an unsigned 128-bit integer. The zero value is 0.
type Uint128 struct {
	v uint256.Int
}

// NewUint128 returns n as a Uint128.
func NewUint128(n uint64) Uint128 {
	var u Uint128
	u.v.SetUint64(n)
	return u
}

// ParseUint128 parses a decimal string.
func ParseUint128(s string) (Uint128, error) {
	v, err := parseDecimal(s)
	if err != nil {
		return Uint128{}, err
	}
	if v.Gt(max128) {
		return Uint128{}, fmt.Errorf("%w: %s exceeds 128 bits", ErrOverflow, s)
	}
	return Uint128{v: *v}, nil
}

// CheckedAdd returns u + x, or ErrOverflow.
func (u Uint128) CheckedAdd(x Uint128) (Uint128, error) {
	var out Uint128
	out.v.Add(&u.v, &x.v)
	if out.v.Gt(max128) {
		return Uint128{}, fmt.Errorf("%w: %s + %s", ErrOverflow, u, x)
	}
	return out, nil
}

// IsZero reports whether u is 0.
func (u Uint128) IsZero() bool { return u.v.IsZero() }

// Eq reports whether u == x.
func (u Uint128) Eq(x Uint128) bool { return u.v.Eq(&x.v) }

// String returns the decimal representation.
func (u Uint128) String() string { return u.v.Dec() }

// MarshalJSON encodes u as a quoted decimal.
func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON accepts a quoted decimal or a bare JSON number.
func (u *Uint128) UnmarshalJSON(data []byte) error {
	s, err := jsonDecimal(data)
	if err != nil {
		return err
	}
	v, err := ParseUint128(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Uint256 is an unsigned 256-bit integer. The zero value is 0.
type Uint256 struct {
	v uint256.Int
}

// NewUint256 returns n as a Uint256.
func NewUint256(n uint64) Uint256 {
	var u Uint256
	u.v.SetUint64(n)
	return u
}

// MaxUint256 returns 2^256 - 1.
func MaxUint256() Uint256 {
	var u Uint256
	u.v.SetAllOne()
	return u
}

// ParseUint256 parses a decimal string.
func ParseUint256(s string) (Uint256, error) {
	v, err := parseDecimal(s)
	if err != nil {
		return Uint256{}, err
	}
	return Uint256{v: *v}, nil
}

// Big returns u as a new big.Int.
func (u Uint256) Big() *big.Int { return u.v.ToBig() }

// Bytes32 returns the 32-byte big-endian encoding.
func (u Uint256) Bytes32() [32]byte { return u.v.Bytes32() }

// String returns the decimal representation.
func (u Uint256) String() string { return u.v.Dec() }

// MarshalJSON encodes u as a quoted decimal.
func (u Uint256) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON accepts a quoted decimal or a bare JSON number.
func (u *Uint256) UnmarshalJSON(data []byte) error {
	s, err := jsonDecimal(data)
	if err != nil {
		return err
	}
	v, err := ParseUint256(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func parseDecimal(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalid)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	v, overflow := uint256.FromBig(n)
	if overflow {
		return nil, fmt.Errorf("%w: %s exceeds 256 bits", ErrOverflow, s)
	}
	return v, nil
}

func jsonDecimal(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(data), nil
}
