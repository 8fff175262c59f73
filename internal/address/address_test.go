package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicValidate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"paloma1owner", true},
		{"ownera", true},
		{"", false},
		{"owner a", false},
		{"OwnerA", false},
		{"owner\t", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Basic{}.Validate(tt.input)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.input, got)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestParseEVM(t *testing.T) {
	addr, err := ParseEVM("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	require.NoError(t, err)
	assert.Equal(t, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", addr.Hex())

	// Prefix is optional and case is ignored.
	addr2, err := ParseEVM("d8da6bf26964af9d7eed9e03e53415d37aa96045")
	require.NoError(t, err)
	assert.Equal(t, addr, addr2)
}

func TestParseEVMRejects(t *testing.T) {
	for _, s := range []string{
		"",
		"0x",
		"0x1234",
		"0xd8da6bf26964af9d7eed9e03e53415d37aa9604",   // 39 digits
		"0xd8da6bf26964af9d7eed9e03e53415d37aa960455", // 41 digits
		"0xzzda6bf26964af9d7eed9e03e53415d37aa96045",
		"paloma1owner",
	} {
		_, err := ParseEVM(s)
		assert.ErrorIs(t, err, ErrInvalid, s)
	}
}
