package remote

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/VolumeFi/gpu-dao-cw/internal/address"
	"github.com/VolumeFi/gpu-dao-cw/internal/num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddr = "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"

func TestSelectorsMatchReceiver(t *testing.T) {
	want := map[string]string{
		"set_paloma":                   "0x23fde8e2",
		"update_compass":               "0x6974af69",
		"update_refund_wallet":         "0xc98856aa",
		"update_gas_fee":               "0x6e9bc3f6",
		"update_service_fee_collector": "0x30e59cbc",
		"update_service_fee":           "0xc4ec2ff1",
	}
	for name, sel := range want {
		t.Run(name, func(t *testing.T) {
			c, err := Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, sel, c.SelectorHex())

			// The keccak selector must agree with the ABI packer's method id.
			id := parsed.Methods[name].ID
			s := c.Selector()
			assert.Equal(t, id, s[:])
		})
	}
}

func TestSignatures(t *testing.T) {
	assert.Equal(t, "set_paloma()", SetPaloma.Signature())
	assert.Equal(t, "update_compass(address)", UpdateCompass.Signature())
	assert.Equal(t, "update_gas_fee(uint256)", UpdateGasFee.Signature())
}

func TestCommandsSorted(t *testing.T) {
	cmds := Commands()
	require.Len(t, cmds, 6)
	for i := 1; i < len(cmds); i++ {
		assert.Less(t, cmds[i-1].Name, cmds[i].Name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("drain")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestEncodeSetPaloma(t *testing.T) {
	data, err := SetPaloma.EncodeNone()
	require.NoError(t, err)
	assert.Equal(t, "23fde8e2", hex.EncodeToString(data))
}

func TestEncodeAddressLayout(t *testing.T) {
	data, err := UpdateRefundWallet.EncodeAddress(testAddr)
	require.NoError(t, err)
	require.Len(t, data, 36)

	assert.Equal(t, "c98856aa", hex.EncodeToString(data[:4]))
	// Address is left-padded to a 32-byte word.
	assert.Equal(t, make([]byte, 12), data[4:16])
	assert.Equal(t, strings.TrimPrefix(testAddr, "0x"), hex.EncodeToString(data[16:]))
}

func TestEncodeAddressIgnoresChecksumCase(t *testing.T) {
	lower, err := UpdateCompass.EncodeAddress(testAddr)
	require.NoError(t, err)
	mixed, err := UpdateCompass.EncodeAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	require.NoError(t, err)
	assert.Equal(t, lower, mixed)
}

func TestEncodeInvalidAddress(t *testing.T) {
	_, err := UpdateServiceFeeCollector.EncodeAddress("0x1234")
	assert.ErrorIs(t, err, address.ErrInvalid)
}

func TestEncodeGasFeeZero(t *testing.T) {
	data, err := UpdateGasFee.EncodeUint(num.NewUint256(0))
	require.NoError(t, err)
	require.Len(t, data, 36)
	assert.Equal(t, "6e9bc3f6", hex.EncodeToString(data[:4]))
	assert.Equal(t, make([]byte, 32), data[4:])
}

func TestEncodeGasFeeMax(t *testing.T) {
	data, err := UpdateGasFee.EncodeUint(num.MaxUint256())
	require.NoError(t, err)
	require.Len(t, data, 36)
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 32), data[4:])
}

func TestEncodeServiceFeeBigEndian(t *testing.T) {
	data, err := UpdateServiceFee.EncodeUint(num.NewUint256(1000))
	require.NoError(t, err)
	assert.Equal(t,
		"c4ec2ff1"+strings.Repeat("0", 61)+"3e8",
		hex.EncodeToString(data))
}

func TestEncodeDeterministic(t *testing.T) {
	fee, err := num.ParseUint256("123456789012345678901234567890")
	require.NoError(t, err)

	a, err := UpdateServiceFee.EncodeUint(fee)
	require.NoError(t, err)
	b, err := UpdateServiceFee.EncodeUint(fee)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := UpdateCompass.EncodeAddress(testAddr)
	require.NoError(t, err)
	d, err := UpdateCompass.EncodeAddress(testAddr)
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestSameTypeSameWords(t *testing.T) {
	// Commands sharing a parameter type differ only in the selector.
	gas, err := UpdateGasFee.EncodeUint(num.NewUint256(77))
	require.NoError(t, err)
	svc, err := UpdateServiceFee.EncodeUint(num.NewUint256(77))
	require.NoError(t, err)
	assert.Equal(t, gas[4:], svc[4:])
	assert.NotEqual(t, gas[:4], svc[:4])
}

func TestEncodeWrongKind(t *testing.T) {
	_, err := SetPaloma.EncodeAddress(testAddr)
	assert.ErrorIs(t, err, ErrArgKind)

	_, err = UpdateCompass.EncodeUint(num.NewUint256(1))
	assert.ErrorIs(t, err, ErrArgKind)

	_, err = UpdateGasFee.EncodeNone()
	assert.ErrorIs(t, err, ErrArgKind)

	_, err = SetPaloma.Encode("0x00")
	assert.ErrorIs(t, err, ErrArgKind)
}

func TestEncodeFromText(t *testing.T) {
	data, err := UpdateGasFee.Encode("1000")
	require.NoError(t, err)
	want, err := UpdateGasFee.EncodeUint(num.NewUint256(1000))
	require.NoError(t, err)
	assert.Equal(t, want, data)

	_, err = UpdateGasFee.Encode("-1")
	assert.ErrorIs(t, err, num.ErrInvalid)

	data, err = SetPaloma.Encode("")
	require.NoError(t, err)
	assert.Len(t, data, 4)
}

func TestMethodID(t *testing.T) {
	id, err := MethodID("update_gas_fee")
	require.NoError(t, err)
	assert.Equal(t, "6e9bc3f6", hex.EncodeToString(id))

	_, err = MethodID("transfer")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}
