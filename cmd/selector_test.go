package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// normalizeSignature
// ---------------------------------------------------------------------------

func TestNormalizeSignature_AlreadyCanonical(t *testing.T) {
	assert.Equal(t, "update_gas_fee(uint256)", normalizeSignature("update_gas_fee(uint256)"))
}

func TestNormalizeSignature_WithNames(t *testing.T) {
	assert.Equal(t, "update_compass(address)", normalizeSignature("update_compass(address new_compass)"))
}

func TestNormalizeSignature_NoParams(t *testing.T) {
	assert.Equal(t, "set_paloma()", normalizeSignature("set_paloma()"))
}

func TestNormalizeSignature_ThreeParams(t *testing.T) {
	assert.Equal(t, "transferFrom(address,address,uint256)", normalizeSignature("transferFrom(address from, address to, uint256 amount)"))
}

func TestNormalizeSignature_NoParens(t *testing.T) {
	assert.Equal(t, "noop", normalizeSignature("noop"))
}

func TestNormalizeSignature_ExtraSpaces(t *testing.T) {
	assert.Equal(t, "update_service_fee(uint256)", normalizeSignature("update_service_fee(  uint256  fee  )"))
}

// ---------------------------------------------------------------------------
// lookupSelector
// ---------------------------------------------------------------------------

func TestLookupSelector(t *testing.T) {
	assert.Equal(t, "set_paloma", lookupSelector("0x23fde8e2"))
	assert.Equal(t, "update_service_fee", lookupSelector("0xC4EC2FF1"))
	assert.Equal(t, "unknown", lookupSelector("0xa9059cbb"))
}
