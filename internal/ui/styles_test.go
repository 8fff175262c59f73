package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllFormattersContainMessage(t *testing.T) {
	formatters := map[string]func(string) string{
		"Success":   Success,
		"Warn":      Warn,
		"Err":       Err,
		"Info":      Info,
		"Hint":      Hint,
		"Addr":      Addr,
		"Val":       Val,
		"Meta":      Meta,
		"ChainName": ChainName,
	}
	for name, fn := range formatters {
		t.Run(name, func(t *testing.T) {
			result := fn("test")
			assert.Contains(t, result, "test", "%s should contain the input message", name)
		})
	}
}

func TestInfoDifferentFromHint(t *testing.T) {
	assert.NotEqual(t, Info("message"), Hint("message"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("", 6, 4))
	assert.Equal(t, "0x12345678", Truncate("0x12345678", 6, 4))
	assert.Equal(t, "0x1234…5678", Truncate("0x1234567890abcdef1234567890abcdef12345678", 6, 4))
}

func TestBannerContainsVersion(t *testing.T) {
	b := Banner("9.9.9")
	assert.Contains(t, b, "gpudao")
	assert.Contains(t, b, "9.9.9")
}
