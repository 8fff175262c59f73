package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chains() []PickerItem {
	return []PickerItem{
		{Label: "arbitrum-main", SubLabel: "job-arb", Value: "arbitrum-main"},
		{Label: "bsc-main", SubLabel: "job-bsc", Value: "bsc-main"},
		{Label: "ethereum-main", SubLabel: "job-eth", Value: "ethereum-main"},
	}
}

func send(m pickerModel, keys ...tea.KeyMsg) pickerModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(pickerModel)
	}
	return m
}

func TestPickerNavigateAndSelect(t *testing.T) {
	m := send(newPicker("Chain", chains()),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	require.NotNil(t, m.selected)
	assert.Equal(t, "bsc-main", m.selected.Value)
}

func TestPickerFilter(t *testing.T) {
	m := send(newPicker("Chain", chains()), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ETH")})
	require.Len(t, m.visible(), 1)
	assert.Contains(t, m.View(), "filter: eth")

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.selected)
	assert.Equal(t, "ethereum-main", m.selected.Value)
}

func TestPickerBackspaceWidens(t *testing.T) {
	m := send(newPicker("Chain", chains()),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zz")},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
	)
	assert.Len(t, m.visible(), 3)
}

func TestPickerNoMatchEnterIgnored(t *testing.T) {
	m := send(newPicker("Chain", chains()),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zz")},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.Nil(t, m.selected)
	assert.Contains(t, m.View(), "no match")
}

func TestPickerCancel(t *testing.T) {
	m := send(newPicker("Chain", chains()), tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestPickItemEmpty(t *testing.T) {
	_, err := PickItem("Chain", nil)
	assert.ErrorIs(t, err, ErrNothingToPick)
}
