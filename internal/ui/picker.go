package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNothingToPick is returned when the picker has no items.
var ErrNothingToPick = errors.New("no items to pick from")

// PickerItem is one entry shown in the interactive picker.
type PickerItem struct {
	Label    string // chain id
	SubLabel string // shown dimmed, e.g. the job id
	Value    string // returned on selection
}

// pickerModel is the Bubble Tea model for the chain picker. Typed
// characters narrow the list; backspace widens it again.
type pickerModel struct {
	title    string
	items    []PickerItem
	filter   string
	cursor   int
	selected *PickerItem
	quitting bool
}

func newPicker(title string, items []PickerItem) pickerModel {
	return pickerModel{title: title, items: items}
}

// visible returns the items matching the current filter.
func (m pickerModel) visible() []PickerItem {
	if m.filter == "" {
		return m.items
	}
	var out []PickerItem
	for _, it := range m.items {
		if strings.Contains(strings.ToLower(it.Label), m.filter) {
			out = append(out, it)
		}
	}
	return out
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	items := m.visible()
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		if len(items) > 0 {
			item := items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	case tea.KeyBackspace:
		if m.filter != "" {
			r := []rune(m.filter)
			m.filter = string(r[:len(r)-1])
			m.cursor = 0
		}
	case tea.KeyRunes:
		m.filter += strings.ToLower(string(key.Runes))
		m.cursor = 0
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(StyleTitle.Render("  "+m.title) + "\n")
	if m.filter != "" {
		sb.WriteString(StyleMeta.Render("  filter: "+m.filter) + "\n")
	}
	sb.WriteString("\n")

	items := m.visible()
	if len(items) == 0 {
		sb.WriteString(StyleMeta.Render("    no match") + "\n")
	}
	for i, item := range items {
		prefix := "    "
		if i == m.cursor {
			prefix = "  ▸ "
		}
		line := prefix + StyleValue.Render(item.Label)
		if item.SubLabel != "" {
			line += "  " + StyleMeta.Render(item.SubLabel)
		}
		if i == m.cursor {
			line = StyleSelected.Render(line)
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(StyleMeta.Render("  [ ↑↓ ] navigate   [ type ] filter   [ Enter ] select   [ Esc ] cancel") + "\n")
	return sb.String()
}

// PickItem runs the interactive picker and returns the selected item's
// Value. It returns ("", nil) if the user cancels and an error only on TUI
// failure.
func PickItem(title string, items []PickerItem) (string, error) {
	if len(items) == 0 {
		return "", ErrNothingToPick
	}

	p := tea.NewProgram(newPicker(title, items))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("picker: %w", err)
	}

	fm := final.(pickerModel)
	if fm.quitting || fm.selected == nil {
		return "", nil
	}
	return fm.selected.Value, nil
}
