package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align is the horizontal alignment of a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column defines a table column. A zero Width sizes the column to its
// widest cell.
type Column struct {
	Title string
	Width int
	Align Align
}

// Row is a slice of cell values.
type Row []string

// Table renders a lipgloss-styled table.
type Table struct {
	Columns []Column
	Rows    []Row
	SelIdx  int // selected row index (-1 = none)
}

// NewTable creates a new table.
func NewTable(cols ...Column) *Table {
	return &Table{Columns: cols, SelIdx: -1}
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, Row(cells))
}

func (t *Table) widths() []int {
	w := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		if col.Width > 0 {
			w[i] = col.Width
			continue
		}
		w[i] = len([]rune(col.Title))
		for _, r := range t.Rows {
			if i < len(r) && len([]rune(r[i])) > w[i] {
				w[i] = len([]rune(r[i]))
			}
		}
	}
	return w
}

// fit pads or truncates s to exactly width runes. Padding is done here
// rather than with lipgloss Width so styled cells never wrap.
func fit(s string, width int, a Align) string {
	r := []rune(s)
	if len(r) > width {
		if width <= 1 {
			return string(r[:width])
		}
		return string(r[:width-1]) + "…"
	}
	gap := strings.Repeat(" ", width-len(r))
	if a == AlignRight {
		return gap + s
	}
	return s + gap
}

// Render returns the full table as a string.
func (t *Table) Render() string {
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(ColorValue)
	widths := t.widths()

	cells := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		cells[i] = headerStyle.Render(fit(col.Title, widths[i], col.Align))
	}
	sb.WriteString(strings.Join(cells, "  ") + "\n")

	for i := range t.Columns {
		cells[i] = StyleMeta.Render(strings.Repeat("─", widths[i]))
	}
	sb.WriteString(strings.Join(cells, "  ") + "\n")

	for ri, row := range t.Rows {
		style := cellStyle
		if ri == t.SelIdx {
			style = StyleSelected
		}
		for i, col := range t.Columns {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			cells[i] = style.Render(fit(v, widths[i], col.Align))
		}
		sb.WriteString(strings.Join(cells, "  ") + "\n")
	}

	return sb.String()
}

// KeyValueBlock renders key-value pairs in a bordered box.
func KeyValueBlock(title string, pairs [][2]string) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(StyleTitle.Render(title))
		sb.WriteString("\n")
	}
	for _, p := range pairs {
		key := StyleMeta.Render(fmt.Sprintf("%-20s", p[0]+":"))
		sb.WriteString("  " + key + " " + StyleValue.Render(p[1]) + "\n")
	}
	return StyleBorder.Render(sb.String())
}
