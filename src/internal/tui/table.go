package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table collects rows and renders them in a rounded border
type Table struct {
	title      string
	headers    []string
	rows       [][]string
	active     map[int]bool
	hideHeader bool
	minWidth   int
}

// NewTable creates a new table with the given headers
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		active:  make(map[int]bool),
	}
}

// SetTitle sets a title rendered centered above the table
func (t *Table) SetTitle(title string) {
	t.title = title
}

// HideHeader hides the column header row
func (t *Table) HideHeader() {
	t.hideHeader = true
}

// SetMinWidth sets a minimum width for the rendered table
func (t *Table) SetMinWidth(width int) {
	t.minWidth = width
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, t.normalize(cells))
}

// AddActiveRow adds a highlighted row to the table
func (t *Table) AddActiveRow(cells ...string) {
	t.active[len(t.rows)] = true
	t.AddRow(cells...)
}

// normalize pads or truncates cells to the header count
func (t *Table) normalize(cells []string) []string {
	row := make([]string, len(t.headers))
	copy(row, cells)
	return row
}

// Render returns the rendered table as a string
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	initStyles()

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleTableBorder).
		Rows(t.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return StyleTableHeader
			case t.active[row]:
				return StyleTableRowActive
			default:
				return StyleTableCell
			}
		})

	if !t.hideHeader {
		tbl = tbl.Headers(t.headers...)
	}
	if t.minWidth > 0 {
		tbl = tbl.Width(t.minWidth)
	}

	rendered := tbl.Render()
	if t.title == "" {
		return rendered
	}

	title := StyleTitle.
		Width(lipgloss.Width(rendered)).
		Align(lipgloss.Center).
		Render(t.title)
	return lipgloss.JoinVertical(lipgloss.Left, title, rendered)
}

// RowCount returns the number of data rows (excluding header)
func (t *Table) RowCount() int {
	return len(t.rows)
}
