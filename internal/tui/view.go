package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"gwc/internal/model"
	"gwc/internal/report"
)

const countWidth = 8

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tableBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	detailStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

const (
	nameWidth    = 32 // Input and Error columns before the window size is known
	minNameWidth = 16
	cellPadding  = 2 // table.DefaultStyles pads each cell by one on both sides
	boxBorder    = 2
)

// Columns lays out the status marker, the selected counts, the input name
// and the failure reason. The name and reason columns split whatever width
// is left; a width of zero means unknown.
func Columns(d report.Display, width int) []table.Column {
	cols := []table.Column{{Title: " ", Width: 1}}
	if d.Lines {
		cols = append(cols, table.Column{Title: "Lines", Width: countWidth})
	}
	if d.Words {
		cols = append(cols, table.Column{Title: "Words", Width: countWidth})
	}
	if d.Chars {
		cols = append(cols, table.Column{Title: "Chars", Width: countWidth})
	}

	flexible := nameWidth
	if width > 0 {
		used := boxBorder + (len(cols)+2)*cellPadding
		for _, c := range cols {
			used += c.Width
		}
		flexible = (width - used) / 2
		if flexible < minNameWidth {
			flexible = minNameWidth
		}
	}
	return append(cols,
		table.Column{Title: "Input", Width: flexible},
		table.Column{Title: "Error", Width: flexible},
	)
}

func countCells(c model.Counts, d report.Display, failed bool) []string {
	var cells []string
	for _, f := range []struct {
		show  bool
		value int
	}{
		{d.Lines, c.Lines},
		{d.Words, c.Words},
		{d.Chars, c.Chars},
	} {
		if !f.show {
			continue
		}
		if failed {
			cells = append(cells, fmt.Sprintf("%*s", countWidth, "-"))
		} else {
			cells = append(cells, fmt.Sprintf("%*d", countWidth, f.value))
		}
	}
	return cells
}

// Rows has one row per input in order, then the total row when more than
// one input was given.
func Rows(s model.Summary, d report.Display) []table.Row {
	rows := make([]table.Row, 0, len(s.Results)+1)
	for _, r := range s.Results {
		icon, reason := model.IconOK, ""
		if r.Failed() {
			icon, reason = model.IconFailed, r.Err.Error()
		}
		row := table.Row{icon}
		row = append(row, countCells(r.Counts, d, r.Failed())...)
		rows = append(rows, append(row, r.Name, reason))
	}
	if s.ShowTotal {
		row := table.Row{model.IconTotal}
		row = append(row, countCells(s.Total, d, false)...)
		rows = append(rows, append(row, report.TotalName, ""))
	}
	return rows
}

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Counting inputs... please wait.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("gwc"))
	b.WriteString("\n\n")
	b.WriteString(tableBoxStyle.Render(m.Table.View()))
	b.WriteString("\n")

	if m.ShowDetails {
		b.WriteString(m.renderDetails())
		b.WriteString("\n")
	}

	footer := "↑/↓ move • enter details • q quit"
	if m.Failures > 0 {
		footer = errorStyle.Render(strconv.Itoa(m.Failures)+" failed") + dimStyle.Render(" • "+footer)
	} else {
		footer = dimStyle.Render(footer)
	}
	b.WriteString(footer)
	return b.String()
}

func (m AppModel) renderDetails() string {
	r, ok := m.selectedResult()
	if !ok {
		return ""
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(r.Name))
	if r.Failed() {
		lines = append(lines, errorStyle.Render(report.Diagnostic(r.Name, r.Err)))
	} else {
		lines = append(lines,
			fmt.Sprintf("Lines: %d", r.Counts.Lines),
			fmt.Sprintf("Words: %d", r.Counts.Words),
			fmt.Sprintf("Chars: %d", r.Counts.Chars),
		)
	}
	return detailStyle.Render(strings.Join(lines, "\n"))
}
