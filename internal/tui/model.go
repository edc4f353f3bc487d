package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"gwc/internal/driver"
	"gwc/internal/logger"
	"gwc/internal/model"
	"gwc/internal/report"
	"gwc/internal/source"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Input
	Inputs  []source.Selector
	Display report.Display
	Env     driver.Env

	// Data
	Summary  model.Summary
	Loading  bool
	Failures int

	// UI State
	WindowSize  tea.WindowSizeMsg
	ShowDetails bool

	// Components
	Table table.Model
}

// InitialModel returns the state before any input has been counted.
func InitialModel(inputs []source.Selector, display report.Display, env driver.Env) AppModel {
	t := table.New(
		table.WithColumns(Columns(display, 0)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())

	// The alt screen owns the terminal; log lines on stderr would garble it.
	env.Log = logger.Nop()

	return AppModel{
		Inputs:  inputs,
		Display: display,
		Env:     env,
		Loading: true,
		Table:   t,
	}
}

// Run counts the inputs and lets the user browse the results until quit.
func Run(inputs []source.Selector, display report.Display, env driver.Env) error {
	m := InitialModel(inputs, display, env)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	for _, sel := range inputs {
		// Standard input is being counted; keys come from the terminal.
		if sel.IsStdin() {
			opts = append(opts, tea.WithInputTTY())
			break
		}
	}
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	return err
}

// selectedResult maps the table cursor back to a result. The total row, if
// shown, sits after the last input.
func (m AppModel) selectedResult() (model.Result, bool) {
	idx := m.Table.Cursor()
	if idx >= 0 && idx < len(m.Summary.Results) {
		return m.Summary.Results[idx], true
	}
	if m.Summary.ShowTotal && idx == len(m.Summary.Results) {
		return model.Result{Name: report.TotalName, Counts: m.Summary.Total}, true
	}
	return model.Result{}, false
}
