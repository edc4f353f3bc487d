package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gwc/internal/driver"
	"gwc/internal/model"
)

// MsgCountsReady indicates that every input has been counted.
type MsgCountsReady model.Summary

func (m AppModel) Init() tea.Cmd {
	return CountCmd(m)
}

// CountCmd counts the inputs in the background.
func CountCmd(m AppModel) tea.Cmd {
	return func() tea.Msg {
		// Failures are kept on each result and shown in the table.
		summary, _ := driver.Walk(m.Inputs, m.Env, nil)
		return MsgCountsReady(summary)
	}
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		height := msg.Height - 8 // title, borders, footer
		if height < 3 {
			height = 3
		}
		m.Table.SetHeight(height)
		m.Table.SetColumns(Columns(m.Display, m.WindowSize.Width))
		return m, nil

	case MsgCountsReady:
		m.Loading = false
		m.Summary = model.Summary(msg)
		m.Failures = 0
		for _, r := range m.Summary.Results {
			if r.Failed() {
				m.Failures++
			}
		}
		m.Table.SetRows(Rows(m.Summary, m.Display))
		m.Table.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.ShowDetails {
				m.ShowDetails = false
				return m, nil
			}
		case "enter", "d":
			if !m.Loading {
				m.ShowDetails = !m.ShowDetails
			}
			return m, nil
		}
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}
