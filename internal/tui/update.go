package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case CalculationCompleteMsg:
		m.clearResults()
		m.calculation = &msg
		return m, nil

	case SolveCompleteMsg:
		m.clearResults()
		m.solution = msg.Result
		return m, nil

	case ComparisonCompleteMsg:
		m.clearResults()
		m.comparison = msg.Set
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m *Model) clearResults() {
	m.err = nil
	m.calculation = nil
	m.solution = nil
	m.comparison = nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab":
		m.setMode(modes[(int(m.mode)+1)%len(modes)])
		return m, nil

	case "shift+tab":
		m.setMode(modes[(int(m.mode)+len(modes)-1)%len(modes)])
		return m, nil

	case "down", "up":
		fields := m.visibleFields()
		pos := 0
		for i, f := range fields {
			if f == m.focused {
				pos = i
			}
		}
		if msg.String() == "down" {
			pos = (pos + 1) % len(fields)
		} else {
			pos = (pos + len(fields) - 1) % len(fields)
		}
		cmd := m.focus(fields[pos])
		return m, cmd

	case "enter":
		m.err = nil
		return m, m.runCmd()
	}

	return m.updateInputs(msg)
}

// setMode switches modes and drops results that belong to the old one
func (m *Model) setMode(mode Mode) {
	m.mode = mode
	m.clearResults()
	if m.focused == fieldCompareWith && mode != ModeCompare {
		m.focus(fieldAmount)
	}
}

func (m *Model) focus(field int) tea.Cmd {
	m.focused = field
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == field {
			cmds[i] = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

// updateInputs forwards the message to the focused text input
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}
