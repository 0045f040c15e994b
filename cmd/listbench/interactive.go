package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/runtime-kit/bench"
	"github.com/wippyai/runtime-kit/buffer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectScenario modelState = iota
	stateEditParams
	stateShowResult
)

type interactiveModel struct {
	err       error
	runner    *bench.Runner
	scenarios []bench.Scenario
	result    string
	inputs    []textinput.Model
	selected  int
	focusIdx  int
	state     modelState
}

func newInteractiveModel(scenarios []bench.Scenario) *interactiveModel {
	return &interactiveModel{
		runner:    bench.NewRunner(nil),
		scenarios: scenarios,
		state:     stateSelectScenario,
	}
}

type runDoneMsg struct {
	err  error
	text string
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectScenario && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectScenario && m.selected < len(m.scenarios)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectScenario:
				m.prepareInputs()
				m.state = stateEditParams

			case stateEditParams:
				return m, m.runSelected

			case stateShowResult:
				m.state = stateSelectScenario
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateEditParams && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateEditParams:
				m.state = stateSelectScenario
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectScenario
				m.result = ""
				m.err = nil
			}
		}

	case runDoneMsg:
		m.result = msg.text
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateEditParams {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	s := m.scenarios[m.selected]
	fields := []struct {
		prompt string
		value  string
	}{
		{"ops: ", strconv.FormatInt(s.Ops, 10)},
		{"seed: ", strconv.FormatUint(s.Seed, 10)},
		{"budget: ", strconv.FormatInt(s.Budget, 10)},
	}
	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = f.prompt
		ti.SetValue(f.value)
		ti.Width = 20
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) runSelected() tea.Msg {
	s := m.scenarios[m.selected]
	if v, err := strconv.ParseInt(m.inputs[0].Value(), 10, 64); err == nil {
		s.Ops = v
	}
	if v, err := strconv.ParseUint(m.inputs[1].Value(), 10, 64); err == nil {
		s.Seed = v
	}
	if v, err := strconv.ParseInt(m.inputs[2].Value(), 10, 64); err == nil {
		s.Budget = v
	}

	res, err := m.runner.Run(s)
	if err != nil {
		return runDoneMsg{err: err}
	}

	out := buffer.New(nil)
	defer out.Free()
	if err := res.AppendTo(out); err != nil {
		return runDoneMsg{err: err}
	}
	return runDoneMsg{text: out.String()}
}

func (m *interactiveModel) View() string {
	if len(m.scenarios) == 0 {
		return errorStyle.Render("No scenarios to run.\n\nPress q to quit.")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("List Bench"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectScenario:
		b.WriteString("Select a scenario to run:\n\n")
		for i, s := range m.scenarios {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatScenario(s)))
			} else {
				b.WriteString(cursor + m.formatScenario(s))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter configure • q quit"))

	case stateEditParams:
		s := m.scenarios[m.selected]
		b.WriteString(fmt.Sprintf("Configure %s\n\n", nameStyle.Render(s.Name)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		s := m.scenarios[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", nameStyle.Render(s.Name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatScenario(s bench.Scenario) string {
	detail := fmt.Sprintf("ops %d, seed %d", s.Ops, s.Seed)
	if s.Budget > 0 {
		detail += fmt.Sprintf(", budget %d B", s.Budget)
	}
	return nameStyle.Render(s.Name) + " (" + detailStyle.Render(detail) + ")"
}

func runInteractive(scenarios []bench.Scenario) error {
	p := tea.NewProgram(newInteractiveModel(scenarios), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
