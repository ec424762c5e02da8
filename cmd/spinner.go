package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type apiCallDoneMsg struct {
	err error
}

type apiCallSpinnerModel struct {
	spinner spinner.Model
	label   string
	call    tea.Cmd
	err     error
	done    bool
}

func newAPICallSpinnerModel(label string, call tea.Cmd) apiCallSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return apiCallSpinnerModel{
		spinner: s,
		label:   label,
		call:    call,
	}
}

func (m apiCallSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m apiCallSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case apiCallDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m apiCallSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runAPICallSpinner shows a spinner on output while call talks to the Bot API.
func runAPICallSpinner(ctx context.Context, output io.Writer, label string, call func(context.Context) error) error {
	callCmd := func() tea.Msg {
		return apiCallDoneMsg{err: call(ctx)}
	}

	p := tea.NewProgram(
		newAPICallSpinnerModel(label, callCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(apiCallSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
