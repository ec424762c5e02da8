package reply

import (
	"errors"
	"io"

	"github.com/bnema/verbtrainer/internal/application"
	"github.com/bnema/verbtrainer/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	render func(styles) string
	styles styles
	output string
}

func newModel(render func(styles) string) model {
	return model{
		render: render,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.render(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out a reply for the terminal play loop.
func Render(r application.Reply) (string, error) {
	return run(func(s styles) string {
		return renderReply(r, s)
	})
}

// RenderVerb lays out the full conjugation table of one verb.
func RenderVerb(verb domain.Verb, catalog domain.Catalog) (string, error) {
	return run(func(s styles) string {
		return renderVerb(verb, catalog, s)
	})
}

// RenderStats lays out corpus counts per tense group.
func RenderStats(corpus *domain.Corpus) (string, error) {
	return run(func(s styles) string {
		return renderStats(corpus, s)
	})
}

func run(render func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(render),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
