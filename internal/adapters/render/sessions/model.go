package sessions

import (
	"errors"
	"io"

	"github.com/bnema/maxential-thinking/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	listing application.SessionListResult
	opts    RenderOptions
	styles  styles
	output  string
}

func newModel(listing application.SessionListResult, opts RenderOptions) model {
	return model{
		listing: listing,
		opts:    opts,
		styles:  newStyles(),
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
		m.output = renderView(m.listing, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render runs a one-shot program so the listing is laid out the same way an
// interactive view would be, then returns the final frame.
func Render(listing application.SessionListResult, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(listing, opts),
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
