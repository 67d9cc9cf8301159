package chain

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/maxential-thinking/internal/domain"
	"github.com/bnema/maxential-thinking/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

var _ ports.ThoughtSink = (*ThoughtBoxes)(nil)

// ThoughtBoxes draws every recorded thought as a bordered box. It is meant for
// stderr; stdout carries the MCP stream.
type ThoughtBoxes struct {
	mu     sync.Mutex
	out    io.Writer
	styles boxStyles
}

type boxStyles struct {
	box      lipgloss.Style
	revision lipgloss.Style
	branch   lipgloss.Style
	thought  lipgloss.Style
	divider  lipgloss.Style
}

func NewThoughtBoxes(out io.Writer) *ThoughtBoxes {
	renderer := lipgloss.NewRenderer(out)
	return &ThoughtBoxes{
		out: out,
		styles: boxStyles{
			box:      renderer.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
			revision: renderer.NewStyle().Foreground(lipgloss.Color("11")),
			branch:   renderer.NewStyle().Foreground(lipgloss.Color("10")),
			thought:  renderer.NewStyle().Foreground(lipgloss.Color("12")),
			divider:  renderer.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}

func (t *ThoughtBoxes) ThoughtRecorded(thought domain.Thought, totalThoughts int) {
	rendered := t.render(thought, totalThoughts)

	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(t.out, rendered)
}

func (t *ThoughtBoxes) render(thought domain.Thought, totalThoughts int) string {
	var prefix, context string
	switch {
	case thought.IsRevision:
		prefix = t.styles.revision.Render("🔄 Revision")
		context = fmt.Sprintf(" (revising thought %d)", thought.RevisesThought)
	case thought.Kind == domain.KindBranchStart:
		prefix = t.styles.branch.Render("🌿 Branch")
		context = fmt.Sprintf(" (from thought %d, ID: %s)", thought.BranchFromThought, thought.BranchID)
	default:
		prefix = t.styles.thought.Render("💭 Thought")
	}

	header := fmt.Sprintf("%s %d/%d%s", prefix, thought.Number, totalThoughts, context)
	width := lipgloss.Width(header)
	for _, line := range strings.Split(thought.Text, "\n") {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		t.styles.divider.Render(strings.Repeat("─", width)),
		thought.Text,
	)
	return t.styles.box.Render(body)
}
