package chain

import (
	"fmt"
	"strings"

	"github.com/bnema/maxential-thinking/internal/application"
	"github.com/bnema/maxential-thinking/internal/domain"
)

type DiagramFormat string

const (
	FormatASCII   DiagramFormat = "ascii"
	FormatMermaid DiagramFormat = "mermaid"
)

const labelRunes = 40

func Visualize(view application.ChainView, format DiagramFormat, showContent bool) (string, error) {
	switch format {
	case "", FormatMermaid:
		return mermaid(view, showContent), nil
	case FormatASCII:
		return ascii(view, showContent), nil
	default:
		return "", domain.Validationf("invalid format: must be one of ascii, mermaid")
	}
}

func mermaid(view application.ChainView, showContent bool) string {
	var b strings.Builder
	b.WriteString("graph TD\n")
	if len(view.Thoughts) == 0 {
		b.WriteString("    empty[\"No thoughts yet\"]\n")
		return b.String()
	}

	for _, t := range view.Thoughts {
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", nodeID(t.Number), mermaidLabel(nodeLabel(t, showContent)))
	}

	previous := 0
	for _, t := range view.Thoughts {
		if !t.OnMainLine() {
			continue
		}
		if previous > 0 {
			fmt.Fprintf(&b, "    %s --> %s\n", nodeID(previous), nodeID(t.Number))
		}
		previous = t.Number
	}

	for _, branch := range view.Branches {
		previous = branch.OriginThought
		for _, t := range branch.Thoughts {
			if previous > 0 {
				fmt.Fprintf(&b, "    %s --> %s\n", nodeID(previous), nodeID(t.Number))
			}
			previous = t.Number
		}
	}

	for _, t := range view.Thoughts {
		if t.IsRevision && t.RevisesThought > 0 {
			fmt.Fprintf(&b, "    %s -.->|revises| %s\n", nodeID(t.Number), nodeID(t.RevisesThought))
		}
	}

	for _, branch := range view.Branches {
		if len(branch.Thoughts) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    subgraph %s [\"%s\"]\n", subgraphID(branch.ID), mermaidLabel(fmt.Sprintf("%s (%s)", branch.ID, branchStatus(branch))))
		for _, t := range branch.Thoughts {
			fmt.Fprintf(&b, "        %s\n", nodeID(t.Number))
		}
		b.WriteString("    end\n")
	}

	var conclusions []string
	for _, t := range view.Thoughts {
		if t.Kind == domain.KindConclusion {
			conclusions = append(conclusions, nodeID(t.Number))
		}
	}
	if len(conclusions) > 0 {
		b.WriteString("    classDef conclusion stroke-width:3px\n")
		fmt.Fprintf(&b, "    class %s conclusion\n", strings.Join(conclusions, ","))
	}

	return b.String()
}

func ascii(view application.ChainView, showContent bool) string {
	var b strings.Builder
	b.WriteString("Main line\n")

	var mainLine []domain.Thought
	for _, t := range view.Thoughts {
		if t.OnMainLine() {
			mainLine = append(mainLine, t)
		}
	}
	writeTree(&b, mainLine, showContent)

	for _, branch := range view.Branches {
		marker := ""
		if branch.ID == view.ActiveBranchID {
			marker = " *"
		}
		fmt.Fprintf(&b, "\nBranch %s (%s) from thought %d%s\n", branch.ID, branchStatus(branch), branch.OriginThought, marker)
		writeTree(&b, branch.Thoughts, showContent)
	}

	return b.String()
}

func writeTree(b *strings.Builder, thoughts []domain.Thought, showContent bool) {
	if len(thoughts) == 0 {
		b.WriteString("└── (no thoughts)\n")
		return
	}
	for i, t := range thoughts {
		connector := "├── "
		if i == len(thoughts)-1 {
			connector = "└── "
		}
		fmt.Fprintf(b, "%s%s\n", connector, nodeLabel(t, showContent))
	}
}

func nodeLabel(t domain.Thought, showContent bool) string {
	label := fmt.Sprintf("[%d] %s", t.Number, kindLabel(t))
	if showContent {
		label += ": " + shorten(t.Text, labelRunes)
	}
	return label
}

func kindLabel(t domain.Thought) string {
	kind := t.Kind
	if kind == "" {
		kind = domain.ClassifyKind(t)
	}
	if kind == domain.KindRevision {
		return fmt.Sprintf("revision of %d", t.RevisesThought)
	}
	return string(kind)
}

func nodeID(number int) string {
	return fmt.Sprintf("T%d", number)
}

// subgraphID keeps branch ids usable as mermaid identifiers.
func subgraphID(id domain.BranchID) string {
	var b strings.Builder
	b.WriteString("branch_")
	for _, r := range string(id) {
		if r == '_' || r == '-' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteRune('_')
	}
	return b.String()
}

func mermaidLabel(text string) string {
	return strings.ReplaceAll(text, "\"", "#quot;")
}

func shorten(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}
