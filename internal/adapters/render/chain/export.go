package chain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/maxential-thinking/internal/application"
	"github.com/bnema/maxential-thinking/internal/domain"
)

type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatJSON     ExportFormat = "json"
)

// Export renders the chain, or a single branch when branchID is set.
func Export(view application.ChainView, format ExportFormat, branchID domain.BranchID) (string, error) {
	if format == "" {
		format = FormatMarkdown
	}

	var branch *domain.Branch
	if id := domain.BranchID(strings.TrimSpace(string(branchID))); id != "" {
		found, ok := view.Branch(id)
		if !ok {
			return "", domain.NotFoundf("branch %s not found", id)
		}
		branch = &found
	}

	switch format {
	case FormatMarkdown:
		if branch != nil {
			return markdownBranchDocument(*branch), nil
		}
		return markdownChain(view), nil
	case FormatJSON:
		if branch != nil {
			return marshalIndent(struct {
				Branch application.BranchView `json:"branch"`
			}{Branch: application.NewBranchView(*branch)})
		}
		return marshalIndent(newChainDocument(view))
	default:
		return "", domain.Validationf("invalid format: must be one of markdown, json")
	}
}

type chainDocument struct {
	SessionID      string                    `json:"sessionId,omitempty"`
	Complete       bool                      `json:"complete"`
	ActiveBranchID string                    `json:"activeBranchId,omitempty"`
	TotalThoughts  int                       `json:"totalThoughts"`
	Thoughts       []application.ThoughtView `json:"thoughts"`
	Branches       []application.BranchView  `json:"branches"`
}

func newChainDocument(view application.ChainView) chainDocument {
	branches := make([]application.BranchView, 0, len(view.Branches))
	for _, b := range view.Branches {
		branches = append(branches, application.NewBranchView(b))
	}

	return chainDocument{
		SessionID:      string(view.SessionID),
		Complete:       view.Complete,
		ActiveBranchID: string(view.ActiveBranchID),
		TotalThoughts:  len(view.Thoughts),
		Thoughts:       application.NewThoughtViews(view.Thoughts),
		Branches:       branches,
	}
}

func marshalIndent(v any) (string, error) {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	return string(payload), nil
}

func markdownChain(view application.ChainView) string {
	var b strings.Builder
	b.WriteString("# Thinking Chain\n\n")
	if view.SessionID != "" {
		fmt.Fprintf(&b, "- Session: %s\n", view.SessionID)
	}
	fmt.Fprintf(&b, "- Thoughts: %d\n", len(view.Thoughts))
	fmt.Fprintf(&b, "- Branches: %d\n", len(view.Branches))
	fmt.Fprintf(&b, "- Status: %s\n", chainStatus(view.Complete))

	b.WriteString("\n## Main line\n")
	mainLine := 0
	for _, t := range view.Thoughts {
		if !t.OnMainLine() {
			continue
		}
		mainLine++
		writeMarkdownThought(&b, t)
	}
	if mainLine == 0 {
		b.WriteString("\n_No thoughts on the main line._\n")
	}

	for _, branch := range view.Branches {
		b.WriteString("\n")
		writeMarkdownBranch(&b, branch, "##")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func markdownBranchDocument(branch domain.Branch) string {
	var b strings.Builder
	writeMarkdownBranch(&b, branch, "#")
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeMarkdownBranch(b *strings.Builder, branch domain.Branch, heading string) {
	fmt.Fprintf(b, "%s Branch %s (%s)\n\n", heading, branch.ID, branchStatus(branch))
	fmt.Fprintf(b, "- Origin: thought %d\n", branch.OriginThought)
	fmt.Fprintf(b, "- Thoughts: %d\n", len(branch.Thoughts))
	if branch.Conclusion != "" {
		fmt.Fprintf(b, "- Conclusion: %s\n", branch.Conclusion)
	}
	for _, t := range branch.Thoughts {
		writeMarkdownThought(b, t)
	}
}

func writeMarkdownThought(b *strings.Builder, t domain.Thought) {
	fmt.Fprintf(b, "\n### Thought %d%s\n\n%s\n", t.Number, thoughtQualifier(t), t.Text)
	if len(t.Tags) > 0 {
		fmt.Fprintf(b, "\n_Tags: %s_\n", strings.Join(t.Tags, ", "))
	}
}

func thoughtQualifier(t domain.Thought) string {
	switch {
	case t.IsRevision:
		return fmt.Sprintf(" (revises %d)", t.RevisesThought)
	case t.Kind == domain.KindBranchStart:
		return fmt.Sprintf(" (branch start from %d)", t.BranchFromThought)
	case t.Kind == domain.KindConclusion:
		return " (conclusion)"
	default:
		return ""
	}
}

func branchStatus(branch domain.Branch) string {
	if branch.MergeStrategy != "" {
		return fmt.Sprintf("%s, %s", branch.Status, branch.MergeStrategy)
	}
	return string(branch.Status)
}

func chainStatus(complete bool) string {
	if complete {
		return "complete"
	}
	return "in progress"
}
