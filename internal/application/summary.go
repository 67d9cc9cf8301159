package application

import (
	"fmt"
	"strings"

	"github.com/bnema/maxential-thinking/internal/domain"
)

const (
	summaryExcerptRunes = 160
	summaryLatestCount  = 3
	summaryTruncation   = "\n[...truncated]"
)

// BuildSummary renders a compact digest of a stored session: conclusions first, then
// branch outcomes, tagged thoughts and the latest thoughts. The result never exceeds
// maxLength runes; the bool reports whether it was cut.
func BuildSummary(snapshot domain.SessionSnapshot, maxLength int) (string, bool) {
	meta := snapshot.Metadata

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", meta.Name)
	fmt.Fprintf(&b, "Session %s | %s | %d thoughts | %d branches\n", meta.ID, meta.Status, len(snapshot.Thoughts), len(snapshot.Branches))
	if meta.Description != "" {
		fmt.Fprintf(&b, "%s\n", meta.Description)
	}

	listed := map[int]struct{}{}

	var conclusions []domain.Thought
	for _, t := range snapshot.Thoughts {
		if t.Kind == domain.KindConclusion || t.IsConclusion() {
			conclusions = append(conclusions, t)
		}
	}
	if len(conclusions) > 0 {
		b.WriteString("\n## Conclusions\n")
		for _, t := range conclusions {
			listed[t.Number] = struct{}{}
			fmt.Fprintf(&b, "- [#%d] %s\n", t.Number, excerpt(strings.TrimPrefix(t.Text, domain.ConclusionPrefix)))
		}
	}

	if len(snapshot.Branches) > 0 {
		b.WriteString("\n## Branches\n")
		for _, branch := range snapshot.Branches {
			outcome := "no conclusion"
			if branch.Conclusion != "" {
				outcome = excerpt(branch.Conclusion)
			}
			status := string(branch.Status)
			if branch.MergeStrategy != "" {
				status += ", " + string(branch.MergeStrategy)
			}
			fmt.Fprintf(&b, "- %s (%s) from #%d, %d thoughts: %s\n", branch.ID, status, branch.OriginThought, len(branch.Thoughts), outcome)
		}
	}

	var tagged []domain.Thought
	for _, t := range snapshot.Thoughts {
		if len(t.Tags) > 0 {
			tagged = append(tagged, t)
		}
	}
	if len(tagged) > 0 {
		b.WriteString("\n## Tagged thoughts\n")
		for _, t := range tagged {
			listed[t.Number] = struct{}{}
			fmt.Fprintf(&b, "- [#%d] (%s) %s\n", t.Number, strings.Join(t.Tags, ", "), excerpt(t.Text))
		}
	}

	var latest []domain.Thought
	for i := len(snapshot.Thoughts) - 1; i >= 0 && len(latest) < summaryLatestCount; i-- {
		if _, ok := listed[snapshot.Thoughts[i].Number]; ok {
			continue
		}
		latest = append([]domain.Thought{snapshot.Thoughts[i]}, latest...)
	}
	if len(latest) > 0 {
		b.WriteString("\n## Latest thoughts\n")
		for _, t := range latest {
			fmt.Fprintf(&b, "- [#%d] %s\n", t.Number, excerpt(t.Text))
		}
	}

	return truncateRunes(strings.TrimRight(b.String(), "\n"), maxLength)
}

func excerpt(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= summaryExcerptRunes {
		return text
	}
	return string(runes[:summaryExcerptRunes-3]) + "..."
}

func truncateRunes(text string, maxLength int) (string, bool) {
	runes := []rune(text)
	if maxLength <= 0 || len(runes) <= maxLength {
		return text, false
	}

	marker := []rune(summaryTruncation)
	keep := maxLength - len(marker)
	if keep < 0 {
		return string(runes[:maxLength]), true
	}
	return string(runes[:keep]) + summaryTruncation, true
}
