package domain

import (
	"fmt"
	"strings"
	"time"
)

type BranchID string

type BranchStatus string

type MergeStrategy string

const (
	BranchActive BranchStatus = "active"
	BranchClosed BranchStatus = "closed"
	BranchMerged BranchStatus = "merged"

	MergeConclusionOnly  MergeStrategy = "conclusion_only"
	MergeFullIntegration MergeStrategy = "full_integration"
	MergeSummary         MergeStrategy = "summary"
)

// MainLineAlias is accepted by switch_branch as "no active branch".
const MainLineAlias = "main"

const noConclusionFallbackF = "Branch %s merged without explicit conclusion"

func (s MergeStrategy) Valid() bool {
	switch s {
	case MergeConclusionOnly, MergeFullIntegration, MergeSummary:
		return true
	default:
		return false
	}
}

func (s BranchStatus) Valid() bool {
	switch s {
	case BranchActive, BranchClosed, BranchMerged:
		return true
	default:
		return false
	}
}

type Branch struct {
	ID            BranchID
	OriginThought int
	Status        BranchStatus
	Conclusion    string
	MergeStrategy MergeStrategy
	Thoughts      []Thought
	CreatedAt     time.Time
	ClosedAt      *time.Time
	MergedAt      *time.Time
}

func (b Branch) LastThought() int {
	if len(b.Thoughts) == 0 {
		return 0
	}
	return b.Thoughts[len(b.Thoughts)-1].Number
}

func (b Branch) LastUpdated() time.Time {
	switch {
	case b.MergedAt != nil:
		return *b.MergedAt
	case b.ClosedAt != nil:
		return *b.ClosedAt
	default:
		return b.CreatedAt
	}
}

// Close moves an active branch to closed. The conclusion is only recorded when non-blank.
func (b *Branch) Close(conclusion string, at time.Time) error {
	if b.Status != BranchActive {
		return Conflictf("branch %s is already %s", b.ID, b.Status)
	}

	b.Status = BranchClosed
	b.ClosedAt = &at
	if strings.TrimSpace(conclusion) != "" {
		b.Conclusion = conclusion
	}
	return nil
}

// Merge accepts active and closed branches; merged is terminal.
func (b *Branch) Merge(strategy MergeStrategy, at time.Time) error {
	if !strategy.Valid() {
		return Validationf("invalid strategy %q: must be conclusion_only, full_integration, or summary", strategy)
	}
	if b.Status == BranchMerged {
		return Conflictf("branch %s is already merged", b.ID)
	}

	b.Status = BranchMerged
	b.MergeStrategy = strategy
	b.MergedAt = &at
	return nil
}

// MergeContent renders the informational text a merge hands back to the caller.
func (b Branch) MergeContent(strategy MergeStrategy) string {
	switch strategy {
	case MergeConclusionOnly:
		if b.Conclusion != "" {
			return b.Conclusion
		}
		return fmt.Sprintf(noConclusionFallbackF, b.ID)
	case MergeFullIntegration:
		lines := make([]string, 0, len(b.Thoughts)+1)
		lines = append(lines, fmt.Sprintf("Branch %s integration:", b.ID))
		for _, t := range b.Thoughts {
			lines = append(lines, fmt.Sprintf("- Thought %d: %s", t.Number, t.Text))
		}
		return strings.Join(lines, "\n")
	case MergeSummary:
		content := fmt.Sprintf("Branch %s summary: %d thoughts explored from thought %d", b.ID, len(b.Thoughts), b.OriginThought)
		if b.Conclusion != "" {
			content += ". Conclusion: " + b.Conclusion
		}
		return content
	default:
		return ""
	}
}

func ValidateBranchID(id BranchID) error {
	trimmed := strings.TrimSpace(string(id))
	if trimmed == "" {
		return Validationf("invalid branchId: must be a non-empty string")
	}
	if trimmed == MainLineAlias {
		return Validationf("invalid branchId: %q is reserved for the main line", MainLineAlias)
	}
	return nil
}
