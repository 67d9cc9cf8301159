package domain

import (
	"strings"
	"time"
)

type ThoughtKind string

const (
	KindThought     ThoughtKind = "thought"
	KindRevision    ThoughtKind = "revision"
	KindBranchStart ThoughtKind = "branch_start"
	KindConclusion  ThoughtKind = "conclusion"
	KindSummary     ThoughtKind = "summary"
	KindCheckpoint  ThoughtKind = "checkpoint"
)

const (
	ConclusionPrefix  = "CONCLUSION: "
	BranchStartPrefix = "BRANCH START: "
)

func (k ThoughtKind) Valid() bool {
	switch k {
	case KindThought, KindRevision, KindBranchStart, KindConclusion, KindSummary, KindCheckpoint:
		return true
	default:
		return false
	}
}

type Thought struct {
	Number            int
	Text              string
	Kind              ThoughtKind
	IsRevision        bool
	RevisesThought    int
	BranchID          BranchID
	BranchFromThought int
	Tags              []string
	CreatedAt         time.Time
}

func (t Thought) OnMainLine() bool {
	return t.BranchID == ""
}

func (t Thought) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

func (t Thought) IsConclusion() bool {
	return strings.HasPrefix(t.Text, ConclusionPrefix)
}

// ClassifyKind derives the structural kind of a thought from its markers.
func ClassifyKind(t Thought) ThoughtKind {
	switch {
	case t.IsRevision:
		return KindRevision
	case t.BranchFromThought > 0 || strings.HasPrefix(t.Text, strings.TrimSpace(BranchStartPrefix)):
		return KindBranchStart
	case strings.HasPrefix(t.Text, strings.TrimSpace(ConclusionPrefix)):
		return KindConclusion
	default:
		return KindThought
	}
}
