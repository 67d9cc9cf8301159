package application

import (
	"time"

	"github.com/bnema/maxential-thinking/internal/domain"
)

type ThoughtResult struct {
	ThoughtNumber  int    `json:"thoughtNumber"`
	ActiveBranchID string `json:"activeBranchId,omitempty"`
	TotalThoughts  int    `json:"totalThoughts"`
	BranchCount    int    `json:"branchCount"`
	IsRevision     bool   `json:"isRevision,omitempty"`
	RevisesThought int    `json:"revisesThought,omitempty"`
	Thought        string `json:"thought,omitempty"`
}

type CompleteResult struct {
	ThoughtNumber int    `json:"thoughtNumber"`
	Conclusion    string `json:"conclusion"`
	TotalThoughts int    `json:"totalThoughts"`
	Status        string `json:"status"`
	SessionID     string `json:"sessionId,omitempty"`
}

type ResetResult struct {
	ClearedThoughts int    `json:"clearedThoughts"`
	ClearedBranches int    `json:"clearedBranches"`
	Status          string `json:"status"`
}

type BranchResult struct {
	BranchID      string `json:"branchId"`
	OriginThought int    `json:"originThought"`
	ThoughtNumber int    `json:"thoughtNumber"`
	Status        string `json:"status"`
	TotalThoughts int    `json:"totalThoughts"`
}

type SwitchBranchResult struct {
	ActiveBranchID   string `json:"activeBranchId,omitempty"`
	PreviousBranchID string `json:"previousBranchId,omitempty"`
	OnMainLine       bool   `json:"onMainLine"`
}

type BranchSummary struct {
	ID            string `json:"id"`
	OriginThought int    `json:"originThought"`
	ThoughtCount  int    `json:"thoughtCount"`
	Status        string `json:"status"`
	LastThought   int    `json:"lastThought"`
	LastUpdated   int64  `json:"lastUpdated"`
}

type ListBranchesResult struct {
	Branches       []BranchSummary `json:"branches"`
	TotalBranches  int             `json:"totalBranches"`
	ActiveBranchID string          `json:"activeBranchId,omitempty"`
}

type CloseBranchResult struct {
	BranchID   string `json:"branchId"`
	Status     string `json:"status"`
	ClosedAt   int64  `json:"closedAt"`
	Conclusion string `json:"conclusion,omitempty"`
}

// MergeThoughtNumber is the number the next thought would receive. Merging does not
// append a thought.
type MergeBranchResult struct {
	BranchID           string `json:"branchId"`
	Status             string `json:"status"`
	Strategy           string `json:"strategy"`
	MergedAt           int64  `json:"mergedAt"`
	MergeThoughtNumber int    `json:"mergeThoughtNumber"`
	MergeContent       string `json:"mergeContent"`
}

// HistoryEntry is the projected history view. Tags are left out on purpose.
type HistoryEntry struct {
	ThoughtNumber     int    `json:"thoughtNumber"`
	Thought           string `json:"thought"`
	IsRevision        bool   `json:"isRevision,omitempty"`
	RevisesThought    int    `json:"revisesThought,omitempty"`
	BranchID          string `json:"branchId,omitempty"`
	BranchFromThought int    `json:"branchFromThought,omitempty"`
}

type HistoryResult struct {
	Thoughts      []HistoryEntry `json:"thoughts"`
	Count         int            `json:"count"`
	TotalThoughts int            `json:"totalThoughts"`
	BranchID      string         `json:"branchId,omitempty"`
}

type TagResult struct {
	ThoughtNumber int      `json:"thoughtNumber"`
	Tags          []string `json:"tags"`
	Added         []string `json:"added"`
	Removed       []string `json:"removed"`
}

type SearchResult struct {
	Results []ThoughtView `json:"results"`
	Count   int           `json:"count"`
}

type SessionSaveResult struct {
	SessionID   string `json:"sessionId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

type SessionLoadResult struct {
	SessionID      string `json:"sessionId"`
	Name           string `json:"name"`
	ThoughtCount   int    `json:"thoughtCount"`
	BranchCount    int    `json:"branchCount"`
	ThoughtCounter int    `json:"thoughtCounter"`
	ActiveBranchID string `json:"activeBranchId,omitempty"`
	Complete       bool   `json:"complete"`
	Status         string `json:"status"`
}

type SessionListResult struct {
	Sessions         []SessionView `json:"sessions"`
	Total            int           `json:"total"`
	CurrentSessionID string        `json:"currentSessionId,omitempty"`
}

type SessionSummaryResult struct {
	SessionID string `json:"sessionId"`
	Name      string `json:"name"`
	Summary   string `json:"summary"`
	Length    int    `json:"length"`
	Truncated bool   `json:"truncated"`
}

// ChainView is a read-only copy of the engine state for export and visualization.
type ChainView struct {
	SessionID      domain.SessionID
	Thoughts       []domain.Thought
	Branches       []domain.Branch
	ActiveBranchID domain.BranchID
	Complete       bool
}

func (v ChainView) Branch(id domain.BranchID) (domain.Branch, bool) {
	for _, branch := range v.Branches {
		if branch.ID == id {
			return branch, true
		}
	}
	return domain.Branch{}, false
}

type ThoughtView struct {
	ThoughtNumber     int      `json:"thoughtNumber"`
	Thought           string   `json:"thought"`
	Type              string   `json:"type"`
	IsRevision        bool     `json:"isRevision,omitempty"`
	RevisesThought    int      `json:"revisesThought,omitempty"`
	BranchID          string   `json:"branchId,omitempty"`
	BranchFromThought int      `json:"branchFromThought,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	CreatedAt         int64    `json:"createdAt"`
}

type BranchView struct {
	BranchID      string        `json:"branchId"`
	OriginThought int           `json:"originThought"`
	Status        string        `json:"status"`
	Conclusion    string        `json:"conclusion,omitempty"`
	MergeStrategy string        `json:"mergeStrategy,omitempty"`
	CreatedAt     int64         `json:"createdAt"`
	ClosedAt      *int64        `json:"closedAt,omitempty"`
	MergedAt      *int64        `json:"mergedAt,omitempty"`
	Thoughts      []ThoughtView `json:"thoughts"`
}

type SessionView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
	ThoughtCount int    `json:"thoughtCount"`
	BranchCount  int    `json:"branchCount"`
}

func NewThoughtView(t domain.Thought) ThoughtView {
	kind := t.Kind
	if kind == "" {
		kind = domain.ClassifyKind(t)
	}

	return ThoughtView{
		ThoughtNumber:     t.Number,
		Thought:           t.Text,
		Type:              string(kind),
		IsRevision:        t.IsRevision,
		RevisesThought:    t.RevisesThought,
		BranchID:          string(t.BranchID),
		BranchFromThought: t.BranchFromThought,
		Tags:              t.Tags,
		CreatedAt:         t.CreatedAt.UnixMilli(),
	}
}

func NewThoughtViews(thoughts []domain.Thought) []ThoughtView {
	views := make([]ThoughtView, 0, len(thoughts))
	for _, t := range thoughts {
		views = append(views, NewThoughtView(t))
	}
	return views
}

func NewBranchView(b domain.Branch) BranchView {
	return BranchView{
		BranchID:      string(b.ID),
		OriginThought: b.OriginThought,
		Status:        string(b.Status),
		Conclusion:    b.Conclusion,
		MergeStrategy: string(b.MergeStrategy),
		CreatedAt:     b.CreatedAt.UnixMilli(),
		ClosedAt:      optionalMillis(b.ClosedAt),
		MergedAt:      optionalMillis(b.MergedAt),
		Thoughts:      NewThoughtViews(b.Thoughts),
	}
}

func NewSessionView(meta domain.SessionMetadata) SessionView {
	return SessionView{
		ID:           string(meta.ID),
		Name:         meta.Name,
		Description:  meta.Description,
		Status:       string(meta.Status),
		CreatedAt:    meta.CreatedAt.UnixMilli(),
		UpdatedAt:    meta.UpdatedAt.UnixMilli(),
		ThoughtCount: meta.ThoughtCount,
		BranchCount:  meta.BranchCount,
	}
}

func newBranchSummary(b domain.Branch) BranchSummary {
	return BranchSummary{
		ID:            string(b.ID),
		OriginThought: b.OriginThought,
		ThoughtCount:  len(b.Thoughts),
		Status:        string(b.Status),
		LastThought:   b.LastThought(),
		LastUpdated:   b.LastUpdated().UnixMilli(),
	}
}

func newHistoryEntry(t domain.Thought) HistoryEntry {
	return HistoryEntry{
		ThoughtNumber:     t.Number,
		Thought:           t.Text,
		IsRevision:        t.IsRevision,
		RevisesThought:    t.RevisesThought,
		BranchID:          string(t.BranchID),
		BranchFromThought: t.BranchFromThought,
	}
}

func optionalMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
