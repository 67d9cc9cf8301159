package application

// Each verb gets its own command. Field names double as the JSON argument names so
// validation failures point at what the caller sent.

type ThinkCommand struct {
	Thought string `json:"thought" validate:"required"`
}

type ReviseCommand struct {
	Thought        string `json:"thought" validate:"required"`
	RevisesThought int    `json:"revisesThought" validate:"required,min=1"`
}

type CompleteCommand struct {
	Conclusion string `json:"conclusion" validate:"required"`
}

type ResetCommand struct {
	Confirm bool `json:"confirm" validate:"required"`
}

type BranchCommand struct {
	BranchID string `json:"branchId" validate:"required"`
	Reason   string `json:"reason" validate:"required"`
}

type SwitchBranchCommand struct {
	BranchID string `json:"branchId"`
}

type GetBranchCommand struct {
	BranchID string `json:"branchId" validate:"required"`
}

type CloseBranchCommand struct {
	BranchID   string `json:"branchId" validate:"required"`
	Conclusion string `json:"conclusion"`
}

type MergeBranchCommand struct {
	BranchID string `json:"branchId" validate:"required"`
	Strategy string `json:"strategy" validate:"required,oneof=conclusion_only full_integration summary"`
}

type GetThoughtCommand struct {
	ThoughtNumber int `json:"thoughtNumber" validate:"required,min=1"`
}

// GetHistoryCommand returns every entry when Limit is zero or negative.
type GetHistoryCommand struct {
	BranchID string `json:"branchId"`
	Limit    int    `json:"limit"`
}

type TagCommand struct {
	ThoughtNumber int      `json:"thoughtNumber" validate:"required,min=1"`
	Add           []string `json:"add"`
	Remove        []string `json:"remove"`
}

type SearchCommand struct {
	Query    string   `json:"query"`
	Tags     []string `json:"tags"`
	BranchID string   `json:"branchId"`
}

type SessionSaveCommand struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type SessionLoadCommand struct {
	ID string `json:"id" validate:"required"`
}

type SessionListCommand struct {
	Status string `json:"status" validate:"omitempty,oneof=active complete archived"`
	Limit  int    `json:"limit" validate:"min=0,max=100"`
	Offset int    `json:"offset" validate:"min=0"`
}

type SessionSummaryCommand struct {
	ID        string `json:"id" validate:"required"`
	MaxLength int    `json:"maxLength" validate:"omitempty,min=100"`
}
