package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported sessions schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func (s *fileSchema) find(id string) *sessionSchema {
	for i := range s.Sessions {
		if s.Sessions[i].ID == id {
			return &s.Sessions[i]
		}
	}
	return nil
}

// Timestamps are Unix milliseconds, matching the SQLite backend.
type sessionSchema struct {
	ID          string          `toml:"id"`
	Name        string          `toml:"name"`
	Description string          `toml:"description,omitempty"`
	Status      string          `toml:"status"`
	CreatedAt   int64           `toml:"created_at"`
	UpdatedAt   int64           `toml:"updated_at"`
	Thoughts    []thoughtSchema `toml:"thoughts,omitempty"`
	Branches    []branchSchema  `toml:"branches,omitempty"`
}

func (s *sessionSchema) findBranch(id string) *branchSchema {
	for i := range s.Branches {
		if s.Branches[i].ID == id {
			return &s.Branches[i]
		}
	}
	return nil
}

func (s *sessionSchema) findThought(number int) *thoughtSchema {
	for i := range s.Thoughts {
		if s.Thoughts[i].Number == number {
			return &s.Thoughts[i]
		}
	}
	return nil
}

type thoughtSchema struct {
	Number            int      `toml:"number"`
	Text              string   `toml:"text"`
	Type              string   `toml:"type"`
	BranchID          string   `toml:"branch_id,omitempty"`
	IsRevision        bool     `toml:"is_revision,omitempty"`
	RevisesThought    int      `toml:"revises_thought,omitempty"`
	BranchFromThought int      `toml:"branch_from_thought,omitempty"`
	Tags              []string `toml:"tags,omitempty"`
	CreatedAt         int64    `toml:"created_at"`
}

type branchSchema struct {
	ID            string `toml:"id"`
	OriginThought int    `toml:"origin_thought"`
	Status        string `toml:"status"`
	Conclusion    string `toml:"conclusion,omitempty"`
	MergeStrategy string `toml:"merge_strategy,omitempty"`
	CreatedAt     int64  `toml:"created_at"`
	ClosedAt      int64  `toml:"closed_at,omitempty"`
	MergedAt      int64  `toml:"merged_at,omitempty"`
}
