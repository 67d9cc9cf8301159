package domain

import (
	"fmt"
	"strings"
	"time"
)

type SessionID string

type SessionStatus string

const (
	SessionActive   SessionStatus = "active"
	SessionComplete SessionStatus = "complete"
	SessionArchived SessionStatus = "archived"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionActive, SessionComplete, SessionArchived:
		return true
	default:
		return false
	}
}

type SessionMetadata struct {
	ID           SessionID
	Name         string
	Description  string
	Status       SessionStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ThoughtCount int
	BranchCount  int
}

func (m SessionMetadata) Validate() error {
	if strings.TrimSpace(string(m.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !m.Status.Valid() {
		return fmt.Errorf("unsupported session status %q", m.Status)
	}
	return nil
}

// SessionSnapshot is the durable shape of one session: thoughts in number order,
// branches in creation order with their thoughts attached.
type SessionSnapshot struct {
	Metadata SessionMetadata
	Thoughts []Thought
	Branches []Branch
}

type SessionFilter struct {
	Status SessionStatus
	Limit  int
	Offset int
}

const (
	DefaultSessionListLimit = 20
	MaxSessionListLimit     = 100
)

func (f SessionFilter) Normalize() SessionFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultSessionListLimit
	}
	if f.Limit > MaxSessionListLimit {
		f.Limit = MaxSessionListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
