package ports

import (
	"context"
	"time"

	"github.com/bnema/maxential-thinking/internal/domain"
)

// SessionRepository is the durable store behind the session engine. Every write also
// stamps the owning session's updated_at with the supplied time.
type SessionRepository interface {
	CreateSession(ctx context.Context, meta domain.SessionMetadata) error
	GetSession(ctx context.Context, id domain.SessionID) (domain.SessionMetadata, error)
	UpdateSessionDetails(ctx context.Context, id domain.SessionID, name, description string, at time.Time) error
	UpdateSessionStatus(ctx context.Context, id domain.SessionID, status domain.SessionStatus, at time.Time) error
	ListSessions(ctx context.Context, filter domain.SessionFilter) ([]domain.SessionMetadata, error)
	CountSessions(ctx context.Context, status domain.SessionStatus) (int, error)

	InsertThought(ctx context.Context, id domain.SessionID, thought domain.Thought) error
	InsertBranch(ctx context.Context, id domain.SessionID, branch domain.Branch) error
	CloseBranch(ctx context.Context, id domain.SessionID, branchID domain.BranchID, conclusion string, closedAt time.Time) error
	MergeBranch(ctx context.Context, id domain.SessionID, branchID domain.BranchID, strategy domain.MergeStrategy, mergedAt time.Time) error
	SetTags(ctx context.Context, id domain.SessionID, thoughtNumber int, tags []string, at time.Time) error

	LoadSession(ctx context.Context, id domain.SessionID) (domain.SessionSnapshot, error)
	Close() error
}
