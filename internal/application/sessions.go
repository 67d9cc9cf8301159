package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/maxential-thinking/internal/domain"
	"go.uber.org/zap"
)

const DefaultSummaryLength = 2000

// SessionSave names the current session, creating it when nothing was written yet.
func (e *Engine) SessionSave(ctx context.Context, cmd SessionSaveCommand) (SessionSaveResult, error) {
	if err := validateCommand(cmd); err != nil {
		return SessionSaveResult{}, err
	}
	if e.repo == nil {
		return SessionSaveResult{}, domain.ErrPersistenceDisabled
	}

	session, ok := e.ensureSession(ctx)
	if !ok {
		return SessionSaveResult{}, fmt.Errorf("%w: could not create a session", domain.ErrPersistence)
	}

	name := strings.TrimSpace(cmd.Name)
	started := time.Now()
	err := e.repo.UpdateSessionDetails(ctx, session.id, name, cmd.Description, e.now())
	e.record(ctx, opUpdateSessionDetails, session.id, started, err)
	if err != nil {
		return SessionSaveResult{}, fmt.Errorf("%w: save session %s: %w", domain.ErrPersistence, session.id, err)
	}

	return SessionSaveResult{
		SessionID:   string(session.id),
		Name:        name,
		Description: cmd.Description,
		Status:      "saved",
	}, nil
}

// SessionLoad replaces the in-memory state with a stored session and marks it active.
func (e *Engine) SessionLoad(ctx context.Context, cmd SessionLoadCommand) (SessionLoadResult, error) {
	if err := validateCommand(cmd); err != nil {
		return SessionLoadResult{}, err
	}
	if e.repo == nil {
		return SessionLoadResult{}, domain.ErrPersistenceDisabled
	}

	id := domain.SessionID(strings.TrimSpace(cmd.ID))
	snapshot, err := e.repo.LoadSession(ctx, id)
	if err != nil {
		return SessionLoadResult{}, storageError("load session", id, err)
	}

	e.restore(snapshot)
	e.writeThroughExisting(ctx, opUpdateSessionStatus, func(ctx context.Context, session sessionHandle) error {
		return e.repo.UpdateSessionStatus(ctx, session.id, domain.SessionActive, e.now())
	})

	e.logger.Info("session loaded",
		zap.String("session_id", string(id)),
		zap.Int("thoughts", len(e.thoughts)),
		zap.Int("branches", len(e.branches)),
	)
	return SessionLoadResult{
		SessionID:      string(id),
		Name:           snapshot.Metadata.Name,
		ThoughtCount:   len(e.thoughts),
		BranchCount:    len(e.branches),
		ThoughtCounter: e.counter,
		ActiveBranchID: string(e.activeBranch),
		Complete:       e.complete,
		Status:         "loaded",
	}, nil
}

func (e *Engine) SessionList(ctx context.Context, cmd SessionListCommand) (SessionListResult, error) {
	if err := validateCommand(cmd); err != nil {
		return SessionListResult{}, err
	}
	if e.repo == nil {
		return SessionListResult{}, domain.ErrPersistenceDisabled
	}

	filter := domain.SessionFilter{
		Status: domain.SessionStatus(cmd.Status),
		Limit:  cmd.Limit,
		Offset: cmd.Offset,
	}.Normalize()

	sessions, err := e.repo.ListSessions(ctx, filter)
	if err != nil {
		return SessionListResult{}, fmt.Errorf("%w: list sessions: %w", domain.ErrPersistence, err)
	}
	total, err := e.repo.CountSessions(ctx, filter.Status)
	if err != nil {
		return SessionListResult{}, fmt.Errorf("%w: count sessions: %w", domain.ErrPersistence, err)
	}

	views := make([]SessionView, 0, len(sessions))
	for _, meta := range sessions {
		views = append(views, NewSessionView(meta))
	}

	return SessionListResult{
		Sessions:         views,
		Total:            total,
		CurrentSessionID: string(e.sessionID),
	}, nil
}

func (e *Engine) SessionSummary(ctx context.Context, cmd SessionSummaryCommand) (SessionSummaryResult, error) {
	if err := validateCommand(cmd); err != nil {
		return SessionSummaryResult{}, err
	}
	if e.repo == nil {
		return SessionSummaryResult{}, domain.ErrPersistenceDisabled
	}

	maxLength := cmd.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultSummaryLength
	}

	id := domain.SessionID(strings.TrimSpace(cmd.ID))
	snapshot, err := e.repo.LoadSession(ctx, id)
	if err != nil {
		return SessionSummaryResult{}, storageError("summarize session", id, err)
	}

	summary, truncated := BuildSummary(snapshot, maxLength)
	return SessionSummaryResult{
		SessionID: string(id),
		Name:      snapshot.Metadata.Name,
		Summary:   summary,
		Length:    len([]rune(summary)),
		Truncated: truncated,
	}, nil
}

// SessionSnapshot loads a stored session without touching the engine state.
func (e *Engine) SessionSnapshot(ctx context.Context, id domain.SessionID) (domain.SessionSnapshot, error) {
	if e.repo == nil {
		return domain.SessionSnapshot{}, domain.ErrPersistenceDisabled
	}

	snapshot, err := e.repo.LoadSession(ctx, id)
	if err != nil {
		return domain.SessionSnapshot{}, storageError("load session", id, err)
	}
	return snapshot, nil
}

// SessionChain rebuilds the chain view of a stored session in a scratch engine, leaving
// the current state alone.
func (e *Engine) SessionChain(ctx context.Context, id domain.SessionID) (ChainView, error) {
	snapshot, err := e.SessionSnapshot(ctx, id)
	if err != nil {
		return ChainView{}, err
	}

	scratch := NewEngine(nil, e.clock, e.ids)
	scratch.restore(snapshot)
	return scratch.Snapshot(), nil
}

func storageError(action string, id domain.SessionID, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return fmt.Errorf("%w: %s %s: %w", domain.ErrPersistence, action, id, err)
}
