package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/maxential-thinking/internal/domain"
	"github.com/bnema/maxential-thinking/internal/ports"
	"go.uber.org/zap"
)

const (
	opCreateSession        = "create_session"
	opInsertThought        = "insert_thought"
	opInsertBranch         = "insert_branch"
	opCloseBranch          = "close_branch"
	opMergeBranch          = "merge_branch"
	opSetTags              = "set_tags"
	opUpdateSessionStatus  = "update_session_status"
	opUpdateSessionDetails = "update_session_details"
)

const autoSessionNameLayout = "2006-01-02 15:04:05"

// sessionHandle identifies the durable session a write belongs to.
type sessionHandle struct {
	id domain.SessionID
}

// ensureSession returns the current session, creating one on the first write. It
// reports false when there is no repository or the session could not be created.
func (e *Engine) ensureSession(ctx context.Context) (sessionHandle, bool) {
	if e.repo == nil {
		return sessionHandle{}, false
	}
	if e.sessionID != "" {
		return sessionHandle{id: e.sessionID}, true
	}

	now := e.now()
	meta := domain.SessionMetadata{
		ID:        e.ids.NewSessionID(),
		Name:      "Session " + now.Format(autoSessionNameLayout),
		Status:    domain.SessionActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	started := time.Now()
	err := e.repo.CreateSession(ctx, meta)
	e.record(ctx, opCreateSession, meta.ID, started, err)
	if err != nil {
		return sessionHandle{}, false
	}

	e.sessionID = meta.ID
	return sessionHandle{id: meta.ID}, true
}

// writeThrough applies one durable write for the current session. Failures are
// reported to the observer and never returned.
func (e *Engine) writeThrough(ctx context.Context, operation string, write func(ctx context.Context, session sessionHandle) error) {
	session, ok := e.ensureSession(ctx)
	if !ok {
		return
	}
	e.apply(ctx, operation, session, write)
}

// writeThroughExisting is writeThrough without the implicit session creation.
func (e *Engine) writeThroughExisting(ctx context.Context, operation string, write func(ctx context.Context, session sessionHandle) error) {
	if e.repo == nil || e.sessionID == "" {
		return
	}
	e.apply(ctx, operation, sessionHandle{id: e.sessionID}, write)
}

func (e *Engine) apply(ctx context.Context, operation string, session sessionHandle, write func(ctx context.Context, session sessionHandle) error) {
	started := time.Now()
	err := write(ctx, session)
	e.record(ctx, operation, session.id, started, err)
}

func (e *Engine) record(ctx context.Context, operation string, id domain.SessionID, started time.Time, err error) {
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", domain.ErrPersistence, operation, err)
	}
	e.observer.RecordWrite(ctx, ports.WriteOutcome{
		Operation: operation,
		SessionID: id,
		Err:       err,
		At:        e.now(),
		Duration:  time.Since(started),
	})
}

type logWriteObserver struct {
	logger *zap.Logger
}

// NewLogWriteObserver logs successful writes at debug and failed writes at warn.
func NewLogWriteObserver(logger *zap.Logger) ports.WriteObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logWriteObserver{logger: logger}
}

func (o logWriteObserver) RecordWrite(_ context.Context, outcome ports.WriteOutcome) {
	fields := []zap.Field{
		zap.String("operation", outcome.Operation),
		zap.String("session_id", string(outcome.SessionID)),
		zap.Duration("duration", outcome.Duration),
	}

	if outcome.Succeeded() {
		o.logger.Debug("write-through stored", fields...)
		return
	}
	o.logger.Warn("write-through failed; continuing in memory", append(fields, zap.Error(outcome.Err))...)
}
