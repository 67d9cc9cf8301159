package ports

import (
	"context"
	"time"

	"github.com/bnema/maxential-thinking/internal/domain"
)

// WriteOutcome records one write-through attempt. Err is nil on success.
type WriteOutcome struct {
	Operation string
	SessionID domain.SessionID
	Err       error
	At        time.Time
	Duration  time.Duration
}

func (o WriteOutcome) Succeeded() bool {
	return o.Err == nil
}

// WriteObserver receives every write-through outcome. Failures never reach the caller
// of the operation, so this is the only place they surface.
type WriteObserver interface {
	RecordWrite(ctx context.Context, outcome WriteOutcome)
}

type WriteObserverFunc func(ctx context.Context, outcome WriteOutcome)

func (f WriteObserverFunc) RecordWrite(ctx context.Context, outcome WriteOutcome) {
	f(ctx, outcome)
}
