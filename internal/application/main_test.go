package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/maxential-thinking/internal/domain"
	"github.com/bnema/maxential-thinking/internal/ports"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// steppingClock advances by step on every call.
type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

type sequenceIDs struct {
	issued int
}

func (s *sequenceIDs) NewSessionID() domain.SessionID {
	s.issued++
	return domain.SessionID(fmt.Sprintf("session-%d", s.issued))
}

type recordingObserver struct {
	outcomes []ports.WriteOutcome
}

func (r *recordingObserver) RecordWrite(_ context.Context, outcome ports.WriteOutcome) {
	r.outcomes = append(r.outcomes, outcome)
}

func (r *recordingObserver) operations() []string {
	ops := make([]string, 0, len(r.outcomes))
	for _, outcome := range r.outcomes {
		ops = append(ops, outcome.Operation)
	}
	return ops
}

func newMemoryEngine(opts ...Option) *Engine {
	return NewEngine(nil, fixedClock{now: testNow}, &sequenceIDs{}, opts...)
}

func mockAnyContext() interface{} {
	return mock.Anything
}
