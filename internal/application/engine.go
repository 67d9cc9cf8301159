package application

import (
	"context"
	"strings"
	"time"

	"github.com/bnema/maxential-thinking/internal/domain"
	"github.com/bnema/maxential-thinking/internal/ports"
	"go.uber.org/zap"
)

// Engine is the in-memory state of the current thinking session. It is not safe for
// concurrent use; callers serialize access.
type Engine struct {
	repo     ports.SessionRepository
	clock    ports.Clock
	ids      ports.IDGenerator
	observer ports.WriteObserver
	sink     ports.ThoughtSink
	logger   *zap.Logger
	echo     bool

	thoughts     []domain.Thought
	branches     map[domain.BranchID]*domain.Branch
	branchOrder  []domain.BranchID
	activeBranch domain.BranchID
	counter      int
	complete     bool
	sessionID    domain.SessionID
}

type Option func(*Engine)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func WithWriteObserver(observer ports.WriteObserver) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

func WithThoughtSink(sink ports.ThoughtSink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithEchoThoughts includes the thought text in think and revise results.
func WithEchoThoughts(echo bool) Option {
	return func(e *Engine) {
		e.echo = echo
	}
}

// NewEngine builds an engine. A nil repo runs the engine in memory-only mode.
func NewEngine(repo ports.SessionRepository, clock ports.Clock, ids ports.IDGenerator, opts ...Option) *Engine {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ids == nil {
		ids = ports.UUIDGenerator{}
	}

	e := &Engine{
		repo:     repo,
		clock:    clock,
		ids:      ids,
		logger:   zap.NewNop(),
		branches: map[domain.BranchID]*domain.Branch{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.observer == nil {
		e.observer = NewLogWriteObserver(e.logger)
	}

	return e
}

func (e *Engine) PersistenceEnabled() bool {
	return e.repo != nil
}

func (e *Engine) CurrentSessionID() domain.SessionID {
	return e.sessionID
}

func (e *Engine) Think(ctx context.Context, cmd ThinkCommand) (ThoughtResult, error) {
	if err := validateCommand(cmd); err != nil {
		return ThoughtResult{}, err
	}
	if e.complete {
		return ThoughtResult{}, domain.Conflictf("thinking chain is already complete; call reset to start a new chain")
	}

	thought := e.appendThought(domain.Thought{
		Text:     cmd.Thought,
		BranchID: e.activeBranch,
	})
	e.persistThought(ctx, thought)

	return e.thoughtResult(thought), nil
}

func (e *Engine) Revise(ctx context.Context, cmd ReviseCommand) (ThoughtResult, error) {
	if err := validateCommand(cmd); err != nil {
		return ThoughtResult{}, err
	}
	if e.indexOf(cmd.RevisesThought) < 0 {
		return ThoughtResult{}, domain.NotFoundf("thought %d not found", cmd.RevisesThought)
	}

	thought := e.appendThought(domain.Thought{
		Text:           cmd.Thought,
		IsRevision:     true,
		RevisesThought: cmd.RevisesThought,
		BranchID:       e.activeBranch,
	})
	e.persistThought(ctx, thought)

	return e.thoughtResult(thought), nil
}

// Complete records the conclusion on the main line and closes the chain.
func (e *Engine) Complete(ctx context.Context, cmd CompleteCommand) (CompleteResult, error) {
	if err := validateCommand(cmd); err != nil {
		return CompleteResult{}, err
	}
	if e.complete {
		return CompleteResult{}, domain.Conflictf("thinking chain is already complete")
	}

	thought := e.appendThought(domain.Thought{Text: domain.ConclusionPrefix + cmd.Conclusion})
	e.complete = true
	e.persistThought(ctx, thought)
	e.writeThrough(ctx, opUpdateSessionStatus, func(ctx context.Context, session sessionHandle) error {
		return e.repo.UpdateSessionStatus(ctx, session.id, domain.SessionComplete, thought.CreatedAt)
	})

	return CompleteResult{
		ThoughtNumber: thought.Number,
		Conclusion:    cmd.Conclusion,
		TotalThoughts: len(e.thoughts),
		Status:        string(domain.SessionComplete),
		SessionID:     string(e.sessionID),
	}, nil
}

// Reset flushes the current session as complete and returns the engine to empty.
func (e *Engine) Reset(ctx context.Context, cmd ResetCommand) (ResetResult, error) {
	if err := validateCommand(cmd); err != nil {
		return ResetResult{}, err
	}

	e.writeThroughExisting(ctx, opUpdateSessionStatus, func(ctx context.Context, session sessionHandle) error {
		return e.repo.UpdateSessionStatus(ctx, session.id, domain.SessionComplete, e.now())
	})

	result := ResetResult{
		ClearedThoughts: len(e.thoughts),
		ClearedBranches: len(e.branches),
		Status:          "reset",
	}
	e.clear()

	e.logger.Debug("session reset",
		zap.Int("cleared_thoughts", result.ClearedThoughts),
		zap.Int("cleared_branches", result.ClearedBranches),
	)
	return result, nil
}

func (e *Engine) Branch(ctx context.Context, cmd BranchCommand) (BranchResult, error) {
	if err := validateCommand(cmd); err != nil {
		return BranchResult{}, err
	}

	id := domain.BranchID(strings.TrimSpace(cmd.BranchID))
	if err := domain.ValidateBranchID(id); err != nil {
		return BranchResult{}, err
	}
	if existing, ok := e.branches[id]; ok {
		return BranchResult{}, domain.Conflictf("branch %s already exists (status %s)", id, existing.Status)
	}

	branch := &domain.Branch{
		ID:            id,
		OriginThought: e.counter,
		Status:        domain.BranchActive,
		CreatedAt:     e.now(),
	}
	e.branches[id] = branch
	e.branchOrder = append(e.branchOrder, id)
	e.activeBranch = id

	e.writeThrough(ctx, opInsertBranch, func(ctx context.Context, session sessionHandle) error {
		return e.repo.InsertBranch(ctx, session.id, *branch)
	})

	thought := e.appendThought(domain.Thought{
		Text:              domain.BranchStartPrefix + cmd.Reason,
		BranchID:          id,
		BranchFromThought: branch.OriginThought,
	})
	e.persistThought(ctx, thought)

	return BranchResult{
		BranchID:      string(id),
		OriginThought: branch.OriginThought,
		ThoughtNumber: thought.Number,
		Status:        string(branch.Status),
		TotalThoughts: len(e.thoughts),
	}, nil
}

// SwitchBranch moves the write pointer. An empty id or "main" selects the main line.
func (e *Engine) SwitchBranch(_ context.Context, cmd SwitchBranchCommand) (SwitchBranchResult, error) {
	previous := e.activeBranch
	id := domain.BranchID(strings.TrimSpace(cmd.BranchID))

	if id == "" || id == domain.MainLineAlias {
		e.activeBranch = ""
		return SwitchBranchResult{PreviousBranchID: string(previous), OnMainLine: true}, nil
	}

	branch, err := e.branch(id)
	if err != nil {
		return SwitchBranchResult{}, err
	}
	if branch.Status != domain.BranchActive {
		return SwitchBranchResult{}, domain.Conflictf("branch %s is %s; only active branches can be switched to", id, branch.Status)
	}

	e.activeBranch = id
	return SwitchBranchResult{ActiveBranchID: string(id), PreviousBranchID: string(previous)}, nil
}

func (e *Engine) ListBranches(_ context.Context) ListBranchesResult {
	summaries := make([]BranchSummary, 0, len(e.branchOrder))
	for _, id := range e.branchOrder {
		summaries = append(summaries, newBranchSummary(e.branchWithThoughts(id)))
	}

	return ListBranchesResult{
		Branches:       summaries,
		TotalBranches:  len(summaries),
		ActiveBranchID: string(e.activeBranch),
	}
}

func (e *Engine) GetBranch(_ context.Context, cmd GetBranchCommand) (domain.Branch, error) {
	if err := validateCommand(cmd); err != nil {
		return domain.Branch{}, err
	}

	id := domain.BranchID(strings.TrimSpace(cmd.BranchID))
	if _, err := e.branch(id); err != nil {
		return domain.Branch{}, err
	}
	return e.branchWithThoughts(id), nil
}

func (e *Engine) CloseBranch(ctx context.Context, cmd CloseBranchCommand) (CloseBranchResult, error) {
	if err := validateCommand(cmd); err != nil {
		return CloseBranchResult{}, err
	}

	id := domain.BranchID(strings.TrimSpace(cmd.BranchID))
	branch, err := e.branch(id)
	if err != nil {
		return CloseBranchResult{}, err
	}

	closedAt := e.now()
	if err := branch.Close(cmd.Conclusion, closedAt); err != nil {
		return CloseBranchResult{}, err
	}
	if e.activeBranch == id {
		e.activeBranch = ""
	}

	e.writeThrough(ctx, opCloseBranch, func(ctx context.Context, session sessionHandle) error {
		return e.repo.CloseBranch(ctx, session.id, id, branch.Conclusion, closedAt)
	})

	return CloseBranchResult{
		BranchID:   string(id),
		Status:     string(branch.Status),
		ClosedAt:   closedAt.UnixMilli(),
		Conclusion: branch.Conclusion,
	}, nil
}

func (e *Engine) MergeBranch(ctx context.Context, cmd MergeBranchCommand) (MergeBranchResult, error) {
	if err := validateCommand(cmd); err != nil {
		return MergeBranchResult{}, err
	}

	id := domain.BranchID(strings.TrimSpace(cmd.BranchID))
	branch, err := e.branch(id)
	if err != nil {
		return MergeBranchResult{}, err
	}

	strategy := domain.MergeStrategy(cmd.Strategy)
	mergedAt := e.now()
	if err := branch.Merge(strategy, mergedAt); err != nil {
		return MergeBranchResult{}, err
	}
	if e.activeBranch == id {
		e.activeBranch = ""
	}

	e.writeThrough(ctx, opMergeBranch, func(ctx context.Context, session sessionHandle) error {
		return e.repo.MergeBranch(ctx, session.id, id, strategy, mergedAt)
	})

	return MergeBranchResult{
		BranchID:           string(id),
		Status:             string(branch.Status),
		Strategy:           string(strategy),
		MergedAt:           mergedAt.UnixMilli(),
		MergeThoughtNumber: len(e.thoughts) + 1,
		MergeContent:       e.branchWithThoughts(id).MergeContent(strategy),
	}, nil
}

func (e *Engine) GetThought(_ context.Context, cmd GetThoughtCommand) (domain.Thought, error) {
	if err := validateCommand(cmd); err != nil {
		return domain.Thought{}, err
	}

	i := e.indexOf(cmd.ThoughtNumber)
	if i < 0 {
		return domain.Thought{}, domain.NotFoundf("thought %d not found", cmd.ThoughtNumber)
	}
	return cloneThought(e.thoughts[i]), nil
}

// GetHistory keeps the chronological tail when Limit is positive.
func (e *Engine) GetHistory(_ context.Context, cmd GetHistoryCommand) (HistoryResult, error) {
	candidates, err := e.candidates(cmd.BranchID)
	if err != nil {
		return HistoryResult{}, err
	}

	if cmd.Limit > 0 && len(candidates) > cmd.Limit {
		candidates = candidates[len(candidates)-cmd.Limit:]
	}

	entries := make([]HistoryEntry, 0, len(candidates))
	for _, t := range candidates {
		entries = append(entries, newHistoryEntry(t))
	}

	return HistoryResult{
		Thoughts:      entries,
		Count:         len(entries),
		TotalThoughts: len(e.thoughts),
		BranchID:      strings.TrimSpace(cmd.BranchID),
	}, nil
}

func (e *Engine) Tag(ctx context.Context, cmd TagCommand) (TagResult, error) {
	if err := validateCommand(cmd); err != nil {
		return TagResult{}, err
	}

	i := e.indexOf(cmd.ThoughtNumber)
	if i < 0 {
		return TagResult{}, domain.NotFoundf("thought %d not found", cmd.ThoughtNumber)
	}

	change := domain.ApplyTags(e.thoughts[i].Tags, cmd.Add, cmd.Remove)
	e.thoughts[i].Tags = change.Tags

	if change.Changed() {
		number := cmd.ThoughtNumber
		tags := change.Tags
		e.writeThrough(ctx, opSetTags, func(ctx context.Context, session sessionHandle) error {
			return e.repo.SetTags(ctx, session.id, number, tags, e.now())
		})
	}

	tags := change.Tags
	if tags == nil {
		tags = []string{}
	}
	return TagResult{
		ThoughtNumber: cmd.ThoughtNumber,
		Tags:          tags,
		Added:         change.Added,
		Removed:       change.Removed,
	}, nil
}

// Search filters by branch first, then by case-insensitive text, then by every tag.
func (e *Engine) Search(_ context.Context, cmd SearchCommand) (SearchResult, error) {
	candidates, err := e.candidates(cmd.BranchID)
	if err != nil {
		return SearchResult{}, err
	}

	query := strings.ToLower(strings.TrimSpace(cmd.Query))
	required := domain.NormalizeTags(cmd.Tags)

	matches := make([]domain.Thought, 0, len(candidates))
	for _, t := range candidates {
		if query != "" && !strings.Contains(strings.ToLower(t.Text), query) {
			continue
		}
		if !hasAllTags(t, required) {
			continue
		}
		matches = append(matches, t)
	}

	return SearchResult{Results: NewThoughtViews(matches), Count: len(matches)}, nil
}

func (e *Engine) Snapshot() ChainView {
	thoughts := make([]domain.Thought, 0, len(e.thoughts))
	for _, t := range e.thoughts {
		thoughts = append(thoughts, cloneThought(t))
	}

	branches := make([]domain.Branch, 0, len(e.branchOrder))
	for _, id := range e.branchOrder {
		branches = append(branches, e.branchWithThoughts(id))
	}

	return ChainView{
		SessionID:      e.sessionID,
		Thoughts:       thoughts,
		Branches:       branches,
		ActiveBranchID: e.activeBranch,
		Complete:       e.complete,
	}
}

func (e *Engine) appendThought(thought domain.Thought) domain.Thought {
	e.counter++
	thought.Number = e.counter
	thought.CreatedAt = e.now()
	thought.Kind = domain.ClassifyKind(thought)
	e.thoughts = append(e.thoughts, thought)

	e.logger.Debug("thought recorded",
		zap.Int("number", thought.Number),
		zap.String("kind", string(thought.Kind)),
		zap.String("branch", string(thought.BranchID)),
	)
	if e.sink != nil {
		e.sink.ThoughtRecorded(thought, e.counter)
	}
	return thought
}

func (e *Engine) persistThought(ctx context.Context, thought domain.Thought) {
	e.writeThrough(ctx, opInsertThought, func(ctx context.Context, session sessionHandle) error {
		return e.repo.InsertThought(ctx, session.id, thought)
	})
}

func (e *Engine) thoughtResult(thought domain.Thought) ThoughtResult {
	result := ThoughtResult{
		ThoughtNumber:  thought.Number,
		ActiveBranchID: string(e.activeBranch),
		TotalThoughts:  len(e.thoughts),
		BranchCount:    len(e.branches),
		IsRevision:     thought.IsRevision,
		RevisesThought: thought.RevisesThought,
	}
	if e.echo {
		result.Thought = thought.Text
	}
	return result
}

func (e *Engine) branch(id domain.BranchID) (*domain.Branch, error) {
	branch, ok := e.branches[id]
	if !ok {
		return nil, domain.NotFoundf("branch %s not found", id)
	}
	return branch, nil
}

// branchWithThoughts copies a branch and attaches its thoughts in global order.
func (e *Engine) branchWithThoughts(id domain.BranchID) domain.Branch {
	branch := *e.branches[id]
	branch.Thoughts = nil
	for _, t := range e.thoughts {
		if t.BranchID == id {
			branch.Thoughts = append(branch.Thoughts, cloneThought(t))
		}
	}
	return branch
}

// candidates resolves a branch filter. "main" selects thoughts outside any branch.
func (e *Engine) candidates(rawBranchID string) ([]domain.Thought, error) {
	id := domain.BranchID(strings.TrimSpace(rawBranchID))

	switch {
	case id == "":
		return append([]domain.Thought(nil), e.thoughts...), nil
	case id == domain.MainLineAlias:
		var mainLine []domain.Thought
		for _, t := range e.thoughts {
			if t.OnMainLine() {
				mainLine = append(mainLine, t)
			}
		}
		return mainLine, nil
	default:
		if _, err := e.branch(id); err != nil {
			return nil, err
		}
		return e.branchWithThoughts(id).Thoughts, nil
	}
}

func (e *Engine) indexOf(number int) int {
	for i := range e.thoughts {
		if e.thoughts[i].Number == number {
			return i
		}
	}
	return -1
}

func (e *Engine) clear() {
	e.thoughts = nil
	e.branches = map[domain.BranchID]*domain.Branch{}
	e.branchOrder = nil
	e.activeBranch = ""
	e.counter = 0
	e.complete = false
	e.sessionID = ""
}

// now is truncated to milliseconds so stored and in-memory timestamps agree.
func (e *Engine) now() time.Time {
	return e.clock.Now().UTC().Truncate(time.Millisecond)
}

func hasAllTags(t domain.Thought, tags []string) bool {
	for _, tag := range tags {
		if !t.HasTag(tag) {
			return false
		}
	}
	return true
}

func cloneThought(t domain.Thought) domain.Thought {
	if t.Tags != nil {
		t.Tags = append([]string(nil), t.Tags...)
	}
	return t
}
