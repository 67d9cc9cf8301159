package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/maxential-thinking/internal/adapters/render/chain"
	"github.com/bnema/maxential-thinking/internal/application"
	"github.com/bnema/maxential-thinking/internal/domain"
	"go.uber.org/zap"
)

var ErrToolPanicked = errors.New("tool call panicked")

// Result is what a transport hands back to the client. Text is indented JSON for
// structured payloads and the rendered document for export and visualize.
type Result struct {
	Text    string
	IsError bool
}

type failurePayload struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// rendered marks a payload that is already text and must not be JSON encoded.
type rendered string

type handler func(ctx context.Context, in *decoder) (any, error)

// Dispatcher routes tool calls to the engine. Calls are serialized: the engine
// holds one session and is not safe for concurrent use.
type Dispatcher struct {
	mu       sync.Mutex
	engine   *application.Engine
	logger   *zap.Logger
	handlers map[string]handler
}

func NewDispatcher(engine *application.Engine, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Dispatcher{engine: engine, logger: logger}
	d.handlers = map[string]handler{
		"think":           d.think,
		"revise":          d.revise,
		"complete":        d.complete,
		"reset":           d.reset,
		"branch":          d.branch,
		"switch_branch":   d.switchBranch,
		"list_branches":   d.listBranches,
		"get_branch":      d.getBranch,
		"close_branch":    d.closeBranch,
		"merge_branch":    d.mergeBranch,
		"get_thought":     d.getThought,
		"get_history":     d.getHistory,
		"tag":             d.tag,
		"search":          d.search,
		"export":          d.export,
		"visualize":       d.visualize,
		"session_save":    d.sessionSave,
		"session_load":    d.sessionLoad,
		"session_list":    d.sessionList,
		"session_summary": d.sessionSummary,
	}
	return d
}

func (d *Dispatcher) Has(name string) bool {
	_, ok := d.handlers[name]
	return ok
}

// Call runs one tool. Every failure, including a panic, comes back as a failure
// payload; Call never returns an error to the transport.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (result Result) {
	d.mu.Lock()
	defer d.mu.Unlock()

	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("tool call panicked",
				zap.String("tool", name),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			result = failure(fmt.Errorf("%w: %v", ErrToolPanicked, r))
		}
	}()

	h, ok := d.handlers[name]
	if !ok {
		d.logger.Warn("unknown tool", zap.String("tool", name))
		return Result{Text: "Unknown tool: " + name, IsError: true}
	}

	in := &decoder{args: arguments(args)}
	payload, err := h(ctx, in)
	if err == nil {
		err = in.err
	}
	if err != nil {
		d.logger.Debug("tool call failed",
			zap.String("tool", name),
			zap.String("kind", domain.ErrorKind(err)),
			zap.Duration("duration", time.Since(started)),
			zap.Error(err),
		)
		return failure(err)
	}

	d.logger.Debug("tool call",
		zap.String("tool", name),
		zap.Duration("duration", time.Since(started)),
	)

	if text, ok := payload.(rendered); ok {
		return Result{Text: string(text)}
	}
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return failure(fmt.Errorf("encode %s result: %w", name, err))
	}
	return Result{Text: string(encoded)}
}

func failure(err error) Result {
	encoded, marshalErr := json.MarshalIndent(failurePayload{Error: err.Error(), Status: "failed"}, "", "  ")
	if marshalErr != nil {
		return Result{Text: err.Error(), IsError: true}
	}
	return Result{Text: string(encoded), IsError: true}
}

// decoder keeps the first argument error so handlers can read fields in sequence.
type decoder struct {
	args arguments
	err  error
}

func (in *decoder) string(name string) string {
	value, err := in.args.string(name)
	in.keep(err)
	return value
}

func (in *decoder) bool(name string) bool {
	value, err := in.args.bool(name)
	in.keep(err)
	return value
}

func (in *decoder) int(name string) int {
	value, err := in.args.int(name)
	in.keep(err)
	return value
}

func (in *decoder) strings(name string) []string {
	value, err := in.args.strings(name)
	in.keep(err)
	return value
}

func (in *decoder) keep(err error) {
	if in.err == nil && err != nil {
		in.err = err
	}
}

func (d *Dispatcher) think(ctx context.Context, in *decoder) (any, error) {
	cmd := application.ThinkCommand{Thought: in.string("thought")}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.Think(ctx, cmd)
}

func (d *Dispatcher) revise(ctx context.Context, in *decoder) (any, error) {
	cmd := application.ReviseCommand{
		Thought:        in.string("thought"),
		RevisesThought: in.int("revisesThought"),
	}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.Revise(ctx, cmd)
}

func (d *Dispatcher) complete(ctx context.Context, in *decoder) (any, error) {
	cmd := application.CompleteCommand{Conclusion: in.string("conclusion")}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.Complete(ctx, cmd)
}

func (d *Dispatcher) reset(ctx context.Context, in *decoder) (any, error) {
	cmd := application.ResetCommand{Confirm: in.bool("confirm")}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.Reset(ctx, cmd)
}

func (d *Dispatcher) branch(ctx context.Context, in *decoder) (any, error) {
	cmd := application.BranchCommand{
		BranchID: in.string("branchId"),
		Reason:   in.string("reason"),
	}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.Branch(ctx, cmd)
}

func (d *Dispatcher) switchBranch(ctx context.Context, in *decoder) (any, error) {
	cmd := application.SwitchBranchCommand{BranchID: in.string("branchId")}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.SwitchBranch(ctx, cmd)
}

func (d *Dispatcher) listBranches(ctx context.Context, _ *decoder) (any, error) {
	return d.engine.ListBranches(ctx), nil
}

func (d *Dispatcher) getBranch(ctx context.Context, in *decoder) (any, error) {
	cmd := application.GetBranchCommand{BranchID: in.string("branchId")}
	if in.err != nil {
		return nil, in.err
	}
	branch, err := d.engine.GetBranch(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return application.NewBranchView(branch), nil
}

func (d *Dispatcher) closeBranch(ctx context.Context, in *decoder) (any, error) {
	cmd := application.CloseBranchCommand{
		BranchID:   in.string("branchId"),
		Conclusion: in.string("conclusion"),
	}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.CloseBranch(ctx, cmd)
}

func (d *Dispatcher) mergeBranch(ctx context.Context, in *decoder) (any, error) {
	cmd := application.MergeBranchCommand{
		BranchID: in.string("branchId"),
		Strategy: in.string("strategy"),
	}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.MergeBranch(ctx, cmd)
}

func (d *Dispatcher) getThought(ctx context.Context, in *decoder) (any, error) {
	cmd := application.GetThoughtCommand{ThoughtNumber: in.int("thoughtNumber")}
	if in.err != nil {
		return nil, in.err
	}
	thought, err := d.engine.GetThought(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return application.NewThoughtView(thought), nil
}

func (d *Dispatcher) getHistory(ctx context.Context, in *decoder) (any, error) {
	cmd := application.GetHistoryCommand{
		BranchID: in.string("branchId"),
		Limit:    in.int("limit"),
	}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.GetHistory(ctx, cmd)
}

func (d *Dispatcher) tag(ctx context.Context, in *decoder) (any, error) {
	cmd := application.TagCommand{
		ThoughtNumber: in.int("thoughtNumber"),
		Add:           in.strings("add"),
		Remove:        in.strings("remove"),
	}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.Tag(ctx, cmd)
}

func (d *Dispatcher) search(ctx context.Context, in *decoder) (any, error) {
	cmd := application.SearchCommand{
		Query:    in.string("query"),
		Tags:     in.strings("tags"),
		BranchID: in.string("branchId"),
	}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.Search(ctx, cmd)
}

func (d *Dispatcher) export(_ context.Context, in *decoder) (any, error) {
	format := chain.ExportFormat(in.string("format"))
	branchID := domain.BranchID(in.string("branchId"))
	if in.err != nil {
		return nil, in.err
	}

	text, err := chain.Export(d.engine.Snapshot(), format, branchID)
	if err != nil {
		return nil, err
	}
	return rendered(text), nil
}

func (d *Dispatcher) visualize(_ context.Context, in *decoder) (any, error) {
	format := chain.DiagramFormat(in.string("format"))
	showContent := in.bool("showContent")
	if in.err != nil {
		return nil, in.err
	}

	text, err := chain.Visualize(d.engine.Snapshot(), format, showContent)
	if err != nil {
		return nil, err
	}
	return rendered(text), nil
}

func (d *Dispatcher) sessionSave(ctx context.Context, in *decoder) (any, error) {
	cmd := application.SessionSaveCommand{
		Name:        in.string("name"),
		Description: in.string("description"),
	}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.SessionSave(ctx, cmd)
}

func (d *Dispatcher) sessionLoad(ctx context.Context, in *decoder) (any, error) {
	cmd := application.SessionLoadCommand{ID: in.string("id")}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.SessionLoad(ctx, cmd)
}

func (d *Dispatcher) sessionList(ctx context.Context, in *decoder) (any, error) {
	cmd := application.SessionListCommand{
		Status: in.string("status"),
		Limit:  in.int("limit"),
		Offset: in.int("offset"),
	}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.SessionList(ctx, cmd)
}

func (d *Dispatcher) sessionSummary(ctx context.Context, in *decoder) (any, error) {
	cmd := application.SessionSummaryCommand{
		ID:        in.string("id"),
		MaxLength: in.int("maxLength"),
	}
	if in.err != nil {
		return nil, in.err
	}
	return d.engine.SessionSummary(ctx, cmd)
}
