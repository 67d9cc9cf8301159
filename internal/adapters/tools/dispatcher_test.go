package tools

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/bnema/maxential-thinking/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	return NewDispatcher(application.NewEngine(nil, fixedClock{}, nil), zap.NewNop())
}

func call(t *testing.T, d *Dispatcher, name string, args map[string]any) map[string]any {
	t.Helper()

	result := d.Call(context.Background(), name, args)
	require.False(t, result.IsError, result.Text)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Text), &payload))
	return payload
}

func callFailure(t *testing.T, d *Dispatcher, name string, args map[string]any) string {
	t.Helper()

	result := d.Call(context.Background(), name, args)
	require.True(t, result.IsError, result.Text)

	var payload failurePayload
	require.NoError(t, json.Unmarshal([]byte(result.Text), &payload))
	assert.Equal(t, "failed", payload.Status)
	return payload.Error
}

func TestDispatcherThinkReturnsIndentedPayload(t *testing.T) {
	d := newTestDispatcher(t)

	result := d.Call(context.Background(), "think", map[string]any{"thought": "first"})
	require.False(t, result.IsError)
	assert.Contains(t, result.Text, "\n  \"thoughtNumber\": 1")

	payload := call(t, d, "think", map[string]any{"thought": "second"})
	assert.Equal(t, float64(2), payload["thoughtNumber"])
	assert.Equal(t, float64(2), payload["totalThoughts"])
	assert.Equal(t, float64(0), payload["branchCount"])
}

func TestDispatcherRejectsWrongArgumentTypes(t *testing.T) {
	d := newTestDispatcher(t)

	tests := []struct {
		name string
		tool string
		args map[string]any
		want string
	}{
		{name: "missing thought", tool: "think", args: map[string]any{}, want: "invalid thought: must be a non-empty string"},
		{name: "numeric thought", tool: "think", args: map[string]any{"thought": 42.0}, want: "invalid thought: must be a string"},
		{name: "string confirm", tool: "reset", args: map[string]any{"confirm": "true"}, want: "invalid confirm: must be a boolean"},
		{name: "false confirm", tool: "reset", args: map[string]any{"confirm": false}, want: "invalid confirm: must be true"},
		{name: "fractional number", tool: "get_thought", args: map[string]any{"thoughtNumber": 1.5}, want: "invalid thoughtNumber: must be an integer"},
		{name: "string number", tool: "get_thought", args: map[string]any{"thoughtNumber": "1"}, want: "invalid thoughtNumber: must be an integer"},
		{name: "tags not strings", tool: "tag", args: map[string]any{"thoughtNumber": 1.0, "add": []any{"ok", 3.0}}, want: "invalid add: must be an array of strings"},
		{name: "unknown strategy", tool: "merge_branch", args: map[string]any{"branchId": "alt", "strategy": "squash"}, want: "invalid strategy: must be one of conclusion_only, full_integration, summary"},
		{name: "limit too small", tool: "session_summary", args: map[string]any{"id": "s-1", "maxLength": 10.0}, want: "invalid maxLength: must be at least 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := callFailure(t, d, tt.tool, tt.args)
			assert.Contains(t, message, tt.want)
		})
	}
}

func TestDispatcherFailedResetLeavesStateUntouched(t *testing.T) {
	d := newTestDispatcher(t)
	call(t, d, "think", map[string]any{"thought": "keep me"})

	callFailure(t, d, "reset", map[string]any{"confirm": "yes"})
	callFailure(t, d, "reset", map[string]any{})

	history := call(t, d, "get_history", nil)
	assert.Equal(t, float64(1), history["count"])

	cleared := call(t, d, "reset", map[string]any{"confirm": true})
	assert.Equal(t, float64(1), cleared["clearedThoughts"])
	assert.Equal(t, "reset", cleared["status"])
}

func TestDispatcherBranchWorkflow(t *testing.T) {
	d := newTestDispatcher(t)

	call(t, d, "think", map[string]any{"thought": "a"})
	branch := call(t, d, "branch", map[string]any{"branchId": "alt", "reason": "explore"})
	assert.Equal(t, float64(1), branch["originThought"])
	assert.Equal(t, float64(2), branch["thoughtNumber"])

	switched := call(t, d, "switch_branch", nil)
	assert.Equal(t, true, switched["onMainLine"])

	call(t, d, "think", map[string]any{"thought": "b"})
	merged := call(t, d, "merge_branch", map[string]any{"branchId": "alt", "strategy": "summary"})
	assert.Equal(t, "merged", merged["status"])
	assert.Contains(t, merged["mergeContent"], "1 thoughts explored from thought 1")

	fetched := call(t, d, "get_branch", map[string]any{"branchId": "alt"})
	assert.Equal(t, "alt", fetched["branchId"])
	assert.Len(t, fetched["thoughts"], 1)

	listed := call(t, d, "list_branches", nil)
	assert.Equal(t, float64(1), listed["totalBranches"])

	thought := call(t, d, "get_thought", map[string]any{"thoughtNumber": 2})
	assert.Equal(t, "branch_start", thought["type"])

	message := callFailure(t, d, "get_branch", map[string]any{"branchId": "nope"})
	assert.Contains(t, message, "branch nope not found")
}

func TestDispatcherTagAndSearch(t *testing.T) {
	d := newTestDispatcher(t)
	call(t, d, "think", map[string]any{"thought": "Cache reads"})
	call(t, d, "think", map[string]any{"thought": "cache writes"})

	tagged := call(t, d, "tag", map[string]any{"thoughtNumber": 2.0, "add": []any{" Hot ", "hot"}})
	assert.Equal(t, []any{"hot"}, tagged["tags"])

	found := call(t, d, "search", map[string]any{"query": "CACHE", "tags": []string{"hot"}})
	assert.Equal(t, float64(1), found["count"])
}

func TestDispatcherExportAndVisualizeReturnRenderedText(t *testing.T) {
	d := newTestDispatcher(t)
	call(t, d, "think", map[string]any{"thought": "a"})

	markdown := d.Call(context.Background(), "export", nil)
	require.False(t, markdown.IsError)
	assert.Contains(t, markdown.Text, "# Thinking Chain")

	tree := d.Call(context.Background(), "visualize", map[string]any{"format": "ascii", "showContent": true})
	require.False(t, tree.IsError)
	assert.Equal(t, "Main line\n└── [1] thought: a\n", tree.Text)

	message := callFailure(t, d, "visualize", map[string]any{"format": "png"})
	assert.Contains(t, message, "invalid format")
}

func TestDispatcherSessionVerbsWithoutStorage(t *testing.T) {
	d := newTestDispatcher(t)

	message := callFailure(t, d, "session_list", nil)
	assert.Contains(t, message, "session persistence is not available")
}

func TestDispatcherUnknownTool(t *testing.T) {
	d := newTestDispatcher(t)

	result := d.Call(context.Background(), "ponder", nil)
	assert.True(t, result.IsError)
	assert.Equal(t, "Unknown tool: ponder", result.Text)
}

func TestDispatcherRecoversFromPanics(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	d := NewDispatcher(nil, zap.New(core))

	message := callFailure(t, d, "think", map[string]any{"thought": "boom"})
	assert.Contains(t, message, ErrToolPanicked.Error())

	entries := logs.FilterMessage("tool call panicked").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "think", entries[0].ContextMap()["tool"])
}

func TestDispatcherSerializesConcurrentCalls(t *testing.T) {
	d := newTestDispatcher(t)

	const callers = 25
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Call(context.Background(), "think", map[string]any{"thought": "parallel"})
		}()
	}
	wg.Wait()

	history := call(t, d, "get_history", nil)
	assert.Equal(t, float64(callers), history["count"])

	seen := map[float64]bool{}
	for _, entry := range history["thoughts"].([]any) {
		number := entry.(map[string]any)["thoughtNumber"].(float64)
		assert.False(t, seen[number], "duplicate thought number %v", number)
		seen[number] = true
	}
	assert.Len(t, seen, callers)
}

func TestCatalogMatchesDispatcher(t *testing.T) {
	d := newTestDispatcher(t)

	catalog := Catalog()
	assert.Len(t, catalog, len(d.handlers))
	for _, tool := range catalog {
		assert.True(t, d.Has(tool.Name), tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
	}
}
