package sessions

import (
	"testing"
	"time"

	"github.com/bnema/maxential-thinking/internal/application"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSingleSession(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render(application.SessionListResult{
		Sessions: []application.SessionView{
			{
				ID:           "s-1",
				Name:         "Cache design",
				Description:  "Choosing an eviction policy",
				Status:       "active",
				UpdatedAt:    now.Add(-3 * time.Hour).UnixMilli(),
				ThoughtCount: 12,
				BranchCount:  1,
			},
		},
		Total: 1,
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Thinking Sessions")
	assert.Contains(t, output, "sessions: 1 of 1")
	assert.Contains(t, output, "Cache design (s-1)")
	assert.Contains(t, output, "active · 12 thoughts · 1 branch")
	assert.Contains(t, output, "updated 3 hours ago (08:00)")
	assert.Contains(t, output, "Choosing an eviction policy")
	assert.NotContains(t, output, "[current]")
}

func TestRenderMarksCurrentSession(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render(application.SessionListResult{
		Sessions: []application.SessionView{
			{ID: "s-2", Name: "Rollout plan", Status: "active", UpdatedAt: now.Add(-20 * time.Second).UnixMilli(), ThoughtCount: 1},
			{ID: "s-1", Name: "Cache design", Status: "complete", UpdatedAt: now.Add(-4 * 24 * time.Hour).UnixMilli(), ThoughtCount: 7, BranchCount: 3},
		},
		Total:            5,
		CurrentSessionID: "s-2",
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "sessions: 2 of 5")
	assert.Contains(t, output, "Rollout plan (s-2) [current]")
	assert.Contains(t, output, "updated just now")
	assert.Contains(t, output, "complete · 7 thoughts · 3 branches")
	assert.Contains(t, output, "updated 4 days ago (11:00 on 10 Feb)")
}

func TestRenderEmptyListing(t *testing.T) {
	output, err := Render(application.SessionListResult{}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "sessions: 0 of 0")
	assert.Contains(t, output, "No sessions stored yet.")
}

func TestRenderWithoutNowUsesAbsoluteTimestamp(t *testing.T) {
	updated := time.Date(2026, 2, 10, 9, 15, 0, 0, time.UTC)

	output, err := Render(application.SessionListResult{
		Sessions: []application.SessionView{{ID: "s-1", Status: "archived", UpdatedAt: updated.UnixMilli()}},
		Total:    1,
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "s-1")
	assert.Contains(t, output, "updated 2026-02-10T09:15:00Z")
}

func TestRecencyColorFadesOverAWeek(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, lipgloss.Color("255"), recencyColor(now, now))
	assert.Equal(t, lipgloss.Color("240"), recencyColor(now.Add(-8*24*time.Hour), now))
	assert.Equal(t, lipgloss.Color("255"), recencyColor(now, time.Time{}))
}
