package sessions

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/maxential-thinking/internal/application"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

// recencyWindow is how long it takes an updated timestamp to fade to grey.
const recencyWindow = 7 * 24 * time.Hour

func renderView(listing application.SessionListResult, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Thinking Sessions"),
		s.header.Render(fmt.Sprintf("sessions: %d of %d", len(listing.Sessions), listing.Total)),
	}

	if len(listing.Sessions) == 0 {
		lines = append(lines, s.empty.Render("No sessions stored yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, session := range listing.Sessions {
		lines = append(lines, s.section.Render(renderSession(session, listing.CurrentSessionID, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSession(session application.SessionView, currentID string, opts RenderOptions, s styles) string {
	title := s.name.Render(sessionTitle(session.Name, session.ID))
	if currentID != "" && session.ID == currentID {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", s.current.Render("[current]"))
	}

	parts := []string{title, detailLine(session, opts, s)}
	if description := strings.TrimSpace(session.Description); description != "" {
		parts = append(parts, s.description.Render(description))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func detailLine(session application.SessionView, opts RenderOptions, s styles) string {
	updatedAt := time.UnixMilli(session.UpdatedAt).UTC()
	updatedStyle := lipgloss.NewStyle().Foreground(recencyColor(updatedAt, opts.Now))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		statusStyle(session.Status, s).Render(session.Status),
		s.detail.Render(fmt.Sprintf(" · %s · %s", plural(session.ThoughtCount, "thought"), plural(session.BranchCount, "branch"))),
		" ",
		updatedStyle.Render(fmt.Sprintf("(%s)", formatUpdatedRelative(updatedAt, opts.Now))),
	)
}

func statusStyle(status string, s styles) lipgloss.Style {
	switch status {
	case "active":
		return s.active
	case "complete":
		return s.complete
	default:
		return s.archived
	}
}

func sessionTitle(name, id string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return id
	}
	return fmt.Sprintf("%s (%s)", trimmed, id)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	if strings.HasSuffix(noun, "ch") {
		return fmt.Sprintf("%d %ses", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func formatUpdatedAt(updatedAt, now time.Time) string {
	if now.IsZero() {
		return updatedAt.Format(time.RFC3339)
	}

	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := updatedAt.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return updatedAt.Format("15:04")
	}

	return updatedAt.Format("15:04 on 02 Jan")
}

func formatUpdatedRelative(updatedAt, now time.Time) string {
	if now.IsZero() {
		return "updated " + formatUpdatedAt(updatedAt, now)
	}

	elapsed := now.Sub(updatedAt)
	if elapsed < time.Minute {
		return "updated just now"
	}
	if elapsed < time.Hour {
		minutes := int(math.Floor(elapsed.Minutes()))
		return fmt.Sprintf("updated %s ago", plural(minutes, "minute"))
	}
	if elapsed < 24*time.Hour {
		hours := int(math.Floor(elapsed.Hours()))
		return fmt.Sprintf("updated %s ago (%s)", plural(hours, "hour"), formatUpdatedAt(updatedAt, now))
	}

	days := int(math.Floor(elapsed.Hours() / 24))
	return fmt.Sprintf("updated %s ago (%s)", plural(days, "day"), formatUpdatedAt(updatedAt, now))
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp: 240 (faded) to 255 (bright white)
	baseColor := 240.0
	targetColor := 255.0

	interpolated := baseColor + (targetColor-baseColor)*normalized
	return lipgloss.Color(fmt.Sprintf("%d", int(interpolated)))
}

// recencyColor is bright white for a session touched just now and fades over a week.
func recencyColor(updatedAt, now time.Time) lipgloss.Color {
	if now.IsZero() || updatedAt.After(now) {
		return lipgloss.Color("255")
	}

	remaining := recencyWindow.Seconds() - now.Sub(updatedAt).Seconds()
	return interpolateColor(remaining, 0, recencyWindow.Seconds())
}
