// ABOUTME: SummaryModel shows batch results after the worker stops
// ABOUTME: Holds the invariant successes + failures + skipped == total

package tui

import (
	"fmt"
	"strings"
)

// SummaryModel is the terminal state of one batch update.
type SummaryModel struct {
	Total     int
	Successes int
	Errors    []BatchError
	Skipped   int
	Cancelled bool
}

// NewSummaryModel derives the summary from the final progress state.
// Skipped is computed, never counted: total - successes - failures.
func NewSummaryModel(p ProgressModel, cancelled bool) SummaryModel {
	return SummaryModel{
		Total:     p.Total,
		Successes: p.Successes,
		Errors:    p.Errors,
		Skipped:   p.Total - p.Successes - len(p.Errors),
		Cancelled: cancelled,
	}
}

// View renders the summary screen.
func (m SummaryModel) View() string {
	s := Styles()

	title := "Update complete"
	if m.Cancelled {
		title = "Update cancelled"
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(title) + "\n\n")
	b.WriteString(s.Success.Render(fmt.Sprintf("  %d updated", m.Successes)) + "\n")
	if len(m.Errors) > 0 {
		b.WriteString(s.Error.Render(fmt.Sprintf("  %d failed", len(m.Errors))) + "\n")
		for _, e := range m.Errors {
			b.WriteString(s.Muted.Render(fmt.Sprintf("    %s: %s", e.Package, e.Message)) + "\n")
		}
	}
	if m.Skipped > 0 {
		b.WriteString(s.Secondary.Render(fmt.Sprintf("  %d skipped", m.Skipped)) + "\n")
	}
	b.WriteString(s.Muted.Render(fmt.Sprintf("  %d total", m.Total)) + "\n")

	b.WriteString("\n" + s.Muted.Render("enter back"))
	return b.String()
}
