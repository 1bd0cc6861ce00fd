// ABOUTME: ProgressModel renders a running batch update
// ABOUTME: Fixed total from the snapshot; counts come from BatchProgressMsg

package tui

import (
	"fmt"
	"strings"
)

// BatchError records one failed work item, in completion order.
type BatchError struct {
	Package string
	Message string
}

// ProgressModel tracks a batch update in flight.
type ProgressModel struct {
	Total           int
	Done            int
	Current         string
	Successes       int
	Errors          []BatchError
	CancelRequested bool
}

// NewProgressModel creates the progress state for a work list of n items.
func NewProgressModel(n int) ProgressModel {
	return ProgressModel{Total: n}
}

// Record applies one BatchProgressMsg.
func (m ProgressModel) Record(msg BatchProgressMsg) ProgressModel {
	m.Done = msg.Index
	m.Current = msg.Package
	if msg.Err != nil {
		m.Errors = append(m.Errors, BatchError{Package: msg.Package, Message: msg.Err.Error()})
	} else {
		m.Successes++
	}
	return m
}

// Remaining returns the count of items not yet processed.
func (m ProgressModel) Remaining() int { return m.Total - m.Done }

// View renders the progress screen.
func (m ProgressModel) View() string {
	s := Styles()

	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("Updating %d packages", m.Total)) + "\n\n")

	b.WriteString(progressBar(m.Done, m.Total, 40) + "\n")
	b.WriteString(s.Secondary.Render(fmt.Sprintf("%d/%d", m.Done, m.Total)))
	if m.Current != "" {
		b.WriteString(s.Secondary.Render("  " + m.Current))
	}
	b.WriteString("\n\n")

	b.WriteString(s.Success.Render(fmt.Sprintf("✓ %d", m.Successes)))
	if len(m.Errors) > 0 {
		b.WriteString("  " + s.Error.Render(fmt.Sprintf("✗ %d", len(m.Errors))))
	}
	b.WriteString("\n")

	for _, e := range m.Errors {
		b.WriteString(s.Error.Render("  "+e.Package) + s.Muted.Render(": "+e.Message) + "\n")
	}

	if m.CancelRequested {
		b.WriteString("\n" + s.Warning.Render("cancelling after current package…"))
	} else {
		b.WriteString("\n" + s.Muted.Render("esc cancel"))
	}
	return b.String()
}

// progressBar renders a [####----] bar of the given cell width.
func progressBar(done, total, cells int) string {
	s := Styles()
	if total <= 0 {
		total = 1
	}
	filled := done * cells / total
	if filled > cells {
		filled = cells
	}
	return s.Success.Render(strings.Repeat("█", filled)) +
		s.Muted.Render(strings.Repeat("░", cells-filled))
}
