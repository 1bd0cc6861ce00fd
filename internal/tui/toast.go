// ABOUTME: Toast notification with absolute expiry timestamp
// ABOUTME: Cleared by the UI tick once now >= expiry, independent of other state

package tui

import "time"

const toastDuration = 3 * time.Second

// Toast is a transient status message.
type Toast struct {
	Message string
	Expiry  time.Time
}

// NewToast creates a toast expiring after the standard duration.
func NewToast(message string) *Toast {
	return &Toast{Message: message, Expiry: time.Now().Add(toastDuration)}
}

// Expired reports whether the toast should be cleared at the given time.
func (t *Toast) Expired(now time.Time) bool {
	return !now.Before(t.Expiry)
}

// render draws the toast line, or "" when nil.
func (t *Toast) render() string {
	if t == nil {
		return ""
	}
	s := Styles()
	return s.Accent.Render(" " + t.Message + " ")
}
