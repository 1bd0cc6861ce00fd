// ABOUTME: Tests for toast expiry semantics and rendering

package tui

import (
	"strings"
	"testing"
	"time"
)

func TestToast_Expired(t *testing.T) {
	toast := NewToast("hello")

	if toast.Expired(time.Now()) {
		t.Error("Expired(now) = true for a fresh toast")
	}
	if !toast.Expired(toast.Expiry) {
		t.Error("Expired(expiry) = false; the boundary instant counts as expired")
	}
	if !toast.Expired(toast.Expiry.Add(time.Second)) {
		t.Error("Expired(after expiry) = false")
	}
}

func TestToast_Render(t *testing.T) {
	var none *Toast
	if got := none.render(); got != "" {
		t.Errorf("nil toast render = %q; want empty", got)
	}

	if got := NewToast("saved").render(); !strings.Contains(got, "saved") {
		t.Errorf("render = %q; want message text", got)
	}
}
