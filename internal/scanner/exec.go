// ABOUTME: Small os/exec helpers shared by the concrete scanners
// ABOUTME: Output capture, exit-status runs, and pkexec-wrapped privileged runs

package scanner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// runOutput runs a command and returns its stdout. A non-zero exit is an
// error carrying the trimmed stderr for context.
func runOutput(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %s", name, msg)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(out), nil
}

// runStatus runs a command and reports only success or failure.
func runStatus(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("%s exited with error: %s", name, lastLine(msg))
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// runPrivileged runs a command through pkexec so the polkit agent can prompt
// for elevation. The prompt itself is the agent's business; we only see the
// exit status.
func runPrivileged(ctx context.Context, args ...string) error {
	return runStatus(ctx, "pkexec", args...)
}

// commandExists probes PATH for a tool without running it.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// lastLine keeps error messages to a single line for the Error view.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}
