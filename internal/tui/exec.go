// ABOUTME: tea.Exec bridge for single privileged mutations
// ABOUTME: Bubble Tea releases the terminal while the mutation (and its
// ABOUTME: authentication prompt) runs, and reacquires it on every exit path

package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pkgscope/internal/catalog"
	"github.com/mauromedda/pkgscope/internal/scanner"
)

// mutationExec adapts a scanner mutation to tea.ExecCommand.
type mutationExec struct {
	run func() error
}

func (c *mutationExec) Run() error          { return c.run() }
func (c *mutationExec) SetStdin(io.Reader)  {}
func (c *mutationExec) SetStdout(io.Writer) {}
func (c *mutationExec) SetStderr(io.Writer) {}

// mutationCmd runs one uninstall or update through tea.Exec and reports the
// result as a MutationDoneMsg.
func mutationCmd(action ConfirmAction, s scanner.Scanner, pkg catalog.Package) tea.Cmd {
	return tea.Exec(&mutationExec{run: func() error {
		ctx := context.Background()
		if action == ActionUninstall {
			return s.Uninstall(ctx, pkg)
		}
		return s.Update(ctx, pkg)
	}}, func(err error) tea.Msg {
		return MutationDoneMsg{Action: action, Package: pkg, Err: err}
	})
}

// cleanCmd runs apt cache cleanup through tea.Exec so the authentication
// prompt gets the terminal.
func cleanCmd(apt *scanner.AptScanner) tea.Cmd {
	return tea.Exec(&mutationExec{run: func() error {
		return apt.Clean(context.Background())
	}}, func(err error) tea.Msg {
		return CleanDoneMsg{Err: err}
	})
}
