// ABOUTME: View state machine enums: View, ConfirmAction, SidebarSection
// ABOUTME: Pure state types; transitions live in app.go

package tui

// View identifies the active screen of the state machine.
type View int

const (
	// ViewMain is the package table with tabs, sidebar and footer.
	ViewMain View = iota
	// ViewDetails shows one package full-screen with scrolling.
	ViewDetails
	// ViewConfirm asks y/n before a single mutation.
	ViewConfirm
	// ViewUpdateSelect is the multi-select list of updatable packages.
	ViewUpdateSelect
	// ViewUpdateBySource picks a source whose updates to batch.
	ViewUpdateBySource
	// ViewUpdateProgress shows a running batch update.
	ViewUpdateProgress
	// ViewUpdateSummary shows batch results.
	ViewUpdateSummary
	// ViewCancelConfirm asks y/n before cancelling a running batch.
	ViewCancelConfirm
	// ViewLoading blocks input during a synchronous mutation.
	ViewLoading
	// ViewError shows a failure message until dismissed.
	ViewError
)

// String returns the view name for logs and tests.
func (v View) String() string {
	switch v {
	case ViewMain:
		return "main"
	case ViewDetails:
		return "details"
	case ViewConfirm:
		return "confirm"
	case ViewUpdateSelect:
		return "update-select"
	case ViewUpdateBySource:
		return "update-by-source"
	case ViewUpdateProgress:
		return "update-progress"
	case ViewUpdateSummary:
		return "update-summary"
	case ViewCancelConfirm:
		return "cancel-confirm"
	case ViewLoading:
		return "loading"
	case ViewError:
		return "error"
	default:
		return "unknown"
	}
}

// ConfirmAction is the pending single-package mutation.
type ConfirmAction int

const (
	ActionUninstall ConfirmAction = iota
	ActionUpdate
)

// Label returns the verb shown in the confirm dialog.
func (a ConfirmAction) Label() string {
	if a == ActionUpdate {
		return "Update"
	}
	return "Uninstall"
}

// SidebarSection is one entry of the action sidebar.
type SidebarSection int

const (
	SectionDelete SidebarSection = iota
	SectionUpdate
	SectionInstall
	SectionClean
)

// Next cycles forward through the sidebar sections.
func (s SidebarSection) Next() SidebarSection {
	return (s + 1) % 4
}

// Prev cycles backward through the sidebar sections.
func (s SidebarSection) Prev() SidebarSection {
	return (s + 3) % 4
}

// Label returns the sidebar entry text.
func (s SidebarSection) Label() string {
	switch s {
	case SectionDelete:
		return "Delete"
	case SectionUpdate:
		return "Update"
	case SectionInstall:
		return "Install"
	case SectionClean:
		return "Clean"
	default:
		return "?"
	}
}
