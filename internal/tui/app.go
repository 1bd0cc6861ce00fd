// ABOUTME: Root AppModel: view state machine, catalog ownership, key dispatch
// ABOUTME: The catalog is mutated only here; workers cross in via messages

package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/pkgscope/internal/catalog"
	"github.com/mauromedda/pkgscope/internal/scanner"
)

const tickInterval = 250 * time.Millisecond

// shared holds mutable state that must survive AppModel value copies.
// Bubble Tea copies the model on each Update; pointer fields are shared
// across copies. Update is single-threaded; goroutines only write back
// via Program.Send.
type shared struct {
	program *tea.Program
	batch   *batchRunner
	ctx     context.Context
	cancel  context.CancelFunc
}

// AppModel is the root Bubble Tea model for the dashboard.
type AppModel struct {
	sh *shared // survives value copies

	view    View
	catalog *catalog.Catalog
	deps    AppDeps

	// Orthogonal to the view: search mode and sidebar focus.
	searching bool
	sidebar   SidebarModel

	// Sub-models
	footer       FooterModel
	details      DetailsModel
	confirm      ConfirmModel
	updateSel    UpdateSelectModel
	sourcePicker SourcePickerModel
	progress     ProgressModel
	summary      SummaryModel
	help         HelpModel
	showHelp     bool
	toast        *Toast

	// Scan progress. scanGen identifies the current scan: a rescan bumps
	// it, and events stamped with an older generation are discarded.
	scanGen         int
	scanning        map[catalog.Source]bool
	scanDone        bool
	checkingUpdates bool

	loadingMessage string
	errorMessage   string

	tableOffset   int
	width, height int
}

// NewAppModel creates an AppModel wired with the given dependencies.
func NewAppModel(deps AppDeps) AppModel {
	ctx, cancel := context.WithCancel(context.Background())

	return AppModel{
		sh:       &shared{batch: &batchRunner{}, ctx: ctx, cancel: cancel},
		view:     ViewMain,
		catalog:  catalog.NewCatalog(),
		deps:     deps,
		sidebar:  NewSidebarModel(),
		footer:   NewFooterModel(),
		help:     NewHelpModel(),
		scanning: make(map[catalog.Source]bool),
	}
}

// Init schedules the UI tick. The initial scan pump is started by Run once
// the program reference exists.
func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.propagateSize(msg)
		return m, nil

	case TickMsg:
		if m.toast != nil && m.toast.Expired(msg.Time) {
			m.toast = nil
		}
		return m, tickCmd()

	// --- Scan stream. Stale-generation events come from a scan that a
	// rescan abandoned; applying them would duplicate rows in the reset
	// catalog, so they are dropped. ---
	case ScanStartedMsg:
		if msg.Gen != m.scanGen {
			return m, nil
		}
		m.scanning[msg.Source] = true
		return m, nil

	case ScanPackagesMsg:
		if msg.Gen != m.scanGen {
			return m, nil
		}
		m.catalog.AddPackages(msg.Packages)
		m.tableOffset = clampOffset(m.catalog.Selected(), m.tableOffset, m.tableRows())
		return m, nil

	case ScanCompletedMsg:
		if msg.Gen != m.scanGen {
			return m, nil
		}
		delete(m.scanning, msg.Source)
		return m, nil

	case ScanDoneMsg:
		if msg.Gen != m.scanGen {
			return m, nil
		}
		m.scanDone = true
		clear(m.scanning)
		return m, nil

	// --- Update reconciliation ---
	case UpdatesCheckedMsg:
		m.checkingUpdates = false
		m.catalog.ApplyUpdates(msg.Updates)
		m.toast = NewToast(fmt.Sprintf("%d updates available", m.catalog.UpdateCount()))
		return m, nil

	// --- Single mutation result ---
	case MutationDoneMsg:
		return m.handleMutationDone(msg)

	case CleanDoneMsg:
		if msg.Err != nil {
			m.view = ViewError
			m.errorMessage = "Clean failed: " + msg.Err.Error()
		} else {
			m.view = ViewMain
			m.toast = NewToast("Cleaned package caches")
		}
		return m, nil

	// --- Batch updates ---
	case BatchProgressMsg:
		m.progress = m.progress.Record(msg)
		return m, nil

	case BatchDoneMsg:
		m.summary = NewSummaryModel(m.progress, msg.Cancelled)
		m.view = ViewUpdateSummary
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// propagateSize forwards the window size to every sub-model.
func (m AppModel) propagateSize(msg tea.WindowSizeMsg) AppModel {
	if f, _ := m.footer.Update(msg); f != nil {
		m.footer = f.(FooterModel)
	}
	if s, _ := m.sidebar.Update(msg); s != nil {
		m.sidebar = s.(SidebarModel)
	}
	if d, _ := m.details.Update(msg); d != nil {
		m.details = d.(DetailsModel)
	}
	m.updateSel, _ = m.updateSel.Update(msg)
	m.help, _ = m.help.Update(msg)
	m.tableOffset = clampOffset(m.catalog.Selected(), m.tableOffset, m.tableRows())
	return m
}

// tableRows returns the number of package rows that fit the viewport.
func (m AppModel) tableRows() int {
	// tabs + table header + toast line + two footer lines
	rows := m.height - 5
	if rows < 1 {
		rows = 1
	}
	return rows
}

// handleKey dispatches a key press by view, after global shortcuts.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.sh.cancel()
		return m, tea.Quit
	}

	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		default:
			m.help, _ = m.help.Update(msg)
		}
		return m, nil
	}

	switch m.view {
	case ViewMain:
		return m.handleMainKey(msg)
	case ViewDetails:
		return m.handleDetailsKey(msg)
	case ViewConfirm:
		return m.handleConfirmKey(msg)
	case ViewUpdateSelect:
		return m.handleUpdateSelectKey(msg)
	case ViewUpdateBySource:
		return m.handleSourcePickerKey(msg)
	case ViewUpdateProgress:
		return m.handleProgressKey(msg)
	case ViewCancelConfirm:
		return m.handleCancelConfirmKey(msg)
	case ViewUpdateSummary:
		return m.handleSummaryKey(msg)
	case ViewLoading:
		// Input is deliberately ignored while a mutation is in flight.
		return m, nil
	case ViewError:
		return m.handleErrorKey(msg)
	}
	return m, nil
}

func (m AppModel) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.sidebar.Focused() {
		return m.handleSidebarKey(msg)
	}

	switch msg.String() {
	case "q", "esc":
		m.sh.cancel()
		return m, tea.Quit
	case "up", "k":
		m.catalog.SelectPrev()
	case "down", "j":
		m.catalog.SelectNext()
	case "home", "g":
		m.catalog.SelectFirst()
	case "end", "G":
		m.catalog.SelectLast()
	case "pgup":
		m.catalog.PageUp(m.tableRows())
	case "pgdown":
		m.catalog.PageDown(m.tableRows())
	case "tab":
		m.catalog.NextTab()
	case "shift+tab":
		m.catalog.PrevTab()
	case "s":
		m.catalog.ToggleSort()
	case "f":
		m.catalog.ToggleTypeFilter()
	case "/":
		m.searching = true
	case "ctrl+u":
		m.catalog.ClearSearch()
	case "left", "h":
		m.sidebar = m.sidebar.SetFocused(true)
	case "enter":
		if pkg, ok := m.catalog.SelectedPackage(); ok {
			m.details = NewDetailsModel(pkg)
			m.view = ViewDetails
		}
	case "d":
		return m.requestConfirm(ActionUninstall), nil
	case "u":
		return m.requestConfirm(ActionUpdate), nil
	case "c":
		return m.startUpdateCheck()
	case "U":
		if m.catalog.UpdateCount() > 0 {
			m.updateSel = NewUpdateSelectModel(m.catalog.Packages())
			m.view = ViewUpdateSelect
		} else {
			m.toast = NewToast("No pending updates — press c to check")
		}
	case "r":
		m = m.startScan()
	case "?":
		m.showHelp = true
	}

	m.tableOffset = clampOffset(m.catalog.Selected(), m.tableOffset, m.tableRows())
	return m, nil
}

func (m AppModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.catalog.ClearSearch()
	case "enter":
		m.searching = false
	case "backspace":
		m.catalog.SearchBackspace()
	case "ctrl+u":
		m.catalog.ClearSearch()
	default:
		if msg.Type == tea.KeyRunes {
			m.catalog.SearchInput(string(msg.Runes))
		}
	}
	m.tableOffset = clampOffset(m.catalog.Selected(), m.tableOffset, m.tableRows())
	return m, nil
}

func (m AppModel) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "right", "l":
		m.sidebar = m.sidebar.SetFocused(false)
	case "up", "k":
		m.sidebar = m.sidebar.SelectPrev()
	case "down", "j":
		m.sidebar = m.sidebar.SelectNext()
	case "q":
		m.sh.cancel()
		return m, tea.Quit
	case "enter":
		return m.runSidebarAction()
	}
	return m, nil
}

// runSidebarAction dispatches the focused sidebar section.
func (m AppModel) runSidebarAction() (tea.Model, tea.Cmd) {
	m.sidebar = m.sidebar.SetFocused(false)

	switch m.sidebar.Section() {
	case SectionDelete:
		return m.requestConfirm(ActionUninstall), nil
	case SectionUpdate:
		m.sourcePicker = NewSourcePickerModel(m.catalog)
		m.view = ViewUpdateBySource
	case SectionInstall:
		m.toast = NewToast("Install new software with apt, snap or flatpak; pkgscope manages what is installed")
	case SectionClean:
		apt, ok := scanner.ForSource(m.deps.Orchestrator.Scanners(), catalog.SourceApt).(*scanner.AptScanner)
		if !ok {
			m.toast = NewToast("apt is not available on this system")
			return m, nil
		}
		m.view = ViewLoading
		m.loadingMessage = "Cleaning package caches..."
		return m, cleanCmd(apt)
	}
	return m, nil
}

func (m AppModel) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.view = ViewMain
	case "d":
		return m.requestConfirm(ActionUninstall), nil
	case "u":
		return m.requestConfirm(ActionUpdate), nil
	default:
		if d, _ := m.details.Update(msg); d != nil {
			m.details = d.(DetailsModel)
		}
	}
	return m, nil
}

// requestConfirm gates the confirm dialog: a selection must exist, and
// Update additionally requires a known pending update.
func (m AppModel) requestConfirm(action ConfirmAction) AppModel {
	pkg, ok := m.catalog.SelectedPackage()
	if !ok {
		return m
	}
	if action == ActionUpdate && !pkg.UpdateAvailable() {
		m.toast = NewToast(pkg.Name + " has no pending update")
		return m
	}
	m.confirm = ConfirmModel{Action: action, Package: pkg}
	m.view = ViewConfirm
	return m
}

func (m AppModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		pkg := m.confirm.Package
		s := scanner.ForSource(m.deps.Orchestrator.Scanners(), pkg.Source)
		if s == nil {
			m.view = ViewError
			m.errorMessage = fmt.Sprintf("no scanner for source %s", pkg.Source)
			return m, nil
		}
		m.view = ViewLoading
		m.loadingMessage = fmt.Sprintf("%s %s...", m.confirm.Action.Label(), pkg.Name)
		return m, mutationCmd(m.confirm.Action, s, pkg)
	case "n", "N", "esc":
		m.view = ViewMain
	}
	return m, nil
}

// handleMutationDone applies a finished single mutation.
func (m AppModel) handleMutationDone(msg MutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.view = ViewError
		m.errorMessage = fmt.Sprintf("%s failed: %v", msg.Action.Label(), msg.Err)
		return m, nil
	}

	switch msg.Action {
	case ActionUninstall:
		m.catalog.Remove(msg.Package.Name, msg.Package.Source)
		m.toast = NewToast("Removed " + msg.Package.Name)
		m.view = ViewMain
		m.tableOffset = clampOffset(m.catalog.Selected(), m.tableOffset, m.tableRows())
		return m, nil
	default:
		// A successful update changes version and size; rescan to refresh.
		m.toast = NewToast("Updated " + msg.Package.Name)
		m.view = ViewMain
		m = m.startScan()
		return m, nil
	}
}

func (m AppModel) handleUpdateSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		if m.updateSel.filtering || m.updateSel.filter != "" {
			break // let the list clear its filter first
		}
		m.view = ViewMain
		return m, nil
	case "enter":
		if m.updateSel.filtering {
			break
		}
		work := m.updateSel.Selected()
		if len(work) == 0 {
			m.toast = NewToast("Nothing selected")
			m.view = ViewMain
			return m, nil
		}
		return m.startBatch(work), nil
	}
	m.updateSel, _ = m.updateSel.Update(msg)
	return m, nil
}

func (m AppModel) handleSourcePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.view = ViewMain
	case "enter":
		// Snapshot semantics: the work list is fixed here and never
		// re-evaluated mid-run.
		var work []catalog.Package
		pkgs := m.catalog.Packages()
		for _, idx := range m.catalog.UpdatableIndices(m.sourcePicker.Chosen()) {
			work = append(work, pkgs[idx])
		}
		if len(work) == 0 {
			m.toast = NewToast("No pending updates for " + m.sourcePicker.Chosen().Label())
			m.view = ViewMain
			return m, nil
		}
		// confirm_batch routes through the review list; the user confirms
		// the selection with enter there.
		if m.deps.Settings.ConfirmBeforeBatch() {
			m.updateSel = NewUpdateSelectModel(work)
			m.view = ViewUpdateSelect
			return m, nil
		}
		return m.startBatch(work), nil
	default:
		m.sourcePicker, _ = m.sourcePicker.Update(msg)
	}
	return m, nil
}

// startBatch snapshots the work list and launches the worker.
func (m AppModel) startBatch(work []catalog.Package) AppModel {
	m.progress = NewProgressModel(len(work))
	m.view = ViewUpdateProgress
	m.sh.batch.Start(m.send, m.deps.Orchestrator.Scanners(), work)
	return m
}

func (m AppModel) handleProgressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "c", "q":
		if !m.progress.CancelRequested {
			m.view = ViewCancelConfirm
		}
	}
	return m, nil
}

func (m AppModel) handleCancelConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.sh.batch.Cancel()
		m.progress.CancelRequested = true
		m.view = ViewUpdateProgress
	case "n", "N", "esc":
		m.view = ViewUpdateProgress
	}
	return m, nil
}

func (m AppModel) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q":
		m.view = ViewMain
		if m.summary.Successes > 0 {
			// Versions and sizes changed; refresh the catalog.
			m = m.startScan()
		}
	}
	return m, nil
}

func (m AppModel) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.errorMessage = ""
		m.view = ViewMain
	case "q":
		m.sh.cancel()
		return m, tea.Quit
	}
	return m, nil
}

// startUpdateCheck kicks off concurrent update queries.
func (m AppModel) startUpdateCheck() (tea.Model, tea.Cmd) {
	if m.checkingUpdates {
		return m, nil
	}
	m.checkingUpdates = true
	orch := m.deps.Orchestrator
	ctx := m.sh.ctx
	return m, func() tea.Msg {
		return UpdatesCheckedMsg{Updates: orch.CheckAllUpdates(ctx)}
	}
}

// startScan resets the catalog, invalidates the previous scan's events by
// bumping the generation, and launches a fresh streaming scan.
func (m AppModel) startScan() AppModel {
	m.catalog.SetPackages(nil)
	m.scanGen++
	m.scanDone = false
	clear(m.scanning)
	m.tableOffset = 0
	if m.sh.program != nil {
		go pumpScanEvents(m.sh.program, m.deps.Orchestrator.ScanAllStreaming(m.sh.ctx), m.scanGen)
	}
	return m
}

// send forwards a message into the program loop. Used by workers.
func (m AppModel) send(msg tea.Msg) {
	if m.sh.program != nil {
		m.sh.program.Send(msg)
	}
}

// scanStatus builds the footer scan indicator.
func (m AppModel) scanStatus() string {
	if m.checkingUpdates {
		return "checking updates…"
	}
	if m.scanDone {
		return ""
	}
	if len(m.scanning) == 0 {
		return "starting scan…"
	}
	names := make([]string, 0, len(m.scanning))
	for src := range m.scanning {
		names = append(names, src.String())
	}
	sort.Strings(names)
	return "scanning " + strings.Join(names, ", ")
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.width == 0 {
		return ""
	}
	if m.showHelp {
		return m.help.View()
	}

	s := Styles()
	switch m.view {
	case ViewDetails:
		return m.details.View()
	case ViewConfirm:
		return m.centered(m.confirm.View())
	case ViewCancelConfirm:
		return m.centered(CancelConfirmModel{Remaining: m.progress.Remaining()}.View())
	case ViewUpdateSelect:
		return m.updateSel.View()
	case ViewUpdateBySource:
		return m.sourcePicker.View()
	case ViewUpdateProgress:
		return m.progress.View()
	case ViewUpdateSummary:
		return m.summary.View()
	case ViewLoading:
		return m.centered(s.Info.Render(m.loadingMessage))
	case ViewError:
		return m.centered(dialogBox(s.Error.Render(m.errorMessage) + "\n\n" +
			s.Muted.Render("enter dismiss  q quit")))
	}
	return m.mainView()
}

// mainView composes tabs, sidebar, table, toast and footer.
func (m AppModel) mainView() string {
	tableWidth := m.width - sidebarWidth - 1
	if tableWidth < 20 {
		tableWidth = m.width
	}

	tabs := renderTabs(m.catalog.SourceTab())
	table := renderTable(m.catalog, tableWidth, m.tableRows()+1, m.tableOffset)

	body := table
	if tableWidth != m.width {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), " ", table)
	}

	footer := m.footer.
		WithStats(m.catalog.Stats()).
		WithUpdateCount(m.catalog.UpdateCount()).
		WithSortLabel(m.catalog.Sort().Label()).
		WithFilterLabel(m.catalog.TypeFilter().Label()).
		WithSearch(m.catalog.Search(), m.searching).
		WithScanStatus(m.scanStatus()).
		View()

	return tabs + "\n" + body + "\n" + m.toast.render() + "\n" + footer
}

// centered places content in the middle of the screen.
func (m AppModel) centered(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
