package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"

	"github.com/colonyops/zukan/internal/core/catalog"
	"github.com/colonyops/zukan/internal/core/forms"
	"github.com/colonyops/zukan/internal/core/notify"
	"github.com/colonyops/zukan/internal/core/styles"
	"github.com/colonyops/zukan/internal/tui/components"
	tuinotify "github.com/colonyops/zukan/internal/tui/notify"
	"github.com/colonyops/zukan/internal/zukan"
)

const notificationHistory = 50

type viewKind int

const (
	viewList viewKind = iota
	viewDetail
)

// overlay is the modal drawn over the current view. Only one is open at a
// time and it receives all key input.
type overlay int

const (
	overlayNone overlay = iota
	overlayEntryForm
	overlayImageForm
	overlayConfirm
	overlayPicker
	overlayHelp
	overlayInfo
)

// requestStatus is the outcome of the most recent API call.
type requestStatus struct {
	op  string
	err error
	at  time.Time
}

// Model is the root Bubble Tea model. It shows the collection list or the
// detail view of one collection.
type Model struct {
	ctx  context.Context
	deps Deps
	clip Clipboard

	width  int
	height int

	view    viewKind
	overlay overlay

	collections list.Model
	listLoading bool

	session *zukan.Session
	start   zukan.Ticket
	loading bool
	spinner spinner.Model

	desc     viewport.Model
	descKey  string
	markdown *glamour.TermRenderer
	mdWidth  int

	entryDialog   forms.EntryDialog
	entryForm     *entryForm
	imageDialog   forms.ImageDialog
	imageForm     *imageForm
	confirmDialog forms.ConfirmDialog
	confirm       components.ConfirmModal
	picker        *entryPicker
	help          *components.HelpDialog
	info          *components.InfoDialog

	bus        *tuinotify.Bus
	toasts     *ToastController
	toastView  *ToastView
	lastStatus *requestStatus

	quitting bool
}

// New creates the root model. When opts.CollectionID is set the TUI opens
// straight into that collection.
func New(ctx context.Context, deps Deps, opts Opts) Model {
	clip := deps.Clipboard
	if clip == nil {
		clip = systemClipboard{}
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	toasts := NewToastController()
	bus := tuinotify.NewBus(notify.NewMemoryStore(notificationHistory), deps.Log)
	bus.Subscribe(toasts.Push)

	m := Model{
		ctx:         ctx,
		deps:        deps,
		clip:        clip,
		width:       80,
		height:      24,
		collections: newCollectionList(),
		listLoading: true,
		session:     zukan.NewSession(opts.Mode, opts.Source),
		spinner:     s,
		desc:        viewport.New(),
		bus:         bus,
		toasts:      toasts,
		toastView:   NewToastView(toasts),
	}

	if opts.CollectionID != 0 {
		m.view = viewDetail
		m.listLoading = false
		m.loading = true
		m.start = m.session.OpenAs(opts.CollectionID, opts.Mode)
	}

	m.resize()
	return m
}

// Init starts the first fetch.
func (m Model) Init() tea.Cmd {
	if m.view == viewDetail {
		return tea.Batch(m.loadCmd(m.start), m.spinner.Tick)
	}
	return tea.Batch(m.loadCollectionsCmd(), m.spinner.Tick)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		next Model
		cmd  tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		next = m

	case collectionsLoadedMsg:
		next, cmd = m.handleCollectionsLoaded(msg)
	case refreshMsg:
		next, cmd = m.handleRefresh(msg)
	case mutationDoneMsg:
		next, cmd = m.handleMutationDone(msg)
	case fileLoadedMsg:
		next, cmd = m.handleFileLoaded(msg)
	case pastedMsg:
		next, cmd = m.handlePasted(msg)
	case copiedMsg:
		next, cmd = m.handleCopied(msg)

	case toastTickMsg:
		return m.handleToastTick()
	case spinner.TickMsg:
		if !m.loading && !m.listLoading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		next, cmd = m.handleKey(msg)

	default:
		next = m
		if next.view == viewList && next.overlay == overlayNone {
			next.collections, cmd = next.collections.Update(msg)
		}
	}

	next.syncDescription()
	return next, tea.Batch(cmd, next.ensureToastTick())
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// resize lays the widgets out for the current window.
func (m *Model) resize() {
	m.collections.SetSize(m.width, max(m.height-3, 1))
	if m.info != nil {
		m.info.SetSize(m.width, m.height)
	}
	m.descKey = ""
}

func (m Model) handleToastTick() (tea.Model, tea.Cmd) {
	m.toasts.Tick(toastTickInterval)
	if m.toasts.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toasts.SetTicking(false)
	return m, nil
}

// ensureToastTick starts the toast timer when a toast is showing and the
// timer is not already running.
func (m *Model) ensureToastTick() tea.Cmd {
	if !m.toasts.HasToasts() || m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

// record notes the outcome of an API call for the info dialog.
func (m *Model) record(op string, err error) {
	m.lastStatus = &requestStatus{op: op, err: err, at: time.Now()}
}

// fail records, logs and toasts a failed request.
func (m *Model) fail(op string, err error) {
	m.record(op, err)
	m.bus.Fail(op, err)
}

func (m Model) handleCollectionsLoaded(msg collectionsLoadedMsg) (Model, tea.Cmd) {
	m.listLoading = false
	if msg.err != nil {
		m.fail("list collections", msg.err)
		return m, nil
	}
	m.record("list collections", nil)
	return m, m.collections.SetItems(collectionItems(msg.items))
}

func (m Model) handleRefresh(msg refreshMsg) (Model, tea.Cmd) {
	r := msg.refresh
	if !m.session.IsCurrent(r.Ticket) {
		return m, nil
	}
	m.loading = false

	if r.Err != nil {
		m.fail("load collection", r.Err)
		return m, nil
	}
	m.record("load collection", nil)
	m.session.Apply(r)
	return m, nil
}

// collectionItem is one row of the collection list.
type collectionItem struct {
	summary catalog.CollectionSummary
}

func (i collectionItem) FilterValue() string { return i.summary.Name }

func collectionItems(items []catalog.CollectionSummary) []list.Item {
	out := make([]list.Item, len(items))
	for i, s := range items {
		out[i] = collectionItem{summary: s}
	}
	return out
}
