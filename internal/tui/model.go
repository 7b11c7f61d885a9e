package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"github.com/colonyops/parlor/internal/core/catalog"
	"github.com/colonyops/parlor/internal/core/config"
	"github.com/colonyops/parlor/internal/data/catalogfile"
	"github.com/colonyops/parlor/pkg/kv"
)

// Messages produced by commands outside the key/resize flow.
type (
	// reloadRequestMsg arrives when the catalog watcher saw a change.
	reloadRequestMsg struct{}
	// catalogReloadedMsg carries a freshly loaded catalog.
	catalogReloadedMsg struct {
		cat catalogfile.Catalog
	}
	// reloadFailedMsg reports a reload that could not complete. The panel
	// keeps showing the previous catalog.
	reloadFailedMsg struct {
		err error
	}
)

// Deps wires the panel to its collaborators. Providers and Reviews are the
// externally supplied collections; the panel never mutates them.
type Deps struct {
	Config    *config.Config
	Providers []catalog.Provider
	Reviews   []catalog.Review

	// Reload re-reads the catalog from disk. nil disables the reload key
	// and watcher-driven refresh.
	Reload func() (catalogfile.Catalog, error)
	// ReloadEvents delivers change notifications from the catalog watcher.
	ReloadEvents <-chan struct{}

	Logger zerolog.Logger
}

// Model is the Bubble Tea model for the review panel.
//
// The model owns the authoritative selection value; the embedded rail only
// requests changes through its callback, mirroring the parent/child split
// the panel has when embedded in a larger host.
type Model struct {
	cfg  *config.Config
	deps Deps
	log  zerolog.Logger

	providers []catalog.Provider
	reviews   []catalog.Review

	selection string // provider id, "" = show all; owned here
	requested *string
	filter    catalog.FilterMode

	registry  *kv.Store[string, ControlBox]
	rail      *ProviderRail
	indicator *Indicator
	emphasis  *Emphasis

	reviewList list.Model
	summary    catalog.Summary

	detail     *DetailModal
	filterForm *huh.Form

	keys     KeyMap
	help     help.Model
	width    int
	height   int
	statusMsg string
	quitting  bool
}

// New builds the panel model from its dependencies.
func New(deps Deps) *Model {
	initialFilter, _ := catalog.ParseFilterMode(deps.Config.TUI.InitialFilter)

	m := &Model{
		cfg:       deps.Config,
		deps:      deps,
		log:       deps.Logger,
		providers: deps.Providers,
		reviews:   deps.Reviews,
		filter:    initialFilter,
		registry:  kv.New[string, ControlBox](),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}

	m.rail = NewProviderRail(m.registry, m.requestSelection)
	m.rail.SetProviders(deps.Providers)

	anim := deps.Config.Animation
	m.indicator = NewIndicator(m.registry, anim.Slide(), anim.Width())
	m.emphasis = NewEmphasis(anim.Emphasis())

	m.reviewList = newReviewList(80, 20)
	m.refreshReviews()

	return m
}

// requestSelection is the rail's selection-change callback. The rail has no
// say in whether the request is honored; this owner applies it.
func (m *Model) requestSelection(id string) {
	m.requested = &id
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	// Place the indicator before the first frame.
	m.rail.Measure()
	m.indicator.Retarget(m.rail.SelectedKey(), time.Now())

	return listenReload(m.deps.ReloadEvents)
}

// listenReload waits for the next watcher notification.
func listenReload(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return reloadRequestMsg{}
	}
}

// reloadCatalog re-reads the catalog off the event loop.
func (m *Model) reloadCatalog() tea.Cmd {
	reload := m.deps.Reload
	if reload == nil {
		return nil
	}
	return func() tea.Msg {
		cat, err := reload()
		if err != nil {
			return reloadFailedMsg{err: err}
		}
		return catalogReloadedMsg{cat: cat}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleResize(msg)

	case frameTickMsg:
		if m.indicator.Advance(time.Time(msg)) {
			return m, scheduleFrameTick(m.cfg.Animation.FrameInterval())
		}
		return m, nil

	case emphasisExpiredMsg:
		m.emphasis.Expire(msg)
		return m, nil

	case reloadRequestMsg:
		return m, tea.Batch(m.reloadCatalog(), listenReload(m.deps.ReloadEvents))

	case catalogReloadedMsg:
		return m, m.applyCatalog(msg.cat)

	case reloadFailedMsg:
		m.log.Error().Err(msg.err).Msg("catalog reload failed")
		m.statusMsg = "reload failed: " + msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Non-key messages may still belong to an open form (e.g. blink ticks).
	if m.filterForm != nil {
		return m, m.updateFilterForm(msg)
	}
	return m, nil
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	m.width = msg.Width
	m.height = msg.Height

	m.rail.SetWidth(msg.Width)
	m.help.Width = msg.Width
	m.reviewList.SetSize(msg.Width, listHeight(msg.Height))
	if m.detail != nil {
		m.detail.Resize(msg.Width, msg.Height)
	}

	// Controls may have moved; re-measure before retargeting so the
	// indicator never reads a stale layout.
	m.rail.Measure()
	m.indicator.Retarget(m.rail.SelectedKey(), time.Now())
	if m.indicator.Animating() {
		return scheduleFrameTick(m.cfg.Animation.FrameInterval())
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open form owns the keyboard until it completes or aborts.
	if m.filterForm != nil {
		return m, m.updateFilterForm(msg)
	}

	// The detail modal only scrolls and closes.
	if m.detail != nil {
		switch msg.String() {
		case "esc", "q", "o":
			m.detail = nil
			return m, nil
		default:
			return m, m.detail.Update(msg)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.rail.MoveLeft()
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.rail.MoveRight()
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		m.rail.Activate()
		return m, m.applyRequestedSelection()

	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.String()[0] - '0')
		m.rail.ActivateIndex(idx)
		return m, m.applyRequestedSelection()

	case key.Matches(msg, m.keys.Filter):
		m.filterForm = newFilterForm(&m.filter)
		return m, m.filterForm.Init()

	case key.Matches(msg, m.keys.Cycle):
		m.cycleFilter()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		return m, m.openDetail()

	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadCatalog()
	}

	var cmd tea.Cmd
	m.reviewList, cmd = m.reviewList.Update(msg)
	return m, cmd
}

// applyRequestedSelection applies a pending selection request, if any. The
// rail requested it; this is where the owner decides.
func (m *Model) applyRequestedSelection() tea.Cmd {
	if m.requested == nil {
		return nil
	}
	next := *m.requested
	m.requested = nil

	if next == m.selection {
		return nil
	}
	m.selection = next
	m.rail.SetSelected(next)
	m.refreshReviews()

	// Selection changed: re-measure, slide the indicator, light the
	// emphasis window (restarting any window already open).
	m.rail.Measure()
	m.indicator.Retarget(m.rail.SelectedKey(), time.Now())

	cmds := []tea.Cmd{m.emphasis.Trigger()}
	if m.indicator.Animating() {
		cmds = append(cmds, scheduleFrameTick(m.cfg.Animation.FrameInterval()))
	}
	return tea.Batch(cmds...)
}

func (m *Model) cycleFilter() {
	modes := catalog.Modes()
	for i, mode := range modes {
		if mode == m.filter {
			m.filter = modes[(i+1)%len(modes)]
			m.refreshReviews()
			return
		}
	}
	m.filter = catalog.FilterAll
	m.refreshReviews()
}

func (m *Model) updateFilterForm(msg tea.Msg) tea.Cmd {
	form, cmd := m.filterForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.filterForm = f
	}

	switch m.filterForm.State {
	case huh.StateCompleted:
		m.filterForm = nil
		m.refreshReviews()
	case huh.StateAborted:
		m.filterForm = nil
	}
	return cmd
}

func (m *Model) openDetail() tea.Cmd {
	item, ok := m.reviewList.SelectedItem().(ReviewItem)
	if !ok {
		return nil
	}

	detail, err := NewDetailModal(item.Review, m.providerName(item.Review.ProviderID), m.width, m.height)
	if err != nil {
		m.log.Error().Err(err).Str("review", item.Review.ID).Msg("failed to open review detail")
		return nil
	}
	m.detail = detail
	return nil
}

func (m *Model) providerName(id string) string {
	for _, p := range m.providers {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

// refreshReviews recomputes the derived view: the filtered subset and its
// summary. Pure and cheap, so it simply reruns on every relevant change.
func (m *Model) refreshReviews() {
	filtered := catalog.Filter(m.reviews, m.selection, m.filter)
	m.summary = catalog.Summarize(filtered)
	m.reviewList.SetItems(reviewItems(filtered))
}

// applyCatalog swaps in a reloaded catalog, clearing the selection only if
// the selected provider disappeared. The reload can move controls or change
// the selection, so it drives the indicator and emphasis the same way a
// user-initiated change does.
func (m *Model) applyCatalog(cat catalogfile.Catalog) tea.Cmd {
	m.providers = cat.Providers
	m.reviews = cat.Reviews
	m.rail.SetProviders(cat.Providers)
	m.statusMsg = ""

	var cmds []tea.Cmd
	if m.selection != "" && m.providerName(m.selection) == "" {
		m.selection = ""
		m.rail.SetSelected("")
		cmds = append(cmds, m.emphasis.Trigger())
	}
	m.refreshReviews()

	m.rail.Measure()
	m.indicator.Retarget(m.rail.SelectedKey(), time.Now())
	if m.indicator.Animating() {
		cmds = append(cmds, scheduleFrameTick(m.cfg.Animation.FrameInterval()))
	}

	m.log.Debug().
		Int("providers", len(cat.Providers)).
		Int("reviews", len(cat.Reviews)).
		Msg("catalog reloaded")

	return tea.Batch(cmds...)
}

// Selection exposes the authoritative selection value, mainly for tests.
func (m *Model) Selection() string {
	return m.selection
}

// Filter exposes the active quality filter, mainly for tests.
func (m *Model) Filter() catalog.FilterMode {
	return m.filter
}
