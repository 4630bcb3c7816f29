// Package app is the desktop shell: it owns the window store, keeps one
// frame per entity, routes pointer and keyboard input, and paints the
// menu bar, windows, dock and dialogs.
package app

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/kmacinski/folio/internal/apps"
	"github.com/kmacinski/folio/internal/clock"
	"github.com/kmacinski/folio/internal/content"
	"github.com/kmacinski/folio/internal/drag"
	"github.com/kmacinski/folio/internal/layout"
	"github.com/kmacinski/folio/internal/ui"
	"github.com/kmacinski/folio/internal/watcher"
	"github.com/kmacinski/folio/internal/window"
	"github.com/kmacinski/folio/internal/wm"
)

const statusDuration = 3 * time.Second

// Options configures the shell. Zero values fall back to the defaults.
type Options struct {
	Metrics     layout.Metrics
	Zoom        layout.ZoomConfig
	DoubleClick time.Duration

	ContentPath string
	Watch       bool
	Debounce    time.Duration

	Styles    *ui.Styles
	Clock     clock.Clock
	Logger    zerolog.Logger
	Clipboard func(string) error
	Version   string
}

// App is the main application model
type App struct {
	state  *State
	store  *wm.Store
	router *drag.Router
	layout *layout.Manager
	styles ui.Styles
	clock  clock.Clock
	root   zerolog.Logger
	log    zerolog.Logger

	doc    *content.Document
	frames map[string]*window.Frame
	help   *window.Help

	doubleClick time.Duration
	contentPath string
	watch       bool
	debounce    time.Duration
	clipboard   func(string) error
	version     string

	now    time.Time
	width  int
	height int

	// File watcher
	watcher *watcher.Watcher
	program *tea.Program
}

// New creates the shell around a portfolio document
func New(doc *content.Document, opts Options) *App {
	if doc == nil {
		doc = content.Default()
	}
	if opts.Metrics == (layout.Metrics{}) {
		opts.Metrics = layout.DefaultMetrics
	}
	if opts.Zoom == (layout.ZoomConfig{}) {
		opts.Zoom = layout.DefaultZoom
	}
	if opts.DoubleClick == 0 {
		opts.DoubleClick = drag.DefaultDoubleActivate
	}
	if opts.Debounce == 0 {
		opts.Debounce = 300 * time.Millisecond
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	styles := ui.DefaultStyles
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	log := opts.Logger.With().Str("component", "app").Logger()

	return &App{
		state:       NewState(),
		store:       wm.NewStore(wm.WithLogger(opts.Logger)),
		router:      drag.NewRouter(),
		layout:      layout.NewManager(opts.Metrics, opts.Zoom),
		styles:      styles,
		clock:       opts.Clock,
		root:        opts.Logger,
		log:         log,
		doc:         doc,
		frames:      make(map[string]*window.Frame),
		help:        window.NewHelp(styles),
		doubleClick: opts.DoubleClick,
		contentPath: opts.ContentPath,
		watch:       opts.Watch,
		debounce:    opts.Debounce,
		clipboard:   opts.Clipboard,
		version:     opts.Version,
		now:         opts.Clock.Now(),
	}
}

// Store exposes the window store
func (a *App) Store() *wm.Store {
	return a.store
}

// Frame returns the frame for an entity id
func (a *App) Frame(id string) (*window.Frame, bool) {
	f, ok := a.frames[id]
	return f, ok
}

// State returns the UI state
func (a *App) State() *State {
	return a.state
}

// Zoom returns the current page zoom
func (a *App) Zoom() float64 {
	return a.layout.Zoom()
}

// SetProgram sets the tea.Program reference for sending messages from watcher
func (a *App) SetProgram(p *tea.Program) {
	a.program = p

	if !a.watch || a.contentPath == "" {
		return
	}
	w, err := watcher.New(a.contentPath, a.debounce, func() {
		if a.program != nil {
			a.program.Send(ContentChangedMsg{})
		}
	}, a.root)
	if err != nil {
		a.log.Warn().Err(err).Msg("content watcher disabled")
		return
	}
	a.watcher = w
	a.watcher.Start()
}

// Cleanup stops the watcher and releases any live pointer capture
func (a *App) Cleanup() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	for _, f := range a.frames {
		f.Teardown()
	}
}

// Init starts the clock
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.tick(), tea.SetWindowTitle(a.doc.Name))
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles messages, then reconciles frames with the store
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.sync()
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout.Resize(msg.Width, msg.Height)
		return nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.BlurMsg:
		a.cancelDrag()
		return nil

	case TickMsg:
		a.now = time.Time(msg)
		a.state.ExpireStatus(a.clock.Now())
		return a.tick()

	case apps.LaunchMsg:
		a.launch(msg.Kind)
		return nil

	case ContentChangedMsg:
		return a.reloadContent()

	case ContentLoadedMsg:
		a.setDocument(msg.Doc)
		a.setStatus("Portfolio reloaded")
		return nil

	case ClipboardMsg:
		if msg.Err != nil {
			a.log.Warn().Err(msg.Err).Msg("clipboard write failed")
			return nil
		}
		a.setStatus("Copied to clipboard")
		return nil

	case ErrorMsg:
		a.log.Error().Err(msg.Err).Msg("background operation failed")
		a.setStatus(msg.Err.Error())
		return nil
	}

	return a.forwardToTopmost(msg)
}

// sync creates a frame for every new entity, tears down frames whose
// entity is gone, and moves focus to the topmost visible window
func (a *App) sync() {
	snap := a.store.Windows()

	for id, f := range a.frames {
		if _, ok := snap.Get(id); !ok {
			f.Teardown()
			delete(a.frames, id)
			if a.state.SelectedID == id {
				a.state.ClearSelection()
			}
		}
	}

	for _, e := range snap.All() {
		if _, ok := a.frames[e.ID]; ok {
			continue
		}
		body := apps.New(apps.Kind(e.Kind), a.doc, a.styles, apps.Launch)
		a.frames[e.ID] = window.New(window.Config{
			ID:          e.ID,
			Store:       a.store,
			Surface:     a.layout,
			Router:      a.router,
			Body:        body,
			Styles:      a.styles,
			Clock:       a.clock,
			DoubleClick: a.doubleClick,
			Logger:      a.root,
		})
	}

	top, hasTop := snap.TopmostVisible()
	for id, f := range a.frames {
		focused := hasTop && id == top.ID
		if f.Focused() != focused {
			f.SetFocus(focused)
		}
		f.SetSelected(id == a.state.SelectedID)
	}
}

// cancelDrag ends whatever drag holds the pointer
func (a *App) cancelDrag() {
	owner, ok := a.router.Owner()
	if !ok {
		return
	}
	if f, ok := a.frames[owner]; ok {
		f.Cancel()
	}
	a.router.Reset()
	a.log.Debug().Str("id", owner).Msg("drag cancelled")
}

// launch opens a fresh spec for an application, replacing the geometry of
// an existing window with the same id
func (a *App) launch(k apps.Kind) {
	info, ok := apps.Lookup(k)
	if !ok {
		a.log.Warn().Str("kind", string(k)).Msg("unknown application")
		return
	}
	a.store.Open(info.Spec(a.layout.Desktop()))
}

// restoreOrOpen brings back an existing window with its stored geometry,
// or opens a fresh one
func (a *App) restoreOrOpen(k apps.Kind) {
	if e, ok := a.store.Get(string(k)); ok {
		spec := e.Spec()
		spec.Minimized = false
		a.store.Open(spec)
		return
	}
	a.launch(k)
}

func (a *App) newFinder() {
	a.restoreOrOpen(apps.Finder)
}

// closeTopmost closes the window with the highest stacking key, minimized
// windows included
func (a *App) closeTopmost() {
	if e, ok := a.store.Windows().Topmost(); ok {
		a.store.Close(e.ID)
	}
}

func (a *App) requestCloseAll() {
	if a.store.Len() == 0 {
		return
	}
	a.state.ActiveModal = ModalCloseAll
}

func (a *App) selectAll() {
	if e, ok := a.store.Windows().TopmostVisible(); ok {
		a.state.Select(e.ID)
	}
}

// copySelection copies the selected window's text, or the portfolio URL
// when nothing is selected
func (a *App) copySelection() tea.Cmd {
	text := a.doc.URL
	if f, ok := a.frames[a.state.SelectedID]; ok {
		text = f.Body().Text()
	}
	if text == "" {
		return nil
	}
	write := a.clipboard
	return func() tea.Msg {
		return ClipboardMsg{Text: text, Err: write(text)}
	}
}

func (a *App) zoom(apply func()) {
	before := a.layout.Zoom()
	apply()
	if z := a.layout.Zoom(); z != before {
		a.log.Debug().Float64("zoom", z).Msg("zoom changed")
		a.setStatus(fmt.Sprintf("Zoom %d%%", int(z*100+0.5)))
	}
}

func (a *App) reloadContent() tea.Cmd {
	path := a.contentPath
	return func() tea.Msg {
		doc, err := content.Load(path)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to reload portfolio: %w", err)}
		}
		return ContentLoadedMsg{Doc: doc}
	}
}

func (a *App) setDocument(doc *content.Document) {
	if doc == nil {
		return
	}
	a.doc = doc
	for _, f := range a.frames {
		if r, ok := f.Body().(apps.Reloadable); ok {
			r.SetDocument(doc)
		}
	}
}

func (a *App) setStatus(msg string) {
	a.state.SetStatus(msg, a.clock.Now().Add(statusDuration))
}

// forwardToTopmost hands a message to the focused window's body
func (a *App) forwardToTopmost(msg tea.Msg) tea.Cmd {
	e, ok := a.store.Windows().TopmostVisible()
	if !ok {
		return nil
	}
	if f, ok := a.frames[e.ID]; ok {
		return f.Update(msg)
	}
	return nil
}
