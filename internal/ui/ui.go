package ui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/crew/internal/directory"
	"github.com/five82/crew/internal/logger"
	"github.com/five82/crew/internal/prefs"
	"github.com/five82/crew/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Load      func(context.Context) error // performs the fetch into Store
	Logger    *logger.Logger
	Source    string // endpoint shown in the header
	ThemeName string
	Compact   bool
	PrefsPath string
	Clipboard func(string) error // nil uses the system clipboard
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	load      func(context.Context) error
	log       *logger.Logger
	source    string
	prefsPath string
	copyText  func(string) error

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
	compact  bool
	showHelp bool

	// Fetch state
	loading bool
	fetched bool
	loadErr error

	// Gallery state
	dir    *directory.Directory
	cursor int // position among visible cards
	scroll int // first rendered card row

	// Modal state
	detail directory.Detail

	// Search state
	searching bool
	search    textinput.Model

	// Transient footer message
	flash      string
	flashError bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	theme := GetTheme(opts.ThemeName)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		load:      opts.Load,
		log:       log.Component("ui"),
		source:    opts.Source,
		prefsPath: prefsPath,
		copyText:  copyText,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		compact:   opts.Compact,
		loading:   opts.Load != nil && opts.Store != nil,
		dir:       &directory.Directory{},
		search:    newSearchInput(theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.loading {
		cmds = append(cmds, m.spinner.Tick, loadCmd(m.ctx, m.store, m.load))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case usersLoadedMsg:
		return m.handleUsersLoaded(msg)

	case selectCardMsg:
		return m.openCard(msg.index)

	case clipboardMsg:
		if msg.err != nil {
			m.log.Error(msg.err, "clipboard write failed")
			m.setFlash("Could not copy e-mail: "+msg.err.Error(), true)
			return m, nil
		}
		m.setFlash("Copied "+msg.text, false)
		return m, nil
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.dir.IsOpen() {
		return m.renderModal()
	}
	return m.renderMain()
}

// handleKey routes keyboard input to the focused surface.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.dir.IsOpen() {
		return m.handleModalKey(msg)
	}

	m.flash = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.search = restyleSearchInput(m.search, m.theme)
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.Compact):
		m.compact = !m.compact
		m.ensureCursorVisible()
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.Search):
		return m.startSearch()
	case key.Matches(msg, m.keys.Clear):
		if m.dir.Query() != "" {
			m.applyFilter("")
		}
		return m, nil
	}

	return m.handleGalleryKey(msg)
}

func (m Model) handleUsersLoaded(msg usersLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.fetched = true
	m.loadErr = msg.err
	if msg.err != nil {
		// Loader has already logged the failure; the gallery stays as it was.
		return m, nil
	}
	m.dir.Load(msg.records)
	m.cursor = 0
	m.scroll = 0
	m.log.Debug("gallery populated", "count", m.dir.Len())
	return m, nil
}

// openCard shows the modal for the record at index.
func (m Model) openCard(index int) (tea.Model, tea.Cmd) {
	detail, err := m.dir.Open(index)
	if err != nil {
		m.log.Debug("ignored selection outside result set", "index", index)
		return m, nil
	}
	m.setDetail(detail)
	return m, nil
}

func (m *Model) setDetail(detail directory.Detail) {
	m.detail = detail
	m.keys.Prev.SetEnabled(detail.CanPrev)
	m.keys.Next.SetEnabled(detail.CanNext)
}

func (m *Model) setFlash(text string, isError bool) {
	m.flash = text
	m.flashError = isError
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Compact: m.compact}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Error(err, "save prefs failed")
	}
}

// Messages

type usersLoadedMsg struct {
	records []directory.Record
	err     error
}

// selectCardMsg asks the model to open the modal for a card.
type selectCardMsg struct {
	index int
}

type clipboardMsg struct {
	text string
	err  error
}

// Commands

func loadCmd(ctx context.Context, store *state.Store, load func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		err := load(ctx)
		snap := store.Snapshot()
		if err == nil && !snap.Loaded {
			err = errors.New("fetch finished without results")
		}
		return usersLoadedMsg{records: directory.FromUsers(snap.Users), err: err}
	}
}

func selectCardCmd(index int) tea.Cmd {
	return func() tea.Msg {
		return selectCardMsg{index: index}
	}
}

func copyCmd(copyText func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: copyText(text)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
