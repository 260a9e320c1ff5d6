package ui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/padview/internal/browse"
	"github.com/five82/padview/internal/prefs"
	"github.com/five82/padview/internal/spacex"
	"github.com/five82/padview/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	PageSize  int // one of browse.PageSizes; anything else uses the default
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
	Clipboard func(string) error // nil uses the system clipboard
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	prefsPath string
	pollTick  time.Duration
	copyText  func(string) error

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string

	// Data state
	snapshot state.Snapshot

	// Derivation inputs: filter text lives in filterInput.
	filterInput textinput.Model
	filtering   bool
	page        int
	pageSize    int
	selected    int // index into the current window

	// Rendering
	cards       viewport.Model
	cardOffsets []int
	spinner     spinner.Model
	pager       paginator.Model
	help        help.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultPollTick
	}

	pageSize := opts.PageSize
	if !browse.ValidPageSize(pageSize) {
		pageSize = browse.DefaultPageSize
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search by name or region"
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	pg := paginator.New()
	pg.Type = paginator.Dots

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		copyText:    copyText,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		filterInput: ti,
		page:        1,
		pageSize:    pageSize,
		spinner:     sp,
		pager:       pg,
		help:        help.New(),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.cards = viewport.New(m.width, m.cardsHeight())
		}
		m.ready = true
		m.cards.Width = m.width
		m.cards.Height = m.cardsHeight()
		m.filterInput.Width = max(m.width-4, 10)
		m.help.Width = m.width
		m.syncCards()
		return m, nil

	case tickMsg:
		if m.store == nil {
			return m, nil
		}
		return m, fetchSnapshotCmd(m.store)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.syncCards()
		if !m.snapshot.Loaded {
			return m, tickCmd(m.pollTick)
		}
		return m, nil

	case spinner.TickMsg:
		// The spinner stops once the startup fetch is over.
		if m.snapshot.Loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clipboardMsg:
		if msg.err != nil {
			m.notice = "Copy failed"
			log.Printf("clipboard write failed: %v", msg.err)
		} else {
			m.notice = "Copied " + msg.text
		}
		return m, nil
	}

	if m.filtering {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
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

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilter())
	b.WriteString("\n")
	b.WriteString(m.cards.View())
	b.WriteString("\n")
	b.WriteString(m.renderPager(m.window()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// window derives the visible launchpads from the current inputs.
func (m Model) window() browse.Window {
	return browse.View{
		Query:    m.filterInput.Value(),
		Page:     m.page,
		PageSize: m.pageSize,
	}.Apply(m.snapshot.Launchpads)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.syncCards()
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				log.Printf("save prefs: %v", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.NextPage):
		if m.window().CanNext {
			m.page++
			m.selected = 0
			m.syncCards()
			m.cards.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.window().CanPrev {
			m.page--
			m.selected = 0
			m.syncCards()
			m.cards.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.CyclePageSize):
		// The page index is kept as-is, like a filter change.
		m.pageSize = browse.NextPageSize(m.pageSize)
		m.syncCards()
		return m, nil

	case key.Matches(msg, m.keys.NextCard):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevCard):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.CopyLink):
		return m, m.copySelectedLink()

	case key.Matches(msg, m.keys.Down):
		m.cards.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.cards.LineUp(1)
	case key.Matches(msg, m.keys.Top):
		m.cards.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.cards.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.cards.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.cards.HalfViewUp()
	}

	return m, nil
}

// moveSelection moves the selected card within the window, wrapping around.
func (m *Model) moveSelection(delta int) {
	count := len(m.window().Items)
	if count == 0 {
		m.selected = 0
		return
	}
	m.selected = ((m.selected+delta)%count + count) % count
	m.syncCards()
	if m.selected < len(m.cardOffsets) {
		m.cards.SetYOffset(m.cardOffsets[m.selected])
	}
}

// selectedLaunchpad returns the launchpad under the card cursor.
func (m Model) selectedLaunchpad() (spacex.Launchpad, bool) {
	items := m.window().Items
	if m.selected < 0 || m.selected >= len(items) {
		return spacex.Launchpad{}, false
	}
	return items[m.selected], true
}

func (m *Model) copySelectedLink() tea.Cmd {
	pad, ok := m.selectedLaunchpad()
	if !ok {
		return nil
	}
	link := spacex.WikipediaLink(pad.Name)
	if link == spacex.NoLink {
		m.notice = "No Wikipedia link for " + pad.DisplayName()
		return nil
	}
	copyText := m.copyText
	return func() tea.Msg {
		return clipboardMsg{text: link, err: copyText(link)}
	}
}

// syncCards re-renders the current window into the card viewport.
func (m *Model) syncCards() {
	if !m.ready {
		return
	}
	w := m.window()
	if m.selected >= len(w.Items) {
		m.selected = max(len(w.Items)-1, 0)
	}
	content, offsets := m.renderCards(w)
	m.cardOffsets = offsets
	m.cards.SetContent(content)
}

func (m Model) cardsHeight() int {
	return max(m.height-chromeHeight, 1)
}

// applyTheme pushes theme colors into the bubbles components.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()

	m.filterInput.PromptStyle = styles.AccentText
	m.filterInput.TextStyle = styles.Text
	m.filterInput.PlaceholderStyle = styles.FaintText

	m.spinner.Style = styles.WarningText

	m.pager.ActiveDot = styles.AccentText.Render("•")
	m.pager.InactiveDot = styles.FaintText.Render("•")

	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type clipboardMsg struct {
	text string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
