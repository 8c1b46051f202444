package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/swiftvietnam/swiftvn/internal/browser"
	"github.com/swiftvietnam/swiftvn/internal/feed"
	"github.com/swiftvietnam/swiftvn/internal/state"
)

const title = "Swift Việt Nam"

// App is the bubbletea model. Update runs on the program goroutine and is the
// only place the FeedState is written; loads run as commands and report back
// through feedLoadedMsg.
type App struct {
	state  *state.FeedState
	loader feed.Loader
	open   browser.Opener
	log    *log.Logger

	cursor   int
	showHelp bool
	notice   string

	width  int
	height int

	spinner spinner.Model
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Loader feed.Loader
	// Opener is called with the selected link. Nil leaves the browser alone.
	Opener browser.Opener
	Logger *log.Logger
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	lg := opts.Logger
	if lg == nil {
		lg = log.New()
	}

	return &App{
		state:   state.New(),
		loader:  opts.Loader,
		open:    opts.Opener,
		log:     lg,
		spinner: sp,
	}
}

func (a *App) Init() tea.Cmd {
	return a.refresh()
}

// refresh issues a new load token and starts the fetch in the background.
func (a *App) refresh() tea.Cmd {
	tok := a.state.Begin()
	a.log.WithField("token", tok).Debug("feed load started")
	return tea.Batch(a.loadCmd(tok), a.spinner.Tick)
}

// loadCmd captures the loader into the closure; it never touches a.state.
func (a *App) loadCmd(tok state.Token) tea.Cmd {
	loader := a.loader
	return func() tea.Msg {
		items, err := loader.Load(context.Background())
		return feedLoadedMsg{token: tok, items: items, err: err}
	}
}

func (a *App) openCmd(rawURL string) tea.Cmd {
	if a.open == nil {
		return nil
	}
	open := a.open
	return func() tea.Msg {
		if err := open(rawURL); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky notices on any keypress
		a.notice = ""
		a.state.DismissErr()
		return a.handleKey(msg)

	case feedLoadedMsg:
		a.applyLoad(msg)
		return a, nil

	case openErrMsg:
		a.log.WithError(msg.err).Warn("opening link failed")
		a.notice = fmt.Sprintf("Could not open browser: %v", msg.err)
		return a, nil

	case spinner.TickMsg:
		if a.state.Loading() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) applyLoad(msg feedLoadedMsg) {
	entry := a.log.WithField("token", msg.token)
	if !a.state.Apply(msg.token, msg.items, msg.err) {
		entry.Debug("dropping stale feed result")
		return
	}
	if msg.err != nil {
		entry.WithError(msg.err).Warn("feed load failed")
		a.notice = "Couldn't load the feed. Press r to try again."
	} else {
		entry.WithField("count", a.state.Len()).Info("feed loaded")
	}
	if a.cursor >= a.state.Len() {
		a.cursor = max(0, a.state.Len()-1)
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	}

	if a.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			a.showHelp = false
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < a.state.Len()-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "o", "enter":
		it, ok := a.state.Item(a.cursor)
		if !ok {
			return a, nil
		}
		a.state.Select(it.Link)
		return a, a.openCmd(it.Link.String())
	case "esc":
		a.state.Clear()
		return a, nil
	case "r":
		return a, a.refresh()
	case "?":
		a.showHelp = true
		return a, nil
	}

	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return headerStyle.Render(title)
	}

	if a.showHelp {
		return a.renderHelp()
	}

	headerHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - statusHeight - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	header := headerStyle.Render(title)

	items := a.state.Items()
	selected, opened := a.state.Selected()

	listWidth := a.width
	if opened {
		listWidth = int(float64(a.width) * 0.45)
	}
	listContent := renderList(items, a.cursor, contentHeight, listWidth-4, a.state.Loading())
	content := listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	if opened {
		previewWidth := a.width - listWidth - 1
		previewContent := renderPreview(selected, titleFor(items, selected), previewWidth-4, contentHeight)
		previewPane := previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, " ", previewPane)
	}

	status := renderStatusBar(len(items), a.width, a.state.Loading(), opened)
	if a.state.Loading() {
		status = a.spinner.View() + " " + status
	}
	if a.notice != "" {
		status = renderNotice(a.notice, a.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

func (a *App) renderHelp() string {
	heading := headerStyle.Render(title)
	dim := helpDimStyle

	help := heading + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through the list\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open item in browser\n" +
		"  esc           Close the opened item\n" +
		"  r             Reload the feed\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
