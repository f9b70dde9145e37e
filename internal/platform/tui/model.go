package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja-jump/internal/config"
	"github.com/vovakirdan/ninja-jump/internal/core"
	"github.com/vovakirdan/ninja-jump/internal/highscore"
	"github.com/vovakirdan/ninja-jump/internal/jump"
	"github.com/vovakirdan/ninja-jump/internal/leaderboard"
	"github.com/vovakirdan/ninja-jump/internal/session"
)

// Layout constants
const (
	chromeLines   = 4 // HUD, help and the board border
	minBoardW     = 20
	minBoardH     = 12
	maxNameLength = 32
	boardRows     = 10
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Options configures the terminal frontend.
type Options struct {
	Config      config.NinjaConfig
	Runtime     core.RuntimeConfig
	HighScores  highscore.Store
	Leaderboard leaderboard.Client
	Logger      *log.Logger
	PlayerName  string // Prefilled name, e.g. the SSH user
}

// Model is the Bubble Tea model for Ninja Jump.
type Model struct {
	session  *session.Session
	sched    *session.Scheduler
	screen   *core.Screen
	canvas   *core.Canvas
	mapper   *KeyMapper
	hold     *HoldTracker
	name     textinput.Model
	board    table.Model
	help     help.Model
	logger   *log.Logger
	tickRate int
	width    int
	height   int
	ticking  bool   // Whether a tick chain is in flight
	notice   string // Validation error or status line
	quitting bool
}

// NewModel creates the model with a fresh idle session.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	def := core.DefaultConfig()
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Config.World.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sess := session.New(session.Options{
		Game:        jump.New(opts.Config),
		HighScores:  opts.HighScores,
		Leaderboard: opts.Leaderboard,
		Logger:      logger,
		Timeout:     opts.Config.LeaderboardTimeout(),
		Seed:        rt.Seed,
	})

	bw, bh := boardSize(rt.ScreenW, rt.ScreenH)
	screen := core.NewScreen(bw, bh)
	canvas := core.NewCanvas(screen, opts.Config.World.Width, opts.Config.World.Height)

	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = maxNameLength
	name.Width = maxNameLength
	name.Prompt = "> "
	name.SetValue(opts.PlayerName)
	name.Focus()

	h := help.New()
	h.ShowAll = false

	return Model{
		session:  sess,
		sched:    session.NewScheduler(sess, canvas),
		screen:   screen,
		canvas:   canvas,
		mapper:   NewKeyMapper(),
		hold:     NewHoldTracker(opts.Config.Terminal.KeyReleaseTicks),
		name:     name,
		board:    newBoardTable(),
		help:     h,
		logger:   logger,
		tickRate: rt.TickRate,
		width:    rt.ScreenW,
		height:   rt.ScreenH,
	}
}

func newBoardTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: 18},
			{Title: "Score", Width: 8},
		}),
		table.WithFocused(false),
		table.WithHeight(boardRows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// Session returns the session driven by the model.
func (m Model) Session() *session.Session {
	return m.session
}

// Init starts the cursor blink and the leaderboard listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForLeaderboard(m.session.Updates()))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case leaderboardMsg:
		if m.session.Apply(session.LeaderboardUpdate(msg)) {
			m.refreshBoard()
		}
		return m, waitForLeaderboard(m.session.Updates())
	}

	if m.typing() {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// typing reports whether the name field owns printable keys.
func (m Model) typing() bool {
	return m.session.State() != session.StateRunning
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("Session ended",
		"player", m.session.Name(),
		"runs", m.session.Run(),
		"submitted", m.session.Submissions(),
		"ticks", m.sched.Ticks(),
		"high", m.session.HighScore(),
	)
	return m, tea.Quit
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.mapper.MapKey(msg, m.typing())

	switch action {
	case core.ActionQuit:
		return m.quit()

	case core.ActionConfirm:
		if !m.typing() {
			return m, nil
		}
		if err := m.session.Start(m.name.Value()); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		return m.runStarted()

	case core.ActionRestart:
		if err := m.session.Restart(); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		return m.runStarted()

	case core.ActionBack:
		if m.session.State() == session.StateIdle {
			return m.quit()
		}
		m.session.Abandon()
		m.hold.Reset()
		m.name.SetValue(m.session.Name())
		return m, m.name.Focus()

	case core.ActionLeft:
		m.hold.Press(action)
		m.session.Steer(jump.DirectionLeft)
		return m, nil

	case core.ActionRight:
		m.hold.Press(action)
		m.session.Steer(jump.DirectionRight)
		return m, nil
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.typing() {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		m.notice = ""
		return m, cmd
	}
	return m, nil
}

// runStarted draws the first frame of a new run and makes sure a tick
// chain is running.
func (m Model) runStarted() (tea.Model, tea.Cmd) {
	m.notice = ""
	m.hold.Reset()
	m.name.Blur()
	m.session.Render(m.canvas)
	m.logger.Info("Run started", "player", m.session.Name(), "run", m.session.Run())

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.tickRate)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	bw, bh := boardSize(msg.Width, msg.Height)
	m.screen.Resize(bw, bh)
	if m.session.State() != session.StateIdle {
		m.session.Render(m.canvas)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.hold.Tick() {
		m.session.Steer(jump.DirectionNone)
	}

	if m.sched.Tick() {
		return m, tickCmd(m.tickRate)
	}

	m.ticking = false
	if m.session.State() == session.StateGameOver {
		m.hold.Reset()
		m.name.SetValue(m.session.Name())
		m.refreshBoard()
		return m, m.name.Focus()
	}
	return m, nil
}

// refreshBoard copies the session's leaderboard into the table.
func (m *Model) refreshBoard() {
	entries := m.session.Leaderboard()
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.PlayerName,
			fmt.Sprintf("%d", e.Score),
		})
	}
	m.board.SetRows(rows)
	m.board.GotoTop()
}

// saveScreenshot saves the current board to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("Screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".ninja", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("Screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("ninja_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("Screenshot failed", "error", err)
		return
	}
	m.notice = "saved " + path
	m.logger.Info("Screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.session.State() {
	case session.StateRunning:
		return m.gameView()
	case session.StateGameOver:
		return m.gameOverView()
	default:
		return m.menuView()
	}
}

func (m Model) hud() string {
	return hudStyle.Render(fmt.Sprintf("Score: %d   High Score: %d   %s",
		m.session.Score(), m.session.HighScore(), m.session.Name()))
}

func (m Model) gameView() string {
	var b strings.Builder
	b.WriteString(m.hud())
	b.WriteString("\n")
	b.WriteString(boardStyle.Render(RenderScreen(m.screen)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.mapper.Keys())))
	return b.String()
}

func (m Model) menuView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("NINJA JUMP"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("High Score: %d\n\n", m.session.HighScore()))
	b.WriteString("Enter your name:\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(errorStyle.Render(m.notice))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(menuHelp{keys: m.mapper.Keys()})))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panelStyle.Render(b.String()))
}

func (m Model) gameOverView() string {
	var p strings.Builder
	p.WriteString(gameOverStyle.Render("GAME OVER"))
	p.WriteString("\n\n")
	p.WriteString(fmt.Sprintf("Score: %d\nHigh Score: %d\n\n", m.session.Score(), m.session.HighScore()))

	p.WriteString(titleStyle.Render("Leaderboard"))
	p.WriteString("\n")
	switch {
	case m.session.LeaderboardPending():
		p.WriteString(dimStyle.Render("Submitting score..."))
	case m.session.LeaderboardErr() != nil:
		p.WriteString(errorStyle.Render("Leaderboard unavailable"))
	case len(m.session.Leaderboard()) == 0:
		p.WriteString(dimStyle.Render("No scores yet"))
	default:
		p.WriteString(m.board.View())
	}

	p.WriteString("\n\nPlay again as:\n")
	p.WriteString(m.name.View())
	if m.notice != "" {
		p.WriteString("\n")
		p.WriteString(errorStyle.Render(m.notice))
	}
	p.WriteString("\n\n")
	p.WriteString(dimStyle.Render(m.help.View(menuHelp{keys: m.mapper.Keys()})))

	panel := panelStyle.Render(p.String())
	frame := boardStyle.Render(RenderScreen(m.screen))
	if lipgloss.Width(frame)+lipgloss.Width(panel)+2 > m.width {
		return panel
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, frame, "  ", panel)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
