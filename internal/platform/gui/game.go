package gui

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/ninja-jump/internal/config"
	"github.com/vovakirdan/ninja-jump/internal/highscore"
	"github.com/vovakirdan/ninja-jump/internal/jump"
	"github.com/vovakirdan/ninja-jump/internal/leaderboard"
	"github.com/vovakirdan/ninja-jump/internal/session"
)

const (
	maxNameLength = 32
	lineHeight    = 16
)

var overlay = color.RGBA{0x00, 0x00, 0x00, 0xb0}

// Options configures the desktop frontend.
type Options struct {
	Config      config.NinjaConfig
	HighScores  highscore.Store
	Leaderboard leaderboard.Client
	Logger      *log.Logger
	Seed        int64
	TickRate    int // Overrides Config.World.TickRate when positive
	PlayerName  string
}

// Game implements ebiten.Game on top of a session.
type Game struct {
	session *session.Session
	sched   *session.Scheduler
	surface *imageSurface
	name    *nameEntry
	keys    keyboard
	width   int
	height  int
	notice  string
	logger  *log.Logger
}

// NewGame creates the desktop game with an idle session.
func NewGame(opts Options) *Game {
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
		Seed:        opts.Seed,
	})

	name := newNameEntry(maxNameLength)
	name.Set(opts.PlayerName)
	world := sess.Game().Config().World

	return &Game{
		session: sess,
		// Draw renders on Ebiten's own schedule
		sched:   session.NewScheduler(sess, nil),
		surface: newImageSurface(),
		name:    name,
		keys:    ebitenKeyboard{},
		width:   int(world.Width),
		height:  int(world.Height),
		logger:  logger,
	}
}

// Update handles input and steps the game once per Ebiten tick.
func (g *Game) Update() error {
	g.drainLeaderboard()

	if g.session.State() == session.StateRunning {
		g.updateRunning()
		return nil
	}
	return g.updateMenu()
}

// drainLeaderboard applies finished round trips without blocking.
func (g *Game) drainLeaderboard() {
	for {
		select {
		case u := <-g.session.Updates():
			g.session.Apply(u)
		default:
			return
		}
	}
}

func (g *Game) updateRunning() {
	switch {
	case g.keys.JustPressed(ebiten.KeyEscape):
		g.session.Abandon()
		g.name.Set(g.session.Name())
		return
	case g.restartPressed():
		g.restart()
		return
	}

	if g.keys.JustPressed(ebiten.KeyArrowLeft) {
		g.session.Steer(jump.DirectionLeft)
	}
	if g.keys.JustPressed(ebiten.KeyArrowRight) {
		g.session.Steer(jump.DirectionRight)
	}
	// Releasing either key stops the ninja, even if the other is still held
	if g.keys.JustReleased(ebiten.KeyArrowLeft) || g.keys.JustReleased(ebiten.KeyArrowRight) {
		g.session.Steer(jump.DirectionNone)
	}

	if !g.sched.Tick() && g.session.State() == session.StateGameOver {
		g.name.Set(g.session.Name())
	}
}

func (g *Game) updateMenu() error {
	switch {
	case g.keys.JustPressed(ebiten.KeyEscape):
		if g.session.State() == session.StateIdle {
			return ebiten.Termination
		}
		g.session.Abandon()
		return nil
	case g.restartPressed():
		g.restart()
		return nil
	case g.keys.JustPressed(ebiten.KeyEnter), g.keys.JustPressed(ebiten.KeyNumpadEnter):
		if err := g.session.Start(g.name.String()); err != nil {
			g.notice = err.Error()
			return nil
		}
		g.notice = ""
		return nil
	}

	if g.repeatingKey(ebiten.KeyBackspace) {
		g.name.Backspace()
	}
	g.name.Insert(g.keys.AppendChars(nil))
	return nil
}

func (g *Game) restart() {
	if err := g.session.Restart(); err != nil {
		g.notice = err.Error()
		return
	}
	g.notice = ""
}

func (g *Game) restartPressed() bool {
	ctrl := g.keys.Pressed(ebiten.KeyControlLeft) || g.keys.Pressed(ebiten.KeyControlRight)
	return ctrl && g.keys.JustPressed(ebiten.KeyR)
}

// repeatingKey reports a press and then key repeats while held.
func (g *Game) repeatingKey(k ebiten.Key) bool {
	d := g.keys.PressDuration(k)
	return d == 1 || (d >= 30 && d%4 == 0)
}

// Draw renders the world and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.target(screen)

	state := g.session.State()
	if state == session.StateIdle {
		g.surface.Clear()
		g.drawMenu(screen)
		return
	}

	g.session.Render(g.surface)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.session.Score()), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("High Score: %d", g.session.HighScore()), 8, 8+lineHeight)

	if state == session.StateGameOver {
		g.drawGameOver(screen)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), overlay, false)

	lines := []string{
		"NINJA JUMP",
		"",
		fmt.Sprintf("High Score: %d", g.session.HighScore()),
		"",
		"Enter your name:",
		"> " + g.name.String() + "_",
	}
	if g.notice != "" {
		lines = append(lines, "", g.notice)
	}
	lines = append(lines, "", "Enter: play   Esc: quit", "Arrows: move")
	printLines(screen, lines, 40, g.height/4)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), overlay, false)

	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", g.session.Score()),
		fmt.Sprintf("High Score: %d", g.session.HighScore()),
		"",
		"Leaderboard",
	}
	lines = append(lines, leaderboardLines(g.session)...)
	lines = append(lines,
		"",
		"Play again as:",
		"> "+g.name.String()+"_",
	)
	if g.notice != "" {
		lines = append(lines, g.notice)
	}
	lines = append(lines, "", "Enter: play   Ctrl+R: restart", "Esc: menu")
	printLines(screen, lines, 40, 60)
}

// leaderboardLines formats the leaderboard view in server order.
func leaderboardLines(s *session.Session) []string {
	switch {
	case s.LeaderboardPending():
		return []string{"  submitting score..."}
	case s.LeaderboardErr() != nil:
		return []string{"  leaderboard unavailable"}
	case len(s.Leaderboard()) == 0:
		return []string{"  no scores yet"}
	}

	entries := s.Leaderboard()
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		if i == 10 {
			lines = append(lines, fmt.Sprintf("  ... %d more", len(entries)-i))
			break
		}
		lines = append(lines, fmt.Sprintf("%3d. %-20s %6d", i+1, e.PlayerName, e.Score))
	}
	return lines
}

func printLines(screen *ebiten.Image, lines []string, x, y int) {
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), x, y)
}

// Layout keeps the world at its native resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Session returns the session driven by the game.
func (g *Game) Session() *session.Session {
	return g.session
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = opts.Config.World.TickRate
	}

	g := NewGame(opts)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Ninja Jump")
	ebiten.SetTPS(tickRate)

	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	g.logger.Debug("Window closed")
	return nil
}
