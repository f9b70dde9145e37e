// Package session drives Ninja Jump runs: the Idle/Running/GameOver state
// machine, the local high score, the leaderboard round trip after each run
// and the frame scheduler that steps the game.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja-jump/internal/core"
	"github.com/vovakirdan/ninja-jump/internal/highscore"
	"github.com/vovakirdan/ninja-jump/internal/jump"
	"github.com/vovakirdan/ninja-jump/internal/leaderboard"
)

// RunState is the lifecycle state of a session.
type RunState int

const (
	StateIdle RunState = iota
	StateRunning
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// ValidationError blocks a state transition because of bad user input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// LeaderboardUpdate is the outcome of the submit+fetch pair started when a
// run ends. Run identifies the run it belongs to.
type LeaderboardUpdate struct {
	Run     uint64
	Entries []leaderboard.Entry
	Err     error
}

// Options configures a Session.
type Options struct {
	Game        *jump.Game
	HighScores  highscore.Store    // nil keeps the high score in memory
	Leaderboard leaderboard.Client // nil skips submission
	Logger      *log.Logger        // nil discards logs
	Timeout     time.Duration      // Budget for the submit+fetch pair, default 5s
	Seed        int64              // Platform layout seed, 0 picks a new one per run
}

// Session owns one game and everything around it. All methods must be
// called from a single goroutine; leaderboard results arrive on Updates
// and are handed back through Apply.
type Session struct {
	game    *jump.Game
	scores  highscore.Store
	board   leaderboard.Client
	logger  *log.Logger
	timeout time.Duration
	seed    int64

	state     RunState
	name      string
	highScore int
	run       uint64

	entries   []leaderboard.Entry
	boardErr  error
	shown     uint64 // run whose result is on display
	pending   bool
	updates   chan LeaderboardUpdate
	submitted int
}

// New creates an idle session and loads the stored high score.
func New(opts Options) *Session {
	if opts.Game == nil {
		panic("session: Options.Game is required")
	}
	if opts.HighScores == nil {
		opts.HighScores = &highscore.Memory{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}

	s := &Session{
		game:    opts.Game,
		scores:  opts.HighScores,
		board:   opts.Leaderboard,
		logger:  opts.Logger,
		timeout: opts.Timeout,
		seed:    opts.Seed,
		updates: make(chan LeaderboardUpdate, 4),
	}

	high, err := s.scores.Load()
	if err != nil {
		s.logger.Warn("Cannot load high score", "error", err)
	}
	s.highScore = high

	return s
}

// Start begins a run for the named player. Allowed from Idle and GameOver;
// a no-op while Running. A blank name is rejected and nothing changes.
func (s *Session) Start(name string) error {
	if s.state == StateRunning {
		return nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	s.name = name
	s.begin()
	return nil
}

// Restart begins a new run with the current name. From Running the current
// run is discarded without submission.
func (s *Session) Restart() error {
	if s.name == "" {
		return &ValidationError{Field: "name", Reason: "must be set before restarting"}
	}
	s.begin()
	return nil
}

// Abandon drops back to Idle without submitting the current run.
func (s *Session) Abandon() {
	if s.state == StateIdle {
		return
	}
	s.logger.Debug("Run abandoned", "run", s.run, "player", s.name, "score", s.game.State().Score)
	s.state = StateIdle
	s.game.Steer(jump.DirectionNone)
}

func (s *Session) begin() {
	s.run++
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.game.Reset(seed)
	s.state = StateRunning
	s.pending = false
	s.logger.Debug("Run started", "run", s.run, "player", s.name, "seed", seed)
}

// Steer forwards directional input. Left and right only act while
// Running; DirectionNone always stops the player.
func (s *Session) Steer(dir jump.Direction) {
	if dir != jump.DirectionNone && s.state != StateRunning {
		return
	}
	s.game.Steer(dir)
}

// Step advances the running game by one tick. When the player falls out of
// the world the session moves to GameOver and the leaderboard round trip
// starts in the background.
func (s *Session) Step() core.StepResult {
	if s.state != StateRunning {
		return core.StepResult{State: s.game.State()}
	}

	result := s.game.Step()

	if result.State.Score > s.highScore {
		s.highScore = result.State.Score
		if err := s.scores.Save(s.highScore); err != nil {
			s.logger.Warn("Cannot save high score", "score", s.highScore, "error", err)
		}
	}

	if result.State.GameOver {
		s.finish(result.State.Score)
	}
	return result
}

func (s *Session) finish(score int) {
	s.state = StateGameOver
	s.logger.Info("Game over", "run", s.run, "player", s.name, "score", score, "high", s.highScore, "ticks", s.game.TickCount())

	if s.board == nil {
		return
	}
	s.pending = true
	s.submitted++
	go s.report(s.run, leaderboard.Entry{PlayerName: s.name, Score: score})
}

// report submits the entry and, if that worked, fetches the leaderboard.
// It runs on its own goroutine and only touches the updates channel.
func (s *Session) report(run uint64, entry leaderboard.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	update := LeaderboardUpdate{Run: run}
	if err := s.board.Submit(ctx, entry); err != nil {
		update.Err = err
	} else if entries, err := s.board.FetchAll(ctx); err != nil {
		update.Err = err
	} else {
		update.Entries = entries
	}

	if update.Err != nil {
		s.logger.Error("Leaderboard update failed", "run", run, "error", update.Err)
	}

	select {
	case s.updates <- update:
	default:
		s.logger.Warn("Leaderboard update dropped", "run", run)
	}
}

// Updates delivers leaderboard results of finished runs.
func (s *Session) Updates() <-chan LeaderboardUpdate {
	return s.updates
}

// Apply stores a leaderboard result. The newest run wins: a reply from a
// previous run is shown while the current run has no result yet, but it
// never replaces the result of a later run. Reports whether u was applied.
func (s *Session) Apply(u LeaderboardUpdate) bool {
	if u.Run == 0 || u.Run > s.run || u.Run <= s.shown {
		s.logger.Debug("Stale leaderboard update ignored", "run", u.Run, "current", s.run, "shown", s.shown)
		return false
	}
	s.shown = u.Run
	if u.Run == s.run {
		s.pending = false
	}
	s.boardErr = u.Err
	if u.Err == nil {
		s.entries = u.Entries
	}
	return true
}

// Render draws the current run onto a surface.
func (s *Session) Render(surface core.Surface) {
	s.game.Render(surface)
}

// State returns the lifecycle state.
func (s *Session) State() RunState {
	return s.state
}

// Score returns the score of the current or last run.
func (s *Session) Score() int {
	return s.game.State().Score
}

// HighScore returns the best score seen, including the current run.
func (s *Session) HighScore() int {
	return s.highScore
}

// Name returns the current player name.
func (s *Session) Name() string {
	return s.name
}

// Run returns the number of runs started so far.
func (s *Session) Run() uint64 {
	return s.run
}

// Leaderboard returns the last fetched leaderboard in server order.
func (s *Session) Leaderboard() []leaderboard.Entry {
	return s.entries
}

// LeaderboardErr returns the error of the last applied round trip.
func (s *Session) LeaderboardErr() error {
	return s.boardErr
}

// LeaderboardPending reports whether a round trip for the current run is
// still in flight.
func (s *Session) LeaderboardPending() bool {
	return s.pending
}

// Submissions returns how many runs were sent to the leaderboard.
func (s *Session) Submissions() int {
	return s.submitted
}

// Game returns the underlying game.
func (s *Session) Game() *jump.Game {
	return s.game
}
