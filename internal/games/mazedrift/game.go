// Package mazedrift implements the Maze Drift game: a ball descends through a
// scrolling maze and the player steers it through the gaps. Each wall hit
// costs a life and shrinks the ball; the maze narrows and speeds up over time.
//
// The game is pure logic. The platform feeds it frame deltas and queued
// intents, then draws Snapshot values with Render.
package mazedrift

import (
	"math"

	"github.com/vovakirdan/maze-drift/internal/config"
	"github.com/vovakirdan/maze-drift/internal/core"
	"github.com/vovakirdan/maze-drift/internal/maze"
)

// ID identifies the game in the score store.
const ID = "mazedrift"

// Title is the display name.
const Title = "Maze Drift"

// Phase is the state of the game's state machine.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Events is a set of things that happened during one Step.
type Events uint8

const (
	EventStarted   Events = 1 << iota // A run was (re)started
	EventLifeLost                     // The ball hit a wall
	EventPaused                       // Running -> paused
	EventResumed                      // Paused -> running; the host should rebase its clock
	EventGameOver                     // Last life lost
	EventHighScore                    // The game over beat the stored best
)

// Has reports whether all events in e2 are set.
func (e Events) Has(e2 Events) bool {
	return e&e2 == e2
}

// StepResult is the outcome of one Step.
type StepResult struct {
	Phase   Phase
	Events  Events
	Score   int     // Floored score
	Best    int     // High score after this step
	Elapsed float64 // Run time of the current run
}

// Ball is the player. Radius is BaseRadius times the remaining lives.
type Ball struct {
	X       float64
	Y       float64
	TargetX float64
	Radius  float64
	Speed   float64 // Easing rate toward TargetX
}

// Option configures a Game.
type Option func(*Game)

// WithSource makes the maze draw from src instead of a seeded generator.
func WithSource(src maze.Source) Option {
	return func(g *Game) {
		g.src = src
	}
}

// WithHighScore sets the best score loaded from storage.
func WithHighScore(best int) Option {
	return func(g *Game) {
		g.best = best
	}
}

// Game owns all simulation state of one player.
type Game struct {
	cfg        config.MazeDriftConfig
	src        maze.Source
	seed       int64 // Non-zero reseeds every run from the same value
	gen        *maze.Generator
	difficulty *config.DifficultyManager
	maze       *maze.Maze
	detector   maze.Detector

	phase   Phase
	ball    Ball
	score   float64
	best    int
	lives   int
	elapsed float64
	guard   float64 // Collision cooldown; the detector only runs at 0
}

// New creates a game in the ready phase with a freshly generated maze.
// Unless WithSource is given, the maze is seeded from rt.Seed, and a non-zero
// seed gives every run of the game the same maze.
func New(cfg config.MazeDriftConfig, rt core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = maze.NewSource(rt.Seed)
		g.seed = rt.Seed
	}

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.gen = maze.NewGenerator(g.src, cfg.Field.Width, cfg.Maze)
	g.maze = maze.New(g.gen, cfg.Field, cfg.Maze)
	g.detector = maze.Detector{
		SegmentHeight: cfg.Maze.SegmentHeight,
		Forgiveness:   cfg.Collision.Forgiveness,
	}

	g.reset()
	g.phase = PhaseReady
	return g
}

// reset puts the run state back to its initial values and regenerates the maze.
func (g *Game) reset() {
	g.elapsed = 0
	g.score = 0
	g.lives = g.cfg.Ball.MaxLives
	g.guard = 0

	center := g.cfg.Field.Width / 2
	g.ball = Ball{
		X:       center,
		Y:       g.cfg.Field.Height - g.cfg.Ball.BottomOffset,
		TargetX: center,
		Radius:  g.cfg.Ball.BaseRadius * float64(g.lives),
		Speed:   g.cfg.Ball.Speed,
	}

	if g.seed != 0 {
		g.gen.SetSource(maze.NewSource(g.seed))
	}
	g.maze.Reset(g.difficulty.Gaps(0))
}

// start begins a new run.
func (g *Game) start(res *StepResult) {
	g.reset()
	g.phase = PhaseRunning
	g.guard = g.cfg.Collision.StartGrace
	res.Events |= EventStarted
}

// Step applies the queued intents, then advances the simulation by dt time
// units if a run is in progress.
func (g *Game) Step(dt float64, intents []core.Intent) StepResult {
	var res StepResult

	for _, in := range intents {
		g.apply(in, &res)
	}

	if g.phase == PhaseRunning && dt > 0 {
		g.update(dt, &res)
	}

	res.Phase = g.phase
	res.Score = g.Score()
	res.Best = g.best
	res.Elapsed = g.elapsed
	return res
}

// apply handles one intent.
func (g *Game) apply(in core.Intent, res *StepResult) {
	switch in.Kind {
	case core.IntentMoveTo:
		if g.phase == PhaseReady || g.phase == PhaseOver {
			g.start(res)
		}
		// A starting press keeps aiming at the pointer instead of the center
		g.ball.TargetX = g.clampX(in.X)

	case core.IntentNudgeLeft:
		if g.phase == PhaseRunning {
			g.ball.TargetX = g.clampX(g.ball.TargetX - g.cfg.Input.Nudge)
		}

	case core.IntentNudgeRight:
		if g.phase == PhaseRunning {
			g.ball.TargetX = g.clampX(g.ball.TargetX + g.cfg.Input.Nudge)
		}

	case core.IntentStart:
		// Space restarts from any phase but running
		if g.phase != PhaseRunning {
			g.start(res)
		}

	case core.IntentRestart:
		g.start(res)

	case core.IntentTogglePause:
		switch g.phase {
		case PhaseRunning:
			g.phase = PhasePaused
			res.Events |= EventPaused
		case PhasePaused:
			g.phase = PhaseRunning
			res.Events |= EventResumed
		}
	}
}

// update advances a running game by dt.
func (g *Game) update(dt float64, res *StepResult) {
	g.elapsed += dt

	g.maze.Accelerate(dt, g.difficulty.SpeedBoost(g.elapsed))
	g.ball.X += (g.ball.TargetX - g.ball.X) * g.ball.Speed * dt
	g.maze.Scroll(dt, g.difficulty.Gaps(g.elapsed))

	g.score += g.cfg.Scoring.Rate * dt

	g.guard = math.Max(0, g.guard-dt)
	if g.guard != 0 {
		return
	}

	probe := g.detector.Probe(g.maze.View(), g.ball.X, g.ball.Y, g.ball.Radius)
	if probe.Hit {
		g.hit(res)
	}
}

// hit applies one wall collision.
func (g *Game) hit(res *StepResult) {
	g.lives = max(0, g.lives-1)
	g.ball.Radius = g.cfg.Ball.BaseRadius * float64(g.lives)
	if g.lives > 0 {
		g.ball.X = g.clampX(g.ball.X)
		g.ball.TargetX = g.clampX(g.ball.TargetX)
	}
	g.guard = g.cfg.Collision.Guard
	res.Events |= EventLifeLost

	if g.lives == 0 {
		g.gameOver(res)
	}
}

// gameOver ends the run and records a new best.
func (g *Game) gameOver(res *StepResult) {
	g.phase = PhaseOver
	res.Events |= EventGameOver
	if g.score > float64(g.best) {
		g.best = int(math.Floor(g.score))
		res.Events |= EventHighScore
	}
}

// clampX keeps x inside the field for the current ball radius.
func (g *Game) clampX(x float64) float64 {
	return core.ClampF(x, g.ball.Radius, g.cfg.Field.Width-g.ball.Radius)
}

// SetHighScore replaces the best score, e.g. after loading it from storage.
func (g *Game) SetHighScore(best int) {
	g.best = best
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the floored score of the current run.
func (g *Game) Score() int {
	return int(math.Floor(g.score))
}

// HighScore returns the best score.
func (g *Game) HighScore() int {
	return g.best
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Elapsed returns the run time of the current run.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.MazeDriftConfig {
	return g.cfg
}
