package mazedrift

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/maze-drift/internal/config"
	"github.com/vovakirdan/maze-drift/internal/core"
)

const tick = 1.0 / 60

// constSource always returns the same value. At 0.5 every gap keeps the
// field center and the base width.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func newTestGame(opts ...Option) *Game {
	opts = append([]Option{WithSource(constSource(0.5))}, opts...)
	return New(config.DefaultConfig(), core.DefaultConfig(), opts...)
}

func intents(in ...core.Intent) []core.Intent {
	return in
}

var (
	start   = core.Intent{Kind: core.IntentStart}
	restart = core.Intent{Kind: core.IntentRestart}
	pause   = core.Intent{Kind: core.IntentTogglePause}
	left    = core.Intent{Kind: core.IntentNudgeLeft}
	right   = core.Intent{Kind: core.IntentNudgeRight}
)

func TestNewGameIsReady(t *testing.T) {
	g := newTestGame()
	snap := g.Snapshot()

	if snap.Phase != PhaseReady {
		t.Errorf("phase = %v, expected ready", snap.Phase)
	}
	if snap.Lives != 5 || snap.Ball.Radius != 30 {
		t.Errorf("lives/radius = %d/%v, expected 5/30", snap.Lives, snap.Ball.Radius)
	}
	if snap.Ball.X != 240 || snap.Ball.Y != 680 {
		t.Errorf("ball at (%v, %v), expected (240, 680)", snap.Ball.X, snap.Ball.Y)
	}
	if len(snap.Segments) != 17 {
		t.Errorf("maze has %d segments, expected 17", len(snap.Segments))
	}

	// Nothing moves before the first start
	res := g.Step(1, nil)
	if res.Phase != PhaseReady || res.Elapsed != 0 || res.Score != 0 {
		t.Errorf("ready game advanced: %+v", res)
	}
}

func TestStartBeginsRun(t *testing.T) {
	g := newTestGame()
	res := g.Step(0, intents(start))

	if !res.Events.Has(EventStarted) {
		t.Error("expected EventStarted")
	}
	if res.Phase != PhaseRunning {
		t.Errorf("phase = %v, expected running", res.Phase)
	}

	snap := g.Snapshot()
	if snap.Lives != 5 || snap.Ball.Radius != 30 {
		t.Errorf("lives/radius = %d/%v, expected 5/30", snap.Lives, snap.Ball.Radius)
	}
	if snap.Guard != 0.75 {
		t.Errorf("guard = %v, expected start grace 0.75", snap.Guard)
	}
	if snap.Speed != 110 {
		t.Errorf("speed = %v, expected 110", snap.Speed)
	}
}

func TestCollisionCostsOneLifePerGuardWindow(t *testing.T) {
	g := newTestGame()
	g.Step(0, intents(start))
	g.Step(0, intents(core.MoveTo(0)))

	if target := g.Snapshot().Ball.TargetX; target != 30 {
		t.Fatalf("target = %v, expected clamp to radius 30", target)
	}

	ticks := 0
	var res StepResult
	for g.Lives() == 5 && ticks < 120 {
		res = g.Step(tick, nil)
		ticks++
	}

	// Start grace is 0.75s = 45 ticks
	if ticks < 45 || ticks > 47 {
		t.Errorf("first hit after %d ticks, expected about 45", ticks)
	}
	if !res.Events.Has(EventLifeLost) {
		t.Error("expected EventLifeLost on the hitting step")
	}

	snap := g.Snapshot()
	if snap.Lives != 4 || snap.Ball.Radius != 24 {
		t.Fatalf("lives/radius = %d/%v, expected 4/24", snap.Lives, snap.Ball.Radius)
	}
	if snap.Ball.X < 24 || snap.Ball.TargetX < 24 {
		t.Errorf("ball not clamped to new radius: x=%v target=%v", snap.Ball.X, snap.Ball.TargetX)
	}

	// Still outside the gap, but guarded for 0.35s
	for i := 0; i < 20; i++ {
		if res := g.Step(tick, nil); res.Events.Has(EventLifeLost) {
			t.Fatalf("second hit %d ticks after the first, inside the guard window", i+1)
		}
	}
	if g.Lives() != 4 {
		t.Errorf("lives = %d, expected 4", g.Lives())
	}
}

func TestGameOverRecordsHighScore(t *testing.T) {
	g := newTestGame()
	g.Step(0, intents(start, core.MoveTo(0)))

	var res StepResult
	for i := 0; i < 1000 && res.Phase != PhaseOver; i++ {
		res = g.Step(tick, nil)
	}

	if res.Phase != PhaseOver {
		t.Fatal("game never ended")
	}
	if !res.Events.Has(EventGameOver | EventHighScore) {
		t.Errorf("events = %b, expected game over and high score", res.Events)
	}
	if res.Best != res.Score || res.Best == 0 {
		t.Errorf("best = %d, expected floor(score) = %d", res.Best, res.Score)
	}

	snap := g.Snapshot()
	if snap.Lives != 0 || snap.Ball.Radius != 0 {
		t.Errorf("lives/radius = %d/%v, expected 0/0", snap.Lives, snap.Ball.Radius)
	}

	// Over is terminal until the next start
	elapsed := g.Elapsed()
	if res := g.Step(tick, nil); res.Elapsed != elapsed {
		t.Error("game advanced after game over")
	}
}

func TestGameOverKeepsBetterBest(t *testing.T) {
	g := newTestGame(WithHighScore(1000))
	g.Step(0, intents(start, core.MoveTo(0)))

	var res StepResult
	for i := 0; i < 1000 && res.Phase != PhaseOver; i++ {
		res = g.Step(tick, nil)
	}

	if res.Phase != PhaseOver {
		t.Fatal("game never ended")
	}
	if res.Events.Has(EventHighScore) {
		t.Error("unexpected EventHighScore")
	}
	if g.HighScore() != 1000 {
		t.Errorf("best = %d, expected 1000", g.HighScore())
	}
}

func TestDifficultyReachesHardValues(t *testing.T) {
	g := newTestGame()
	g.Step(0, intents(start))

	// 46 seconds centered in a centered maze never touches a wall
	for i := 0; i < 46*60; i++ {
		if res := g.Step(tick, nil); res.Events.Has(EventLifeLost) {
			t.Fatalf("unexpected collision at tick %d", i)
		}
	}

	snap := g.Snapshot()
	if snap.Elapsed < 45 {
		t.Fatalf("elapsed = %v, expected at least 45", snap.Elapsed)
	}
	if snap.Level != 1 {
		t.Errorf("level = %v, expected 1", snap.Level)
	}
	if base := g.difficulty.Gaps(snap.Elapsed).Base; base != 135 {
		t.Errorf("base width = %v, expected 135", base)
	}
	if w := snap.Segments[0].Top.Width; w != 135 {
		t.Errorf("newest segment width = %v, expected 135", w)
	}
	if snap.Speed <= 110 {
		t.Errorf("speed = %v, expected growth", snap.Speed)
	}
	if math.Abs(float64(snap.Score)-snap.Elapsed*10) > 1 {
		t.Errorf("score = %d, expected about 10 * %v", snap.Score, snap.Elapsed)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame()
	g.Step(0, intents(start))
	for i := 0; i < 30; i++ {
		g.Step(tick, nil)
	}

	res := g.Step(tick, intents(pause))
	if !res.Events.Has(EventPaused) || res.Phase != PhasePaused {
		t.Fatalf("pause not applied: %+v", res)
	}

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(1, intents(left, right))
	}
	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Error("paused game changed state")
	}

	res = g.Step(0, intents(pause))
	if !res.Events.Has(EventResumed) || res.Phase != PhaseRunning {
		t.Errorf("resume not applied: %+v", res)
	}
}

func TestStartWhilePausedRestarts(t *testing.T) {
	g := newTestGame()
	g.Step(0, intents(start))
	for i := 0; i < 30; i++ {
		g.Step(tick, nil)
	}
	g.Step(0, intents(pause))

	res := g.Step(0, intents(start))
	if !res.Events.Has(EventStarted) || res.Phase != PhaseRunning || res.Elapsed != 0 {
		t.Errorf("start while paused: %+v", res)
	}
}

func TestRestartFromAnyPhase(t *testing.T) {
	tests := []struct {
		name  string
		setup []core.Intent
		ticks int
	}{
		{"ready", nil, 0},
		{"running", intents(start), 30},
		{"paused", intents(start), 30},
		{"over", intents(start, core.MoveTo(0)), 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame()
			g.Step(0, tc.setup)
			for i := 0; i < tc.ticks && g.Phase() != PhaseOver; i++ {
				g.Step(tick, nil)
			}
			if tc.name == "paused" {
				g.Step(0, intents(pause))
			}

			res := g.Step(0, intents(restart))
			if !res.Events.Has(EventStarted) {
				t.Error("expected EventStarted")
			}
			snap := g.Snapshot()
			if snap.Phase != PhaseRunning || snap.Elapsed != 0 || snap.Score != 0 || snap.Lives != 5 {
				t.Errorf("restart left %+v", snap)
			}
		})
	}
}

func TestNudge(t *testing.T) {
	g := newTestGame()

	g.Step(0, intents(left))
	if g.Phase() != PhaseReady || g.Snapshot().Ball.TargetX != 240 {
		t.Fatal("nudge should be ignored before the run starts")
	}

	g.Step(0, intents(start, left))
	if target := g.Snapshot().Ball.TargetX; target != 218 {
		t.Errorf("target = %v, expected 218", target)
	}

	for i := 0; i < 20; i++ {
		g.Step(0, intents(left))
	}
	if target := g.Snapshot().Ball.TargetX; target != 30 {
		t.Errorf("target = %v, expected clamp to 30", target)
	}

	for i := 0; i < 30; i++ {
		g.Step(0, intents(right))
	}
	if target := g.Snapshot().Ball.TargetX; target != 450 {
		t.Errorf("target = %v, expected clamp to 450", target)
	}
}

func TestMoveToStartsFromReady(t *testing.T) {
	g := newTestGame()
	res := g.Step(0, intents(core.MoveTo(1000)))

	if !res.Events.Has(EventStarted) || res.Phase != PhaseRunning {
		t.Fatalf("pointer did not start the run: %+v", res)
	}
	if target := g.Snapshot().Ball.TargetX; target != 450 {
		t.Errorf("target = %v, expected 450", target)
	}
}

func TestBallEasesTowardTarget(t *testing.T) {
	g := newTestGame()
	g.Step(0, intents(start, core.MoveTo(340)))
	g.Step(tick, nil)

	// x += (340 - 240) * 9 / 60
	if x := g.Snapshot().Ball.X; math.Abs(x-255) > 1e-9 {
		t.Errorf("x = %v, expected 255", x)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		rt := core.DefaultConfig()
		rt.Seed = 12345
		g := New(config.DefaultConfig(), rt)
		g.Step(0, intents(start))
		for i := 0; i < 600; i++ {
			var in []core.Intent
			if i%40 == 0 {
				in = intents(core.MoveTo(float64(100 + (i*7)%300)))
			}
			g.Step(tick, in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", a, b)
	}
}

func TestSeededRestartRepeatsMaze(t *testing.T) {
	rt := core.DefaultConfig()
	rt.Seed = 42
	g := New(config.DefaultConfig(), rt)

	ready := g.Snapshot().Segments
	g.Step(0, intents(start))
	first := g.Snapshot().Segments
	if !reflect.DeepEqual(ready, first) {
		t.Error("starting a seeded game changed the maze shown on the ready screen")
	}

	for i := 0; i < 300; i++ {
		g.Step(tick, nil)
	}
	g.Step(0, intents(restart))
	if second := g.Snapshot().Segments; !reflect.DeepEqual(first, second) {
		t.Errorf("restarted run has a different maze:\nfirst  top=%+v\nsecond top=%+v", first[0].Top, second[0].Top)
	}

	// Another game with the same seed plays the same maze too
	other := New(config.DefaultConfig(), rt)
	other.Step(0, intents(start))
	if !reflect.DeepEqual(first, other.Snapshot().Segments) {
		t.Error("same seed produced a different maze in a new game")
	}
}

func TestInjectedSourceIsNotReseeded(t *testing.T) {
	rt := core.DefaultConfig()
	rt.Seed = 42
	src := rand.New(rand.NewSource(7))
	g := New(config.DefaultConfig(), rt, WithSource(src))

	g.Step(0, intents(start))
	first := g.Snapshot().Segments
	g.Step(0, intents(restart))
	if reflect.DeepEqual(first, g.Snapshot().Segments) {
		t.Error("an injected source should keep its stream across runs")
	}
}

func TestLivesAndRadiusInvariant(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rt := core.DefaultConfig()
		rt.Seed = seed
		g := New(config.DefaultConfig(), rt)
		rng := rand.New(rand.NewSource(seed))

		g.Step(0, intents(start))
		for i := 0; i < 3000; i++ {
			var in []core.Intent
			switch rng.Intn(20) {
			case 0:
				in = intents(core.MoveTo(rng.Float64() * 600))
			case 1:
				in = intents(left)
			case 2:
				in = intents(right)
			case 3:
				if g.Phase() == PhaseOver {
					in = intents(start)
				}
			}
			g.Step(tick, in)

			snap := g.Snapshot()
			if snap.Lives < 0 || snap.Lives > snap.MaxLives {
				t.Fatalf("seed %d: lives = %d", seed, snap.Lives)
			}
			if snap.Ball.Radius != 6*float64(snap.Lives) {
				t.Fatalf("seed %d: radius %v with %d lives", seed, snap.Ball.Radius, snap.Lives)
			}
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame()
	snap := g.Snapshot()
	snap.Segments[0].Y = -9999

	if g.Snapshot().Segments[0].Y == -9999 {
		t.Error("modifying a snapshot changed the game")
	}
}

func TestSnapshotGapAt(t *testing.T) {
	g := newTestGame()
	snap := g.Snapshot()

	gap, ok := snap.GapAt(700)
	if !ok || gap.Center != 240 || gap.Width != 190 {
		t.Errorf("GapAt(700) = %+v, %v", gap, ok)
	}
	// Below the bottom segment (672 + 64)
	if _, ok := snap.GapAt(790); ok {
		t.Error("GapAt(790) should not find a segment")
	}
}
