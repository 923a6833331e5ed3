package breakout

import (
	"github.com/vovakirdan/seal-arcade/internal/config"
	"github.com/vovakirdan/seal-arcade/internal/core"
	"github.com/vovakirdan/seal-arcade/internal/hud"
	"github.com/vovakirdan/seal-arcade/internal/registry"
)

const (
	// keyStep is how far one arrow key press moves the paddle.
	keyStep = 25

	// scoreRollSeconds is how long the HUD score takes to catch up after a hit.
	scoreRollSeconds = 0.3
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts the breakout simulation to the arcade platform: pointer
// filtering, keyboard steering, pause, restart and drawing.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	sim     *Sim
	score   *hud.Counter
	paused  bool

	// pointer is the last accepted paddle target. Arrow keys nudge it so
	// keyboard players steer the same way a mouse does.
	pointer float64
}

// New creates a new Brick Breaker game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Brick Breaker"
}

// UsesPointer marks breakout as pointer-steered.
func (g *Game) UsesPointer() bool {
	return true
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.sim = NewSim(cfg)
	g.pointer = g.sim.paddle.CenterX()
	g.score = hud.NewCounter(scoreRollSeconds)
	g.score.Reset(0)
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.sim.GameState().GameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.sim.GameState().GameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.sim.Step(g.paddleInput(in))

	g.score.SetTarget(g.sim.GameState().Score)
	g.score.Update(g.tickSeconds())

	result := core.StepResult{State: g.State()}
	for _, e := range events {
		result.Events = append(result.Events, e)
	}
	return result
}

// paddleInput turns pointer motion and arrow keys into a paddle target.
// Pointer positions outside the open interval (0, canvas width) are ignored.
func (g *Game) paddleInput(in core.InputFrame) Input {
	w := g.cfg.Canvas.Width
	moved := false

	if x := in.Pointer(); x != nil && *x > 0 && *x < w {
		g.pointer = *x
		moved = true
	}
	if in.Has(core.ActionLeft) {
		g.pointer = core.Clamp(g.pointer-keyStep, 0, w)
		moved = true
	}
	if in.Has(core.ActionRight) {
		g.pointer = core.Clamp(g.pointer+keyStep, 0, w)
		moved = true
	}

	if !moved {
		return Input{}
	}
	return Target(g.pointer)
}

func (g *Game) tickSeconds() float32 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return 1 / float32(rate)
}

// Canvas returns the drawing area size.
func (g *Game) Canvas() (float64, float64) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

// Draw renders the current frame.
func (g *Game) Draw(dst core.Surface) {
	Renderer{}.Draw(dst, g.sim.State(), g.score.Value())

	if g.paused {
		w, h := dst.Size()
		dst.FillText("PAUSED", w/2-60, h/2, 40, core.ColorWhite)
	}
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.sim.GameState()
	st.Paused = g.paused
	return st
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
