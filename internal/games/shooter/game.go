package shooter

import (
	"context"
	"math/rand"

	"github.com/vovakirdan/seal-arcade/internal/assets"
	"github.com/vovakirdan/seal-arcade/internal/config"
	"github.com/vovakirdan/seal-arcade/internal/core"
	"github.com/vovakirdan/seal-arcade/internal/hud"
	"github.com/vovakirdan/seal-arcade/internal/registry"
)

// scoreRollSeconds is how long the HUD score takes to catch up after a hit.
const scoreRollSeconds = 0.4

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// loader fetches the seal sprites. Shared by every shooter instance so SSH
// sessions reuse decoded images.
var loader = assets.NewLoader(nil)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetAssetLoader replaces the loader used for sprites.
func SetAssetLoader(l *assets.Loader) {
	if l != nil {
		loader = l
	}
}

// Game adapts the shooter simulation to the arcade platform: pause, restart,
// HUD animation and drawing.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.ShooterConfig
	sim      *Sim
	renderer Renderer
	score    *hud.Counter
	paused   bool
}

// New creates a new Seal Shooter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Seal Shooter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	rng := rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	g.sim = NewSim(cfg, rng)

	g.renderer = Renderer{
		Player: loader.Load(context.Background(), cfg.Assets.Player),
		Enemy:  loader.Load(context.Background(), cfg.Assets.Enemy),
	}

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

	events := g.sim.Step(Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Fire:  in.Has(core.ActionFire),
	})

	g.score.SetTarget(g.sim.GameState().Score)
	g.score.Update(g.tickSeconds())

	result := core.StepResult{State: g.State()}
	for _, e := range events {
		result.Events = append(result.Events, e)
	}
	return result
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
	g.renderer.Draw(dst, g.sim.State(), g.score.Value())

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
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}
