// Package window runs a game in a desktop window using Ebitengine.
// The canvas is drawn at native pixel size; input is polled once per tick
// into the same pending buffer the terminal frontend uses.
package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/seal-arcade/internal/core"
	"github.com/vovakirdan/seal-arcade/internal/frame"
	"github.com/vovakirdan/seal-arcade/internal/registry"
	"github.com/vovakirdan/seal-arcade/internal/storage"
)

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game      registry.Game
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	fixedSeed bool
	input     *core.PendingInput
	mouse     mouseTracker
	surface   *surface
	state     core.GameState

	scoreSaved bool
	done       bool
}

// New prepares game for a window. A nil store disables score saving.
func New(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	fixed := cfg.Seed != 0
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = frame.DefaultRate
	}
	if logger == nil {
		logger = log.Default()
	}

	// The canvas size comes from the game's config, loaded on Reset
	game.Reset(cfg)
	w, h := game.Canvas()
	surf, err := newSurface(w, h)
	if err != nil {
		return nil, err
	}

	return &Game{
		game:      game,
		store:     store,
		logger:    logger,
		config:    cfg,
		fixedSeed: fixed,
		input:     core.NewPendingInput(),
		surface:   surf,
		state:     game.State(),
	}, nil
}

// Update polls input and steps the simulation once.
func (g *Game) Update() error {
	if pollKeys(inpututil.KeyPressDuration, g.input) {
		return ebiten.Termination
	}

	x, _ := ebiten.CursorPosition()
	g.mouse.apply(mouseState{
		x:     x,
		left:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		right: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}, registry.UsesPointer(g.game), g.input)

	g.tick()
	if g.done {
		return ebiten.Termination
	}
	return nil
}

// tick consumes the pending input and advances the game by one step.
func (g *Game) tick() {
	in := g.input.Snapshot()

	// B leaves a finished or paused game
	if in.Has(core.ActionBack) && (g.state.GameOver || g.state.Paused) {
		g.done = true
		return
	}

	if in.Has(core.ActionRestart) && g.state.GameOver {
		if !g.fixedSeed {
			g.config.Seed = time.Now().UnixNano()
		}
		g.game.Reset(g.config)
		g.state = g.game.State()
		g.scoreSaved = false
		g.logger.Debug("restarted", "game", g.game.ID(), "seed", g.config.Seed)
		return
	}

	g.state = g.game.Step(in).State
	if !g.state.GameOver {
		g.scoreSaved = false
		return
	}
	if g.scoreSaved {
		return
	}
	g.scoreSaved = true
	g.logger.Info("game over", "game", g.game.ID(), "score", g.state.Score, "outcome", g.state.Outcome)
	if g.store != nil && g.state.Score > 0 {
		if _, err := g.store.SaveScore(g.game.ID(), g.state.Score, g.state.Outcome.String()); err != nil {
			g.logger.Warn("could not save score", "error", err)
		}
	}
}

// Draw renders the game onto the window.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.target(screen)
	g.game.Draw(g.surface)
}

// Layout keeps the logical screen at the canvas size; Ebitengine scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.game.Canvas()
	return int(w), int(h)
}

// State returns the last game state seen by the window.
func (g *Game) State() core.GameState {
	return g.state
}

// Run opens a window and plays game until it is closed or the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	g, err := New(game, store, cfg, logger)
	if err != nil {
		return err
	}

	w, h := game.Canvas()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle("Seal Arcade - " + game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.config.TickRate)

	g.logger.Info("window opened", "game", game.ID(), "fps", g.config.TickRate, "seed", g.config.Seed)
	return ebiten.RunGame(g)
}
