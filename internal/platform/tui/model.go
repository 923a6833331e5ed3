package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seal-arcade/internal/core"
	"github.com/vovakirdan/seal-arcade/internal/frame"
	"github.com/vovakirdan/seal-arcade/internal/registry"
	"github.com/vovakirdan/seal-arcade/internal/storage"
)

// Smallest terminal the canvas is rasterised onto.
const (
	minScreenW = 20
	minScreenH = 8
)

// Model is the Bubble Tea model for running one arcade game.
//
// Key and mouse messages only write to the pending input buffer. Each frame
// from the driver takes one snapshot of it and steps the game once.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	fixedSeed bool // Seed came from the user; restarts replay it
	input     *core.PendingInput
	driver    *frame.Driver
	keys      *KeyMapper
	gameState core.GameState

	embedded   bool // Hosted by a session; back returns to the menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	fixed := cfg.Seed != 0
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = frame.DefaultRate
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		fixedSeed: fixed,
		input:     core.NewPendingInput(),
		driver:    frame.NewDriver(cfg.TickRate),
		keys:      NewKeyMapper(),
	}
}

// newEmbeddedModel creates a game model hosted by a session menu.
func newEmbeddedModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := NewModel(game, store, cfg)
	m.embedded = true
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.driver.Start()
	return waitFrame(m.driver)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.ApplyMouse(msg, m.mouseMapping(), m.input)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.driver != m.driver || m.driver.Cancelled() {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.ApplyKey(msg, m.input) {
		m.stop()
		m.quitting = true
		return m, tea.Quit
	}

	// B leaves a finished or paused game
	action, _ := m.keys.MapKey(msg)
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.stop()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.input.Snapshot()

	// Restart with a fresh seed unless the user pinned one
	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		return m, waitFrame(m.driver)
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.scoreSaved = false
	}
	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Outcome.String())
		}
		m.scoreSaved = true
	}

	return m, waitFrame(m.driver)
}

// stop cancels the frame driver. Safe to call more than once.
func (m Model) stop() {
	m.driver.Cancel()
}

// canvas returns a surface mapping the game canvas onto the screen.
func (m Model) canvas() *Canvas {
	w, h := m.game.Canvas()
	return NewCanvas(m.screen, w, h)
}

// mouseMapping describes how mouse events reach the current game.
func (m Model) mouseMapping() MouseMapping {
	return MouseMapping{
		Pointer:   registry.UsesPointer(m.game),
		ToCanvasX: m.canvas().ToCanvasX,
	}
}

// tooSmall reports whether the terminal can host the canvas.
func (m Model) tooSmall() bool {
	return m.screen.Width() < minScreenW || m.screen.Height() < minScreenH
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Draw(m.canvas())

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.tooSmall() {
		return centerText("Window too small", m.screen.Width())
	}

	m.game.Draw(m.canvas())
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)
	defer model.stop()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion steers the paddle
	)

	_, err := p.Run()
	return err
}
