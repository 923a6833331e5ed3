package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seal-arcade/internal/core"
	"github.com/vovakirdan/seal-arcade/internal/frame"
	"github.com/vovakirdan/seal-arcade/internal/storage"
)

// fakeGame records the input it is stepped with.
type fakeGame struct {
	pointer bool
	state   core.GameState
	steps   []core.InputFrame
	resets  []core.RuntimeConfig
	fill    core.Color
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{Lives: 3}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Canvas() (float64, float64) { return 800, 600 }

func (g *fakeGame) Draw(dst core.Surface) {
	core.ClearSurface(dst)
	if !g.fill.IsZero() {
		dst.FillRect(0, 0, 800, 600, g.fill)
	}
}

func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) UsesPointer() bool { return g.pointer }

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	m.game.Reset(m.config)
	t.Cleanup(m.stop)
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func tick(m Model) Model {
	m, _ = update(m, TickMsg{Time: time.Now(), driver: m.driver})
	return m
}

func TestModelStepsOncePerTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if len(g.steps) != 0 {
		t.Fatal("key presses must not step the game")
	}

	m = tick(m)
	m = tick(m)
	if len(g.steps) != 2 {
		t.Fatalf("steps = %d, expected 2", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionRight) || !g.steps[0].Has(core.ActionFire) {
		t.Errorf("first tick input = %+v", g.steps[0].Actions)
	}
	if g.steps[1].Has(core.ActionRight) || g.steps[1].Has(core.ActionFire) {
		t.Error("key presses should be consumed by one tick")
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	other := frame.NewDriver(60)
	defer other.Cancel()
	m, cmd := update(m, TickMsg{Time: time.Now(), driver: other})
	if len(g.steps) != 0 || cmd != nil {
		t.Error("a tick from another driver should be dropped")
	}

	m.stop()
	tick(m)
	if len(g.steps) != 0 {
		t.Error("no tick should step the game after the driver is cancelled")
	}
}

func TestModelPointerMotion(t *testing.T) {
	g := &fakeGame{pointer: true}
	m := newTestModel(t, g, nil)

	m, _ = update(m, tea.MouseMsg{X: 40, Y: 3, Action: tea.MouseActionMotion})
	tick(m)

	if x := g.steps[0].Pointer(); x == nil || *x != 405 {
		t.Errorf("pointer = %v, expected column 40 mapped to 405", x)
	}
}

func TestModelQuitCancelsDriver(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)

	m, cmd := update(m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should end the program")
	}
	if !m.driver.Cancelled() || !m.IsQuitting() {
		t.Error("quitting should cancel the frame driver")
	}
	if m.View() != "" {
		t.Error("a quitting model should render nothing")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(t, g, store)
	g.state = core.GameState{Score: 450, GameOver: true, Outcome: core.OutcomeWin}

	for range 3 {
		m = tick(m)
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 450 || scores[0].Outcome != storage.OutcomeWin {
		t.Errorf("saved %+v", scores[0])
	}
}

func TestModelRestartKeepsPinnedSeed(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	g.state = core.GameState{GameOver: true, Outcome: core.OutcomeLoss}
	m = tick(m)

	m, _ = update(m, runeKey("r"))
	m = tick(m)

	if len(g.resets) != 2 {
		t.Fatalf("resets = %d, expected 2", len(g.resets))
	}
	if g.resets[1].Seed != 7 {
		t.Errorf("restart seed = %d, expected the pinned seed 7", g.resets[1].Seed)
	}
	if len(g.steps) != 1 {
		t.Error("the restart tick should not step the game")
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}
}

func TestModelBack(t *testing.T) {
	g := &fakeGame{}
	m := newEmbeddedModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	m.game.Reset(m.config)
	t.Cleanup(m.stop)

	m, _ = update(m, runeKey("b"))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	g.state.Paused = true
	m = tick(m)
	m, _ = update(m, runeKey("b"))
	if !m.BackToMenu() || !m.driver.Cancelled() {
		t.Error("back from a paused game should return to the menu and stop the driver")
	}
	if m.IsQuitting() {
		t.Error("an embedded game should not quit the program")
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{fill: core.ColorRed}
	m := newTestModel(t, g, nil)

	if !strings.Contains(m.View(), string(blockRune)) {
		t.Error("view should show the rasterised canvas")
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 10, Height: 4})
	if !strings.Contains(m.View(), "Window too small") {
		t.Errorf("view on a tiny terminal = %q", m.View())
	}
}

func TestWaitFrame(t *testing.T) {
	d := frame.NewDriver(200)
	d.Start()

	msg := waitFrame(d)()
	tm, ok := msg.(TickMsg)
	if !ok || tm.driver != d {
		t.Fatalf("waitFrame returned %#v, expected a tick from the driver", msg)
	}

	d.Cancel()
	if msg := waitFrame(d)(); msg != nil {
		t.Errorf("waitFrame after cancel = %#v, expected nil", msg)
	}
}
