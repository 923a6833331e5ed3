package breakout

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/seal-arcade/internal/config"
	"github.com/vovakirdan/seal-arcade/internal/core"
)

func newSim() *Sim {
	return NewSim(config.DefaultBreakoutConfig())
}

// place puts the ball at (x, y) with velocity (dx, dy).
func (s *Sim) place(x, y, dx, dy float64) {
	s.ball.X, s.ball.Y = x, y
	s.ball.DX, s.ball.DY = dx, dy
}

// clearAllBut hides every brick except the one at row, col.
func (s *Sim) clearAllBut(row, col int) {
	for i := range s.level.Bricks {
		b := &s.level.Bricks[i]
		b.Visible = b.Row == row && b.Col == col
	}
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func TestNewSimDefaults(t *testing.T) {
	st := newSim().State()

	if st.Paddle.Rect != core.NewRect(350, 550, 100, 15) {
		t.Errorf("paddle = %+v", st.Paddle)
	}
	b := st.Ball
	if b.X != 400 || b.Y != 540 || b.R != 8 || b.DX != 4 || b.DY != -4 || b.Speed != 4 {
		t.Errorf("ball = %+v", b)
	}
	if st.Lives != 3 || st.Score != 0 || st.GameOver || st.Outcome != core.OutcomeNone {
		t.Errorf("initial state = %+v", st)
	}
}

func TestLevelLayout(t *testing.T) {
	l := NewLevel(config.DefaultBreakoutConfig().Bricks)

	if len(l.Bricks) != 45 || l.CountVisible() != 45 {
		t.Fatalf("bricks = %d visible = %d, expected 45", len(l.Bricks), l.CountVisible())
	}

	tests := []struct {
		row, col int
		x, y     float64
		color    core.Color
	}{
		{0, 0, 10, 40, core.ColorRed},
		{0, 8, 730, 40, core.ColorRed},
		{1, 3, 280, 70, core.ColorOrange},
		{2, 0, 10, 100, core.ColorYellow},
		{3, 5, 460, 130, core.ColorGreen},
		{4, 8, 730, 160, core.ColorBlue},
	}
	for _, tc := range tests {
		b := l.At(tc.row, tc.col)
		if b.X != tc.x || b.Y != tc.y || b.W != 80 || b.H != 20 {
			t.Errorf("brick(%d,%d) = %+v, expected at (%v,%v) 80x20", tc.row, tc.col, b.Rect, tc.x, tc.y)
		}
		if b.Color != tc.color {
			t.Errorf("brick(%d,%d) color = %s, expected %s", tc.row, tc.col, b.Color.Hex(), tc.color.Hex())
		}
	}
}

func TestLevelColorFallback(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Bricks
	cfg.Colors = nil
	if c := NewLevel(cfg).At(3, 0).Color; c != core.ColorRed {
		t.Errorf("missing colours should fall back to red, got %s", c.Hex())
	}

	cfg.Colors = []string{"#00FF00", "nope"}
	l := NewLevel(cfg)
	if l.At(0, 0).Color != core.ColorGreen || l.At(1, 0).Color != core.ColorRed || l.At(2, 0).Color != core.ColorGreen {
		t.Error("colours should cycle per row with bad entries falling back to red")
	}
}

func TestPaddleTarget(t *testing.T) {
	tests := []struct {
		target float64
		want   float64
	}{
		{400, 350},
		{500, 450},
		{10, 0},
		{790, 700},
	}

	for _, tc := range tests {
		s := newSim()
		s.Step(Target(tc.target))
		if got := s.State().Paddle.X; got != tc.want {
			t.Errorf("target %v: paddle x = %v, expected %v", tc.target, got, tc.want)
		}
	}

	s := newSim()
	s.Step(Input{})
	if s.State().Paddle.X != 350 {
		t.Error("no target should leave the paddle alone")
	}
}

func TestDeflect(t *testing.T) {
	paddle := Paddle{Rect: core.NewRect(350, 550, 100, 15)}

	tests := []struct {
		name   string
		x      float64
		wantDX float64
	}{
		{"centre", 400, 0},
		{"right edge", 450, 5},
		{"left edge", 350, -5},
		{"halfway right", 425, 2.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Circle: core.Circle{X: tc.x, Y: 540, R: 8}, DX: 4, DY: -4}
			deflect(&b, paddle, 5)
			if b.DX != tc.wantDX || b.DY != 4 {
				t.Errorf("dx=%v dy=%v, expected dx=%v dy=4", b.DX, b.DY, tc.wantDX)
			}
		})
	}
}

func TestPaddleBounceInStep(t *testing.T) {
	s := newSim()
	s.place(400, 540, 0, 4)

	events := s.Step(Input{})
	b := s.State().Ball
	if b.DX != 0 || b.DY != -4 {
		t.Errorf("after centre hit dx=%v dy=%v, expected 0 and -4", b.DX, b.DY)
	}
	if countEvents[PaddleHit](events) != 1 {
		t.Error("expected one PaddleHit event")
	}
}

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name           string
		x, y, dx, dy   float64
		wantDX, wantDY float64
	}{
		{"right wall", 795, 300, 4, 4, -4, 4},
		{"left wall", 5, 300, -4, 4, 4, 4},
		{"top-left corner", 5, 10, -4, -4, 4, 4},
		{"open space", 400, 300, 4, 4, 4, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSim()
			s.place(tc.x, tc.y, tc.dx, tc.dy)
			s.Step(Input{})
			b := s.State().Ball
			if b.DX != tc.wantDX || b.DY != tc.wantDY {
				t.Errorf("velocity = (%v,%v), expected (%v,%v)", b.DX, b.DY, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestFloorReservesBall(t *testing.T) {
	s := newSim()
	s.place(100, 590, 0, 4)

	events := s.Step(Input{})
	st := s.State()
	if st.Lives != 2 {
		t.Errorf("lives = %d, expected 2", st.Lives)
	}
	if st.Ball.X != 400 || st.Ball.Y != 542 || st.Ball.DX != 4 || st.Ball.DY != -4 {
		t.Errorf("re-served ball = %+v, expected (400,542) moving (4,-4)", st.Ball)
	}
	if countEvents[LifeLost](events) != 1 || countEvents[PaddleHit](events) != 0 {
		t.Errorf("events = %v, expected one LifeLost and no paddle hit", events)
	}
	if st.GameOver {
		t.Error("losing one of three lives should not end the game")
	}
}

func TestLossOnLastLife(t *testing.T) {
	s := newSim()
	s.lives = 1
	s.place(100, 590, 0, 4)

	events := s.Step(Input{})
	st := s.State()
	if !st.GameOver || st.Outcome != core.OutcomeLoss || st.Lives != 0 {
		t.Fatalf("state = over:%v outcome:%v lives:%d, expected a loss", st.GameOver, st.Outcome, st.Lives)
	}
	if countEvents[Lost](events) != 1 || countEvents[Won](events) != 0 {
		t.Error("expected a Lost event and no Won event")
	}
	if st.Ball.Y != 594 {
		t.Errorf("ball should stay where it fell, y = %v", st.Ball.Y)
	}

	before := st.Hash()
	for range 5 {
		if ev := s.Step(Target(500)); ev != nil {
			t.Errorf("Step after game over returned %v", ev)
		}
	}
	if s.State().Hash() != before {
		t.Error("state changed after game over")
	}
}

func TestSingleBrickHit(t *testing.T) {
	s := newSim()
	s.place(50, 74, 0, -4)

	events := s.Step(Input{})
	st := s.State()
	if st.Score != 10 {
		t.Errorf("score = %d, expected 10", st.Score)
	}
	if st.Ball.DY != 4 {
		t.Errorf("dy = %v, expected 4", st.Ball.DY)
	}
	if s.level.At(1, 0).Visible {
		t.Error("brick (1,0) should be destroyed")
	}
	if s.level.CountVisible() != 44 {
		t.Errorf("visible = %d, expected 44", s.level.CountVisible())
	}
	if countEvents[BrickDestroyed](events) != 1 {
		t.Error("expected one BrickDestroyed event")
	}
}

func TestDoubleBrickHitKeepsDirection(t *testing.T) {
	s := newSim()
	// Straddles bricks (0,0) and (0,1) after moving to y=50.
	s.place(95, 54, 0, -4)

	events := s.Step(Input{})
	st := s.State()
	if st.Ball.DY != -4 {
		t.Errorf("dy = %v, expected -4 after two reversals", st.Ball.DY)
	}
	if st.Score != 20 {
		t.Errorf("score = %d, expected 20", st.Score)
	}
	if s.level.At(0, 0).Visible || s.level.At(0, 1).Visible {
		t.Error("both bricks should be destroyed")
	}
	if countEvents[BrickDestroyed](events) != 2 {
		t.Error("expected two BrickDestroyed events")
	}
}

func TestWinAfterLastBrick(t *testing.T) {
	s := newSim()
	s.clearAllBut(1, 0)
	s.place(50, 74, 0, -4)

	events := s.Step(Input{})
	st := s.State()
	if !st.GameOver || st.Outcome != core.OutcomeWin {
		t.Fatalf("over=%v outcome=%v, expected a win", st.GameOver, st.Outcome)
	}
	if countEvents[Won](events) != 1 || countEvents[Lost](events) != 0 {
		t.Error("expected a Won event and no Lost event")
	}
	if st.Lives != 3 {
		t.Errorf("lives = %d, a win should not cost lives", st.Lives)
	}
	if s.GameState().Outcome == core.OutcomeLoss {
		t.Error("a win must be distinguishable from a loss")
	}
}

func TestClearingEveryBrickWins(t *testing.T) {
	s := newSim()
	// Bottom row first so the ball never clips a brick below its target.
	for row := 4; row >= 0; row-- {
		for col := range 9 {
			if s.GameState().GameOver {
				t.Fatalf("game ended early at brick (%d,%d)", row, col)
			}
			b := s.level.At(row, col)
			cx, cy := b.Center()
			// Approach from below so the ball reaches the brick on this tick.
			s.place(cx, cy+b.H/2+s.ball.R+2, 0, -4)
			s.Step(Input{})
		}
	}

	st := s.State()
	if !st.GameOver || st.Outcome != core.OutcomeWin || st.Score != 450 {
		t.Errorf("over=%v outcome=%v score=%d, expected a win with 450", st.GameOver, st.Outcome, st.Score)
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	s := newSim()

	prev := s.State()
	for range 20000 {
		var in Input
		if rng.Intn(3) > 0 {
			in = Target(rng.Float64() * 800)
		}
		s.Step(in)
		st := s.State()

		if st.Score < prev.Score {
			t.Fatalf("score decreased %d -> %d", prev.Score, st.Score)
		}
		if st.Lives > prev.Lives || st.Lives < 0 {
			t.Fatalf("lives went %d -> %d", prev.Lives, st.Lives)
		}
		if prev.GameOver && !st.GameOver {
			t.Fatal("game over was undone")
		}
		for i, b := range st.Bricks {
			if b.Visible && !prev.Bricks[i].Visible {
				t.Fatalf("brick (%d,%d) reappeared", b.Row, b.Col)
			}
		}
		if st.Paddle.X < 0 || st.Paddle.Right() > 800 {
			t.Fatalf("paddle left the canvas: %+v", st.Paddle)
		}
		prev = st
		if st.GameOver {
			break
		}
	}
}

func TestStateIsACopy(t *testing.T) {
	s := newSim()
	st := s.State()
	st.Bricks[0].Visible = false

	if !s.level.At(0, 0).Visible {
		t.Error("mutating a State changed the simulation")
	}
}
