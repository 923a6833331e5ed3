package breakout

import (
	"github.com/vovakirdan/seal-arcade/internal/config"
	"github.com/vovakirdan/seal-arcade/internal/core"
)

// Input is the game-level command set for one tick.
// PaddleTarget is the pointer x in canvas pixels, or nil when the pointer
// did not move.
type Input struct {
	PaddleTarget *float64
}

// Target returns an Input steering the paddle towards x.
func Target(x float64) Input {
	return Input{PaddleTarget: &x}
}

// State is a copy of the simulation state.
type State struct {
	Paddle   Paddle
	Ball     Ball
	Bricks   []Brick
	Score    int
	Lives    int
	GameOver bool
	Outcome  core.Outcome
	Tick     uint64
}

// Sim owns all Brick Breaker state. It has no UI dependencies.
type Sim struct {
	cfg config.BreakoutConfig

	paddle   Paddle
	ball     Ball
	level    *Level
	score    int
	lives    int
	gameOver bool
	outcome  core.Outcome
	tick     uint64
}

// NewSim creates a simulation from cfg. The brick grid is built once here.
func NewSim(cfg config.BreakoutConfig) *Sim {
	return &Sim{
		cfg:    cfg,
		paddle: Paddle{Rect: core.NewRect(cfg.Paddle.X, cfg.Paddle.Y, cfg.Paddle.Width, cfg.Paddle.Height)},
		ball: Ball{
			Circle: core.Circle{X: cfg.Ball.X, Y: cfg.Ball.Y, R: cfg.Ball.Radius},
			DX:     cfg.Ball.DX,
			DY:     cfg.Ball.DY,
			Speed:  cfg.Ball.Speed,
		},
		level: NewLevel(cfg.Bricks),
		lives: cfg.Gameplay.Lives,
	}
}

// Config returns the configuration the simulation was built with.
func (s *Sim) Config() config.BreakoutConfig {
	return s.cfg
}

// Step advances the simulation by one tick and returns what happened.
// Once the game is over Step does nothing.
func (s *Sim) Step(in Input) []Event {
	if s.gameOver {
		return nil
	}
	s.tick++

	var events []Event

	if in.PaddleTarget != nil {
		s.paddle.MoveTo(*in.PaddleTarget, s.cfg.Canvas.Width)
	}

	s.ball.Move()
	bounceWalls(&s.ball, s.cfg.Canvas.Width)

	if fellOff(&s.ball, s.cfg.Canvas.Height) {
		s.lives = max(s.lives-1, 0)
		events = append(events, LifeLost{LivesLeft: s.lives})
		if s.lives == 0 {
			s.gameOver = true
			s.outcome = core.OutcomeLoss
			return append(events, Lost{Score: s.score})
		}
		s.serve()
	}

	if s.ball.Overlaps(s.paddle.Rect) {
		offset := deflect(&s.ball, s.paddle, s.cfg.Physics.PaddleDeflection)
		events = append(events, PaddleHit{Offset: offset})
	}

	events = s.hitBricks(events)

	if s.level.CountVisible() == 0 {
		s.gameOver = true
		s.outcome = core.OutcomeWin
		events = append(events, Won{Score: s.score})
	}
	return events
}

// serve puts the ball back on top of the paddle centre, heading up and right.
func (s *Sim) serve() {
	s.ball.X = s.paddle.CenterX()
	s.ball.Y = s.paddle.Y - s.ball.R
	s.ball.DX = s.ball.Speed
	s.ball.DY = -s.ball.Speed
}

// hitBricks finds every visible brick the ball overlaps, then breaks them
// all. Each break reverses vertical direction, so two bricks hit on the same
// tick cancel out.
func (s *Sim) hitBricks(events []Event) []Event {
	var hit []int
	for i, b := range s.level.Bricks {
		if b.Visible && s.ball.Overlaps(b.Rect) {
			hit = append(hit, i)
		}
	}

	points := s.cfg.Gameplay.BrickPoints
	for _, i := range hit {
		b := &s.level.Bricks[i]
		b.Visible = false
		s.ball.BounceY()
		s.score += points
		events = append(events, BrickDestroyed{Row: b.Row, Col: b.Col, Points: points})
	}
	return events
}

// State returns a deep copy of the current state.
func (s *Sim) State() State {
	return State{
		Paddle:   s.paddle,
		Ball:     s.ball,
		Bricks:   s.level.Clone().Bricks,
		Score:    s.score,
		Lives:    s.lives,
		GameOver: s.gameOver,
		Outcome:  s.outcome,
		Tick:     s.tick,
	}
}

// GameState reports the platform-level view of the simulation.
func (s *Sim) GameState() core.GameState {
	return core.GameState{
		Score:    s.score,
		Lives:    s.lives,
		GameOver: s.gameOver,
		Outcome:  s.outcome,
	}
}
