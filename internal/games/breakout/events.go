package breakout

// Event is something that happened during a breakout tick.
type Event interface {
	EventName() string
	breakoutEvent()
}

// PaddleHit is emitted when the ball bounces off the paddle.
// Offset is the hit position relative to the paddle centre, -1 to 1.
type PaddleHit struct {
	Offset float64
}

func (PaddleHit) breakoutEvent() {}
func (PaddleHit) EventName() string { return "paddle_hit" }

// BrickDestroyed is emitted for every brick the ball breaks.
type BrickDestroyed struct {
	Row, Col int
	Points   int
}

func (BrickDestroyed) breakoutEvent() {}
func (BrickDestroyed) EventName() string { return "brick_destroyed" }

// LifeLost is emitted when the ball falls past the paddle.
type LifeLost struct {
	LivesLeft int
}

func (LifeLost) breakoutEvent() {}
func (LifeLost) EventName() string { return "life_lost" }

// Won is emitted when the last brick is destroyed.
type Won struct {
	Score int
}

func (Won) breakoutEvent() {}
func (Won) EventName() string { return "won" }

// Lost is emitted when the last life is lost.
type Lost struct {
	Score int
}

func (Lost) breakoutEvent() {}
func (Lost) EventName() string { return "lost" }
