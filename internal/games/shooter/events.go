package shooter

// Event is something that happened during a shooter tick.
type Event interface {
	EventName() string
	shooterEvent()
}

// BulletFired is emitted when the player fires.
type BulletFired struct {
	X, Y float64
}

func (BulletFired) shooterEvent() {}
func (BulletFired) EventName() string { return "bullet_fired" }

// EnemySpawned is emitted when a new enemy enters above the canvas.
type EnemySpawned struct {
	X float64
}

func (EnemySpawned) shooterEvent() {}
func (EnemySpawned) EventName() string { return "enemy_spawned" }

// EnemyDestroyed is emitted when a bullet hits an enemy.
type EnemyDestroyed struct {
	X, Y   float64
	Points int
}

func (EnemyDestroyed) shooterEvent() {}
func (EnemyDestroyed) EventName() string { return "enemy_destroyed" }

// EnemyEscaped is emitted when an enemy leaves through the bottom edge.
// Escapes cost nothing.
type EnemyEscaped struct {
	X float64
}

func (EnemyEscaped) shooterEvent() {}
func (EnemyEscaped) EventName() string { return "enemy_escaped" }

// PlayerHit is emitted once per enemy that touches the player.
type PlayerHit struct {
	LivesLeft int
}

func (PlayerHit) shooterEvent() {}
func (PlayerHit) EventName() string { return "player_hit" }

// GameOver is emitted on the tick lives reach zero.
type GameOver struct {
	Score int
}

func (GameOver) shooterEvent() {}
func (GameOver) EventName() string { return "game_over" }
