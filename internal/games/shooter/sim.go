// Package shooter implements Seal Shooter: a vertical shooter where the
// player seal fires at falling enemy seals.
package shooter

import (
	"math/rand"

	"github.com/vovakirdan/seal-arcade/internal/config"
	"github.com/vovakirdan/seal-arcade/internal/core"
)

// Entity is anything that moves on the canvas: the player, an enemy or a bullet.
type Entity struct {
	core.Rect
	Speed float64
}

// Input is the game-level command set for one tick.
// Left and Right may both be set; each applies its own step.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// State is a copy of the simulation state.
type State struct {
	Player   Entity
	Enemies  []Entity
	Bullets  []Entity
	Score    int
	Lives    int
	GameOver bool
	Tick     uint64
}

// Sim owns all Seal Shooter state. It has no UI dependencies.
type Sim struct {
	cfg config.ShooterConfig
	rng *rand.Rand

	player   Entity
	enemies  []Entity
	bullets  []Entity
	score    int
	lives    int
	gameOver bool
	tick     uint64
}

// NewSim creates a simulation from cfg. rng drives enemy spawning; a nil rng
// uses a fixed seed.
func NewSim(cfg config.ShooterConfig, rng *rand.Rand) *Sim {
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) //#nosec G404 -- gameplay randomness
	}
	return &Sim{
		cfg: cfg,
		rng: rng,
		player: Entity{
			Rect:  core.NewRect(cfg.Player.X, cfg.Player.Y, cfg.Player.Width, cfg.Player.Height),
			Speed: cfg.Player.Speed,
		},
		enemies: make([]Entity, 0, 16),
		bullets: make([]Entity, 0, 16),
		lives:   cfg.Gameplay.Lives,
	}
}

// Config returns the configuration the simulation was built with.
func (s *Sim) Config() config.ShooterConfig {
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

	s.movePlayer(in)

	if in.Fire {
		events = append(events, s.fire())
	}

	if s.rng.Float64() < s.cfg.Enemies.SpawnChance {
		events = append(events, s.spawnEnemy())
	}

	// Bullets still resolve on the tick that ends the game.
	events = s.updateEnemies(events)
	return s.updateBullets(events)
}

func (s *Sim) movePlayer(in Input) {
	if in.Left {
		s.player.X -= s.player.Speed
	}
	if in.Right {
		s.player.X += s.player.Speed
	}
	s.player.X = core.Clamp(s.player.X, 0, s.cfg.Canvas.Width-s.player.W)
}

// fire adds one bullet centred on the player's top edge.
func (s *Sim) fire() Event {
	b := s.cfg.Bullets
	bullet := Entity{
		Rect:  core.NewRect(s.player.CenterX()-b.Width/2, s.player.Y, b.Width, b.Height),
		Speed: b.Speed,
	}
	s.bullets = append(s.bullets, bullet)
	return BulletFired{X: bullet.X, Y: bullet.Y}
}

func (s *Sim) spawnEnemy() Event {
	e := s.cfg.Enemies
	span := max(s.cfg.Canvas.Width-e.SpawnMargin, 0)
	enemy := Entity{
		Rect:  core.NewRect(s.rng.Float64()*span, e.SpawnY, e.Width, e.Height),
		Speed: e.Speed,
	}
	s.enemies = append(s.enemies, enemy)
	return EnemySpawned{X: enemy.X}
}

// updateEnemies moves enemies down, then resolves player hits and escapes
// against the moved positions before removing anything.
func (s *Sim) updateEnemies(events []Event) []Event {
	for i := range s.enemies {
		s.enemies[i].Y += s.enemies[i].Speed
	}

	hits := 0
	kept := s.enemies[:0]
	for _, enemy := range s.enemies {
		switch {
		case enemy.Intersects(s.player.Rect):
			hits++
		case enemy.Y >= s.cfg.Canvas.Height:
			events = append(events, EnemyEscaped{X: enemy.X})
		default:
			kept = append(kept, enemy)
		}
	}
	clear(s.enemies[len(kept):])
	s.enemies = kept

	for range hits {
		s.lives = max(s.lives-1, 0)
		events = append(events, PlayerHit{LivesLeft: s.lives})
	}
	if hits > 0 && s.lives == 0 {
		s.gameOver = true
		events = append(events, GameOver{Score: s.score})
	}
	return events
}

// updateBullets moves bullets up, then lets each bullet claim the first
// unclaimed enemy it overlaps. Claimed enemies and spent bullets are removed
// after all bullets are checked.
func (s *Sim) updateBullets(events []Event) []Event {
	for i := range s.bullets {
		s.bullets[i].Y -= s.bullets[i].Speed
	}

	claimed := make([]bool, len(s.enemies))
	keptBullets := s.bullets[:0]
	for _, bullet := range s.bullets {
		hit := -1
		for j, enemy := range s.enemies {
			if !claimed[j] && bullet.Intersects(enemy.Rect) {
				hit = j
				break
			}
		}
		if hit >= 0 {
			claimed[hit] = true
			s.score += s.cfg.Gameplay.EnemyPoints
			events = append(events, EnemyDestroyed{
				X:      s.enemies[hit].X,
				Y:      s.enemies[hit].Y,
				Points: s.cfg.Gameplay.EnemyPoints,
			})
			continue
		}
		if bullet.Y < 0 {
			continue
		}
		keptBullets = append(keptBullets, bullet)
	}
	clear(s.bullets[len(keptBullets):])
	s.bullets = keptBullets

	keptEnemies := s.enemies[:0]
	for j, enemy := range s.enemies {
		if !claimed[j] {
			keptEnemies = append(keptEnemies, enemy)
		}
	}
	clear(s.enemies[len(keptEnemies):])
	s.enemies = keptEnemies

	return events
}

// State returns a deep copy of the current state.
func (s *Sim) State() State {
	return State{
		Player:   s.player,
		Enemies:  append([]Entity(nil), s.enemies...),
		Bullets:  append([]Entity(nil), s.bullets...),
		Score:    s.score,
		Lives:    s.lives,
		GameOver: s.gameOver,
		Tick:     s.tick,
	}
}

// GameState reports the platform-level view of the simulation.
func (s *Sim) GameState() core.GameState {
	outcome := core.OutcomeNone
	if s.gameOver {
		outcome = core.OutcomeLoss
	}
	return core.GameState{
		Score:    s.score,
		Lives:    s.lives,
		GameOver: s.gameOver,
		Outcome:  outcome,
	}
}

// addEnemy places an enemy directly.
func (s *Sim) addEnemy(r core.Rect, speed float64) {
	s.enemies = append(s.enemies, Entity{Rect: r, Speed: speed})
}

// addBullet places a bullet directly.
func (s *Sim) addBullet(r core.Rect, speed float64) {
	s.bullets = append(s.bullets, Entity{Rect: r, Speed: speed})
}
