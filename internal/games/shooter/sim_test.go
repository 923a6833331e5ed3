package shooter

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/seal-arcade/internal/config"
	"github.com/vovakirdan/seal-arcade/internal/core"
)

// quietConfig returns the default config with spawning disabled so tests
// control every enemy.
func quietConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Enemies.SpawnChance = 0
	return cfg
}

func newQuietSim() *Sim {
	return NewSim(quietConfig(), rand.New(rand.NewSource(1)))
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
	st := newQuietSim().State()

	if st.Player.Rect != core.NewRect(375, 520, 80, 80) || st.Player.Speed != 25 {
		t.Errorf("player = %+v, expected (375,520) 80x80 speed 25", st.Player)
	}
	if st.Lives != 3 || st.Score != 0 || st.GameOver {
		t.Errorf("initial lives=%d score=%d over=%v", st.Lives, st.Score, st.GameOver)
	}
	if len(st.Enemies) != 0 || len(st.Bullets) != 0 {
		t.Error("a new game should have no enemies or bullets")
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		in    Input
		want  float64
	}{
		{"left", 375, Input{Left: true}, 350},
		{"right", 375, Input{Right: true}, 400},
		{"both cancel", 375, Input{Left: true, Right: true}, 375},
		{"clamp left edge", 10, Input{Left: true}, 0},
		{"clamp right edge", 910, Input{Right: true}, 920},
		{"idle", 375, Input{}, 375},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newQuietSim()
			s.player.X = tc.start
			s.Step(tc.in)
			if got := s.State().Player.X; got != tc.want {
				t.Errorf("player x = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestFireSpawnsCenteredBullet(t *testing.T) {
	s := newQuietSim()
	events := s.Step(Input{Fire: true})

	st := s.State()
	if len(st.Bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(st.Bullets))
	}
	b := st.Bullets[0]
	if b.X != 412.5 || b.W != 5 || b.H != 10 || b.Speed != 7 {
		t.Errorf("bullet = %+v, expected x=412.5 5x10 speed 7", b)
	}
	// Fired at the player's top edge, then moved once this tick.
	if b.Y != 520-7 {
		t.Errorf("bullet y = %v, expected %v", b.Y, 520-7)
	}
	if countEvents[BulletFired](events) != 1 {
		t.Error("expected one BulletFired event")
	}

	s.Step(Input{Fire: true})
	if len(s.State().Bullets) != 2 {
		t.Error("each fire command should add exactly one bullet")
	}
}

func TestEnemyFallsAndEscapesWithoutPenalty(t *testing.T) {
	s := newQuietSim()
	s.addEnemy(core.NewRect(0, -30, 50, 50), 2)

	for range 15 {
		s.Step(Input{})
	}
	if y := s.State().Enemies[0].Y; y != 0 {
		t.Fatalf("enemy y after 15 ticks = %v, expected 0", y)
	}

	// Move it to just above the bottom edge.
	s.enemies[0].Y = 596
	s.Step(Input{})
	if len(s.State().Enemies) != 1 {
		t.Fatal("enemy at y=598 should still be on the canvas")
	}

	events := s.Step(Input{})
	st := s.State()
	if len(st.Enemies) != 0 {
		t.Error("enemy at y=600 should be removed")
	}
	if st.Lives != 3 {
		t.Errorf("escape cost a life: lives = %d", st.Lives)
	}
	if countEvents[EnemyEscaped](events) != 1 {
		t.Error("expected one EnemyEscaped event")
	}
}

func TestBulletLeavesTopEdge(t *testing.T) {
	s := newQuietSim()
	s.addBullet(core.NewRect(100, 10, 5, 10), 7)

	s.Step(Input{})
	if st := s.State(); len(st.Bullets) != 1 || st.Bullets[0].Y != 3 {
		t.Fatalf("after one tick bullets = %+v, expected one at y=3", st.Bullets)
	}

	s.Step(Input{})
	if len(s.State().Bullets) != 0 {
		t.Error("bullet at y=-4 should be removed")
	}
}

func TestEnemyHitsPlayer(t *testing.T) {
	s := newQuietSim()
	s.addEnemy(core.NewRect(375, 470, 50, 50), 2)

	events := s.Step(Input{})
	st := s.State()
	if st.Lives != 2 {
		t.Errorf("lives = %d, expected 2", st.Lives)
	}
	if len(st.Enemies) != 0 {
		t.Error("colliding enemy should be removed")
	}
	if countEvents[PlayerHit](events) != 1 {
		t.Error("expected one PlayerHit event")
	}
	if st.GameOver {
		t.Error("one hit should not end the game")
	}
}

func TestEnemyTouchingEdgeDoesNotHit(t *testing.T) {
	s := newQuietSim()
	// After moving, the enemy's right edge equals the player's left edge.
	s.addEnemy(core.NewRect(325, 500, 50, 50), 2)

	s.Step(Input{})
	if s.State().Lives != 3 {
		t.Error("edge contact should not count as a collision")
	}
}

func TestCollisionWinsOverEscape(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.Y = 560
	s := NewSim(cfg, nil)
	// Ends the tick at y=600: past the bottom edge and overlapping the player.
	s.addEnemy(core.NewRect(375, 598, 50, 50), 2)

	events := s.Step(Input{})
	if s.State().Lives != 2 {
		t.Errorf("lives = %d, expected 2", s.State().Lives)
	}
	if countEvents[EnemyEscaped](events) != 0 {
		t.Error("a colliding enemy should not also escape")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	cfg := quietConfig()
	cfg.Gameplay.Lives = 1
	s := NewSim(cfg, nil)
	s.addEnemy(core.NewRect(375, 470, 50, 50), 2)

	events := s.Step(Input{})
	st := s.State()
	if !st.GameOver || st.Lives != 0 {
		t.Fatalf("over=%v lives=%d, expected game over with 0 lives", st.GameOver, st.Lives)
	}
	if countEvents[GameOver](events) != 1 {
		t.Error("expected one GameOver event")
	}

	before := st.Hash()
	for range 10 {
		if ev := s.Step(Input{Left: true, Fire: true}); ev != nil {
			t.Errorf("Step after game over returned events %v", ev)
		}
	}
	if s.State().Hash() != before {
		t.Error("state changed after game over")
	}
}

func TestLivesNeverNegative(t *testing.T) {
	cfg := quietConfig()
	cfg.Gameplay.Lives = 1
	s := NewSim(cfg, nil)
	s.addEnemy(core.NewRect(375, 470, 50, 50), 2)
	s.addEnemy(core.NewRect(390, 470, 50, 50), 2)

	events := s.Step(Input{})
	if st := s.State(); st.Lives != 0 || !st.GameOver {
		t.Errorf("lives=%d over=%v, expected 0 and game over", st.Lives, st.GameOver)
	}
	if countEvents[PlayerHit](events) != 2 {
		t.Error("both enemies should register a hit")
	}
}

func TestBulletDestroysEnemy(t *testing.T) {
	s := newQuietSim()
	s.addEnemy(core.NewRect(100, 100, 50, 50), 2)
	s.addBullet(core.NewRect(120, 155, 5, 10), 7)

	events := s.Step(Input{})
	st := s.State()
	if st.Score != 100 {
		t.Errorf("score = %d, expected 100", st.Score)
	}
	if len(st.Enemies) != 0 || len(st.Bullets) != 0 {
		t.Errorf("enemies=%d bullets=%d, expected both removed", len(st.Enemies), len(st.Bullets))
	}
	if countEvents[EnemyDestroyed](events) != 1 {
		t.Error("expected one EnemyDestroyed event")
	}
}

func TestTwoBulletsOneEnemy(t *testing.T) {
	s := newQuietSim()
	s.addEnemy(core.NewRect(100, 100, 50, 50), 2)
	s.addBullet(core.NewRect(110, 155, 5, 10), 7)
	s.addBullet(core.NewRect(130, 155, 5, 10), 7)

	s.Step(Input{})
	st := s.State()
	if st.Score != 100 {
		t.Errorf("score = %d, expected a single hit worth 100", st.Score)
	}
	if len(st.Bullets) != 1 || st.Bullets[0].X != 130 {
		t.Errorf("bullets = %+v, expected the second bullet to survive", st.Bullets)
	}
}

func TestOneBulletTwoEnemies(t *testing.T) {
	s := newQuietSim()
	s.addEnemy(core.NewRect(100, 100, 50, 50), 2)
	s.addEnemy(core.NewRect(110, 100, 50, 50), 2)
	s.addBullet(core.NewRect(120, 155, 5, 10), 7)

	s.Step(Input{})
	st := s.State()
	if st.Score != 100 {
		t.Errorf("score = %d, expected 100", st.Score)
	}
	if len(st.Enemies) != 1 || st.Enemies[0].X != 110 {
		t.Errorf("enemies = %+v, expected only the first to be destroyed", st.Enemies)
	}
}

func TestSpawning(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Enemies.SpawnChance = 1
	s := NewSim(cfg, rand.New(rand.NewSource(7)))

	for range 20 {
		events := s.Step(Input{})
		if countEvents[EnemySpawned](events) != 1 {
			t.Fatal("spawn chance 1 should spawn every tick")
		}
	}

	for _, e := range s.State().Enemies {
		if e.X < 0 || e.X > 970 {
			t.Errorf("enemy x = %v outside [0, 970]", e.X)
		}
		if e.W != 50 || e.H != 50 || e.Speed != 2 {
			t.Errorf("enemy = %+v, expected 50x50 speed 2", e)
		}
	}
	if newest := s.State().Enemies[19]; newest.Y != -28 {
		t.Errorf("newest enemy y = %v, expected -28 after its first move", newest.Y)
	}
}

func TestStateIsACopy(t *testing.T) {
	s := newQuietSim()
	s.addEnemy(core.NewRect(0, 0, 50, 50), 2)

	st := s.State()
	st.Enemies[0].X = 999
	st.Enemies = append(st.Enemies, Entity{})

	if got := s.State(); len(got.Enemies) != 1 || got.Enemies[0].X != 0 {
		t.Error("mutating a State changed the simulation")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Enemies.SpawnChance = 0.2

	run := func() State {
		s := NewSim(cfg, rand.New(rand.NewSource(12345)))
		for i := range 500 {
			s.Step(Input{
				Left:  i%7 < 3,
				Right: i%11 < 4,
				Fire:  i%4 == 0,
			})
		}
		return s.State()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("same seed produced different states: %d vs %d", a.Hash(), b.Hash())
	}
}

func TestScoreAndLivesMonotonic(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Enemies.SpawnChance = 0.3
	rng := rand.New(rand.NewSource(99))
	s := NewSim(cfg, rand.New(rand.NewSource(3)))

	prev := s.State()
	for range 3000 {
		s.Step(Input{
			Left:  rng.Intn(2) == 0,
			Right: rng.Intn(2) == 0,
			Fire:  rng.Intn(3) == 0,
		})
		st := s.State()
		if st.Score < prev.Score {
			t.Fatalf("score decreased: %d -> %d", prev.Score, st.Score)
		}
		if st.Lives > prev.Lives || st.Lives < 0 {
			t.Fatalf("lives went from %d to %d", prev.Lives, st.Lives)
		}
		if prev.GameOver && !st.GameOver {
			t.Fatal("game over was undone")
		}
		prev = st
	}
}
