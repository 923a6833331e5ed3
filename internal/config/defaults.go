package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultShooterConfig returns the default Seal Shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Canvas: Canvas{Width: 1000, Height: 600},
		Player: ShooterPlayer{
			Box:   Box{X: 375, Y: 520, Width: 80, Height: 80},
			Speed: 25,
		},
		Bullets: ShooterBullets{
			Width:  5,
			Height: 10,
			Speed:  7,
		},
		Enemies: ShooterEnemies{
			Width:       50,
			Height:      50,
			Speed:       2,
			SpawnChance: 0.02,
			SpawnMargin: 30,
			SpawnY:      -30,
		},
		Gameplay: ShooterGameplay{
			Lives:       3,
			EnemyPoints: 100,
		},
		Assets: ShooterAssets{
			Player: "embed:white-seal.png",
			Enemy:  "embed:black-seal.png",
		},
	}
}

// DefaultBreakoutConfig returns the default Brick Breaker configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: Canvas{Width: 800, Height: 600},
		Paddle: Box{X: 350, Y: 550, Width: 100, Height: 15},
		Ball: BreakoutBall{
			X:      400,
			Y:      540,
			Radius: 8,
			DX:     4,
			DY:     -4,
			Speed:  4,
		},
		Physics: BreakoutPhysics{
			PaddleDeflection: 5,
		},
		Bricks: BreakoutBricks{
			Rows:      5,
			Cols:      9,
			Width:     80,
			Height:    20,
			Padding:   10,
			OffsetTop: 30,
			Colors:    []string{"#FF0000", "#FF7F00", "#FFFF00", "#00FF00", "#0000FF"},
		},
		Gameplay: BreakoutGameplay{
			Lives:       3,
			BrickPoints: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter":
		return defaultShooterYAML
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
