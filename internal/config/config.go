// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// Canvas is the logical drawing area of a game, in pixels.
type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Box is a rectangle placement in canvas pixels.
type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShooterConfig contains all configuration for the Seal Shooter game.
type ShooterConfig struct {
	Canvas   Canvas          `yaml:"canvas"`
	Player   ShooterPlayer   `yaml:"player"`
	Bullets  ShooterBullets  `yaml:"bullets"`
	Enemies  ShooterEnemies  `yaml:"enemies"`
	Gameplay ShooterGameplay `yaml:"gameplay"`
	Assets   ShooterAssets   `yaml:"assets"`
}

// ShooterPlayer defines the player's starting box and per-tick step.
type ShooterPlayer struct {
	Box   `yaml:",inline"`
	Speed float64 `yaml:"speed"`
}

// ShooterBullets defines bullet size and upward speed.
type ShooterBullets struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// ShooterEnemies defines enemy size, speed and spawning.
type ShooterEnemies struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	SpawnChance float64 `yaml:"spawn_chance"` // Probability of one spawn per tick
	SpawnMargin float64 `yaml:"spawn_margin"` // Spawn x is uniform in [0, canvas width - margin]
	SpawnY      float64 `yaml:"spawn_y"`
}

// ShooterGameplay defines scoring and lives.
type ShooterGameplay struct {
	Lives       int `yaml:"lives"`
	EnemyPoints int `yaml:"enemy_points"`
}

// ShooterAssets names the sprite sources.
// A source is "embed:<name>", a file path, or an http(s) URL.
type ShooterAssets struct {
	Player string `yaml:"player"`
	Enemy  string `yaml:"enemy"`
}

// BreakoutConfig contains all configuration for the Brick Breaker game.
type BreakoutConfig struct {
	Canvas   Canvas           `yaml:"canvas"`
	Paddle   Box              `yaml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball"`
	Physics  BreakoutPhysics  `yaml:"physics"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutBall defines the ball's starting position and velocity.
type BreakoutBall struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`
	Speed  float64 `yaml:"speed"` // Re-serve velocity is (+speed, -speed)
}

// BreakoutPhysics defines collision response parameters.
type BreakoutPhysics struct {
	PaddleDeflection float64 `yaml:"paddle_deflection"` // |dx| after an edge hit
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	Rows      int      `yaml:"rows"`
	Cols      int      `yaml:"cols"`
	Width     float64  `yaml:"width"`
	Height    float64  `yaml:"height"`
	Padding   float64  `yaml:"padding"`
	OffsetTop float64  `yaml:"offset_top"`
	Colors    []string `yaml:"colors"` // One hex color per row, cycling
}

// BreakoutGameplay defines scoring and lives.
type BreakoutGameplay struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func validateCanvas(c Canvas) error {
	if c.Width <= 0 || c.Height <= 0 {
		return invalid("canvas must be positive, got %vx%v", c.Width, c.Height)
	}
	return nil
}

// Validate checks that the shooter config describes a playable game.
func (c ShooterConfig) Validate() error {
	if err := validateCanvas(c.Canvas); err != nil {
		return err
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player size must be positive")
	}
	if c.Player.Width > c.Canvas.Width {
		return invalid("player wider than canvas")
	}
	if c.Bullets.Width <= 0 || c.Bullets.Height <= 0 || c.Bullets.Speed <= 0 {
		return invalid("bullet size and speed must be positive")
	}
	if c.Enemies.Width <= 0 || c.Enemies.Height <= 0 {
		return invalid("enemy size must be positive")
	}
	if c.Enemies.SpawnChance < 0 || c.Enemies.SpawnChance > 1 {
		return invalid("spawn_chance must be in [0, 1], got %v", c.Enemies.SpawnChance)
	}
	if c.Enemies.SpawnMargin > c.Canvas.Width {
		return invalid("spawn_margin wider than canvas")
	}
	if c.Gameplay.Lives <= 0 {
		return invalid("lives must be positive")
	}
	return nil
}

// Validate checks that the breakout config describes a playable game.
func (c BreakoutConfig) Validate() error {
	if err := validateCanvas(c.Canvas); err != nil {
		return err
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return invalid("paddle size must be positive")
	}
	if c.Paddle.Width > c.Canvas.Width {
		return invalid("paddle wider than canvas")
	}
	if c.Ball.Radius <= 0 {
		return invalid("ball radius must be positive")
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		return invalid("brick grid must have at least one row and column")
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		return invalid("brick size must be positive")
	}
	for _, hex := range c.Bricks.Colors {
		if len(hex) != 7 || hex[0] != '#' {
			return invalid("brick color %q is not #RRGGBB", hex)
		}
	}
	if c.Gameplay.Lives <= 0 {
		return invalid("lives must be positive")
	}
	return nil
}
