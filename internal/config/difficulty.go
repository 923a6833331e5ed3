package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyShooterPreset adjusts lives and spawn pressure for a preset.
// Normal (and unknown) presets leave the config untouched.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Enemies.SpawnChance = cfg.Enemies.SpawnChance / 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Enemies.SpawnChance = min(cfg.Enemies.SpawnChance*2, 1)
		cfg.Enemies.Speed = cfg.Enemies.Speed * 1.5
	}
}

// ApplyBreakoutPreset adjusts lives, paddle width and ball speed for a preset.
// Normal (and unknown) presets leave the config untouched.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = min(cfg.Paddle.Width*1.4, cfg.Canvas.Width)
		cfg.Paddle.X = (cfg.Canvas.Width - cfg.Paddle.Width) / 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Ball.Speed = cfg.Ball.Speed * 1.5
		cfg.Ball.DX = cfg.Ball.DX * 1.5
		cfg.Ball.DY = cfg.Ball.DY * 1.5
	}
}
