// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// GameConfig contains all tunables for a Terminate run.
type GameConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Boxes      BoxConfig        `yaml:"boxes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Lives      int `yaml:"lives"`       // Starting lives
	SprintStep int `yaml:"sprint_step"` // Cells per move while sprinting
	BoostTicks int `yaml:"boost_ticks"` // Duration of a Speed Boost in ticks
}

// TerrainConfig defines the weighted terrain generation.
// Weights are relative; they do not need to sum to 100.
type TerrainConfig struct {
	DustWeight   int `yaml:"dust_weight"`   // '.'
	GroundWeight int `yaml:"ground_weight"` // '_'
	HouseWeight  int `yaml:"house_weight"`  // '⌂'
	TreeWeight   int `yaml:"tree_weight"`   // '↟'
}

// EnemyConfig defines enemy spawning and behavior.
type EnemyConfig struct {
	SpawnChance    float64 `yaml:"spawn_chance"`     // Per-column spawn probability
	MarginLeft     int     `yaml:"margin_left"`      // Enemy-free columns at stage start
	MarginRight    int     `yaml:"margin_right"`     // Enemy-free columns before the exit
	MoveEveryTicks int     `yaml:"move_every_ticks"` // Ticks between enemy steps
	KillPoints     int     `yaml:"kill_points"`      // Score per defeated enemy
}

// BoxConfig defines loot box spawning and outcomes.
type BoxConfig struct {
	SpawnChance float64       `yaml:"spawn_chance"` // Per-column spawn probability
	ScoreBonus  int           `yaml:"score_bonus"`  // Points for a Score Boost outcome
	Rewards     RewardWeights `yaml:"rewards"`
}

// RewardWeights defines the relative odds of each box outcome.
type RewardWeights struct {
	ExtraLife  int `yaml:"extra_life"`
	ScoreBoost int `yaml:"score_boost"`
	SpeedBoost int `yaml:"speed_boost"`
	Penalty    int `yaml:"penalty"`
}

// Total returns the sum of all reward weights.
func (w RewardWeights) Total() int {
	return w.ExtraLife + w.ScoreBoost + w.SpeedBoost + w.Penalty
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnMultiplier   float64 `yaml:"spawn_multiplier"`   // Added to enemy spawn chance multiplier at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Ticks shaved off the enemy move interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI flag value to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
