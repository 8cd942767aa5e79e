package config

import (
	_ "embed"
)

//go:embed defaults/terminate.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration.
// Used as the last-resort fallback if the embedded YAML fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
			Lives:      3,
			SprintStep: 2,
			BoostTicks: 600, // 10 seconds at 60 fps
		},
		Terrain: TerrainConfig{
			DustWeight:   40,
			GroundWeight: 40,
			HouseWeight:  1,
			TreeWeight:   10,
		},
		Enemies: EnemyConfig{
			SpawnChance:    0.05,
			MarginLeft:     10,
			MarginRight:    5,
			MoveEveryTicks: 6, // 0.1 seconds at 60 fps
			KillPoints:     100,
		},
		Boxes: BoxConfig{
			SpawnChance: 0.005,
			ScoreBonus:  50,
			Rewards: RewardWeights{
				ExtraLife:  1,
				ScoreBoost: 1,
				SpeedBoost: 1,
				Penalty:    1,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpawnMultiplier:   1.0,
				IntervalReduction: 3,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
