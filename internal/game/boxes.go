package game

import (
	"math/rand"

	"github.com/bdadmehr0/terminate/internal/config"
)

// Reward is the outcome of opening a loot box.
type Reward int

const (
	RewardExtraLife Reward = iota
	RewardScoreBoost
	RewardSpeedBoost
	RewardPenalty
)

// String returns a human-readable name for the reward.
func (r Reward) String() string {
	switch r {
	case RewardExtraLife:
		return "Extra Life"
	case RewardScoreBoost:
		return "Score Boost"
	case RewardSpeedBoost:
		return "Speed Boost"
	case RewardPenalty:
		return "Penalty"
	default:
		return "Unknown"
	}
}

// rollReward draws a box outcome using the configured weights.
// A zero or negative total falls back to Score Boost so a broken config
// can never make boxes do nothing.
func rollReward(rng *rand.Rand, w config.RewardWeights) Reward {
	total := w.Total()
	if total <= 0 {
		return RewardScoreBoost
	}

	roll := rng.Intn(total)
	if roll < w.ExtraLife {
		return RewardExtraLife
	}
	roll -= w.ExtraLife
	if roll < w.ScoreBoost {
		return RewardScoreBoost
	}
	roll -= w.ScoreBoost
	if roll < w.SpeedBoost {
		return RewardSpeedBoost
	}
	return RewardPenalty
}
