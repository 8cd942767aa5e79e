package game

import "github.com/bdadmehr0/terminate/internal/core"

// RunState labels the coarse state of a run.
type RunState string

const (
	StatePlaying  RunState = "playing"
	StatePaused   RunState = "paused"
	StateGameOver RunState = "game_over"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Stage      int
	Position   int
	Score      int
	Lives      int
	BoostTicks int
	StageSeed  int64
	EnemyCount int
	BoxCount   int
	State      RunState
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:       g.tick,
		Stage:      g.stageNum,
		Position:   g.pos,
		Score:      g.score,
		Lives:      g.lives,
		BoostTicks: g.boostTicks,
		StageSeed:  g.stageSeed,
		EnemyCount: len(g.stage.enemies),
		BoxCount:   len(g.stage.boxes),
		State:      state,
	}
}

// SaveState is a resumable checkpoint of a run. It is what the storage
// layer persists when the player quits mid-game.
type SaveState struct {
	Stage      int
	Position   int
	Score      int
	Lives      int
	BoostTicks int
	StageSeed  int64
	Enemies    []int
	Boxes      []int
}

// Save captures the current run as a checkpoint.
func (g *Game) Save() SaveState {
	enemies := make([]int, len(g.stage.enemies))
	copy(enemies, g.stage.enemies)
	boxes := make([]int, len(g.stage.boxes))
	copy(boxes, g.stage.boxes)

	return SaveState{
		Stage:      g.stageNum,
		Position:   g.pos,
		Score:      g.score,
		Lives:      g.lives,
		BoostTicks: g.boostTicks,
		StageSeed:  g.stageSeed,
		Enemies:    enemies,
		Boxes:      boxes,
	}
}

// Restore resumes a run from a checkpoint. Must be called after Reset.
// The terrain is regenerated from the saved stage seed; entity positions
// outside the current terminal width are dropped, and the player is
// clamped onto the strip.
func (g *Game) Restore(s SaveState) {
	g.stageNum = s.Stage
	if g.stageNum < 1 {
		g.stageNum = 1
	}
	g.score = s.Score
	g.lives = s.Lives
	if g.lives <= 0 {
		g.lives = g.cfg.Player.Lives
	}
	g.boostTicks = s.BoostTicks

	g.stageSeed = s.StageSeed
	chance := g.difficulty.SpawnChance(g.cfg.Enemies.SpawnChance, g.score, 0)
	g.stage = GenerateStage(g.stageSeed, g.runtime.ScreenW, &g.cfg, chance)

	enemies := make([]int, len(s.Enemies))
	copy(enemies, s.Enemies)
	boxes := make([]int, len(s.Boxes))
	copy(boxes, s.Boxes)
	g.stage.enemies = clampPositions(enemies, g.stage.width)
	g.stage.boxes = clampPositions(boxes, g.stage.width)

	g.pos = core.Clamp(s.Position, 0, g.stage.ExitColumn()-1)
}
