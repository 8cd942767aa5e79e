package game

import (
	"testing"

	"github.com/bdadmehr0/terminate/internal/config"
	"github.com/bdadmehr0/terminate/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i%3 == 0 {
			input.Set(core.ActionRight)
		}
		if i == 50 || i == 120 {
			input.Set(core.ActionInteract)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(1)
	st := g.State()

	if st.Lives != 3 {
		t.Errorf("Initial lives = %d, expected 3", st.Lives)
	}
	if st.Score != 0 {
		t.Errorf("Initial score = %d, expected 0", st.Score)
	}
	if st.Stage != 1 {
		t.Errorf("Initial stage = %d, expected 1", st.Stage)
	}
	if st.GameOver || st.Paused {
		t.Error("New game should be running")
	}
	if g.pos != 0 {
		t.Errorf("Player should start at column 0, got %d", g.pos)
	}
}

func TestMovementBounds(t *testing.T) {
	g := newTestGame(1)

	// Moving left from column 0 stays at 0
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)
	if g.pos != 0 {
		t.Errorf("Left at the edge should clamp to 0, got %d", g.pos)
	}

	// Moving right advances one cell
	input.Clear()
	input.Set(core.ActionRight)
	g.Step(input)
	if g.pos != 1 {
		t.Errorf("Right should move to 1, got %d", g.pos)
	}
}

func TestSprintMovement(t *testing.T) {
	g := newTestGame(1)

	input := core.NewInputFrame()
	input.Set(core.ActionSprintRight)
	g.Step(input)
	if g.pos != 2 {
		t.Errorf("Sprint right should move 2 cells, got %d", g.pos)
	}

	input.Clear()
	input.Set(core.ActionSprintLeft)
	g.Step(input)
	if g.pos != 0 {
		t.Errorf("Sprint left should move back to 0, got %d", g.pos)
	}
}

func TestSpeedBoostDoublesStep(t *testing.T) {
	g := newTestGame(1)
	g.boostTicks = 100

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	g.Step(input)
	if g.pos != 2 {
		t.Errorf("Boosted move should cover 2 cells, got %d", g.pos)
	}

	input.Clear()
	input.Set(core.ActionSprintRight)
	g.Step(input)
	if g.pos != 6 {
		t.Errorf("Boosted sprint should cover 4 cells, got %d", g.pos)
	}
}

func TestSpeedBoostExpires(t *testing.T) {
	g := newTestGame(1)
	g.boostTicks = 3

	input := core.NewInputFrame()
	for i := 0; i < 3; i++ {
		g.Step(input)
	}
	if g.BoostActive() {
		t.Errorf("Boost should have expired, %d ticks left", g.boostTicks)
	}
}

func TestAttackAdjacentEnemy(t *testing.T) {
	g := newTestGame(1)
	g.stage.enemies = []int{1}

	input := core.NewInputFrame()
	input.Set(core.ActionInteract)
	g.Step(input)

	if g.score != g.cfg.Enemies.KillPoints {
		t.Errorf("Kill should award %d points, got %d", g.cfg.Enemies.KillPoints, g.score)
	}
	if len(g.stage.enemies) != 0 {
		t.Errorf("Enemy should be removed, got %v", g.stage.enemies)
	}
}

func TestAttackPriorityOverBox(t *testing.T) {
	g := newTestGame(1)
	g.stage.enemies = []int{1}
	g.stage.boxes = []int{0}

	input := core.NewInputFrame()
	input.Set(core.ActionInteract)
	g.Step(input)

	// The enemy dies, the box stays closed
	if len(g.stage.enemies) != 0 {
		t.Error("Interact should kill the adjacent enemy first")
	}
	if len(g.stage.boxes) != 1 {
		t.Error("Box should survive when an enemy was in reach")
	}
}

func TestAttackOutOfReach(t *testing.T) {
	g := newTestGame(1)
	g.stage.enemies = []int{5}
	g.stage.boxes = nil

	input := core.NewInputFrame()
	input.Set(core.ActionInteract)
	g.Step(input)

	if g.score != 0 {
		t.Errorf("No kill should mean no points, got %d", g.score)
	}
	if len(g.stage.enemies) != 1 {
		t.Error("Distant enemy should survive")
	}
}

func TestBoxExtraLife(t *testing.T) {
	g := newTestGame(1)
	g.cfg.Boxes.Rewards = config.RewardWeights{ExtraLife: 1}
	g.stage.enemies = nil
	g.stage.boxes = []int{0}

	input := core.NewInputFrame()
	input.Set(core.ActionInteract)
	g.Step(input)

	if g.lives != 4 {
		t.Errorf("Extra Life should raise lives to 4, got %d", g.lives)
	}
	if len(g.stage.boxes) != 0 {
		t.Error("Opened box should be removed")
	}
}

func TestBoxScoreBoost(t *testing.T) {
	g := newTestGame(1)
	g.cfg.Boxes.Rewards = config.RewardWeights{ScoreBoost: 1}
	g.stage.enemies = nil
	g.stage.boxes = []int{0}

	input := core.NewInputFrame()
	input.Set(core.ActionInteract)
	g.Step(input)

	if g.score != g.cfg.Boxes.ScoreBonus {
		t.Errorf("Score Boost should award %d, got %d", g.cfg.Boxes.ScoreBonus, g.score)
	}
}

func TestBoxSpeedBoost(t *testing.T) {
	g := newTestGame(1)
	g.cfg.Boxes.Rewards = config.RewardWeights{SpeedBoost: 1}
	g.stage.enemies = nil
	g.stage.boxes = []int{0}

	input := core.NewInputFrame()
	input.Set(core.ActionInteract)
	g.Step(input)

	if !g.BoostActive() {
		t.Error("Speed Boost should be active after opening the box")
	}
	// The boost countdown runs before interact, so the fresh value is intact
	if g.boostTicks != g.cfg.Player.BoostTicks {
		t.Errorf("Boost ticks = %d, expected %d", g.boostTicks, g.cfg.Player.BoostTicks)
	}
}

func TestBoxPenalty(t *testing.T) {
	g := newTestGame(1)
	g.cfg.Boxes.Rewards = config.RewardWeights{Penalty: 1}
	g.stage.enemies = nil
	g.stage.boxes = []int{0}

	input := core.NewInputFrame()
	input.Set(core.ActionInteract)
	g.Step(input)

	if g.lives != 2 {
		t.Errorf("Penalty should drop lives to 2, got %d", g.lives)
	}
}

func TestPenaltyCanEndTheRun(t *testing.T) {
	g := newTestGame(1)
	g.cfg.Boxes.Rewards = config.RewardWeights{Penalty: 1}
	g.lives = 1
	g.stage.enemies = nil
	g.stage.boxes = []int{0}

	input := core.NewInputFrame()
	input.Set(core.ActionInteract)
	g.Step(input)

	if !g.gameOver {
		t.Error("Losing the last life to a cursed box should end the run")
	}
	if g.lives != 0 {
		t.Errorf("Lives should clamp at 0, got %d", g.lives)
	}
}

func TestEnemyChaseAndHit(t *testing.T) {
	g := newTestGame(1)
	g.cfg.Difficulty.Enabled = false
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.stage.enemies = []int{3}
	g.stage.boxes = nil

	interval := g.cfg.Enemies.MoveEveryTicks
	input := core.NewInputFrame()

	// After one interval the enemy is at 2, after two at 1, after three it
	// lands on the player and costs a life.
	for i := 0; i < interval*3; i++ {
		g.Step(input)
	}

	if g.lives != 2 {
		t.Errorf("Enemy hit should drop lives to 2, got %d", g.lives)
	}
	if len(g.stage.enemies) != 0 {
		t.Errorf("Hitting enemy should be consumed, got %v", g.stage.enemies)
	}
}

func TestEnemyHitsEndTheRun(t *testing.T) {
	g := newTestGame(1)
	g.cfg.Difficulty.Enabled = false
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.lives = 1
	g.stage.enemies = []int{1}
	g.stage.boxes = nil

	input := core.NewInputFrame()
	for i := 0; i < g.cfg.Enemies.MoveEveryTicks; i++ {
		g.Step(input)
	}

	if !g.gameOver {
		t.Error("Losing the last life to an enemy should end the run")
	}
	st := g.State()
	if !st.GameOver || st.Lives != 0 {
		t.Errorf("State = %+v, expected game over with 0 lives", st)
	}
}

func TestStageAdvance(t *testing.T) {
	g := newTestGame(1)
	g.pos = g.stage.ExitColumn() - 1

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	g.Step(input)

	if g.stageNum != 2 {
		t.Errorf("Reaching the exit should advance to stage 2, got %d", g.stageNum)
	}
	if g.pos != 0 {
		t.Errorf("New stage should start at column 0, got %d", g.pos)
	}
}

func TestStageAdvanceRegeneratesWorld(t *testing.T) {
	g := newTestGame(99)
	firstSeed := g.stageSeed

	g.pos = g.stage.ExitColumn() - 1
	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	g.Step(input)

	if g.stageSeed == firstSeed {
		t.Error("New stage should have a fresh seed")
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(1)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if !g.State().Paused {
		t.Error("Pause action should pause the game")
	}

	tickBefore := g.tick
	input.Clear()
	input.Set(core.ActionRight)
	g.Step(input)

	if g.tick != tickBefore {
		t.Error("Paused game should not advance ticks")
	}
	if g.pos != 0 {
		t.Error("Paused game should ignore movement")
	}

	// Unpause resumes
	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	if g.State().Paused {
		t.Error("Second pause action should resume")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := newTestGame(1)
	g.gameOver = true

	before := g.Snapshot()
	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	g.Step(input)

	if g.Snapshot() != before {
		t.Error("Steps after game over should not change state")
	}
}

func TestResetRestarts(t *testing.T) {
	g := newTestGame(1)
	g.score = 500
	g.lives = 1
	g.stageNum = 4
	g.gameOver = true

	g.Reset(g.runtime)
	st := g.State()
	if st.Score != 0 || st.Lives != 3 || st.Stage != 1 || st.GameOver {
		t.Errorf("Reset should restore a fresh run, got %+v", st)
	}
}
