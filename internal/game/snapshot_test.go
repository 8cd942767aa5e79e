package game

import (
	"testing"

	"github.com/bdadmehr0/terminate/internal/core"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	g := newTestGame(42)

	// Play a bit so the checkpoint is non-trivial
	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	for i := 0; i < 40; i++ {
		g.Step(input)
	}
	g.score = 250
	g.boostTicks = 77

	saved := g.Save()

	g2 := newTestGame(42)
	g2.Restore(saved)

	if g2.stageNum != g.stageNum {
		t.Errorf("Stage = %d, expected %d", g2.stageNum, g.stageNum)
	}
	if g2.pos != g.pos {
		t.Errorf("Position = %d, expected %d", g2.pos, g.pos)
	}
	if g2.score != 250 {
		t.Errorf("Score = %d, expected 250", g2.score)
	}
	if g2.lives != g.lives {
		t.Errorf("Lives = %d, expected %d", g2.lives, g.lives)
	}
	if g2.boostTicks != 77 {
		t.Errorf("Boost ticks = %d, expected 77", g2.boostTicks)
	}
	if g2.stageSeed != g.stageSeed {
		t.Errorf("Stage seed = %d, expected %d", g2.stageSeed, g.stageSeed)
	}
	if string(g2.stage.terrain) != string(g.stage.terrain) {
		t.Error("Restored terrain should match the saved stage")
	}
	if len(g2.stage.enemies) != len(g.stage.enemies) {
		t.Errorf("Enemy count = %d, expected %d", len(g2.stage.enemies), len(g.stage.enemies))
	}
	if len(g2.stage.boxes) != len(g.stage.boxes) {
		t.Errorf("Box count = %d, expected %d", len(g2.stage.boxes), len(g.stage.boxes))
	}
}

func TestSaveIsIndependentCopy(t *testing.T) {
	g := newTestGame(1)
	g.stage.enemies = []int{20, 30}
	g.stage.boxes = []int{15}

	saved := g.Save()
	g.stage.enemies[0] = 99

	if saved.Enemies[0] != 20 {
		t.Error("Checkpoint should not alias live game state")
	}
}

func TestRestoreClampsToNarrowerScreen(t *testing.T) {
	g := newTestGame(7)
	saved := g.Save()
	saved.Position = 200
	saved.Enemies = []int{5, 200}
	saved.Boxes = []int{3, 150}

	// Resume on a much narrower terminal
	g2 := New()
	g2.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 24, TickRate: 60, Seed: 7})
	g2.Restore(saved)

	if g2.pos >= g2.stage.ExitColumn() {
		t.Errorf("Player at %d should be clamped inside the strip (exit %d)", g2.pos, g2.stage.ExitColumn())
	}
	for _, e := range g2.stage.enemies {
		if e < 0 || e >= 40-1 {
			t.Errorf("Enemy at %d outside the narrow strip", e)
		}
	}
	for _, b := range g2.stage.boxes {
		if b < 0 || b >= 40-1 {
			t.Errorf("Box at %d outside the narrow strip", b)
		}
	}
}

func TestRestoreRejectsDeadCheckpoint(t *testing.T) {
	g := newTestGame(1)
	saved := g.Save()
	saved.Lives = 0
	saved.Stage = 0

	g2 := newTestGame(1)
	g2.Restore(saved)

	if g2.lives != g2.cfg.Player.Lives {
		t.Errorf("Zero-life checkpoint should restore full lives, got %d", g2.lives)
	}
	if g2.stageNum != 1 {
		t.Errorf("Stage should floor at 1, got %d", g2.stageNum)
	}
}

func TestSnapshotReflectsRunState(t *testing.T) {
	g := newTestGame(1)
	if g.Snapshot().State != StatePlaying {
		t.Error("Fresh game should be playing")
	}

	g.paused = true
	if g.Snapshot().State != StatePaused {
		t.Error("Paused game should snapshot as paused")
	}

	g.gameOver = true
	if g.Snapshot().State != StateGameOver {
		t.Error("Game over takes precedence over paused")
	}
}
