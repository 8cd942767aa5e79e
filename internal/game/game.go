// Package game implements Terminate, a one-line action game. The player
// walks a terrain strip toward the stage exit, fighting enemies that chase
// them and opening loot boxes with random outcomes.
package game

import (
	"fmt"
	"math/rand"

	"github.com/bdadmehr0/terminate/internal/config"
	"github.com/bdadmehr0/terminate/internal/core"
)

// Visual characters for rendering
const (
	PlayerRune = 'P'
	EnemyRune  = 'E'
	BoxRune    = 'B'
	ExitRune   = '>'
)

// How long event messages stay on screen, in ticks.
const messageTicks = 120

// Game implements the Terminate game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.GameConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	stage     *Stage
	stageSeed int64
	stageNum  int

	pos        int // Player column
	lives      int
	score      int
	boostTicks int // Remaining Speed Boost ticks (0 = inactive)

	tick       uint64
	enemyTimer int // Ticks since the last enemy step

	gameOver bool
	paused   bool

	message      string
	messageColor core.Color
	messageLeft  int // Ticks until the message expires
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game satisfies the platform-facing interface.
var _ core.Game = (*Game)(nil)

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "terminate"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Terminate"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}

	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.stageNum = 1
	g.pos = 0
	g.lives = cfg.Player.Lives
	g.score = 0
	g.boostTicks = 0
	g.tick = 0
	g.enemyTimer = 0
	g.gameOver = false
	g.paused = false
	g.message = ""
	g.messageLeft = 0

	g.newStage()
}

// newStage generates the next stage and puts the player at its start.
func (g *Game) newStage() {
	g.stageSeed = g.rng.Int63()
	chance := g.difficulty.SpawnChance(g.cfg.Enemies.SpawnChance, g.score, int(g.tick))
	g.stage = GenerateStage(g.stageSeed, g.runtime.ScreenW, &g.cfg, chance)
	g.pos = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if g.boostTicks > 0 {
		g.boostTicks--
	}
	if g.messageLeft > 0 {
		g.messageLeft--
		if g.messageLeft == 0 {
			g.message = ""
		}
	}

	g.handleMovement(in)

	if in.Has(core.ActionInteract) {
		g.interact()
	}

	// Crossing the exit starts a fresh stage; enemies do not act on that tick.
	if g.pos >= g.stage.ExitColumn() {
		g.stageNum++
		g.newStage()
		g.say(fmt.Sprintf("You reached the end! Stage %d", g.stageNum), core.ColorBlue)
		return core.StepResult{State: g.State()}
	}

	g.stepEnemies()

	return core.StepResult{State: g.State()}
}

// handleMovement applies movement actions, honoring sprint and Speed Boost.
func (g *Game) handleMovement(in core.InputFrame) {
	step := 0
	switch {
	case in.Has(core.ActionSprintLeft):
		step = -g.cfg.Player.SprintStep
	case in.Has(core.ActionSprintRight):
		step = g.cfg.Player.SprintStep
	case in.Has(core.ActionLeft):
		step = -1
	case in.Has(core.ActionRight):
		step = 1
	}
	if step == 0 {
		return
	}

	if g.boostTicks > 0 {
		step *= 2
	}

	g.pos = core.Clamp(g.pos+step, 0, g.stage.ExitColumn())
}

// interact attacks an adjacent enemy, or opens a box under the player.
// Enemies take priority, same cell first, then left, then right.
func (g *Game) interact() {
	for _, x := range []int{g.pos, g.pos - 1, g.pos + 1} {
		if g.stage.RemoveEnemyAt(x) {
			g.score += g.cfg.Enemies.KillPoints
			g.say(fmt.Sprintf("Enemy terminated! +%d", g.cfg.Enemies.KillPoints), core.ColorGreen)
			return
		}
	}

	if g.stage.RemoveBoxAt(g.pos) {
		g.openBox()
	}
}

// openBox rolls and applies a box outcome.
func (g *Game) openBox() {
	switch rollReward(g.rng, g.cfg.Boxes.Rewards) {
	case RewardExtraLife:
		g.lives++
		g.say(fmt.Sprintf("Extra life! Lives: %d", g.lives), core.ColorGreen)
	case RewardScoreBoost:
		g.score += g.cfg.Boxes.ScoreBonus
		g.say(fmt.Sprintf("Score boost! +%d", g.cfg.Boxes.ScoreBonus), core.ColorGreen)
	case RewardSpeedBoost:
		g.boostTicks = g.cfg.Player.BoostTicks
		g.say("Speed boost!", core.ColorCyan)
	case RewardPenalty:
		g.loseLife("The box was cursed! You lost a life!")
	}
}

// stepEnemies advances the enemy chase on its interval and applies hits.
func (g *Game) stepEnemies() {
	g.enemyTimer++
	interval := g.difficulty.MoveInterval(g.cfg.Enemies.MoveEveryTicks, g.score, int(g.tick))
	if g.enemyTimer < interval {
		return
	}
	g.enemyTimer = 0

	hits := g.stage.MoveEnemiesToward(g.pos)
	for i := 0; i < hits && !g.gameOver; i++ {
		g.loseLife("Enemy hit you!")
	}
}

// loseLife decrements lives, shows a message, and ends the run at zero.
func (g *Game) loseLife(reason string) {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		g.say("Game Over!", core.ColorRed)
		return
	}
	g.say(fmt.Sprintf("%s Lives: %d", reason, g.lives), core.ColorRed)
}

// say sets the transient HUD message.
func (g *Game) say(msg string, c core.Color) {
	g.message = msg
	g.messageColor = c
	g.messageLeft = messageTicks
}

// BoostActive returns true while a Speed Boost is running.
func (g *Game) BoostActive() bool {
	return g.boostTicks > 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Stage:    g.stageNum,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
