package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bdadmehr0/terminate/internal/core"
	"github.com/bdadmehr0/terminate/internal/game"
	"github.com/bdadmehr0/terminate/internal/storage"
)

// Model is the Bubble Tea model for running a Terminate session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	player     string
	config     core.RuntimeConfig
	keymap     *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	resume     *game.SaveState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model. A non-nil resume checkpoint is
// applied after the first reset so the player continues their saved run.
func NewModel(g *game.Game, store *storage.Store, player string, cfg core.RuntimeConfig, resume *game.SaveState) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		player:     player,
		config:     cfg,
		keymap:     NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		resume:     resume,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.resume != nil {
		m.game.Restore(*m.resume)
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.checkpointOnExit()
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, _ := m.keymap.MapKey(msg)
	switch action {
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionBack:
		// Esc leaves for the menu when the run is over or paused,
		// otherwise it pauses. The quit command ends the standalone
		// program; the SSH session model intercepts BackToMenu first
		// and swallows the command.
		if m.gameState.GameOver || m.gameState.Paused {
			m.checkpointOnExit()
			m.backToMenu = true
			return m, tea.Quit
		}
		m.inputFrame.Set(core.ActionPause)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize preserves the run across terminal size changes. The stage is
// regenerated at the new width from its seed and positions are clamped.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		saved := m.game.Save()
		m.game.Reset(m.config)
		m.game.Restore(saved)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the finished run once; its checkpoint is no longer resumable.
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil {
			if m.gameState.Score > 0 {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveScore(m.player, m.gameState.Score, m.gameState.Stage)
			}
			//nolint:errcheck
			m.store.DeleteCheckpoint(m.player)
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// checkpointOnExit saves the run so quitting mid-game is resumable.
func (m *Model) checkpointOnExit() {
	if m.store == nil || m.gameState.GameOver {
		return
	}
	//nolint:errcheck // Best-effort save on the way out
	m.store.SaveCheckpoint(m.player, m.game.Save())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".terminate", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("terminate_%s.txt", timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single game session.
func Run(g *game.Game, store *storage.Store, player string, cfg core.RuntimeConfig, resume *game.SaveState) error {
	model := NewModel(g, store, player, cfg, resume)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
