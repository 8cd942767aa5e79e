package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpPages holds the in-game manual, one page per topic.
var helpPages = []struct {
	title string
	body  []string
}{
	{
		title: "MOVEMENT",
		body: []string{
			"A / Left   - walk left",
			"D / Right  - walk right",
			"Shift+A/D  - sprint (2 cells per step)",
			"",
			"A Speed Boost from a box doubles every step",
			"while it lasts.",
		},
	},
	{
		title: "COMBAT",
		body: []string{
			"E  - attack an enemy on your cell or right",
			"     next to you (+100 points)",
			"",
			"Enemies (E) chase you. If one reaches your",
			"cell you lose a life.",
		},
	},
	{
		title: "BOXES",
		body: []string{
			"E  - open a box (B) you are standing on",
			"",
			"A box holds one of four surprises:",
			"  Extra Life   +1 life",
			"  Score Boost  +50 points",
			"  Speed Boost  temporary double speed",
			"  Penalty      -1 life",
		},
	},
	{
		title: "THE EXIT",
		body: []string{
			"Reach the > at the right edge to finish the",
			"stage. The next stage has fresh terrain,",
			"enemies and boxes.",
			"",
			"P pauses, Q or Ctrl+C quits. Quitting",
			"mid-run saves a checkpoint you can resume.",
		},
	},
}

// HelpModel is the Bubble Tea model for the paged help screen.
type HelpModel struct {
	page      int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	goingBack bool
}

// NewHelpModel creates a new help model.
func NewHelpModel(width, height int) HelpModel {
	return HelpModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the help model.
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help screen.
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc", "b":
			m.goingBack = true
			return m, tea.Quit
		case "left", "h", "a", "up", "k":
			if m.page > 0 {
				m.page--
			}
		case "right", "l", "d", "down", "j", "enter", " ":
			if m.page < len(helpPages)-1 {
				m.page++
			} else {
				m.goingBack = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the current help page.
func (m HelpModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	page := helpPages[m.page]

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	bodyStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(page.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(bodyStyle.Render(strings.Join(page.body, "\n")), m.width))
	b.WriteString("\n\n")

	dots := make([]string, len(helpPages))
	for i := range helpPages {
		if i == m.page {
			dots[i] = "o"
		} else {
			dots[i] = "."
		}
	}
	b.WriteString(centerText(strings.Join(dots, " "), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(footerStyle.Render("Left/Right: Page  |  Esc: Back  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HelpModel) IsGoingBack() bool {
	return m.goingBack
}

// RunHelp runs the help screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHelp(width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewHelpModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HelpModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
