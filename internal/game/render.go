package game

import (
	"fmt"

	"github.com/bdadmehr0/terminate/internal/core"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawHUD(dst)
	g.drawStrip(dst)
	g.drawHints(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawHUD renders the status line and the transient event message.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Lives: %d  Score: %d  Stage: %d ", g.lives, g.score, g.stageNum)
	dst.DrawText(2, 0, hud)

	if g.boostTicks > 0 {
		boost := fmt.Sprintf(" BOOST %d ", g.boostTicks)
		dst.DrawTextColored(dst.Width()-len(boost)-2, 0, boost, core.ColorCyan)
	}

	if g.message != "" {
		dst.DrawTextColored(2, 1, g.message, g.messageColor)
	}
}

// drawStrip renders the world line: terrain, boxes, enemies, player, exit.
// Draw order matters; later entities cover earlier ones.
func (g *Game) drawStrip(dst *core.Screen) {
	y := g.stripY(dst)

	for x := 0; x < g.stage.Width() && x < dst.Width(); x++ {
		r := TerrainGround
		if x < len(g.stage.terrain) {
			r = g.stage.terrain[x]
		}
		c := core.ColorDefault
		if r == TerrainTree {
			c = core.ColorGreen
		}
		dst.SetCell(x, y, r, c)
	}

	for _, b := range g.stage.Boxes() {
		dst.SetCell(b, y, BoxRune, core.ColorYellow)
	}
	for _, e := range g.stage.Enemies() {
		dst.SetCell(e, y, EnemyRune, core.ColorRed)
	}

	dst.SetCell(g.stage.ExitColumn(), y, ExitRune, core.ColorMagenta)
	dst.SetCell(g.pos, y, PlayerRune, core.ColorBlue)
}

// drawHints shows the interact prompt when something is in reach.
func (g *Game) drawHints(dst *core.Screen) {
	y := g.stripY(dst) + 2

	switch {
	case g.stage.EnemyAt(g.pos) || g.stage.EnemyAt(g.pos-1) || g.stage.EnemyAt(g.pos+1):
		dst.DrawTextColored(2, y, "You can attack by pressing 'E'.", core.ColorYellow)
	case g.stage.BoxAt(g.pos):
		dst.DrawTextColored(2, y, "You found a box! Press 'E' to open it.", core.ColorGreen)
	}
}

// stripY returns the row the world strip is drawn on.
func (g *Game) stripY(dst *core.Screen) int {
	return dst.Height() / 2
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
