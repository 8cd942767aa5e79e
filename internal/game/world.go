package game

import (
	"math/rand"

	"github.com/bdadmehr0/terminate/internal/config"
	"github.com/bdadmehr0/terminate/internal/core"
)

// Terrain runes for the world strip.
const (
	TerrainDust   = '.'
	TerrainGround = '_'
	TerrainHouse  = '⌂'
	TerrainTree   = '↟'
)

// Stage is one generated screen of the world: a decorative terrain strip
// plus the enemies and boxes placed on it. Columns are indexed left to
// right; the last column is the exit to the next stage.
type Stage struct {
	width   int
	terrain []rune
	enemies []int
	boxes   []int
}

// GenerateStage builds a stage from a seed. The same seed and width always
// produce the same stage, which keeps runs reproducible and saves small.
func GenerateStage(seed int64, width int, cfg *config.GameConfig, spawnChance float64) *Stage {
	rng := rand.New(rand.NewSource(seed))

	s := &Stage{
		width:   width,
		terrain: generateTerrain(rng, width, cfg.Terrain),
	}
	s.enemies = spawnEnemies(rng, width, spawnChance, cfg.Enemies.MarginLeft, cfg.Enemies.MarginRight)
	s.boxes = spawnBoxes(rng, width, cfg.Boxes.SpawnChance)
	return s
}

// generateTerrain picks a rune per column with weighted probabilities.
func generateTerrain(rng *rand.Rand, width int, cfg config.TerrainConfig) []rune {
	chars := []rune{TerrainDust, TerrainGround, TerrainHouse, TerrainTree}
	weights := []int{cfg.DustWeight, cfg.GroundWeight, cfg.HouseWeight, cfg.TreeWeight}

	total := 0
	for _, w := range weights {
		total += w
	}

	terrain := make([]rune, width)
	for i := range terrain {
		if total <= 0 {
			terrain[i] = TerrainGround
			continue
		}
		roll := rng.Intn(total)
		for j, w := range weights {
			if roll < w {
				terrain[i] = chars[j]
				break
			}
			roll -= w
		}
	}
	return terrain
}

// spawnEnemies rolls each column inside the margin band for an enemy.
// The left margin keeps the player's start clear, the right margin keeps
// the exit approach clear.
func spawnEnemies(rng *rand.Rand, width int, chance float64, marginLeft, marginRight int) []int {
	band := core.NewSpan(marginLeft, width-marginRight)
	if band.Len() == 0 {
		return nil
	}

	var enemies []int
	for i := band.Start; i < band.End; i++ {
		if rng.Float64() < chance {
			enemies = append(enemies, i)
		}
	}
	return enemies
}

// spawnBoxes rolls each column for a loot box. Boxes may land anywhere
// except the exit column.
func spawnBoxes(rng *rand.Rand, width int, chance float64) []int {
	var boxes []int
	for i := 0; i < width-1; i++ {
		if rng.Float64() < chance {
			boxes = append(boxes, i)
		}
	}
	return boxes
}

// Width returns the stage width in columns.
func (s *Stage) Width() int {
	return s.width
}

// ExitColumn returns the column of the stage exit.
func (s *Stage) ExitColumn() int {
	return s.width - 1
}

// Enemies returns the current enemy positions.
func (s *Stage) Enemies() []int {
	return s.enemies
}

// Boxes returns the current box positions.
func (s *Stage) Boxes() []int {
	return s.boxes
}

// EnemyAt returns true if any enemy occupies the column.
func (s *Stage) EnemyAt(x int) bool {
	for _, e := range s.enemies {
		if e == x {
			return true
		}
	}
	return false
}

// BoxAt returns true if a box occupies the column.
func (s *Stage) BoxAt(x int) bool {
	for _, b := range s.boxes {
		if b == x {
			return true
		}
	}
	return false
}

// RemoveEnemyAt removes the first enemy at the column.
// Returns true if an enemy was removed.
func (s *Stage) RemoveEnemyAt(x int) bool {
	for i, e := range s.enemies {
		if e == x {
			s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveBoxAt removes the box at the column.
// Returns true if a box was removed.
func (s *Stage) RemoveBoxAt(x int) bool {
	for i, b := range s.boxes {
		if b == x {
			s.boxes = append(s.boxes[:i], s.boxes[i+1:]...)
			return true
		}
	}
	return false
}

// MoveEnemiesToward steps every enemy one column toward the target.
// Enemies that reach the target are removed; the number removed is the
// number of hits the target takes.
func (s *Stage) MoveEnemiesToward(target int) (hits int) {
	moved := s.enemies[:0]
	for _, e := range s.enemies {
		switch {
		case e < target:
			e++
		case e > target:
			e--
		}
		if e == target {
			hits++
			continue // Enemy is spent on the hit
		}
		moved = append(moved, e)
	}
	s.enemies = moved
	return hits
}

// clampPositions drops entries outside [0, width-2] and is used when a
// save made at a different terminal size is restored.
func clampPositions(positions []int, width int) []int {
	valid := core.NewSpan(0, width-1)
	kept := positions[:0]
	for _, p := range positions {
		if valid.Contains(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
