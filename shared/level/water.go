package level

import "github.com/automoto/playdead/shared/tiles"

// WaterSource floods the rows at and above its cell. Each row fills outwards
// from the source column until it meets a cell that is not passable. A solid
// cell in the source column caps the water: nothing above it fills.
type WaterSource struct {
	Col, Row int

	waterLevel int
}

func (s *WaterSource) Level() int { return s.waterLevel }

// SetLevel sets how many rows the source fills. Negative values clamp to 0.
func (s *WaterSource) SetLevel(n int) {
	if n < 0 {
		n = 0
	}
	s.waterLevel = n
}

// Raise adds one row.
func (s *WaterSource) Raise() { s.waterLevel++ }

// FillWater runs every source's fill pass. Call it after the actor step; the
// resolver reads categories fresh each frame so new water takes effect on the
// next one.
//
// Every filled row, the source's own included, spreads both ways from the
// source column. A solid cell in the source column caps the source: rows
// above it stay dry even where they have room. Both rules are intentional
// and pinned by the level tests.
func (l *Level) FillWater() {
	for _, s := range l.sources {
	rows:
		for i := 0; i < s.waterLevel; i++ {
			row := s.Row - i
			switch l.Collision(s.Col, row) {
			case tiles.Passable:
				l.SetCollision(s.Col, row, tiles.Water)
			case tiles.Water:
			default:
				break rows
			}
			l.fillRow(s.Col-1, row, -1)
			l.fillRow(s.Col+1, row, 1)
		}
	}
}

func (l *Level) fillRow(col, row, step int) {
	for ; l.InBounds(col, row); col += step {
		t := l.Tile(col, row)
		if t.Collision != tiles.Passable {
			return
		}
		t.Collision = tiles.Water
	}
}
