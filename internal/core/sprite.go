package core

// Sprite is a fixed-size rune raster with per-cell transparency.
// Space cells are transparent; everything else is opaque and participates
// in mask collision. Sprites are immutable once built.
type Sprite struct {
	W, H  int
	cells [][]rune
}

// NewSprite builds a sprite from text rows. Short rows are padded with
// spaces so every row has the width of the longest one.
func NewSprite(rows []string) Sprite {
	h := len(rows)
	w := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}

	cells := make([][]rune, h)
	for y, row := range rows {
		cells[y] = make([]rune, w)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
		copy(cells[y], []rune(row))
	}

	return Sprite{W: w, H: h, cells: cells}
}

// SolidSprite builds a fully opaque rectangular sprite of the given rune.
// Used as the deterministic placeholder for missing assets.
func SolidSprite(w, h int, r rune) Sprite {
	rows := make([]string, h)
	for y := range rows {
		row := make([]rune, w)
		for x := range row {
			row[x] = r
		}
		rows[y] = string(row)
	}
	return NewSprite(rows)
}

// Empty reports whether the sprite has no cells at all.
func (s Sprite) Empty() bool {
	return s.W == 0 || s.H == 0
}

// At returns the rune at sprite-local coordinates.
// Out-of-bounds positions read as transparent space.
func (s Sprite) At(x, y int) rune {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return ' '
	}
	return s.cells[y][x]
}

// OpaqueAt reports whether the sprite-local cell is opaque.
func (s Sprite) OpaqueAt(x, y int) bool {
	return s.At(x, y) != ' '
}

// MaskOverlap reports whether two sprites placed at the given screen
// positions have at least one pair of overlapping opaque cells. This is the
// cell-accurate analogue of a pixel-mask collision test: touching bounding
// boxes with only transparent cells in the overlap do not collide.
func MaskOverlap(a Sprite, ax, ay int, b Sprite, bx, by int) bool {
	ar := NewRect(ax, ay, a.W, a.H)
	br := NewRect(bx, by, b.W, b.H)

	overlap, ok := ar.Intersection(br)
	if !ok {
		return false
	}

	for y := overlap.Y; y < overlap.Bottom(); y++ {
		for x := overlap.X; x < overlap.Right(); x++ {
			if a.OpaqueAt(x-ax, y-ay) && b.OpaqueAt(x-bx, y-by) {
				return true
			}
		}
	}
	return false
}
