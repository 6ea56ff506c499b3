package swallow

import (
	"fmt"

	"github.com/vovakirdan/swallow/internal/core"
)

// Tag is the kind of occupant recorded in a grid cell.
type Tag uint8

const (
	TagEmpty Tag = iota
	TagWall
	TagHunter
	TagSwallow
	TagStar
)

// String returns a readable tag name.
func (t Tag) String() string {
	switch t {
	case TagEmpty:
		return "empty"
	case TagWall:
		return "wall"
	case TagHunter:
		return "hunter"
	case TagSwallow:
		return "swallow"
	case TagStar:
		return "star"
	default:
		return fmt.Sprintf("tag(%d)", uint8(t))
	}
}

// Grid is the occupancy map of the board. The border is permanently Wall and
// every other cell holds the tag of the last entity written there.
type Grid struct {
	rows, cols int
	cells      []Tag
}

// NewGrid builds a rows x cols grid with a walled border.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 3 || cols < 3 {
		return nil, fmt.Errorf("swallow: grid %dx%d has no interior", cols, rows)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Tag, rows*cols),
	}
	for x := 0; x < cols; x++ {
		g.cells[x] = TagWall
		g.cells[(rows-1)*cols+x] = TagWall
	}
	for y := 0; y < rows; y++ {
		g.cells[y*cols] = TagWall
		g.cells[y*cols+cols-1] = TagWall
	}
	return g, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// At returns the tag at (x, y). Cells outside the grid read as Wall.
func (g *Grid) At(x, y int) Tag {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return TagWall
	}
	return g.cells[y*g.cols+x]
}

// Write tags every in-bounds, non-Wall cell of r.
// Out-of-bounds cells are skipped.
func (g *Grid) Write(r core.Rect, tag Tag) {
	if tag == TagWall {
		return
	}
	g.each(r, func(i int) {
		if g.cells[i] != TagWall {
			g.cells[i] = tag
		}
	})
}

// Erase empties the cells of r that still carry owner's tag, so removing
// one entity never clears cells another entity wrote later.
func (g *Grid) Erase(r core.Rect, owner Tag) {
	g.each(r, func(i int) {
		if g.cells[i] == owner && owner != TagWall {
			g.cells[i] = TagEmpty
		}
	})
}

// Query reports what occupies the region. A region touching or crossing the
// border is Wall without reading any cell; otherwise the first non-Empty tag
// in row-major order wins.
func (g *Grid) Query(r core.Rect) Tag {
	if r.X <= 0 || r.Y <= 0 || r.Right() >= g.cols || r.Bottom() >= g.rows {
		return TagWall
	}
	for y := r.Y; y < r.Bottom(); y++ {
		row := g.cells[y*g.cols : (y+1)*g.cols]
		for x := r.X; x < r.Right(); x++ {
			if row[x] != TagEmpty {
				return row[x]
			}
		}
	}
	return TagEmpty
}

// Count returns the number of cells carrying tag.
func (g *Grid) Count(tag Tag) int {
	n := 0
	for _, c := range g.cells {
		if c == tag {
			n++
		}
	}
	return n
}

func (g *Grid) each(r core.Rect, fn func(i int)) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.Right(), g.cols), min(r.Bottom(), g.rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			fn(y*g.cols + x)
		}
	}
}
