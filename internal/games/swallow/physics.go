package swallow

import "github.com/vovakirdan/swallow/internal/core"

// DrawOp is the kind of a DrawRequest.
type DrawOp uint8

const (
	OpDraw DrawOp = iota
	OpErase
)

// DrawRequest tells the renderer to paint or blank a footprint.
// Requests for a tick are applied in order after the tick completes.
type DrawRequest struct {
	Op     DrawOp
	Rect   core.Rect
	Sprite string
	Color  core.Color
}

// erase clears b from the grid and queues a canvas erase.
func (g *Game) erase(b Body) {
	r := b.Bounds()
	g.grid.Erase(r, b.Tag())
	g.requests = append(g.requests, DrawRequest{Op: OpErase, Rect: r})
}

// place writes b into the grid and queues a canvas draw.
func (g *Game) place(b Body) {
	r := b.Bounds()
	g.grid.Write(r, b.Tag())
	g.requests = append(g.requests, DrawRequest{
		Op:     OpDraw,
		Rect:   r,
		Sprite: b.Sprite(g.catalog),
		Color:  b.Tint(),
	})
}

// attemptMove moves e by its velocity if the destination is Empty and
// returns what was there. A blocked entity keeps its position. The entity's
// own cells must already be erased.
func (g *Game) attemptMove(e *Entity) Tag {
	blocker := g.grid.Query(e.Next())
	if blocker == TagEmpty {
		e.X += e.DX
		e.Y += e.DY
	}
	return blocker
}
