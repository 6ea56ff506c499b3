package swallow

import (
	"fmt"

	"github.com/vovakirdan/swallow/internal/core"
)

// hudHeight is the number of rows above the board.
const hudHeight = 2

// newCanvas returns a board-sized screen with the wall border drawn.
func newCanvas(cols, rows int) *core.Screen {
	c := core.NewScreen(cols, rows)
	c.DrawBox(core.NewRect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if cell := c.GetCell(x, y); cell.Rune != ' ' {
				c.SetCell(x, y, core.Cell{Rune: cell.Rune, Color: core.ColorGrey2})
			}
		}
	}
	return c
}

// paint applies the pending draw requests to the canvas in order.
func (g *Game) paint() {
	for _, r := range g.requests {
		switch r.Op {
		case OpErase:
			g.canvas.Erase(r.Rect)
		case OpDraw:
			g.canvas.DrawSprite(r.Rect, r.Sprite, r.Color)
		}
	}
}

// Render draws the HUD, the board and any end-of-round overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		renderOverlay(dst, "Level failed to start", g.err.Error())
		return
	}
	if g.canvas == nil {
		return
	}

	cols, rows := g.canvas.Width(), g.canvas.Height()
	if dst.Width() < cols || dst.Height() < rows+hudHeight {
		renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", cols, rows+hudHeight))
		return
	}

	g.renderHUD(dst)
	ox := (dst.Width() - cols) / 2
	dst.Blit(g.canvas, ox, hudHeight)

	switch g.result {
	case ResultWon:
		renderOverlay(dst, "You Win!", fmt.Sprintf("Score: %d  R: restart  B: menu", g.score))
	case ResultLost:
		renderOverlay(dst, "Game Over", "R: restart  B: menu")
	case ResultQuit:
		renderOverlay(dst, "Round abandoned", "R: restart  B: menu")
	}
}

// renderHUD draws the status line and a separator. The HP figure takes
// the swallow's health color.
func (g *Game) renderHUD(dst *core.Screen) {
	albatross := "ready"
	if g.albatrossCooldown > 0 {
		albatross = fmt.Sprintf("%.0fs", g.albatrossCooldown)
	}
	head := fmt.Sprintf(" Swallow | %s  Stars %d/%d  HP ", g.level.Name, g.collected, g.level.StarQuota)
	hp := fmt.Sprintf("%d", g.swallow.HP)
	tail := fmt.Sprintf("  Time %.1f  Speed %d  Albatross %s  Score %d",
		max(g.timeLeft, 0), g.speed, albatross, g.score)

	x := len([]rune(head))
	dst.DrawText(0, 0, head)
	dst.DrawTextColor(x, 0, hp, g.swallow.Color)
	dst.DrawText(x+len(hp), 0, tail)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		dst.DrawHLine(box.X+1, y, box.W-2, ' ')
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
