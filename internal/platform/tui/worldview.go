package tui

import (
	"fmt"

	"github.com/MarcelZelent/FunGame/internal/core"
	"github.com/MarcelZelent/FunGame/internal/env"
)

// Visual characters for rendering
const (
	pipeChar   = '█'
	entityChar = '▓'
	groundChar = '═'
)

// hudRows is the number of rows reserved for the status bar.
const hudRows = 2

// drawWorld renders the environment state into the cell buffer. The
// continuous world box is scaled to the available view area; the drawing
// only reads env accessors and never mutates state.
func drawWorld(dst *core.Screen, e *env.Env) {
	dst.Clear()

	cfg := e.Config()
	viewH := dst.Height() - hudRows - 1 // Rows below the HUD, above the ground line
	if viewH < 1 || dst.Width() < 1 {
		return
	}

	sx := float64(dst.Width()) / cfg.World.Width
	sy := float64(viewH) / cfg.World.Height

	// Ground line at the bottom edge of the view
	dst.DrawHLine(0, hudRows+viewH, dst.Width(), groundChar)

	// Pipes: top and bottom columns around the gap
	for _, p := range e.Pipes() {
		x0 := int(p.X * sx)
		x1 := int((p.X + cfg.Obstacles.Width) * sx)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		gapTop := hudRows + int(p.GapY*sy)
		gapBottom := hudRows + int((p.GapY+p.GapHeight)*sy)

		for x := x0; x < x1; x++ {
			for y := hudRows; y < gapTop; y++ {
				dst.SetColored(x, y, pipeChar, core.ColorGreen)
			}
			for y := gapBottom; y < hudRows+viewH; y++ {
				dst.SetColored(x, y, pipeChar, core.ColorGreen)
			}
		}
	}

	// Entity square, always at least one cell
	r := e.EntityRect()
	ex0 := int(r.X * sx)
	ex1 := core.Max(int(r.Right()*sx), ex0+1)
	ey0 := hudRows + int(r.Y*sy)
	ey1 := core.Max(hudRows+int(r.Bottom()*sy), ey0+1)
	for y := ey0; y < ey1; y++ {
		for x := ex0; x < ex1; x++ {
			dst.SetColored(x, y, entityChar, core.ColorBrightYellow)
		}
	}

	drawHUD(dst, e)
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, e *env.Env) {
	hud := fmt.Sprintf(" Score: %d  Speed: %.2f  Gap: %.0f  Tick: %d",
		e.Score(), e.Speed(), e.GapHeight(), e.Tick())
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
