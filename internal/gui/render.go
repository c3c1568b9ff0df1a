package gui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/conway/internal/input"
	"github.com/san-kum/conway/internal/theme"
)

type palette struct {
	live, dead, border, accent, text rl.Color
}

func newPalette(t theme.Theme) palette {
	return palette{
		live:   toColor(t.Live),
		dead:   toColor(t.Dead),
		border: toColor(t.Border),
		accent: toColor(t.Accent),
		text:   toColor(t.Text),
	}
}

func toColor(c lipgloss.Color) rl.Color {
	r, g, b := theme.RGB(c)
	return rl.NewColor(r, g, b, 255)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.palette.dead)

	a.drawBoard()
	a.DrawHUD()
	if a.ShowHelp {
		a.drawHelp()
	}

	rl.EndDrawing()
}

// drawBoard fills live cells and outlines every cell with a 1px border.
func (a *App) drawBoard() {
	a.Session.Grid().Each(func(row, col int, alive bool) {
		x, y, w, h := a.Layout.Rect(row, col)
		fill := a.palette.dead
		if alive {
			fill = a.palette.live
		}
		rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), fill)
		rl.DrawRectangleLines(int32(x), int32(y), int32(w), int32(h), a.palette.border)
	})
}

// DrawHUD fills the status strip under the board.
func (a *App) DrawHUD() {
	status := fmt.Sprintf("gen %d  pop %d", a.Session.Generation(), a.Session.Population())
	if name := a.Session.Pattern(); name != "" {
		status += "  " + name
	}
	top := a.height - hudHeight
	rl.DrawRectangle(0, top, a.width, hudHeight, a.palette.dead)
	rl.DrawLine(0, top, a.width, top, a.palette.border)
	rl.DrawText(status, 6, top+4, 14, a.palette.accent)
}

func (a *App) drawHelp() {
	advance, _ := a.Keys.KeyFor(input.Advance)
	lines := []string{
		"CLICK  toggle cell",
		fmt.Sprintf("%-6s advance one generation", advance),
		"C      clear",
		"P      next pattern",
		"T      next theme",
		"?      help",
		"Q      quit",
	}
	w, h := int32(300), int32(len(lines)*20+20)
	x, y := (a.width-w)/2, (a.height-hudHeight-h)/2
	rl.DrawRectangle(x, y, w, h, rl.Fade(a.palette.dead, 0.95))
	rl.DrawRectangleLines(x, y, w, h, a.palette.border)
	for i, l := range lines {
		rl.DrawText(l, x+12, y+12+int32(i*20), 16, a.palette.text)
	}
}
