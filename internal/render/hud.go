package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tilequest/internal/engine"
)

// drawStatus renders the location line and key hints in the bottom area.
func (r *Renderer) drawStatus(s engine.Snapshot) {
	_, screenH := r.screen.Size()
	hudY := screenH - DialogueRows

	r.drawHLine(hudY, tcell.ColorGray)

	where := MapTitle(s.MapID)
	for _, e := range s.Entities {
		if e.Kind == engine.KindPlayer {
			where = fmt.Sprintf("%s  %s (%d,%d)", where, e.Name, e.X, e.Y)
			break
		}
	}
	r.drawText(1, hudY+1, where, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	r.drawText(1, hudY+2, "[↑↓←→/WASD] Move   [Esc] Quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// drawDialogue renders the message box over the bottom rows of the screen.
func (r *Renderer) drawDialogue(lines []string) {
	screenW, screenH := r.screen.Size()
	top := screenH - DialogueRows
	bg := tcell.StyleDefault.Background(colDialogueBG)
	border := bg.Foreground(colDialogueBdr)

	for y := top; y < screenH; y++ {
		for x := 0; x < screenW; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}
	right := screenW - 1
	bottom := screenH - 1
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, border)
		r.screen.SetContent(x, bottom, '─', nil, border)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, border)
		r.screen.SetContent(right, y, '│', nil, border)
	}
	r.screen.SetContent(0, top, '┌', nil, border)
	r.screen.SetContent(right, top, '┐', nil, border)
	r.screen.SetContent(0, bottom, '└', nil, border)
	r.screen.SetContent(right, bottom, '┘', nil, border)

	text := bg.Foreground(tcell.ColorWhite)
	for i, line := range lines {
		if top+1+i >= bottom {
			break
		}
		r.drawText(2, top+1+i, runewidth.Truncate(line, screenW-4, ""), text)
	}
	r.drawText(right-2, bottom, "▼", border.Foreground(tcell.ColorYellow))
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// MapTitle turns a map id such as "route_101" into "ROUTE 101".
func MapTitle(id string) string {
	return strings.ToUpper(strings.ReplaceAll(id, "_", " "))
}
