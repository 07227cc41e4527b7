package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tilequest/internal/component"
	"tilequest/internal/engine"
	"tilequest/internal/narrative"
)

// DialogueRows is the height of the box reserved at the bottom of the screen.
const DialogueRows = 5

// Renderer draws engine snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize recomputes the viewport from the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	viewH := h - DialogueRows
	if viewH < 1 {
		viewH = 1
	}
	r.camera = NewCamera(w, viewH)
}

// ViewTiles returns the size, in tiles, of the map window to snapshot.
func (r *Renderer) ViewTiles() (w, h int) { return r.camera.Tiles() }

// Draw renders one frame.
func (r *Renderer) Draw(s engine.Snapshot) {
	r.screen.Clear()
	if s.Phase == narrative.PhaseGameplay {
		r.camera.Follow(s.Origin)
		r.drawMap(s)
		r.drawEntities(s)
		if !s.DialogueActive {
			r.drawStatus(s)
		}
	} else {
		r.drawIntro(s)
	}
	if s.DialogueActive {
		r.drawDialogue(s.DialogueLines)
	}
	r.screen.Show()
}

func (r *Renderer) drawMap(s engine.Snapshot) {
	for dy, row := range s.Tiles {
		for dx, t := range row {
			if !s.Inside[dy][dx] {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(s.Origin.X+dx, s.Origin.Y+dy)
			if !onScreen {
				continue
			}
			look := LookOf(t)
			r.putGlyph(sx, sy, look.Glyph, tcell.StyleDefault.Background(look.BG))
		}
	}
}

// drawEntities draws entities in snapshot order, over the background of the
// tile each one stands on.
func (r *Renderer) drawEntities(s engine.Snapshot) {
	for _, e := range s.Entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.X, e.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(entityColor(e))
		wx, wy := e.X-s.Origin.X, e.Y-s.Origin.Y
		if wy >= 0 && wy < len(s.Tiles) && wx >= 0 && wx < len(s.Tiles[wy]) {
			style = style.Background(LookOf(s.Tiles[wy][wx]).BG)
		}
		r.putGlyph(sx, sy, e.Glyph, style)
	}
}

func entityColor(e engine.EntityView) tcell.Color {
	if e.Kind != engine.KindPlayer {
		return tcell.ColorTeal
	}
	if e.Gender == component.GenderGirl {
		return colPlayerGirl
	}
	return colPlayerBoy
}

// putGlyph draws one tile-wide glyph at screen position (x, y). A glyph is
// either a single (possibly multi-rune) emoji or two narrow characters.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	if len(runes) > 1 && runewidth.RuneWidth(runes[0]) == 1 {
		r.drawText(x, y, glyph, style)
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	// Fill the second column to avoid rendering artifacts.
	r.screen.SetContent(x+1, y, ' ', nil, style)
}

// drawText writes text starting at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += w
	}
	return col
}

// centerText writes text horizontally centred on row y.
func (r *Renderer) centerText(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}
