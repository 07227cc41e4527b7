package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"tilequest/internal/component"
	"tilequest/internal/engine"
	"tilequest/internal/narrative"
)

const professorGlyph = "🧑‍🔬"

// drawIntro renders the onboarding screens that precede the world.
func (r *Renderer) drawIntro(s engine.Snapshot) {
	titleStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(248, 224, 96)).Bold(true)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	switch s.Phase {
	case narrative.PhaseGenderSelect:
		r.drawGenderSelect(s.GenderChoice, titleStyle, dimStyle)
	case narrative.PhaseNameInput:
		r.drawNameInput(s.NameBuffer, s.DialogueActive, titleStyle, dimStyle)
	default:
		r.drawProfessor(titleStyle)
	}
}

func (r *Renderer) drawProfessor(titleStyle tcell.Style) {
	_, h := r.screen.Size()
	mid := (h - DialogueRows) / 2
	r.centerText(1, "✨ TILEQUEST ✨", titleStyle)
	w, _ := r.screen.Size()
	r.putGlyph(w/2-1, mid, professorGlyph, tcell.StyleDefault.Foreground(colProfessor))
}

func (r *Renderer) drawGenderSelect(cursor component.Gender, titleStyle, dimStyle tcell.Style) {
	w, h := r.screen.Size()
	mid := (h - DialogueRows) / 2

	r.centerText(1, "Are you a boy or a girl?", titleStyle)

	normal := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	highlight := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(70, 70, 150))
	options := []struct {
		g     component.Gender
		label string
		x     int
	}{
		{component.GenderBoy, "👦 BOY", w/2 - 12},
		{component.GenderGirl, "👧 GIRL", w/2 + 4},
	}
	for _, o := range options {
		style, prefix := normal, "  "
		if o.g == cursor {
			style, prefix = highlight, "► "
		}
		r.drawText(o.x, mid, prefix+o.label+" ", style)
	}
	r.centerText(mid+3, "[←/→ or B/G] Choose   [Enter] Confirm", dimStyle)
}

func (r *Renderer) drawNameInput(name string, prompting bool, titleStyle, dimStyle tcell.Style) {
	w, h := r.screen.Size()
	mid := (h - DialogueRows) / 2

	r.centerText(1, "YOUR NAME?", titleStyle)

	field := name
	if !prompting && len(name) < narrative.MaxNameLength {
		field += "_"
	}
	field += strings.Repeat(" ", narrative.MaxNameLength+1-len([]rune(field)))
	box := tcell.StyleDefault.Background(tcell.NewRGBColor(60, 60, 60)).Foreground(tcell.ColorWhite)
	x := (w - len(field) - 2) / 2
	r.drawText(x, mid, "["+field+"]", box)

	if !prompting {
		r.centerText(mid+2, "[A-Z 0-9] Type   [Backspace] Delete   [Enter] Confirm", dimStyle)
	}
}
