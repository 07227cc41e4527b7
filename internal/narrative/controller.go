package narrative

import (
	"fmt"
	"log/slog"
	"unicode"

	"tilequest/internal/component"
	"tilequest/internal/dialogue"
)

// MaxNameLength bounds the player name buffer.
const MaxNameLength = 7

// Lines is the text the controller speaks. Placeholders are expanded with
// dialogue.Expand at the moment each line is queued.
type Lines struct {
	Welcome    string
	Speech     []string
	NamePrompt string
	Farewell   string
}

// Host receives control once onboarding completes.
type Host interface {
	BeginGameplay(name string, gender component.Gender) error
}

type transition struct {
	from  Phase
	on    Event
	guard func(*Controller) bool
	to    Phase
	enter func(*Controller) error
}

// transitions returns the machine's table. Rows are scanned in order; the
// first whose phase, event and guard all match is taken.
func transitions() []transition {
	return []transition{
		{PhaseWelcome, EventBatchDone, nil, PhaseSpeech, (*Controller).firstSpeech},
		{PhaseSpeech, EventBatchDone, (*Controller).moreSpeech, PhaseSpeech, (*Controller).nextSpeech},
		{PhaseSpeech, EventBatchDone, nil, PhaseGenderSelect, nil},
		{PhaseGenderSelect, EventGenderChosen, nil, PhaseNameInput, (*Controller).promptName},
		{PhaseNameInput, EventNameConfirmed, (*Controller).nameReady, PhaseTransition, (*Controller).farewell},
		{PhaseTransition, EventBatchDone, nil, PhaseGameplay, (*Controller).handOff},
	}
}

// Controller is the onboarding state machine. It owns the name buffer and
// gender choice, and speaks through a shared dialogue queue.
type Controller struct {
	q      *dialogue.Queue
	lines  Lines
	vars   dialogue.Vars
	host   Host
	logger *slog.Logger
	table  []transition

	phase  Phase
	stage  int
	cursor component.Gender
	gender component.Gender
	name   []rune
	err    error
}

// New creates a controller in PhaseWelcome. vars supplies the professor and
// rival names; the player fields are filled in as onboarding progresses.
func New(q *dialogue.Queue, lines Lines, vars dialogue.Vars, host Host, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{q: q, lines: lines, vars: vars, host: host, logger: logger, table: transitions()}
}

// Start queues the welcome line.
func (c *Controller) Start() {
	c.say(c.lines.Welcome)
}

// Fire applies ev to the machine. It reports whether a transition was taken.
func (c *Controller) Fire(ev Event) (bool, error) {
	for _, t := range c.table {
		if t.from != c.phase || t.on != ev {
			continue
		}
		if t.guard != nil && !t.guard(c) {
			continue
		}
		from := c.phase
		c.phase = t.to
		if t.enter != nil {
			if err := t.enter(c); err != nil {
				c.phase = from
				return false, fmt.Errorf("narrative %s -> %s: %w", from, t.to, err)
			}
		}
		c.logger.Debug("narrative transition", "from", from, "to", t.to, "event", ev, "stage", c.stage)
		return true, nil
	}
	return false, nil
}

// Err returns the first error raised by a transition that was fired from a
// dialogue completion, and clears it.
func (c *Controller) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Controller) say(text string) {
	c.q.Enqueue(dialogue.Expand(text, c.Vars()), c.batchDone)
}

func (c *Controller) batchDone() {
	if _, err := c.Fire(EventBatchDone); err != nil && c.err == nil {
		c.err = err
	}
}

func (c *Controller) firstSpeech() error {
	c.stage = 0
	c.say(c.lines.Speech[0])
	return nil
}

func (c *Controller) moreSpeech() bool {
	return c.stage < len(c.lines.Speech)-1
}

func (c *Controller) nextSpeech() error {
	c.stage++
	c.say(c.lines.Speech[c.stage])
	return nil
}

func (c *Controller) promptName() error {
	c.say(c.lines.NamePrompt)
	return nil
}

func (c *Controller) nameReady() bool {
	return len(c.name) > 0 && !c.q.Active()
}

func (c *Controller) farewell() error {
	c.say(c.lines.Farewell)
	return nil
}

func (c *Controller) handOff() error {
	if c.host == nil {
		return nil
	}
	return c.host.BeginGameplay(c.Name(), c.gender)
}

// MoveCursor toggles the highlighted gender on the selection screen.
func (c *Controller) MoveCursor() {
	if c.phase != PhaseGenderSelect {
		return
	}
	if c.cursor == component.GenderBoy {
		c.cursor = component.GenderGirl
	} else {
		c.cursor = component.GenderBoy
	}
}

// Select chooses g and advances to name entry.
func (c *Controller) Select(g component.Gender) (bool, error) {
	if c.phase != PhaseGenderSelect || !g.Valid() {
		return false, nil
	}
	c.gender, c.cursor = g, g
	return c.Fire(EventGenderChosen)
}

// Confirm accepts the highlighted gender or the typed name, depending on
// the current phase.
func (c *Controller) Confirm() (bool, error) {
	switch c.phase {
	case PhaseGenderSelect:
		return c.Select(c.cursor)
	case PhaseNameInput:
		return c.Fire(EventNameConfirmed)
	}
	return false, nil
}

// TypeRune appends r to the name buffer. Only ASCII letters and digits are
// accepted, upper-cased, and only while no message is on screen.
func (c *Controller) TypeRune(r rune) bool {
	if c.phase != PhaseNameInput || c.q.Active() || len(c.name) >= MaxNameLength {
		return false
	}
	if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return false
	}
	c.name = append(c.name, unicode.ToUpper(r))
	return true
}

// Backspace removes the last character of the name buffer.
func (c *Controller) Backspace() bool {
	if c.phase != PhaseNameInput || c.q.Active() || len(c.name) == 0 {
		return false
	}
	c.name = c.name[:len(c.name)-1]
	return true
}

func (c *Controller) Phase() Phase { return c.phase }

// Stage is the index of the speech line most recently queued.
func (c *Controller) Stage() int { return c.stage }

func (c *Controller) Cursor() component.Gender { return c.cursor }

func (c *Controller) Gender() component.Gender { return c.gender }

func (c *Controller) Name() string { return string(c.name) }

// Done reports whether onboarding has handed control to the world.
func (c *Controller) Done() bool { return c.phase == PhaseGameplay }

// Vars returns the substitution values as of now.
func (c *Controller) Vars() dialogue.Vars {
	v := c.vars
	v.Player = c.Name()
	if c.phase >= PhaseNameInput {
		v.Gender = c.gender.String()
	}
	return v
}
