// Package dialogue presents narrative messages one at a time. Messages are
// grouped into batches; each batch may carry a completion callback that runs
// once, right after its last message is dismissed.
package dialogue

// Display budget of the dialogue box.
const (
	DefaultWidth    = 56 // terminal columns
	DefaultMaxLines = 3
)

type batch struct {
	remaining  int
	onComplete func()
}

type entry struct {
	text  string
	batch *batch
}

// Queue is a strictly sequential message presenter.
type Queue struct {
	width, maxLines int

	pending []entry
	current entry
	lines   []string
	active  bool
}

// NewQueue creates a queue that wraps text to width columns and shows at
// most maxLines lines per message.
func NewQueue(width, maxLines int) *Queue {
	if width <= 0 {
		width = DefaultWidth
	}
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &Queue{width: width, maxLines: maxLines}
}

// Enqueue appends a single-message batch. See EnqueueBatch.
func (q *Queue) Enqueue(msg string, onComplete func()) {
	q.EnqueueBatch([]string{msg}, onComplete)
}

// EnqueueBatch appends msgs as one batch. If the queue is idle the first
// message is presented immediately. An empty batch is ignored and its
// callback never runs.
func (q *Queue) EnqueueBatch(msgs []string, onComplete func()) {
	if len(msgs) == 0 {
		return
	}
	b := &batch{remaining: len(msgs), onComplete: onComplete}
	for _, m := range msgs {
		q.pending = append(q.pending, entry{text: m, batch: b})
	}
	if !q.active {
		q.present()
	}
}

// Advance dismisses the current message and presents the next one. It
// returns true when this call emptied the queue. Calling Advance on an idle
// queue does nothing and returns false.
func (q *Queue) Advance() bool {
	if !q.active {
		return false
	}
	done := q.current.batch
	done.remaining--

	drained := len(q.pending) == 0
	if drained {
		q.active = false
		q.current = entry{}
		q.lines = nil
	} else {
		q.present()
	}

	if done.remaining == 0 && done.onComplete != nil {
		cb := done.onComplete
		done.onComplete = nil
		cb()
	}
	return drained
}

func (q *Queue) present() {
	q.current, q.pending = q.pending[0], q.pending[1:]
	q.lines = Wrap(q.current.text, q.width, q.maxLines)
	q.active = true
}

// Active reports whether a message is on screen.
func (q *Queue) Active() bool { return q.active }

// Current returns the unwrapped text of the message on screen.
func (q *Queue) Current() string { return q.current.text }

// Lines returns a copy of the wrapped, truncated lines on screen.
func (q *Queue) Lines() []string {
	return append([]string(nil), q.lines...)
}

// Pending returns how many messages wait behind the current one.
func (q *Queue) Pending() int { return len(q.pending) }
