package form

import (
	"math"
	"time"
)

// Step pairs a field with its visibility predicate and answered flag. Step
// order is fixed at construction; only visibility changes at runtime.
type Step struct {
	Field    Field
	Answered bool

	condition func(FormData) bool
}

// Session is the linear navigation state machine: Welcome (index -1) →
// Answering (0..N-1) → Completed (N), with an orthogonal help overlay flag
// that suspends every command except Continue and Reset.
type Session struct {
	steps      []*Step
	current    int
	started    bool
	completed  bool
	helpActive bool
	startTime  time.Time

	now func() time.Time
}

// NewSession builds a session from a definition. Returned warnings are the
// factory's non-fatal unknown-type fallbacks.
func NewSession(def *Definition) (*Session, []string, error) {
	steps := make([]*Step, 0, len(def.Steps))
	var warnings []string
	seen := make(map[string]bool, len(def.Steps))
	for _, cfg := range def.Steps {
		if seen[cfg.ID] {
			return nil, warnings, sequenceErr("new", "duplicate field id "+cfg.ID)
		}
		seen[cfg.ID] = true
		field, warning, err := NewField(cfg)
		if err != nil {
			return nil, warnings, err
		}
		if warning != "" {
			warnings = append(warnings, warning)
		}
		steps = append(steps, &Step{Field: field, condition: cfg.visibility()})
	}
	return &Session{steps: steps, current: -1, now: time.Now}, warnings, nil
}

// Data projects every step's current field value, including unanswered
// steps (which hold their default or absent value). Derived on demand.
func (s *Session) Data() FormData {
	data := make(FormData, len(s.steps))
	for _, step := range s.steps {
		data[step.Field.ID()] = step.Field.Value()
	}
	return data
}

// Started reports whether Start has run since construction or the last Reset.
func (s *Session) Started() bool { return s.started }

// Completed reports whether the last visible step has been passed.
func (s *Session) Completed() bool { return s.completed }

// HelpActive reports whether the help overlay is suspending commands.
func (s *Session) HelpActive() bool { return s.helpActive }

// CurrentIndex returns the raw step index: -1 for welcome, len(steps) when
// completed.
func (s *Session) CurrentIndex() int { return s.current }

// Current returns the step being answered, or nil outside Answering.
func (s *Session) Current() *Step {
	if s.current < 0 || s.current >= len(s.steps) {
		return nil
	}
	return s.steps[s.current]
}

// Steps exposes the raw ordered step list.
func (s *Session) Steps() []*Step { return s.steps }

// VisibleSteps returns the steps whose condition passes against the live
// form data, in order.
func (s *Session) VisibleSteps() []*Step {
	out := make([]*Step, 0, len(s.steps))
	for i := range s.steps {
		if s.visible(i) {
			out = append(out, s.steps[i])
		}
	}
	return out
}

func (s *Session) visible(i int) bool {
	cond := s.steps[i].condition
	if cond == nil {
		return true
	}
	return cond(s.Data())
}

func (s *Session) firstVisibleFrom(start int) int {
	for i := start; i < len(s.steps); i++ {
		if s.visible(i) {
			return i
		}
	}
	return -1
}

func (s *Session) lastVisibleBefore(end int) int {
	for i := end; i >= 0; i-- {
		if s.visible(i) {
			return i
		}
	}
	return -1
}

// Start moves from Welcome to the first visible step.
func (s *Session) Start() error {
	if s.started {
		return sequenceErr("start", "form already started")
	}
	if s.helpActive {
		return sequenceErr("start", "close help first")
	}
	idx := s.firstVisibleFrom(0)
	if idx < 0 {
		return sequenceErr("start", "no visible steps")
	}
	s.current = idx
	s.started = true
	s.startTime = s.now()
	return nil
}

func (s *Session) answerable(command string) error {
	if !s.started {
		return sequenceErr(command, "form not started")
	}
	if s.completed {
		return sequenceErr(command, "form already completed")
	}
	if s.helpActive {
		return sequenceErr(command, "close help first")
	}
	return nil
}

// Answer validates and stores a value on the current step's field. On
// success the step is marked answered; advancement is a separate call so
// hosts can schedule it after their UI delay.
func (s *Session) Answer(candidate any) error {
	if err := s.answerable("answer"); err != nil {
		return err
	}
	step := s.steps[s.current]
	if err := step.Field.SetValue(candidate); err != nil {
		return err
	}
	step.Answered = true
	return nil
}

// Skip marks the current step answered with an absent value. Required
// fields cannot be skipped.
func (s *Session) Skip() error {
	if err := s.answerable("skip"); err != nil {
		return err
	}
	step := s.steps[s.current]
	if step.Field.Required() {
		return validationErr("This question is required and cannot be skipped")
	}
	if err := step.Field.SetValue(nil); err != nil {
		return err
	}
	step.Answered = true
	return nil
}

// Advance moves to the next visible step, or to Completed when none
// remains.
func (s *Session) Advance() error {
	if err := s.answerable("advance"); err != nil {
		return err
	}
	idx := s.firstVisibleFrom(s.current + 1)
	if idx < 0 {
		s.current = len(s.steps)
		s.completed = true
		return nil
	}
	s.current = idx
	return nil
}

// Back moves to the nearest previous visible step. Re-entering Answering
// from Completed is legal and clears the completed flag.
func (s *Session) Back() error {
	if !s.started {
		return sequenceErr("back", "form not started")
	}
	if s.helpActive {
		return sequenceErr("back", "close help first")
	}
	idx := s.lastVisibleBefore(min(s.current, len(s.steps)) - 1)
	if idx < 0 {
		return sequenceErr("back", "already at the first question")
	}
	s.current = idx
	s.completed = false
	return nil
}

// Reset unconditionally returns to Welcome, clearing every step and flag.
func (s *Session) Reset() {
	for _, step := range s.steps {
		step.Answered = false
		step.Field.Reset()
	}
	s.current = -1
	s.started = false
	s.completed = false
	s.helpActive = false
	s.startTime = time.Time{}
}

// Help raises the overlay flag. It blocks all commands except Continue and
// Reset and does not alter the current step.
func (s *Session) Help() {
	s.helpActive = true
}

// Continue dismisses the help overlay, restoring whichever of welcome,
// current question or summary the session was showing.
func (s *Session) Continue() error {
	if !s.helpActive {
		return sequenceErr("continue", "help is not open")
	}
	s.helpActive = false
	return nil
}

// Progress counts answered and total among visible steps only, with a
// rounded percentage (0 when no step is visible).
func (s *Session) Progress() (answered, total, percent int) {
	for i := range s.steps {
		if !s.visible(i) {
			continue
		}
		total++
		if s.steps[i].Answered {
			answered++
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	percent = int(math.Round(100 * float64(answered) / float64(total)))
	return answered, total, percent
}

// Ordinal returns the current step's 1-based rank among visible steps up to
// and including itself, so hidden steps never consume a number. 0 outside
// Answering.
func (s *Session) Ordinal() int {
	if s.current < 0 || s.current >= len(s.steps) {
		return 0
	}
	rank := 0
	for i := 0; i <= s.current; i++ {
		if s.visible(i) {
			rank++
		}
	}
	return rank
}

// EstimatedRemaining extrapolates from the average wall-clock time per
// answered visible step. ok is false before any step has been answered.
//
// The remaining count deliberately uses the raw step distance rather than
// the visible-step count, mirroring the original behavior; reconciling the
// two is a product decision.
func (s *Session) EstimatedRemaining() (time.Duration, bool) {
	if !s.started || s.current < 0 {
		return 0, false
	}
	answered, _, _ := s.Progress()
	if answered == 0 {
		return 0, false
	}
	elapsed := s.now().Sub(s.startTime)
	average := elapsed / time.Duration(answered)
	remaining := len(s.steps) - s.current - 1
	if remaining < 0 {
		remaining = 0
	}
	return average * time.Duration(remaining), true
}
