package form

import (
	"context"
	"time"
)

// Submitter delivers completed form data to an endpoint and returns the
// parsed response.
type Submitter interface {
	Submit(ctx context.Context, endpoint string, data FormData) (any, error)
}

// ControllerOptions configures the optional collaborators.
type ControllerOptions struct {
	// Endpoint overrides the definition's endpoint. Empty keeps it.
	Endpoint string
	// Submitter performs the POST. Defaults to an HTTPSubmitter when an
	// endpoint is configured.
	Submitter Submitter
	// OnComplete receives the server response (or the local form data when
	// no endpoint is configured) after a successful submit.
	OnComplete func(any)
	// AdvanceDelay is the cosmetic pause between a successful answer and
	// the automatic advance. Hosts schedule it themselves via
	// ScheduleAdvance/ConfirmAdvance.
	AdvanceDelay time.Duration
}

// DefaultAdvanceDelay is the pause between a successful answer and the
// automatic advance to the next question.
const DefaultAdvanceDelay = 600 * time.Millisecond

// Controller is the top-level orchestrator: it owns the session and exposes
// the external command surface. Commands report precondition failures as
// errors and never panic.
type Controller struct {
	def        *Definition
	session    *Session
	endpoint   string
	submitter  Submitter
	onComplete func(any)
	delay      time.Duration

	advanceSeq int
	destroyed  bool
}

// NewController builds a controller and its session from a definition.
func NewController(def *Definition, opts ControllerOptions) (*Controller, []string, error) {
	session, warnings, err := NewSession(def)
	if err != nil {
		return nil, warnings, err
	}
	endpoint := def.Endpoint
	if opts.Endpoint != "" {
		endpoint = opts.Endpoint
	}
	submitter := opts.Submitter
	if submitter == nil && endpoint != "" {
		submitter = NewHTTPSubmitter(0)
	}
	delay := opts.AdvanceDelay
	if delay <= 0 {
		delay = DefaultAdvanceDelay
	}
	return &Controller{
		def:        def,
		session:    session,
		endpoint:   endpoint,
		submitter:  submitter,
		onComplete: opts.OnComplete,
		delay:      delay,
	}, warnings, nil
}

// Definition returns the form declaration the controller was built from.
func (c *Controller) Definition() *Definition { return c.def }

// Session exposes the navigation state machine.
func (c *Controller) Session() *Session { return c.session }

// AdvanceDelay is the configured pause before automatic advancement.
func (c *Controller) AdvanceDelay() time.Duration { return c.delay }

func (c *Controller) guard(command string) error {
	if c.destroyed {
		return sequenceErr(command, "form destroyed")
	}
	return nil
}

// Start begins the form from the welcome screen.
func (c *Controller) Start() error {
	if err := c.guard("start"); err != nil {
		return err
	}
	return c.session.Start()
}

// Answer submits a candidate value for the current question. On success the
// caller should schedule the advance.
func (c *Controller) Answer(candidate any) error {
	if err := c.guard("answer"); err != nil {
		return err
	}
	return c.session.Answer(candidate)
}

// Y answers yes. Sugar for Answer("y").
func (c *Controller) Y() error { return c.Answer("y") }

// N answers no. Sugar for Answer("n").
func (c *Controller) N() error { return c.Answer("n") }

// Skip answers the current optional question with an absent value.
func (c *Controller) Skip() error {
	if err := c.guard("skip"); err != nil {
		return err
	}
	return c.session.Skip()
}

// Back returns to the nearest previous visible question.
func (c *Controller) Back() error {
	if err := c.guard("back"); err != nil {
		return err
	}
	c.advanceSeq++ // a pending advance no longer applies
	return c.session.Back()
}

// Reset returns the whole form to the welcome state.
func (c *Controller) Reset() error {
	if err := c.guard("reset"); err != nil {
		return err
	}
	c.advanceSeq++
	c.session.Reset()
	return nil
}

// Help raises the help overlay.
func (c *Controller) Help() error {
	if err := c.guard("help"); err != nil {
		return err
	}
	c.session.Help()
	return nil
}

// Continue dismisses the help overlay.
func (c *Controller) Continue() error {
	if err := c.guard("continue"); err != nil {
		return err
	}
	return c.session.Continue()
}

// ScheduleAdvance hands out a token for the delayed automatic advance. A
// later ConfirmAdvance with a stale token is a no-op, which is how pending
// advances are cancelled by Back, Reset and Destroy.
func (c *Controller) ScheduleAdvance() int {
	c.advanceSeq++
	return c.advanceSeq
}

// ConfirmAdvance applies a previously scheduled advance. It reports whether
// the session actually moved.
func (c *Controller) ConfirmAdvance(token int) bool {
	if c.destroyed || token != c.advanceSeq {
		return false
	}
	return c.session.Advance() == nil
}

// Submit projects the form data and delivers it. Network or parse failures
// leave the session completed so submit can be retried.
func (c *Controller) Submit(ctx context.Context) (any, error) {
	if err := c.guard("submit"); err != nil {
		return nil, err
	}
	if c.session.HelpActive() {
		return nil, sequenceErr("submit", "close help first")
	}
	if !c.session.Completed() {
		return nil, sequenceErr("submit", "form not completed")
	}
	data := c.session.Data()
	var result any = data
	if c.endpoint != "" {
		res, err := c.submitter.Submit(ctx, c.endpoint, data)
		if err != nil {
			return nil, err
		}
		result = res
	}
	if c.onComplete != nil {
		c.onComplete(result)
	}
	return result, nil
}

// Destroy invalidates the controller and cancels any pending advance. A
// submit already in flight is not cancelled.
func (c *Controller) Destroy() {
	c.destroyed = true
	c.advanceSeq++
}

// Destroyed reports whether Destroy has run.
func (c *Controller) Destroyed() bool { return c.destroyed }
