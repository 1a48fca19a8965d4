package form

// ValidationError is a field-level failure. The field keeps its prior value
// and the caller may retry with a corrected answer.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErr(reason string) error { return &ValidationError{Reason: reason} }

// SequenceError reports a command invoked in an illegal session state, e.g.
// answer before start or submit before completion. It never escalates; the
// session is left unchanged.
type SequenceError struct {
	Command string
	Reason  string
}

func (e *SequenceError) Error() string { return e.Command + ": " + e.Reason }

func sequenceErr(command, reason string) error {
	return &SequenceError{Command: command, Reason: reason}
}
