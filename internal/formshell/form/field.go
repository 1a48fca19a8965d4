package form

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldType tags the closed set of field variants.
type FieldType string

const (
	TypeText           FieldType = "text"
	TypeNumber         FieldType = "number"
	TypeEmail          FieldType = "email"
	TypeURL            FieldType = "url"
	TypeDate           FieldType = "date"
	TypeChoice         FieldType = "choice"
	TypeMultipleChoice FieldType = "multiplechoice"
	TypeRating         FieldType = "rating"
	TypeYesNo          FieldType = "yesno"
)

// Option is one selectable entry of a choice field. Value falls back to
// Label when empty.
type Option struct {
	Label string
	Value string
}

func (o Option) value() string {
	if o.Value != "" {
		return o.Value
	}
	return o.Label
}

// Field is the typed, validated value holder for one step.
//
// SetValue validates the candidate; on success it stores the normalized
// value and clears the field error, on failure it records the reason as the
// field error and leaves the prior value untouched.
type Field interface {
	Type() FieldType
	ID() string
	Label() string
	Description() string
	Required() bool
	Value() Value
	Err() string
	Options() []Option

	Validate(candidate any) error
	SetValue(candidate any) error
	Format() string
	Reset()
}

const requiredReason = "This field is required"

type baseField struct {
	typ         FieldType
	id          string
	label       string
	description string
	required    bool
	value       Value
	def         Value
	err         string
}

func (b *baseField) Type() FieldType     { return b.typ }
func (b *baseField) ID() string          { return b.id }
func (b *baseField) Label() string       { return b.label }
func (b *baseField) Description() string { return b.description }
func (b *baseField) Required() bool      { return b.required }
func (b *baseField) Value() Value        { return b.value }
func (b *baseField) Err() string         { return b.err }
func (b *baseField) Options() []Option   { return nil }

// Reset restores the configured default (absent when none), so a reset
// session replays the same navigation path as a fresh one.
func (b *baseField) Reset() {
	b.value = b.def
	b.err = ""
}

// markDefault records the current value as the field default. The factory
// calls it after applying a configured default value.
func (b *baseField) markDefault() { b.def = b.value }

// apply runs the variant's convert function and commits or records the
// outcome per the SetValue contract.
func (b *baseField) apply(candidate any, convert func(any) (Value, error)) error {
	v, err := convert(candidate)
	if err != nil {
		b.err = err.Error()
		return err
	}
	b.value = v
	b.err = ""
	return nil
}

// checkEmpty implements the shared base rule: an empty candidate fails iff
// the field is required, otherwise it clears the field to absent.
// handled is true when the candidate was empty and no further validation
// should run.
func (b *baseField) checkEmpty(candidate any) (handled bool, v Value, err error) {
	if !isEmpty(candidate) {
		return false, Value{}, nil
	}
	if b.required {
		return true, Value{}, validationErr(requiredReason)
	}
	return true, Absent(), nil
}

func isEmpty(candidate any) bool {
	switch c := candidate.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(c) == ""
	case []string:
		return len(c) == 0
	case Value:
		return c.IsAbsent()
	default:
		return false
	}
}

// coerceString renders a candidate as the string the text-based variants
// validate against.
func coerceString(candidate any) string {
	switch c := candidate.(type) {
	case string:
		return c
	case Value:
		return c.Text()
	default:
		return fmt.Sprint(c)
	}
}

// coerceNumber parses a candidate as a float. ok is false when the
// candidate is not numeric.
func coerceNumber(candidate any) (float64, bool) {
	switch c := candidate.(type) {
	case float64:
		return c, true
	case float32:
		return float64(c), true
	case int:
		return float64(c), true
	case int64:
		return float64(c), true
	case Value:
		if n, ok := c.Num(); ok {
			return n, true
		}
		if s, ok := c.Str(); ok {
			n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			return n, err == nil
		}
		return 0, false
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// formatNumber renders a bound for an error message without a trailing
// fractional part when the bound is integral.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
