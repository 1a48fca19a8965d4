package form

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ChoiceField holds an ordered option list and accepts either a 1-based
// index or a literal option value.
type ChoiceField struct {
	baseField
	options []Option
}

func newChoiceField(cfg FieldConfig) (*ChoiceField, error) {
	if len(cfg.Options) == 0 {
		return nil, fmt.Errorf("field %q: choice requires options", cfg.ID)
	}
	return &ChoiceField{
		baseField: cfg.base(TypeChoice),
		options:   cfg.optionList(),
	}, nil
}

func (f *ChoiceField) Options() []Option { return f.options }

func (f *ChoiceField) Validate(candidate any) error {
	_, err := f.convert(candidate)
	return err
}

func (f *ChoiceField) SetValue(candidate any) error {
	return f.apply(candidate, f.convert)
}

func (f *ChoiceField) convert(candidate any) (Value, error) {
	if handled, v, err := f.checkEmpty(candidate); handled {
		return v, err
	}
	if idx, ok := candidateIndex(candidate); ok {
		if idx < 1 || idx > len(f.options) {
			return Value{}, validationErr(fmt.Sprintf("Choose a number between 1 and %d", len(f.options)))
		}
		return StringValue(f.options[idx-1].value()), nil
	}
	s := coerceString(candidate)
	for _, opt := range f.options {
		if opt.value() == s {
			return StringValue(s), nil
		}
	}
	return Value{}, validationErr("Invalid choice")
}

func (f *ChoiceField) Format() string {
	s, ok := f.value.Str()
	if !ok {
		return ""
	}
	for _, opt := range f.options {
		if opt.value() == s {
			return opt.Label
		}
	}
	return s
}

// candidateIndex reports whether the candidate reads as a whole number,
// which choice fields interpret as a 1-based option index.
func candidateIndex(candidate any) (int, bool) {
	switch c := candidate.(type) {
	case int:
		return c, true
	case int64:
		return int(c), true
	case float64:
		if math.Trunc(c) == c {
			return int(c), true
		}
		return 0, false
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(c))
		return n, err == nil
	default:
		return 0, false
	}
}

var multiSeparator = regexp.MustCompile(`[,\s]+`)

// MultipleChoiceField holds a set-like sequence of selected option values.
// Index tokens that do not resolve to an option are dropped silently; only
// the resulting count and membership are enforced.
type MultipleChoiceField struct {
	baseField
	options    []Option
	minChoices int
	maxChoices int
}

func newMultipleChoiceField(cfg FieldConfig) (*MultipleChoiceField, error) {
	if len(cfg.Options) == 0 {
		return nil, fmt.Errorf("field %q: multiple-choice requires options", cfg.ID)
	}
	f := &MultipleChoiceField{
		baseField: cfg.base(TypeMultipleChoice),
		options:   cfg.optionList(),
	}
	if f.required {
		f.minChoices = 1
	}
	if cfg.MinChoices != nil {
		f.minChoices = *cfg.MinChoices
	}
	f.maxChoices = len(f.options)
	if cfg.MaxChoices != nil {
		f.maxChoices = *cfg.MaxChoices
	}
	return f, nil
}

func (f *MultipleChoiceField) Options() []Option { return f.options }

func (f *MultipleChoiceField) Validate(candidate any) error {
	_, err := f.convert(candidate)
	return err
}

func (f *MultipleChoiceField) SetValue(candidate any) error {
	return f.apply(candidate, f.convert)
}

func (f *MultipleChoiceField) convert(candidate any) (Value, error) {
	if handled, v, err := f.checkEmpty(candidate); handled {
		return v, err
	}
	var selected []string
	switch c := candidate.(type) {
	case string:
		selected = f.resolveIndexTokens(c)
	case []string:
		selected = c
	case Value:
		if list, ok := c.List(); ok {
			selected = list
		} else {
			selected = f.resolveIndexTokens(c.Text())
		}
	default:
		return Value{}, validationErr("One or more choices are invalid")
	}
	if len(selected) < f.minChoices {
		return Value{}, validationErr(fmt.Sprintf("Select at least %d option(s)", f.minChoices))
	}
	if len(selected) > f.maxChoices {
		return Value{}, validationErr(fmt.Sprintf("Select maximum %d option(s)", f.maxChoices))
	}
	for _, val := range selected {
		if !f.hasOptionValue(val) {
			return Value{}, validationErr("One or more choices are invalid")
		}
	}
	return ListValue(selected), nil
}

// resolveIndexTokens splits on commas and whitespace and maps each 1-based
// index token to its option value. Unparsable or out-of-range tokens are
// dropped, not errored.
func (f *MultipleChoiceField) resolveIndexTokens(input string) []string {
	tokens := multiSeparator.Split(strings.TrimSpace(input), -1)
	var out []string
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		idx, err := strconv.Atoi(tok)
		if err != nil || idx < 1 || idx > len(f.options) {
			continue
		}
		out = append(out, f.options[idx-1].value())
	}
	return out
}

func (f *MultipleChoiceField) hasOptionValue(val string) bool {
	for _, opt := range f.options {
		if opt.value() == val {
			return true
		}
	}
	return false
}

func (f *MultipleChoiceField) Format() string {
	list, ok := f.value.List()
	if !ok || len(list) == 0 {
		return "No selection"
	}
	labels := make([]string, 0, len(list))
	for _, val := range list {
		label := val
		for _, opt := range f.options {
			if opt.value() == val {
				label = opt.Label
				break
			}
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}
