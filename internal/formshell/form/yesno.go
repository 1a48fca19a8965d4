package form

import "strings"

// YesNoField accepts booleans or case-insensitive yes/no tokens, including
// the Italian forms the original questionnaire shipped with.
type YesNoField struct {
	baseField
}

func newYesNoField(cfg FieldConfig) *YesNoField {
	return &YesNoField{baseField: cfg.base(TypeYesNo)}
}

const invalidYesNoReason = "Answer with Y (yes) or N (no)"

func (f *YesNoField) Options() []Option {
	return []Option{{Label: "Yes", Value: "y"}, {Label: "No", Value: "n"}}
}

func (f *YesNoField) Validate(candidate any) error {
	_, err := f.convert(candidate)
	return err
}

func (f *YesNoField) SetValue(candidate any) error {
	return f.apply(candidate, f.convert)
}

func (f *YesNoField) convert(candidate any) (Value, error) {
	if handled, v, err := f.checkEmpty(candidate); handled {
		return v, err
	}
	switch c := candidate.(type) {
	case bool:
		return BoolValue(c), nil
	case Value:
		if b, ok := c.Bool(); ok {
			return BoolValue(b), nil
		}
	}
	b, ok := ParseYesNo(coerceString(candidate))
	if !ok {
		return Value{}, validationErr(invalidYesNoReason)
	}
	return BoolValue(b), nil
}

func (f *YesNoField) Format() string {
	b, ok := f.value.Bool()
	if !ok {
		return ""
	}
	if b {
		return "Yes"
	}
	return "No"
}

// ParseYesNo maps an affirmative or negative token to a bool. ok is false
// for anything else.
func ParseYesNo(token string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "y", "yes", "s", "si", "sì":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
