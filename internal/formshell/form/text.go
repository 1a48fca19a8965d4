package form

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlPattern   = regexp.MustCompile(`^https?://\S+\.\S+$`)
	datePattern  = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/((19|20)\d{2})$`)
)

// TextField validates free text against optional length bounds and an
// optional pattern. Email and URL fields are text fields with a preset
// pattern and a rewritten pattern reason.
type TextField struct {
	baseField
	minLength     int
	maxLength     int
	pattern       *regexp.Regexp
	patternReason string
}

func newTextField(cfg FieldConfig) (*TextField, error) {
	f := &TextField{
		baseField: cfg.base(TypeText),
		minLength: cfg.MinLength,
		maxLength: cfg.MaxLength,
	}
	if cfg.Pattern != "" {
		re, err := regexp.Compile(cfg.Pattern)
		if err != nil {
			return nil, fmt.Errorf("field %q: invalid pattern: %w", cfg.ID, err)
		}
		f.pattern = re
	}
	return f, nil
}

func newEmailField(cfg FieldConfig) *TextField {
	return &TextField{
		baseField:     cfg.base(TypeEmail),
		pattern:       emailPattern,
		patternReason: "Invalid email address",
	}
}

func newURLField(cfg FieldConfig) *TextField {
	return &TextField{
		baseField:     cfg.base(TypeURL),
		pattern:       urlPattern,
		patternReason: "Invalid URL (must start with http:// or https://)",
	}
}

func (f *TextField) Validate(candidate any) error {
	_, err := f.convert(candidate)
	return err
}

func (f *TextField) SetValue(candidate any) error {
	return f.apply(candidate, f.convert)
}

func (f *TextField) convert(candidate any) (Value, error) {
	if handled, v, err := f.checkEmpty(candidate); handled {
		return v, err
	}
	s := coerceString(candidate)
	length := utf8.RuneCountInString(s)
	if f.minLength > 0 && length < f.minLength {
		return Value{}, validationErr(fmt.Sprintf("Minimum %d characters required", f.minLength))
	}
	if f.maxLength > 0 && length > f.maxLength {
		return Value{}, validationErr(fmt.Sprintf("Maximum %d characters allowed", f.maxLength))
	}
	if f.pattern != nil && !f.pattern.MatchString(s) {
		reason := f.patternReason
		if reason == "" {
			reason = "Invalid format"
		}
		return Value{}, validationErr(reason)
	}
	return StringValue(s), nil
}

func (f *TextField) Format() string {
	s, _ := f.value.Str()
	return s
}

// DateField validates DD/MM/YYYY strings, rejecting shapes that pass the
// regex but do not survive a calendar round-trip (e.g. 31/02/2020).
type DateField struct {
	baseField
}

func newDateField(cfg FieldConfig) *DateField {
	return &DateField{baseField: cfg.base(TypeDate)}
}

const invalidDateReason = "Invalid date (format: DD/MM/YYYY)"

func (f *DateField) Validate(candidate any) error {
	_, err := f.convert(candidate)
	return err
}

func (f *DateField) SetValue(candidate any) error {
	return f.apply(candidate, f.convert)
}

func (f *DateField) convert(candidate any) (Value, error) {
	if handled, v, err := f.checkEmpty(candidate); handled {
		return v, err
	}
	s := coerceString(candidate)
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return Value{}, validationErr(invalidDateReason)
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return Value{}, validationErr(invalidDateReason)
	}
	return StringValue(s), nil
}

func (f *DateField) Format() string {
	s, _ := f.value.Str()
	return s
}
