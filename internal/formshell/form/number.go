package form

import (
	"math"
	"strings"
)

// NumberField coerces candidates to a finite float and enforces optional
// integrality and inclusive bounds.
type NumberField struct {
	baseField
	min           *float64
	max           *float64
	integer       bool
	invalidReason string
}

const invalidNumberReason = "Must be a valid number"

func newNumberField(cfg FieldConfig) *NumberField {
	return &NumberField{
		baseField:     cfg.base(TypeNumber),
		min:           cfg.Min,
		max:           cfg.Max,
		integer:       cfg.Integer,
		invalidReason: invalidNumberReason,
	}
}

func (f *NumberField) Validate(candidate any) error {
	_, err := f.convert(candidate)
	return err
}

func (f *NumberField) SetValue(candidate any) error {
	return f.apply(candidate, f.convert)
}

func (f *NumberField) convert(candidate any) (Value, error) {
	if handled, v, err := f.checkEmpty(candidate); handled {
		return v, err
	}
	n, ok := coerceNumber(candidate)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return Value{}, validationErr(f.invalidReason)
	}
	if f.integer && math.Trunc(n) != n {
		return Value{}, validationErr("Must be an integer")
	}
	if f.min != nil && n < *f.min {
		return Value{}, validationErr("Minimum value: " + formatNumber(*f.min))
	}
	if f.max != nil && n > *f.max {
		return Value{}, validationErr("Maximum value: " + formatNumber(*f.max))
	}
	return NumberValue(n), nil
}

func (f *NumberField) Format() string {
	n, ok := f.value.Num()
	if !ok {
		return ""
	}
	return formatNumber(n)
}

// RatingField is a number field with min 1, max 5 by default, integer
// forced, star formatting, and a friendlier non-numeric reason.
type RatingField struct {
	NumberField
}

func newRatingField(cfg FieldConfig) *RatingField {
	lo, hi := 1.0, 5.0
	if cfg.Min != nil {
		lo = *cfg.Min
	}
	if cfg.Max != nil {
		hi = *cfg.Max
	}
	return &RatingField{NumberField: NumberField{
		baseField:     cfg.base(TypeRating),
		min:           &lo,
		max:           &hi,
		integer:       true,
		invalidReason: "Enter a number from " + formatNumber(lo) + " to " + formatNumber(hi),
	}}
}

func (f *RatingField) Format() string {
	n, ok := f.value.Num()
	if !ok {
		return ""
	}
	total := 5
	if f.max != nil {
		total = int(*f.max)
	}
	filled := int(n)
	if filled > total {
		filled = total
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", total-filled)
}
