package form

import (
	"strings"
	"testing"
)

func boolPtr(b bool) *bool {
	return &b
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(n int) *int {
	return &n
}

func mustField(t *testing.T, cfg FieldConfig) Field {
	t.Helper()
	field, _, err := NewField(cfg)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	return field
}

func TestRequiredRejectsEmptyAndKeepsValue(t *testing.T) {
	for _, typ := range []string{"text", "number", "email", "url", "date", "rating", "yesno"} {
		field := mustField(t, FieldConfig{ID: "f", Type: typ, Label: "F"})
		for _, candidate := range []any{nil, ""} {
			if err := field.SetValue(candidate); err == nil {
				t.Fatalf("%s: expected required failure for %#v", typ, candidate)
			}
			if field.Err() != "This field is required" {
				t.Fatalf("%s: unexpected error %q", typ, field.Err())
			}
			if !field.Value().IsAbsent() {
				t.Fatalf("%s: value changed on failed SetValue", typ)
			}
		}
	}
}

func TestOptionalEmptyClearsToAbsent(t *testing.T) {
	field := mustField(t, FieldConfig{ID: "f", Type: "text", Label: "F", Required: boolPtr(false)})
	if err := field.SetValue("hello"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := field.SetValue(""); err != nil {
		t.Fatalf("expected optional empty to pass: %v", err)
	}
	if !field.Value().IsAbsent() {
		t.Fatalf("expected absent value")
	}
}

func TestTextLengthAndPattern(t *testing.T) {
	field := mustField(t, FieldConfig{ID: "f", Type: "text", Label: "F", MinLength: 3, MaxLength: 5})
	if err := field.SetValue("ab"); err == nil || err.Error() != "Minimum 3 characters required" {
		t.Fatalf("unexpected: %v", err)
	}
	if err := field.SetValue("abcdef"); err == nil || err.Error() != "Maximum 5 characters allowed" {
		t.Fatalf("unexpected: %v", err)
	}
	if err := field.SetValue("abcd"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if field.Err() != "" {
		t.Fatalf("expected error cleared, got %q", field.Err())
	}

	patterned := mustField(t, FieldConfig{ID: "p", Type: "text", Label: "P", Pattern: `^[a-z]+$`})
	if err := patterned.SetValue("ABC"); err == nil || err.Error() != "Invalid format" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestNumberRules(t *testing.T) {
	field := mustField(t, FieldConfig{ID: "n", Type: "number", Label: "N", Min: floatPtr(1), Max: floatPtr(5)})
	if err := field.SetValue("abc"); err == nil || err.Error() != "Must be a valid number" {
		t.Fatalf("unexpected: %v", err)
	}
	if err := field.SetValue(6); err == nil || err.Error() != "Maximum value: 5" {
		t.Fatalf("unexpected: %v", err)
	}
	if err := field.SetValue(0); err == nil || err.Error() != "Minimum value: 1" {
		t.Fatalf("unexpected: %v", err)
	}
	if err := field.SetValue("3"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if n, _ := field.Value().Num(); n != 3 {
		t.Fatalf("expected 3, got %v", n)
	}

	integer := mustField(t, FieldConfig{ID: "i", Type: "number", Label: "I", Integer: true})
	if err := integer.SetValue(2.5); err == nil || err.Error() != "Must be an integer" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestEmailAndURLRewriteReasons(t *testing.T) {
	email := mustField(t, FieldConfig{ID: "e", Type: "email", Label: "E"})
	if err := email.SetValue("not-an-email"); err == nil || err.Error() != "Invalid email address" {
		t.Fatalf("unexpected: %v", err)
	}
	if err := email.SetValue("user@example.com"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	link := mustField(t, FieldConfig{ID: "u", Type: "url", Label: "U"})
	if err := link.SetValue("example.com"); err == nil || !strings.HasPrefix(err.Error(), "Invalid URL") {
		t.Fatalf("unexpected: %v", err)
	}
	if err := link.SetValue("https://example.com"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
}

func TestDateCalendarRoundTrip(t *testing.T) {
	field := mustField(t, FieldConfig{ID: "d", Type: "date", Label: "D"})
	if err := field.SetValue("31/02/2020"); err == nil || err.Error() != "Invalid date (format: DD/MM/YYYY)" {
		t.Fatalf("expected calendar rejection, got %v", err)
	}
	if err := field.SetValue("29/02/2020"); err != nil {
		t.Fatalf("leap year should pass: %v", err)
	}
	if err := field.SetValue("29/02/2021"); err == nil {
		t.Fatalf("expected non-leap rejection")
	}
	if err := field.SetValue("2020-02-29"); err == nil {
		t.Fatalf("expected shape rejection")
	}
}

func choiceConfig(id string) FieldConfig {
	return FieldConfig{
		ID: id, Type: "choice", Label: "C",
		Options: []OptionConfig{
			{Label: "Red", Value: "red"},
			{Label: "Green", Value: "green"},
			{Label: "Blue", Value: "blue"},
		},
	}
}

func TestChoiceIndexAndValueEquivalence(t *testing.T) {
	byIndex := mustField(t, choiceConfig("c1"))
	byValue := mustField(t, choiceConfig("c2"))
	if err := byIndex.SetValue(2); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := byValue.SetValue("green"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if byIndex.Value().Text() != byValue.Value().Text() {
		t.Fatalf("index and value forms disagree: %q vs %q", byIndex.Value().Text(), byValue.Value().Text())
	}
	if byIndex.Format() != "Green" {
		t.Fatalf("expected label format, got %q", byIndex.Format())
	}
}

func TestChoiceRangeAndMembership(t *testing.T) {
	field := mustField(t, choiceConfig("c"))
	if err := field.SetValue(0); err == nil || err.Error() != "Choose a number between 1 and 3" {
		t.Fatalf("unexpected: %v", err)
	}
	if err := field.SetValue(4); err == nil || err.Error() != "Choose a number between 1 and 3" {
		t.Fatalf("unexpected: %v", err)
	}
	if err := field.SetValue("purple"); err == nil || err.Error() != "Invalid choice" {
		t.Fatalf("unexpected: %v", err)
	}
}

func multiConfig(id string) FieldConfig {
	return FieldConfig{
		ID: id, Type: "multiple-choice", Label: "M",
		Options: []OptionConfig{
			{Label: "One", Value: "one"},
			{Label: "Two", Value: "two"},
			{Label: "Three", Value: "three"},
			{Label: "Four", Value: "four"},
			{Label: "Five", Value: "five"},
		},
	}
}

func TestMultipleChoiceIndexTokens(t *testing.T) {
	field := mustField(t, multiConfig("m"))
	if err := field.SetValue("1,3"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	list, _ := field.Value().List()
	if len(list) != 2 || list[0] != "one" || list[1] != "three" {
		t.Fatalf("unexpected selection %v", list)
	}
	if field.Format() != "One, Three" {
		t.Fatalf("unexpected format %q", field.Format())
	}
}

func TestMultipleChoiceDropsBadTokensSilently(t *testing.T) {
	field := mustField(t, multiConfig("m"))
	if err := field.SetValue("2, 9"); err != nil {
		t.Fatalf("out-of-range tokens should drop, not fail: %v", err)
	}
	list, _ := field.Value().List()
	if len(list) != 1 || list[0] != "two" {
		t.Fatalf("unexpected selection %v", list)
	}
	// All tokens dropped: the count floor still applies.
	if err := field.SetValue("9"); err == nil || err.Error() != "Select at least 1 option(s)" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestMultipleChoiceCountBounds(t *testing.T) {
	cfg := multiConfig("m")
	cfg.MaxChoices = intPtr(2)
	field := mustField(t, cfg)
	if err := field.SetValue("1,2,3"); err == nil || err.Error() != "Select maximum 2 option(s)" {
		t.Fatalf("unexpected: %v", err)
	}
	if err := field.SetValue([]string{"one", "nope"}); err == nil || err.Error() != "One or more choices are invalid" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestRatingRewritesReasonAndFormatsStars(t *testing.T) {
	field := mustField(t, FieldConfig{ID: "r", Type: "rating", Label: "R"})
	if err := field.SetValue("lots"); err == nil || err.Error() != "Enter a number from 1 to 5" {
		t.Fatalf("unexpected: %v", err)
	}
	if err := field.SetValue(2.5); err == nil || err.Error() != "Must be an integer" {
		t.Fatalf("unexpected: %v", err)
	}
	if err := field.SetValue("3"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if field.Format() != "★★★☆☆" {
		t.Fatalf("unexpected stars %q", field.Format())
	}
}

func TestYesNoTokensAndFormat(t *testing.T) {
	field := mustField(t, FieldConfig{ID: "y", Type: "yesno", Label: "Y"})
	if err := field.SetValue("sì"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if b, _ := field.Value().Bool(); !b {
		t.Fatalf("expected true")
	}
	if field.Format() != "Yes" {
		t.Fatalf("unexpected format %q", field.Format())
	}
	if err := field.SetValue("NO"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if field.Format() != "No" {
		t.Fatalf("unexpected format %q", field.Format())
	}
	if err := field.SetValue("maybe"); err == nil || err.Error() != "Answer with Y (yes) or N (no)" {
		t.Fatalf("unexpected: %v", err)
	}
	if field.Format() != "No" {
		t.Fatalf("failed SetValue should keep prior value")
	}
	if err := field.SetValue(true); err != nil {
		t.Fatalf("SetValue bool: %v", err)
	}
}

func TestDefaultValueSurvivesReset(t *testing.T) {
	field := mustField(t, FieldConfig{ID: "t", Type: "text", Label: "T", Default: "hello"})
	if field.Value().Text() != "hello" {
		t.Fatalf("expected default applied")
	}
	if err := field.SetValue("changed"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	field.Reset()
	if field.Value().Text() != "hello" {
		t.Fatalf("expected reset to restore default, got %q", field.Value().Text())
	}
}
