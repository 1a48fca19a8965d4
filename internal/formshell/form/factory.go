package form

import (
	"fmt"
	"strings"
)

// NewField constructs the variant for a field config. Unknown type tags
// fall back to a plain text field and return a non-fatal warning.
func NewField(cfg FieldConfig) (Field, string, error) {
	var (
		field   Field
		warning string
		err     error
	)
	switch normalizeType(cfg.Type) {
	case TypeText:
		field, err = newTextField(cfg)
	case TypeNumber:
		field = newNumberField(cfg)
	case TypeEmail:
		field = newEmailField(cfg)
	case TypeURL:
		field = newURLField(cfg)
	case TypeDate:
		field = newDateField(cfg)
	case TypeChoice:
		field, err = newChoiceField(cfg)
	case TypeMultipleChoice:
		field, err = newMultipleChoiceField(cfg)
	case TypeRating:
		field = newRatingField(cfg)
	case TypeYesNo:
		field = newYesNoField(cfg)
	default:
		warning = fmt.Sprintf("field %q: unknown type %q, using text", cfg.ID, cfg.Type)
		field, err = newTextField(cfg)
	}
	if err != nil {
		return nil, warning, err
	}
	if cfg.Default != nil {
		if err := field.SetValue(cfg.Default); err != nil {
			return nil, warning, fmt.Errorf("field %q: invalid default: %w", cfg.ID, err)
		}
		if md, ok := field.(interface{ markDefault() }); ok {
			md.markDefault()
		}
	}
	return field, warning, nil
}

// normalizeType canonicalizes a type tag: case-insensitive, with
// multiple-choice/multiplechoice and yes-no/yesno treated as aliases.
func normalizeType(tag string) FieldType {
	cleaned := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), "-", "")
	switch cleaned {
	case "text", "number", "email", "url", "date", "choice", "multiplechoice", "rating", "yesno":
		return FieldType(cleaned)
	default:
		return FieldType("")
	}
}
