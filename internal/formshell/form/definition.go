package form

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FieldConfig declares one step of a form. It is immutable after load.
type FieldConfig struct {
	ID          string `yaml:"id"`
	Type        string `yaml:"type"`
	Label       string `yaml:"label"`
	Description string `yaml:"description,omitempty"`
	// Required defaults to true when omitted.
	Required *bool `yaml:"required,omitempty"`
	Default  any   `yaml:"default,omitempty"`

	// Text constraints.
	MinLength int    `yaml:"min_length,omitempty"`
	MaxLength int    `yaml:"max_length,omitempty"`
	Pattern   string `yaml:"pattern,omitempty"`

	// Number constraints.
	Min     *float64 `yaml:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty"`
	Integer bool     `yaml:"integer,omitempty"`

	// Choice constraints.
	Options    []OptionConfig `yaml:"options,omitempty"`
	MinChoices *int           `yaml:"min_choices,omitempty"`
	MaxChoices *int           `yaml:"max_choices,omitempty"`

	// When gates the step's visibility on earlier answers.
	When *Condition `yaml:"when,omitempty"`

	// Condition is the programmatic equivalent of When for forms built in
	// code. It wins when both are set.
	Condition func(FormData) bool `yaml:"-"`
}

func (c FieldConfig) base(typ FieldType) baseField {
	required := true
	if c.Required != nil {
		required = *c.Required
	}
	return baseField{
		typ:         typ,
		id:          c.ID,
		label:       c.Label,
		description: c.Description,
		required:    required,
	}
}

func (c FieldConfig) optionList() []Option {
	out := make([]Option, 0, len(c.Options))
	for _, opt := range c.Options {
		out = append(out, Option{Label: opt.Label, Value: opt.Value})
	}
	return out
}

// visibility compiles the step's condition, preferring the programmatic
// form. nil means always visible.
func (c FieldConfig) visibility() func(FormData) bool {
	if c.Condition != nil {
		return c.Condition
	}
	if c.When != nil {
		when := *c.When
		return when.Eval
	}
	return nil
}

// OptionConfig is one choice entry. In YAML it may be a bare string (label
// doubling as value) or a {label, value} mapping.
type OptionConfig struct {
	Label string `yaml:"label"`
	Value string `yaml:"value,omitempty"`
}

func (o *OptionConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Label = node.Value
		o.Value = ""
		return nil
	}
	type plain OptionConfig
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*o = OptionConfig(p)
	return nil
}

// Condition is a declarative visibility predicate over collected answers.
// Exactly one comparison is expected; an empty condition is always true.
type Condition struct {
	Field     string   `yaml:"field"`
	Equals    *string  `yaml:"equals,omitempty"`
	NotEquals *string  `yaml:"not_equals,omitempty"`
	AnyOf     []string `yaml:"any_of,omitempty"`
	Truthy    *bool    `yaml:"truthy,omitempty"`
}

// Eval compares the referenced field's current value, rendered as text.
func (c Condition) Eval(data FormData) bool {
	v := data[c.Field]
	switch {
	case c.Equals != nil:
		return v.Text() == *c.Equals
	case c.NotEquals != nil:
		return v.Text() != *c.NotEquals
	case len(c.AnyOf) > 0:
		text := v.Text()
		for _, want := range c.AnyOf {
			if text == want {
				return true
			}
		}
		return false
	case c.Truthy != nil:
		return v.Truthy() == *c.Truthy
	default:
		return true
	}
}

// Definition is a full form declaration: presentation metadata, an optional
// submission endpoint, and the ordered step list.
type Definition struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle,omitempty"`
	Endpoint string        `yaml:"endpoint,omitempty"`
	Steps    []FieldConfig `yaml:"steps"`
}

// ParseDefinition decodes and statically checks a YAML form definition.
// Warnings (currently only unknown-type fallbacks) are non-fatal.
func ParseDefinition(raw []byte) (*Definition, []string, error) {
	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, nil, fmt.Errorf("parse form definition: %w", err)
	}
	warnings, err := def.check()
	if err != nil {
		return nil, warnings, err
	}
	return &def, warnings, nil
}

// LoadDefinition reads and parses a form definition file.
func LoadDefinition(path string) (*Definition, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return ParseDefinition(raw)
}

func (d *Definition) check() ([]string, error) {
	if len(d.Steps) == 0 {
		return nil, fmt.Errorf("form has no steps")
	}
	var warnings []string
	seen := make(map[string]bool, len(d.Steps))
	for _, cfg := range d.Steps {
		if cfg.ID == "" {
			return warnings, fmt.Errorf("step with label %q has no id", cfg.Label)
		}
		if seen[cfg.ID] {
			return warnings, fmt.Errorf("duplicate field id %q", cfg.ID)
		}
		seen[cfg.ID] = true
		_, warning, err := NewField(cfg)
		if err != nil {
			return warnings, err
		}
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}
	for _, cfg := range d.Steps {
		if cfg.When != nil && !seen[cfg.When.Field] {
			return warnings, fmt.Errorf("field %q: condition references unknown field %q", cfg.ID, cfg.When.Field)
		}
	}
	return warnings, nil
}
