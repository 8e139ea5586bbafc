package demo

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Plan is an ordered list of demos.
type Plan struct {
	// Name identifies the plan in reports.
	Name string `yaml:"name" json:"name"`

	// Description explains what the plan demonstrates.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Demos run in order against one shared counter.
	Demos []Demo `yaml:"demos" json:"demos"`
}

// Demo is one labeled invocation of a pattern.
type Demo struct {
	// Label is printed above the demo's output.
	Label string `yaml:"label" json:"label"`

	// Pattern is a registered pattern name (see Patterns).
	Pattern string `yaml:"pattern" json:"pattern"`

	// Args are the pattern's integer arguments.
	Args []int64 `yaml:"args" json:"args"`

	// Prefix is printed before the "Num:" line of a returned value.
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`

	// Expect is optional and only consulted by Check.
	Expect *Expect `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Expect pins the output of a demo.
// Emitted applies to emitting patterns, Result to value-returning ones.
type Expect struct {
	Emitted []int64 `yaml:"emitted,omitempty" json:"emitted,omitempty"`
	Result  *int64  `yaml:"result,omitempty" json:"result,omitempty"`
}

//go:embed default.yaml
var defaultPlanYAML []byte

// DefaultPlan returns the built-in plan: the eleven demonstrations of the
// walkthrough, in order.
func DefaultPlan() *Plan {
	plan, err := ParsePlan(defaultPlanYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default plan is invalid: %v", err))
	}
	return plan
}

// LoadPlan reads and parses a plan YAML file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	plan, err := ParsePlan(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

// ParsePlan decodes plan YAML, rejecting unknown fields, and validates it.
// Labels and prefixes are NFC-normalized so composed and decomposed input
// render identically.
func ParsePlan(data []byte) (*Plan, error) {
	var plan Plan
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range plan.Demos {
		plan.Demos[i].Label = norm.NFC.String(plan.Demos[i].Label)
		plan.Demos[i].Prefix = norm.NFC.String(plan.Demos[i].Prefix)
	}

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return &plan, nil
}

// ValidationError is one problem found in a plan.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a plan.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks that every demo names a registered pattern with arguments
// it accepts. It reports all problems, not just the first; the returned error
// is a ValidationErrors when non-nil.
func (p *Plan) Validate() error {
	if errs := p.problems(); len(errs) > 0 {
		return errs
	}
	return nil
}

func (p *Plan) problems() ValidationErrors {
	var errs ValidationErrors
	if p.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}
	if len(p.Demos) == 0 {
		errs = append(errs, ValidationError{Field: "demos", Message: "demos list is required and must be non-empty"})
	}

	for i, d := range p.Demos {
		field := fmt.Sprintf("demos[%d]", i)
		if d.Label == "" {
			errs = append(errs, ValidationError{Field: field, Message: "label is required"})
		}
		pattern := LookupPattern(d.Pattern)
		if pattern == nil {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("unknown pattern %q", d.Pattern)})
			continue
		}
		if err := pattern.CheckArgs(d.Args); err != nil {
			errs = append(errs, ValidationError{Field: field, Message: err.Error()})
		}
		if d.Expect == nil {
			continue
		}
		expectField := field + ".expect"
		switch {
		case d.Expect.Emitted == nil && d.Expect.Result == nil:
			errs = append(errs, ValidationError{Field: expectField, Message: "needs emitted or result"})
		case pattern.Emits && d.Expect.Result != nil:
			errs = append(errs, ValidationError{
				Field:   expectField,
				Message: fmt.Sprintf("%s emits values, use emitted instead of result", d.Pattern),
			})
		case !pattern.Emits && d.Expect.Emitted != nil:
			errs = append(errs, ValidationError{
				Field:   expectField,
				Message: fmt.Sprintf("%s returns a value, use result instead of emitted", d.Pattern),
			})
		}
	}
	return errs
}
