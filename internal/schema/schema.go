package schema

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/forgo/relay/api/internal/model"
)

// FieldType enumerates the primitive types a field may declare.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
)

// FormatEmail enables email syntax checking on a string field.
const FormatEmail = "email"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Field declares one named field of a schema: its type, whether it is
// required, and optional constraints.
type Field struct {
	Name     string
	Type     FieldType
	Required bool

	// String constraints. Zero values mean unset.
	MinLen int
	MaxLen int
	Format string
	Enum   []string

	// Number constraints.
	Min *float64
	Max *float64
}

// Schema is a declared, inspectable description of an input shape. Schemas
// are closed: fields not declared here are rejected, not stripped, so a
// client typo never silently passes through.
type Schema struct {
	Name   string
	Fields []Field
}

// Validated holds input that satisfied its schema at construction time.
// It is immutable and is never re-validated downstream; only the schema
// package can construct one.
type Validated struct {
	values map[string]any
}

// Has reports whether the named field was present in the input.
func (v Validated) Has(name string) bool {
	_, ok := v.values[name]
	return ok
}

// String returns the named field as a string, or "" if absent.
func (v Validated) String(name string) string {
	s, _ := v.values[name].(string)
	return s
}

// Number returns the named field as a float64, or 0 if absent.
func (v Validated) Number(name string) float64 {
	n, _ := v.values[name].(float64)
	return n
}

// Int returns the named field truncated to an int, or 0 if absent.
func (v Validated) Int(name string) int {
	return int(v.Number(name))
}

// Bool returns the named field as a bool, or false if absent.
func (v Validated) Bool(name string) bool {
	b, _ := v.values[name].(bool)
	return b
}

// Validate checks raw input against the schema. On success it returns a
// Validated value carrying exactly the declared fields. On any failure it
// returns every field error at once; no Validated value is produced for
// partially valid input.
func (s Schema) Validate(raw map[string]any) (Validated, []model.FieldError) {
	var errs []model.FieldError

	declared := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		declared[f.Name] = true
	}

	// Unknown fields are rejected, reported in deterministic order.
	var unknown []string
	for name := range raw {
		if !declared[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		errs = append(errs, model.FieldError{Field: name, Message: "unknown field"})
	}

	values := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		value, present := raw[f.Name]
		if !present || value == nil {
			if f.Required {
				errs = append(errs, model.FieldError{Field: f.Name, Message: "required"})
			}
			continue
		}

		if ferr := f.check(value); ferr != nil {
			errs = append(errs, *ferr)
			continue
		}
		values[f.Name] = value
	}

	if len(errs) > 0 {
		return Validated{}, errs
	}
	return Validated{values: values}, nil
}

// check validates a single present value against the field's type and
// constraints. Returns at most one error per field.
func (f Field) check(value any) *model.FieldError {
	fail := func(message string) *model.FieldError {
		return &model.FieldError{Field: f.Name, Message: message}
	}

	switch f.Type {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return fail("must be a string")
		}
		if f.MinLen > 0 && len(s) < f.MinLen {
			return fail(fmt.Sprintf("must be at least %d characters", f.MinLen))
		}
		if f.MaxLen > 0 && len(s) > f.MaxLen {
			return fail(fmt.Sprintf("must be at most %d characters", f.MaxLen))
		}
		if f.Format == FormatEmail && !emailPattern.MatchString(s) {
			return fail("must be a valid email address")
		}
		if len(f.Enum) > 0 {
			for _, allowed := range f.Enum {
				if s == allowed {
					return nil
				}
			}
			return fail(fmt.Sprintf("must be one of: %v", f.Enum))
		}

	case TypeNumber:
		// JSON numbers decode as float64.
		n, ok := value.(float64)
		if !ok {
			return fail("must be a number")
		}
		if f.Min != nil && n < *f.Min {
			return fail(fmt.Sprintf("must be at least %g", *f.Min))
		}
		if f.Max != nil && n > *f.Max {
			return fail(fmt.Sprintf("must be at most %g", *f.Max))
		}

	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fail("must be a boolean")
		}

	default:
		return fail("unsupported field type")
	}

	return nil
}

// Float is a convenience for building Min/Max constraints inline.
func Float(v float64) *float64 {
	return &v
}
