// Package query converts raw query-string parameters into typed,
// validated values per a declarative per-field schema. It is a pure
// library consumed by endpoint handlers; it performs no I/O.
package query

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// FieldType declares how a raw parameter value is parsed.
type FieldType string

const (
	// String passes the raw value through unchanged.
	String FieldType = "string"

	// Number parses the value as a finite float64, failing on
	// non-numeric input and on the NaN/Inf literals ParseFloat accepts.
	Number FieldType = "number"

	// Boolean is true only for the literal string "true"; anything
	// else, including "false" and "1", parses to false.
	Boolean FieldType = "boolean"

	// Array splits the value on commas and trims whitespace from each
	// segment.
	Array FieldType = "array"
)

// Field describes one schema entry.
type Field struct {
	Type FieldType

	// Required fails parsing when the parameter is missing.
	Required bool

	// Default is applied verbatim when the parameter is missing; no
	// parsing is attempted on it.
	Default any

	// Validate, when set, runs against the parsed value. Returning
	// false fails parsing.
	Validate func(any) bool
}

// Schema maps parameter names to their field definitions.
type Schema map[string]Field

// ValidationError reports a missing or invalid query parameter.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Params holds parsed parameters. Fields that were missing and had no
// default are genuinely absent from the map.
type Params map[string]any

// Has reports whether key is present in the parsed result.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the string value for key, or "" when absent.
func (p Params) String(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// Int returns the numeric value for key truncated to int, or 0 when absent.
func (p Params) Int(key string) int {
	switch v := p[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// Bool returns the boolean value for key, or false when absent.
func (p Params) Bool(key string) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return false
}

// Strings returns the array value for key, or nil when absent.
func (p Params) Strings(key string) []string {
	if v, ok := p[key].([]string); ok {
		return v
	}
	return nil
}

// Parse converts values into typed parameters per schema.
//
// Per field: missing and required fails; missing with a default takes
// the default; missing otherwise is omitted from the result. Present
// values are parsed per the declared type, then checked against the
// Validate predicate when one is supplied.
func Parse(values url.Values, schema Schema) (Params, error) {
	result := make(Params, len(schema))

	for name, field := range schema {
		raw := values.Get(name)

		if raw == "" {
			if field.Required {
				return nil, &ValidationError{
					Field:   name,
					Message: fmt.Sprintf("Missing required parameter: %s", name),
				}
			}
			if field.Default != nil {
				result[name] = field.Default
			}
			continue
		}

		parsed, err := parseValue(name, raw, field.Type)
		if err != nil {
			return nil, err
		}

		if field.Validate != nil && !field.Validate(parsed) {
			return nil, &ValidationError{
				Field:   name,
				Message: fmt.Sprintf("Invalid value for parameter: %s", name),
			}
		}

		result[name] = parsed
	}

	return result, nil
}

func parseValue(name, raw string, t FieldType) (any, error) {
	switch t {
	case Number:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, &ValidationError{
				Field:   name,
				Message: fmt.Sprintf("Invalid number for parameter: %s", name),
			}
		}
		return n, nil

	case Boolean:
		return raw == "true", nil

	case Array:
		segments := strings.Split(raw, ",")
		parts := make([]string, 0, len(segments))
		for _, s := range segments {
			parts = append(parts, strings.TrimSpace(s))
		}
		return parts, nil

	default:
		return raw, nil
	}
}
