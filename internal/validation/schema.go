// internal/validation/schema.go
//
// Schema and rule declarations.
//
// Context
// -------
// A schema is an ordered list of fields, each bound to exactly one rule.
// Rules form a closed set: StringRule, EmailRule, NumberRule, and ArrayRule.
// The interfaces carry unexported methods, so no other package can add a
// variant and every variant has its own check.
//
// Query schemas accept only QueryRule, which StringRule and NumberRule
// implement.  Declaring an email or array rule for a query parameter is a
// compile error rather than a rule that is quietly never applied.
//
// Example
// -------
//
//	var signup = validation.NewSchema(
//		validation.Field{Name: "name", Rule: validation.StringRule{Required: true, MinLength: 2}},
//		validation.Field{Name: "email", Rule: validation.EmailRule{Required: true}},
//		validation.Field{Name: "age", Rule: validation.NumberRule{Min: validation.Bound(13)}},
//	)

package validation

import (
	"fmt"
	"strconv"
)

// Rule constrains one body field.
type Rule interface {
	IsRequired() bool
	// check returns the issue message for a present value, or "" when the
	// value satisfies the rule.
	check(field string, v any) string
}

// QueryRule constrains one query parameter.
type QueryRule interface {
	Rule
	checkQuery(param string, v any) string
}

// Bound returns a pointer to f, for NumberRule.Min and NumberRule.Max.
func Bound(f float64) *float64 { return &f }

/*──────────────────────────── variants ─────────────────────────────────────*/

// StringRule requires a string with at least MinLength trimmed characters.
// A zero MinLength means 1.
type StringRule struct {
	Required  bool
	MinLength int
}

func (r StringRule) IsRequired() bool { return r.Required }

func (r StringRule) minLength() int {
	if r.MinLength <= 0 {
		return 1
	}
	return r.MinLength
}

func (r StringRule) check(field string, v any) string {
	if IsNonEmptyString(v, r.minLength()) {
		return ""
	}
	return fmt.Sprintf("%s must be a string with at least %d characters", field, r.minLength())
}

func (r StringRule) checkQuery(param string, v any) string {
	if IsNonEmptyString(v, r.minLength()) {
		return ""
	}
	return fmt.Sprintf("Query parameter '%s' must be a non-empty string", param)
}

// EmailRule requires a string shaped like an email address.
type EmailRule struct {
	Required bool
}

func (r EmailRule) IsRequired() bool { return r.Required }

func (r EmailRule) check(field string, v any) string {
	if IsEmail(v) {
		return ""
	}
	return field + " must be a valid email address"
}

// NumberRule requires a value that coerces to a number within the optional
// inclusive bounds.
type NumberRule struct {
	Required bool
	Min      *float64
	Max      *float64
}

func (r NumberRule) IsRequired() bool { return r.Required }

func (r NumberRule) check(field string, v any) string {
	if IsNumberInRange(v, r.Min, r.Max) {
		return ""
	}
	msg := field + " must be a valid number"
	switch {
	case r.Min != nil && r.Max != nil:
		msg += " between " + formatBound(*r.Min) + " and " + formatBound(*r.Max)
	case r.Min != nil:
		msg += " greater than or equal to " + formatBound(*r.Min)
	case r.Max != nil:
		msg += " less than or equal to " + formatBound(*r.Max)
	}
	return msg
}

func (r NumberRule) checkQuery(param string, v any) string {
	if IsNumberInRange(v, r.Min, r.Max) {
		return ""
	}
	return fmt.Sprintf("Query parameter '%s' must be a valid number", param)
}

// ArrayRule requires a list with at least MinLength items.  A zero MinLength
// means 1.
type ArrayRule struct {
	Required  bool
	MinLength int
}

func (r ArrayRule) IsRequired() bool { return r.Required }

func (r ArrayRule) minLength() int {
	if r.MinLength <= 0 {
		return 1
	}
	return r.MinLength
}

func (r ArrayRule) check(field string, v any) string {
	if IsArrayAtLeast(v, r.minLength()) {
		return ""
	}
	return fmt.Sprintf("%s must be an array with at least %d items", field, r.minLength())
}

// formatBound renders 18 as "18" and 0.5 as "0.5".
func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

/*──────────────────────────── schemas ──────────────────────────────────────*/

// Field binds a body field name to its rule.
type Field struct {
	Name string
	Rule Rule
}

// QueryField binds a query parameter name to its rule.
type QueryField struct {
	Name string
	Rule QueryRule
}

// Schema is an ordered, duplicate-free list of body fields.  The zero value
// is an empty schema that accepts any payload.
type Schema struct{ fields []Field }

// QuerySchema is the query-parameter counterpart of Schema.
type QuerySchema struct{ fields []QueryField }

// NewSchema builds a Schema.  A repeated name keeps its first position and
// takes the last rule given for it.
func NewSchema(fields ...Field) Schema {
	return Schema{fields: dedupe(fields, func(f Field) string { return f.Name })}
}

// NewQuerySchema builds a QuerySchema with the same duplicate handling as
// NewSchema.
func NewQuerySchema(fields ...QueryField) QuerySchema {
	return QuerySchema{fields: dedupe(fields, func(f QueryField) string { return f.Name })}
}

// Fields returns a copy of the declared fields in evaluation order.
func (s Schema) Fields() []Field { return append([]Field(nil), s.fields...) }

// Fields returns a copy of the declared parameters in evaluation order.
func (s QuerySchema) Fields() []QueryField { return append([]QueryField(nil), s.fields...) }

func dedupe[F any](in []F, name func(F) string) []F {
	out := make([]F, 0, len(in))
	at := make(map[string]int, len(in))
	for _, f := range in {
		if i, ok := at[name(f)]; ok {
			out[i] = f
			continue
		}
		at[name(f)] = len(out)
		out = append(out, f)
	}
	return out
}
