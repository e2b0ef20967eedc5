// internal/validation/evaluate.go
//
// Schema evaluation.
//
// Context
// -------
// EvaluateBody and EvaluateQuery walk a schema in declaration order and
// collect at most one Issue per field.  Invalid input is a value (an Outcome
// with issues), never an error.  The error return is reserved for defects in
// how the evaluator was called, reported as *InternalError.
//
// Absence
// -------
// • Body: a missing key or a JSON null is absent.
// • Query: a missing parameter or an empty string is absent.  "0" is
//   present.
//
// A required field that is absent yields "<field> is required" and no further
// checks.  An optional absent field is skipped.

package validation

import (
	"fmt"
	"net/url"
)

// Issue describes one failing field.  Value is the submitted value and may
// be nil when the field was absent.
type Issue struct {
	Field   string
	Message string
	Value   any
}

// Outcome is the result of one evaluation.  It is valid when it carries no
// issues.
type Outcome struct {
	Issues []Issue
}

// Valid reports whether the evaluation found no issues.
func (o Outcome) Valid() bool { return len(o.Issues) == 0 }

// InternalError reports that the evaluator was handed something it cannot
// evaluate.  It signals a server fault, not bad client input.
type InternalError struct {
	Source string // "body" or "query"
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("validation: cannot evaluate %s: %s", e.Source, e.Reason)
}

// EvaluateBody checks payload against schema.
func EvaluateBody(schema Schema, payload map[string]any) (Outcome, error) {
	if payload == nil {
		return Outcome{}, &InternalError{Source: "body", Reason: "payload is nil"}
	}

	var out Outcome
	for _, f := range schema.fields {
		if f.Rule == nil {
			return Outcome{}, &InternalError{Source: "body", Reason: "field " + f.Name + " has no rule"}
		}
		v := payload[f.Name]
		if v == nil {
			if f.Rule.IsRequired() {
				out.Issues = append(out.Issues, Issue{Field: f.Name, Message: f.Name + " is required"})
			}
			continue
		}
		if msg := f.Rule.check(f.Name, v); msg != "" {
			out.Issues = append(out.Issues, Issue{Field: f.Name, Message: msg, Value: v})
		}
	}
	return out, nil
}

// EvaluateQuery checks params against schema.  A parameter given once is
// checked as a string; one given several times is checked as a list, which
// fails both string and number rules.
func EvaluateQuery(schema QuerySchema, params url.Values) (Outcome, error) {
	if params == nil {
		return Outcome{}, &InternalError{Source: "query", Reason: "parameters are nil"}
	}

	var out Outcome
	for _, f := range schema.fields {
		if f.Rule == nil {
			return Outcome{}, &InternalError{Source: "query", Reason: "parameter " + f.Name + " has no rule"}
		}
		v, present := queryValue(params, f.Name)
		if !present {
			if f.Rule.IsRequired() {
				out.Issues = append(out.Issues, Issue{
					Field:   f.Name,
					Message: fmt.Sprintf("Query parameter '%s' is required", f.Name),
					Value:   v,
				})
			}
			continue
		}
		if msg := f.Rule.checkQuery(f.Name, v); msg != "" {
			out.Issues = append(out.Issues, Issue{Field: f.Name, Message: msg, Value: v})
		}
	}
	return out, nil
}

// queryValue returns the parameter as a string or, when repeated, as a
// []any of strings.  An empty single value is reported as absent but still
// returned so the issue can echo it.
func queryValue(params url.Values, name string) (any, bool) {
	vals, ok := params[name]
	switch {
	case !ok || len(vals) == 0:
		return nil, false
	case len(vals) == 1:
		return vals[0], vals[0] != ""
	}
	list := make([]any, len(vals))
	for i, s := range vals {
		list[i] = s
	}
	return list, true
}
