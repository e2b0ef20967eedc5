// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// Every declared setting may carry a validator tag such as
// `oneof=error warn info debug` or `gt=0,lte=65535`.  `satisfies` runs that
// tag against the (possibly coerced) value with `Var`, so the predicates live
// next to the declarations in model.go rather than in hand-written checks.
//
// Numeric settings must also be integral.  NaN, infinities, and fractions
// fail before the tag is consulted.

package config

import "github.com/go-playground/validator/v10"

//
// validator instance (package-level singleton)
//

var v = validator.New()

// satisfies reports whether val passes the predicate declared for s.  A
// setting without a rule accepts anything.
func satisfies(s setting, val any) bool {
	if s.rule == "" {
		return true
	}
	if s.numeric() {
		f, ok := val.(float64)
		if !ok || !isInteger(f) {
			return false
		}
		return v.Var(f, s.rule) == nil
	}
	str, ok := val.(string)
	if !ok {
		return false
	}
	return v.Var(str, s.rule) == nil
}
