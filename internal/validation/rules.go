// internal/validation/rules.go
//
// Value predicates used by the schema evaluator.
//
// Context
// -------
// Each predicate is total over `any`: it answers false for values of the
// wrong shape instead of panicking.  None of them know about HTTP, so they
// are equally usable from handlers, config checks, or tests.
//
// Notes
// -----
// • String lengths are measured in runes after trimming.
// • Numbers are coerced with ToNumber (see coerce.go) before range checks.

package validation

import (
	"math"
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// emailRE is intentionally permissive: one "@", no whitespace, and a dot
// somewhere after the "@".
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether v is a string shaped like local@domain.tld.
func IsEmail(v any) bool {
	s, ok := v.(string)
	return ok && emailRE.MatchString(trim(s))
}

// IsNonEmptyString reports whether v is a string holding at least minLength
// characters once surrounding whitespace is removed.
func IsNonEmptyString(v any, minLength int) bool {
	s, ok := v.(string)
	return ok && utf8.RuneCountInString(trim(s)) >= minLength
}

// IsNumberInRange coerces v to a number and checks it against the optional
// inclusive bounds.  NaN never passes.
func IsNumberInRange(v any, min, max *float64) bool {
	n := ToNumber(v)
	if math.IsNaN(n) {
		return false
	}
	if min != nil && n < *min {
		return false
	}
	if max != nil && n > *max {
		return false
	}
	return true
}

// IsArrayAtLeast reports whether v is a slice or array with at least
// minLength elements.
func IsArrayAtLeast(v any, minLength int) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return !rv.IsNil() && rv.Len() >= minLength
	case reflect.Array:
		return rv.Len() >= minLength
	}
	return false
}

// trim drops leading and trailing whitespace, including the byte-order mark.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
