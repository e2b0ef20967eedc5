package validation

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalRE = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	prefixRE  = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// ToNumber converts a decoded JSON or query value to a float64 the way a
// loosely typed client would expect: numeric strings parse (surrounding
// whitespace ignored, blank is zero), booleans are 0 or 1, null is zero, and
// a one-element array stands for its element.  Anything else is NaN.
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint64:
		return float64(x)
	case json.Number:
		return parseNumber(x.String())
	case string:
		return parseNumber(x)
	case []string:
		elems := make([]any, len(x))
		for i, s := range x {
			elems[i] = s
		}
		return sliceNumber(elems)
	case []any:
		return sliceNumber(x)
	}
	return math.NaN()
}

func sliceNumber(elems []any) float64 {
	switch len(elems) {
	case 0:
		return 0
	case 1:
		switch e := elems[0].(type) {
		case nil:
			return 0
		case bool, map[string]any:
			return math.NaN()
		default:
			return ToNumber(e)
		}
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = trim(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if m := prefixRE.FindStringSubmatch(s); m != nil {
		base := 16
		switch m[1][0] {
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		n, ok := new(big.Int).SetString(m[1][1:], base)
		if !ok {
			return math.NaN()
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f
	}

	if !decimalRE.MatchString(s) {
		return math.NaN()
	}
	// Overflow yields ±Inf alongside ErrRange, which is the value we want.
	f, err := strconv.ParseFloat(strings.TrimPrefix(s, "+"), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}
