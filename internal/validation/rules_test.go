package validation

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	valid := []any{"x@y.com", "  first.last@sub.example.org ", "a+b@c.io"}
	invalid := []any{"", "plain", "a@b", "a b@c.com", "a@@b.com", "@b.com", 42, nil, []any{"x@y.com"}}

	for _, v := range valid {
		assert.True(t, IsEmail(v), "%#v", v)
	}
	for _, v := range invalid {
		assert.False(t, IsEmail(v), "%#v", v)
	}
}

func TestIsNonEmptyString(t *testing.T) {
	assert.True(t, IsNonEmptyString("Jo", 1))
	assert.True(t, IsNonEmptyString("  John  ", 4))
	assert.False(t, IsNonEmptyString("  Jo  ", 3), "whitespace does not count")
	assert.False(t, IsNonEmptyString("   ", 1))
	assert.True(t, IsNonEmptyString("héllo", 5), "length is counted in characters")
	assert.False(t, IsNonEmptyString(12345, 1))
	assert.False(t, IsNonEmptyString(nil, 1))
}

func TestIsNumberInRangeBoundaries(t *testing.T) {
	lo, hi := Bound(5), Bound(10)

	assert.True(t, IsNumberInRange(5, lo, hi))
	assert.True(t, IsNumberInRange(10, lo, hi))
	assert.False(t, IsNumberInRange(4, lo, hi))
	assert.False(t, IsNumberInRange(11, lo, hi))

	assert.True(t, IsNumberInRange("7", lo, hi))
	assert.True(t, IsNumberInRange(-1e9, nil, nil))
	assert.False(t, IsNumberInRange("abc", nil, nil))
	assert.False(t, IsNumberInRange(map[string]any{}, nil, nil))
}

func TestIsArrayAtLeast(t *testing.T) {
	assert.True(t, IsArrayAtLeast([]any{1}, 1))
	assert.True(t, IsArrayAtLeast([]string{"a", "b"}, 2))
	assert.True(t, IsArrayAtLeast([2]int{}, 2))
	assert.False(t, IsArrayAtLeast([]any{}, 1))
	assert.False(t, IsArrayAtLeast([]any(nil), 0))
	assert.False(t, IsArrayAtLeast("ab", 1))
	assert.False(t, IsArrayAtLeast(map[string]any{"0": 1}, 1))
	assert.False(t, IsArrayAtLeast(nil, 0))
}

func TestRulesAreTotal(t *testing.T) {
	inputs := []any{
		nil, true, 0, -3.5, math.NaN(), math.Inf(1), "", "text",
		[]any{}, []any{nil}, map[string]any{"k": "v"}, struct{}{}, &struct{}{},
		json.Number("12"), []string(nil),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			IsEmail(in)
			IsNonEmptyString(in, 1)
			IsNumberInRange(in, Bound(0), Bound(1))
			IsArrayAtLeast(in, 1)
		}, "%#v", in)
	}
}

func TestToNumber(t *testing.T) {
	testCases := []struct {
		in   any
		want float64
	}{
		{nil, 0},
		{true, 1},
		{false, 0},
		{18.0, 18},
		{7, 7},
		{json.Number("2.5"), 2.5},
		{"42", 42},
		{"  42 ", 42},
		{"", 0},
		{"   ", 0},
		{"-1.5e2", -150},
		{".5", 0.5},
		{"5.", 5},
		{"+3", 3},
		{"0x1F", 31},
		{"0b101", 5},
		{"0o17", 15},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e999", math.Inf(1)},
		{[]any{}, 0},
		{[]any{"9"}, 9},
		{[]any{nil}, 0},
		{[]any{[]any{"3"}}, 3},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, ToNumber(tc.in), "%#v", tc.in)
	}

	nan := []any{
		"abc", "12px", "1_000", "inf", "NaN", "-0x10", "0x",
		[]any{"1", "2"}, []any{true}, []any{map[string]any{}},
		map[string]any{}, struct{}{},
	}
	for _, in := range nan {
		assert.True(t, math.IsNaN(ToNumber(in)), "%#v", in)
	}
}
