package seed

import (
	"strconv"
	"strings"
)

// Text renders a value vector as "[a, b, c]" with shortest round-trip
// decimals. Integral values keep a fractional part ("0.0"), so the text of a
// vector is stable across implementations that print floats the same way.
func Text(values []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(v))
	}
	b.WriteByte(']')
	return b.String()
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// Next returns the seed that follows s in a chain: the text of its first
// four derived values.
func Next(s string) (string, error) {
	v, err := Derive(s, 4)
	if err != nil {
		return "", err
	}
	return Text(v), nil
}
