// Package validation holds pure input validators for the access registry.
package validation

import (
	"strconv"
	"strings"
)

var rutSeparators = strings.NewReplacer(".", "", "-", "")

// ValidRUT reports whether the candidate carries a correct RUT check digit.
// Separators ('.' and '-') are stripped before validation. Any malformed
// input, including the empty string, yields false; callers decide separately
// whether a blank field is acceptable.
func ValidRUT(candidate string) bool {
	clean := rutSeparators.Replace(candidate)
	if len(clean) < 8 {
		return false
	}

	body := clean[:len(clean)-1]
	check := strings.ToLower(clean[len(clean)-1:])

	sum := 0
	multiplier := 2
	for i := len(body) - 1; i >= 0; i-- {
		d := body[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += int(d-'0') * multiplier
		if multiplier == 7 {
			multiplier = 2
		} else {
			multiplier++
		}
	}

	remainder := 11 - sum%11
	var expected string
	switch remainder {
	case 11:
		expected = "0"
	case 10:
		expected = "k"
	default:
		expected = strconv.Itoa(remainder)
	}
	return check == expected
}
