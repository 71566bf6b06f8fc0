package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a price or power string with no leading numeric portion.
// Operator-published figures like "25 MW" or "450" parse by their leading
// number; values like "N/A" are rejected instead of degrading to NaN.
type ParseError struct {
	Field string
	ID    string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog: cannot parse %s=%q for datacenter %s", e.Field, e.Value, e.ID)
}

// ParseLeadingInt extracts the leading integer of s.
func ParseLeadingInt(field, id, s string) (int, error) {
	digits := leadingNumber(s, false)
	if digits == "" {
		return 0, &ParseError{Field: field, ID: id, Value: s}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &ParseError{Field: field, ID: id, Value: s}
	}
	return n, nil
}

// ParseLeadingFloat extracts the leading decimal number of s.
func ParseLeadingFloat(field, id, s string) (float64, error) {
	digits := leadingNumber(s, true)
	if digits == "" || digits == "-" || digits == "." {
		return 0, &ParseError{Field: field, ID: id, Value: s}
	}
	f, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, &ParseError{Field: field, ID: id, Value: s}
	}
	return f, nil
}

// leadingNumber consumes an optional sign and then digits, with at most one
// decimal point when allowDot is set.
func leadingNumber(s string, allowDot bool) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	seenDot := false
	seenDigit := false
	for i, r := range s {
		switch {
		case r == '-' && i == 0:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			seenDigit = true
			b.WriteRune(r)
		case r == '.' && allowDot && !seenDot:
			seenDot = true
			b.WriteRune(r)
		default:
			if !seenDigit {
				return ""
			}
			return b.String()
		}
	}
	if !seenDigit {
		return ""
	}
	return b.String()
}
