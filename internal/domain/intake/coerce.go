package intake

import (
	"strconv"
	"strings"
)

// SafeInt converts free-text numeric input to a nullable int. Empty strings
// and anything that is not a plain integer ("60 oz", "2.5") become nil; the
// value is dropped rather than rejected.
func SafeInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// YesNoToBool maps the form's three-state yes/no answers onto a nullable
// bool: "yes" → true, "no" → false, anything else (including "") → nil.
// Tokens are matched exactly; the form emits them lowercased.
func YesNoToBool(s string) *bool {
	switch s {
	case "yes":
		b := true
		return &b
	case "no":
		b := false
		return &b
	default:
		return nil
	}
}

// OrDefault returns def when s is empty after trimming. Used for the
// required-column fallbacks ("N/A", "00000", "dont_know").
func OrDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// TrimOrNil trims s and returns nil for empty input, so optional columns
// store NULL instead of "".
func TrimOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// boolPtr is a convenience for literal optional-bool values.
func boolPtr(b bool) *bool { return &b }

// trueOrNil maps a checkbox flag onto the persisted tri-state: checked
// stores true, unchecked stores NULL (the form never asserts a negative).
func trueOrNil(b bool) *bool {
	if b {
		return boolPtr(true)
	}
	return nil
}
