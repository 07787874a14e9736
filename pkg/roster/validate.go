package roster

import (
	"github.com/samber/lo"
)

// MinParticipants is the smallest roster that can be drawn from.
const MinParticipants = 2

// IsBlank reports whether input is empty after trimming white space and
// byte order marks.
func IsBlank(input string) bool {
	return trim(input) == ""
}

// Exists reports whether input matches any of names once both sides are
// normalized.
func Exists(input string, names []string) bool {
	target := Normalize(input)
	return lo.ContainsBy(names, func(name string) bool {
		return Normalize(name) == target
	})
}

// HasMinimum reports whether names holds at least min entries.
func HasMinimum(names []string, min int) bool {
	return len(names) >= min
}

// CheckDraw validates that names can be drawn from with the given minimum.
// An empty list yields ErrEmptyRoster; a non-empty list below min yields
// ErrInsufficientRoster.
func CheckDraw(names []string, min int) error {
	if len(names) == 0 {
		return ErrEmptyRoster
	}
	if !HasMinimum(names, min) {
		return ErrInsufficientRoster
	}
	return nil
}
