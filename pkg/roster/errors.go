package roster

import "errors"

var (
	// ErrBlankInput is returned when the submitted name is empty after trimming.
	ErrBlankInput = errors.New("roster: name is blank")

	// ErrDuplicateName is returned when the name already exists under
	// case-insensitive comparison.
	ErrDuplicateName = errors.New("roster: name already added")

	// ErrEmptyRoster is returned when a draw is requested on an empty roster.
	ErrEmptyRoster = errors.New("roster: no participants")

	// ErrInsufficientRoster is returned when the roster has fewer entries than
	// the minimum required to draw.
	ErrInsufficientRoster = errors.New("roster: not enough participants")
)
