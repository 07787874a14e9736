package binder

import "errors"

var (
	// ErrBinderNotApplicable means the request carries no payload for this binder.
	ErrBinderNotApplicable = errors.New("binder not applicable")
	ErrFailedToParseForm   = errors.New("failed to parse form data")
	ErrFailedToReadSignals = errors.New("failed to read datastar signals")
	ErrInvalidTarget       = errors.New("bind target must be a non-nil pointer to struct")
)
