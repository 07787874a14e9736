package party

import "errors"

var (
	ErrRegistryClosed = errors.New("party: registry closed")
	ErrLoadMessages   = errors.New("party: failed to load message catalog")
	ErrDraw           = errors.New("party: draw failed")
)
