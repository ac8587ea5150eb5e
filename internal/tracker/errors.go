package tracker

import "errors"

var (
	// ErrMissingNS is a validation failure: a session cannot start without
	// its work-order number. Nothing is persisted.
	ErrMissingNS = errors.New("work-order number is required")

	// ErrNotAttached means a transition that needs a foreground session was
	// driven while detached. Finishing a paused-and-detached session falls
	// here: resume it first.
	ErrNotAttached = errors.New("no session attached")

	// ErrSessionAttached means start or resume was driven while another
	// session already holds the foreground.
	ErrSessionAttached = errors.New("a session is already attached")

	ErrVariationNotFound    = errors.New("variation not found")
	ErrMissingVariationCode = errors.New("variation needs an old or a new code")
)
