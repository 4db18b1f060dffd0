package game

import "errors"

var (
	ErrInvalidParticipants = errors.New("invalid participants")
	ErrInvalidChoiceRange  = errors.New("choice out of range")
	ErrAlreadyResponded    = errors.New("match already responded to")
	ErrInvalidRevealState  = errors.New("reveal not allowed in current state")
	ErrNotCompleted        = errors.New("match not completed")
	ErrInvalidSnapshot     = errors.New("invalid match snapshot")
)
