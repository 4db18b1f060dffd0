package server

import "errors"

var (
	ErrStatusInvalidParticipants = "INVALID_PARTICIPANTS"
	ErrStatusInvalidChoice       = "INVALID_CHOICE"
	ErrStatusInvalidState        = "INVALID_STATE"
	ErrStatusMatchNotFound       = "MATCH_NOT_FOUND"
	ErrStatusNotCompleted        = "NOT_COMPLETED"
	ErrStatusInvalidPayload      = "INVALID_PAYLOAD"
)

var ErrUnknownAction = errors.New("unknown action")
