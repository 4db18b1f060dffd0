package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/handshake-games/roshambo/internal/game"
	"github.com/handshake-games/roshambo/internal/registry"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{game.ErrInvalidParticipants, ErrStatusInvalidParticipants},
		{game.ErrInvalidChoiceRange, ErrStatusInvalidChoice},
		{game.ErrAlreadyResponded, ErrStatusInvalidState},
		{game.ErrInvalidRevealState, ErrStatusInvalidState},
		{registry.ErrMatchAlreadyExists, ErrStatusInvalidState},
		{registry.ErrMatchNotFound, ErrStatusMatchNotFound},
		{game.ErrNotCompleted, ErrStatusNotCompleted},
		{errors.New("something else"), ErrStatusInvalidPayload},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, statusForError(test.err))
	}
}
