package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	initiatorId = "alice"
	responderId = "bob"
)

func newTestMatch(t *testing.T, initiatorCommitment string) *Match {
	t.Helper()
	match, err := NewMatch("match-1", initiatorId, responderId, initiatorCommitment)
	require.NoError(t, err)
	return match
}

func TestNewMatchInvalidParticipants(t *testing.T) {
	tests := []struct {
		name      string
		initiator string
		responder string
	}{
		{"empty initiator", "", responderId},
		{"empty responder", initiatorId, ""},
		{"self paired", initiatorId, initiatorId},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewMatch("match-1", test.initiator, test.responder, Commit(Rock, "s"))
			assert.ErrorIs(t, err, ErrInvalidParticipants)
		})
	}
}

func TestAddResponderCommitmentOnce(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))

	require.NoError(t, match.AddResponderCommitment(Commit(Paper, "xyz")))
	assert.ErrorIs(t, match.AddResponderCommitment(Commit(Scissors, "other")), ErrAlreadyResponded)
}

func TestRevealBeforeBothCommitted(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))

	assert.ErrorIs(t, match.RevealInitiator(Rock, "abc"), ErrInvalidRevealState)
	assert.ErrorIs(t, match.RevealResponder(Rock, "abc"), ErrInvalidRevealState)
}

func TestRevealTwiceSameSide(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))
	require.NoError(t, match.AddResponderCommitment(Commit(Paper, "xyz")))

	require.NoError(t, match.RevealInitiator(Rock, "abc"))
	assert.ErrorIs(t, match.RevealInitiator(Rock, "abc"), ErrInvalidRevealState)
}

func TestRevealRejectsNone(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))
	require.NoError(t, match.AddResponderCommitment(Commit(Paper, "xyz")))

	assert.ErrorIs(t, match.RevealInitiator(None, "abc"), ErrInvalidChoiceRange)
	assert.ErrorIs(t, match.RevealResponder(Choice(7), "xyz"), ErrInvalidChoiceRange)
}

func TestResultBeforeCompletion(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))
	_, err := match.Result()
	assert.ErrorIs(t, err, ErrNotCompleted)

	require.NoError(t, match.AddResponderCommitment(Commit(Paper, "xyz")))
	_, err = match.Result()
	assert.ErrorIs(t, err, ErrNotCompleted)

	require.NoError(t, match.RevealInitiator(Rock, "abc"))
	_, err = match.Result()
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestInitiatorWins(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))
	require.NoError(t, match.AddResponderCommitment(Commit(Scissors, "xyz")))
	require.NoError(t, match.RevealInitiator(Rock, "abc"))
	require.NoError(t, match.RevealResponder(Scissors, "xyz"))

	result, err := match.Result()
	require.NoError(t, err)
	assert.Equal(t, Result{
		WinnerId: initiatorId,
		Phase:    MatchWin,
		Comment:  "Rock beats Scissors",
	}, result)
}

func TestResponderWins(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))
	require.NoError(t, match.AddResponderCommitment(Commit(Paper, "xyz")))
	require.NoError(t, match.RevealInitiator(Rock, "abc"))
	require.NoError(t, match.RevealResponder(Paper, "xyz"))

	result, err := match.Result()
	require.NoError(t, err)
	assert.Equal(t, Result{
		WinnerId: responderId,
		Phase:    MatchWin,
		Comment:  "Paper beats Rock",
	}, result)
}

func TestDrawOnSameChoice(t *testing.T) {
	match := newTestMatch(t, Commit(Paper, "abc"))
	require.NoError(t, match.AddResponderCommitment(Commit(Paper, "xyz")))
	require.NoError(t, match.RevealResponder(Paper, "xyz"))
	require.NoError(t, match.RevealInitiator(Paper, "abc"))

	result, err := match.Result()
	require.NoError(t, err)
	assert.Equal(t, Result{
		Phase:   MatchDraw,
		Comment: "Both choices are the same",
	}, result)
}

func TestInitiatorInvalidReveal(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))
	require.NoError(t, match.AddResponderCommitment(Commit(Scissors, "xyz")))
	// Initiator reveals a choice that does not match its commitment.
	require.NoError(t, match.RevealInitiator(Paper, "abc"))
	require.NoError(t, match.RevealResponder(Scissors, "xyz"))

	result, err := match.Result()
	require.NoError(t, err)
	assert.Equal(t, Result{
		WinnerId: responderId,
		Phase:    MatchWin,
		Comment:  "Initiator choice invalid",
	}, result)
}

func TestResponderInvalidReveal(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))
	require.NoError(t, match.AddResponderCommitment(Commit(Scissors, "xyz")))
	require.NoError(t, match.RevealInitiator(Rock, "abc"))
	require.NoError(t, match.RevealResponder(Scissors, "wrong"))

	result, err := match.Result()
	require.NoError(t, err)
	assert.Equal(t, Result{
		WinnerId: initiatorId,
		Phase:    MatchWin,
		Comment:  "Responder choice invalid",
	}, result)
}

func TestBothInvalidReveal(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))
	require.NoError(t, match.AddResponderCommitment(Commit(Scissors, "xyz")))
	require.NoError(t, match.RevealInitiator(Scissors, "abc"))
	require.NoError(t, match.RevealResponder(Rock, "xyz"))

	result, err := match.Result()
	require.NoError(t, err)
	assert.Equal(t, Result{
		Phase:   MatchDraw,
		Comment: "Both choices invalid",
	}, result)
}

func TestRevealOrderIndependent(t *testing.T) {
	play := func(t *testing.T, initiatorFirst bool) Result {
		match := newTestMatch(t, Commit(Scissors, "abc"))
		require.NoError(t, match.AddResponderCommitment(Commit(Paper, "xyz")))
		if initiatorFirst {
			require.NoError(t, match.RevealInitiator(Scissors, "abc"))
			require.NoError(t, match.RevealResponder(Paper, "xyz"))
		} else {
			require.NoError(t, match.RevealResponder(Paper, "xyz"))
			require.NoError(t, match.RevealInitiator(Scissors, "abc"))
		}
		result, err := match.Result()
		require.NoError(t, err)
		return result
	}

	assert.Equal(t, play(t, true), play(t, false))
}

func TestResultIdempotent(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))
	require.NoError(t, match.AddResponderCommitment(Commit(Scissors, "xyz")))
	require.NoError(t, match.RevealInitiator(Rock, "abc"))
	require.NoError(t, match.RevealResponder(Scissors, "xyz"))

	first, err := match.Result()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := match.Result()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestTerminalMatchRejectsFurtherReveals(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))
	require.NoError(t, match.AddResponderCommitment(Commit(Scissors, "xyz")))
	require.NoError(t, match.RevealInitiator(Rock, "abc"))
	require.NoError(t, match.RevealResponder(Scissors, "xyz"))

	assert.ErrorIs(t, match.RevealInitiator(Rock, "abc"), ErrInvalidRevealState)
	assert.ErrorIs(t, match.RevealResponder(Scissors, "xyz"), ErrInvalidRevealState)
	assert.ErrorIs(t, match.AddResponderCommitment(Commit(Rock, "s")), ErrAlreadyResponded)
}

func TestSnapshotRoundTrip(t *testing.T) {
	match := newTestMatch(t, Commit(Rock, "abc"))
	require.NoError(t, match.AddResponderCommitment(Commit(Scissors, "xyz")))
	require.NoError(t, match.RevealInitiator(Rock, "abc"))

	restored, err := RestoreMatch(match.Snapshot())
	require.NoError(t, err)

	// The restored match picks up exactly where the original stopped.
	require.NoError(t, restored.RevealResponder(Scissors, "xyz"))
	result, err := restored.Result()
	require.NoError(t, err)
	assert.Equal(t, Result{
		WinnerId: initiatorId,
		Phase:    MatchWin,
		Comment:  "Rock beats Scissors",
	}, result)
}

func TestRestoreMatchRejectsInvalidSnapshots(t *testing.T) {
	valid := func() Snapshot {
		match := newTestMatch(t, Commit(Rock, "abc"))
		return match.Snapshot()
	}

	snapshot := valid()
	snapshot.InitiatorId = ""
	_, err := RestoreMatch(snapshot)
	assert.ErrorIs(t, err, ErrInvalidParticipants)

	snapshot = valid()
	snapshot.ResponderId = snapshot.InitiatorId
	_, err = RestoreMatch(snapshot)
	assert.ErrorIs(t, err, ErrInvalidParticipants)

	snapshot = valid()
	snapshot.Initiator.Phase = PhasePending
	_, err = RestoreMatch(snapshot)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	snapshot = valid()
	snapshot.Responder.Phase = PhaseCommitted
	_, err = RestoreMatch(snapshot)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}
