package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handshake-games/roshambo/internal/game"
)

func TestMatchRecordSnapshotRoundTrip(t *testing.T) {
	match, err := game.NewMatch("match-1", "alice", "bob", game.Commit(game.Rock, "abc"))
	require.NoError(t, err)
	require.NoError(t, match.AddResponderCommitment(game.Commit(game.Scissors, "xyz")))
	require.NoError(t, match.RevealInitiator(game.Rock, "abc"))

	snapshot := match.Snapshot()
	record := MatchRecordFromSnapshot(snapshot)
	assert.Equal(t, snapshot, record.ToSnapshot())
	assert.False(t, record.UpdatedAt.IsZero())

	// A match restored from the persisted form plays out identically.
	restored, err := game.RestoreMatch(record.ToSnapshot())
	require.NoError(t, err)
	require.NoError(t, restored.RevealResponder(game.Scissors, "xyz"))
	result, err := restored.Result()
	require.NoError(t, err)
	assert.Equal(t, "alice", result.WinnerId)
}
