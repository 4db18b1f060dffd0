package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyCommitmentRoundTrip(t *testing.T) {
	secrets := []string{"abc", "", "a long secret with spaces", "0xdeadbeef"}
	for _, choice := range []Choice{Rock, Paper, Scissors} {
		for _, secret := range secrets {
			commitment := Commit(choice, secret)
			assert.True(t, VerifyCommitment(commitment, choice, secret),
				"commitment for %s/%q must verify", choice, secret)
		}
	}
}

func TestVerifyCommitmentAlteredChoice(t *testing.T) {
	commitment := Commit(Rock, "abc")
	assert.False(t, VerifyCommitment(commitment, Paper, "abc"))
	assert.False(t, VerifyCommitment(commitment, Scissors, "abc"))
	assert.False(t, VerifyCommitment(commitment, None, "abc"))
}

func TestVerifyCommitmentAlteredSecret(t *testing.T) {
	commitment := Commit(Scissors, "xyz")
	assert.False(t, VerifyCommitment(commitment, Scissors, "xy"))
	assert.False(t, VerifyCommitment(commitment, Scissors, "xyz "))
	assert.False(t, VerifyCommitment(commitment, Scissors, ""))
}

func TestCommitUsesLabelSeparator(t *testing.T) {
	// "Rock" + "-" + "abc" and "Roc" + "-" + "kabc" must not collide.
	assert.NotEqual(t, Commit(Rock, "abc"), Commit(Paper, "abc"))
	assert.NotEqual(t, Commit(Rock, "abc"), Commit(Rock, "abd"))
}
