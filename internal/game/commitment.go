package game

import (
	"crypto/sha256"
	"encoding/hex"
)

// Commit computes the commitment digest for a choice and secret:
// hex(SHA-256("<label>-<secret>")). Used by clients ahead of time and
// by VerifyCommitment during resolution.
func Commit(choice Choice, secret string) string {
	sum := sha256.Sum256([]byte(choice.Label() + "-" + secret))
	return hex.EncodeToString(sum[:])
}

// VerifyCommitment recomputes the digest from the claimed choice and
// secret and compares it against the stored commitment. A mismatch is
// not an error, it is a losing reveal.
func VerifyCommitment(commitment string, choice Choice, secret string) bool {
	return Commit(choice, secret) == commitment
}
