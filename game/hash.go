package game

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashID produces the one-way digest of a burger or episode identifier,
// lowercase hex. The plaintext answer id never travels to the client; only
// this digest does.
func HashID(id string) string {
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}

// ValidateGuess recomputes the digest of the candidate id and compares it to
// the puzzle's stored answer hash. Deterministic and side-effect free; a
// malformed candidate simply produces a digest that will not match.
func ValidateGuess(candidateID, answerHash string) bool {
	return HashID(candidateID) == answerHash
}
