// Package randid generates short random identifiers for seeded data.
package randid

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random lowercase alphanumeric string of the given
// length. Length 0 returns an empty string.
func Generate(length int) string {
	if length <= 0 {
		return ""
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken;
			// fall back to a fixed character rather than propagate.
			out[i] = alphabet[0]
			continue
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out)
}
