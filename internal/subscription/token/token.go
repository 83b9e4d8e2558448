// Package token generates confirmation tokens.
package token

import (
	"crypto/rand"
)

const (
	// Length is fixed by the data model; 62^25 makes collisions a
	// storage-constraint concern, not something worth checking up front.
	Length   = 25
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// Generate returns a 25-character token drawn uniformly from the
// alphanumeric alphabet using the OS CSPRNG. It panics only if the entropy
// source is broken, the same contract crypto/rand itself has.
func Generate() string {
	out := make([]byte, 0, Length)
	buf := make([]byte, 32)
	for len(out) < Length {
		if _, err := rand.Read(buf); err != nil {
			panic("token: entropy source unavailable: " + err.Error())
		}
		for _, b := range buf {
			// Reject bytes past the largest multiple of 62 to keep the
			// distribution uniform.
			if b >= 248 {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == Length {
				break
			}
		}
	}
	return string(out)
}
