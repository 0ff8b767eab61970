package orderControllers

import (
	"crypto/rand"
	"fmt"
)

// Upper-case alphanumerics only: the code is read aloud at handoff.
const verificationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateVerificationCode returns the 6-character token a customer shows to
// confirm physical delivery. Codes are not deduplicated against existing
// orders; they are a low-stakes, human-read check, not an identifier. A
// broken random source fails the checkout rather than handing every order
// the same code.
func GenerateVerificationCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	for i, b := range buf {
		buf[i] = verificationAlphabet[int(b)%len(verificationAlphabet)]
	}
	return string(buf), nil
}
