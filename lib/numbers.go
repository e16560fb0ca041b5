package lib

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const numberAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// generateNumber builds a human-readable reference number like
// TU-20260830-7KQ2 from a prefix, the current date and a random suffix.
// The alphabet excludes ambiguous characters (0/O, 1/I).
func generateNumber(prefix string) (string, error) {
	date := time.Now().Format("20060102")

	suffix := make([]byte, 4)
	for i := range suffix {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(numberAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate reference number: %w", err)
		}
		suffix[i] = numberAlphabet[idx.Int64()]
	}

	return fmt.Sprintf("%s-%s-%s", prefix, date, string(suffix)), nil
}

// GenerateOrderNumber returns a new unique order number
func GenerateOrderNumber() (string, error) {
	return generateNumber("TU")
}

// GenerateQuoteNumber returns a new unique quote number
func GenerateQuoteNumber() (string, error) {
	return generateNumber("COT")
}
