package lib

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// GenerateRandomToken returns a hex-encoded random token of n bytes
func GenerateRandomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// GenerateCSRFToken returns a random token suitable for CSRF protection
func GenerateCSRFToken() (string, error) {
	return GenerateRandomToken(32)
}

var skuSanitizer = regexp.MustCompile(`[^A-Z0-9]+`)

// GenerateSKU builds a deterministic SKU from the brand and product name,
// plus a short random suffix to avoid collisions on similar names
func GenerateSKU(brand, name string) (string, error) {
	prefix := skuPart(brand, 3)
	middle := skuPart(name, 6)

	suffix, err := GenerateRandomToken(2)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%s-%s", prefix, middle, strings.ToUpper(suffix)), nil
}

func skuPart(s string, maxLen int) string {
	part := skuSanitizer.ReplaceAllString(strings.ToUpper(s), "")
	if part == "" {
		part = "X"
	}
	if len(part) > maxLen {
		part = part[:maxLen]
	}
	return part
}
