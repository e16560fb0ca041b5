package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuoteValidUntil(t *testing.T) {
	from := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 9, 29, 12, 0, 0, 0, time.UTC), quoteValidUntil(from, 30))
	assert.Equal(t, time.Date(2026, 9, 6, 12, 0, 0, 0, time.UTC), quoteValidUntil(from, 7))
}

func TestQuoteValidUntilDefaultsWindow(t *testing.T) {
	from := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	want := from.AddDate(0, 0, defaultQuoteValidityDays)

	assert.Equal(t, want, quoteValidUntil(from, 0))
	assert.Equal(t, want, quoteValidUntil(from, -3))
}
