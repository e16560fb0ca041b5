package services_test

import (
	"testing"
	"treeuniformes_server/services"
	"treeuniformes_server/structs/tables"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionQuote(t *testing.T) {
	cases := []struct {
		from    tables.QuoteStatus
		to      tables.QuoteStatus
		allowed bool
	}{
		{tables.QuoteStatusDraft, tables.QuoteStatusSent, true},
		{tables.QuoteStatusDraft, tables.QuoteStatusAccepted, false},
		{tables.QuoteStatusDraft, tables.QuoteStatusExpired, false},
		{tables.QuoteStatusSent, tables.QuoteStatusAccepted, true},
		{tables.QuoteStatusSent, tables.QuoteStatusRejected, true},
		{tables.QuoteStatusSent, tables.QuoteStatusExpired, true},
		{tables.QuoteStatusSent, tables.QuoteStatusDraft, false},
		{tables.QuoteStatusAccepted, tables.QuoteStatusRejected, false},
		{tables.QuoteStatusRejected, tables.QuoteStatusSent, false},
		{tables.QuoteStatusExpired, tables.QuoteStatusSent, false},
	}

	for _, c := range cases {
		got := services.CanTransitionQuote(c.from, c.to)
		assert.Equal(t, c.allowed, got, "%s -> %s", c.from, c.to)
	}
}

func TestQuoteTax(t *testing.T) {
	// 16% IVA, rounded to the nearest cent
	assert.Equal(t, uint64(0), services.QuoteTax(0))
	assert.Equal(t, uint64(16), services.QuoteTax(100))
	assert.Equal(t, uint64(6), services.QuoteTax(37))  // 5.92 rounds up
	assert.Equal(t, uint64(2), services.QuoteTax(14))  // 2.24 rounds down
	assert.Equal(t, uint64(5184), services.QuoteTax(32400))
}

func TestQuoteTotalsAddUp(t *testing.T) {
	// 2 camisas at $150.00 plus 1 pantalón at $240.00
	subtotal := uint64(2*15000 + 24000)
	tax := services.QuoteTax(subtotal)

	assert.Equal(t, uint64(54000), subtotal)
	assert.Equal(t, uint64(8640), tax)
	assert.Equal(t, uint64(62640), subtotal+tax)
}
