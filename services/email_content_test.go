package services

import (
	"testing"
	"treeuniformes_server/structs/tables"

	"github.com/stretchr/testify/assert"
)

func TestQuoteRequestEmailContent(t *testing.T) {
	quote := &tables.Quote{
		QuoteNumber:   "COT-20260830-M4PW",
		CompanyName:   "Constructora del Norte",
		ContactName:   "Ana López",
		ContactEmail:  "compras@constructora.mx",
		Status:        tables.QuoteStatusDraft,
		SubtotalCents: 54000,
		TaxCents:      8640,
		TotalCents:    62640,
		Lines: []tables.QuoteLine{
			{
				ProductName:    "Pantalón de mezclilla",
				Size:           "32",
				Color:          "negro",
				Quantity:       3,
				LineTotalCents: 54000,
			},
		},
	}

	subject, body := quoteRequestEmailContent(quote, "ventas@treeuniformes.mx")

	assert.Contains(t, subject, "COT-20260830-M4PW")

	assert.Contains(t, body, "Constructora del Norte")
	assert.Contains(t, body, "3x Pantalón de mezclilla (32/negro)")
	assert.Contains(t, body, "$626.40 MXN")
	assert.Contains(t, body, "ventas@treeuniformes.mx")

	// Bilingual body
	assert.Contains(t, body, "Recibimos tu solicitud de cotización")
	assert.Contains(t, body, "We received your quote request")
}
