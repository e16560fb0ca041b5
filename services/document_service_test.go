package services_test

import (
	"testing"
	"time"
	"treeuniformes_server/services"
	"treeuniformes_server/structs"
	"treeuniformes_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

func testDocumentService() *services.DocumentService {
	return services.NewDocumentService(gecho.NewDefaultLogger(), &structs.Config{})
}

func TestRenderOrder(t *testing.T) {
	order := &tables.Order{
		OrderNumber:   "TU-20260830-7KQ2",
		Email:         "cliente@example.mx",
		Status:        tables.OrderStatusPending,
		SubtotalCents: 30000,
		ShippingCents: 5000,
		TaxCents:      2400,
		TotalCents:    37400,
		ShippingAddress: structs.ShippingAddress{
			FullName:   "Juan Pérez",
			Street:     "Av. Juárez",
			ExteriorNo: "123",
			Colonia:    "Centro",
			City:       "Monterrey",
			State:      "Nuevo León",
			PostalCode: "64000",
			Phone:      "8112345678",
		},
		Items: []tables.OrderItem{
			{
				ProductName:     "Camisa Industrial <Kodiak>",
				ProductSKU:      "KOD-CAMISA-AB12",
				Size:            "M",
				Color:           "azul",
				Quantity:        2,
				UnitPriceCents:  15000,
				TotalPriceCents: 30000,
			},
		},
	}

	doc := testDocumentService().RenderOrder(order)

	assert.Contains(t, doc, "TU-20260830-7KQ2")
	assert.Contains(t, doc, "$374.00 MXN")
	assert.Contains(t, doc, "$150.00 MXN")
	assert.Contains(t, doc, "Monterrey")
	// HTML in product names must be escaped
	assert.Contains(t, doc, "Camisa Industrial &lt;Kodiak&gt;")
	assert.NotContains(t, doc, "<Kodiak>")
	assert.Contains(t, doc, "window.print()")
}

func TestRenderQuote(t *testing.T) {
	validUntil := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	quote := &tables.Quote{
		QuoteNumber:   "COT-20260830-M4PW",
		CompanyName:   "Constructora del Norte",
		ContactName:   "Ana López",
		ContactEmail:  "compras@constructora.mx",
		Status:        tables.QuoteStatusSent,
		SubtotalCents: 54000,
		TaxCents:      8640,
		TotalCents:    62640,
		ValidUntil:    &validUntil,
		Lines: []tables.QuoteLine{
			{
				ProductName:    "Pantalón de mezclilla",
				ProductSKU:     "TRE-PANTAL-9C31",
				Size:           "32",
				Color:          "negro",
				Quantity:       3,
				UnitPriceCents: 18000,
				LineTotalCents: 54000,
			},
		},
	}

	doc := testDocumentService().RenderQuote(quote)

	assert.Contains(t, doc, "COT-20260830-M4PW")
	assert.Contains(t, doc, "Constructora del Norte")
	assert.Contains(t, doc, "14/09/2026")
	assert.Contains(t, doc, "$626.40 MXN")
}

func TestRenderQuoteWithoutValidityDate(t *testing.T) {
	quote := &tables.Quote{
		QuoteNumber: "COT-20260830-2XYZ",
		Status:      tables.QuoteStatusDraft,
	}

	doc := testDocumentService().RenderQuote(quote)
	assert.Contains(t, doc, "por definir")
}
