package services

import (
	"fmt"
	"html"
	"strings"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs"
	"treeuniformes_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// DocumentService renders print-ready HTML documents for orders and quotes.
// The browser's print dialog turns these into the PDFs handed to customers.
type DocumentService struct {
	logger *gecho.Logger
	cfg    *structs.Config
}

func NewDocumentService(logger *gecho.Logger, cfg *structs.Config) *DocumentService {
	return &DocumentService{
		logger: logger,
		cfg:    cfg,
	}
}

const documentStyles = `
		@media print { .no-print { display: none; } }
		body { font-family: Arial, sans-serif; color: #222; margin: 40px; }
		h1 { color: #1B5E20; margin-bottom: 0; }
		.meta { color: #666; margin-bottom: 30px; }
		table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
		th { text-align: left; background-color: #1B5E20; color: white; padding: 8px; }
		td { padding: 8px; border-bottom: 1px solid #ddd; }
		.totals { text-align: right; }
		.totals strong { font-size: 1.2em; }
		.footer { margin-top: 40px; color: #666; font-size: 12px; }
`

func documentItemRows(rows *strings.Builder, name, sku, size, color string, quantity int, unitCents, totalCents uint64) {
	fmt.Fprintf(rows, "<tr><td>%s</td><td>%s</td><td>%s / %s</td><td>%d</td><td>%s</td><td>%s</td></tr>",
		html.EscapeString(name), html.EscapeString(sku),
		html.EscapeString(size), html.EscapeString(color),
		quantity, lib.FormatMXN(unitCents), lib.FormatMXN(totalCents))
}

// RenderOrder produces the printable order document
func (ds *DocumentService) RenderOrder(order *tables.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		documentItemRows(&rows, item.ProductName, item.ProductSKU, item.Size, item.Color,
			item.Quantity, item.UnitPriceCents, item.TotalPriceCents)
	}

	addr := order.ShippingAddress

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head>
	<meta charset="UTF-8">
	<title>Pedido %s</title>
	<style>`+documentStyles+`</style>
</head>
<body>
	<h1>TREE Uniformes &amp; Kodiak Industrial</h1>
	<p class="meta">Pedido <strong>%s</strong> | %s | Estado: %s</p>

	<p><strong>Cliente:</strong> %s (%s)<br>
	<strong>Envío:</strong> %s %s, Col. %s, %s, %s, C.P. %s</p>

	<table>
		<thead>
			<tr><th>Producto</th><th>SKU</th><th>Talla / Color</th><th>Cantidad</th><th>Precio unitario</th><th>Importe</th></tr>
		</thead>
		<tbody>%s</tbody>
	</table>

	<p class="totals">
		Subtotal: %s<br>
		Envío: %s<br>
		IVA: %s<br>
		<strong>Total: %s</strong>
	</p>

	<p class="footer">Documento generado por TREE Uniformes. Precios en pesos mexicanos.</p>
	<button class="no-print" onclick="window.print()">Imprimir</button>
</body>
</html>`,
		html.EscapeString(order.OrderNumber),
		html.EscapeString(order.OrderNumber),
		order.CreatedAt.Format("02/01/2006"),
		order.Status,
		html.EscapeString(addr.FullName), html.EscapeString(order.Email),
		html.EscapeString(addr.Street), html.EscapeString(addr.ExteriorNo),
		html.EscapeString(addr.Colonia), html.EscapeString(addr.City),
		html.EscapeString(addr.State), html.EscapeString(addr.PostalCode),
		rows.String(),
		lib.FormatMXN(order.SubtotalCents),
		lib.FormatMXN(order.ShippingCents),
		lib.FormatMXN(order.TaxCents),
		lib.FormatMXN(order.TotalCents),
	)
}

// RenderQuote produces the printable quote document
func (ds *DocumentService) RenderQuote(quote *tables.Quote) string {
	var rows strings.Builder
	for _, line := range quote.Lines {
		documentItemRows(&rows, line.ProductName, line.ProductSKU, line.Size, line.Color,
			line.Quantity, line.UnitPriceCents, line.LineTotalCents)
	}

	validUntil := "por definir"
	if quote.ValidUntil != nil {
		validUntil = quote.ValidUntil.Format("02/01/2006")
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head>
	<meta charset="UTF-8">
	<title>Cotización %s</title>
	<style>`+documentStyles+`</style>
</head>
<body>
	<h1>TREE Uniformes &amp; Kodiak Industrial</h1>
	<p class="meta">Cotización <strong>%s</strong> | %s | Válida hasta: %s</p>

	<p><strong>Empresa:</strong> %s<br>
	<strong>Contacto:</strong> %s (%s)</p>

	<table>
		<thead>
			<tr><th>Producto</th><th>SKU</th><th>Talla / Color</th><th>Cantidad</th><th>Precio unitario</th><th>Importe</th></tr>
		</thead>
		<tbody>%s</tbody>
	</table>

	<p class="totals">
		Subtotal: %s<br>
		IVA: %s<br>
		<strong>Total: %s</strong>
	</p>

	<p class="footer">Documento generado por TREE Uniformes. Precios en pesos mexicanos.</p>
	<button class="no-print" onclick="window.print()">Imprimir</button>
</body>
</html>`,
		html.EscapeString(quote.QuoteNumber),
		html.EscapeString(quote.QuoteNumber),
		quote.CreatedAt.Format("02/01/2006"),
		validUntil,
		html.EscapeString(quote.CompanyName),
		html.EscapeString(quote.ContactName), html.EscapeString(quote.ContactEmail),
		rows.String(),
		lib.FormatMXN(quote.SubtotalCents),
		lib.FormatMXN(quote.TaxCents),
		lib.FormatMXN(quote.TotalCents),
	)
}
