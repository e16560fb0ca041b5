package services

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs"
	"treeuniformes_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

const emailStyles = `
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #1B5E20; color: white; padding: 20px; text-align: center; }
		.content { padding: 20px; background-color: #f9f9f9; }
		.order-details { background-color: white; padding: 15px; margin: 15px 0; border-radius: 5px; }
		.button { display: inline-block; padding: 15px 30px; background-color: #1B5E20; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
		.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
		ul { list-style-type: none; padding: 0; }
		li { padding: 5px 0; border-bottom: 1px solid #eee; }
		.divider { margin: 30px 0; border-top: 2px solid #ddd; }
`

const emailFooter = `TREE Uniformes &amp; Kodiak Industrial | Uniformes y calzado industrial`

// SendOrderConfirmationEmail sends a bilingual order confirmation to the
// customer with a copy to the sales inbox
func (es *EmailService) SendOrderConfirmationEmail(order *tables.Order) error {
	var itemsBuilder strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&itemsBuilder, "<li>%dx %s (%s/%s) - %s</li>",
			item.Quantity, item.ProductName, item.Size, item.Color, lib.FormatMXN(item.TotalPriceCents))
	}
	itemsList := itemsBuilder.String()

	addr := order.ShippingAddress
	addressFormatted := fmt.Sprintf("%s<br>%s %s, Col. %s<br>%s, %s, C.P. %s",
		addr.FullName, addr.Street, addr.ExteriorNo, addr.Colonia, addr.City, addr.State, addr.PostalCode)

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>%s</style>
		</head>
		<body>
			<div class="container">
				<!-- Spanish Version -->
				<div class="header">
					<h1>¡Gracias por tu pedido!</h1>
				</div>
				<div class="content">
					<p>Hola %s,</p>
					<p>Hemos recibido tu pedido. Abajo encontrarás los detalles.</p>

					<div class="order-details">
						<h3>Número de pedido: <strong>%s</strong></h3>
						<h4>Artículos:</h4>
						<ul>%s</ul>
						<p>Subtotal: %s<br>Envío: %s<br>IVA: %s</p>
						<p><strong>Total: %s</strong></p>

						<h4>Dirección de envío:</h4>
						<p>%s</p>
					</div>

					<p>Te avisaremos por correo cuando tu pedido sea enviado.</p>
					<p>¿Dudas? Escríbenos a %s</p>
				</div>

				<div class="divider"></div>

				<!-- English Version -->
				<div class="header">
					<h1>Thank you for your order!</h1>
				</div>
				<div class="content">
					<p>Hello %s,</p>
					<p>We have received your order. You will find the details below.</p>

					<div class="order-details">
						<h3>Order Number: <strong>%s</strong></h3>
						<h4>Items:</h4>
						<ul>%s</ul>
						<p>Subtotal: %s<br>Shipping: %s<br>Tax: %s</p>
						<p><strong>Total: %s</strong></p>

						<h4>Shipping Address:</h4>
						<p>%s</p>
					</div>

					<p>We will email you once your order ships.</p>
					<p>Questions? Contact us at %s</p>
				</div>

				<div class="footer">
					<p>%s</p>
				</div>
			</div>
		</body>
		</html>
	`, emailStyles,
		addr.FullName, order.OrderNumber, itemsList,
		lib.FormatMXN(order.SubtotalCents), lib.FormatMXN(order.ShippingCents), lib.FormatMXN(order.TaxCents),
		lib.FormatMXN(order.TotalCents), addressFormatted, es.cfg.Email.SalesEmail,
		addr.FullName, order.OrderNumber, itemsList,
		lib.FormatMXN(order.SubtotalCents), lib.FormatMXN(order.ShippingCents), lib.FormatMXN(order.TaxCents),
		lib.FormatMXN(order.TotalCents), addressFormatted, es.cfg.Email.SalesEmail,
		emailFooter)

	subject := fmt.Sprintf("Confirmación de tu pedido %s / Order confirmation %s", order.OrderNumber, order.OrderNumber)

	return es.SendEmail([]string{order.Email, es.cfg.Email.SalesEmail}, subject, emailBody)
}

var statusLabels = map[tables.OrderStatus][2]string{
	tables.OrderStatusProcessing: {"en preparación", "being prepared"},
	tables.OrderStatusShipped:    {"enviado", "shipped"},
	tables.OrderStatusDelivered:  {"entregado", "delivered"},
	tables.OrderStatusCancelled:  {"cancelado", "cancelled"},
}

// SendOrderStatusEmail notifies the customer of an order status change
func (es *EmailService) SendOrderStatusEmail(order *tables.Order) error {
	labels, ok := statusLabels[order.Status]
	if !ok {
		// No email for statuses without a customer-facing label
		return nil
	}

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>%s</style>
		</head>
		<body>
			<div class="container">
				<!-- Spanish Version -->
				<div class="header">
					<h1>Actualización de tu pedido</h1>
				</div>
				<div class="content">
					<p>Hola %s,</p>
					<p>Tu pedido <strong>%s</strong> ahora está <strong>%s</strong>.</p>
					<p>¿Dudas? Escríbenos a %s</p>
				</div>

				<div class="divider"></div>

				<!-- English Version -->
				<div class="header">
					<h1>Order update</h1>
				</div>
				<div class="content">
					<p>Hello %s,</p>
					<p>Your order <strong>%s</strong> is now <strong>%s</strong>.</p>
					<p>Questions? Contact us at %s</p>
				</div>

				<div class="footer">
					<p>%s</p>
				</div>
			</div>
		</body>
		</html>
	`, emailStyles,
		order.ShippingAddress.FullName, order.OrderNumber, labels[0], es.cfg.Email.SalesEmail,
		order.ShippingAddress.FullName, order.OrderNumber, labels[1], es.cfg.Email.SalesEmail,
		emailFooter)

	subject := fmt.Sprintf("Actualización del pedido %s / Order update %s", order.OrderNumber, order.OrderNumber)

	return es.SendEmail([]string{order.Email}, subject, emailBody)
}

// SendQuoteEmail sends a quote to the contact with its line items and validity
func (es *EmailService) SendQuoteEmail(quote *tables.Quote) error {
	var linesBuilder strings.Builder
	for _, line := range quote.Lines {
		fmt.Fprintf(&linesBuilder, "<li>%dx %s (%s/%s) - %s</li>",
			line.Quantity, line.ProductName, line.Size, line.Color, lib.FormatMXN(line.LineTotalCents))
	}
	linesList := linesBuilder.String()

	validUntil := ""
	if quote.ValidUntil != nil {
		validUntil = quote.ValidUntil.Format("02/01/2006")
	}

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>%s</style>
		</head>
		<body>
			<div class="container">
				<!-- Spanish Version -->
				<div class="header">
					<h1>Tu cotización está lista</h1>
				</div>
				<div class="content">
					<p>Hola %s,</p>
					<p>Te compartimos la cotización <strong>%s</strong> para %s.</p>

					<div class="order-details">
						<h4>Artículos:</h4>
						<ul>%s</ul>
						<p>Subtotal: %s<br>IVA: %s</p>
						<p><strong>Total: %s</strong></p>
						<p>Válida hasta el <strong>%s</strong>.</p>
					</div>

					<p>Para confirmar tu pedido o resolver dudas, responde a este correo o escríbenos a %s</p>
				</div>

				<div class="divider"></div>

				<!-- English Version -->
				<div class="header">
					<h1>Your quote is ready</h1>
				</div>
				<div class="content">
					<p>Hello %s,</p>
					<p>Here is quote <strong>%s</strong> for %s.</p>

					<div class="order-details">
						<h4>Items:</h4>
						<ul>%s</ul>
						<p>Subtotal: %s<br>Tax: %s</p>
						<p><strong>Total: %s</strong></p>
						<p>Valid until <strong>%s</strong>.</p>
					</div>

					<p>To confirm your order or ask questions, reply to this email or contact us at %s</p>
				</div>

				<div class="footer">
					<p>%s</p>
				</div>
			</div>
		</body>
		</html>
	`, emailStyles,
		quote.ContactName, quote.QuoteNumber, quote.CompanyName, linesList,
		lib.FormatMXN(quote.SubtotalCents), lib.FormatMXN(quote.TaxCents), lib.FormatMXN(quote.TotalCents),
		validUntil, es.cfg.Email.SalesEmail,
		quote.ContactName, quote.QuoteNumber, quote.CompanyName, linesList,
		lib.FormatMXN(quote.SubtotalCents), lib.FormatMXN(quote.TaxCents), lib.FormatMXN(quote.TotalCents),
		validUntil, es.cfg.Email.SalesEmail,
		emailFooter)

	subject := fmt.Sprintf("Cotización %s / Quote %s", quote.QuoteNumber, quote.QuoteNumber)

	return es.SendEmail([]string{quote.ContactEmail, es.cfg.Email.SalesEmail}, subject, emailBody)
}

// quoteRequestEmailContent builds the acknowledgement for a new quote
// request. The sales copy doubles as the back-office notification.
func quoteRequestEmailContent(quote *tables.Quote, salesEmail string) (string, string) {
	var linesBuilder strings.Builder
	for _, line := range quote.Lines {
		fmt.Fprintf(&linesBuilder, "<li>%dx %s (%s/%s) - %s</li>",
			line.Quantity, line.ProductName, line.Size, line.Color, lib.FormatMXN(line.LineTotalCents))
	}
	linesList := linesBuilder.String()

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>%s</style>
		</head>
		<body>
			<div class="container">
				<!-- Spanish Version -->
				<div class="header">
					<h1>Recibimos tu solicitud de cotización</h1>
				</div>
				<div class="content">
					<p>Hola %s,</p>
					<p>Registramos la solicitud de cotización <strong>%s</strong> para %s. Nuestro equipo la revisará y te enviará la cotización formal en breve.</p>

					<div class="order-details">
						<h4>Artículos solicitados:</h4>
						<ul>%s</ul>
						<p>Subtotal estimado: %s<br>IVA: %s</p>
						<p><strong>Total estimado: %s</strong></p>
					</div>

					<p>Los montos son de lista y pueden ajustarse en la cotización formal.</p>
					<p>¿Dudas? Escríbenos a %s</p>
				</div>

				<div class="divider"></div>

				<!-- English Version -->
				<div class="header">
					<h1>We received your quote request</h1>
				</div>
				<div class="content">
					<p>Hello %s,</p>
					<p>We registered quote request <strong>%s</strong> for %s. Our team will review it and send you the formal quote shortly.</p>

					<div class="order-details">
						<h4>Requested items:</h4>
						<ul>%s</ul>
						<p>Estimated subtotal: %s<br>Tax: %s</p>
						<p><strong>Estimated total: %s</strong></p>
					</div>

					<p>Amounts are list prices and may be adjusted in the formal quote.</p>
					<p>Questions? Contact us at %s</p>
				</div>

				<div class="footer">
					<p>%s</p>
				</div>
			</div>
		</body>
		</html>
	`, emailStyles,
		quote.ContactName, quote.QuoteNumber, quote.CompanyName, linesList,
		lib.FormatMXN(quote.SubtotalCents), lib.FormatMXN(quote.TaxCents), lib.FormatMXN(quote.TotalCents),
		salesEmail,
		quote.ContactName, quote.QuoteNumber, quote.CompanyName, linesList,
		lib.FormatMXN(quote.SubtotalCents), lib.FormatMXN(quote.TaxCents), lib.FormatMXN(quote.TotalCents),
		salesEmail,
		emailFooter)

	subject := fmt.Sprintf("Recibimos tu solicitud de cotización %s / We received your quote request %s",
		quote.QuoteNumber, quote.QuoteNumber)

	return subject, emailBody
}

// SendQuoteRequestEmail acknowledges a new quote request to the contact
// with a copy to the sales inbox
func (es *EmailService) SendQuoteRequestEmail(quote *tables.Quote) error {
	subject, body := quoteRequestEmailContent(quote, es.cfg.Email.SalesEmail)
	return es.SendEmail([]string{quote.ContactEmail, es.cfg.Email.SalesEmail}, subject, body)
}

// SendContactNotificationEmail forwards a new contact message to the sales inbox
func (es *EmailService) SendContactNotificationEmail(msg *tables.ContactMessage) error {
	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>%s</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Nuevo mensaje de contacto</h1>
				</div>
				<div class="content">
					<div class="order-details">
						<p><strong>Nombre:</strong> %s</p>
						<p><strong>Correo:</strong> %s</p>
						<p><strong>Teléfono:</strong> %s</p>
						<p><strong>Asunto:</strong> %s</p>
						<p><strong>Mensaje:</strong></p>
						<p>%s</p>
					</div>
					<p>Recibido el %s</p>
				</div>
				<div class="footer">
					<p>%s</p>
				</div>
			</div>
		</body>
		</html>
	`, emailStyles,
		msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message,
		time.Now().Format("02/01/2006 15:04"), emailFooter)

	subject := fmt.Sprintf("Nuevo mensaje de contacto: %s", msg.Subject)

	return es.SendEmail([]string{es.cfg.Email.SalesEmail}, subject, emailBody)
}

// SendWelcomeEmail greets a newly registered customer
func (es *EmailService) SendWelcomeEmail(user *tables.User) error {
	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>%s</style>
		</head>
		<body>
			<div class="container">
				<!-- Spanish Version -->
				<div class="header">
					<h1>¡Bienvenido a TREE Uniformes!</h1>
				</div>
				<div class="content">
					<p>Hola %s,</p>
					<p>Tu cuenta ha sido creada. Ya puedes realizar pedidos y dar seguimiento a tus compras.</p>
					<p style="text-align: center;">
						<a href="%s" class="button">Ver catálogo</a>
					</p>
					<p>¿Dudas? Escríbenos a %s</p>
				</div>

				<div class="divider"></div>

				<!-- English Version -->
				<div class="header">
					<h1>Welcome to TREE Uniformes!</h1>
				</div>
				<div class="content">
					<p>Hello %s,</p>
					<p>Your account has been created. You can now place orders and track your purchases.</p>
					<p style="text-align: center;">
						<a href="%s" class="button">Browse catalog</a>
					</p>
					<p>Questions? Contact us at %s</p>
				</div>

				<div class="footer">
					<p>%s</p>
				</div>
			</div>
		</body>
		</html>
	`, emailStyles,
		user.FirstName, es.cfg.Server.FrontendURL, es.cfg.Email.SalesEmail,
		user.FirstName, es.cfg.Server.FrontendURL, es.cfg.Email.SalesEmail,
		emailFooter)

	return es.SendEmail([]string{user.Email}, "Bienvenido a TREE Uniformes / Welcome to TREE Uniformes", emailBody)
}
