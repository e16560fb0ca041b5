package quotes

import (
	"net/http"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// CreateQuote registers a bulk quote request from a company.
// The quote starts in draft and is priced from the current catalog.
func (qrm *QuoteRoutesManager) CreateQuote(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.QuoteRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.quotes.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	var customerId *uuid.UUID
	if claims, err := lib.ExtractClaims(r, qrm.cfg.Auth.AccessTokenSecret); err == nil {
		customerId = &claims.Sub
	}

	quote, err := qrm.quoteService.CreateQuote(r.Context(), body, customerId)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.quotes.productUnavailable"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}

		qrm.logger.Error("Quote creation failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.quotes.creationFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.quotes.created"),
		gecho.WithData(map[string]any{
			"quote_number":   quote.QuoteNumber,
			"quote_id":       quote.Id,
			"status":         quote.Status,
			"subtotal_cents": quote.SubtotalCents,
			"tax_cents":      quote.TaxCents,
			"total_cents":    quote.TotalCents,
		}),
		gecho.Send(),
	)
}
