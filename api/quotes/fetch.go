package quotes

import (
	"net/http"
	"strconv"
	"treeuniformes_server/api/middleware"
	"treeuniformes_server/handling"
	"treeuniformes_server/lib"
	"treeuniformes_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (qrm *QuoteRoutesManager) GetMyQuotes(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.unauthorized"),
			gecho.Send(),
		)
		return
	}

	opts := &services.QuoteListOptions{
		CustomerId: &claims.Sub,
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		opts.Page = page
	}
	if pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil {
		opts.PageSize = pageSize
	}

	result, err := qrm.quoteService.ListQuotes(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "error.quotes.failedToFetch", qrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

// ExportQuote renders the printable HTML version of a quote.
func (qrm *QuoteRoutesManager) ExportQuote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.quotes.invalidID"),
			gecho.Send(),
		)
		return
	}

	quote, err := qrm.quoteService.GetQuoteByID(r.Context(), id)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w,
				gecho.WithMessage("error.quotes.notFound"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "error.quotes.failedToFetch", qrm.logger, w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(qrm.documentService.RenderQuote(quote))); err != nil {
		qrm.logger.Error("Failed to write quote export", gecho.Field("error", err), gecho.Field("quoteID", id))
	}
}
