package admin

import (
	"errors"
	"net/http"
	"strconv"
	"treeuniformes_server/handling"
	"treeuniformes_server/lib"
	"treeuniformes_server/services"
	"treeuniformes_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent accepted rejected expired"`
}

func (ar *AdminRoutesManager) ListQuotes(w http.ResponseWriter, r *http.Request) {
	opts := &services.QuoteListOptions{}

	query := r.URL.Query()
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		opts.Page = page
	}
	if pageSize, err := strconv.Atoi(query.Get("page_size")); err == nil {
		opts.PageSize = pageSize
	}
	if status := query.Get("status"); status != "" {
		quoteStatus := tables.QuoteStatus(status)
		opts.Status = &quoteStatus
	}
	if email := query.Get("email"); email != "" {
		opts.Email = lib.SanitizeString(email, true, true)
	}

	result, err := ar.quoteService.ListQuotes(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "error.quotes.failedToFetch", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) GetQuoteDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.quotes.invalidID"), gecho.Send())
		return
	}

	quote, err := ar.quoteService.GetQuoteByID(r.Context(), id)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.quotes.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.quotes.failedToFetch", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(quote),
		gecho.Send(),
	)
}

// SendQuote emails the quote to the contact and stamps its validity window.
func (ar *AdminRoutesManager) SendQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.quotes.invalidID"), gecho.Send())
		return
	}

	quote, err := ar.quoteService.SendQuote(r.Context(), id)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidTransition) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.quotes.invalidStatusTransition"),
				gecho.Send(),
			)
			return
		}
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.quotes.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.quotes.failedToSend", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.quotes.sent"),
		gecho.WithData(quote),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.quotes.invalidID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[UpdateQuoteStatusRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.quotes.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	quote, err := ar.quoteService.UpdateQuoteStatus(r.Context(), id, tables.QuoteStatus(body.Status))
	if err != nil {
		if errors.Is(err, lib.ErrInvalidTransition) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.quotes.invalidStatusTransition"),
				gecho.Send(),
			)
			return
		}
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.quotes.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.quotes.failedToUpdateStatus", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.quotes.statusUpdated"),
		gecho.WithData(quote),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.quotes.invalidID"), gecho.Send())
		return
	}

	if err := ar.quoteService.DeleteQuote(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.quotes.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.quotes.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.quotes.deleted"),
		gecho.Send(),
	)
}

// ExportQuote renders a printable HTML document for the quote.
func (ar *AdminRoutesManager) ExportQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.quotes.invalidID"), gecho.Send())
		return
	}

	quote, err := ar.quoteService.GetQuoteByID(r.Context(), id)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.quotes.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.quotes.failedToFetch", ar.logger, w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(ar.documentService.RenderQuote(quote))); err != nil {
		ar.logger.Error("Failed to write quote export", gecho.Field("error", err), gecho.Field("quoteID", id))
	}
}
