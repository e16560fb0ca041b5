package admin

import (
	"net/http"
	"strconv"
	"treeuniformes_server/handling"
	"treeuniformes_server/lib"
	"treeuniformes_server/services"

	"github.com/MonkyMars/gecho"
)

type MarkReadRequest struct {
	IsRead *bool `json:"is_read" validate:"required"`
}

func (ar *AdminRoutesManager) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	opts := &services.ContactListOptions{}

	query := r.URL.Query()
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		opts.Page = page
	}
	if pageSize, err := strconv.Atoi(query.Get("page_size")); err == nil {
		opts.PageSize = pageSize
	}
	if isRead, err := strconv.ParseBool(query.Get("is_read")); err == nil {
		opts.IsRead = &isRead
	}

	result, err := ar.contactService.ListMessages(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "error.contact.failedToFetch", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := ar.contactService.UnreadCount(r.Context())
	if err != nil {
		handling.HandleError(err, "error.contact.failedToCount", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]int{"unread": count}),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.contact.invalidID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[MarkReadRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.contact.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	msg, err := ar.contactService.MarkRead(r.Context(), id, *body.IsRead)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.contact.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.contact.failedToUpdate", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.contact.updated"),
		gecho.WithData(msg),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.contact.invalidID"), gecho.Send())
		return
	}

	if err := ar.contactService.DeleteMessage(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.contact.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.contact.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.contact.deleted"),
		gecho.Send(),
	)
}
