package admin

import (
	"errors"
	"net/http"
	"strconv"
	"treeuniformes_server/handling"
	"treeuniformes_server/lib"
	"treeuniformes_server/services"
	"treeuniformes_server/structs"
	"treeuniformes_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

func (ar *AdminRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	opts := &services.OrderListOptions{}

	query := r.URL.Query()
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		opts.Page = page
	}
	if pageSize, err := strconv.Atoi(query.Get("page_size")); err == nil {
		opts.PageSize = pageSize
	}
	if status := query.Get("status"); status != "" {
		orderStatus := tables.OrderStatus(status)
		opts.Status = &orderStatus
	}
	if email := query.Get("email"); email != "" {
		opts.Email = lib.SanitizeString(email, true, true)
	}

	result, err := ar.orderService.ListOrders(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "error.orders.failedToFetch", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.orders.invalidID"), gecho.Send())
		return
	}

	order, err := ar.orderService.GetOrderByID(r.Context(), id)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.orders.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.orders.failedToFetch", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

// UpdateOrderStatus advances the order through its lifecycle. Cancelling
// releases reserved stock, shipping commits it.
func (ar *AdminRoutesManager) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.orders.invalidID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderStatusRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	order, err := ar.orderService.UpdateOrderStatus(r.Context(), id, tables.OrderStatus(body.Status))
	if err != nil {
		if errors.Is(err, lib.ErrInvalidTransition) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.orders.invalidStatusTransition"),
				gecho.Send(),
			)
			return
		}
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.orders.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.orders.failedToUpdateStatus", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.orders.statusUpdated"),
		gecho.WithData(order),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.orders.invalidID"), gecho.Send())
		return
	}

	if err := ar.orderService.DeleteOrder(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.orders.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.orders.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.orders.deleted"),
		gecho.Send(),
	)
}

// ExportOrder renders a printable HTML document for the order.
func (ar *AdminRoutesManager) ExportOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.orders.invalidID"), gecho.Send())
		return
	}

	order, err := ar.orderService.GetOrderByID(r.Context(), id)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.orders.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.orders.failedToFetch", ar.logger, w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(ar.documentService.RenderOrder(order))); err != nil {
		ar.logger.Error("Failed to write order export", gecho.Field("error", err), gecho.Field("orderID", id))
	}
}
