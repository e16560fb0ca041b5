package orders

import (
	"net/http"
	"strconv"
	"treeuniformes_server/api/middleware"
	"treeuniformes_server/handling"
	"treeuniformes_server/lib"
	"treeuniformes_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// TrackOrder lets guests look up an order by its order number.
func (orm *OrderRoutesManager) TrackOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.missingOrderNumber"),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.GetOrderByNumber(r.Context(), orderNumber)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w,
				gecho.WithMessage("error.orders.notFound"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "error.orders.failedToFetch", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

// ExportOrder renders the printable HTML version of an order. The order
// number doubles as the lookup capability, same as tracking.
func (orm *OrderRoutesManager) ExportOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")

	order, err := orm.orderService.GetOrderByNumber(r.Context(), orderNumber)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w,
				gecho.WithMessage("error.orders.notFound"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "error.orders.failedToFetch", orm.logger, w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(orm.documentService.RenderOrder(order))); err != nil {
		orm.logger.Error("Failed to write order export", gecho.Field("error", err), gecho.Field("orderNumber", orderNumber))
	}
}

func (orm *OrderRoutesManager) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.unauthorized"),
			gecho.Send(),
		)
		return
	}

	opts := &services.OrderListOptions{
		CustomerId: &claims.Sub,
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		opts.Page = page
	}
	if pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil {
		opts.PageSize = pageSize
	}

	result, err := orm.orderService.ListOrders(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "error.orders.failedToFetch", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}
