package orders

import (
	"errors"
	"net/http"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

func (orm *OrderRoutesManager) Checkout(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CheckoutRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	// Link the order to an account when the caller is logged in
	var customerId *uuid.UUID
	if claims, err := lib.ExtractClaims(r, orm.cfg.Auth.AccessTokenSecret); err == nil {
		customerId = &claims.Sub
	}

	order, err := orm.orderService.Checkout(r.Context(), body, customerId)
	if err != nil {
		if errors.Is(err, lib.ErrInsufficientStock) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.orders.insufficientStock"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}
		if lib.IsNotFound(err) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.orders.productUnavailable"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}

		orm.logger.Error("Checkout failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.orders.creationFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.orders.created"),
		gecho.WithData(map[string]any{
			"order_number": order.OrderNumber,
			"order_id":     order.Id,
			"status":       order.Status,
			"total_cents":  order.TotalCents,
		}),
		gecho.Send(),
	)
}
