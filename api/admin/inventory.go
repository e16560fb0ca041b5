package admin

import (
	"errors"
	"net/http"
	"strconv"
	"treeuniformes_server/handling"
	"treeuniformes_server/lib"
	"treeuniformes_server/services"
	"treeuniformes_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

func (ar *AdminRoutesManager) ListInventory(w http.ResponseWriter, r *http.Request) {
	opts := &services.InventoryListOptions{}

	query := r.URL.Query()
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		opts.Page = page
	}
	if pageSize, err := strconv.Atoi(query.Get("page_size")); err == nil {
		opts.PageSize = pageSize
	}
	if productID, err := uuid.Parse(query.Get("product_id")); err == nil {
		opts.ProductID = &productID
	}
	if lowStock, err := strconv.ParseBool(query.Get("low_stock")); err == nil {
		opts.LowStock = lowStock
	}

	result, err := ar.inventoryService.ListInventory(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "error.inventory.failedToFetch", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

// UpsertVariant creates a size/color variant or resets its quantity when
// the variant already exists.
func (ar *AdminRoutesManager) UpsertVariant(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.InventoryRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.inventory.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	variant, err := ar.inventoryService.UpsertVariant(r.Context(), body)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.inventory.unknownProduct"),
				gecho.Send(),
			)
			return
		}
		// A concurrent create for the same variant trips the unique index
		if lib.IsConflict(err) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.inventory.variantAlreadyExists"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "error.inventory.failedToUpsert", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.inventory.upserted"),
		gecho.WithData(variant),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.inventory.invalidID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.SetQuantityRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.inventory.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	variant, err := ar.inventoryService.SetQuantity(r.Context(), id, body.Quantity)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.inventory.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.inventory.failedToUpdate", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.inventory.updated"),
		gecho.WithData(variant),
		gecho.Send(),
	)
}

// AdjustQuantity applies a signed delta. The adjustment is rejected when
// it would drop quantity below the reserved amount.
func (ar *AdminRoutesManager) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.inventory.invalidID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.AdjustQuantityRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.inventory.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	variant, err := ar.inventoryService.AdjustQuantity(r.Context(), id, body.Delta)
	if err != nil {
		if errors.Is(err, lib.ErrInsufficientStock) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.inventory.adjustmentBelowReserved"),
				gecho.Send(),
			)
			return
		}
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.inventory.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.inventory.failedToUpdate", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.inventory.adjusted"),
		gecho.WithData(variant),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.inventory.invalidID"), gecho.Send())
		return
	}

	if err := ar.inventoryService.Delete(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.inventory.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.inventory.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.inventory.deleted"),
		gecho.Send(),
	)
}
