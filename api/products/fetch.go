package products

import (
	"net/http"
	"treeuniformes_server/handling"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetProducts returns the active storefront catalog with filters and pagination.
func (prm *ProductRoutesManager) GetProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidQueryParams"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	result, err := prm.productService.GetActiveProducts(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "error.products.failedToFetch", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidID"),
			gecho.Send(),
		)
		return
	}

	product, err := prm.productService.GetProductByID(r.Context(), id, true)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "error.products.failedToFetch", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}

// GetProductStock returns per-variant availability for the product detail page.
func (prm *ProductRoutesManager) GetProductStock(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidID"),
			gecho.Send(),
		)
		return
	}

	stock, err := prm.inventoryService.GetProductStock(r.Context(), id)
	if err != nil {
		handling.HandleError(err, "error.products.failedToFetchStock", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(stock),
		gecho.Send(),
	)
}

// GetVariantAvailability answers the "can I buy N of this size/color"
// question for a single variant.
func (prm *ProductRoutesManager) GetVariantAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	productID, err := uuid.Parse(query.Get("product_id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.inventory.invalidProductID"),
			gecho.Send(),
		)
		return
	}

	size := query.Get("size")
	color := query.Get("color")
	if size == "" || color == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.inventory.missingVariant"),
			gecho.Send(),
		)
		return
	}

	variant, err := prm.inventoryService.GetVariant(r.Context(), productID, size, color)
	if err != nil {
		handling.HandleError(err, "error.inventory.failedToFetch", prm.logger, w)
		return
	}

	// Unknown variants read as out of stock rather than 404, the
	// storefront treats both the same way
	available := 0
	if variant != nil {
		available = variant.Available()
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product_id": productID,
			"size":       size,
			"color":      color,
			"available":  available,
			"status":     tables.StatusForAvailable(available),
		}),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) GetProductCount(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidQueryParams"),
			gecho.Send(),
		)
		return
	}

	active := true
	opts.IsActive = &active

	count, err := prm.productService.GetProductCount(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "error.products.failedToCount", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]int{"count": count}),
		gecho.Send(),
	)
}
