package admin

import (
	"errors"
	"net/http"
	"treeuniformes_server/handling"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListAllProducts includes inactive products, unlike the storefront listing.
func (ar *AdminRoutesManager) ListAllProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidQueryParams"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	result, err := ar.productService.GetAllProducts(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "error.products.failedToFetch", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := ar.productService.CreateProduct(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.products.duplicateSKU"),
				gecho.Send(),
			)
			return
		}
		if lib.IsNotFound(err) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.products.unknownReference"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "error.products.failedToCreate", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.created"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidID"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := ar.productService.UpdateProduct(r.Context(), id, body)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}
		if errors.Is(err, lib.ErrConflict) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.products.duplicateSKU"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "error.products.failedToUpdate", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.updated"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidID"),
			gecho.Send(),
		)
		return
	}

	if err := ar.productService.DeleteProduct(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "error.products.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.deleted"),
		gecho.Send(),
	)
}
