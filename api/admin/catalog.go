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

func parseIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

func (ar *AdminRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidRequestBody"), gecho.WithData(err), gecho.Send())
		return
	}

	category, err := ar.catalogService.CreateCategory(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.BadRequest(w, gecho.WithMessage("error.catalog.duplicateName"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.catalog.failedToCreate", ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("success.catalog.created"), gecho.WithData(category), gecho.Send())
}

func (ar *AdminRoutesManager) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidRequestBody"), gecho.WithData(err), gecho.Send())
		return
	}

	category, err := ar.catalogService.UpdateCategory(r.Context(), id, body)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.catalog.notFound"), gecho.Send())
			return
		}
		if errors.Is(err, lib.ErrConflict) {
			gecho.BadRequest(w, gecho.WithMessage("error.catalog.duplicateName"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.catalog.failedToUpdate", ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("success.catalog.updated"), gecho.WithData(category), gecho.Send())
}

func (ar *AdminRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidID"), gecho.Send())
		return
	}

	if err := ar.catalogService.DeleteCategory(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.catalog.notFound"), gecho.Send())
			return
		}
		if errors.Is(err, lib.ErrConflict) {
			// Referenced by products
			gecho.BadRequest(w, gecho.WithMessage("error.catalog.inUse"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.catalog.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("success.catalog.deleted"), gecho.Send())
}

func (ar *AdminRoutesManager) CreateBrand(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.BrandRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidRequestBody"), gecho.WithData(err), gecho.Send())
		return
	}

	brand, err := ar.catalogService.CreateBrand(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.BadRequest(w, gecho.WithMessage("error.catalog.duplicateName"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.catalog.failedToCreate", ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("success.catalog.created"), gecho.WithData(brand), gecho.Send())
}

func (ar *AdminRoutesManager) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.BrandRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidRequestBody"), gecho.WithData(err), gecho.Send())
		return
	}

	brand, err := ar.catalogService.UpdateBrand(r.Context(), id, body)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.catalog.notFound"), gecho.Send())
			return
		}
		if errors.Is(err, lib.ErrConflict) {
			gecho.BadRequest(w, gecho.WithMessage("error.catalog.duplicateName"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.catalog.failedToUpdate", ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("success.catalog.updated"), gecho.WithData(brand), gecho.Send())
}

func (ar *AdminRoutesManager) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidID"), gecho.Send())
		return
	}

	if err := ar.catalogService.DeleteBrand(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.catalog.notFound"), gecho.Send())
			return
		}
		if errors.Is(err, lib.ErrConflict) {
			gecho.BadRequest(w, gecho.WithMessage("error.catalog.inUse"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.catalog.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("success.catalog.deleted"), gecho.Send())
}

// Sizes, colors and garment types share the same create/delete shape.

func (ar *AdminRoutesManager) CreateSize(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LookupRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidRequestBody"), gecho.WithData(err), gecho.Send())
		return
	}

	size, err := ar.catalogService.CreateSize(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.BadRequest(w, gecho.WithMessage("error.catalog.duplicateName"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.catalog.failedToCreate", ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("success.catalog.created"), gecho.WithData(size), gecho.Send())
}

func (ar *AdminRoutesManager) DeleteSize(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidID"), gecho.Send())
		return
	}

	if err := ar.catalogService.DeleteSize(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.catalog.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.catalog.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("success.catalog.deleted"), gecho.Send())
}

func (ar *AdminRoutesManager) CreateColor(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LookupRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidRequestBody"), gecho.WithData(err), gecho.Send())
		return
	}

	color, err := ar.catalogService.CreateColor(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.BadRequest(w, gecho.WithMessage("error.catalog.duplicateName"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.catalog.failedToCreate", ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("success.catalog.created"), gecho.WithData(color), gecho.Send())
}

func (ar *AdminRoutesManager) DeleteColor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidID"), gecho.Send())
		return
	}

	if err := ar.catalogService.DeleteColor(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.catalog.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.catalog.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("success.catalog.deleted"), gecho.Send())
}

func (ar *AdminRoutesManager) CreateGarmentType(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LookupRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidRequestBody"), gecho.WithData(err), gecho.Send())
		return
	}

	garmentType, err := ar.catalogService.CreateGarmentType(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.BadRequest(w, gecho.WithMessage("error.catalog.duplicateName"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.catalog.failedToCreate", ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("success.catalog.created"), gecho.WithData(garmentType), gecho.Send())
}

func (ar *AdminRoutesManager) DeleteGarmentType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("error.catalog.invalidID"), gecho.Send())
		return
	}

	if err := ar.catalogService.DeleteGarmentType(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("error.catalog.notFound"), gecho.Send())
			return
		}
		handling.HandleError(err, "error.catalog.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("success.catalog.deleted"), gecho.Send())
}
