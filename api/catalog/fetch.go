package catalog

import (
	"net/http"
	"treeuniformes_server/handling"

	"github.com/MonkyMars/gecho"
)

func (crm *CatalogRoutesManager) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := crm.catalogService.ListCategories(r.Context())
	if err != nil {
		handling.HandleError(err, "error.catalog.failedToFetchCategories", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(categories),
		gecho.Send(),
	)
}

func (crm *CatalogRoutesManager) GetBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := crm.catalogService.ListBrands(r.Context())
	if err != nil {
		handling.HandleError(err, "error.catalog.failedToFetchBrands", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(brands),
		gecho.Send(),
	)
}

func (crm *CatalogRoutesManager) GetSizes(w http.ResponseWriter, r *http.Request) {
	sizes, err := crm.catalogService.ListSizes(r.Context())
	if err != nil {
		handling.HandleError(err, "error.catalog.failedToFetchSizes", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(sizes),
		gecho.Send(),
	)
}

func (crm *CatalogRoutesManager) GetColors(w http.ResponseWriter, r *http.Request) {
	colors, err := crm.catalogService.ListColors(r.Context())
	if err != nil {
		handling.HandleError(err, "error.catalog.failedToFetchColors", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(colors),
		gecho.Send(),
	)
}

func (crm *CatalogRoutesManager) GetGarmentTypes(w http.ResponseWriter, r *http.Request) {
	garmentTypes, err := crm.catalogService.ListGarmentTypes(r.Context())
	if err != nil {
		handling.HandleError(err, "error.catalog.failedToFetchGarmentTypes", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(garmentTypes),
		gecho.Send(),
	)
}
