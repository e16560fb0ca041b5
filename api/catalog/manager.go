package catalog

import (
	"treeuniformes_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CatalogRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
}

func NewCatalogRoutesManager(logger *gecho.Logger, catalogService *services.CatalogService) *CatalogRoutesManager {
	return &CatalogRoutesManager{
		logger:         logger,
		catalogService: catalogService,
	}
}

func (crm *CatalogRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/categories", crm.GetCategories)
	r.Get("/brands", crm.GetBrands)
	r.Get("/sizes", crm.GetSizes)
	r.Get("/colors", crm.GetColors)
	r.Get("/garment-types", crm.GetGarmentTypes)
}
