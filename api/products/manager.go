package products

import (
	"treeuniformes_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger           *gecho.Logger
	productService   *services.ProductService
	inventoryService *services.InventoryService
}

func NewProductRoutesManager(logger *gecho.Logger, productService *services.ProductService, inventoryService *services.InventoryService) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:           logger,
		productService:   productService,
		inventoryService: inventoryService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", prm.GetProducts)
		r.Get("/count", prm.GetProductCount)
		r.Get("/{id}", prm.GetProductByID)
		r.Get("/{id}/stock", prm.GetProductStock)
	})

	r.Get("/inventory/availability", prm.GetVariantAvailability)
}
