package admin

import (
	"treeuniformes_server/api/middleware"
	"treeuniformes_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger           *gecho.Logger
	productService   *services.ProductService
	catalogService   *services.CatalogService
	inventoryService *services.InventoryService
	orderService     *services.OrderService
	quoteService     *services.QuoteService
	contactService   *services.ContactService
	dashboardService *services.DashboardService
	documentService  *services.DocumentService
	uploadService    *services.UploadService
	mw               *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	catalogService *services.CatalogService,
	inventoryService *services.InventoryService,
	orderService *services.OrderService,
	quoteService *services.QuoteService,
	contactService *services.ContactService,
	dashboardService *services.DashboardService,
	documentService *services.DocumentService,
	uploadService *services.UploadService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:           logger,
		productService:   productService,
		catalogService:   catalogService,
		inventoryService: inventoryService,
		orderService:     orderService,
		quoteService:     quoteService,
		contactService:   contactService,
		dashboardService: dashboardService,
		documentService:  documentService,
		uploadService:    uploadService,
		mw:               mw,
	}
}

func (ar *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(ar.mw.UserAuthMiddleware)
		r.Use(ar.mw.AdminAuthMiddleware)

		r.Get("/dashboard/stats", ar.GetDashboardStats)

		r.Get("/products", ar.ListAllProducts)
		r.Get("/inventory", ar.ListInventory)

		// Order management routes
		r.Get("/orders", ar.ListOrders)
		r.Get("/orders/{id}", ar.GetOrderDetails)
		r.Get("/orders/{id}/export", ar.ExportOrder)

		// Quote management routes
		r.Get("/quotes", ar.ListQuotes)
		r.Get("/quotes/{id}", ar.GetQuoteDetails)
		r.Get("/quotes/{id}/export", ar.ExportQuote)

		// Contact inbox
		r.Get("/contact", ar.ListContactMessages)
		r.Get("/contact/unread-count", ar.GetUnreadCount)

		// Mutating routes behind CSRF
		r.Group(func(r chi.Router) {
			r.Use(ar.mw.CSRFMiddleware())

			r.Post("/products", ar.CreateProduct)
			r.Put("/products/{id}", ar.UpdateProduct)
			r.Delete("/products/{id}", ar.DeleteProduct)

			r.Post("/categories", ar.CreateCategory)
			r.Put("/categories/{id}", ar.UpdateCategory)
			r.Delete("/categories/{id}", ar.DeleteCategory)

			r.Post("/brands", ar.CreateBrand)
			r.Put("/brands/{id}", ar.UpdateBrand)
			r.Delete("/brands/{id}", ar.DeleteBrand)

			r.Post("/sizes", ar.CreateSize)
			r.Delete("/sizes/{id}", ar.DeleteSize)
			r.Post("/colors", ar.CreateColor)
			r.Delete("/colors/{id}", ar.DeleteColor)
			r.Post("/garment-types", ar.CreateGarmentType)
			r.Delete("/garment-types/{id}", ar.DeleteGarmentType)

			r.Post("/inventory", ar.UpsertVariant)
			r.Put("/inventory/{id}/quantity", ar.SetQuantity)
			r.Patch("/inventory/{id}/adjust", ar.AdjustQuantity)
			r.Delete("/inventory/{id}", ar.DeleteVariant)

			r.Patch("/orders/{id}/status", ar.UpdateOrderStatus)
			r.Delete("/orders/{id}", ar.DeleteOrder)

			r.Post("/quotes/{id}/send", ar.SendQuote)
			r.Patch("/quotes/{id}/status", ar.UpdateQuoteStatus)
			r.Delete("/quotes/{id}", ar.DeleteQuote)

			r.Patch("/contact/{id}/read", ar.MarkMessageRead)
			r.Delete("/contact/{id}", ar.DeleteContactMessage)

			r.Post("/uploads/presign", ar.PresignUpload)
		})
	})
}
