package api

import (
	"treeuniformes_server/api/admin"
	"treeuniformes_server/api/auth"
	"treeuniformes_server/api/catalog"
	"treeuniformes_server/api/contact"
	"treeuniformes_server/api/debug"
	"treeuniformes_server/api/health"
	"treeuniformes_server/api/middleware"
	"treeuniformes_server/api/orders"
	"treeuniformes_server/api/products"
	"treeuniformes_server/api/quotes"
	"treeuniformes_server/services"
	"treeuniformes_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	healthRoutes  *health.HealthRoutesManager
	productRoutes *products.ProductRoutesManager
	catalogRoutes *catalog.CatalogRoutesManager
	authRoutes    *auth.AuthRoutesManager
	orderRoutes   *orders.OrderRoutesManager
	quoteRoutes   *quotes.QuoteRoutesManager
	contactRoutes *contact.ContactRoutesManager
	adminRoutes   *admin.AdminRoutesManager
	debugRoutes   *debug.DebugRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
		productRoutes: products.NewProductRoutesManager(logger, sm.ProductService, sm.InventoryService),
		catalogRoutes: catalog.NewCatalogRoutesManager(logger, sm.CatalogService),
		authRoutes:    auth.NewAuthRoutesManager(logger, sm.AuthService, sm.EmailService, sm.CacheService, cfg, mw),
		orderRoutes:   orders.NewOrderRoutesManager(logger, cfg, sm.OrderService, sm.DocumentService, mw),
		quoteRoutes:   quotes.NewQuoteRoutesManager(logger, cfg, sm.QuoteService, sm.DocumentService, mw),
		contactRoutes: contact.NewContactRoutesManager(logger, sm.ContactService),
		adminRoutes: admin.NewAdminRoutesManager(
			logger,
			sm.ProductService,
			sm.CatalogService,
			sm.InventoryService,
			sm.OrderService,
			sm.QuoteService,
			sm.ContactService,
			sm.DashboardService,
			sm.DocumentService,
			sm.UploadService,
			mw,
		),
		debugRoutes: debug.NewDebugRoutesManager(sm.CacheService, mw),
	}
}

// RegisterRoutes mounts every route group under the /api prefix.
func (rm *routerManager) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		rm.healthRoutes.RegisterRoutes(r)
		rm.productRoutes.RegisterRoutes(r)
		rm.catalogRoutes.RegisterRoutes(r)
		rm.authRoutes.RegisterRoutes(r)
		rm.orderRoutes.RegisterRoutes(r)
		rm.quoteRoutes.RegisterRoutes(r)
		rm.contactRoutes.RegisterRoutes(r)
		rm.adminRoutes.RegisterRoutes(r)
		rm.debugRoutes.RegisterRoutes(r)
	})
}
