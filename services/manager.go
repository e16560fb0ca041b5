package services

import (
	"treeuniformes_server/database"
	"treeuniformes_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService      *AuthService
	EmailService     *EmailService
	CacheService     *CacheService
	HealthService    *HealthService
	ProductService   *ProductService
	CatalogService   *CatalogService
	InventoryService *InventoryService
	OrderService     *OrderService
	QuoteService     *QuoteService
	ContactService   *ContactService
	UploadService    *UploadService
	DashboardService *DashboardService
	DocumentService  *DocumentService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) (*ServiceManager, error) {
	cacheService := NewCacheService(logger, cfg)
	authService := NewAuthService(cfg, logger, db, cacheService)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db, cacheService)
	productService := NewProductService(logger, db, cacheService)
	catalogService := NewCatalogService(logger, db, cacheService)
	inventoryService := NewInventoryService(logger, db)
	orderService := NewOrderService(logger, cfg, db, inventoryService, emailService)
	quoteService := NewQuoteService(logger, cfg, db, emailService)
	contactService := NewContactService(logger, db, emailService)
	dashboardService := NewDashboardService(logger, db)
	documentService := NewDocumentService(logger, cfg)

	uploadService, err := NewUploadService(logger, cfg)
	if err != nil {
		return nil, err
	}

	return &ServiceManager{
		AuthService:      authService,
		EmailService:     emailService,
		CacheService:     cacheService,
		HealthService:    healthService,
		ProductService:   productService,
		CatalogService:   catalogService,
		InventoryService: inventoryService,
		OrderService:     orderService,
		QuoteService:     quoteService,
		ContactService:   contactService,
		UploadService:    uploadService,
		DashboardService: dashboardService,
		DocumentService:  documentService,
	}, nil
}
