package orders

import (
	"treeuniformes_server/api/middleware"
	"treeuniformes_server/services"
	"treeuniformes_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	orderService    *services.OrderService
	documentService *services.DocumentService
	mw              *middleware.Middleware
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	orderService *services.OrderService,
	documentService *services.DocumentService,
	mw *middleware.Middleware,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:          logger,
		cfg:             cfg,
		orderService:    orderService,
		documentService: documentService,
		mw:              mw,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		// Guest checkout, authentication optional
		r.Post("/", orm.Checkout)

		// Public order tracking by order number
		r.Get("/number/{orderNumber}", orm.TrackOrder)
		r.Get("/number/{orderNumber}/export", orm.ExportOrder)

		// Order history for the logged in customer
		r.Group(func(r chi.Router) {
			r.Use(orm.mw.UserAuthMiddleware)
			r.Get("/me", orm.GetMyOrders)
		})
	})
}
