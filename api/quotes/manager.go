package quotes

import (
	"treeuniformes_server/api/middleware"
	"treeuniformes_server/services"
	"treeuniformes_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type QuoteRoutesManager struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	quoteService    *services.QuoteService
	documentService *services.DocumentService
	mw              *middleware.Middleware
}

func NewQuoteRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	quoteService *services.QuoteService,
	documentService *services.DocumentService,
	mw *middleware.Middleware,
) *QuoteRoutesManager {
	return &QuoteRoutesManager{
		logger:          logger,
		cfg:             cfg,
		quoteService:    quoteService,
		documentService: documentService,
		mw:              mw,
	}
}

func (qrm *QuoteRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/quotes", func(r chi.Router) {
		r.Post("/", qrm.CreateQuote)

		// The quote id is only known to whoever requested the quote
		r.Get("/{id}/export", qrm.ExportQuote)

		// Quote history for the logged in customer
		r.Group(func(r chi.Router) {
			r.Use(qrm.mw.UserAuthMiddleware)
			r.Get("/me", qrm.GetMyQuotes)
		})
	})
}
