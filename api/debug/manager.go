package debug

import (
	"treeuniformes_server/api/middleware"
	"treeuniformes_server/config"
	"treeuniformes_server/services"

	"github.com/go-chi/chi/v5"
)

type DebugRoutesManager struct {
	cacheService *services.CacheService
	mw           *middleware.Middleware
}

func NewDebugRoutesManager(cacheService *services.CacheService, mw *middleware.Middleware) *DebugRoutesManager {
	return &DebugRoutesManager{
		cacheService: cacheService,
		mw:           mw,
	}
}

func (drm *DebugRoutesManager) RegisterRoutes(r chi.Router) {
	// Debug routes are not available in production
	if !config.IsProduction() {
		r.Route("/debug", func(r chi.Router) {
			r.Post("/cache/clear", drm.ClearCache)
			r.Get("/ratelimit", drm.GetRateLimitStatus)
		})
	}
}
