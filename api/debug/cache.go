package debug

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ClearCache flushes the entire cache. Development only.
func (drm *DebugRoutesManager) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := drm.cacheService.ClearAll(); err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to clear cache"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cache cleared"),
		gecho.Send(),
	)
}

// GetRateLimitStatus returns the current rate limit counter for the caller.
func (drm *DebugRoutesManager) GetRateLimitStatus(w http.ResponseWriter, r *http.Request) {
	endpoint := r.URL.Query().Get("endpoint")
	if endpoint == "" {
		endpoint = "/api"
	}

	status, err := drm.mw.GetRateLimitStatus(r, endpoint)
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch rate limit status"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(status),
		gecho.Send(),
	)
}
