package auth

import (
	"net/http"
	"treeuniformes_server/lib"

	"github.com/MonkyMars/gecho"
)

// HandleRefresh rotates the token pair using the refresh token cookie.
func (arm *AuthRoutesManager) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err != nil {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.missingRefreshToken"),
			gecho.Send(),
		)
		return
	}

	authResponse, err := arm.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		arm.logger.Warn("Token refresh failed", gecho.Field("error", err))
		lib.ClearCookie(w, lib.AccessCookieName)
		lib.ClearCookie(w, lib.RefreshCookieName)
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidRefreshToken"),
			gecho.Send(),
		)
		return
	}

	lib.SetCookie(w, lib.RefreshCookieName, authResponse.RefreshToken, arm.cfg.Auth.RefreshTokenExpiry)
	lib.SetCookie(w, lib.AccessCookieName, authResponse.AccessToken, arm.cfg.Auth.AccessTokenExpiry)

	gecho.Success(w,
		gecho.WithMessage("success.auth.refreshed"),
		gecho.WithData(authResponse.User),
		gecho.Send(),
	)
}
