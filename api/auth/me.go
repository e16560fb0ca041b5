package auth

import (
	"net/http"
	"treeuniformes_server/lib"

	"github.com/MonkyMars/gecho"
)

// HandleMe returns the profile of the logged in user.
func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, err := lib.ExtractClaims(r, arm.cfg.Auth.AccessTokenSecret)
	if err != nil {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.unauthorized"),
			gecho.Send(),
		)
		return
	}

	user, err := arm.authService.GetUserByID(claims.Sub)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.Unauthorized(w,
				gecho.WithMessage("error.auth.unknownUser"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to fetch user", gecho.Field("error", err), gecho.Field("userID", claims.Sub))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.auth.failedToFetchUser"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}
