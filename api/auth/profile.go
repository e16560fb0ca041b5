package auth

import (
	"net/http"
	"treeuniformes_server/api/middleware"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleUpdateProfile applies a partial update to the user's profile
// and default shipping address.
func (arm *AuthRoutesManager) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.unauthorized"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProfileRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.auth.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	user, err := arm.authService.UpdateProfile(claims.Sub, body)
	if err != nil {
		arm.logger.Error("Failed to update profile", gecho.Field("error", err), gecho.Field("userID", claims.Sub))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.auth.failedToUpdateProfile"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.auth.profileUpdated"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
