package auth

import (
	"errors"
	"net/http"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs"
	"treeuniformes_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.auth.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	user, err := arm.authService.Register(body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.auth.emailAlreadyRegistered"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Registration failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.auth.registrationFailed"),
			gecho.Send(),
		)
		return
	}

	// Welcome email, non blocking
	go func(u tables.User) {
		if err := arm.emailService.SendWelcomeEmail(&u); err != nil {
			arm.logger.Error("Failed to send welcome email", gecho.Field("error", err), gecho.Field("userID", u.Id))
		}
	}(*user)

	gecho.Success(w,
		gecho.WithMessage("success.auth.registered"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
