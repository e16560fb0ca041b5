package contact

import (
	"net/http"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs"

	"github.com/MonkyMars/gecho"
)

func (crm *ContactRoutesManager) CreateMessage(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ContactMessageRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.contact.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	msg, err := crm.contactService.CreateMessage(r.Context(), body)
	if err != nil {
		crm.logger.Error("Failed to store contact message", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.contact.creationFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.contact.created"),
		gecho.WithData(map[string]any{"id": msg.Id}),
		gecho.Send(),
	)
}
