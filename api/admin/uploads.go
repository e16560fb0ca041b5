package admin

import (
	"net/http"
	"treeuniformes_server/handling"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs"

	"github.com/MonkyMars/gecho"
)

// PresignUpload hands out a short lived S3 PUT URL for product images.
// The client uploads directly to the bucket and stores the public URL
// on the product.
func (ar *AdminRoutesManager) PresignUpload(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.UploadRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.uploads.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	upload, err := ar.uploadService.PresignUpload(r.Context(), body)
	if err != nil {
		handling.HandleError(err, "error.uploads.failedToPresign", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(upload),
		gecho.Send(),
	)
}
