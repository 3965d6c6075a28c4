package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"bordados-backend/internal/services"
	"bordados-backend/pkg/validation"
)

// evidenceFromForm abre y valida los archivos del campo "photos" del
// multipart. El caller DEBE invocar el closer cuando termina con los
// readers.
func evidenceFromForm(ctx echo.Context, maxFileSize int64) ([]services.EvidenceFile, func(), error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		// Sin multipart no hay fotos; el JSON puro también es válido.
		return nil, func() {}, nil
	}

	headers := form.File["photos"]
	files := make([]services.EvidenceFile, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))

	closer := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, h := range headers {
		src, err := h.Open()
		if err != nil {
			closer()
			return nil, func() {}, err
		}
		opened = append(opened, src)

		if err := validation.ValidateEvidencePhoto(h, src, maxFileSize); err != nil {
			closer()
			return nil, func() {}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		files = append(files, services.EvidenceFile{Reader: src, Filename: h.Filename})
	}
	return files, closer, nil
}
