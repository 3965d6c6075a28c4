package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"
)

// Tipos aceptados para fotos de evidencia. La decisión se toma sobre los
// magic numbers del contenido, no sobre la extensión del nombre.
var allowedPhotoMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
}

// ValidateEvidencePhoto verifica tamaño y tipo real del archivo. El cursor
// de lectura queda al inicio para que el caller pueda subir el archivo.
func ValidateEvidencePhoto(fileHeader *multipart.FileHeader, file io.ReadSeeker, maxSizeBytes int64) error {
	if maxSizeBytes > 0 && fileHeader.Size > maxSizeBytes {
		return fmt.Errorf("la foto %q pesa %.2f MB y el límite es %.2f MB",
			fileHeader.Filename,
			float64(fileHeader.Size)/1024/1024,
			float64(maxSizeBytes)/1024/1024)
	}

	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil && err != io.EOF {
		return fmt.Errorf("no se pudo leer la foto %q", fileHeader.Filename)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("no se pudo procesar la foto %q", fileHeader.Filename)
	}

	mimeType := http.DetectContentType(buffer)
	if !slices.Contains(allowedPhotoMimeTypes, mimeType) {
		return fmt.Errorf("formato no permitido para %q: %s", fileHeader.Filename, mimeType)
	}
	return nil
}
