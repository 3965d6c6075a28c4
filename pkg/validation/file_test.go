package validation

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Cabecera PNG mínima; DetectContentType decide por los magic numbers.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func header(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestValidateEvidencePhoto_PNGValido(t *testing.T) {
	file := bytes.NewReader(pngHeader)
	err := ValidateEvidencePhoto(header("foto.png", int64(len(pngHeader))), file, 10<<20)
	assert.NoError(t, err)

	// El cursor queda al inicio para la subida posterior.
	pos, _ := file.Seek(0, 1)
	assert.Equal(t, int64(0), pos)
}

func TestValidateEvidencePhoto_RechazaTipoNoPermitido(t *testing.T) {
	file := bytes.NewReader([]byte("%PDF-1.7 contenido"))
	err := ValidateEvidencePhoto(header("doc.pdf", 18), file, 10<<20)
	assert.Error(t, err)
}

func TestValidateEvidencePhoto_RechazaArchivoGrande(t *testing.T) {
	file := bytes.NewReader(pngHeader)
	err := ValidateEvidencePhoto(header("foto.png", 20<<20), file, 10<<20)
	assert.Error(t, err)
}
