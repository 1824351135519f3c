package utils

import (
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
)

// ImageFile is an uploaded image read fully into memory, with the content
// type detected from the bytes rather than trusted from the client header.
type ImageFile struct {
	Data        []byte
	Filename    string
	ContentType string
	Ext         string
}

var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

// ReadImageFile extracts the uploaded image from the given multipart field.
// errField is the form field name used in the error map (the client binds
// upload errors to its "imageUrl" input, not the multipart part name).
// The size limit is enforced before the whole body is buffered, so an
// oversized upload never occupies more than maxBytes+1 in memory.
func ReadImageFile(r *http.Request, field, errField string, maxBytes int64) (*ImageFile, *AppError) {
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, NewUploadError("Image is required", map[string]string{
			errField: "Image is required",
		})
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, NewUploadError("Image is required", map[string]string{
			errField: "Image is required",
		})
	}
	defer file.Close()

	if header.Size > maxBytes {
		return nil, NewUploadError(header.Filename+" size too large", map[string]string{
			errField: header.Filename + " size too large",
		})
	}

	// Read one byte past the limit to catch clients lying about Size.
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, NewUploadError("Failed to read uploaded file", nil)
	}
	if int64(len(data)) > maxBytes {
		return nil, NewUploadError(header.Filename+" size too large", map[string]string{
			errField: header.Filename + " size too large",
		})
	}

	// Sniff the actual content, never trust the declared MIME type.
	detected := mimetype.Detect(data)
	ext, ok := allowedImageTypes[detected.String()]
	if !ok {
		return nil, NewUploadError("Invalid image format", map[string]string{
			errField: "Only PNG and JPEG images are allowed",
		})
	}

	return &ImageFile{
		Data:        data,
		Filename:    header.Filename,
		ContentType: detected.String(),
		Ext:         ext,
	}, nil
}
