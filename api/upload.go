package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/pranishr/portfolio-api/errs"
	"github.com/pranishr/portfolio-api/models"
)

// Upload limits. Files are buffered in memory and stored inline in the
// document, so both are kept modest.
const (
	maxMultipartMemory = 10 << 20
	maxUploadBytes     = 8 << 20
)

// formFile reads a single optional file from a multipart form. Returns
// (nil, nil) when the field is absent.
func formFile(r *http.Request, field string) (*models.Blob, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewMalformedPayloadError("multipart", err)
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		return nil, errs.NewMaxBodySizeExceededError(maxUploadBytes)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errs.NewMalformedPayloadError("multipart", err)
	}

	return &models.Blob{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}, nil
}

// formImage reads a single optional image upload, rejecting any non-image
// mime type.
func formImage(r *http.Request, field string) (*models.Blob, error) {
	blob, err := formFile(r, field)
	if err != nil || blob == nil {
		return blob, err
	}

	if !strings.HasPrefix(blob.ContentType, "image/") {
		return nil, errs.NewUnsupportedMediaTypeError(blob.ContentType, []string{"image/*"})
	}
	return blob, nil
}

// splitCSV splits a comma-separated field into trimmed parts, dropping
// empty entries. Order and case are preserved.
func splitCSV(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
