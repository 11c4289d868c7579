package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"alfredoptarigan/ats-resume-expert/internal/models"
)

// ReadUpload loads an uploaded résumé into memory. A nil header means no
// file was submitted and yields ErrMissingInput. An empty file is still a
// document; conversion rejects it.
func ReadUpload(file *multipart.FileHeader, maxFileSize int64) (*models.UploadedDocument, error) {
	if file == nil {
		return nil, ErrMissingInput
	}

	// Validate file extensions
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if maxFileSize > 0 && file.Size > maxFileSize {
		return nil, fmt.Errorf("%w. Max size: %d bytes", ErrFileTooLarge, maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}

	return &models.UploadedDocument{
		Filename:    file.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
