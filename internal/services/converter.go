package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"log"

	"alfredoptarigan/ats-resume-expert/internal/models"
)

const payloadMimeType = "image/jpeg"

type ConverterService interface {
	Convert(ctx context.Context, doc *models.UploadedDocument) (models.ImagePayload, error)
}

type converterService struct {
	pdfParser PDFParserService
	renderer  PageRenderer
	toolchain ToolchainStatus
	quality   int
}

func NewConverterService(pdfParser PDFParserService, renderer PageRenderer, quality int) ConverterService {
	if quality <= 0 || quality > 100 {
		quality = jpeg.DefaultQuality
	}

	return &converterService{
		pdfParser: pdfParser,
		renderer:  renderer,
		toolchain: renderer.Probe(),
		quality:   quality,
	}
}

// Convert renders the first page of doc and returns it as a base64 JPEG payload.
func (s *converterService) Convert(ctx context.Context, doc *models.UploadedDocument) (models.ImagePayload, error) {
	if doc == nil {
		return models.ImagePayload{}, ErrMissingInput
	}
	if len(doc.Data) == 0 {
		return models.ImagePayload{}, &ConversionError{Err: ErrEmptyDocument}
	}

	// Toolchain status is probed once; conversion is attempted either way.
	if !s.toolchain.Available {
		log.Printf("⚠️  Poppler is not installed or not in PATH: %v\n", s.toolchain.Err)
	}

	// Inspection is advisory; the renderer decides whether the document converts.
	if info, err := s.pdfParser.Inspect(doc.Data); err != nil {
		log.Printf("⚠️  Could not inspect %q, rendering anyway: %v\n", doc.Filename, err)
	} else {
		log.Printf("📄 %q has %d page(s)\n", doc.Filename, info.PageCount)
	}

	pages, err := s.renderer.RenderPages(ctx, doc.Data)
	if err != nil {
		var notFound *ToolNotFoundError
		if errors.As(err, &notFound) {
			return models.ImagePayload{}, notFound
		}
		return models.ImagePayload{}, &ConversionError{Err: err}
	}
	if len(pages) == 0 {
		return models.ImagePayload{}, &ConversionError{Err: ErrEmptyDocument}
	}

	data, err := encodeJPEG(pages[0], s.quality)
	if err != nil {
		return models.ImagePayload{}, &ConversionError{Err: err}
	}

	return models.ImagePayload{
		MimeType: payloadMimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode page as JPEG: %w", err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("encoded page is empty")
	}
	return buf.Bytes(), nil
}
