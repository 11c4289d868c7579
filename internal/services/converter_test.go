package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-resume-expert/internal/models"
)

type fakeRenderer struct {
	pages  []image.Image
	err    error
	status ToolchainStatus
	calls  int
	probes int
}

func (f *fakeRenderer) RenderPages(ctx context.Context, pdfData []byte) ([]image.Image, error) {
	f.calls++
	return f.pages, f.err
}

func (f *fakeRenderer) Probe() ToolchainStatus {
	f.probes++
	return f.status
}

func solidPage(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func decodePayload(t *testing.T, payload models.ImagePayload) image.Image {
	t.Helper()

	raw, err := base64.StdEncoding.DecodeString(payload.Data)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestConverter_SelectsFirstPage(t *testing.T) {
	for _, pageCount := range []int{1, 2, 5} {
		pages := []image.Image{solidPage(red)}
		for i := 1; i < pageCount; i++ {
			pages = append(pages, solidPage(blue))
		}
		renderer := &fakeRenderer{pages: pages, status: ToolchainStatus{Available: true}}
		converter := NewConverterService(NewPDFParserService(), renderer, 90)

		payload, err := converter.Convert(context.Background(), &models.UploadedDocument{
			Filename: "resume.pdf",
			Data:     buildTestPDF(pageCount),
		})
		require.NoError(t, err)

		assert.Equal(t, "image/jpeg", payload.MimeType)

		r, g, b, _ := decodePayload(t, payload).At(16, 16).RGBA()
		assert.Greater(t, r>>8, uint32(200), "page count %d", pageCount)
		assert.Less(t, g>>8, uint32(60), "page count %d", pageCount)
		assert.Less(t, b>>8, uint32(60), "page count %d", pageCount)
	}
}

func TestConverter_IgnoresLaterPages(t *testing.T) {
	renderer := &fakeRenderer{
		pages:  []image.Image{solidPage(green), solidPage(red), solidPage(blue)},
		status: ToolchainStatus{Available: true},
	}
	converter := NewConverterService(NewPDFParserService(), renderer, 0)

	payload, err := converter.Convert(context.Background(), &models.UploadedDocument{Data: buildTestPDF(3)})
	require.NoError(t, err)

	r, g, _, _ := decodePayload(t, payload).At(0, 0).RGBA()
	assert.Greater(t, g>>8, uint32(200))
	assert.Less(t, r>>8, uint32(60))
}

func TestConverter_Errors(t *testing.T) {
	ctx := context.Background()
	renderFailure := errors.New("pdftoppm failed: exit status 1")

	tests := []struct {
		name       string
		doc        *models.UploadedDocument
		renderer   *fakeRenderer
		wantErr    error
		wantKind   string
		wantRender bool
	}{
		{
			name:     "nil document",
			doc:      nil,
			renderer: &fakeRenderer{},
			wantErr:  ErrMissingInput,
		},
		{
			name:     "empty document",
			doc:      &models.UploadedDocument{Filename: "resume.pdf", Data: []byte{}},
			renderer: &fakeRenderer{},
			wantErr:  ErrEmptyDocument,
			wantKind: "conversion",
		},
		{
			name:       "corrupted bytes",
			doc:        &models.UploadedDocument{Data: []byte("corrupted bytes, not a pdf")},
			renderer:   &fakeRenderer{err: renderFailure},
			wantErr:    renderFailure,
			wantKind:   "conversion",
			wantRender: true,
		},
		{
			name:       "document without pages",
			doc:        &models.UploadedDocument{Data: buildTestPDF(0)},
			renderer:   &fakeRenderer{},
			wantErr:    ErrEmptyDocument,
			wantKind:   "conversion",
			wantRender: true,
		},
		{
			name:       "renderer failure",
			doc:        &models.UploadedDocument{Data: buildTestPDF(1)},
			renderer:   &fakeRenderer{err: renderFailure},
			wantErr:    renderFailure,
			wantKind:   "conversion",
			wantRender: true,
		},
		{
			name:       "renderer produced nothing",
			doc:        &models.UploadedDocument{Data: buildTestPDF(1)},
			renderer:   &fakeRenderer{},
			wantErr:    ErrEmptyDocument,
			wantKind:   "conversion",
			wantRender: true,
		},
		{
			name:       "toolchain missing",
			doc:        &models.UploadedDocument{Data: buildTestPDF(1)},
			renderer:   &fakeRenderer{err: &ToolNotFoundError{Tool: "pdftoppm"}},
			wantKind:   "tool",
			wantRender: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converter := NewConverterService(NewPDFParserService(), tt.renderer, 90)

			payload, err := converter.Convert(ctx, tt.doc)

			require.Error(t, err)
			assert.Empty(t, payload.Data)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			var (
				conversion *ConversionError
				notFound   *ToolNotFoundError
			)
			switch tt.wantKind {
			case "conversion":
				assert.True(t, errors.As(err, &conversion))
				assert.NotEmpty(t, conversion.Err.Error())
			case "tool":
				assert.True(t, errors.As(err, &notFound))
				assert.False(t, errors.As(err, &conversion))
			}

			if tt.wantRender {
				assert.Equal(t, 1, tt.renderer.calls)
			} else {
				assert.Zero(t, tt.renderer.calls)
			}
		})
	}
}

func TestConverter_UnavailableToolchainStillAttempts(t *testing.T) {
	renderer := &fakeRenderer{
		pages:  []image.Image{solidPage(red)},
		status: ToolchainStatus{Err: errors.New("pdftoppm not found in PATH")},
	}
	converter := NewConverterService(NewPDFParserService(), renderer, 90)

	payload, err := converter.Convert(context.Background(), &models.UploadedDocument{Data: buildTestPDF(1)})
	require.NoError(t, err)

	assert.Equal(t, 1, renderer.calls)
	assert.Equal(t, "image/jpeg", payload.MimeType)
}

func TestConverter_RendersDocumentsTheParserRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "trailing garbage after EOF marker",
			data: append(buildTestPDF(1), bytes.Repeat([]byte(" "), 2048)...),
		},
		{
			name: "stale cross-reference offsets",
			data: shiftedXrefPDF(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, inspectErr := NewPDFParserService().Inspect(tt.data)
			require.Error(t, inspectErr)

			renderer := &fakeRenderer{pages: []image.Image{solidPage(red)}, status: ToolchainStatus{Available: true}}
			converter := NewConverterService(NewPDFParserService(), renderer, 90)

			payload, err := converter.Convert(context.Background(), &models.UploadedDocument{Filename: "resume.pdf", Data: tt.data})
			require.NoError(t, err)

			assert.Equal(t, 1, renderer.calls)
			assert.Equal(t, "image/jpeg", payload.MimeType)
		})
	}
}

func TestConverter_ProbesToolchainOnce(t *testing.T) {
	renderer := &fakeRenderer{pages: []image.Image{solidPage(red)}, status: ToolchainStatus{Available: true}}
	converter := NewConverterService(NewPDFParserService(), renderer, 90)

	for i := 0; i < 3; i++ {
		_, err := converter.Convert(context.Background(), &models.UploadedDocument{Data: buildTestPDF(1)})
		require.NoError(t, err)
	}

	assert.Equal(t, 1, renderer.probes)
	assert.Equal(t, 3, renderer.calls)
}
