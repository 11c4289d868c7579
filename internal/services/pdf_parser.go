package services

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

var ErrEmptyDocument = errors.New("document is empty")

type PDFParserService interface {
	Inspect(data []byte) (*PDFInfo, error)
}

type PDFInfo struct {
	PageCount int
	Size      int64
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// Inspect opens the document in memory and reports its page count. The
// parser is stricter than Poppler, so a failure here does not mean the
// document cannot be rendered.
func (p *pdfParserService) Inspect(data []byte) (info *PDFInfo, err error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}

	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			info = nil
			err = fmt.Errorf("failed to read PDF: %v", r)
		}
	}()

	size := int64(len(data))
	r, err := pdf.NewReader(bytes.NewReader(data), size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	totalPage := r.NumPage()
	if totalPage == 0 {
		return nil, ErrEmptyDocument
	}

	return &PDFInfo{
		PageCount: totalPage,
		Size:      size,
	}, nil
}
