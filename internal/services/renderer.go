package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// PageRenderer rasterizes every page of a PDF document, in page order.
type PageRenderer interface {
	RenderPages(ctx context.Context, pdfData []byte) ([]image.Image, error)
	Probe() ToolchainStatus
}

type popplerRenderer struct {
	toolchain Toolchain
	dpi       int
}

func NewPopplerRenderer(toolchain Toolchain, dpi int) PageRenderer {
	if dpi <= 0 {
		dpi = 150
	}

	return &popplerRenderer{
		toolchain: toolchain,
		dpi:       dpi,
	}
}

func (r *popplerRenderer) Probe() ToolchainStatus {
	return r.toolchain.Probe()
}

// RenderPages implements PageRenderer by shelling out to pdftoppm.
func (r *popplerRenderer) RenderPages(ctx context.Context, pdfData []byte) ([]image.Image, error) {
	pdftoppm, err := r.toolchain.Lookup(pdftoppmBinary)
	if err != nil {
		return nil, err
	}

	workDir, err := os.MkdirTemp("", "resume-render-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create render directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	inputPath := filepath.Join(workDir, "input.pdf")
	if err := os.WriteFile(inputPath, pdfData, 0600); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	prefix := filepath.Join(workDir, "page")
	cmd := exec.CommandContext(ctx, pdftoppm, "-png", "-r", strconv.Itoa(r.dpi), inputPath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return nil, &ToolNotFoundError{Tool: pdftoppmBinary, Path: pdftoppm, Err: err}
		}
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return nil, fmt.Errorf("pdftoppm failed: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("pdftoppm failed: %w", err)
	}

	return collectPages(workDir, "page")
}

// collectPages decodes the PNG files pdftoppm wrote as <prefix>-<n>.png.
// pdftoppm zero-pads page numbers to a common width, so lexical order is
// page order.
func collectPages(dir, prefix string) ([]image.Image, error) {
	files, err := filepath.Glob(filepath.Join(dir, prefix+"-*.png"))
	if err != nil {
		return nil, fmt.Errorf("failed to list rendered pages: %w", err)
	}
	sort.Strings(files)

	pages := make([]image.Image, 0, len(files))
	for _, file := range files {
		img, err := decodePNG(file)
		if err != nil {
			return nil, err
		}
		pages = append(pages, img)
	}

	return pages, nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rendered page: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rendered page %s: %w", filepath.Base(path), err)
	}

	return img, nil
}
