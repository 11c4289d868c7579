package services

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	pdftoppmBinary = "pdftoppm"
	pdfinfoBinary  = "pdfinfo"
)

// Toolchain locates the Poppler binaries. BinDir is resolved once at startup
// from configuration; when it is empty the binaries are searched on PATH.
type Toolchain struct {
	BinDir string
}

// ToolchainStatus is the result of an availability probe.
type ToolchainStatus struct {
	Available bool
	Pdftoppm  string
	Pdfinfo   string
	Version   string
	Err       error
}

func NewToolchain(binDir string) Toolchain {
	return Toolchain{BinDir: strings.TrimSpace(binDir)}
}

// Lookup resolves the absolute path of one toolchain binary.
func (t Toolchain) Lookup(name string) (string, error) {
	candidate := name
	if t.BinDir != "" {
		candidate = filepath.Join(t.BinDir, name)
	}

	path, err := exec.LookPath(candidate)
	if err != nil {
		notFound := &ToolNotFoundError{Tool: name, Err: err}
		if t.BinDir != "" {
			notFound.Path = candidate
		}
		return "", notFound
	}

	return path, nil
}

// Probe checks whether the rendering toolchain can be used. It has no side
// effects beyond running `pdftoppm -v`; reporting is left to the caller.
func (t Toolchain) Probe() ToolchainStatus {
	var status ToolchainStatus

	pdftoppm, err := t.Lookup(pdftoppmBinary)
	if err != nil {
		status.Err = err
		return status
	}
	status.Pdftoppm = pdftoppm

	// pdfinfo is only reported; rendering does not need it.
	if pdfinfo, err := t.Lookup(pdfinfoBinary); err == nil {
		status.Pdfinfo = pdfinfo
	}

	status.Available = true
	status.Version = toolVersion(pdftoppm)
	return status
}

func toolVersion(path string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Poppler prints its version banner on stderr and exits 0 or 99
	// depending on the release.
	out, err := exec.CommandContext(ctx, path, "-v").CombinedOutput()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return ""
	}

	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(line)
}
