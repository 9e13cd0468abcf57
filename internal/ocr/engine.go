package ocr

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
)

// PSMSingleBlock is Tesseract page segmentation mode 6, a single uniform
// block of text. Every region uses it: each input is one field crop.
const PSMSingleBlock = 6

// ErrEngineNotFound marks a Tesseract binary that cannot be located at
// the resolved path.
var ErrEngineNotFound = errors.New("tesseract not found")

// Options configure a single recognition call.
type Options struct {
	// Language is the Tesseract language model tag, e.g. "eng" or "jpn".
	Language string
	// PageSegMode is the tesseract --psm value.
	PageSegMode int
}

// Engine recognizes text in a preprocessed binary image.
type Engine interface {
	Recognize(ctx context.Context, img *image.Gray, opts Options) (string, error)
}

// New selects an engine by the configured kind. tesseractPath is only
// consulted for the exec engine.
func New(kind, tesseractPath string) (Engine, error) {
	switch kind {
	case "library":
		return NewLibraryEngine(), nil
	default:
		return NewExecEngine(tesseractPath)
	}
}

// writeTempPNG hands an in-memory image to Tesseract, which wants a file
// path. The caller removes the file when done.
func writeTempPNG(img *image.Gray) (string, error) {
	f, err := os.CreateTemp("", "bankcap-region-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
