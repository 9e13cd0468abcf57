package ocr

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/otiai10/gosseract/v2"
)

// LibraryEngine recognizes text through gosseract's native Tesseract
// bindings. It uses the system Tesseract installation and its default
// tessdata; no binary path is involved.
type LibraryEngine struct{}

// NewLibraryEngine creates a gosseract-backed engine. Client construction
// is deferred to each call: gosseract clients are not safe to reuse
// across language changes.
func NewLibraryEngine() *LibraryEngine {
	return &LibraryEngine{}
}

// Recognize runs Tesseract over the image via a temporary PNG.
func (e *LibraryEngine) Recognize(_ context.Context, img *image.Gray, opts Options) (string, error) {
	inFile, err := writeTempPNG(img)
	if err != nil {
		return "", err
	}
	defer os.Remove(inFile)

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(opts.Language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(opts.PageSegMode)); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetVariable("preserve_interword_spaces", "1"); err != nil {
		return "", fmt.Errorf("failed to set variable: %w", err)
	}
	if err := client.SetImage(inFile); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}
