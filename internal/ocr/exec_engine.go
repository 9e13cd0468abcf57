package ocr

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ExecEngine calls the tesseract binary via exec.
type ExecEngine struct {
	path string
}

// NewExecEngine validates that a tesseract binary exists at path. The
// path has already gone through bundled-versus-configured resolution; a
// miss here is fatal for the run and reported with the attempted path.
func NewExecEngine(path string) (*ExecEngine, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no path configured", ErrEngineNotFound)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w at %s", ErrEngineNotFound, path)
	}
	return &ExecEngine{path: path}, nil
}

// Recognize writes the image to a temp file, runs tesseract on it, and
// reads back the .txt sidecar tesseract produces next to the output base.
func (e *ExecEngine) Recognize(ctx context.Context, img *image.Gray, opts Options) (string, error) {
	inFile, err := writeTempPNG(img)
	if err != nil {
		return "", err
	}
	defer os.Remove(inFile)

	outBase := strings.TrimSuffix(inFile, ".png")
	outFile := outBase + ".txt"
	defer os.Remove(outFile)

	args := e.args(inFile, outBase, opts)
	log.Debug().Str("component", "ocr").Str("binary", e.path).Strs("args", args).Msg("exec tesseract")

	cmd := exec.CommandContext(ctx, e.path, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tesseract failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	text, err := os.ReadFile(outFile)
	if err != nil {
		return "", fmt.Errorf("read tesseract output: %w", err)
	}
	return string(text), nil
}

// args builds the tesseract command line: input, output base, then the
// mode, language, and config-variable flags.
func (e *ExecEngine) args(inFile, outBase string, opts Options) []string {
	return []string{
		inFile,
		outBase,
		"--psm", strconv.Itoa(opts.PageSegMode),
		"-l", opts.Language,
		"-c", "preserve_interword_spaces=1",
	}
}
