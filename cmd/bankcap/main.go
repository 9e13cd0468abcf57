package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ironsheep/bankcap/internal/capture"
	"github.com/ironsheep/bankcap/internal/config"
	"github.com/ironsheep/bankcap/internal/normalize"
	"github.com/ironsheep/bankcap/internal/ocr"
	"github.com/ironsheep/bankcap/internal/pipeline"
	"github.com/ironsheep/bankcap/internal/preview"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit codes distinguish the fatal error kinds for callers scripting the
// tool.
const (
	exitOK = iota
	exitFailure
	exitConfigMissing
	exitWindowNotFound
	exitEngineNotFound
)

func main() {
	// Handle --version and -v flags before anything else
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("bankcap %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		configPath  = flag.String("config", "", "path to config.ini (default: next to the executable)")
		previewMode = flag.Bool("preview", false, "capture the window and save a region calibration overlay instead of running OCR")
		debug       = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	// stdout carries the OCR result; all logging goes to stderr.
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(*configPath, *previewMode); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(classify(err))
	}
}

// classify maps fatal error kinds onto exit codes.
func classify(err error) int {
	switch {
	case errors.Is(err, config.ErrMissing):
		return exitConfigMissing
	case errors.Is(err, capture.ErrWindowNotFound):
		return exitWindowNotFound
	case errors.Is(err, ocr.ErrEngineNotFound):
		return exitEngineNotFound
	default:
		return exitFailure
	}
}

func run(configPath string, previewMode bool) error {
	baseDir, err := executableDir()
	if err != nil {
		return err
	}
	if configPath == "" {
		configPath = filepath.Join(baseDir, "config.ini")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	locator := capture.NewLocator()
	window, err := locator.Find(cfg.WindowTitle)
	if err != nil {
		return err
	}
	if err := locator.Activate(window); err != nil {
		// The window may already be frontmost or refuse focus; capture
		// still has a chance of seeing it, so keep going.
		log.Warn().Err(err).Msg("could not activate window")
	}

	grabber := capture.NewScreenGrabber()

	if previewMode {
		return writePreview(grabber, window, cfg, baseDir)
	}

	engine, err := ocr.New(cfg.Engine, cfg.ResolveTesseract(baseDir))
	if err != nil {
		return err
	}

	captures := capture.GrabRegions(grabber, window.Bounds.Min, cfg.Regions)
	raw := pipeline.New(engine).Extract(context.Background(), captures, cfg.Profiles)
	result := normalize.Normalize(raw, cfg.Corrections)

	outPath := cfg.OutputPath(baseDir)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(result), 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	log.Info().Str("file", outPath).Msg("result written")

	fmt.Println(result)
	return nil
}

// writePreview saves a calibration overlay of the whole window with the
// configured regions outlined.
func writePreview(grabber capture.Grabber, window *capture.Window, cfg *config.Config, baseDir string) error {
	img, err := grabber.Grab(window.Bounds)
	if err != nil {
		return fmt.Errorf("capture window for preview: %w", err)
	}
	overlay := preview.Render(img, cfg.Regions)

	outPath := filepath.Join(baseDir, "output", "preview.png")
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := preview.Save(overlay, outPath); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}
	log.Info().Str("file", outPath).Msg("preview written")
	return nil
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
