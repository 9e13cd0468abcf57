// Package config loads and validates the tool's config.ini.
//
// The file supplies the target window title, the OCR engine selection and
// binary path, the four capture rectangles, per-region preprocessing
// profiles, and the ordered correction table. Required keys are checked
// at load time so a broken configuration aborts the run before any
// capture is attempted.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/ironsheep/bankcap/internal/field"
	"github.com/ironsheep/bankcap/internal/prep"
)

// ErrMissing marks a missing configuration file or required key.
var ErrMissing = errors.New("configuration missing")

// Engine kinds selectable via [OCR] Engine.
const (
	EngineExec    = "exec"
	EngineLibrary = "library"
)

// Rect is a capture rectangle relative to the target window's top-left
// corner.
type Rect struct {
	X, Y, W, H int
}

// Profile is one region's preprocessing settings plus its OCR language.
type Profile struct {
	prep.Profile
	Language string
}

// Correction is one ordered find/replace rule. Rules are applied to the
// joined result line as literal substring replaces, in file order;
// earlier rules may produce substrings matched by later ones.
type Correction struct {
	Wrong, Right string
}

// Config is the validated content of config.ini.
type Config struct {
	WindowTitle   string
	Engine        string
	TesseractPath string
	OutputFile    string

	Regions     map[field.Region]Rect
	Profiles    map[field.Region]Profile
	Corrections []Correction
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissing, path)
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	ocrSec := f.Section("OCR")
	title := ocrSec.Key("WindowTitle").String()
	if title == "" {
		return nil, fmt.Errorf("%w: [OCR] WindowTitle", ErrMissing)
	}

	engine := ocrSec.Key("Engine").MustString(EngineExec)
	if engine != EngineExec && engine != EngineLibrary {
		return nil, fmt.Errorf("[OCR] Engine: unknown value %q", engine)
	}

	cfg := &Config{
		WindowTitle:   title,
		Engine:        engine,
		TesseractPath: f.Section("Paths").Key("Tesseract").String(),
		OutputFile:    f.Section("Paths").Key("OcrOutputFile").MustString("ocr_result.txt"),
		Regions:       make(map[field.Region]Rect),
		Profiles:      make(map[field.Region]Profile),
	}

	capSec := f.Section("Capture")
	for _, r := range field.All() {
		raw := capSec.Key("Region" + r.String()).String()
		if raw == "" {
			continue // region skipped
		}
		rect, err := parseRect(raw)
		if err != nil {
			return nil, fmt.Errorf("[Capture] Region%s: %w", r, err)
		}
		cfg.Regions[r] = rect
	}

	for _, r := range field.All() {
		cfg.Profiles[r] = loadProfile(f.Section("Preprocess"+r.String()), r)
	}

	if sec, err := f.GetSection("Corrections"); err == nil {
		for _, key := range sec.Keys() {
			cfg.Corrections = append(cfg.Corrections, Correction{
				Wrong: key.Name(),
				Right: key.String(),
			})
		}
	}

	return cfg, nil
}

// loadProfile reads one [Preprocess<Region>] section, falling back to the
// defaults when the section or individual keys are absent.
func loadProfile(sec *ini.Section, r field.Region) Profile {
	return Profile{
		Profile: prep.Profile{
			Method:     prep.Method(strings.ToLower(sec.Key("BinarizationMethod").MustString(string(prep.Otsu)))),
			Blur:       sec.Key("EnableGaussianBlur").MustBool(false),
			CropTop:    sec.Key("CropTop").MustInt(0),
			CropBottom: sec.Key("CropBottom").MustInt(0),
			CropLeft:   sec.Key("CropLeft").MustInt(0),
			CropRight:  sec.Key("CropRight").MustInt(0),
			KernelSize: sec.Key("OpeningKernelSize").MustInt(prep.DefaultOpeningKernel),
		},
		Language: sec.Key("Language").MustString(r.DefaultLanguage()),
	}
}

func parseRect(s string) (Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Rect{}, fmt.Errorf("want \"x,y,w,h\", got %q", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Rect{}, fmt.Errorf("want \"x,y,w,h\", got %q", s)
		}
		vals[i] = v
	}
	return Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

// ResolveTesseract returns the engine binary to use. A bundled binary in
// a tesseract directory next to the executable takes priority over the
// configured path, so an installer can ship its own engine without
// touching the configuration.
func (c *Config) ResolveTesseract(baseDir string) string {
	name := "tesseract"
	if runtime.GOOS == "windows" {
		name = "tesseract.exe"
	}
	bundled := filepath.Join(baseDir, "tesseract", name)
	if info, err := os.Stat(bundled); err == nil && !info.IsDir() {
		return bundled
	}
	return c.TesseractPath
}

// OutputPath returns the result file location: the configured file name
// (basename only, either path separator) under an output directory next
// to the executable.
func (c *Config) OutputPath(baseDir string) string {
	name := c.OutputFile
	if i := strings.LastIndexAny(name, `\/`); i >= 0 {
		name = name[i+1:]
	}
	return filepath.Join(baseDir, "output", name)
}
