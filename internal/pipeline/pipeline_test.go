package pipeline

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/bankcap/internal/config"
	"github.com/ironsheep/bankcap/internal/field"
	"github.com/ironsheep/bankcap/internal/ocr"
)

// stubEngine returns canned text per language and can be told to fail on
// a given language, standing in for region-level engine faults.
type stubEngine struct {
	byLanguage map[string]string
	failOn     string
	calls      int
}

func (s *stubEngine) Recognize(_ context.Context, _ *image.Gray, opts ocr.Options) (string, error) {
	s.calls++
	if opts.Language == s.failOn {
		return "", errors.New("simulated engine failure")
	}
	return s.byLanguage[opts.Language], nil
}

func capturedRegion(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 240, G: 240, B: 240, A: 255}
			if y == h/2 {
				c = color.NRGBA{A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func defaultProfiles() map[field.Region]config.Profile {
	profiles := make(map[field.Region]config.Profile)
	for _, r := range field.All() {
		profiles[r] = config.Profile{Language: r.DefaultLanguage()}
	}
	return profiles
}

func TestExtract_AllRegions(t *testing.T) {
	engine := &stubEngine{byLanguage: map[string]string{"eng": "0123", "jpn": "さくら銀行"}}
	captures := map[field.Region]image.Image{
		field.BankCode:   capturedRegion(100, 30),
		field.BankName:   capturedRegion(200, 30),
		field.BranchCode: capturedRegion(100, 30),
		field.BranchName: capturedRegion(200, 30),
	}

	got := New(engine).Extract(context.Background(), captures, defaultProfiles())

	if len(got) != 4 {
		t.Fatalf("got %d results, want 4", len(got))
	}
	if got[field.BankCode] != "0123" || got[field.BranchCode] != "0123" {
		t.Error("code regions should use the digit model text")
	}
	if got[field.BankName] != "さくら銀行" || got[field.BranchName] != "さくら銀行" {
		t.Error("name regions should use the local-script model text")
	}
}

func TestExtract_MissingCaptureAbsent(t *testing.T) {
	engine := &stubEngine{byLanguage: map[string]string{"eng": "42", "jpn": "x"}}
	captures := map[field.Region]image.Image{
		field.BankCode: capturedRegion(100, 30),
	}

	got := New(engine).Extract(context.Background(), captures, defaultProfiles())

	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	if _, present := got[field.BankName]; present {
		t.Error("regions without a capture must be absent, not empty")
	}
}

func TestExtract_FaultIsolation(t *testing.T) {
	engine := &stubEngine{
		byLanguage: map[string]string{"eng": "777"},
		failOn:     "jpn",
	}
	captures := map[field.Region]image.Image{
		field.BankCode: capturedRegion(100, 30),
		field.BankName: capturedRegion(200, 30),
	}

	got := New(engine).Extract(context.Background(), captures, defaultProfiles())

	if got[field.BankCode] != "777" {
		t.Errorf("healthy region should still extract, got %q", got[field.BankCode])
	}
	text, present := got[field.BankName]
	if !present || text != "" {
		t.Errorf("failed region should be recorded as empty text, got (%q, %v)", text, present)
	}
}

func TestExtract_EmptyCropSkipsEngine(t *testing.T) {
	engine := &stubEngine{byLanguage: map[string]string{"eng": "1"}}
	profiles := defaultProfiles()
	p := profiles[field.BankCode]
	p.CropTop = 100 // consumes the whole 30-row capture
	profiles[field.BankCode] = p

	captures := map[field.Region]image.Image{
		field.BankCode: capturedRegion(100, 30),
	}

	got := New(engine).Extract(context.Background(), captures, profiles)

	if engine.calls != 0 {
		t.Errorf("engine should not run on an empty crop, got %d calls", engine.calls)
	}
	if text, present := got[field.BankCode]; !present || text != "" {
		t.Errorf("empty crop should record empty text, got (%q, %v)", text, present)
	}
}
