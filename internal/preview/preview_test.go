package preview

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/bankcap/internal/config"
	"github.com/ironsheep/bankcap/internal/field"
)

func grayWindow(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	return img
}

func TestRender_Size(t *testing.T) {
	out := Render(grayWindow(400, 300), map[field.Region]config.Rect{
		field.BankCode: {X: 10, Y: 10, W: 100, H: 30},
	})
	if out.Bounds().Dx() != 400 || out.Bounds().Dy() != 300 {
		t.Errorf("overlay size changed: got %v", out.Bounds())
	}
}

func TestRender_OutlinesRegion(t *testing.T) {
	rect := config.Rect{X: 50, Y: 60, W: 100, H: 40}
	out := Render(grayWindow(400, 300), map[field.Region]config.Rect{
		field.BranchName: rect,
	})

	base := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	if got := out.RGBAAt(rect.X, rect.Y); got == base {
		t.Error("top-left border pixel should be recolored")
	}
	if got := out.RGBAAt(rect.X+rect.W-1, rect.Y+rect.H-1); got == base {
		t.Error("bottom-right border pixel should be recolored")
	}
	// Center of the region stays untouched.
	if got := out.RGBAAt(rect.X+rect.W/2, rect.Y+rect.H-5); got != base {
		t.Errorf("interior pixel should keep the capture content, got %v", got)
	}
}

func TestRender_SkipsUnconfigured(t *testing.T) {
	out := Render(grayWindow(100, 100), map[field.Region]config.Rect{})
	base := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if out.RGBAAt(x, y) != base {
				t.Fatalf("pixel (%d,%d) changed with no regions configured", x, y)
			}
		}
	}
}

func TestRender_ClipsOutOfBoundsRegion(t *testing.T) {
	// A rectangle hanging off the window must not panic and must not
	// resize the output.
	out := Render(grayWindow(100, 100), map[field.Region]config.Rect{
		field.BankName: {X: 80, Y: 90, W: 200, H: 50},
	})
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 100 {
		t.Errorf("overlay size changed: got %v", out.Bounds())
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := Save(Render(grayWindow(50, 50), nil), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("preview file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("preview file is empty")
	}
}
