package prep

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

const (
	// TargetHeight is the row count every region is scaled to before
	// recognition.
	TargetHeight = 300

	// MaxWidth is the column cap applied after scaling.
	MaxWidth = 4000

	// DefaultOpeningKernel is the structuring element side used when the
	// profile does not specify one.
	DefaultOpeningKernel = 2

	// gaussianRadius yields bild's 5x5 smoothing kernel.
	gaussianRadius = 2
)

// Method selects the binarization algorithm for a region.
type Method string

const (
	// Otsu computes a global threshold from the grayscale histogram.
	Otsu Method = "otsu"
	// Adaptive thresholds each pixel against its local window mean.
	// Reserved for regions that binarize poorly under a global threshold;
	// not used by the default configuration.
	Adaptive Method = "adaptive"
)

// Profile holds the per-region preprocessing settings.
type Profile struct {
	Method     Method
	Blur       bool
	CropTop    int
	CropBottom int
	CropLeft   int
	CropRight  int
	// KernelSize is the side of the square opening element. Values below
	// one fall back to DefaultOpeningKernel; one disables the opening.
	KernelSize int
}

// Preprocess transforms a captured region into a two-level image ready
// for recognition. It reports ok == false when the crop margins leave no
// pixels; the caller should treat the region's text as empty. It never
// fails for a non-nil input: degenerate images degrade to a low-quality
// result rather than an error.
func Preprocess(img image.Image, p Profile) (bin *image.Gray, ok bool) {
	gray := imaging.Grayscale(img)

	b := gray.Bounds()
	cw := b.Dx() - p.CropLeft - p.CropRight
	ch := b.Dy() - p.CropTop - p.CropBottom
	if cw <= 0 || ch <= 0 {
		return nil, false
	}
	cropped := imaging.Crop(gray, image.Rect(p.CropLeft, p.CropTop, b.Dx()-p.CropRight, b.Dy()-p.CropBottom))

	// Scale to the target height, then clamp the width from the already
	// scaled dimensions so the aspect ratio of the scaled image survives
	// the cap.
	scale := float64(TargetHeight) / float64(ch)
	sw := int(math.Round(float64(cw) * scale))
	sh := TargetHeight
	if sw > MaxWidth {
		sh = int(math.Round(float64(sh) * float64(MaxWidth) / float64(sw)))
		sw = MaxWidth
	}
	if sw < 1 {
		sw = 1
	}
	scaled := imaging.Resize(cropped, sw, sh, imaging.CatmullRom)

	var src image.Image = scaled
	if p.Blur {
		// Softens anti-aliased glyph edges before thresholding. Optional
		// because some fonts binarize better without it.
		src = blur.Gaussian(scaled, gaussianRadius)
	}

	g := grayFrom(src)
	switch p.Method {
	case Adaptive:
		bin = adaptiveThreshold(g, adaptiveWindow, adaptiveOffset)
	default:
		bin = otsuBinarize(g)
	}

	k := p.KernelSize
	if k <= 0 {
		k = DefaultOpeningKernel
	}
	if k > 1 {
		bin = open(bin, k)
	}
	return bin, true
}

// grayFrom copies an image into a single-channel grayscale buffer. The
// input is already grayscale at this point, so this is a channel
// extraction, not a luminance conversion.
func grayFrom(img image.Image) *image.Gray {
	if g, isGray := img.(*image.Gray); isGray {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
		}
	}
	return g
}
