package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// ScreenGrabber captures screen pixels through the display server.
type ScreenGrabber struct{}

// NewScreenGrabber returns the real screen grabber.
func NewScreenGrabber() *ScreenGrabber {
	return &ScreenGrabber{}
}

// Grab captures the given absolute screen rectangle as raw color pixels.
func (*ScreenGrabber) Grab(bounds image.Rectangle) (image.Image, error) {
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("empty capture rectangle %v", bounds)
	}
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("screen capture failed: %w", err)
	}
	return img, nil
}
