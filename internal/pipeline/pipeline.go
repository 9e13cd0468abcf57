// Package pipeline drives the per-region preprocess and recognize pass.
package pipeline

import (
	"context"
	"image"

	"github.com/rs/zerolog/log"

	"github.com/ironsheep/bankcap/internal/config"
	"github.com/ironsheep/bankcap/internal/field"
	"github.com/ironsheep/bankcap/internal/ocr"
	"github.com/ironsheep/bankcap/internal/prep"
)

// Extractor runs the capture set through preprocessing and recognition,
// one region at a time.
type Extractor struct {
	engine ocr.Engine
}

// New creates an extractor backed by the given recognition engine.
func New(engine ocr.Engine) *Extractor {
	return &Extractor{engine: engine}
}

// Extract produces the raw OCR text for every captured region. Regions
// without a capture are absent from the result. A failure in one region
// never aborts the others: the failure is logged and the region's text
// recorded as empty.
func (e *Extractor) Extract(ctx context.Context, captures map[field.Region]image.Image, profiles map[field.Region]config.Profile) map[field.Region]string {
	results := make(map[field.Region]string, len(captures))

	for _, r := range field.All() {
		img, captured := captures[r]
		if !captured {
			continue
		}
		profile := profiles[r]

		bin, ok := prep.Preprocess(img, profile.Profile)
		if !ok {
			// Crop margins consumed the region; defined as empty text,
			// not an error. The engine never sees it.
			log.Debug().Str("component", "pipeline").Stringer("region", r).Msg("crop left no pixels")
			results[r] = ""
			continue
		}

		text, err := e.engine.Recognize(ctx, bin, ocr.Options{
			Language:    profile.Language,
			PageSegMode: ocr.PSMSingleBlock,
		})
		if err != nil {
			log.Warn().Str("component", "pipeline").Stringer("region", r).Err(err).Msg("recognition failed")
			results[r] = ""
			continue
		}
		results[r] = text
	}

	return results
}
