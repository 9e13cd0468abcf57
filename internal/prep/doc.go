// Package prep turns one raw captured sub-image into a binary image
// ready for recognition.
//
// Every region runs through the same fixed operator order:
//
//  1. Grayscale conversion
//  2. Margin crop (per-region top/bottom/left/right pixels)
//  3. Uniform scale to 300 rows, bicubic interpolation, with the width
//     capped at 4000 columns
//  4. Optional 5x5 Gaussian blur
//  5. Binarization (Otsu global threshold or adaptive local mean)
//  6. Morphological opening with a small square structuring element
//
// The target height matches the resolution Tesseract recognizes well at;
// the width cap keeps degenerate crops (very wide, very short) from
// blowing up to unusable sizes while still preserving the aspect ratio of
// the already-scaled image.
//
// # Degenerate Inputs
//
// Preprocess never fails for a non-nil input. Crop margins that consume
// the whole image yield an "empty" result (ok == false); the caller is
// expected to treat the region's text as empty rather than abort the run.
//
// # Binarization Polarity
//
// Both thresholding methods produce dark text on a white background:
// pixels above the threshold become white (background), pixels at or
// below it become black (glyphs). The opening that follows removes
// speckles smaller than the structuring element without eating into
// glyph strokes.
package prep
