// Package ocr adapts the Tesseract engine for the region pipeline.
//
// Two interchangeable engines sit behind the Engine interface:
//
//   - ExecEngine shells out to a tesseract binary at a resolved path.
//     This is the default and the only engine that works with a bundled,
//     installer-shipped Tesseract.
//   - LibraryEngine links Tesseract through gosseract's CGO bindings and
//     uses the system installation.
//
// Both run with a fixed page segmentation mode (6, a single uniform block
// of text) and preserve inter-word spacing, since each input is one
// preprocessed field crop rather than a document page.
//
// Recognition is synchronous and deterministic for identical pixel input.
// A missing binary at the resolved path surfaces as ErrEngineNotFound at
// construction time; errors during a recognition call propagate to the
// caller, which decides whether they are fatal.
package ocr
