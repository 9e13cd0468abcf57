// Package normalize assembles and cleans the final result line from the
// raw per-region OCR text.
package normalize

import (
	"strings"
	"unicode"

	"github.com/ironsheep/bankcap/internal/config"
	"github.com/ironsheep/bankcap/internal/field"
)

// Delimiter joins the four fields of the result line. Full-width so the
// separator cannot collide with ASCII punctuation OCR emits.
const Delimiter = "："

// Normalize builds the result text: code fields reduced to their digits,
// name fields trimmed at the edges, all four joined in fixed order, the
// correction table applied as ordered literal replaces over the joined
// text, and blank lines dropped. Absent regions contribute empty fields.
// It never fails.
func Normalize(raw map[field.Region]string, corrections []config.Correction) string {
	fields := make([]string, 0, 4)
	for _, r := range field.All() {
		text := raw[r]
		if r.IsCode() {
			text = digitsOnly(text)
		} else {
			text = strings.TrimSpace(text)
		}
		fields = append(fields, text)
	}
	text := strings.Join(fields, Delimiter)

	// Sequential single pass in configured order: a correction's output
	// can be matched again by a later rule, and a rule can span the
	// delimiter.
	for _, c := range corrections {
		text = strings.ReplaceAll(text, c.Wrong, c.Right)
	}

	return stripBlankLines(text)
}

// digitsOnly keeps decimal digits and discards everything else. The
// strict filter is deliberate: OCR on code fields emits stray letters and
// punctuation that a trim would not catch. Unicode digits count, since
// the name-script models occasionally render full-width forms.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// stripBlankLines removes empty and whitespace-only lines. Name fields
// can carry embedded line breaks from multi-line OCR output, so the
// result may still be more than one line.
func stripBlankLines(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
