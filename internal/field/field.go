// Package field defines the four fixed capture regions on the target
// window and the order in which their values appear in the final output.
package field

// Region identifies one of the four rectangular capture areas.
type Region int

const (
	// BankCode is the financial institution's numeric code.
	BankCode Region = iota
	// BankName is the financial institution's display name.
	BankName
	// BranchCode is the branch's numeric code.
	BranchCode
	// BranchName is the branch's display name.
	BranchName
)

// All returns the regions in output order: code, name, code, name.
// The joined result line follows this order regardless of how the
// regions were captured or recognized.
func All() []Region {
	return []Region{BankCode, BankName, BranchCode, BranchName}
}

// String returns the region's configuration name, used as the suffix of
// the [Capture] and [Preprocess*] keys in config.ini.
func (r Region) String() string {
	switch r {
	case BankCode:
		return "BankCode"
	case BankName:
		return "BankName"
	case BranchCode:
		return "BranchCode"
	case BranchName:
		return "BranchName"
	default:
		return "Unknown"
	}
}

// IsCode reports whether the region holds a numeric code. Code fields
// are digit-filtered during normalization and default to the Latin-digit
// OCR model; name fields are edge-trimmed and default to the Japanese
// model.
func (r Region) IsCode() bool {
	return r == BankCode || r == BranchCode
}

// DefaultLanguage returns the Tesseract language tag used when the
// region's configuration does not override it.
func (r Region) DefaultLanguage() string {
	if r.IsCode() {
		return "eng"
	}
	return "jpn"
}
