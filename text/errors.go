package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")
)

// FontError represents a font-related error.
type FontError struct {
	Reason string
	Err    error
}

func (e *FontError) Error() string {
	if e.Err != nil {
		return "text: " + e.Reason + ": " + e.Err.Error()
	}
	return "text: " + e.Reason
}

// Unwrap returns the underlying parser error, if any.
func (e *FontError) Unwrap() error {
	return e.Err
}
