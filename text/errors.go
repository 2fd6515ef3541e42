package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFamily is returned when neither a family nor any of its
	// fallbacks has a font.
	ErrUnknownFamily = errors.New("text: no font for family")

	// ErrUnknownParser is returned by NewFontSource for an unregistered
	// parser name.
	ErrUnknownParser = errors.New("text: unknown font parser")
)
