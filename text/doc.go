// Package text loads fonts and measures strings for the mathtext backends.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: Lightweight font instance at a specific size
//   - FontParser: Pluggable font parsing backend (default: golang.org/x/image)
//   - FontSet: Maps every mathtext.Family to a source, with fallbacks
//
// # Example usage
//
//	// Latin Modern for every family
//	fonts, err := text.LatinModern()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Box of "sin" in the regular family at 24px, y up
//	box := fonts.BoundingBox("sin", mathtext.FamilyRegular, 24)
//
// # Pluggable Parser Backend
//
// The font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used; "gotext" selects
// github.com/go-text/typesetting instead:
//
//	source, err := text.NewFontSource(data, text.WithParser("gotext"))
//
// Custom parsers can be registered with RegisterParser.
package text
