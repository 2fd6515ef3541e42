package mathtext

import "fmt"

// Family identifies a font family a backend must provide.
type Family uint8

const (
	// FamilyPlain is the backend's default text font.
	FamilyPlain Family = iota
	FamilyRegular
	FamilyItalic
	FamilyBold
	FamilyBoldItalic

	// Math families carry the symbol repertoire (operators, delimiters,
	// Greek) in addition to letters.
	FamilyMathRegular
	FamilyMathItalic
	FamilyMathBold
	FamilyMathBoldItalic

	// Size families hold progressively larger fixed-size variants of
	// stretchy symbols.
	FamilySize1
	FamilySize1Bold
	FamilySize2
	FamilySize2Bold
	FamilySize3
	FamilySize3Bold
	FamilySize4
	FamilySize4Bold
	FamilySize5

	// NumFamilies is the number of families.
	NumFamilies
)

var familyNames = [...]string{
	FamilyPlain:          "Plain",
	FamilyRegular:        "Regular",
	FamilyItalic:         "Italic",
	FamilyBold:           "Bold",
	FamilyBoldItalic:     "BoldItalic",
	FamilyMathRegular:    "MathRegular",
	FamilyMathItalic:     "MathItalic",
	FamilyMathBold:       "MathBold",
	FamilyMathBoldItalic: "MathBoldItalic",
	FamilySize1:          "Size1",
	FamilySize1Bold:      "Size1Bold",
	FamilySize2:          "Size2",
	FamilySize2Bold:      "Size2Bold",
	FamilySize3:          "Size3",
	FamilySize3Bold:      "Size3Bold",
	FamilySize4:          "Size4",
	FamilySize4Bold:      "Size4Bold",
	FamilySize5:          "Size5",
}

// String returns the string representation of a Family.
func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

// IsBold reports whether f is one of the bold families.
func (f Family) IsBold() bool {
	switch f {
	case FamilyBold, FamilyBoldItalic, FamilyMathBold, FamilyMathBoldItalic,
		FamilySize1Bold, FamilySize2Bold, FamilySize3Bold, FamilySize4Bold:
		return true
	}
	return false
}

// MathFamily returns the concrete family a math symbol is drawn in.
//
// Explicit text families map onto their math counterparts. The plain
// family picks math italic for Latin letters and lowercase Greek, and math
// regular for everything else. Math and size families are kept as is.
func MathFamily(s MathSymbol) Family {
	switch s.Family {
	case FamilyPlain:
		if defaultsToItalic(s.Glyph) {
			return FamilyMathItalic
		}
		return FamilyMathRegular
	case FamilyRegular:
		return FamilyMathRegular
	case FamilyItalic:
		return FamilyMathItalic
	case FamilyBold:
		return FamilyMathBold
	case FamilyBoldItalic:
		return FamilyMathBoldItalic
	}
	return s.Family
}

// defaultsToItalic reports whether TeX sets r in math italic by default.
func defaultsToItalic(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 'α' && r <= 'ω', r == 'ϑ', r == 'ϕ', r == 'ϖ', r == 'ϱ', r == 'ϵ':
		return true
	}
	return false
}

// sizeFamily returns the n-th size family (1 based), bold when bold is set.
func sizeFamily(n int, bold bool) Family {
	regular := [...]Family{FamilySize1, FamilySize2, FamilySize3, FamilySize4, FamilySize5}
	heavy := [...]Family{FamilySize1Bold, FamilySize2Bold, FamilySize3Bold, FamilySize4Bold, FamilySize5}
	if bold {
		return heavy[n-1]
	}
	return regular[n-1]
}
