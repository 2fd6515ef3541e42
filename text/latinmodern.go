package text

import (
	"fmt"

	"github.com/go-fonts/latin-modern/lmmath"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"

	"github.com/gogpu/mathtext"
)

// sizeScales are the scales of the five size families relative to the
// math font, approximating the cmex10 delimiter sizes.
var sizeScales = [...]float64{1.2, 1.8, 2.4, 3.0, 3.6}

// LatinModern returns a FontSet covering every family with the Latin Modern
// fonts: Latin Modern Roman 10 for the text families and math italic
// letters, Latin Modern Math for symbols, and scaled Latin Modern Math for
// the size families.
func LatinModern(opts ...SourceOption) (*FontSet, error) {
	load := func(name string, data []byte) (*FontSource, error) {
		src, err := NewFontSource(data, opts...)
		if err != nil {
			return nil, fmt.Errorf("text: latin modern %s: %w", name, err)
		}
		return src, nil
	}

	regular, err := load("roman regular", lmroman10regular.TTF)
	if err != nil {
		return nil, err
	}
	italic, err := load("roman italic", lmroman10italic.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := load("roman bold", lmroman10bold.TTF)
	if err != nil {
		return nil, err
	}
	boldItalic, err := load("roman bold italic", lmroman10bolditalic.TTF)
	if err != nil {
		return nil, err
	}
	math, err := load("math", lmmath.TTF)
	if err != nil {
		return nil, err
	}

	fs := NewFontSet()
	fs.Set(mathtext.FamilyPlain, regular)
	fs.Set(mathtext.FamilyRegular, regular)
	fs.Set(mathtext.FamilyItalic, italic)
	fs.Set(mathtext.FamilyBold, bold)
	fs.Set(mathtext.FamilyBoldItalic, boldItalic)
	fs.Set(mathtext.FamilyMathRegular, math)
	fs.Set(mathtext.FamilyMathItalic, italic)
	fs.Set(mathtext.FamilyMathBold, bold)
	fs.Set(mathtext.FamilyMathBoldItalic, boldItalic)

	sizes := [...]mathtext.Family{
		mathtext.FamilySize1, mathtext.FamilySize2, mathtext.FamilySize3,
		mathtext.FamilySize4, mathtext.FamilySize5,
	}
	for i, f := range sizes {
		fs.SetScaled(f, math, sizeScales[i])
	}
	return fs, nil
}
