package mathtext

import (
	"log/slog"
	"math"
)

// stretchyGlyphs lists the symbols that have fixed-size variants in the
// size families.
var stretchyGlyphs = map[rune]bool{
	'(': true, ')': true, '[': true, ']': true, '{': true, '}': true,
	'⟨': true, '⟩': true, '|': true, '‖': true,
	'⌊': true, '⌋': true, '⌈': true, '⌉': true,
	'/': true, '\\': true, '√': true,
	'∫': true, '∬': true, '∭': true, '∮': true,
	'∑': true, '∏': true, '∐': true, '⋃': true, '⋂': true,
	'⨁': true, '⨂': true, '⨀': true, '⋁': true, '⋀': true,
	'↑': true, '↓': true, '⇑': true, '⇓': true, '↕': true, '⇕': true,
}

// LargeFamilies returns the families holding fixed-size variants of s,
// smallest first. Symbols without variants yield only their math family.
func LargeFamilies(s MathSymbol) []Family {
	base := MathFamily(s)
	if !stretchyGlyphs[s.Glyph] {
		return []Family{base}
	}
	bold := base.IsBold()
	return []Family{
		base,
		sizeFamily(1, bold),
		sizeFamily(2, bold),
		sizeFamily(3, bold),
		sizeFamily(4, bold),
		sizeFamily(5, bold),
	}
}

// Assembly describes a stretchy symbol built from glyph pieces stacked
// bottom to top: Bottom, Repeat..., [Middle, Repeat...,] Top.
// Middle is 0 for symbols without a middle piece.
type Assembly struct {
	Top, Middle, Bottom, Repeat rune
}

// assemblies uses the Unicode bracket pieces (U+239B..U+23B7, U+23D0).
var assemblies = map[rune]Assembly{
	'(': {Top: '⎛', Repeat: '⎜', Bottom: '⎝'},
	')': {Top: '⎞', Repeat: '⎟', Bottom: '⎠'},
	'[': {Top: '⎡', Repeat: '⎢', Bottom: '⎣'},
	']': {Top: '⎤', Repeat: '⎥', Bottom: '⎦'},
	'{': {Top: '⎧', Middle: '⎨', Repeat: '⎪', Bottom: '⎩'},
	'}': {Top: '⎫', Middle: '⎬', Repeat: '⎪', Bottom: '⎭'},
	'⌈': {Top: '⎡', Repeat: '⎢', Bottom: '⎢'},
	'⌉': {Top: '⎤', Repeat: '⎥', Bottom: '⎥'},
	'⌊': {Top: '⎢', Repeat: '⎢', Bottom: '⎣'},
	'⌋': {Top: '⎥', Repeat: '⎥', Bottom: '⎦'},
	'|': {Top: '⏐', Repeat: '⏐', Bottom: '⏐'},
	'‖': {Top: '‖', Repeat: '‖', Bottom: '‖'},
	'∫': {Top: '⌠', Repeat: '⎮', Bottom: '⌡'},
	'√': {Top: '⏐', Repeat: '⏐', Bottom: '⎷'},
	'↑': {Top: '↑', Repeat: '⏐', Bottom: '⏐'},
	'↓': {Top: '⏐', Repeat: '⏐', Bottom: '↓'},
}

// AssemblyFor returns the piece assembly of r, if it has one.
func AssemblyFor(r rune) (Assembly, bool) {
	a, ok := assemblies[r]
	return a, ok
}

// tokenizeExtensible sizes s to at least height.
//
// The smallest fixed-size variant whose natural height reaches height is
// used. When none does, an assembly is built if the symbol has one,
// otherwise the largest variant is used. Tokens are in the symbol's own
// frame with the baseline at y = 0 for single glyphs and the bottom of the
// stack at y = 0 for assemblies.
func (l *layout) tokenizeExtensible(s MathSymbol, style Style, height float64) []Token {
	size := l.em(style)
	text := string(s.Glyph)

	var largest Token
	for _, family := range LargeFamilies(s) {
		box := l.glyphBox(text, family, size)
		largest = Token{
			Box:     box,
			Payload: Glyph{Text: text, Family: family, Size: size, DelimiterHeight: height},
		}
		if box.Height() >= height {
			return []Token{largest}
		}
	}

	if a, ok := AssemblyFor(s.Glyph); ok {
		return l.assemble(a, MathFamily(s), size, height)
	}
	Logger().Debug("mathtext: delimiter falls short, using largest variant",
		slog.String("glyph", text),
		slog.Float64("height", height),
		slog.Float64("largest", largest.Box.Height()))
	return []Token{largest}
}

// assemble stacks the pieces of a with zero gap, repeating the extension
// piece as often as needed (rounded up) to reach height.
func (l *layout) assemble(a Assembly, family Family, size, height float64) []Token {
	piece := func(r rune) Token {
		text := string(r)
		return Token{
			Box:     l.glyphBox(text, family, size),
			Payload: Glyph{Text: text, Family: family, Size: size, DelimiterHeight: height},
		}
	}

	top, bottom, repeat := piece(a.Top), piece(a.Bottom), piece(a.Repeat)
	fixed := top.Box.Height() + bottom.Box.Height()
	var middle Token
	if a.Middle != 0 {
		middle = piece(a.Middle)
		fixed += middle.Box.Height()
	}

	n := 0
	if rh := repeat.Box.Height(); rh > 0 && height > fixed {
		if a.Middle != 0 {
			n = int(math.Ceil((height - fixed) / (2 * rh)))
		} else {
			n = int(math.Ceil((height - fixed) / rh))
		}
	}

	stack := make([]Token, 0, 2*n+3)
	stack = append(stack, bottom)
	for range n {
		stack = append(stack, repeat)
	}
	if a.Middle != 0 {
		stack = append(stack, middle)
		for range n {
			stack = append(stack, repeat)
		}
	}
	stack = append(stack, top)

	y := 0.0
	for i := range stack {
		stack[i].Offset = Pt(0, y-stack[i].Box.Min.Y)
		y += stack[i].Box.Height()
	}

	Logger().Debug("mathtext: assembled delimiter",
		slog.String("bottom", string(a.Bottom)),
		slog.Int("repeats", n),
		slog.Float64("height", height),
		slog.Float64("assembled", y))
	return stack
}
