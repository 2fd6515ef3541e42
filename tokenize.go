package mathtext

import (
	"fmt"
	"log/slog"
	"math"
)

// tokenize dispatches n to its emitter.
func (l *layout) tokenize(n Node, style Style) []Token {
	style.mustValid()
	switch n := n.(type) {
	case MathSymbol, Box:
		return l.tokenizeField(n.(Field), style)
	case MathList:
		return l.tokenizeList(n, style)
	case Atom:
		return l.tokenizeAtom(n, style)
	case stretchy:
		return l.tokenizeExtensible(n.Symbol, style, n.Height)
	case nil:
		return nil
	}
	panic(fmt.Sprintf("mathtext: unknown node type %T", n))
}

// measure returns the merged box of the tokens of n.
func (l *layout) measure(n Node, style Style) BBox {
	return mergeTokens(l.tokenize(n, style))
}

// tokenizeField emits the leaf of a symbol or text box, or the tokens of a
// nested list. Empty fields yield no tokens.
func (l *layout) tokenizeField(f Field, style Style) []Token {
	if isEmpty(f) {
		return nil
	}
	switch f := f.(type) {
	case MathSymbol:
		return []Token{l.leaf(string(f.Glyph), MathFamily(f), l.em(style))}
	case Box:
		return []Token{l.leaf(f.Text, FamilyRegular, l.em(style))}
	case MathList:
		return l.tokenizeList(f, style)
	}
	panic(fmt.Sprintf("mathtext: unknown field type %T", f))
}

// leaf measures text at size and wraps it in a glyph token at the origin.
func (l *layout) leaf(text string, family Family, size float64) Token {
	return Token{
		Box:     l.glyphBox(text, family, size),
		Payload: Glyph{Text: text, Family: family, Size: size},
	}
}

// recurse wraps n in a Recurse token at offset, measuring it in style.
func (l *layout) recurse(n Node, style Style, offset Point) Token {
	return Token{
		Offset:  offset,
		Box:     l.measure(n, style),
		Payload: Recurse{Style: style, Node: n},
	}
}

// tokenizeAtom lays out the nucleus with its class decorations, then
// attaches scripts to the decorated nucleus.
func (l *layout) tokenizeAtom(a Atom, style Style) []Token {
	var tokens []Token
	var nucleus Token
	hasNucleus := !isEmpty(a.Nucleus)
	displayLimits := false

	switch a.Class {
	case Rad:
		tokens = l.radical(a, style)
		hasNucleus = false
	case Op:
		if sym, ok := a.Nucleus.(MathSymbol); ok && hasNucleus {
			nucleus = l.largeOperator(sym, style)
			displayLimits = style.IsDisplay() && !a.NoLimits
		} else if hasNucleus {
			nucleus = l.recurse(a.Nucleus, style, Point{})
		}
	case Over, Acc:
		if hasNucleus {
			nucleus = l.recurse(a.Nucleus, style.Cramped(), Point{})
		}
	case VCenter:
		if hasNucleus {
			nucleus = l.recurse(a.Nucleus, style, Point{})
			nucleus.Offset.Y = l.axis(style) - nucleus.Box.VerticalCenter()
		}
	default:
		if hasNucleus {
			nucleus = l.recurse(a.Nucleus, style, Point{})
		}
	}

	if hasNucleus {
		tokens = append(tokens, nucleus)
		switch a.Class {
		case Over:
			tokens = append(tokens, l.overRule(nucleus.Bounds(), style)...)
		case Under:
			tokens = append(tokens, l.underRule(nucleus.Bounds(), style)...)
		case Acc:
			tokens = append(tokens, l.accent(a.Accent, nucleus.Bounds(), style)...)
		}
	}

	if isEmpty(a.Superscript) && isEmpty(a.Subscript) {
		return tokens
	}
	if displayLimits {
		return l.limits(tokens, a, style)
	}
	return append(tokens, l.scripts(mergeTokens(tokens), a, style)...)
}

// largeOperator sets an operator symbol, enlarged in display style and
// centered on the math axis.
func (l *layout) largeOperator(s MathSymbol, style Style) Token {
	size := l.em(style)
	if style.IsDisplay() {
		size *= l.p.LargeOperatorDisplayScale
	}
	t := l.leaf(string(s.Glyph), MathFamily(s), size)
	t.Offset.Y = l.axis(style) - t.Box.VerticalCenter()
	return t
}

// scripts places superscript and subscript beside base.
func (l *layout) scripts(base BBox, a Atom, style Style) []Token {
	supStyle := style.NextSuperscript()
	subStyle := style.NextSubscript()
	em := l.em(style)
	xh := l.xHeight(style)
	x := base.Advance + base.ItalicCorrection

	hasSup := !isEmpty(a.Superscript)
	hasSub := !isEmpty(a.Subscript)

	u := base.Max.Y - l.p.SupDrop*l.em(supStyle)
	v := -base.Min.Y + l.p.SubDrop*l.em(subStyle)

	var sup, sub BBox
	if hasSup {
		sup = l.measure(a.Superscript, supStyle)
	}
	if hasSub {
		sub = l.measure(a.Subscript, subStyle)
	}

	if !hasSup {
		v = max(v, l.p.Sub1*em, sub.Max.Y-0.8*xh)
		return []Token{{Offset: Pt(x, -v), Box: sub, Payload: Recurse{Style: subStyle, Node: a.Subscript}}}
	}

	p := l.p.Sup2
	switch {
	case style.IsDisplay():
		p = l.p.Sup1
	case style.IsCramped():
		p = l.p.Sup3
	}
	u = max(u, p*em, -sup.Min.Y+xh/4)
	supToken := Token{Offset: Pt(x, u), Box: sup, Payload: Recurse{Style: supStyle, Node: a.Superscript}}
	if !hasSub {
		return []Token{supToken}
	}

	v = max(v, l.p.Sub2*em)
	theta := l.p.DefaultRuleThickness * em
	if gap := (u + sup.Min.Y) - (sub.Max.Y - v); gap < 4*theta {
		v += 4*theta - gap
		if psi := 0.8*xh - (u + sup.Min.Y); psi > 0 {
			u += psi
			v -= psi
		}
	}
	supToken.Offset.Y = u
	return []Token{
		supToken,
		{Offset: Pt(x, -v), Box: sub, Payload: Recurse{Style: subStyle, Node: a.Subscript}},
	}
}

// limits stacks the scripts of a display operator above and below it.
// tokens holds the operator as its only element.
func (l *layout) limits(tokens []Token, a Atom, style Style) []Token {
	em := l.em(style)
	op := tokens[0]
	nb := op.Bounds()
	delta := op.Box.ItalicCorrection

	var sup, sub BBox
	hasSup := !isEmpty(a.Superscript)
	hasSub := !isEmpty(a.Subscript)
	supStyle := style.NextSuperscript()
	subStyle := style.NextSubscript()
	if hasSup {
		sup = l.measure(a.Superscript, supStyle)
	}
	if hasSub {
		sub = l.measure(a.Subscript, subStyle)
	}

	w := max(op.Box.Advance, sup.Advance, sub.Advance)
	tokens[0].Offset.X += (w - op.Box.Advance) / 2

	extra := l.p.BigOpSpacing5 * em
	if hasSup {
		bottom := nb.Max.Y + max(l.p.BigOpSpacing1*em, l.p.BigOpSpacing3*em+sup.Min.Y)
		baseline := bottom - sup.Min.Y
		tokens = append(tokens,
			Token{Offset: Pt((w-sup.Advance)/2+delta/2, baseline), Box: sup, Payload: Recurse{Style: supStyle, Node: a.Superscript}},
			Token{Offset: Pt(0, baseline+sup.Max.Y), Box: NewBBox(0, 0, w, extra, w, 0), Payload: Space{}},
		)
	}
	if hasSub {
		top := nb.Min.Y - max(l.p.BigOpSpacing2*em, l.p.BigOpSpacing4*em-sub.Max.Y)
		baseline := top - sub.Max.Y
		tokens = append(tokens,
			Token{Offset: Pt((w-sub.Advance)/2-delta/2, baseline), Box: sub, Payload: Recurse{Style: subStyle, Node: a.Subscript}},
			Token{Offset: Pt(0, baseline+sub.Min.Y-extra), Box: NewBBox(0, 0, w, extra, w, 0), Payload: Space{}},
		)
	}
	return tokens
}

// radical emits the index, the surd sized to the cramped nucleus, the
// overbar rule with its clearance, and the nucleus.
func (l *layout) radical(a Atom, style Style) []Token {
	em := l.em(style)
	cramped := style.Cramped()
	var n BBox
	if !isEmpty(a.Nucleus) {
		n = l.measure(a.Nucleus, cramped)
	}

	theta := l.p.RadicalRuleThickness * em
	phi := theta
	if style.IsDisplay() {
		phi = l.xHeight(style)
	}
	psi := theta + math.Abs(phi)/4

	surd := MathSymbol{Glyph: '√', Family: FamilyMathRegular, Class: Rad}
	required := n.Height() + psi + theta
	s := mergeTokens(l.tokenizeExtensible(surd, style, required))
	if extra := s.Height() - theta - (n.Height() + psi); extra > 0 {
		psi += extra / 2
	}
	ruleTop := n.Max.Y + psi + theta
	dy := ruleTop - s.Max.Y

	var tokens []Token
	sx := 0.0
	if !isEmpty(a.Index) {
		idx := l.measure(a.Index, ScriptScript)
		bottom, top := s.Min.Y+dy, s.Max.Y+dy
		ix := l.p.KerningMu(5, style, l.m.FontSize())
		tokens = append(tokens, Token{
			Offset:  Pt(ix, 0.6*(top+bottom)),
			Box:     idx,
			Payload: Recurse{Style: ScriptScript, Node: a.Index},
		})
		sx = max(0, ix+idx.Advance+l.p.KerningMu(-10, style, l.m.FontSize()))
	}

	tokens = append(tokens, Token{
		Offset:  Pt(sx, dy),
		Box:     s,
		Payload: Recurse{Style: style, Node: stretchy{Symbol: surd, Height: required}},
	})

	x := sx + s.Advance
	w := max(0, n.Advance)
	tokens = append(tokens,
		Token{Offset: Pt(x, ruleTop-theta), Box: NewBBox(0, 0, w, theta, w, 0), Payload: Rule{}},
		Token{Offset: Pt(x, ruleTop), Box: NewBBox(0, 0, w, theta, w, 0), Payload: Space{}},
	)
	if !isEmpty(a.Nucleus) {
		tokens = append(tokens, Token{Offset: Pt(x, 0), Box: n, Payload: Recurse{Style: cramped, Node: a.Nucleus}})
	}
	return tokens
}

// overRule draws a rule three rule thicknesses above n, plus one thickness
// of clearance.
func (l *layout) overRule(n BBox, style Style) []Token {
	theta := l.p.DefaultRuleThickness * l.em(style)
	w := n.Advance
	y := n.Max.Y + 3*theta
	return []Token{
		{Offset: Pt(0, y), Box: NewBBox(0, 0, w, theta, w, 0), Payload: Rule{}},
		{Offset: Pt(0, y+theta), Box: NewBBox(0, 0, w, theta, w, 0), Payload: Space{}},
	}
}

// underRule draws a rule three rule thicknesses below n, plus one
// thickness of clearance.
func (l *layout) underRule(n BBox, style Style) []Token {
	theta := l.p.DefaultRuleThickness * l.em(style)
	w := n.Advance
	y := n.Min.Y - 3*theta - theta
	return []Token{
		{Offset: Pt(0, y), Box: NewBBox(0, 0, w, theta, w, 0), Payload: Rule{}},
		{Offset: Pt(0, y-theta), Box: NewBBox(0, 0, w, theta, w, 0), Payload: Space{}},
	}
}

// accent centers acc over n, lowered by the smaller of the nucleus height
// and the x-height.
func (l *layout) accent(acc Field, n BBox, style Style) []Token {
	if isEmpty(acc) {
		return nil
	}
	ab := l.measure(acc, style)
	delta := min(n.Max.Y, l.xHeight(style))
	x := (n.Advance-ab.Advance)/2 + n.ItalicCorrection/2
	return []Token{{Offset: Pt(x, n.Max.Y-delta), Box: ab, Payload: Recurse{Style: style, Node: acc}}}
}

// tokenizeList lays out a list, wrapping its interior in stretchy
// delimiters when it begins and ends with a Boundary.
func (l *layout) tokenizeList(list MathList, style Style) []Token {
	if len(list) >= 2 {
		left, okLeft := list[0].(Boundary)
		right, okRight := list[len(list)-1].(Boundary)
		if okLeft && okRight {
			return l.delimited(left.Symbol, list[1:len(list)-1], right.Symbol, style)
		}
	}
	return l.tokenizeInterior(list, style)
}

// delimited sizes both delimiters to cover the interior symmetrically about
// the math axis.
func (l *layout) delimited(left MathSymbol, interior MathList, right MathSymbol, style Style) []Token {
	inner := l.tokenizeInterior(interior, style)
	ib := mergeTokens(inner)

	axis := l.axis(style)
	delta := max(ib.Max.Y-axis, axis-ib.Min.Y)
	height := max(2*delta*l.p.DelimiterFactor, 2*delta-l.p.DelimiterShortfall*l.em(style))

	return l.enclose(left, inner, right, style, height)
}

// enclose places delimiters of the given height around inner, which starts
// at x = 0.
func (l *layout) enclose(left MathSymbol, inner []Token, right MathSymbol, style Style, height float64) []Token {
	ib := mergeTokens(inner)

	lt := l.delimiter(left, style, height)
	dx := lt.Bounds().Advance
	shiftTokens(inner, Pt(dx, 0))

	rt := l.delimiter(right, style, height)
	rt.Offset.X = dx + ib.Advance

	tokens := make([]Token, 0, len(inner)+2)
	tokens = append(tokens, lt)
	tokens = append(tokens, inner...)
	return append(tokens, rt)
}

// delimiter returns the token of one boundary symbol, centered on the math
// axis. The null delimiter is an empty space.
func (l *layout) delimiter(s MathSymbol, style Style, height float64) Token {
	if isNullDelimiter(s) {
		w := l.p.NullDelimiterSpace * l.em(style)
		return Token{Box: NewBBox(0, 0, w, 0, w, 0), Payload: Space{}}
	}
	node := stretchy{Symbol: s, Height: height}
	b := l.measure(node, style)
	return Token{
		Offset:  Pt(0, l.axis(style)-b.VerticalCenter()),
		Box:     b,
		Payload: Recurse{Style: style, Node: node},
	}
}

// tokenizeInterior lays out a list without boundaries: a fraction if it
// holds a Fraction marker, a spaced row of atoms otherwise.
func (l *layout) tokenizeInterior(list MathList, style Style) []Token {
	for i, it := range list {
		if f, ok := it.(Fraction); ok {
			tokens := l.fraction(list[:i], dropFractions(list[i+1:]), f, style)
			if !f.delimited() {
				return tokens
			}
			height := l.p.Delim2 * l.em(style)
			if style.IsDisplay() {
				height = l.p.Delim1 * l.em(style)
			}
			return l.enclose(f.Left, tokens, f.Right, style, height)
		}
	}
	return l.row(list, style)
}

// dropFractions returns list without its Fraction markers.
func dropFractions(list MathList) MathList {
	out := make(MathList, 0, len(list))
	for i, it := range list {
		if _, ok := it.(Fraction); ok {
			Logger().Debug("mathtext: extra fraction marker ignored", slog.Int("index", i))
			continue
		}
		out = append(out, it)
	}
	return out
}

// fraction stacks numerator over denominator about the math axis.
func (l *layout) fraction(num, den MathList, f Fraction, style Style) []Token {
	em := l.em(style)
	numStyle := style.NextNumerator()
	denStyle := style.NextDenominator()
	nb := l.measure(num, numStyle)
	db := l.measure(den, denStyle)

	theta := f.RuleRatio * l.p.DefaultRuleThickness * em
	var u, v float64
	switch {
	case style.IsDisplay():
		u, v = l.p.Num1*em, l.p.Denom1*em
	case theta > 0:
		u, v = l.p.Num2*em, l.p.Denom2*em
	default:
		u, v = l.p.Num3*em, l.p.Denom2*em
	}

	axis := l.axis(style)
	if theta <= 0 {
		phi := 3 * l.p.DefaultRuleThickness * em
		if style.IsDisplay() {
			phi = 7 * l.p.DefaultRuleThickness * em
		}
		if gap := (u + nb.Min.Y) - (db.Max.Y - v); gap < phi {
			u += (phi - gap) / 2
			v += (phi - gap) / 2
		}
	} else {
		phi := theta
		if style.IsDisplay() {
			phi = 3 * theta
		}
		if c := (u + nb.Min.Y) - (axis + theta/2); c < phi {
			u += phi - c
		}
		if c := (axis - theta/2) - (db.Max.Y - v); c < phi {
			v += phi - c
		}
	}

	w := max(nb.Advance, db.Advance)
	var tokens []Token
	if len(num) > 0 {
		tokens = append(tokens, Token{
			Offset:  Pt((w-nb.Advance)/2, u),
			Box:     nb,
			Payload: Recurse{Style: numStyle, Node: num},
		})
	}
	if theta > 0 {
		tokens = append(tokens, Token{
			Offset:  Pt(0, axis-theta/2),
			Box:     NewBBox(0, 0, w, theta, w, 0),
			Payload: Rule{},
		})
	}
	if len(den) > 0 {
		tokens = append(tokens, Token{
			Offset:  Pt((w-db.Advance)/2, -v),
			Box:     db,
			Payload: Recurse{Style: denStyle, Node: den},
		})
	}
	return tokens
}

// row places atoms left to right with inter-atom spacing. An explicit Kern
// between two atoms replaces the table spacing for that pair.
func (l *layout) row(list MathList, style Style) []Token {
	classes := ClassifyList(list)
	fontSize := l.m.FontSize()

	var tokens []Token
	x := 0.0
	prev := -1
	kerned := false
	for i, it := range list {
		var atom Atom
		switch it := it.(type) {
		case Kern:
			x += l.p.KerningMu(it.Amount, style, fontSize)
			kerned = true
			continue
		case Atom:
			atom = it
		case Boundary:
			Logger().Debug("mathtext: stray boundary set as ordinary symbol",
				slog.String("glyph", string(it.Symbol.Glyph)))
			atom = Atom{Class: Ord, Nucleus: it.Symbol}
		default:
			panic(fmt.Sprintf("mathtext: unknown item type %T", it))
		}

		if prev >= 0 && !kerned {
			x += l.p.MathSpacing(classes[prev], classes[i], style, fontSize)
		}
		prev = i
		kerned = false

		b := mergeTokens(l.tokenizeAtom(atom, style))
		if b == (BBox{}) && isEmpty(atom.Nucleus) {
			continue
		}
		tokens = append(tokens, Token{Offset: Pt(x, 0), Box: b, Payload: Recurse{Style: style, Node: atom}})
		x += b.Advance
	}
	return tokens
}
