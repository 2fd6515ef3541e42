package mathtext

import "fmt"

// Token is one positioned unit of layout output: an offset from the
// enclosing origin, the bounding box at that offset's origin, and what to
// do there.
type Token struct {
	Offset  Point
	Box     BBox
	Payload Payload
}

// Bounds returns the token's box translated by its offset.
func (t Token) Bounds() BBox {
	return t.Offset.AddBox(t.Box)
}

// Payload is the action attached to a token. The set of payloads is closed:
// Recurse, Glyph, Rule and Space.
type Payload interface {
	payload()
}

// Recurse lays out Node again, in Style, at the token's offset.
type Recurse struct {
	Style Style
	Node  Node
}

// Glyph draws Text in Family at an absolute font Size.
// DelimiterHeight is the height requested from the extensible resolver for
// stretchy glyphs, zero otherwise.
type Glyph struct {
	Text            string
	Family          Family
	Size            float64
	DelimiterHeight float64
}

// Rule fills the token's box (fraction bars, radical and over/under rules).
type Rule struct{}

// Space reserves the token's box without drawing anything.
type Space struct{}

func (Recurse) payload() {}
func (Glyph) payload()   {}
func (Rule) payload()    {}
func (Space) payload()   {}

// stretchy is the node behind a delimiter or surd token: a symbol sized to
// a required height by the extensible resolver.
type stretchy struct {
	Symbol MathSymbol
	Height float64
}

func (stretchy) node() {}

// mergeTokens folds the translated boxes of tokens. An empty slice yields
// the degenerate zero box.
func mergeTokens(tokens []Token) BBox {
	if len(tokens) == 0 {
		return BBox{}
	}
	ret := tokens[0].Bounds()
	for _, t := range tokens[1:] {
		ret = ret.Merge(t.Bounds())
	}
	return ret
}

// shiftTokens translates every token of tokens by d in place.
func shiftTokens(tokens []Token, d Point) {
	for i := range tokens {
		tokens[i].Offset = tokens[i].Offset.Add(d)
	}
}

// String returns a compact description of the token, for debugging.
func (t Token) String() string {
	switch p := t.Payload.(type) {
	case Recurse:
		return fmt.Sprintf("recurse(%v, %T) @ %v", p.Style, p.Node, t.Offset)
	case Glyph:
		return fmt.Sprintf("glyph(%q, %v, %g) @ %v", p.Text, p.Family, p.Size, t.Offset)
	case Rule:
		return fmt.Sprintf("rule @ %v", t.Offset)
	case Space:
		return fmt.Sprintf("space @ %v", t.Offset)
	}
	return fmt.Sprintf("token(%T) @ %v", t.Payload, t.Offset)
}
