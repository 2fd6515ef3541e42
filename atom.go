package mathtext

import "fmt"

// AtomClass is the TeX math class of an atom.
type AtomClass uint8

const (
	Ord AtomClass = iota
	Op
	Bin
	Rel
	Open
	Close
	Punct
	Inner
	Rad
	Acc
	Over
	Under
	VCenter
)

var atomClassNames = [...]string{
	Ord:     "Ord",
	Op:      "Op",
	Bin:     "Bin",
	Rel:     "Rel",
	Open:    "Open",
	Close:   "Close",
	Punct:   "Punct",
	Inner:   "Inner",
	Rad:     "Rad",
	Acc:     "Acc",
	Over:    "Over",
	Under:   "Under",
	VCenter: "VCenter",
}

// String returns the string representation of an AtomClass.
func (c AtomClass) String() string {
	if int(c) < len(atomClassNames) {
		return atomClassNames[c]
	}
	return fmt.Sprintf("AtomClass(%d)", uint8(c))
}

// Node is anything the token emitter can recurse into: a field or an atom.
// The set of implementations is closed.
type Node interface {
	node()
}

// Field is the content of an atom's nucleus, superscript, subscript, index
// or accent: a MathSymbol, a Box or a nested MathList.
// A nil Field is empty and contributes nothing.
type Field interface {
	Node
	field()
}

// Item is one element of a MathList: Atom, Kern, Boundary or Fraction.
type Item interface {
	item()
}

// MathSymbol is a single glyph plus its style-independent natural family.
// Class records the class a parser would give an atom made of this symbol.
type MathSymbol struct {
	Glyph  rune
	Family Family
	Class  AtomClass
}

// Sym returns an ordinary symbol in the plain family.
// MathFamily decides between upright and italic from the glyph.
func Sym(r rune) MathSymbol {
	return MathSymbol{Glyph: r, Family: FamilyPlain, Class: Ord}
}

// Box is a pre-measured string set in the regular text family,
// such as the name of an operator like "sin".
type Box struct {
	Text string
}

// MathList is an ordered sequence of items forming one row of a formula.
//
// A Fraction item splits the list: the items before it are the numerator
// and the items after it the denominator. Only the first Fraction of a
// level counts; later markers are dropped from the denominator. A list that begins and ends with a Boundary is a pair of
// stretchy delimiters around the interior items.
type MathList []Item

// Atom is a nucleus with optional superscript and subscript.
//
// Index is the degree of a Rad atom; Accent is the accent symbol of an
// Acc atom. NoLimits keeps the scripts of a display Op beside the operator
// instead of above and below (integrals).
type Atom struct {
	Class       AtomClass
	Nucleus     Field
	Superscript Field
	Subscript   Field
	Index       Field
	Accent      Field
	NoLimits    bool
}

// Kern is explicit horizontal space in math units (1 mu = 1/18 em).
// It never produces a token.
type Kern struct {
	Amount float64
}

// Boundary is a stretchy delimiter bounding a math list.
// A glyph of '.' or 0 is the null delimiter.
type Boundary struct {
	Symbol MathSymbol
}

// Fraction is a generalized fraction marker. RuleRatio scales the default
// rule thickness; zero draws no rule (binomial coefficients).
//
// Left and Right, when either has a glyph, enclose the fraction in
// delimiters of the fixed size Delim1 (display) or Delim2 em. A side left
// zero then gets the null delimiter space.
type Fraction struct {
	RuleRatio   float64
	Left, Right MathSymbol
}

// delimited reports whether f carries its own delimiters.
func (f Fraction) delimited() bool {
	return f.Left.Glyph != 0 || f.Right.Glyph != 0
}

func (MathSymbol) node() {}
func (Box) node()        {}
func (MathList) node()   {}
func (Atom) node()       {}

func (MathSymbol) field() {}
func (Box) field()        {}
func (MathList) field()   {}

func (Atom) item()     {}
func (Kern) item()     {}
func (Boundary) item() {}
func (Fraction) item() {}

// isEmpty reports whether f contributes nothing to the layout.
func isEmpty(f Field) bool {
	switch f := f.(type) {
	case nil:
		return true
	case MathSymbol:
		return f.Glyph == 0
	case Box:
		return f.Text == ""
	case MathList:
		return len(f) == 0
	}
	panic(fmt.Sprintf("mathtext: unknown field type %T", f))
}

// isNullDelimiter reports whether a boundary symbol draws nothing.
func isNullDelimiter(s MathSymbol) bool {
	return s.Glyph == 0 || s.Glyph == '.'
}
