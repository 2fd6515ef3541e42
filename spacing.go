package mathtext

// PostProcessInitial returns the effective class of the first atom of a
// list. A list can never start with a binary operator, so Bin becomes Ord.
func PostProcessInitial(class AtomClass) AtomClass {
	if class == Bin {
		return Ord
	}
	return class
}

// PostProcessInterior returns the effective class of an atom following an
// atom whose (already reclassified) class is prev. A Bin after Bin, Op,
// Rel, Open or Punct is unary and becomes Ord.
func PostProcessInterior(prev, class AtomClass) AtomClass {
	if class != Bin {
		return class
	}
	switch prev {
	case Bin, Op, Rel, Open, Punct:
		return Ord
	}
	return class
}

// ClassifyList returns the effective class of every item of list; entries
// for non-atom items are left as Ord and must be ignored.
//
// Atoms are processed left to right, each one against the already
// reclassified previous atom. A Bin that ends the list or is followed by
// Rel, Close or Punct also becomes Ord.
func ClassifyList(list MathList) []AtomClass {
	classes := make([]AtomClass, len(list))
	prev := -1
	for i, it := range list {
		atom, ok := it.(Atom)
		if !ok {
			continue
		}
		class := atom.Class
		if prev < 0 {
			class = PostProcessInitial(class)
		} else {
			class = PostProcessInterior(classes[prev], class)
			if classes[prev] == Bin && (class == Rel || class == Close || class == Punct) {
				classes[prev] = Ord
			}
		}
		classes[i] = class
		prev = i
	}
	if prev >= 0 && classes[prev] == Bin {
		classes[prev] = Ord
	}
	return classes
}

// spacingClass maps an atom class onto one of the eight table classes.
// Rad, Acc, Over, Under and VCenter atoms space as Ord.
func spacingClass(c AtomClass) AtomClass {
	switch c {
	case Ord, Op, Bin, Rel, Open, Close, Punct, Inner:
		return c
	case Rad, Acc, Over, Under, VCenter:
		return Ord
	}
	panic("mathtext: invalid atom class " + c.String())
}

// spaceKind is an entry of the math spacing table.
type spaceKind uint8

const (
	spaceNone spaceKind = iota
	// spaceThin survives in every style.
	spaceThin
	// spaceThinText, spaceMedium and spaceThick are dropped in script
	// and scriptscript styles.
	spaceThinText
	spaceMedium
	spaceThick
)

// mathSpacingTable is the TeX inter-atom spacing table (The TeXbook,
// chapter 18), rows are the left class and columns the right class in
// the order Ord, Op, Bin, Rel, Open, Close, Punct, Inner. Impossible
// combinations are spaceNone.
var mathSpacingTable = [8][8]spaceKind{
	// Ord
	{spaceNone, spaceThin, spaceMedium, spaceThick, spaceNone, spaceNone, spaceNone, spaceThinText},
	// Op
	{spaceThin, spaceThin, spaceNone, spaceThick, spaceNone, spaceNone, spaceNone, spaceThinText},
	// Bin
	{spaceMedium, spaceMedium, spaceNone, spaceNone, spaceMedium, spaceNone, spaceNone, spaceMedium},
	// Rel
	{spaceThick, spaceThick, spaceNone, spaceNone, spaceThick, spaceNone, spaceNone, spaceThick},
	// Open
	{spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone},
	// Close
	{spaceNone, spaceThin, spaceMedium, spaceThick, spaceNone, spaceNone, spaceNone, spaceThinText},
	// Punct
	{spaceThinText, spaceThinText, spaceNone, spaceThinText, spaceThinText, spaceThinText, spaceThinText, spaceThinText},
	// Inner
	{spaceThinText, spaceThin, spaceMedium, spaceThick, spaceThinText, spaceNone, spaceThinText, spaceThinText},
}

// MathSpacing returns the space between adjacent atoms of classes left and
// right in style, for a backend whose text size is fontSize.
//
// Thin, medium and thick spaces are ThinMuSkip, MedMuSkip and ThickMuSkip
// scaled by the style size. Medium and thick spaces collapse to zero in
// script and scriptscript styles.
func (p Params) MathSpacing(left, right AtomClass, style Style, fontSize float64) float64 {
	kind := mathSpacingTable[spacingClass(left)][spacingClass(right)]
	em := fontSize * p.SizeRatio(style)

	switch kind {
	case spaceNone:
		return 0
	case spaceThin:
		return p.ThinMuSkip * em
	}
	if style.IsScript() {
		return 0
	}
	switch kind {
	case spaceThinText:
		return p.ThinMuSkip * em
	case spaceMedium:
		return p.MedMuSkip * em
	case spaceThick:
		return p.ThickMuSkip * em
	}
	return 0
}

// MathSpacing returns the inter-atom space under the default parameters
// at a text size of 1 em.
func MathSpacing(left, right AtomClass, style Style) float64 {
	return defaultParams.MathSpacing(left, right, style, 1)
}

// KerningMu converts a kern amount in math units (1/18 em) to a length in
// style for a backend whose text size is fontSize.
func (p Params) KerningMu(amount float64, style Style, fontSize float64) float64 {
	return amount / 18 * fontSize * p.SizeRatio(style)
}
