package mathtext

import "fmt"

// Style is one of the eight TeX styles.
//
// The Prime variants are cramped: superscripts are raised less. Priming
// never changes the size. The ordering of the constants matters only for
// size lookup.
type Style uint8

const (
	Display Style = iota
	DisplayPrime
	Text
	TextPrime
	Script
	ScriptPrime
	ScriptScript
	ScriptScriptPrime
)

var styleNames = [...]string{
	Display:           "Display",
	DisplayPrime:      "DisplayPrime",
	Text:              "Text",
	TextPrime:         "TextPrime",
	Script:            "Script",
	ScriptPrime:       "ScriptPrime",
	ScriptScript:      "ScriptScript",
	ScriptScriptPrime: "ScriptScriptPrime",
}

// String returns the string representation of a Style.
func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// mustValid panics on values outside the eight styles.
func (s Style) mustValid() {
	if s > ScriptScriptPrime {
		panic(fmt.Sprintf("mathtext: invalid style %d", uint8(s)))
	}
}

// IsCramped reports whether s is a primed (cramped) style.
func (s Style) IsCramped() bool {
	switch s {
	case DisplayPrime, TextPrime, ScriptPrime, ScriptScriptPrime:
		return true
	case Display, Text, Script, ScriptScript:
		return false
	}
	s.mustValid()
	return false
}

// Cramped returns the primed variant of s.
func (s Style) Cramped() Style {
	switch s {
	case Display, DisplayPrime:
		return DisplayPrime
	case Text, TextPrime:
		return TextPrime
	case Script, ScriptPrime:
		return ScriptPrime
	case ScriptScript, ScriptScriptPrime:
		return ScriptScriptPrime
	}
	s.mustValid()
	return s
}

// withCramping returns the target level, primed when cramped is set.
func withCramping(target Style, cramped bool) Style {
	if cramped {
		return target.Cramped()
	}
	return target
}

// IsDisplay reports whether s is Display or DisplayPrime.
func (s Style) IsDisplay() bool {
	s.mustValid()
	return s == Display || s == DisplayPrime
}

// IsScript reports whether s is one of the script or scriptscript styles.
func (s Style) IsScript() bool {
	s.mustValid()
	return s >= Script
}

// SizeRatio returns the size of s relative to text size under p.
func (p Params) SizeRatio(s Style) float64 {
	switch s {
	case Display, DisplayPrime, Text, TextPrime:
		return 1
	case Script, ScriptPrime:
		return p.ScriptRatio
	case ScriptScript, ScriptScriptPrime:
		return p.ScriptScriptRatio
	}
	s.mustValid()
	return 0
}

// StyleSize returns the size ratio of s under the default parameters:
// 1 for display and text, the script ratio for script, and the
// scriptscript ratio for scriptscript.
func StyleSize(s Style) float64 {
	return defaultParams.SizeRatio(s)
}

var defaultParams = DefaultParams()

// NextSuperscript returns the style of a superscript set in s.
// Display and text go to script, script and scriptscript go to
// scriptscript. Crampedness is inherited from s.
func (s Style) NextSuperscript() Style {
	switch s {
	case Display, DisplayPrime, Text, TextPrime:
		return withCramping(Script, s.IsCramped())
	case Script, ScriptPrime, ScriptScript, ScriptScriptPrime:
		return withCramping(ScriptScript, s.IsCramped())
	}
	s.mustValid()
	return s
}

// NextSubscript returns the style of a subscript set in s: the superscript
// level, always cramped.
func (s Style) NextSubscript() Style {
	return s.NextSuperscript().Cramped()
}

// NextNumerator returns the style of a fraction numerator set in s.
// Display goes to text, text to script, script and scriptscript to
// scriptscript. Crampedness is inherited from s.
func (s Style) NextNumerator() Style {
	switch s {
	case Display, DisplayPrime:
		return withCramping(Text, s.IsCramped())
	case Text, TextPrime:
		return withCramping(Script, s.IsCramped())
	case Script, ScriptPrime, ScriptScript, ScriptScriptPrime:
		return withCramping(ScriptScript, s.IsCramped())
	}
	s.mustValid()
	return s
}

// NextDenominator returns the style of a fraction denominator set in s:
// the numerator level, always cramped.
func (s Style) NextDenominator() Style {
	return s.NextNumerator().Cramped()
}
