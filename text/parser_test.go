package text

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// The two parsers read the same tables, so their unhinted measurements
// agree to within the 1/64 px precision of fixed.Int26_6.
func TestParsersAgree(t *testing.T) {
	xi := mustSource(t, goregular.TTF, WithParser("ximage")).Parsed()
	gt := mustSource(t, goregular.TTF, WithParser("gotext")).Parsed()

	const ppem = 32
	const tol = 1.0 / 32

	for _, r := range "axgH(|" {
		gid := xi.GlyphIndex(r)
		if gid == 0 || gt.GlyphIndex(r) != gid {
			t.Fatalf("GlyphIndex(%q) = %d (ximage), %d (gotext)", r, gid, gt.GlyphIndex(r))
		}

		if a, b := xi.GlyphAdvance(gid, ppem), gt.GlyphAdvance(gid, ppem); math.Abs(a-b) > tol {
			t.Errorf("GlyphAdvance(%q) = %v (ximage), %v (gotext)", r, a, b)
		}

		a, b := xi.GlyphBounds(gid, ppem), gt.GlyphBounds(gid, ppem)
		if math.Abs(a.MinY-b.MinY) > tol || math.Abs(a.MaxY-b.MaxY) > tol {
			t.Errorf("GlyphBounds(%q) = %+v (ximage), %+v (gotext)", r, a, b)
		}
	}

	if xi.GlyphIndex('\U0001D465') != 0 || gt.GlyphIndex('\U0001D465') != 0 {
		t.Error("missing rune should map to glyph 0")
	}

	mx, mg := xi.Metrics(ppem), gt.Metrics(ppem)
	if mx.Ascent <= 0 || mg.Ascent <= 0 {
		t.Errorf("Ascent = %v (ximage), %v (gotext), want positive", mx.Ascent, mg.Ascent)
	}
	if mx.Descent >= 0 || mg.Descent >= 0 {
		t.Errorf("Descent = %v (ximage), %v (gotext), want negative", mx.Descent, mg.Descent)
	}
	if mg.XHeight <= 0 || mg.Height() <= mg.Ascent {
		t.Errorf("gotext metrics = %+v", mg)
	}
}

type stubParser struct{ called bool }

func (p *stubParser) Parse(data []byte) (ParsedFont, error) {
	p.called = true
	return (&ximageParser{}).Parse(data)
}

func TestRegisterParser(t *testing.T) {
	stub := &stubParser{}
	RegisterParser("stub", stub)
	t.Cleanup(func() {
		parserMu.Lock()
		delete(parserRegistry, "stub")
		parserMu.Unlock()
	})

	src := mustSource(t, goregular.TTF, WithParser("stub"))
	if !stub.called {
		t.Error("registered parser was not used")
	}
	if src.ParserName() != "stub" {
		t.Errorf("ParserName() = %q", src.ParserName())
	}

	found := false
	for _, name := range Parsers() {
		found = found || name == "stub"
	}
	if !found {
		t.Errorf("Parsers() = %v, missing stub", Parsers())
	}
}
