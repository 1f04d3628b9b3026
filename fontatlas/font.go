package fontatlas

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font exposes the two lookups the engine's collaborators need from a
// parsed font: glyph index by codepoint, and glyph outline by index.
// Rasterization and atlas packing live in New; Font is for callers that
// want to inspect or rasterize glyphs themselves.
//
// Not safe for concurrent use: the sfnt buffer is reused across calls.
type Font struct {
	fnt *sfnt.Font
	buf sfnt.Buffer
}

// ParseFont parses TTF/OTF data.
func ParseFont(data []byte) (*Font, error) {
	fnt, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: parse font: %w", err)
	}
	return &Font{fnt: fnt}, nil
}

// GlyphIndex returns the font's glyph index for r. Index zero is the
// font's "missing glyph".
func (f *Font) GlyphIndex(r rune) (sfnt.GlyphIndex, error) {
	gi, err := f.fnt.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, fmt.Errorf("fontatlas: glyph index for %q: %w", r, err)
	}
	return gi, nil
}

// GlyphOutline returns the outline segments for a glyph index at the
// given pixels-per-em.
func (f *Font) GlyphOutline(gi sfnt.GlyphIndex, ppem float32) (sfnt.Segments, error) {
	segs, err := f.fnt.LoadGlyph(&f.buf, gi, fixed.Int26_6(ppem*64), nil)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: load glyph %d: %w", gi, err)
	}
	return segs, nil
}

// NumGlyphs returns the glyph count of the font.
func (f *Font) NumGlyphs() int {
	return f.fnt.NumGlyphs()
}
