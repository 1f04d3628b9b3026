package fontatlas_test

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/slateui/slate"
	"github.com/slateui/slate/fontatlas"
)

func TestNewBakesPrintableASCII(t *testing.T) {
	atlas, err := fontatlas.New(goregular.TTF, 14)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if atlas.W <= 0 || atlas.H <= 0 || len(atlas.Pixels) != atlas.W*atlas.H {
		t.Fatalf("bitmap %dx%d with %d pixels", atlas.W, atlas.H, len(atlas.Pixels))
	}
	if atlas.LineHeight() <= 0 || atlas.Ascent() <= 0 {
		t.Errorf("metrics: line height %v, ascent %v", atlas.LineHeight(), atlas.Ascent())
	}

	for ch := byte(32); ch <= 126; ch++ {
		g, ok := atlas.Glyph(ch)
		if !ok {
			t.Fatalf("glyph %q missing", ch)
		}
		if g.U0 < 0 || g.V0 < 0 || g.U1 > 1 || g.V1 > 1 || g.U0 > g.U1 || g.V0 > g.V1 {
			t.Errorf("glyph %q UV out of range: %+v", ch, g)
		}
		if ch != ' ' && g.Advance <= 0 {
			t.Errorf("glyph %q has no advance", ch)
		}
	}

	// Visible glyphs carry a bitmap.
	if g, _ := atlas.Glyph('A'); g.W <= 0 || g.H <= 0 {
		t.Error("glyph A has no extent")
	}

	// Control and non-ASCII bytes are absent.
	if _, ok := atlas.Glyph('\t'); ok {
		t.Error("tab baked")
	}
	if _, ok := atlas.Glyph(200); ok {
		t.Error("byte 200 baked")
	}
}

func TestWhiteTexelIsOpaque(t *testing.T) {
	atlas, err := fontatlas.New(goregular.TTF, 14)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	u, v := atlas.White()
	x := int(u * float32(atlas.W))
	y := int(v * float32(atlas.H))
	if atlas.Pixels[y*atlas.W+x] != 255 {
		t.Errorf("white texel at (%d,%d) has coverage %d", x, y, atlas.Pixels[y*atlas.W+x])
	}
}

func TestAtlasRendersText(t *testing.T) {
	atlas, err := fontatlas.New(goregular.TTF, 14)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := slate.New(slate.WithAtlas(atlas))
	defer ctx.Destroy()

	ctx.Begin(0, 0, false)
	ctx.DrawText(0, 0, "Hello", slate.ColorWhite)
	ctx.End()

	if len(ctx.Vertices) != 5*4 {
		t.Errorf("drew %d vertices for 5 glyphs", len(ctx.Vertices))
	}
	if size := ctx.MeasureText("Hello"); size.X <= 0 || size.Y != atlas.LineHeight() {
		t.Errorf("MeasureText = %+v", size)
	}
}

func TestNewRejectsGarbage(t *testing.T) {
	if _, err := fontatlas.New([]byte("not a font"), 14); err == nil {
		t.Error("garbage accepted")
	}
}

func TestParseFontLookups(t *testing.T) {
	fnt, err := fontatlas.ParseFont(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseFont: %v", err)
	}
	if fnt.NumGlyphs() <= 0 {
		t.Fatal("no glyphs")
	}

	gi, err := fnt.GlyphIndex('A')
	if err != nil {
		t.Fatalf("GlyphIndex: %v", err)
	}
	if gi == 0 {
		t.Fatal("A mapped to the missing glyph")
	}

	segs, err := fnt.GlyphOutline(gi, 14)
	if err != nil {
		t.Fatalf("GlyphOutline: %v", err)
	}
	if len(segs) == 0 {
		t.Error("A has an empty outline")
	}
}
