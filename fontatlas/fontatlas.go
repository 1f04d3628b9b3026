// Package fontatlas bakes a restricted ASCII glyph set from a TTF/OTF
// font into a single coverage bitmap with per-glyph UV rectangles. The
// resulting Atlas implements slate.GlyphAtlas; the bitmap is uploaded as
// a one-channel texture by whichever backend renders the frame.
package fontatlas

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/slateui/slate"
)

// firstGlyph..lastGlyph is the baked codepoint range (printable ASCII).
const (
	firstGlyph = 32
	lastGlyph  = 126
)

// whitePad is the square of solid coverage reserved at the atlas origin.
// Untextured rectangles sample its center so the whole frame renders
// from one texture.
const whitePad = 4

// Atlas is a baked glyph set: one coverage bitmap plus UV rectangles.
type Atlas struct {
	// Pixels is the coverage bitmap, W*H bytes, row-major, 255 = opaque.
	Pixels []uint8
	W, H   int

	glyphs     [256]slate.Glyph
	present    [256]bool
	lineHeight float32
	ascent     float32
}

// Glyph returns the baked glyph for ch.
func (a *Atlas) Glyph(ch byte) (slate.Glyph, bool) {
	return a.glyphs[ch], a.present[ch]
}

// White returns the UV of the solid-white region's center.
func (a *Atlas) White() (u, v float32) {
	return float32(whitePad) / 2 / float32(a.W), float32(whitePad) / 2 / float32(a.H)
}

// LineHeight returns the baked line height in pixels.
func (a *Atlas) LineHeight() float32 {
	return a.lineHeight
}

// Ascent returns the baseline distance from a line's top, in pixels.
func (a *Atlas) Ascent() float32 {
	return a.ascent
}

// New parses ttf and bakes printable ASCII at sizePx into an atlas.
func New(ttf []byte, sizePx float32) (*Atlas, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontatlas: new face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	lineHeight := float32(m.Height.Round())

	// Measure every glyph, then shelf-pack rows left to right, growing
	// the square atlas until everything fits.
	type measured struct {
		ch      byte
		w, h    int
		bx, by  float32
		advance float32
	}
	var glyphs []measured
	for ch := byte(firstGlyph); ch <= lastGlyph; ch++ {
		bounds, adv, ok := face.GlyphBounds(rune(ch))
		if !ok {
			continue
		}
		glyphs = append(glyphs, measured{
			ch:      ch,
			w:       (bounds.Max.X - bounds.Min.X).Ceil(),
			h:       (bounds.Max.Y - bounds.Min.Y).Ceil(),
			bx:      float32(bounds.Min.X.Floor()),
			by:      float32(bounds.Min.Y.Floor()),
			advance: float32(adv.Round()),
		})
	}

	const padding = 1
	size := 128
	var pos map[byte]image.Point
	for {
		x := whitePad + padding
		y := padding
		rowH := 0
		fits := true
		pos = make(map[byte]image.Point, len(glyphs))

		for _, g := range glyphs {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+padding > size {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > size || g.w+2*padding > size {
				fits = false
				break
			}
			pos[g.ch] = image.Point{X: x, Y: y}
			x += g.w + padding
			if g.h > rowH {
				rowH = g.h
			}
		}
		if fits {
			break
		}
		size *= 2
		if size > 4096 {
			return nil, fmt.Errorf("fontatlas: glyphs do not fit a 4096px atlas at size %g", sizePx)
		}
	}

	atlas := &Atlas{
		Pixels:     make([]uint8, size*size),
		W:          size,
		H:          size,
		lineHeight: lineHeight,
		ascent:     ascent,
	}
	for y := 0; y < whitePad; y++ {
		for x := 0; x < whitePad; x++ {
			atlas.Pixels[y*size+x] = 255
		}
	}

	img := image.NewAlpha(image.Rect(0, 0, size, size))
	for _, g := range glyphs {
		p, packed := pos[g.ch]
		if packed {
			// Rasterize with the dot placed so the glyph's bounding box
			// lands exactly at its packed position.
			dot := fixed.Point26_6{
				X: fixed.I(p.X) - fixed.I(int(g.bx)),
				Y: fixed.I(p.Y) - fixed.I(int(g.by)),
			}
			dr, mask, maskp, _, ok := face.Glyph(dot, rune(g.ch))
			if ok {
				draw.DrawMask(img, dr, image.White, image.Point{}, mask, maskp, draw.Over)
			}
		}

		uv := func(px int, span int) float32 { return float32(px) / float32(span) }
		atlas.glyphs[g.ch] = slate.Glyph{
			U0: uv(p.X, size), V0: uv(p.Y, size),
			U1: uv(p.X+g.w, size), V1: uv(p.Y+g.h, size),
			W: float32(g.w), H: float32(g.h),
			OffsetX: g.bx,
			OffsetY: ascent + g.by,
			Advance: g.advance,
		}
		atlas.present[g.ch] = true
	}

	// Collapse the alpha image into the flat coverage bitmap, keeping
	// the white region intact.
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if a := img.AlphaAt(x, y).A; a > atlas.Pixels[y*size+x] {
				atlas.Pixels[y*size+x] = a
			}
		}
	}
	return atlas, nil
}
