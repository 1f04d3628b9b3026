package slate

// Glyph describes one baked codepoint inside an atlas texture.
type Glyph struct {
	U0, V0, U1, V1   float32 // UV rectangle in the atlas texture
	W, H             float32 // quad size in pixels
	OffsetX, OffsetY float32 // pen offset from the cursor to the quad's top-left
	Advance          float32 // horizontal pen advance
}

// GlyphAtlas is the collaborator interface the core draws through. It is
// restricted to a single-byte glyph set; shaping and internationalization
// are outside this package.
//
// White returns the UV of a designated solid-white texel, used for all
// untextured rectangles so the whole frame renders from one texture.
type GlyphAtlas interface {
	Glyph(ch byte) (Glyph, bool)
	White() (u, v float32)
	LineHeight() float32
}

// SetAtlas attaches the glyph atlas the emitter draws through. With no
// atlas attached every emission call is a safe no-op.
func (ctx *Context) SetAtlas(atlas GlyphAtlas) {
	ctx.atlas = atlas
}

// Atlas returns the attached glyph atlas, or nil.
func (ctx *Context) Atlas() GlyphAtlas {
	return ctx.atlas
}

// MeasureText returns the pixel size of s rendered with the attached
// atlas. Unknown bytes measure as zero width. Returns the zero vector
// with no atlas attached.
func (ctx *Context) MeasureText(s string) Vec2 {
	if ctx.atlas == nil {
		return Vec2{}
	}
	var w float32
	for i := 0; i < len(s); i++ {
		if g, ok := ctx.atlas.Glyph(s[i]); ok {
			w += g.Advance
		}
	}
	return Vec2{X: w, Y: ctx.atlas.LineHeight()}
}
