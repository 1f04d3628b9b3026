package slate

// Geometry emission. All shapes are quads decomposed into two
// counter-clockwise triangles, indices offset by the vertex count at
// emission time, so every widget composes into the context's one
// vertex/index buffer pair.

// initialVertexCap and initialIndexCap size the buffers on first use.
// The two buffers grow geometrically and independently.
const (
	initialVertexCap = 1024
	initialIndexCap  = 1536
)

// growSlice returns s with room for extra more elements, doubling the
// capacity until it fits. Tolerates a nil slice (capacity zero after
// teardown); returns s unchanged when extra is negative.
func growSlice[T any](s []T, extra int, initial int) []T {
	if extra < 0 {
		return s
	}
	need := len(s) + extra
	if need <= cap(s) {
		return s
	}
	newCap := cap(s)
	if newCap == 0 {
		newCap = initial
	}
	for newCap < need {
		newCap *= 2
	}
	out := make([]T, len(s), newCap)
	copy(out, s)
	return out
}

// reserve ensures room for extraVerts vertices and extraIdx indices.
// Negative requests are rejected.
func (ctx *Context) reserve(extraVerts, extraIdx int) bool {
	if extraVerts < 0 || extraIdx < 0 {
		return false
	}
	ctx.Vertices = growSlice(ctx.Vertices, extraVerts, initialVertexCap)
	ctx.Indices = growSlice(ctx.Indices, extraIdx, initialIndexCap)
	return true
}

// emitQuad appends one quad: vertices in TL, TR, BR, BL order, indices
// (0,1,2) and (0,2,3) relative to the current vertex count.
func (ctx *Context) emitQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	if !ctx.reserve(4, 6) {
		return
	}
	base := uint32(len(ctx.Vertices))
	ctx.Vertices = append(ctx.Vertices,
		Vertex{Pos: [2]float32{x0, y0}, UV: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, UV: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, UV: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, UV: [2]float32{u0, v1}, Color: color},
	)
	ctx.Indices = append(ctx.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// DrawRect emits a solid rectangle, intersected with the active clip
// rectangle. An empty intersection emits nothing; a partial intersection
// clamps the positions (the UV stays uniform for solid fills). No-op
// without an attached atlas.
func (ctx *Context) DrawRect(r Rect, color uint32) {
	if ctx.atlas == nil || r.Empty() {
		return
	}
	if ctx.hasClip {
		r = r.Intersect(ctx.clip)
		if r.Empty() {
			return
		}
	}
	u, v := ctx.atlas.White()
	ctx.emitQuad(r.X, r.Y, r.X+r.W, r.Y+r.H, u, v, u, v, color)
}

// DrawBorder emits a rectangle outline as four edge strips. Non-positive
// thickness, or thickness exceeding half the smaller rect dimension, emits
// nothing. Each strip is clipped independently by DrawRect.
func (ctx *Context) DrawBorder(r Rect, thickness float32, color uint32) {
	if ctx.atlas == nil || r.Empty() {
		return
	}
	if thickness <= 0 || thickness > minf(r.W, r.H)/2 {
		return
	}
	// Top and bottom span the full width; left and right fill between.
	ctx.DrawRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, color)
	ctx.DrawRect(Rect{X: r.X, Y: r.Y + r.H - thickness, W: r.W, H: thickness}, color)
	ctx.DrawRect(Rect{X: r.X, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
	ctx.DrawRect(Rect{X: r.X + r.W - thickness, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
}

// drawGlyphQuad emits one textured quad, clipped against the active clip
// rectangle with the UVs re-interpolated to the retained fraction on each
// axis, so a glyph scrolled half out of view shows the correct half of
// its bitmap. Degenerate quads, before or after clipping, emit nothing.
func (ctx *Context) drawGlyphQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	if ctx.atlas == nil {
		return
	}
	if x1-x0 <= 0 || y1-y0 <= 0 {
		return
	}
	if ctx.hasClip {
		cx0 := ctx.clip.X
		cy0 := ctx.clip.Y
		cx1 := ctx.clip.X + ctx.clip.W
		cy1 := ctx.clip.Y + ctx.clip.H

		nx0 := maxf(x0, cx0)
		ny0 := maxf(y0, cy0)
		nx1 := minf(x1, cx1)
		ny1 := minf(y1, cy1)
		if nx1-nx0 <= 0 || ny1-ny0 <= 0 {
			return
		}

		du := (u1 - u0) / (x1 - x0)
		dv := (v1 - v0) / (y1 - y0)
		u0, u1 = u0+(nx0-x0)*du, u1-(x1-nx1)*du
		v0, v1 = v0+(ny0-y0)*dv, v1-(y1-ny1)*dv
		x0, y0, x1, y1 = nx0, ny0, nx1, ny1
	}
	ctx.emitQuad(x0, y0, x1, y1, u0, v0, u1, v1, color)
}

// DrawText emits glyph quads for s with the pen starting at (x, y).
// Bytes missing from the atlas advance nothing and draw nothing.
// No-op without an attached atlas.
func (ctx *Context) DrawText(x, y float32, s string, color uint32) {
	if ctx.atlas == nil {
		return
	}
	pen := x
	for i := 0; i < len(s); i++ {
		g, ok := ctx.atlas.Glyph(s[i])
		if !ok {
			continue
		}
		gx := pen + g.OffsetX
		gy := y + g.OffsetY
		ctx.drawGlyphQuad(gx, gy, gx+g.W, gy+g.H, g.U0, g.V0, g.U1, g.V1, color)
		pen += g.Advance
	}
}

// setClip activates a clip rectangle for subsequent emission and
// hit-testing.
func (ctx *Context) setClip(r Rect) {
	ctx.clip = r
	ctx.hasClip = true
}

// clearClip deactivates the clip rectangle.
func (ctx *Context) clearClip() {
	ctx.clip = Rect{}
	ctx.hasClip = false
}

// ClipRect returns the active clip rectangle, if any.
func (ctx *Context) ClipRect() (Rect, bool) {
	return ctx.clip, ctx.hasClip
}
