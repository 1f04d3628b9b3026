// Package ebitengine provides an Ebitengine backend for the slate
// package. It converts the context's flat buffers into Ebitengine
// vertices and issues a single DrawTriangles per frame.
package ebitengine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/slateui/slate"
)

// Renderer draws slate frames onto an Ebitengine image.
type Renderer struct {
	atlas  *ebiten.Image
	atlasW float32
	atlasH float32

	// scratch buffers reused across frames
	verts []ebiten.Vertex
	idx   []uint16
}

// NewRenderer creates a renderer from a one-channel coverage bitmap.
// The bitmap is expanded to white premultiplied RGBA, so vertex colors
// tint it directly.
func NewRenderer(pixels []uint8, w, h int) *Renderer {
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, a := range pixels {
		rgba.Pix[i*4+0] = a
		rgba.Pix[i*4+1] = a
		rgba.Pix[i*4+2] = a
		rgba.Pix[i*4+3] = a
	}
	return &Renderer{
		atlas:  ebiten.NewImageFromImage(rgba),
		atlasW: float32(w),
		atlasH: float32(h),
	}
}

// Render draws one frame's buffers onto dst. Call after Context.End.
//
// Ebitengine indices are uint16, so frames with more than 65535
// vertices are split into multiple draws on quad boundaries. Slate
// emits only quads, so every run of 4 vertices pairs with a run of 6
// indices.
func (r *Renderer) Render(dst *ebiten.Image, vertices []slate.Vertex, indices []uint32) {
	if len(vertices) == 0 || len(indices) == 0 {
		return
	}

	r.verts = r.verts[:0]
	for _, v := range vertices {
		cr, cg, cb, ca := slate.UnpackRGBA(v.Color)
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   v.Pos[0],
			DstY:   v.Pos[1],
			SrcX:   v.UV[0] * r.atlasW,
			SrcY:   v.UV[1] * r.atlasH,
			ColorR: float32(cr) / 255,
			ColorG: float32(cg) / 255,
			ColorB: float32(cb) / 255,
			ColorA: float32(ca) / 255,
		})
	}

	op := &ebiten.DrawTrianglesOptions{}

	const maxVerts = 65532 // largest multiple of 4 below the uint16 limit
	for start := 0; start < len(r.verts); start += maxVerts {
		end := start + maxVerts
		if end > len(r.verts) {
			end = len(r.verts)
		}
		idxStart := start / 4 * 6
		idxEnd := end / 4 * 6

		r.idx = r.idx[:0]
		for _, i := range indices[idxStart:idxEnd] {
			r.idx = append(r.idx, uint16(int(i)-start))
		}
		dst.DrawTriangles(r.verts[start:end], r.idx, r.atlas, op)
	}
}
