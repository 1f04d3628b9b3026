package slate_test

import (
	"testing"

	"github.com/slateui/slate"
)

func TestDrawRectGeometry(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		ctx.DrawRect(slate.Rect{X: 10, Y: 20, W: 30, H: 40}, slate.ColorRed)
	})

	if len(ctx.Vertices) != 4 || len(ctx.Indices) != 6 {
		t.Fatalf("got %d vertices, %d indices", len(ctx.Vertices), len(ctx.Indices))
	}

	// Vertex order is TL, TR, BR, BL.
	want := [4][2]float32{{10, 20}, {40, 20}, {40, 60}, {10, 60}}
	for i, w := range want {
		if ctx.Vertices[i].Pos != w {
			t.Errorf("vertex %d = %v, want %v", i, ctx.Vertices[i].Pos, w)
		}
	}

	// Two triangles: (0,1,2) and (0,2,3).
	wantIdx := []uint32{0, 1, 2, 0, 2, 3}
	for i, w := range wantIdx {
		if ctx.Indices[i] != w {
			t.Errorf("index %d = %d, want %d", i, ctx.Indices[i], w)
		}
	}

	// Solid fills sample the atlas white texel uniformly.
	wu, wv := stubAtlas{}.White()
	for i, v := range ctx.Vertices {
		if v.UV != [2]float32{wu, wv} {
			t.Errorf("vertex %d UV = %v, want white texel", i, v.UV)
		}
		if v.Color != slate.ColorRed {
			t.Errorf("vertex %d color = %#x", i, v.Color)
		}
	}
}

func TestIndicesOffsetPerQuad(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		ctx.DrawRect(slate.Rect{W: 10, H: 10}, slate.ColorWhite)
		ctx.DrawRect(slate.Rect{X: 20, W: 10, H: 10}, slate.ColorWhite)
	})

	if len(ctx.Indices) != 12 {
		t.Fatalf("got %d indices", len(ctx.Indices))
	}
	second := ctx.Indices[6:]
	wantIdx := []uint32{4, 5, 6, 4, 6, 7}
	for i, w := range wantIdx {
		if second[i] != w {
			t.Errorf("second quad index %d = %d, want %d", i, second[i], w)
		}
	}
}

func TestDrawRectWithoutAtlas(t *testing.T) {
	ctx := slate.New() // no atlas
	frame(ctx, 0, 0, false, func() {
		ctx.DrawRect(slate.Rect{W: 10, H: 10}, slate.ColorWhite)
		ctx.DrawText(0, 0, "hello", slate.ColorWhite)
		ctx.DrawBorder(slate.Rect{W: 10, H: 10}, 1, slate.ColorWhite)
	})
	if len(ctx.Vertices) != 0 {
		t.Errorf("emission without atlas produced %d vertices", len(ctx.Vertices))
	}
}

func TestDrawRectEmptyAndDegenerate(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		ctx.DrawRect(slate.Rect{W: 0, H: 10}, slate.ColorWhite)
		ctx.DrawRect(slate.Rect{W: 10, H: -5}, slate.ColorWhite)
	})
	if len(ctx.Vertices) != 0 {
		t.Errorf("degenerate rects emitted %d vertices", len(ctx.Vertices))
	}
}

// Clipped rect positions clamp to the clip while the UV stays the white
// texel; panels exercise this through their content clip.
func TestDrawRectClipped(t *testing.T) {
	ctx := newTestContext()
	var scroll float32
	frame(ctx, -100, -100, false, func() {
		ctx.PanelBegin(ctx.ID("p"), "", slate.Rect{X: 0, Y: 0, W: 200, H: 200}, &scroll)
		clip, ok := ctx.ClipRect()
		if !ok {
			t.Fatal("panel did not set a clip rect")
		}

		mark := len(ctx.Vertices)

		// Fully outside the clip: nothing.
		ctx.DrawRect(slate.Rect{X: 500, Y: 500, W: 50, H: 50}, slate.ColorWhite)
		if len(ctx.Vertices) != mark {
			t.Error("fully clipped rect emitted vertices")
		}

		// Straddling the clip's left edge: clamped to the edge.
		ctx.DrawRect(slate.Rect{X: clip.X - 20, Y: clip.Y + 10, W: 40, H: 10}, slate.ColorWhite)
		if len(ctx.Vertices) != mark+4 {
			t.Fatal("partially clipped rect did not emit")
		}
		tl := ctx.Vertices[mark]
		if tl.Pos[0] != clip.X {
			t.Errorf("clamped left edge = %v, want %v", tl.Pos[0], clip.X)
		}
		wu, wv := stubAtlas{}.White()
		if tl.UV != [2]float32{wu, wv} {
			t.Errorf("clipped solid fill UV = %v, want white texel", tl.UV)
		}

		ctx.PanelEnd()
	})
}

// A glyph half outside the clip keeps the matching half of its bitmap:
// the UV is re-interpolated in proportion to the clipped extent.
func TestGlyphClipUVReinterpolation(t *testing.T) {
	ctx := newTestContext()
	var scroll float32
	frame(ctx, -100, -100, false, func() {
		ctx.PanelBegin(ctx.ID("p"), "", slate.Rect{X: 0, Y: 0, W: 200, H: 200}, &scroll)
		clip, _ := ctx.ClipRect()

		mark := len(ctx.Vertices)

		// Place one glyph so its left half is outside the clip. The stub
		// glyph is 8 wide with UV spanning 0.25..0.5.
		g, _ := stubAtlas{}.Glyph('A')
		x := clip.X - g.W/2
		y := clip.Y + 10 - g.OffsetY
		ctx.DrawText(x, y, "A", slate.ColorWhite)

		if len(ctx.Vertices) != mark+4 {
			t.Fatal("clipped glyph did not emit")
		}
		tl := ctx.Vertices[mark]
		tr := ctx.Vertices[mark+1]

		if tl.Pos[0] != clip.X {
			t.Errorf("glyph left edge = %v, want clip edge %v", tl.Pos[0], clip.X)
		}
		// Half the width is gone, so the U range starts halfway through.
		wantU0 := g.U0 + (g.U1-g.U0)/2
		if diff := tl.UV[0] - wantU0; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("reinterpolated U0 = %v, want %v", tl.UV[0], wantU0)
		}
		if tr.UV[0] != g.U1 {
			t.Errorf("right U unchanged: got %v, want %v", tr.UV[0], g.U1)
		}

		ctx.PanelEnd()
	})
}

func TestDrawBorderFourStrips(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		ctx.DrawBorder(slate.Rect{X: 0, Y: 0, W: 100, H: 50}, 2, slate.ColorWhite)
	})
	if len(ctx.Vertices) != 16 {
		t.Errorf("border emitted %d vertices, want 16", len(ctx.Vertices))
	}
}

func TestDrawBorderRejectsBadThickness(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		r := slate.Rect{W: 100, H: 50}
		ctx.DrawBorder(r, 0, slate.ColorWhite)
		ctx.DrawBorder(r, -3, slate.ColorWhite)
		ctx.DrawBorder(r, 26, slate.ColorWhite) // > min(w,h)/2
	})
	if len(ctx.Vertices) != 0 {
		t.Errorf("rejected borders emitted %d vertices", len(ctx.Vertices))
	}
}

func TestDrawTextSkipsMissingGlyphs(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		// The tab byte has no glyph in the stub atlas; it draws nothing
		// and advances nothing.
		ctx.DrawText(0, 0, "a\tb", slate.ColorWhite)
	})
	if len(ctx.Vertices) != 8 {
		t.Fatalf("got %d vertices, want 8 (two glyphs)", len(ctx.Vertices))
	}
	// 'b' starts one advance after 'a', with no gap for the tab.
	g, _ := stubAtlas{}.Glyph('b')
	if x := ctx.Vertices[4].Pos[0]; x != g.Advance+g.OffsetX {
		t.Errorf("second glyph x = %v, want %v", x, g.Advance+g.OffsetX)
	}
}

func TestBuffersGrowFromZeroAfterDestroy(t *testing.T) {
	ctx := newTestContext()
	ctx.Destroy()
	ctx.SetAtlas(stubAtlas{})

	// Emit enough quads to force several doublings from nil buffers.
	frame(ctx, 0, 0, false, func() {
		for i := 0; i < 2000; i++ {
			ctx.DrawRect(slate.Rect{X: float32(i), W: 1, H: 1}, slate.ColorWhite)
		}
	})
	if len(ctx.Vertices) != 8000 || len(ctx.Indices) != 12000 {
		t.Errorf("got %d vertices, %d indices", len(ctx.Vertices), len(ctx.Indices))
	}
	// Index offsets stay consistent across growth.
	last := ctx.Indices[len(ctx.Indices)-1]
	if last != 7999 {
		t.Errorf("final index = %d, want 7999", last)
	}
}

func TestMeasureText(t *testing.T) {
	ctx := newTestContext()
	size := ctx.MeasureText("abcd")
	if size.X != 32 || size.Y != 14 {
		t.Errorf("MeasureText = %+v, want {32 14}", size)
	}
	if got := ctx.MeasureText(""); got.X != 0 {
		t.Errorf("empty string width = %v", got.X)
	}
}
