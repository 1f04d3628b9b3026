package slate_test

import (
	"testing"

	"github.com/slateui/slate"
)

// stubAtlas is a fixed-metric glyph atlas for tests: every printable
// ASCII byte maps to an 8x12 quad advancing 8 pixels.
type stubAtlas struct{}

func (stubAtlas) Glyph(ch byte) (slate.Glyph, bool) {
	if ch < 32 || ch >= 127 {
		return slate.Glyph{}, false
	}
	return slate.Glyph{
		U0: 0.25, V0: 0.25, U1: 0.5, V1: 0.5,
		W: 8, H: 12,
		OffsetY: 2,
		Advance: 8,
	}, true
}

func (stubAtlas) White() (float32, float32) { return 0.001, 0.001 }

func (stubAtlas) LineHeight() float32 { return 14 }

func newTestContext() *slate.Context {
	return slate.New(slate.WithAtlas(stubAtlas{}))
}

// frame runs one Begin/body/End cycle.
func frame(ctx *slate.Context, mx, my float32, down bool, body func()) {
	ctx.Begin(mx, my, down)
	if body != nil {
		body()
	}
	ctx.End()
}

func TestContextBasicFrame(t *testing.T) {
	ctx := newTestContext()

	frame(ctx, 0, 0, false, func() {
		ctx.DrawRect(slate.Rect{X: 10, Y: 10, W: 50, H: 20}, slate.ColorWhite)
	})

	if len(ctx.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(ctx.Vertices))
	}
	if len(ctx.Indices) != 6 {
		t.Fatalf("expected 6 indices, got %d", len(ctx.Indices))
	}

	// The next Begin resets the buffers.
	ctx.Begin(0, 0, false)
	if len(ctx.Vertices) != 0 || len(ctx.Indices) != 0 {
		t.Errorf("Begin did not reset buffers: %d verts, %d indices",
			len(ctx.Vertices), len(ctx.Indices))
	}
	ctx.End()
}

func TestContextDestroyIdempotent(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		ctx.DrawRect(slate.Rect{W: 10, H: 10}, slate.ColorWhite)
	})

	ctx.Destroy()
	ctx.Destroy() // second call must be harmless

	var nilCtx *slate.Context
	nilCtx.Destroy() // nil receiver must be harmless

	if len(ctx.Vertices) != 0 || len(ctx.Indices) != 0 {
		t.Error("Destroy did not release buffers")
	}
}

func TestContextReuseAfterDestroy(t *testing.T) {
	ctx := newTestContext()
	ctx.Destroy()

	// Buffers regrow from zero; the atlas is gone, so re-attach it.
	ctx.SetAtlas(stubAtlas{})
	frame(ctx, 0, 0, false, func() {
		ctx.DrawRect(slate.Rect{W: 10, H: 10}, slate.ColorWhite)
	})

	if len(ctx.Vertices) != 4 {
		t.Errorf("expected 4 vertices after reuse, got %d", len(ctx.Vertices))
	}
}

func TestBeginForcesLeftoverPanelClosed(t *testing.T) {
	ctx := newTestContext()
	var scroll float32

	// A frame that forgets PanelEnd.
	ctx.Begin(0, 0, false)
	if !ctx.PanelBegin(ctx.ID("p"), "P", slate.Rect{X: 0, Y: 0, W: 200, H: 200}, &scroll) {
		t.Fatal("PanelBegin rejected")
	}
	ctx.End()

	if _, open := ctx.PanelOpen(); open {
		t.Fatal("End left the panel open")
	}

	// The next frame starts clean and can open a panel again.
	ctx.Begin(0, 0, false)
	if !ctx.PanelBegin(ctx.ID("p"), "P", slate.Rect{X: 0, Y: 0, W: 200, H: 200}, &scroll) {
		t.Error("panel could not reopen after a forced close")
	}
	ctx.PanelEnd()
	ctx.End()
}

func TestBeginResetsUnbalancedLayouts(t *testing.T) {
	ctx := newTestContext()

	ctx.Begin(0, 0, false)
	ctx.PushLayout(slate.Rect{W: 100, H: 100}, slate.AxisVertical, 0, 0)
	ctx.PushLayout(slate.Rect{W: 50, H: 50}, slate.AxisVertical, 0, 0)
	ctx.End() // missing pops

	ctx.Begin(0, 0, false)
	if d := ctx.LayoutDepth(); d != 0 {
		t.Errorf("layout depth after reset = %d, want 0", d)
	}
	ctx.End()
}

func TestBeginResetsScopes(t *testing.T) {
	ctx := newTestContext()

	ctx.Begin(0, 0, false)
	ctx.PushScope("a")
	ctx.PushScope("b")
	ctx.End()

	ctx.Begin(0, 0, false)
	if d := ctx.ScopeDepth(); d != 0 {
		t.Errorf("scope depth after Begin = %d, want 0", d)
	}
	ctx.End()
}

func TestHoverResolvesAtEnd(t *testing.T) {
	ctx := newTestContext()
	r := slate.Rect{X: 10, Y: 10, W: 100, H: 30}
	var id slate.ID

	frame(ctx, 20, 20, false, func() {
		id = ctx.ID("btn")
		ctx.Button(id, "B", r)
		// Hover is not visible until End resolves it.
		if ctx.Hot() == id {
			t.Error("hot updated mid-frame")
		}
	})

	if ctx.Hot() != id {
		t.Errorf("hot after End = %v, want %v", ctx.Hot(), id)
	}

	// Mouse moves away; hover clears on the following End.
	frame(ctx, 500, 500, false, func() {
		ctx.Button(id, "B", r)
	})
	if ctx.Hot() != slate.IDNone {
		t.Errorf("hot after mouse left = %v, want IDNone", ctx.Hot())
	}
}
