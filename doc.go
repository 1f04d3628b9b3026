/*
Package slate is an immediate-mode GUI core: every frame the application
re-declares its widget tree against a persistent Context, and the engine
derives stable per-widget identity, tracks hover/press/focus across frames,
and emits a flat vertex/index draw list for a renderer to consume.

There are no retained widget objects. A widget is one function call per
frame; its return value is the interaction result for that frame.

# Quick Start

	ctx := slate.New()
	ctx.SetAtlas(atlas) // any GlyphAtlas implementation

	for running {
	    mx, my, down := pollMouse()
	    ctx.Begin(mx, my, down)
	    ctx.SetKeyboard(pollKeys())

	    if ctx.Button(ctx.ID("quit"), "Quit", slate.Rect{X: 10, Y: 10, W: 120, H: 28}) {
	        running = false
	    }

	    ctx.End()
	    renderer.Render(ctx.Vertices, ctx.Indices)
	}

# Frame Model

Begin resets all transient per-frame state (draw buffers, hover candidate,
keyboard snapshot) and snapshots the previous mouse state so widgets can
detect button edges. End resolves the hot/active transitions for the frame
and runs the safety nets that keep the state machine consistent even when
a widget disappears mid-interaction or a panel is left open.

The emitted Vertices and Indices slices are valid from End until the next
Begin. Geometry is always quads decomposed into two counter-clockwise
triangles, with indices offset by the vertex count at emission time so
every shape composes into the one buffer.

# Identity

Widget identifiers are 32-bit hashes of a label (or explicit integer key)
mixed with the current scope seed. PushScope/PopScope give two panels with
identical titles distinct children. ID 0 is the reserved "no widget"
sentinel and is rejected by every widget call.

# Concurrency

A Context is single-threaded and frame-synchronous. Produce and consume
one frame completely before starting the next; nothing in this package is
safe for concurrent use.
*/
package slate
