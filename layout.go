package slate

// Axis selects the flow direction of a layout container.
type Axis uint8

const (
	AxisVertical   Axis = iota // items stack top to bottom
	AxisHorizontal             // items stack left to right

	axisCount
)

// maxLayoutDepth bounds the layout stack. A push beyond this depth fails
// without mutating the stack.
const maxLayoutDepth = 16

// layoutFrame is one stacked container: a rectangle with a flow cursor.
type layoutFrame struct {
	rect    Rect
	axis    Axis
	padding float32
	spacing float32

	curX, curY float32 // next item's top-left
	remW, remH float32 // space left inside the padded interior
	items      int
}

// PushLayout opens a layout container over r. Negative padding and
// spacing are clamped to zero; remaining space is clamped to zero even
// when the container is smaller than twice its padding. Returns false,
// with the stack unchanged, for an invalid axis or a full stack.
func (ctx *Context) PushLayout(r Rect, axis Axis, padding, spacing float32) bool {
	if axis >= axisCount {
		return false
	}
	if len(ctx.layouts) >= maxLayoutDepth {
		return false
	}
	padding = maxf(padding, 0)
	spacing = maxf(spacing, 0)

	ctx.layouts = append(ctx.layouts, layoutFrame{
		rect:    r,
		axis:    axis,
		padding: padding,
		spacing: spacing,
		curX:    r.X + padding,
		curY:    r.Y + padding,
		remW:    maxf(r.W-2*padding, 0),
		remH:    maxf(r.H-2*padding, 0),
	})
	return true
}

// PopLayout closes the innermost layout container. Harmless on an empty
// stack.
func (ctx *Context) PopLayout() {
	if n := len(ctx.layouts); n > 0 {
		ctx.layouts = ctx.layouts[:n-1]
	}
}

// LayoutDepth returns the current layout stack depth.
func (ctx *Context) LayoutDepth() int {
	return len(ctx.layouts)
}

// currentLayout returns the innermost layout frame, or nil.
func (ctx *Context) currentLayout() *layoutFrame {
	if n := len(ctx.layouts); n > 0 {
		return &ctx.layouts[n-1]
	}
	return nil
}

// LayoutItem claims the next item slot along the flow axis. size is the
// extent consumed on the flow axis (negative sizes clamp to zero); the
// cross axis spans the container's remaining interior. Spacing is added
// between items only: never before the first item, never trailing after
// the last, so the remaining space reflects exactly what is left.
// Returns false with no mutation when no layout is active.
func (ctx *Context) LayoutItem(size float32) (Rect, bool) {
	l := ctx.currentLayout()
	if l == nil {
		return Rect{}, false
	}
	size = maxf(size, 0)

	if l.items > 0 {
		if l.axis == AxisVertical {
			l.curY += l.spacing
			l.remH = maxf(l.remH-l.spacing, 0)
		} else {
			l.curX += l.spacing
			l.remW = maxf(l.remW-l.spacing, 0)
		}
	}

	var r Rect
	if l.axis == AxisVertical {
		r = Rect{X: l.curX, Y: l.curY, W: l.remW, H: size}
		l.curY += size
		l.remH = maxf(l.remH-size, 0)
	} else {
		r = Rect{X: l.curX, Y: l.curY, W: size, H: l.remH}
		l.curX += size
		l.remW = maxf(l.remW-size, 0)
	}
	l.items++
	return r, true
}

// LayoutRemaining returns the unconsumed interior of the innermost
// container, or the zero vector when no layout is active.
func (ctx *Context) LayoutRemaining() Vec2 {
	if l := ctx.currentLayout(); l != nil {
		return Vec2{X: l.remW, Y: l.remH}
	}
	return Vec2{}
}

// LayoutItemCount returns the number of items placed in the innermost
// container so far.
func (ctx *Context) LayoutItemCount() int {
	if l := ctx.currentLayout(); l != nil {
		return l.items
	}
	return 0
}

// contentExtent reports how far the cursor has advanced along the flow
// axis since the container opened: the accumulated content size,
// including inter-item spacing but no trailing spacing.
func (l *layoutFrame) contentExtent() float32 {
	if l.axis == AxisVertical {
		return l.curY - (l.rect.Y + l.padding)
	}
	return l.curX - (l.rect.X + l.padding)
}
