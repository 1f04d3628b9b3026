package slate

import "math"

// panelRecord is the single open panel. The scroll reference is borrowed
// for the duration of the panel's open span within the current frame and
// never retained past PanelEnd.
type panelRecord struct {
	open    bool
	id      ID
	title   string
	rect    Rect
	content Rect
	scroll  *float32
}

// panelMemory remembers the measured content height of the most recently
// closed panel. PanelBegin uses it to pre-clamp the incoming scroll
// offset when the same identifier reopens.
//
// Known limitation, preserved deliberately: the record is matched by id
// only, so two sequentially opened panels sharing one identifier within a
// frame can let a stale, too-large offset pass the pre-clamp. The
// post-clamp in PanelEnd always corrects the externally visible value
// with the freshly measured height; only the mid-frame layout sees the
// uncorrected offset.
type panelMemory struct {
	id            ID
	contentHeight float32
}

// PanelBegin opens a titled, scrollable, clipped region. At most one
// panel may be open at a time; nesting is rejected. scroll points at an
// externally owned offset, sanitized on entry (NaN or negative resets to
// zero) and clamped on PanelEnd.
//
// The panel opens an identifier scope for its children, so two
// sequential panels sharing a title keep their same-labeled children
// distinct. PanelEnd closes the scope.
//
// Rejected without mutation: nil scroll, id of IDNone or IDMax (the
// scrollbar thumb uses id+1, which must not wrap to IDNone), w <= 0,
// h < 0, non-finite w or h, a full scope stack, and a second PanelBegin
// while one is open.
func (ctx *Context) PanelBegin(id ID, title string, r Rect, scroll *float32) bool {
	if scroll == nil || id == IDNone || id == IDMax {
		return false
	}
	if r.W <= 0 || r.H < 0 {
		return false
	}
	if math.IsNaN(float64(r.W)) || math.IsNaN(float64(r.H)) {
		return false
	}
	if ctx.panel.open || len(ctx.scopes) >= maxScopeDepth {
		return false
	}

	if math.IsNaN(float64(*scroll)) || *scroll < 0 {
		*scroll = 0
	}

	// Content rect: inset by padding, the title bar, and the reserved
	// scrollbar strip (reserved whether or not a scrollbar is drawn).
	content := Rect{
		X: r.X + PanelPadding,
		Y: r.Y + TitleBarHeight + PanelPadding,
		W: maxf(r.W-2*PanelPadding-ScrollbarWidth, 0),
		H: maxf(r.H-TitleBarHeight-2*PanelPadding, 0),
	}

	// Pre-clamp against the remembered content height when this id was
	// the last panel closed. See panelMemory for the aliasing caveat.
	if ctx.panelMem.id == id {
		preMax := maxf(ctx.panelMem.contentHeight-content.H, 0)
		if *scroll > preMax {
			*scroll = preMax
		}
	}

	// Wheel scrolling applies before layout so this frame's items land
	// at their post-scroll positions.
	if ctx.wheelY != 0 && ctx.mouseOverUnclipped(content) {
		*scroll -= ctx.wheelY * ScrollSpeed
		if *scroll < 0 {
			*scroll = 0
		}
	}

	ctx.DrawRect(r, colorPanelBg)
	ctx.DrawBorder(r, 1, colorBorder)
	ctx.DrawRect(Rect{X: r.X, Y: r.Y, W: r.W, H: TitleBarHeight}, colorTitleBar)
	if title != "" && ctx.atlas != nil {
		th := ctx.atlas.LineHeight()
		ctx.DrawText(r.X+PanelPadding, r.Y+(TitleBarHeight-th)/2, title, colorTitleText)
	}

	// The layout frame is pushed over the content rect shifted up by the
	// scroll offset: every item lands at content-relative y minus scroll.
	// The clip rect stays at the unshifted content rect.
	scrolled := content
	scrolled.Y -= *scroll
	scrolled.H += *scroll // keep the interior sized to the content, not the window
	if !ctx.PushLayout(scrolled, AxisVertical, 0, PanelPadding) {
		ctx.clearClip()
		ctx.panel = panelRecord{}
		return false
	}
	ctx.PushScope(title) // cannot fail: depth was checked up front
	ctx.setClip(content)

	ctx.panel = panelRecord{
		open:    true,
		id:      id,
		title:   title,
		rect:    r,
		content: content,
		scroll:  scroll,
	}
	return true
}

// PanelEnd closes the open panel: measures the accumulated content
// height, clamps the scroll offset into [0, max(0, content-visible)],
// draws a scrollbar when the content overflows, and releases the layout
// frame and clip rectangle. No-op when no panel is open.
func (ctx *Context) PanelEnd() {
	if !ctx.panel.open {
		return
	}
	p := ctx.panel

	var contentHeight float32
	if l := ctx.currentLayout(); l != nil {
		contentHeight = l.contentExtent()
	}
	ctx.PopLayout()
	ctx.PopScope()
	ctx.clearClip()

	visible := p.content.H
	maxScroll := maxf(contentHeight-visible, 0)
	*p.scroll = clampf(*p.scroll, 0, maxScroll)

	if maxScroll > 0 {
		ctx.drawScrollbar(p, contentHeight, maxScroll)
	}

	ctx.panelMem = panelMemory{id: p.id, contentHeight: contentHeight}
	ctx.panel = panelRecord{}
}

// drawScrollbar emits the vertical track and thumb in the reserved strip
// and handles thumb dragging. The thumb is an interactive sub-widget
// with identifier id+1 (IDMax panels are rejected up front so this can
// never wrap to IDNone).
func (ctx *Context) drawScrollbar(p panelRecord, contentHeight, maxScroll float32) {
	track := Rect{
		X: p.content.X + p.content.W,
		Y: p.content.Y,
		W: ScrollbarWidth,
		H: p.content.H,
	}
	if track.Empty() {
		return
	}

	thumbH := clampf(track.H*(p.content.H/contentHeight), ScrollbarMinThumb, track.H)
	travel := track.H - thumbH
	thumbY := track.Y
	if travel > 0 {
		thumbY += travel * (*p.scroll / maxScroll)
	}
	thumb := Rect{X: track.X, Y: thumbY, W: track.W, H: thumbH}

	thumbID := p.id + 1
	ctx.widgetBehavior(thumbID, thumb)
	if ctx.active == thumbID && ctx.mouseDown && travel > 0 {
		frac := clampf((ctx.mouseY-track.Y-thumbH/2)/travel, 0, 1)
		*p.scroll = frac * maxScroll
		thumb.Y = track.Y + travel*frac
	}

	color := colorScrollThumb
	if ctx.active == thumbID || ctx.hot == thumbID {
		color = colorButtonHot
	}
	ctx.DrawRect(track, colorScrollTrack)
	ctx.DrawRect(thumb, color)
}

// PanelOpen reports whether a panel is currently open, and its id.
func (ctx *Context) PanelOpen() (ID, bool) {
	return ctx.panel.id, ctx.panel.open
}

// mouseOverUnclipped is mouse containment without the clip check; the
// wheel must reach a panel's content area before the panel sets its own
// clip rect.
func (ctx *Context) mouseOverUnclipped(r Rect) bool {
	return r.Contains(Vec2{X: ctx.mouseX, Y: ctx.mouseY})
}
