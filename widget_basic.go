package slate

// Label draws text at an explicit position. Empty text draws nothing.
func (ctx *Context) Label(text string, x, y float32, color uint32) {
	if text == "" {
		return
	}
	ctx.DrawText(x, y, text, color)
}

// LabelItem draws text in the next layout slot. A no-op that advances
// nothing when no layout is active or the text is empty.
func (ctx *Context) LabelItem(text string, height float32) {
	if text == "" || ctx.currentLayout() == nil {
		return
	}
	r, ok := ctx.LayoutItem(height)
	if !ok {
		return
	}
	ctx.Label(text, r.X, r.Y+ctx.textBaseline(r.H), colorText)
}

// Button draws a push button over r and returns true on the frame it is
// clicked: pressed while hovered, then released while still hovered.
// IDNone is rejected: no hit test, no geometry, false result.
func (ctx *Context) Button(id ID, label string, r Rect) bool {
	if id == IDNone {
		return false
	}
	clicked := ctx.widgetBehavior(id, r)

	bg := colorButton
	switch {
	case ctx.active == id:
		bg = colorButtonActive
	case ctx.hot == id:
		bg = colorButtonHot
	}
	ctx.DrawRect(r, bg)
	ctx.DrawBorder(r, 1, colorBorder)

	size := ctx.MeasureText(label)
	ctx.DrawText(r.X+(r.W-size.X)/2, r.Y+(r.H-size.Y)/2, label, colorText)
	return clicked
}

// ButtonItem places a Button in the next layout slot. Rejected calls
// (no layout, invalid id) advance nothing.
func (ctx *Context) ButtonItem(id ID, label string, height float32) bool {
	if id == IDNone || ctx.currentLayout() == nil {
		return false
	}
	r, ok := ctx.LayoutItem(height)
	if !ok {
		return false
	}
	return ctx.Button(id, label, r)
}

// Checkbox draws a check box with a trailing label and toggles *value on
// click. Returns true on the frame the value changed. Rejected without
// mutation for IDNone or a nil value.
func (ctx *Context) Checkbox(id ID, label string, value *bool, r Rect) bool {
	if id == IDNone || value == nil {
		return false
	}
	changed := false
	if ctx.widgetBehavior(id, r) {
		*value = !*value
		changed = true
	}

	box := Rect{X: r.X, Y: r.Y, W: r.H, H: r.H}
	bg := colorInputBg
	if ctx.hot == id || ctx.active == id {
		bg = colorButtonHot
	}
	ctx.DrawRect(box, bg)
	ctx.DrawBorder(box, 1, colorInputBorder)
	if *value {
		inset := box.W * 0.25
		ctx.DrawRect(Rect{
			X: box.X + inset,
			Y: box.Y + inset,
			W: box.W - 2*inset,
			H: box.H - 2*inset,
		}, colorText)
	}

	ctx.DrawText(r.X+r.H+TextPadding, r.Y+ctx.textBaseline(r.H), label, colorText)
	return changed
}

// CheckboxItem places a Checkbox in the next layout slot. Rejected calls
// (no layout, invalid id, nil value) advance nothing.
func (ctx *Context) CheckboxItem(id ID, label string, value *bool, height float32) bool {
	if id == IDNone || value == nil || ctx.currentLayout() == nil {
		return false
	}
	r, ok := ctx.LayoutItem(height)
	if !ok {
		return false
	}
	return ctx.Checkbox(id, label, value, r)
}

// textBaseline returns the vertical inset that centers one text line in
// a slot of height h. Zero without an atlas.
func (ctx *Context) textBaseline(h float32) float32 {
	if ctx.atlas == nil {
		return 0
	}
	return maxf((h-ctx.atlas.LineHeight())/2, 0)
}
