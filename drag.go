package slate

// DragState tracks one in-flight drag: the offset from the dragged
// thing's origin to the grab point, captured on the press so the thing
// does not jump to the cursor.
type DragState struct {
	active bool
	grabX  float32
	grabY  float32
}

// Dragging reports whether a drag is in flight.
func (d *DragState) Dragging() bool { return d.active }

// Reset abandons the in-flight drag.
func (d *DragState) Reset() { *d = DragState{} }

// DragArea makes r a drag handle for the externally owned position pos,
// typically a panel's title bar moving the panel's rect. Returns true on
// any frame the position changed. Rejected without mutation: IDNone, nil
// pos, nil state.
//
// Call before PanelBegin with the title bar's rect at the position the
// panel is about to be drawn, so the handle tracks its panel.
func (ctx *Context) DragArea(id ID, r Rect, pos *Vec2, d *DragState) bool {
	if id == IDNone || pos == nil || d == nil {
		return false
	}
	ctx.widgetBehavior(id, r)

	if ctx.active != id || !ctx.mouseDown {
		d.active = false
		return false
	}

	if !d.active {
		d.active = true
		d.grabX = ctx.mouseX - pos.X
		d.grabY = ctx.mouseY - pos.Y
	}

	nx := ctx.mouseX - d.grabX
	ny := ctx.mouseY - d.grabY
	if nx == pos.X && ny == pos.Y {
		return false
	}
	pos.X = nx
	pos.Y = ny
	return true
}
