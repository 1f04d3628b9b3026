package slate

// Keyboard is the per-frame keyboard snapshot consumed by the focused
// text input. Text carries raw bytes to insert at the cursor; the seven
// booleans are edge events (true only on the frame the key went down).
// The snapshot is valid for the current frame only and is cleared by the
// next Begin.
type Keyboard struct {
	Text      string
	Backspace bool
	Delete    bool
	Left      bool
	Right     bool
	Home      bool
	End       bool
	Escape    bool
}

// SetKeyboard installs the keyboard snapshot for the current frame.
// Call between Begin and the widgets that should see it.
func (ctx *Context) SetKeyboard(kb Keyboard) {
	ctx.kb = kb
}

// SetMouseWheel installs this frame's vertical wheel delta. Positive
// values scroll up. Cleared by the next Begin.
func (ctx *Context) SetMouseWheel(deltaY float32) {
	ctx.wheelY = deltaY
}

// MousePos returns the mouse position given to Begin this frame.
func (ctx *Context) MousePos() Vec2 {
	return Vec2{X: ctx.mouseX, Y: ctx.mouseY}
}

// MouseDown returns whether the button was down this frame.
func (ctx *Context) MouseDown() bool {
	return ctx.mouseDown
}

// mousePressed reports the up-to-down button edge for this frame.
func (ctx *Context) mousePressed() bool {
	return ctx.mouseDown && !ctx.prevMouseDown
}

// mouseReleased reports the down-to-up button edge for this frame.
func (ctx *Context) mouseReleased() bool {
	return !ctx.mouseDown && ctx.prevMouseDown
}

// mouseOver reports whether the mouse is inside r and not excluded by the
// active clip rectangle. A widget visually clipped out of view must not
// register hover even when the raw coordinate falls inside its rect.
func (ctx *Context) mouseOver(r Rect) bool {
	p := Vec2{X: ctx.mouseX, Y: ctx.mouseY}
	if ctx.hasClip && !ctx.clip.Contains(p) {
		return false
	}
	return r.Contains(p)
}
