package slate

// TextState is the externally owned state of one text input: a
// fixed-capacity byte buffer plus length and cursor. The capacity is
// len(Buf); the engine never grows or reallocates the buffer.
//
// Invariants, required on entry and restored after every operation:
//
//	0 <= Cursor <= Len < len(Buf)
//	Buf[Len] == 0
//
// A TextState violating any invariant on entry is rejected outright:
// the call mutates nothing and returns false. Caller corruption is
// detected, never trusted.
type TextState struct {
	Buf    []byte
	Len    int
	Cursor int
}

// String returns the current text.
func (st *TextState) String() string {
	if st == nil || st.Len < 0 || st.Len > len(st.Buf) {
		return ""
	}
	return string(st.Buf[:st.Len])
}

// valid reports whether st satisfies the buffer invariants.
func (st *TextState) valid() bool {
	if st == nil || len(st.Buf) <= 0 {
		return false
	}
	if st.Len < 0 || st.Len >= len(st.Buf) {
		return false
	}
	if st.Cursor < 0 || st.Cursor > st.Len {
		return false
	}
	return st.Buf[st.Len] == 0
}

// editText applies at most one structural edit from the keyboard
// snapshot, in fixed priority order: backspace, delete, insertion,
// cursor motion. An earlier action that fires suppresses all later ones
// (an insertion rejected for capacity still counts as fired). Returns
// true only when the buffer contents changed; pure cursor motion moves
// the cursor but reports false. Every successful mutation re-writes the
// NUL terminator at the new length.
func editText(st *TextState, kb Keyboard) bool {
	capacity := len(st.Buf)

	if kb.Backspace {
		if st.Cursor > 0 {
			copy(st.Buf[st.Cursor-1:st.Len-1], st.Buf[st.Cursor:st.Len])
			st.Cursor--
			st.Len--
			st.Buf[st.Len] = 0
			return true
		}
		// Backspace at the start fires nothing; later actions still run.
	}

	if kb.Delete && st.Cursor < st.Len {
		copy(st.Buf[st.Cursor:st.Len-1], st.Buf[st.Cursor+1:st.Len])
		st.Len--
		st.Buf[st.Len] = 0
		return true
	}

	if len(kb.Text) > 0 && kb.Text[0] != 0 {
		n := len(kb.Text)
		if n > capacity-1-st.Len {
			return false // full buffer: rejected, but still suppresses motion
		}
		copy(st.Buf[st.Cursor+n:st.Len+n], st.Buf[st.Cursor:st.Len])
		copy(st.Buf[st.Cursor:], kb.Text)
		st.Cursor += n
		st.Len += n
		st.Buf[st.Len] = 0
		return true
	}

	switch {
	case kb.Left:
		if st.Cursor > 0 {
			st.Cursor--
		}
	case kb.Right:
		if st.Cursor < st.Len {
			st.Cursor++
		}
	case kb.Home:
		st.Cursor = 0
	case kb.End:
		st.Cursor = st.Len
	}
	return false
}

// TextInput draws a single-line text field over r and edits *st in place
// while focused. Returns true on any frame the buffer contents changed.
//
// Focus mirrors button semantics but persists across frames: it is
// acquired by a full click cycle, and lost on Escape (which also clears
// the active widget so the trailing release cannot re-focus in the same
// gesture) or on a press anywhere outside the rect. Only the focused
// widget consumes the keyboard snapshot. A focused widget whose rect is
// entirely outside the active clip keeps focus but ignores keys for the
// frame; partial visibility still accepts input.
//
// visible false declares the widget without drawing or hit-testing it:
// focus is preserved, edits are suppressed, but focus loss (Escape, a
// press elsewhere) still applies, the same as for a fully clipped rect.
func (ctx *Context) TextInput(id ID, st *TextState, r Rect, visible bool) bool {
	if id == IDNone || !st.valid() {
		return false
	}

	// Either way of being off-screen behaves identically: no hit
	// testing, no edits, but focus loss still fires.
	hidden := !visible || (ctx.hasClip && !ctx.clip.Intersects(r))

	if !hidden && ctx.widgetBehavior(id, r) {
		ctx.focused = id
	}

	if ctx.focused == id {
		if ctx.kb.Escape {
			ctx.focused = IDNone
			// Drop the press too: the release that ends this gesture
			// must not read as a fresh focusing click.
			if ctx.active == id {
				ctx.active = IDNone
			}
		} else if ctx.mousePressed() && (hidden || !ctx.mouseOver(r)) {
			ctx.focused = IDNone
		}
	}

	changed := false
	if ctx.focused == id && !hidden {
		changed = editText(st, ctx.kb)
	}

	if !visible {
		return false
	}

	ctx.DrawRect(r, colorInputBg)
	ctx.DrawText(r.X+TextPadding, r.Y+ctx.textBaseline(r.H), st.String(), colorText)

	if ctx.focused == id {
		ctx.DrawBorder(r, 1, colorInputBorder)
		caretX := r.X + TextPadding + ctx.MeasureText(string(st.Buf[:st.Cursor])).X
		inset := ctx.textBaseline(r.H)
		ctx.DrawRect(Rect{
			X: caretX,
			Y: r.Y + inset,
			W: CursorBarWidth,
			H: maxf(r.H-2*inset, 0),
		}, colorText)
	}
	return changed
}

// TextInputItem places a TextInput in the next layout slot. Rejected
// calls (no layout, invalid id, invalid state) advance nothing.
func (ctx *Context) TextInputItem(id ID, st *TextState, height float32) bool {
	if id == IDNone || !st.valid() || ctx.currentLayout() == nil {
		return false
	}
	r, ok := ctx.LayoutItem(height)
	if !ok {
		return false
	}
	return ctx.TextInput(id, st, r, true)
}
