package slate

import "encoding/binary"

// RadioGroup draws a vertical group of mutually exclusive options over r
// and updates *selected on click. Returns true on the frame the
// selection changed. An out-of-range *selected renders with no mark and
// is corrected by the first click. Rejected without mutation: IDNone,
// nil selected, no options.
//
// Each option is an interactive sub-widget whose identifier is derived
// from the group id and the option index, so options never collide with
// each other or with other groups.
func (ctx *Context) RadioGroup(id ID, options []string, selected *int, r Rect) bool {
	if id == IDNone || selected == nil || len(options) == 0 {
		return false
	}

	rowH := r.H / float32(len(options))
	changed := false
	for i, label := range options {
		row := Rect{X: r.X, Y: r.Y + float32(i)*rowH, W: r.W, H: rowH}
		optID := optionID(id, i)

		if ctx.widgetBehavior(optID, row) && *selected != i {
			*selected = i
			changed = true
		}

		mark := Rect{X: row.X, Y: row.Y, W: rowH, H: rowH}
		bg := colorInputBg
		if ctx.hot == optID || ctx.active == optID {
			bg = colorButtonHot
		}
		ctx.DrawRect(mark, bg)
		ctx.DrawBorder(mark, 1, colorInputBorder)
		if *selected == i {
			inset := mark.W * 0.3
			ctx.DrawRect(Rect{
				X: mark.X + inset,
				Y: mark.Y + inset,
				W: mark.W - 2*inset,
				H: mark.H - 2*inset,
			}, colorText)
		}

		ctx.DrawText(row.X+rowH+TextPadding, row.Y+ctx.textBaseline(rowH), label, colorText)
	}
	return changed
}

// RadioGroupItem places a RadioGroup in the next layout slot, claiming
// rowHeight per option. Rejected calls advance nothing.
func (ctx *Context) RadioGroupItem(id ID, options []string, selected *int, rowHeight float32) bool {
	if id == IDNone || selected == nil || len(options) == 0 || ctx.currentLayout() == nil {
		return false
	}
	r, ok := ctx.LayoutItem(rowHeight * float32(len(options)))
	if !ok {
		return false
	}
	return ctx.RadioGroup(id, options, selected, r)
}

// optionID derives a per-option identifier from the group id and index.
func optionID(group ID, i int) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(i)))
	return hashBytes(group, buf[:])
}
