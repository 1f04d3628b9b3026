package slate

import (
	"math"
	"strconv"
)

// Slider draws a horizontal slider over r and drags *value across
// [minVal, maxVal]. Returns true on any frame the value changes. While
// the slider is active the drag keeps updating even when the mouse
// leaves the rect; the value follows the horizontal mouse position.
// Rejected without mutation: IDNone, nil value, an inverted or
// non-finite range.
func (ctx *Context) Slider(id ID, value *float32, minVal, maxVal float32, r Rect) bool {
	if id == IDNone || value == nil {
		return false
	}
	if !(minVal < maxVal) { // also rejects NaN bounds
		return false
	}
	if math.IsInf(float64(minVal), 0) || math.IsInf(float64(maxVal), 0) {
		return false
	}

	ctx.widgetBehavior(id, r)

	changed := false
	if ctx.active == id && ctx.mouseDown && r.W > 0 {
		frac := clampf((ctx.mouseX-r.X)/r.W, 0, 1)
		v := minVal + frac*(maxVal-minVal)
		if v != *value {
			*value = v
			changed = true
		}
	}

	// Incoming values outside the range still render a sane fill.
	frac := clampf((*value-minVal)/(maxVal-minVal), 0, 1)

	ctx.DrawRect(r, colorSliderTrack)
	ctx.DrawRect(Rect{X: r.X, Y: r.Y, W: r.W * frac, H: r.H}, colorSliderFill)
	ctx.DrawBorder(r, 1, colorBorder)

	label := strconv.FormatFloat(float64(*value), 'f', 2, 32)
	size := ctx.MeasureText(label)
	ctx.DrawText(r.X+(r.W-size.X)/2, r.Y+(r.H-size.Y)/2, label, colorText)
	return changed
}

// SliderItem places a Slider in the next layout slot. Rejected calls
// (no layout, invalid id, nil value, bad range) advance nothing.
func (ctx *Context) SliderItem(id ID, value *float32, minVal, maxVal float32, height float32) bool {
	if id == IDNone || value == nil || !(minVal < maxVal) || ctx.currentLayout() == nil {
		return false
	}
	r, ok := ctx.LayoutItem(height)
	if !ok {
		return false
	}
	return ctx.Slider(id, value, minVal, maxVal, r)
}
