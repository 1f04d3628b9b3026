package slate

import "math"

// ListClipper virtualizes a long uniform list inside a scrolled panel:
// only the rows within the view are declared, with filler items standing
// in for the rest so the measured content height, and therefore the
// scroll range, matches the full list.
//
//	clip, _ := ctx.ClipRect()
//	c := slate.VisibleRange(len(rows), rowH, slate.PanelPadding, clip.H, scroll)
//	if h := c.LeadingHeight(); h > 0 {
//	    ctx.LayoutItem(h)
//	}
//	for i := c.Start; i < c.End; i++ {
//	    ctx.ButtonItem(ctx.IDInt(i), rows[i], rowH)
//	}
//	if h := c.TrailingHeight(); h > 0 {
//	    ctx.LayoutItem(h)
//	}
type ListClipper struct {
	Start int // first declared row (inclusive)
	End   int // past the last declared row

	total      int
	itemHeight float32
	spacing    float32
}

// VisibleRange computes the row window intersecting a view of
// viewHeight pixels at the given scroll offset, for total rows of
// itemHeight each separated by spacing. One extra row is kept on each
// side so partially visible rows still draw. A non-positive itemHeight
// or an empty list yields an empty window.
func VisibleRange(total int, itemHeight, spacing, viewHeight, scroll float32) ListClipper {
	c := ListClipper{total: total, itemHeight: itemHeight, spacing: maxf(spacing, 0)}
	if total <= 0 || itemHeight <= 0 {
		return c
	}
	pitch := itemHeight + c.spacing
	scroll = maxf(scroll, 0)

	c.Start = int(scroll/pitch) - 1
	if c.Start < 0 {
		c.Start = 0
	}
	c.End = int(math.Ceil(float64((scroll+maxf(viewHeight, 0))/pitch))) + 1
	if c.End > total {
		c.End = total
	}
	if c.Start > c.End {
		c.Start = c.End
	}
	return c
}

// LeadingHeight returns the filler height to claim before the first
// declared row. Sized so that the filler item plus the spacing the
// layout inserts after it advances the cursor exactly as far as the
// skipped rows would have.
func (c ListClipper) LeadingHeight() float32 {
	return c.fillerHeight(c.Start)
}

// TrailingHeight returns the filler height to claim after the last
// declared row, covering the rows below the view.
func (c ListClipper) TrailingHeight() float32 {
	return c.fillerHeight(c.total - c.End)
}

// fillerHeight sizes a filler replacing n rows: n row heights plus the
// n-1 gaps between them. The gap adjoining the declared rows comes from
// the layout's own inter-item spacing.
func (c ListClipper) fillerHeight(n int) float32 {
	if n <= 0 {
		return 0
	}
	return float32(n)*c.itemHeight + float32(n-1)*c.spacing
}

// Count returns the number of rows in the declared window.
func (c ListClipper) Count() int {
	return c.End - c.Start
}

// ContentHeight returns the full list's extent, gaps included.
func (c ListClipper) ContentHeight() float32 {
	return c.fillerHeight(c.total)
}

// ScrollToRow returns the scroll offset that brings row i into a view of
// viewHeight pixels, moving as little as possible: an already visible
// row leaves the offset unchanged. Out-of-range rows leave it unchanged
// too.
func (c ListClipper) ScrollToRow(i int, scroll, viewHeight float32) float32 {
	if i < 0 || i >= c.total || c.itemHeight <= 0 {
		return scroll
	}
	top := float32(i) * (c.itemHeight + c.spacing)
	bottom := top + c.itemHeight
	if top < scroll {
		return top
	}
	if bottom > scroll+viewHeight {
		return bottom - viewHeight
	}
	return scroll
}
