package slate

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// smoothScrollDuration is how long one eased scroll animation takes.
const smoothScrollDuration float32 = 0.15

// SmoothScroll animates a scroll offset toward a target with an eased
// tween. Its Offset field is a plain float32, so it plugs straight into
// PanelBegin as the externally owned scroll reference:
//
//	ss.Update(dt)
//	ctx.PanelBegin(id, "Log", rect, &ss.Offset)
//	...
//	ctx.PanelEnd()
//	ss.Sync()
//
// Sync after PanelEnd adopts any clamping or thumb dragging the panel
// applied to Offset, so the next animation starts from the visible truth.
type SmoothScroll struct {
	Offset float32

	target  float32
	emitted float32 // last value Update wrote to Offset
	tween   *gween.Tween
}

// ScrollTo starts animating toward target.
func (s *SmoothScroll) ScrollTo(target float32) {
	if target < 0 {
		target = 0
	}
	s.target = target
	s.tween = gween.New(s.Offset, target, smoothScrollDuration, ease.OutQuad)
}

// ScrollBy starts animating by delta from the current target.
func (s *SmoothScroll) ScrollBy(delta float32) {
	s.ScrollTo(s.target + delta)
}

// Update advances the animation by dt seconds and returns true while
// still animating.
func (s *SmoothScroll) Update(dt float32) bool {
	if s.tween == nil {
		return false
	}
	v, done := s.tween.Update(dt)
	s.Offset = v
	s.emitted = v
	if done {
		s.tween = nil
		return false
	}
	return true
}

// Sync adopts an externally applied change to Offset (panel clamping,
// scrollbar dragging) as the new resting point, cancelling an in-flight
// animation that would fight it. Call once per frame after PanelEnd.
func (s *SmoothScroll) Sync() {
	if s.Offset != s.emitted {
		s.tween = nil
		s.target = s.Offset
		s.emitted = s.Offset
	}
}

// Target returns the offset the animation is heading toward.
func (s *SmoothScroll) Target() float32 {
	return s.target
}
