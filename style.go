package slate

// Fixed metrics. Theming is out of scope for the core; these constants
// define the few sizes the panel and widget code relies on.
const (
	// PanelPadding is the inset between a panel's content rect and its
	// declared rect (in addition to the title bar and scrollbar strip).
	PanelPadding float32 = 6

	// TitleBarHeight is the fixed height of a panel's title strip.
	TitleBarHeight float32 = 22

	// ScrollbarWidth is the strip reserved at a panel's right edge,
	// whether or not a scrollbar is ultimately drawn.
	ScrollbarWidth float32 = 12

	// ScrollbarMinThumb is the smallest thumb the scrollbar will draw.
	ScrollbarMinThumb float32 = 20

	// ScrollSpeed scales mouse-wheel deltas into scroll-offset pixels.
	ScrollSpeed float32 = 30

	// TextPadding is the inset between a widget's rect and its text.
	TextPadding float32 = 4

	// CursorBarWidth is the width of the text-input caret.
	CursorBarWidth float32 = 1
)

// Default widget colors (same packing as the Color* constants).
const (
	colorPanelBg      uint32 = 0xF0282828
	colorTitleBar     uint32 = 0xFF404040
	colorTitleText    uint32 = 0xFFE0E0E0
	colorButton       uint32 = 0xFF4A4A4A
	colorButtonHot    uint32 = 0xFF5A5A5A
	colorButtonActive uint32 = 0xFF6A6A6A
	colorText         uint32 = 0xFFE8E8E8
	colorInputBg      uint32 = 0xFF1E1E1E
	colorInputBorder  uint32 = 0xFF8A8A8A
	colorSliderTrack  uint32 = 0xFF333333
	colorSliderFill   uint32 = 0xFF2F6FD0
	colorScrollTrack  uint32 = 0xFF2A2A2A
	colorScrollThumb  uint32 = 0xFF606060
	colorBorder       uint32 = 0xFF101010
)
