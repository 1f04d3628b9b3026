package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/slateui/slate"
)

// GLFWInput collects GLFW events and feeds them to a slate Context once
// per frame. Install it with Install, then call BeginFrame instead of
// Context.Begin in the render loop.
type GLFWInput struct {
	window *glfw.Window

	mouseX, mouseY float32
	mouseDown      bool
	wheelY         float32

	kb slate.Keyboard
}

// NewGLFWInput wires input callbacks on the window. Any previously
// installed callbacks for the same events are replaced.
func NewGLFWInput(window *glfw.Window) *GLFWInput {
	in := &GLFWInput{window: window}

	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		in.mouseX = float32(x)
		in.mouseY = float32(y)
	})

	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		in.mouseDown = action == glfw.Press
	})

	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		in.wheelY += float32(yoff)
	})

	window.SetCharCallback(func(_ *glfw.Window, ch rune) {
		if ch >= 32 && ch < 127 {
			in.kb.Text += string(ch)
		}
	})

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		switch key {
		case glfw.KeyBackspace:
			in.kb.Backspace = true
		case glfw.KeyDelete:
			in.kb.Delete = true
		case glfw.KeyLeft:
			in.kb.Left = true
		case glfw.KeyRight:
			in.kb.Right = true
		case glfw.KeyHome:
			in.kb.Home = true
		case glfw.KeyEnd:
			in.kb.End = true
		case glfw.KeyEscape:
			in.kb.Escape = true
		}
	})

	return in
}

// BeginFrame starts a frame and installs the accumulated input. The
// snapshots go in after Begin, which clears the previous frame's. Wheel
// and keyboard accumulators are consumed; mouse state persists.
func (in *GLFWInput) BeginFrame(ctx *slate.Context) {
	ctx.Begin(in.mouseX, in.mouseY, in.mouseDown)
	ctx.SetMouseWheel(in.wheelY)
	ctx.SetKeyboard(in.kb)
	in.wheelY = 0
	in.kb = slate.Keyboard{}
}
