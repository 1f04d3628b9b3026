// Example demonstrates a minimal slate window with a panel and a few
// widgets.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, builds a glyph atlas from the
// bundled Go Regular font (or a TTF given as the first argument), and
// renders a panel with labels, buttons, a checkbox, a slider, and a
// text input.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/slateui/slate"
	"github.com/slateui/slate/backend/opengl"
	"github.com/slateui/slate/fontatlas"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "slate example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ttf := goregular.TTF
	if len(os.Args) > 1 {
		var err error
		ttf, err = os.ReadFile(os.Args[1])
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	atlas, err := fontatlas.New(ttf, 14)
	if err != nil {
		return fmt.Errorf("build atlas: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("slate renderer: %w", err)
	}
	defer renderer.Delete()
	renderer.UploadAtlas(atlas.Pixels, atlas.W, atlas.H)

	input := opengl.NewGLFWInput(window)

	ctx := slate.New(slate.WithAtlas(atlas))
	defer ctx.Destroy()

	// Application state.
	clickCount := 0
	checked := false
	sliderVal := float32(0.5)
	panelScroll := float32(0)
	name := slate.TextState{Buf: make([]byte, 64)}

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Resize(w, h)

		input.BeginFrame(ctx)

		if ctx.PanelBegin(ctx.ID("demo"), "Demo", slate.Rect{X: 40, Y: 40, W: 320, H: 420}, &panelScroll) {
			ctx.LabelItem("Hello from slate", 20)

			label := fmt.Sprintf("Click me (%d)", clickCount)
			if ctx.ButtonItem(ctx.ID("click"), label, 28) {
				clickCount++
			}

			ctx.CheckboxItem(ctx.ID("check"), "Enable feature", &checked, 24)

			ctx.LabelItem(fmt.Sprintf("Slider: %.2f", sliderVal), 20)
			ctx.SliderItem(ctx.ID("slider"), &sliderVal, 0, 1, 24)

			ctx.LabelItem("Name:", 20)
			ctx.TextInputItem(ctx.ID("name"), &name, 26)

			if checked {
				for i := 0; i < 20; i++ {
					ctx.LabelItem(fmt.Sprintf("Row %d", i), 18)
				}
			}

			ctx.PanelEnd()
		}

		ctx.End()

		if err := renderer.Render(ctx.Vertices, ctx.Indices); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
