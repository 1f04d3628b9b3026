package slate

import (
	"log/slog"
	"os"
)

// logLevel gates the package logger. Set SLATE_DEBUG=1 for debug traces;
// the default only surfaces safety-net warnings.
var logLevel = func() *slog.LevelVar {
	lv := new(slog.LevelVar)
	if os.Getenv("SLATE_DEBUG") != "" {
		lv.Set(slog.LevelDebug)
	} else {
		lv.Set(slog.LevelWarn)
	}
	return lv
}()

// logger is the package logger for safety-net diagnostics.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// Context holds all state for one immediate-mode UI owner. It is created
// once, bracketed by Begin/End every frame, and torn down with Destroy.
// It is NOT context.Context: a dedicated type keeps the per-frame hot
// path free of interface assertions.
type Context struct {
	// Draw output: flat buffers, valid from End until the next Begin.
	Vertices []Vertex
	Indices  []uint32

	// Collaborator: glyph atlas used for all emission (solid fills use
	// its designated white texel). Emission no-ops while nil.
	atlas GlyphAtlas

	// Mouse snapshot for this frame and the previous one.
	mouseX, mouseY float32
	mouseDown      bool
	prevMouseX     float32
	prevMouseY     float32
	prevMouseDown  bool
	wheelY         float32

	// Keyboard snapshot for this frame.
	kb Keyboard

	// Interaction singletons. hot is the hover result resolved at the
	// previous End; nextHot is this frame's candidate (last declared
	// overlapping widget wins). focused persists across frames.
	hot        ID
	active     ID
	focused    ID
	nextHot    ID
	activeSeen bool // the active widget was re-declared this frame

	// Identifier scope stack, plus the per-frame occurrence counter
	// mixed into each pushed seed so repeated labels stay distinct.
	scopes   []ID
	scopeSeq uint32

	// Layout stack.
	layouts []layoutFrame

	// Panel subsystem: at most one open panel, plus the remembered
	// content height from the previous close.
	panel    panelRecord
	panelMem panelMemory

	// Active clip rectangle.
	clip    Rect
	hasClip bool

	inFrame bool
}

// Option configures a Context at construction.
type Option func(*Context)

// WithAtlas attaches a glyph atlas at construction.
func WithAtlas(atlas GlyphAtlas) Option {
	return func(ctx *Context) { ctx.atlas = atlas }
}

// New creates a Context ready for its first Begin.
func New(opts ...Option) *Context {
	ctx := &Context{
		Vertices: make([]Vertex, 0, initialVertexCap),
		Indices:  make([]uint32, 0, initialIndexCap),
		scopes:   make([]ID, 0, maxScopeDepth),
		layouts:  make([]layoutFrame, 0, maxLayoutDepth),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Begin starts a frame. It resets all transient state, snapshots the
// previous mouse state for edge detection, and forcibly closes anything
// the previous frame left open (panel, layout frames) so one bad frame
// cannot corrupt the next.
func (ctx *Context) Begin(mouseX, mouseY float32, mouseDown bool) {
	if ctx.panel.open {
		logger.Warn("Begin: closing panel left open by previous frame", "id", ctx.panel.id)
		ctx.panel = panelRecord{}
	}
	if len(ctx.layouts) > 0 {
		logger.Warn("Begin: resetting unbalanced layout stack", "depth", len(ctx.layouts))
	}
	ctx.clearClip()
	ctx.layouts = ctx.layouts[:0]
	ctx.scopes = ctx.scopes[:0]
	ctx.scopeSeq = 0

	ctx.Vertices = ctx.Vertices[:0]
	ctx.Indices = ctx.Indices[:0]

	ctx.prevMouseX = ctx.mouseX
	ctx.prevMouseY = ctx.mouseY
	ctx.prevMouseDown = ctx.mouseDown
	ctx.mouseX = mouseX
	ctx.mouseY = mouseY
	ctx.mouseDown = mouseDown
	ctx.wheelY = 0

	ctx.kb = Keyboard{}
	ctx.nextHot = IDNone
	ctx.activeSeen = false
	ctx.inFrame = true
}

// End finishes a frame, resolving the hover transition and running the
// interaction safety nets. The draw buffers are complete after End.
func (ctx *Context) End() {
	if ctx.panel.open {
		logger.Warn("End: closing panel left open", "id", ctx.panel.id)
		ctx.panel = panelRecord{}
		ctx.clearClip()
	}
	ctx.layouts = ctx.layouts[:0]

	// A stuck active widget (disappeared while the button is up) would
	// lock interaction out forever; clear it so the machine self-heals
	// within one frame.
	if ctx.active != IDNone && !ctx.activeSeen && !ctx.mouseDown {
		logger.Debug("End: clearing orphaned active widget", "id", ctx.active)
		ctx.active = IDNone
	}

	// Hover is frozen while a widget is active so dragging off a slider
	// does not flicker hover onto whatever the mouse crosses.
	if ctx.active == IDNone {
		ctx.hot = ctx.nextHot
	}
	ctx.inFrame = false
}

// Destroy releases the draw buffers and zeroes every field. Idempotent:
// calling it twice, or on a Context that was never used, is harmless.
// The Context may be reused after Destroy; the buffers regrow from zero.
func (ctx *Context) Destroy() {
	if ctx == nil {
		return
	}
	*ctx = Context{}
}

// Hot returns the widget the mouse hovered as of the last End.
func (ctx *Context) Hot() ID { return ctx.hot }

// Active returns the widget currently holding the mouse press.
func (ctx *Context) Active() ID { return ctx.active }

// Focused returns the widget holding keyboard focus.
func (ctx *Context) Focused() ID { return ctx.focused }

// widgetBehavior runs the shared hot/active life cycle for a widget
// occupying r and reports a completed click (press on the widget, then
// release while still over it). Hover candidacy is last-declared-wins:
// among overlapping widgets the one declared last is topmost.
func (ctx *Context) widgetBehavior(id ID, r Rect) (clicked bool) {
	if id == IDNone {
		return false
	}
	if id == ctx.active {
		ctx.activeSeen = true
	}

	hovered := ctx.mouseOver(r)
	if hovered {
		ctx.nextHot = id
	}

	if ctx.active == id {
		if ctx.mouseReleased() {
			if hovered {
				clicked = true
			}
			ctx.active = IDNone
		}
	} else if ctx.hot == id && hovered && ctx.mousePressed() {
		// Only the up-to-down edge activates. A button held down from a
		// previous frame and dragged onto the widget does not.
		ctx.active = id
	}
	return clicked
}
