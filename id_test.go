package slate_test

import (
	"testing"

	"github.com/slateui/slate"
)

func TestIDStableAcrossFrames(t *testing.T) {
	ctx := newTestContext()

	var first slate.ID
	frame(ctx, 0, 0, false, func() {
		first = ctx.ID("save-button")
	})

	frame(ctx, 0, 0, false, func() {
		if got := ctx.ID("save-button"); got != first {
			t.Errorf("same label hashed differently across frames: %v vs %v", got, first)
		}
	})
}

func TestIDDistinctLabels(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		if ctx.ID("ok") == ctx.ID("cancel") {
			t.Error("distinct labels collided")
		}
	})
}

func TestIDNeverNone(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		if ctx.ID("") == slate.IDNone {
			t.Error("empty label produced IDNone")
		}
		for i := 0; i < 1000; i++ {
			if ctx.IDInt(i) == slate.IDNone {
				t.Fatalf("IDInt(%d) produced IDNone", i)
			}
		}
	})
}

func TestScopeIsolatesLabels(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		root := ctx.ID("item")

		ctx.PushScope("left")
		left := ctx.ID("item")
		ctx.PopScope()

		ctx.PushScope("right")
		right := ctx.ID("item")
		ctx.PopScope()

		if root == left || root == right || left == right {
			t.Errorf("scopes did not isolate: root=%v left=%v right=%v", root, left, right)
		}

		// Re-entering a label later in the frame is a fresh scope: the
		// occurrence counter keeps repeats distinct.
		ctx.PushScope("left")
		if got := ctx.ID("item"); got == left {
			t.Errorf("re-entered scope reproduced the earlier id %v", left)
		}
		ctx.PopScope()
	})
}

func TestSequentialScopesSameLabelDistinct(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		ctx.PushScope("Info")
		a := ctx.ID("child")
		ctx.PopScope()

		ctx.PushScope("Info")
		b := ctx.ID("child")
		ctx.PopScope()

		if a == b {
			t.Errorf("sequential same-label scopes conflated children: %v == %v", a, b)
		}
	})
}

func TestScopeIDsStableAcrossFrames(t *testing.T) {
	ctx := newTestContext()

	// The occurrence counter resets each frame, so the same declaration
	// sequence reproduces the same identifiers.
	run := func() (first, second slate.ID) {
		frame(ctx, 0, 0, false, func() {
			ctx.PushScope("Info")
			first = ctx.ID("child")
			ctx.PopScope()
			ctx.PushScope("Info")
			second = ctx.ID("child")
			ctx.PopScope()
		})
		return first, second
	}
	a1, a2 := run()
	b1, b2 := run()
	if a1 != b1 || a2 != b2 {
		t.Errorf("scope ids drifted across frames: (%v,%v) vs (%v,%v)", a1, a2, b1, b2)
	}
}

func TestScopeNesting(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		ctx.PushScope("outer")
		outer := ctx.ID("x")
		ctx.PushScope("inner")
		inner := ctx.ID("x")
		ctx.PopScope()
		after := ctx.ID("x")
		ctx.PopScope()

		if outer == inner {
			t.Error("nested scope did not change the id")
		}
		if after != outer {
			t.Error("PopScope did not restore the outer seed")
		}
	})
}

func TestScopeDepthLimit(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		for i := 0; i < 32; i++ {
			if !ctx.PushScope("s") {
				t.Fatalf("push %d rejected below the limit", i)
			}
		}
		if ctx.PushScope("overflow") {
			t.Error("push beyond the depth limit succeeded")
		}
		if d := ctx.ScopeDepth(); d != 32 {
			t.Errorf("depth after rejected push = %d, want 32", d)
		}

		// The id seed is unchanged by the rejected push.
		before := ctx.ID("x")
		ctx.PushScope("overflow")
		if got := ctx.ID("x"); got != before {
			t.Error("rejected push mutated the seed")
		}
	})
}

func TestPopScopeOnEmptyStack(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		ctx.PopScope() // must not panic
		if d := ctx.ScopeDepth(); d != 0 {
			t.Errorf("depth = %d, want 0", d)
		}
	})
}

func TestIDIntDistinct(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		seen := make(map[slate.ID]int)
		for i := -100; i < 100; i++ {
			id := ctx.IDInt(i)
			if prev, dup := seen[id]; dup {
				t.Fatalf("IDInt collision: %d and %d", prev, i)
			}
			seen[id] = i
		}
	})
}

func TestIDIntDiffersFromLabel(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, 0, 0, false, func() {
		// The integer key hashes its 8-byte encoding, not its decimal
		// string, so "7" and 7 are unrelated.
		if ctx.ID("7") == ctx.IDInt(7) {
			t.Error(`ID("7") collided with IDInt(7)`)
		}
	})
}
