package slate

import "encoding/binary"

// ID uniquely identifies a widget for interaction tracking.
// IDs are stable across frames for the same label in the same scope.
type ID uint32

const (
	// IDNone is the reserved "no widget" sentinel. Every widget call
	// rejects it: no hit-testing, no geometry, a false result.
	IDNone ID = 0

	// IDMax is rejected for panels: the scrollbar thumb derives its
	// identifier as id+1, which must not wrap to IDNone.
	IDMax ID = ^ID(0)
)

// maxScopeDepth bounds the scope stack. A push beyond this depth fails
// without mutating the stack.
const maxScopeDepth = 32

// FNV-1a parameters. The seed replaces the offset basis, which turns the
// hash into a streaming accumulator: hashing "a" then "b" on the result
// equals hashing "ab", and any prefix change changes the final value.
const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619
)

// hashBytes folds data into seed, FNV-1a style. It never returns IDNone:
// the zero hash is remapped so a pathological label cannot collide with
// the sentinel.
func hashBytes(seed ID, data []byte) ID {
	h := uint32(seed)
	for _, b := range data {
		h ^= uint32(b)
		h *= fnvPrime32
	}
	if h == 0 {
		h = fnvOffset32
	}
	return ID(h)
}

// hashString is hashBytes for a string key without a byte-slice copy.
func hashString(seed ID, s string) ID {
	h := uint32(seed)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime32
	}
	if h == 0 {
		h = fnvOffset32
	}
	return ID(h)
}

// scopeSeed returns the hash seed for the current scope: the top of the
// scope stack, or the FNV offset basis at the root.
func (ctx *Context) scopeSeed() ID {
	if n := len(ctx.scopes); n > 0 {
		return ctx.scopes[n-1]
	}
	return ID(fnvOffset32)
}

// ID derives a widget identifier from a string label, relative to the
// current scope. The same label in two different scopes yields two
// different identifiers.
func (ctx *Context) ID(label string) ID {
	return hashString(ctx.scopeSeed(), label)
}

// IDInt derives a widget identifier from an integer key, relative to the
// current scope. Useful for widgets generated from slice indices.
func (ctx *Context) IDInt(n int) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(n)))
	return hashBytes(ctx.scopeSeed(), buf[:])
}

// PushScope enters a named identifier scope. All IDs derived until the
// matching PopScope are mixed with this scope's seed. Returns false, with
// the stack unchanged, when the scope stack is full.
//
// Each push also folds in a per-frame occurrence counter, so two
// sequential scopes with the same label isolate their children from each
// other. The counter resets at Begin: a stable declaration sequence
// yields the same identifiers frame after frame.
func (ctx *Context) PushScope(label string) bool {
	if len(ctx.scopes) >= maxScopeDepth {
		return false
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], ctx.scopeSeq)
	ctx.scopeSeq++
	seed := hashString(ctx.scopeSeed(), label)
	ctx.scopes = append(ctx.scopes, hashBytes(seed, buf[:]))
	return true
}

// PopScope leaves the innermost scope. Harmless on an empty stack.
func (ctx *Context) PopScope() {
	if n := len(ctx.scopes); n > 0 {
		ctx.scopes = ctx.scopes[:n-1]
	}
}

// ScopeDepth returns the current scope stack depth.
func (ctx *Context) ScopeDepth() int {
	return len(ctx.scopes)
}
