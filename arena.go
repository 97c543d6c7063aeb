package tap3ber

/*
arena.go implements the bump allocator that owns every RawNode produced
during a single parse. It satisfies allocations out of an inline slab
before falling back to overflow slabs of the same size, and releases
everything at once on Reset rather than tracking individual node
lifetimes.

Go's garbage collector makes raw pointer-bump arithmetic both unnecessary
and unsafe to reach for, so the arena here hands out *RawNode values
carved from backing []RawNode slabs rather than raw bytes. This keeps the
load-bearing properties intact: O(1) allocation, no per-node destructor
cost during parsing, and bulk release on Reset.
*/

import "unsafe"

const defaultArenaBlockBytes = 64 * 1024

var rawNodeSize = int(unsafe.Sizeof(RawNode{}))

type arenaConfig struct {
	blockBytes int
}

// ArenaOption configures an Arena returned by NewArena.
type ArenaOption func(*arenaConfig)

// WithArenaBlockBytes overrides the default 64 KiB slab size used for the
// inline block and every subsequent overflow block.
func WithArenaBlockBytes(n int) ArenaOption {
	return func(c *arenaConfig) {
		if n > 0 {
			c.blockBytes = n
		}
	}
}

// Arena is a bump allocator that owns all RawNode instances produced by a
// single call to ParseBER. It is not safe for concurrent use; callers
// running independent parses in parallel must use one Arena per parse.
type Arena struct {
	blockNodes int
	current    []RawNode
	idx        int
	blocks     int
}

// NewArena returns an Arena ready to allocate RawNode instances.
func NewArena(opts ...ArenaOption) *Arena {
	cfg := arenaConfig{blockBytes: defaultArenaBlockBytes}
	for _, o := range opts {
		o(&cfg)
	}
	nodesPerBlock := cfg.blockBytes / rawNodeSize
	if nodesPerBlock < 1 {
		nodesPerBlock = 1
	}
	return &Arena{blockNodes: nodesPerBlock}
}

// newNode returns a zeroed RawNode carved from the current slab, allocating
// a fresh overflow slab first if the current one is exhausted.
func (a *Arena) newNode() *RawNode {
	if a.current == nil || a.idx >= len(a.current) {
		a.current = make([]RawNode, a.blockNodes)
		a.idx = 0
		a.blocks++
	}
	n := &a.current[a.idx]
	a.idx++
	return n
}

// Blocks reports how many slabs (inline plus overflow) the arena has
// allocated so far. Intended for tests and diagnostics.
func (a *Arena) Blocks() int { return a.blocks }

// Reset invalidates every RawNode previously returned by this Arena,
// freeing all of its slabs en masse.
func (a *Arena) Reset() {
	a.current = nil
	a.idx = 0
	a.blocks = 0
}
