package tap3ber

/*
ber.go implements the BER decoder: identifier-octet parsing (low-tag and
high-tag-number continuation forms), length-octet parsing (short, long,
and indefinite forms), and recursive descent into constructed content
bounded by a configurable nesting depth.
*/

const defaultMaxDepth = 256

type parseConfig struct {
	maxDepth   int
	arenaOpts  []ArenaOption
}

// ParseOption configures a call to ParseBER.
type ParseOption func(*parseConfig)

// WithMaxDepth overrides the default nesting-depth limit (256) enforced
// while recursively decoding constructed elements.
func WithMaxDepth(n int) ParseOption {
	return func(c *parseConfig) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithParseArenaBlockBytes forwards an Arena slab-size override to the
// Arena created for this parse.
func WithParseArenaBlockBytes(n int) ParseOption {
	return func(c *parseConfig) {
		c.arenaOpts = append(c.arenaOpts, WithArenaBlockBytes(n))
	}
}

func defaultParseConfig() *parseConfig {
	return &parseConfig{maxDepth: defaultMaxDepth}
}

// ParseBER decodes buf as a sequence of BER TLVs and returns the owning
// Arena together with a synthetic root Raw Node whose children are the
// top-level elements of buf. The returned Arena must be kept alive (not
// Reset) for as long as the Raw Node tree is used; buf itself must remain
// unmodified for at least as long.
func ParseBER(buf []byte, opts ...ParseOption) (*Arena, *RawNode, error) {
	cfg := defaultParseConfig()
	for _, o := range opts {
		o(cfg)
	}

	arena := NewArena(cfg.arenaOpts...)
	root := arena.newNode()
	root.Tag = 0
	root.Class = ClassUniversal
	root.Constructed = true
	root.Value = buf

	children, _, err := decodeElements(arena, buf, 0, len(buf), false, 0, cfg)
	if err != nil {
		return nil, nil, err
	}
	root.Children = children
	return arena, root, nil
}

// decodeElements decodes a run of sibling TLVs starting at start. When
// indefinite is false, the run must exactly fill [start, limit). When
// indefinite is true, the run is terminated by a 0x00 0x00 end-of-contents
// marker that must itself appear before limit; contentLen excludes that
// marker.
func decodeElements(arena *Arena, buf []byte, start, limit int, indefinite bool, depth int, cfg *parseConfig) (children []*RawNode, contentLen int, err error) {
	cursor := start

	for {
		if indefinite {
			if cursor+2 <= limit && buf[cursor] == 0x00 && buf[cursor+1] == 0x00 {
				return children, cursor - start, nil
			}
			if cursor >= limit {
				return nil, 0, berErr(ErrMissingEOC, cursor)
			}
		} else if cursor >= limit {
			break
		}

		var node *RawNode
		var next int
		node, next, err = decodeTLV(arena, buf, cursor, limit, depth, cfg)
		if err != nil {
			return nil, 0, err
		}
		children = append(children, node)
		cursor = next
	}

	if cursor != limit {
		// A child's own bounds check guarantees cursor <= limit; reaching
		// this with cursor < limit would mean the loop exited early, which
		// the exact-fill contract above forbids.
		return nil, 0, berErr(ErrLengthOverflow, cursor)
	}
	return children, limit - start, nil
}

// decodeTLV decodes a single identifier/length/value triple starting at
// cursor, bounded by limit (the end of the enclosing container, or the
// length of buf at the top level). It returns the node and the offset of
// the byte immediately following it.
func decodeTLV(arena *Arena, buf []byte, cursor, limit, depth int, cfg *parseConfig) (*RawNode, int, error) {
	if cursor >= limit {
		return nil, 0, berErr(ErrUnexpectedEnd, cursor)
	}

	class := Class(buf[cursor] >> 6)
	constructed := buf[cursor]&0x20 != 0
	tag := int(buf[cursor] & 0x1F)
	idLen := 1

	if tag == 0x1F {
		tag = 0
		i := 1
		for {
			if cursor+i >= limit {
				return nil, 0, berErr(ErrTagTooLong, cursor)
			}
			b := buf[cursor+i]
			tag = (tag << 7) | int(b&0x7F)
			idLen++
			if b&0x80 == 0 {
				break
			}
			if i == 4 { // five continuation octets would encode a tag number >= 2^28
				return nil, 0, berErr(ErrTagTooLong, cursor)
			}
			i++
		}
	}

	lenOff := cursor + idLen
	if lenOff >= limit {
		return nil, 0, berErr(ErrUnexpectedEnd, cursor)
	}

	first := buf[lenOff]
	lenLen := 1
	length := 0
	indefinite := false

	if first&0x80 == 0 {
		length = int(first)
	} else {
		n := int(first & 0x7F)
		if n == 0 {
			indefinite = true
		} else if n > 4 {
			return nil, 0, berErr(ErrLengthTooLong, lenOff)
		} else {
			if lenOff+n >= limit {
				return nil, 0, berErr(ErrUnexpectedEnd, lenOff)
			}
			for i := 1; i <= n; i++ {
				length = (length << 8) | int(buf[lenOff+i])
			}
			lenLen += n
		}
	}

	valueStart := lenOff + lenLen

	node := arena.newNode()
	node.Tag = tag
	node.Class = class
	node.Constructed = constructed

	if indefinite {
		if !constructed {
			return nil, 0, berErr(ErrIndefiniteOnPrimitive, cursor)
		}
		if depth+1 > cfg.maxDepth {
			return nil, 0, berErr(ErrNestingTooDeep, cursor)
		}
		children, contentLen, err := decodeElements(arena, buf, valueStart, limit, true, depth+1, cfg)
		if err != nil {
			return nil, 0, err
		}
		node.Value = buf[valueStart : valueStart+contentLen]
		node.Children = children
		return node, valueStart + contentLen + 2, nil
	}

	valueEnd := valueStart + length
	if valueEnd > limit {
		return nil, 0, berErr(ErrLengthOverflow, cursor)
	}

	if !constructed {
		node.Value = buf[valueStart:valueEnd]
		return node, valueEnd, nil
	}

	if depth+1 > cfg.maxDepth {
		return nil, 0, berErr(ErrNestingTooDeep, cursor)
	}
	children, _, err := decodeElements(arena, buf, valueStart, valueEnd, false, depth+1, cfg)
	if err != nil {
		return nil, 0, err
	}
	node.Value = buf[valueStart:valueEnd]
	node.Children = children
	return node, valueEnd, nil
}
