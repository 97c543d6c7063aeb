package tap3ber

/*
project.go implements the projector: it walks a Raw Node tree against a
Dictionary and decodes each resolved primitive field into a Scalar.
*/

type projectConfig struct {
	lenientBCD bool
}

// ProjectOption configures a call to ProjectTAP.
type ProjectOption func(*projectConfig)

// WithLenientBCD controls how nibbles 0xA..0xE are handled when decoding a
// bcd_string field. The default (true) renders such nibbles as 'A'..'E';
// passing false rejects them with ErrBcdInvalid instead.
func WithLenientBCD(lenient bool) ProjectOption {
	return func(c *projectConfig) { c.lenientBCD = lenient }
}

func defaultProjectConfig() *projectConfig {
	return &projectConfig{lenientBCD: true}
}

// ProjectTAP walks root against the dictionary registered for (version,
// release) and returns the resulting Named Tree. The returned tree is
// independent of root's Arena and of the buffer root's values borrow
// from: every Scalar it carries is copied out during projection.
func ProjectTAP(root *RawNode, version, release int, opts ...ProjectOption) (*NamedNode, error) {
	dict, ok := lookupDictionary(version, release)
	if !ok {
		return nil, errUnknownSchema(version, release)
	}

	cfg := defaultProjectConfig()
	for _, o := range opts {
		o(cfg)
	}

	children, err := projectChildren(root.Children, dict, cfg)
	if err != nil {
		return nil, err
	}
	return &NamedNode{children: children}, nil
}

func projectChildren(raws []*RawNode, dict *Dictionary, cfg *projectConfig) ([]*NamedNode, error) {
	var out []*NamedNode
	for _, raw := range raws {
		entry, ok := dict.lookup(raw.Tag)
		if !ok {
			continue // unresolved tags are dropped, not errors
		}

		node := &NamedNode{name: entry.Name}

		if entry.Type != TypeGroup {
			scalar, err := decodeScalar(raw.Value, entry.Type, cfg)
			if err != nil {
				return nil, projectErr(err, raw.Tag)
			}
			node.data = scalar
			node.hasData = true
		}

		kids, err := projectChildren(raw.Children, dict, cfg)
		if err != nil {
			return nil, err
		}
		node.children = kids

		out = append(out, node)
	}
	return out, nil
}

func decodeScalar(value []byte, typ FieldType, cfg *projectConfig) (Scalar, error) {
	switch typ {
	case TypeOctetString:
		return Scalar{Kind: ScalarText, Text: append([]byte(nil), value...)}, nil
	case TypeBCDString:
		digits, err := decodeBCD(value, cfg.lenientBCD)
		if err != nil {
			return Scalar{}, err
		}
		return Scalar{Kind: ScalarDigits, Digits: digits}, nil
	case TypeInteger, TypeInteger64:
		i, err := decodeInt(value)
		if err != nil {
			return Scalar{}, err
		}
		return Scalar{Kind: ScalarInteger, Int: i}, nil
	default:
		return Scalar{}, nil
	}
}

// decodeBCD unpacks value as packed binary-coded decimal: each byte yields
// a high nibble then a low nibble, 0xF terminates the string without being
// emitted. Nibbles 0xA..0xE are rendered as 'A'..'E' unless lenient is
// false, in which case they fail with ErrBcdInvalid.
func decodeBCD(value []byte, lenient bool) (string, error) {
	buf := make([]byte, 0, len(value)*2)
	for _, b := range value {
		high, low := b>>4, b&0x0F

		if high == 0x0F {
			break
		}
		d, err := bcdDigit(high, lenient)
		if err != nil {
			return "", err
		}
		buf = append(buf, d)

		if low == 0x0F {
			break
		}
		d, err = bcdDigit(low, lenient)
		if err != nil {
			return "", err
		}
		buf = append(buf, d)
	}
	return string(buf), nil
}

func bcdDigit(nibble byte, lenient bool) (byte, error) {
	if nibble <= 9 {
		return '0' + nibble, nil
	}
	if !lenient {
		return 0, ErrBcdInvalid
	}
	return 'A' + (nibble - 10), nil
}

// decodeInt interprets value as a two's-complement big-endian signed
// integer of 1..8 octets, sign-extending into a 64-bit accumulator.
func decodeInt(value []byte) (int64, error) {
	n := len(value)
	if n == 0 || n > 8 {
		return 0, ErrIntLenInvalid
	}

	var acc uint64
	if value[0]&0x80 != 0 {
		acc = ^uint64(0)
	}
	for _, b := range value {
		acc = (acc << 8) | uint64(b)
	}
	return int64(acc), nil
}
