package tap3ber

import (
	"errors"
	"testing"
)

func TestParseTagIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		tag    int
		idLen  int
	}{
		{"high-tag-number A", []byte{0x5F, 0x81, 0x44}, 196, 3},
		{"high-tag-number B", []byte{0x7F, 0x81, 0x63}, 227, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := append(append([]byte(nil), tc.data...), 0x00) // trailing length octet
			node, next, err := decodeTLV(NewArena(), buf, 0, len(buf), 0, defaultParseConfig())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if node.Tag != tc.tag {
				t.Errorf("tag = %d, want %d", node.Tag, tc.tag)
			}
			if next != len(tc.data)+1 {
				t.Errorf("consumed = %d, want %d", next, len(tc.data)+1)
			}
			_ = tc.idLen
		})
	}
}

func TestHighTagNumberApplicationPrimitive(t *testing.T) {
	buf := []byte{0x5F, 0x81, 0x44, 0x05, 0x41, 0x55, 0x54, 0x4D, 0x4D}
	_, root, err := ParseBER(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	n := root.Children[0]
	if n.Class != ClassApplication {
		t.Errorf("class = %v, want APPLICATION", n.Class)
	}
	if n.Constructed {
		t.Errorf("constructed = true, want false")
	}
	if n.Tag != 196 {
		t.Errorf("tag = %d, want 196", n.Tag)
	}
	want := []byte{0x41, 0x55, 0x54, 0x4D, 0x4D}
	if string(n.Value) != string(want) {
		t.Errorf("value = %v, want %v", n.Value, want)
	}
}

func TestLongFormLength(t *testing.T) {
	// S4: 82 EA EF decodes to length 60143, 3 octets consumed.
	buf := []byte{0x82, 0xEA, 0xEF}
	content := make([]byte, 60143)
	full := append([]byte{0x04}, buf...) // OCTET STRING tag
	full = append(full, content...)

	_, root, err := ParseBER(full)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	if got := len(root.Children[0].Value); got != 60143 {
		t.Errorf("value length = %d, want 60143", got)
	}
}

func TestIndefiniteLength(t *testing.T) {
	// SEQUENCE (constructed, universal tag 16) indefinite length containing
	// one INTEGER primitive, then EOC.
	buf := []byte{
		0x30, 0x80, // constructed, tag 16, indefinite
		0x02, 0x01, 0x2A, // INTEGER 42
		0x00, 0x00, // EOC
	}
	_, root, err := ParseBER(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	seq := root.Children[0]
	if !seq.Constructed {
		t.Errorf("expected constructed")
	}
	if len(seq.Children) != 1 {
		t.Fatalf("seq children = %d, want 1", len(seq.Children))
	}
	if got := seq.Children[0].Value; len(got) != 1 || got[0] != 0x2A {
		t.Errorf("inner value = %v, want [0x2A]", got)
	}
}

func TestBoundaryErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"indefinite missing EOC", []byte{0x30, 0x80, 0x02, 0x01, 0x00}, ErrMissingEOC},
		{"length too long", []byte{0x04, 0x85, 0, 0, 0, 0, 0}, ErrLengthTooLong},
		{"tag too long", []byte{0x1F, 0x81, 0x81, 0x81, 0x81}, ErrTagTooLong},
		{"indefinite on primitive", []byte{0x04, 0x80}, ErrIndefiniteOnPrimitive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseBER(tc.data)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want wrapping %v", err, tc.want)
			}
		})
	}
}

func TestLengthOverflow(t *testing.T) {
	// Outer SEQUENCE declares length 2, but the nested element declares a
	// length that extends past it.
	buf := []byte{
		0x30, 0x02, // SEQUENCE, length 2
		0x04, 0x05, // OCTET STRING, length 5 -- overflows the SEQUENCE
	}
	_, _, err := ParseBER(buf)
	if !errors.Is(err, ErrLengthOverflow) {
		t.Errorf("err = %v, want wrapping ErrLengthOverflow", err)
	}
}

func TestOrderPreservation(t *testing.T) {
	buf := []byte{
		0x02, 0x01, 0x01, // INTEGER 1
		0x02, 0x01, 0x02, // INTEGER 2
		0x02, 0x01, 0x03, // INTEGER 3
	}
	_, root, err := ParseBER(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(root.Children))
	}
	for i, want := range []byte{1, 2, 3} {
		if root.Children[i].Value[0] != want {
			t.Errorf("child %d = %v, want %v", i, root.Children[i].Value[0], want)
		}
	}
}

func TestNestingTooDeep(t *testing.T) {
	// Build depth nested empty SEQUENCEs, innermost first, then wrap
	// outward so each header's declared length exactly covers everything
	// nested inside it.
	depth := 10
	buf := []byte{}
	for i := 0; i < depth; i++ {
		buf = append([]byte{0x30, byte(len(buf))}, buf...)
	}
	_, _, err := ParseBER(buf, WithMaxDepth(3))
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("err = %v, want wrapping ErrNestingTooDeep", err)
	}
}
