package tap3ber

import "testing"

func TestArenaOverflowsIntoNewBlock(t *testing.T) {
	a := NewArena(WithArenaBlockBytes(rawNodeSize * 4))
	for i := 0; i < 9; i++ {
		n := a.newNode()
		n.Tag = i
	}
	if a.Blocks() < 2 {
		t.Errorf("blocks = %d, want at least 2 after overflowing a 4-node block", a.Blocks())
	}
}

func TestArenaResetDropsSlabs(t *testing.T) {
	a := NewArena()
	a.newNode()
	a.Reset()
	if a.Blocks() != 0 {
		t.Errorf("blocks after reset = %d, want 0", a.Blocks())
	}
	a.newNode()
	if a.Blocks() != 1 {
		t.Errorf("blocks after reallocation = %d, want 1", a.Blocks())
	}
}
