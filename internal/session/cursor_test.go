package session

import (
	"errors"
	"testing"
)

func TestCursor_AdvanceClampsAtEnd(t *testing.T) {
	c := NewCursor(3)

	if !c.Advance() {
		t.Fatal("first advance should move")
	}
	if !c.Advance() {
		t.Fatal("second advance should move")
	}
	if c.Advance() {
		t.Error("advance past last element should be a no-op")
	}
	if c.Index() != 2 {
		t.Errorf("Index = %d, want 2", c.Index())
	}
}

func TestCursor_RetreatClampsAtStart(t *testing.T) {
	c := NewCursor(3)

	if c.Retreat() {
		t.Error("retreat at first element should be a no-op")
	}
	c.Advance()
	if !c.Retreat() {
		t.Error("retreat from second element should move")
	}
	if !c.IsFirst() {
		t.Error("expected cursor back at the first element")
	}
}

func TestCursor_JumpTo(t *testing.T) {
	c := NewCursor(4)

	if err := c.JumpTo(3); err != nil {
		t.Fatalf("JumpTo(3) error: %v", err)
	}
	if !c.IsLast() {
		t.Error("expected IsLast after jumping to the last index")
	}

	for _, bad := range []int{-1, 4, 100} {
		if err := c.JumpTo(bad); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("JumpTo(%d) = %v, want ErrOutOfRange", bad, err)
		}
	}
	if c.Index() != 3 {
		t.Errorf("failed jump moved the cursor to %d", c.Index())
	}
}

func TestCursor_Empty(t *testing.T) {
	c := NewCursor(0)

	if _, ok := c.Current(); ok {
		t.Error("empty cursor should have no current element")
	}
	if c.IsLast() {
		t.Error("empty cursor has no last element")
	}
	if c.Advance() {
		t.Error("advance on empty cursor should be a no-op")
	}
	if err := c.JumpTo(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("JumpTo(0) on empty cursor = %v, want ErrOutOfRange", err)
	}
}
