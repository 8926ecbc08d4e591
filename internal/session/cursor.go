package session

import "fmt"

// Cursor tracks a position in an ordered list of a fixed length. Advance
// and Retreat clamp at the ends; only JumpTo can fail.
type Cursor struct {
	length int
	pos    int
}

// NewCursor creates a cursor over a list of the given length, positioned
// at the first element.
func NewCursor(length int) Cursor {
	return Cursor{length: length}
}

// Current returns the index under the cursor, or false if the list is empty.
func (c Cursor) Current() (int, bool) {
	if c.length == 0 {
		return 0, false
	}
	return c.pos, true
}

// Index returns the raw cursor position.
func (c Cursor) Index() int {
	return c.pos
}

// Len returns the length of the underlying list.
func (c Cursor) Len() int {
	return c.length
}

// Advance moves the cursor forward one position, clamped at the last
// element. Returns whether the position changed.
func (c *Cursor) Advance() bool {
	if c.length == 0 || c.pos >= c.length-1 {
		return false
	}
	c.pos++
	return true
}

// Retreat moves the cursor back one position, clamped at the first
// element. Returns whether the position changed.
func (c *Cursor) Retreat() bool {
	if c.pos <= 0 {
		return false
	}
	c.pos--
	return true
}

// JumpTo sets the cursor position directly. Fails with ErrOutOfRange if
// index is not in [0, length).
func (c *Cursor) JumpTo(index int) error {
	if index < 0 || index >= c.length {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, c.length)
	}
	c.pos = index
	return nil
}

// Reset moves the cursor back to the first element.
func (c *Cursor) Reset() {
	c.pos = 0
}

// IsFirst reports whether the cursor is on the first element.
func (c Cursor) IsFirst() bool {
	return c.pos == 0
}

// IsLast reports whether the cursor is on the last element. An empty list
// has no last element.
func (c Cursor) IsLast() bool {
	return c.length > 0 && c.pos == c.length-1
}
