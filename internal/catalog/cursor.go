package catalog

// Cursor is the highlighted position in the matching list. It is unset only
// while the list is empty.
type Cursor struct {
	index int
	set   bool
	wrap  bool
}

// NewCursor returns an unset cursor. With wrap false, stepping past either
// end of the list stays on the last or first element.
func NewCursor(wrap bool) Cursor {
	return Cursor{wrap: wrap}
}

// Index returns the highlighted position, if any.
func (c Cursor) Index() (int, bool) {
	return c.index, c.set
}

// Reset moves the cursor to the first of n elements.
func (c *Cursor) Reset(n int) {
	c.index = 0
	c.set = n > 0
}

// Clamp keeps the cursor valid for a list that now holds n elements.
func (c *Cursor) Clamp(n int) {
	switch {
	case n == 0:
		c.Reset(0)
	case !c.set:
		c.Reset(n)
	case c.index >= n:
		c.index = n - 1
	}
}

// MoveTo highlights element i of n. Out of range positions are ignored.
func (c *Cursor) MoveTo(i, n int) {
	if i >= 0 && i < n {
		c.index, c.set = i, true
	}
}

// First moves to the first element.
func (c *Cursor) First(n int) {
	if n > 0 {
		c.index, c.set = 0, true
	}
}

// Last moves to the last element.
func (c *Cursor) Last(n int) {
	if n > 0 {
		c.index, c.set = n-1, true
	}
}

// Next steps forward, wrapping to the first element at the end.
func (c *Cursor) Next(n int) {
	if !c.set || n == 0 {
		return
	}
	switch {
	case c.index < n-1:
		c.index++
	case c.wrap:
		c.index = 0
	default:
		c.index = n - 1
	}
}

// Prev steps backward, wrapping to the last element at the start.
func (c *Cursor) Prev(n int) {
	if !c.set || n == 0 {
		return
	}
	switch {
	case c.index > 0:
		c.index--
	case c.wrap:
		c.index = n - 1
	}
}
