package histutil

// Cursor walks a Store. A fresh cursor points at no entry; the first call to
// Older moves it to the most recent one. Moving a cursor never modifies the
// store.
type Cursor struct {
	s Store
	i int // -1 when pointing at no entry
}

// NewCursor returns a cursor over s that points at no entry.
func NewCursor(s Store) *Cursor {
	return &Cursor{s, -1}
}

// Reset moves the cursor back to no entry.
func (c *Cursor) Reset() { c.i = -1 }

// Active reports whether the cursor points at an entry.
func (c *Cursor) Active() bool { return c.i >= 0 }

// Older moves the cursor one entry older and returns its text. At the
// oldest entry, it returns ErrEndOfHistory and leaves the cursor unchanged.
func (c *Cursor) Older() (string, error) {
	if c.i+1 >= c.s.Len() {
		return "", ErrEndOfHistory
	}
	c.i++
	return c.s.Cmd(c.i), nil
}

// Newer moves the cursor one entry newer and returns its text. At the most
// recent entry, or when not pointing at any entry, it returns
// ErrBeginOfHistory and leaves the cursor unchanged.
func (c *Cursor) Newer() (string, error) {
	if c.i <= 0 {
		return "", ErrBeginOfHistory
	}
	c.i--
	return c.s.Cmd(c.i), nil
}

// Text returns the text of the entry the cursor points at, or "" if it
// points at no entry.
func (c *Cursor) Text() string {
	if c.i < 0 {
		return ""
	}
	return c.s.Cmd(c.i)
}
