package histutil

import (
	"testing"
)

func TestCursor_OlderWalksFromMostRecent(t *testing.T) {
	s := NewMemStore(15, "a", "b", "c")
	c := NewCursor(s)
	if c.Active() {
		t.Errorf("new cursor is active")
	}
	for k, want := range []string{"c", "b", "a"} {
		text, err := c.Older()
		if text != want || err != nil {
			t.Errorf("Older() #%d -> (%q, %v), want (%q, nil)", k+1, text, err, want)
		}
	}
	text, err := c.Older()
	if text != "" || err != ErrEndOfHistory {
		t.Errorf("Older() past oldest -> (%q, %v), want (\"\", ErrEndOfHistory)", text, err)
	}
	if c.Text() != "a" {
		t.Errorf("Text() after end of history -> %q, want \"a\"", c.Text())
	}
}

func TestCursor_Newer(t *testing.T) {
	s := NewMemStore(15, "a", "b", "c")
	c := NewCursor(s)

	if _, err := c.Newer(); err != ErrBeginOfHistory {
		t.Errorf("Newer() on fresh cursor -> %v, want ErrBeginOfHistory", err)
	}
	if c.Active() {
		t.Errorf("Newer() on fresh cursor activated it")
	}

	c.Older()
	c.Older()
	text, err := c.Newer()
	if text != "c" || err != nil {
		t.Errorf("Newer() -> (%q, %v), want (\"c\", nil)", text, err)
	}
	text, err = c.Newer()
	if text != "" || err != ErrBeginOfHistory {
		t.Errorf("Newer() at most recent -> (%q, %v), want (\"\", ErrBeginOfHistory)", text, err)
	}
	if c.Text() != "c" {
		t.Errorf("Text() after begin of history -> %q, want \"c\"", c.Text())
	}
}

func TestCursor_EmptyStore(t *testing.T) {
	c := NewCursor(NewMemStore(15))
	if _, err := c.Older(); err != ErrEndOfHistory {
		t.Errorf("Older() on empty store -> %v, want ErrEndOfHistory", err)
	}
	if c.Text() != "" {
		t.Errorf("Text() on empty store -> %q, want \"\"", c.Text())
	}
}

func TestCursor_Reset(t *testing.T) {
	c := NewCursor(NewMemStore(15, "a"))
	c.Older()
	c.Reset()
	if c.Active() || c.Text() != "" {
		t.Errorf("cursor still active after Reset")
	}
}

func TestCursor_DoesNotMutateStore(t *testing.T) {
	s := NewMemStore(15, "a", "b")
	c := NewCursor(s)
	c.Older()
	c.Older()
	c.Older()
	c.Newer()
	if s.Len() != 2 || s.Cmd(0) != "b" || s.Cmd(1) != "a" {
		t.Errorf("store changed by cursor: %v", Cmds(s))
	}
}
