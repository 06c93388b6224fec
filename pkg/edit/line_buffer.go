package edit

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrAlloc is returned when the line buffer cannot grow.
var ErrAlloc = errors.New("cannot allocate line buffer")

// Size by which the line buffer grows.
const bufIncrement = 1024

// Allocator returns a zeroed byte slice of the given size.
type Allocator func(size int) ([]byte, error)

// DefaultAllocator allocates with make.
func DefaultAllocator(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// LineBuffer holds the line being edited. It only ever changes at the end.
// Its capacity grows by a fixed increment and never shrinks.
type LineBuffer struct {
	buf   []byte
	n     int
	alloc Allocator
}

// NewLineBuffer returns an empty LineBuffer with an initial capacity of one
// increment.
func NewLineBuffer(alloc Allocator) (*LineBuffer, error) {
	b := &LineBuffer{alloc: alloc}
	if err := b.grow(bufIncrement); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *LineBuffer) grow(size int) error {
	buf, err := b.alloc(size)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAlloc, err)
	}
	copy(buf, b.buf[:b.n])
	b.buf = buf
	return nil
}

func (b *LineBuffer) reserve(n int) error {
	if n <= len(b.buf) {
		return nil
	}
	size := len(b.buf)
	for size < n {
		size += bufIncrement
	}
	return b.grow(size)
}

// Append adds s to the end of the buffer.
func (b *LineBuffer) Append(s string) error {
	if err := b.reserve(b.n + len(s)); err != nil {
		return err
	}
	b.n += copy(b.buf[b.n:], s)
	return nil
}

// Pop removes the last character and returns it. It returns "" if the
// buffer is empty.
func (b *LineBuffer) Pop() string {
	if b.n == 0 {
		return ""
	}
	_, size := utf8.DecodeLastRune(b.buf[:b.n])
	s := string(b.buf[b.n-size : b.n])
	b.n -= size
	return s
}

// Set replaces the whole content of the buffer with s.
func (b *LineBuffer) Set(s string) error {
	if err := b.reserve(len(s)); err != nil {
		return err
	}
	b.n = copy(b.buf, s)
	return nil
}

// Len returns the length of the content in bytes.
func (b *LineBuffer) Len() int { return b.n }

// Cap returns the current capacity.
func (b *LineBuffer) Cap() int { return len(b.buf) }

// String returns the content.
func (b *LineBuffer) String() string { return string(b.buf[:b.n]) }

// WordBefore returns the word that ends right before byte offset i, or "" if
// the byte before i is a space or tab.
func (b *LineBuffer) WordBefore(i int) string {
	start := i
	for start > 0 && !isBlank(b.buf[start-1]) {
		start--
	}
	return string(b.buf[start:i])
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }
