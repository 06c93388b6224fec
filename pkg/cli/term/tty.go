// Package term talks to the terminal: it switches it into and out of raw
// mode, reads raw input bytes and writes the echo and redraw sequences of the
// line editor.
package term

import (
	"io"
	"os"

	"src.pina.sh/pkg/logutil"
	"src.pina.sh/pkg/sys"
)

var logger = logutil.GetLogger("[cli/term] ")

// TTY is the terminal that the line editor talks to.
type TTY interface {
	// Setup puts the terminal into raw mode and returns a function that
	// restores the previous mode.
	Setup() (restore func() error, err error)
	// ReadByte reads a single raw byte of input. It returns io.EOF when the
	// input is exhausted.
	io.ByteReader
	Writer
}

type aTTY struct {
	in, out *os.File
	Writer
}

// NewTTY returns a TTY reading from in and writing to out.
func NewTTY(in, out *os.File) TTY {
	return &aTTY{in, out, NewWriter(out)}
}

// Redraw never clears more columns than the terminal has, since spaces past
// the right margin would wrap onto the next row.
func (t *aTTY) Redraw(prompt, line string, width int) {
	if _, cols := sys.WinSize(t.out); cols > 0 && width > cols-1 {
		width = cols - 1
	}
	t.Writer.Redraw(prompt, line, width)
}

func (t *aTTY) Setup() (func() error, error) {
	return Setup(t.in)
}

// ReadByte reads exactly one byte without any buffering, so that input
// typed ahead of a command stays in the terminal for the command to read.
func (t *aTTY) ReadByte() (byte, error) {
	var b [1]byte
	for {
		n, err := t.in.Read(b[:])
		if n == 1 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
