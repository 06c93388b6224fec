// Package clitest provides utilities for testing the line editor.
package clitest

import (
	"io"
	"strings"

	"src.pina.sh/pkg/cli/term"
)

// An implementation of the term.TTY interface that is useful in tests. It
// reads from a fixed input and records everything written to it.
type fakeTTY struct {
	term.Writer
	in  *strings.Reader
	out *strings.Builder

	setupErr error
	// Whether the terminal is currently in raw mode.
	raw bool
	// Number of calls to Setup and to the restore function.
	setups, restores int
	// Whether a byte was read while the terminal was not in raw mode.
	readCooked bool
}

// NewFakeTTY creates a new FakeTTY whose input is the given string, and a
// handle for controlling it. ReadByte returns io.EOF once the input is
// exhausted.
func NewFakeTTY(input string) (term.TTY, TTYCtrl) {
	out := &strings.Builder{}
	tty := &fakeTTY{Writer: term.NewWriter(out), in: strings.NewReader(input), out: out}
	return tty, TTYCtrl{tty}
}

func (t *fakeTTY) Setup() (func() error, error) {
	if t.setupErr != nil {
		return nil, t.setupErr
	}
	t.setups++
	t.raw = true
	return func() error {
		t.restores++
		t.raw = false
		return nil
	}, nil
}

func (t *fakeTTY) ReadByte() (byte, error) {
	if !t.raw {
		t.readCooked = true
	}
	b, err := t.in.ReadByte()
	if err != nil {
		return 0, io.EOF
	}
	return b, nil
}

// TTYCtrl is an interface for controlling a fake terminal.
type TTYCtrl struct{ *fakeTTY }

// SetSetupError makes subsequent calls to Setup fail with err.
func (t TTYCtrl) SetSetupError(err error) { t.setupErr = err }

// Output returns everything written to the terminal so far.
func (t TTYCtrl) Output() string { return t.out.String() }

// ResetOutput discards the recorded output.
func (t TTYCtrl) ResetOutput() { t.out.Reset() }

// Raw reports whether the terminal is in raw mode.
func (t TTYCtrl) Raw() bool { return t.raw }

// Setups returns the number of times the terminal was put into raw mode.
func (t TTYCtrl) Setups() int { return t.setups }

// Restores returns the number of times the terminal was restored.
func (t TTYCtrl) Restores() int { return t.restores }

// ReadCooked reports whether any input was read outside raw mode.
func (t TTYCtrl) ReadCooked() bool { return t.readCooked }

// Remaining returns the number of input bytes not yet read.
func (t TTYCtrl) Remaining() int { return t.in.Len() }
