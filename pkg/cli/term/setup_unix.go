//go:build unix

package term

import (
	"fmt"
	"os"

	"src.pina.sh/pkg/sys"
	"src.pina.sh/pkg/sys/eunix"
)

// Setup puts the terminal referenced by in into the mode used for reading a
// line keystroke by keystroke: no canonical line buffering and no local
// echo. It returns a function that restores the original attributes.
//
// If in is not a terminal, Setup does nothing and the returned function is
// a no-op.
func Setup(in *os.File) (func() error, error) {
	if !sys.IsATTY(in) {
		return func() error { return nil }, nil
	}
	// All fds pointing to the same terminal are equivalent, so use the input
	// file for changing termios.
	fd := int(in.Fd())
	term, err := eunix.TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %w", err)
	}

	savedTermios := term.Copy()

	term.SetICanon(false)
	term.SetEcho(false)
	term.SetVMin(1)
	term.SetVTime(0)
	// Enforce CR to NL translation, so that Enter always arrives as '\n'.
	term.SetICRNL(true)

	err = term.ApplyToFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't set up terminal attribute: %w", err)
	}

	restore := func() error {
		if err := savedTermios.ApplyToFd(fd); err != nil {
			return fmt.Errorf("can't restore terminal attribute: %w", err)
		}
		return nil
	}
	return restore, nil
}
