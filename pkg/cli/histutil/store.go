// Package histutil provides the bounded command history used by the line
// editor, together with a cursor for walking it.
package histutil

import (
	"errors"

	"src.pina.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[histutil] ")

// Errors signaling that a cursor cannot move further.
var (
	ErrEndOfHistory   = errors.New("end of history")
	ErrBeginOfHistory = errors.New("begin of history")
)

// Store is a bounded, ordered collection of command lines. Index 0 is the
// most recent entry.
type Store interface {
	// AddCmd inserts a line as the most recent entry, evicting the oldest one
	// when the store is full. The line is always added to the in-memory view,
	// even when an error is returned.
	AddCmd(text string) error
	// Len returns the number of entries.
	Len() int
	// Cmd returns the i-th most recent entry.
	Cmd(i int) string
}

// Cmds returns all entries of the store, most recent first.
func Cmds(s Store) []string {
	cmds := make([]string, s.Len())
	for i := range cmds {
		cmds[i] = s.Cmd(i)
	}
	return cmds
}
