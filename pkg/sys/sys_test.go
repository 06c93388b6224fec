//go:build unix

package sys

import (
	"testing"

	"github.com/creack/pty"

	"src.pina.sh/pkg/must"
)

func TestIsATTY(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if IsATTY(r) {
		t.Errorf("IsATTY(pipe) = true, want false")
	}

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	if !IsATTY(tty) {
		t.Errorf("IsATTY(tty) = false, want true")
	}
}

func TestWinSize(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if row, col := WinSize(w); row != -1 || col != -1 {
		t.Errorf("WinSize(pipe) = (%d, %d), want (-1, -1)", row, col)
	}

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	must.OK(pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}))
	if row, col := WinSize(tty); row != 30 || col != 100 {
		t.Errorf("WinSize(tty) = (%d, %d), want (30, 100)", row, col)
	}
}
