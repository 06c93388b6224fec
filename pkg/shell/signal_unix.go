//go:build unix

package shell

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"src.pina.sh/pkg/sys"
)

// SIGINT and SIGQUIT are only caught, so that Ctrl-C and Ctrl-\ interrupt
// the running command but not the shell.
func handleSignal(sig os.Signal, stderr io.Writer) {
	if sig == syscall.SIGUSR1 {
		fmt.Fprint(stderr, sys.DumpStack())
	}
}
