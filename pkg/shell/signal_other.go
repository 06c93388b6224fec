//go:build !unix

package shell

import (
	"io"
	"os"
)

func handleSignal(os.Signal, io.Writer) {}
