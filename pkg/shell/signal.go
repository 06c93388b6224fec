package shell

import (
	"io"
	"os/signal"

	"src.pina.sh/pkg/sys"
)

// initSignal starts handling signals for the lifetime of the session. The
// returned function stops it.
func initSignal(stderr io.Writer) func() {
	sigCh := sys.NotifySignals()
	go func() {
		for sig := range sigCh {
			logger.Println("signal", sig)
			handleSignal(sig, stderr)
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(sigCh)
	}
}
