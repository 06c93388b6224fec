//go:build !unix

package sys

import (
	"os"
	"os/signal"
)

const sigsChanBufferSize = 256

// NotifySignals returns a channel on which interrupts are delivered.
func NotifySignals() chan os.Signal {
	sigCh := make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(sigCh, os.Interrupt)
	return sigCh
}
