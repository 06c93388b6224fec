//go:build unix

package sys

import (
	"os"
	"os/signal"
	"syscall"
)

const sigsChanBufferSize = 256

// NotifySignals returns a channel on which the signals an interactive shell
// handles itself are delivered. Those signals are caught rather than
// ignored, so that child processes still get the default behavior.
func NotifySignals() chan os.Signal {
	sigCh := make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGUSR1)
	// Stopping the shell while the terminal is in raw mode would leave the
	// terminal unusable. Children inherit these as ignored, which also keeps
	// a stopped child from blocking the shell in Wait.
	//
	// TODO: Stop ignoring these once the line editor restores the terminal
	// on SIGTSTP and sets it up again on SIGCONT.
	signal.Ignore(syscall.SIGTTIN, syscall.SIGTTOU, syscall.SIGTSTP)
	return sigCh
}
