//go:build !unix

package term

import "os"

// Setup is a no-op on platforms without termios.
func Setup(in *os.File) (func() error, error) {
	return func() error { return nil }, nil
}
