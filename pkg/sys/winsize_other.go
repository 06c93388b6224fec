//go:build !unix

package sys

import "os"

// WinSize always returns -1, -1 on this platform.
func WinSize(file *os.File) (row, col int) {
	return -1, -1
}
