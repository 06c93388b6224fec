// Package must contains simple functions that panic on errors.
//
// It should only be used in tests and in the rare places where errors are
// provably impossible.
package must

import (
	"os"
	"path/filepath"
)

// OK panics if the error value is not nil.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// OK1 panics if the error value is not nil, and returns v otherwise.
func OK1[T any](v T, err error) T {
	OK(err)
	return v
}

// OK2 panics if the error value is not nil, and returns v1 and v2 otherwise.
func OK2[T1, T2 any](v1 T1, v2 T2, err error) (T1, T2) {
	OK(err)
	return v1, v2
}

// Pipe wraps os.Pipe.
func Pipe() (*os.File, *os.File) {
	return OK2(os.Pipe())
}

// Getwd wraps os.Getwd, with symlinks resolved.
func Getwd() string {
	return OK1(filepath.EvalSymlinks(OK1(os.Getwd())))
}

// ReadFileString wraps os.ReadFile and converts the result to a string.
func ReadFileString(fname string) string {
	return string(OK1(os.ReadFile(fname)))
}

// WriteFile writes data to a file, after creating all ancestor directories
// that don't exist.
func WriteFile(fname, data string) {
	OK(os.MkdirAll(filepath.Dir(fname), 0700))
	OK(os.WriteFile(fname, []byte(data), 0600))
}
