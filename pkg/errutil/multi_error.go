// Package errutil contains utilities for working with errors.
package errutil

import "strings"

// Multi combines multiple errors into one:
//
//   - If all errors are nil, it returns nil.
//
//   - If there is one non-nil error, it is returned.
//
//   - Otherwise, the return value is an error whose Error method contains
//     the messages of all non-nil arguments.
//
// Errors returned by Multi are flattened when passed to Multi again.
func Multi(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if multi, ok := err.(multiError); ok {
			nonNil = append(nonNil, multi...)
		} else {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return multiError(nonNil)
	}
}

// Call calls each function in order and combines their errors with Multi.
// It is useful for cleanup paths that must run every step even when an
// earlier one fails.
func Call(fns ...func() error) error {
	errs := make([]error, len(fns))
	for i, fn := range fns {
		if fn != nil {
			errs[i] = fn()
		}
	}
	return Multi(errs...)
}

type multiError []error

func (me multiError) Error() string {
	var sb strings.Builder
	sb.WriteString("multiple errors: ")
	for i, e := range me {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Unwrap returns the combined errors, so that errors.Is and errors.As can
// look into them.
func (me multiError) Unwrap() []error { return me }
