// Package errs wraps cockroachdb/errors so the rest of the codebase never
// imports it directly.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg and a stack trace. Returns nil for nil err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark ties err to markErr so errors.Is(err, markErr) holds while the
// original message and stack are preserved. Usecases use this to attach
// their sentinel errors to low-level failures.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
