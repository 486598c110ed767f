//go:build !unix

// cmd/raise_stub.go
package cmd

import (
	"errors"
	"syscall"
)

// raise is unsupported on platforms without signal delivery.
func raise(sig syscall.Signal) error {
	return errors.New("raising signals is not supported on this platform")
}
