//go:build unix

// cmd/raise_unix.go
package cmd

import "syscall"

// raise delivers sig to this process.
func raise(sig syscall.Signal) error {
	return syscall.Kill(syscall.Getpid(), sig)
}
