//go:build unix

package csvstore

import (
	"os"
	"syscall"
)

// flock takes an advisory exclusive lock on the open file.
func flock(f *os.File) error {
	return syscall.Flock(int(f.Fd()), syscall.LOCK_EX)
}

// funlock releases the advisory lock. Closing the descriptor also releases
// it, so errors here are ignorable.
func funlock(f *os.File) error {
	return syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
}
