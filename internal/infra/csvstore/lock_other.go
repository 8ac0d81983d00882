//go:build !unix

package csvstore

import "os"

// Advisory file locking is unsupported on this platform; appends proceed
// without it. The per-table mutex still serializes in-process writers.
func flock(_ *os.File) error { return nil }

func funlock(_ *os.File) error { return nil }
