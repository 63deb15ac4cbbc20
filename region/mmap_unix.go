//go:build unix

package region

import (
	"os"

	"golang.org/x/sys/unix"
)

const mmapSupported = true

// mmapFile maps the first n bytes of f read-only and shared.
func mmapFile(f *os.File, n int) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, n, unix.PROT_READ, unix.MAP_SHARED)
}

func munmap(b []byte) error {
	return unix.Munmap(b)
}
