//go:build !unix

package region

import (
	"errors"
	"os"
)

// Images are read into heap memory on platforms without mmap support.
const mmapSupported = false

func mmapFile(*os.File, int) ([]byte, error) {
	return nil, errors.New("mmap not supported on this platform")
}

func munmap([]byte) error {
	return nil
}
