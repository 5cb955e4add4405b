//go:build unix

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Open maps the file at filePath read-only. Empty files are not mapped and
// yield an empty Data slice.
func Open(filePath string) (*File, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	// The mapping stays valid after the descriptor is closed.
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for %q: %w", filePath, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%q is a directory", filePath)
	}

	fileSize := int(fi.Size())
	if fileSize == 0 {
		return &File{}, nil
	}

	// PROT_READ: pages may be read.
	// MAP_SHARED: no private copy is made.
	data, err := unix.Mmap(int(f.Fd()), 0, fileSize, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to mmap file %q with length %d: %w", filePath, fileSize, err)
	}

	return &File{
		Data: data,
		Size: fileSize,
		unmap: func() error {
			if err := unix.Munmap(data); err != nil {
				return fmt.Errorf("failed to munmap: %w", err)
			}
			return nil
		},
	}, nil
}
