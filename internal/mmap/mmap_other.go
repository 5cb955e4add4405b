//go:build !unix

package mmap

import "os"

// Open reads the whole file at filePath into memory.
func Open(filePath string) (*File, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return &File{Data: data, Size: len(data)}, nil
}
