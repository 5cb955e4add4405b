package gif

import (
	"bufio"
	"bytes"
	"errors"
	"os"

	"github.com/ostafen/gifkit/internal/mmap"
)

// Load decodes the GIF stored at path.
func Load(path string, opts ...Option) (GIF, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return GIF{}, &IOError{Op: "open", Path: path, Err: err}
	}
	defer m.Close()

	// Decoded blocks are copied out of the mapping, so g outlives m.
	g, err := Decode(bytes.NewReader(m.Data), opts...)
	if err != nil {
		return GIF{}, err
	}
	return g, nil
}

// Save encodes g into the file at path, replacing any existing content.
func Save(g GIF, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriterSize(f, 64*1024)
	if err := Encode(w, g); err != nil {
		return withPath(err, path)
	}
	if err := w.Flush(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func withPath(err error, path string) error {
	var ioErr *IOError
	if errors.As(err, &ioErr) && ioErr.Path == "" {
		return &IOError{Op: ioErr.Op, Path: path, Err: ioErr.Err}
	}
	return err
}
