package gif

import (
	"bufio"
	"errors"
	"io"
)

type byteReader interface {
	io.Reader
	io.ByteReader
}

// reader counts the bytes consumed so errors can carry an offset.
type reader struct {
	r byteReader
	n int64
}

func newReader(r io.Reader) *reader {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &reader{r: br}
}

func (r *reader) readByte(what string) (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, r.translate(err, what)
	}
	r.n++
	return b, nil
}

func (r *reader) readFull(b []byte, what string) error {
	n, err := io.ReadFull(r.r, b)
	off := r.n
	r.n += int64(n)
	if err != nil {
		return r.translateAt(off, err, what)
	}
	return nil
}

func (r *reader) translate(err error, what string) error {
	return r.translateAt(r.n, err, what)
}

func (r *reader) translateAt(off int64, err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &FormatError{Offset: off, What: what, Err: ErrTruncated}
	}
	return &IOError{Op: "read " + what, Err: err}
}

func (r *reader) errorAt(off int64, err error, what string) error {
	return &FormatError{Offset: off, What: what, Err: err}
}
