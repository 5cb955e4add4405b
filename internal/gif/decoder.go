// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package gif

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
)

type Decoder struct {
	r      *reader
	logger *slog.Logger
}

type Option func(*Decoder)

// WithLogger makes the decoder trace every block it dispatches at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{
		r:      newReader(r),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads a whole GIF from r. The first malformed or missing byte aborts
// decoding; the error wraps one of the Err* sentinels or is an *IOError.
func Decode(r io.Reader, opts ...Option) (GIF, error) {
	return NewDecoder(r, opts...).Decode()
}

func (d *Decoder) Decode() (GIF, error) {
	header, err := d.readHeader()
	if err != nil {
		return GIF{}, err
	}

	screen, err := d.readScreenDescriptor()
	if err != nil {
		return GIF{}, err
	}

	g := GIF{
		Header:  header,
		Screen:  screen,
		Trailer: Trailer,
	}

	if screen.Fields.GlobalColorTable {
		t, err := readColorTable(d.r, screen.Fields.GlobalTableSize, "global color table")
		if err != nil {
			return GIF{}, err
		}
		g.GlobalColorTable = Some(t)
	}

	for {
		f, ok, err := d.readFrame()
		if err != nil {
			return GIF{}, err
		}
		if !ok {
			break
		}
		g.Frames = append(g.Frames, f)
	}

	d.logger.Debug("decoded gif",
		"version", string(header.Version[:]),
		"frames", len(g.Frames),
		"size", d.r.n,
	)
	return g, nil
}

func (d *Decoder) readHeader() (Header, error) {
	var h Header
	if err := d.r.readFull(h.Signature[:], "signature"); err != nil {
		return Header{}, err
	}
	if string(h.Signature[:]) != Signature {
		return Header{}, d.r.errorAt(0, ErrInvalidSignature, fmt.Sprintf("%q", h.Signature[:]))
	}
	if err := d.r.readFull(h.Version[:], "version"); err != nil {
		return Header{}, err
	}
	return h, nil
}

func (d *Decoder) readScreenDescriptor() (ScreenDescriptor, error) {
	var buf [7]byte
	if err := d.r.readFull(buf[:], "logical screen descriptor"); err != nil {
		return ScreenDescriptor{}, err
	}
	return ScreenDescriptor{
		Width:           uint16(buf[0]) | uint16(buf[1])<<8,
		Height:          uint16(buf[2]) | uint16(buf[3])<<8,
		Fields:          DecodeScreenFields(buf[4]),
		BackgroundIndex: buf[5],
		AspectRatio:     buf[6],
	}, nil
}

// readFrame collects extensions until an image block completes a frame.
// It reports false when the trailer is reached instead.
func (d *Decoder) readFrame() (Frame, bool, error) {
	var f Frame
	for {
		off := d.r.n
		c, err := d.r.readByte("block separator")
		if err != nil {
			return Frame{}, false, err
		}

		switch c {
		case sExtension:
			if err := d.readExtension(&f); err != nil {
				return Frame{}, false, err
			}
		case sImageDescriptor:
			if err := d.readImage(&f); err != nil {
				return Frame{}, false, err
			}
			d.logger.Debug("image block",
				"offset", off,
				"width", f.Descriptor.Width,
				"height", f.Descriptor.Height,
				"subBlocks", len(f.Data.Blocks),
			)
			return f, true, nil
		case sTrailer:
			if n := len(f.ExtensionOrder); n > 0 {
				d.logger.Warn("discarding extensions not followed by an image", "count", n, "offset", off)
			}
			return Frame{}, false, nil
		default:
			return Frame{}, false, d.r.errorAt(off, ErrInvalidSeparator, fmt.Sprintf("0x%.2x", c))
		}
	}
}

func (d *Decoder) readExtension(f *Frame) error {
	off := d.r.n
	c, err := d.r.readByte("extension label")
	if err != nil {
		return err
	}

	label := ExtensionLabel(c)
	switch label {
	case LabelGraphicControl:
		e, err := readGraphicControl(d.r)
		if err != nil {
			return err
		}
		f.GraphicControl = Some(e)
	case LabelComment:
		e, err := readComment(d.r)
		if err != nil {
			return err
		}
		f.Comment = Some(e)
	case LabelPlainText:
		e, err := readPlainText(d.r)
		if err != nil {
			return err
		}
		f.PlainText = Some(e)
	case LabelApplication:
		e, err := readApplication(d.r)
		if err != nil {
			return err
		}
		f.Application = Some(e)
	default:
		return d.r.errorAt(off, ErrInvalidExtensionLabel, fmt.Sprintf("0x%.2x", c))
	}

	if slices.Contains(f.ExtensionOrder, label) {
		d.logger.Warn("extension replaces an earlier one in the same frame", "kind", label, "offset", off-1)
	} else {
		f.ExtensionOrder = append(f.ExtensionOrder, label)
	}
	d.logger.Debug("extension block", "kind", label, "offset", off-1)
	return nil
}

func (d *Decoder) readImage(f *Frame) error {
	var buf [9]byte
	if err := d.r.readFull(buf[:], "image descriptor"); err != nil {
		return err
	}
	f.Descriptor = ImageDescriptor{
		Left:   uint16(buf[0]) | uint16(buf[1])<<8,
		Top:    uint16(buf[2]) | uint16(buf[3])<<8,
		Width:  uint16(buf[4]) | uint16(buf[5])<<8,
		Height: uint16(buf[6]) | uint16(buf[7])<<8,
		Fields: DecodeImageFields(buf[8]),
	}

	if fields := f.Descriptor.Fields; fields.LocalColorTable {
		t, err := readColorTable(d.r, fields.LocalTableSize, "local color table")
		if err != nil {
			return err
		}
		f.LocalColorTable = Some(t)
	}

	litWidth, err := d.r.readByte("LZW minimum code size")
	if err != nil {
		return err
	}

	blocks, err := readSubBlocks(d.r, "image data")
	if err != nil {
		return err
	}
	f.Data = ImageData{MinCodeSize: litWidth, Blocks: blocks}
	return nil
}
