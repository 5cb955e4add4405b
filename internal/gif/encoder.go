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
	"bytes"
	"encoding/binary"
	"io"
	"slices"
)

// Encode writes g to w. Every field is written as stored: block sizes, table
// size bits and terminators are never recomputed, so an inconsistent GIF is
// reproduced rather than rejected.
func Encode(w io.Writer, g GIF) error {
	b, err := g.AppendBinary(nil)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

func (g GIF) MarshalBinary() ([]byte, error) {
	return g.AppendBinary(nil)
}

func (g GIF) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, g.Header.Signature[:]...)
	b = append(b, g.Header.Version[:]...)

	b = binary.LittleEndian.AppendUint16(b, g.Screen.Width)
	b = binary.LittleEndian.AppendUint16(b, g.Screen.Height)
	b = append(b, g.Screen.Fields.Byte(), g.Screen.BackgroundIndex, g.Screen.AspectRatio)

	if t, ok := g.GlobalColorTable.Get(); ok {
		b = t.appendTo(b)
	}

	for _, f := range g.Frames {
		b = f.appendTo(b)
	}
	return append(b, g.Trailer), nil
}

func (g *GIF) UnmarshalBinary(data []byte) error {
	v, err := Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

func (f Frame) appendTo(b []byte) []byte {
	for _, label := range f.extensionLabels() {
		switch label {
		case LabelGraphicControl:
			e, _ := f.GraphicControl.Get()
			b = e.appendTo(b)
		case LabelComment:
			e, _ := f.Comment.Get()
			b = e.appendTo(b)
		case LabelPlainText:
			e, _ := f.PlainText.Get()
			b = e.appendTo(b)
		case LabelApplication:
			e, _ := f.Application.Get()
			b = e.appendTo(b)
		}
	}

	d := f.Descriptor
	b = append(b, sImageDescriptor)
	b = binary.LittleEndian.AppendUint16(b, d.Left)
	b = binary.LittleEndian.AppendUint16(b, d.Top)
	b = binary.LittleEndian.AppendUint16(b, d.Width)
	b = binary.LittleEndian.AppendUint16(b, d.Height)
	b = append(b, d.Fields.Byte())

	if t, ok := f.LocalColorTable.Get(); ok {
		b = t.appendTo(b)
	}

	b = append(b, f.Data.MinCodeSize)
	return appendSubBlocks(b, f.Data.Blocks)
}

// extensionLabels returns the labels of the present extensions in the order
// they are written.
func (f Frame) extensionLabels() []ExtensionLabel {
	labels := make([]ExtensionLabel, 0, len(canonicalOrder))
	for _, l := range f.ExtensionOrder {
		if f.has(l) && !slices.Contains(labels, l) {
			labels = append(labels, l)
		}
	}
	for _, l := range canonicalOrder {
		if f.has(l) && !slices.Contains(labels, l) {
			labels = append(labels, l)
		}
	}
	return labels
}

func (f Frame) has(l ExtensionLabel) bool {
	switch l {
	case LabelGraphicControl:
		return f.GraphicControl.IsSome()
	case LabelComment:
		return f.Comment.IsSome()
	case LabelPlainText:
		return f.PlainText.IsSome()
	case LabelApplication:
		return f.Application.IsSome()
	}
	return false
}
