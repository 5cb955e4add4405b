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

// Package gif decodes and encodes the block structure of GIF87a/GIF89a files.
//
// Every block is kept as found: packed fields, block sizes and terminators are
// stored alongside the values they describe, and the LZW-compressed image data
// is carried as an opaque chain of sub-blocks. Encoding a decoded GIF therefore
// reproduces the input byte for byte.
package gif

// Section indicators.
const (
	sExtension       = 0x21
	sImageDescriptor = 0x2C
	sTrailer         = 0x3B
)

const (
	Signature  = "GIF"
	Version87a = "87a"
	Version89a = "89a"

	Trailer byte = sTrailer
)

// GIF is a fully decoded file. Values are treated as immutable: the
// transforms return new values and never modify their receiver.
type GIF struct {
	Header           Header
	Screen           ScreenDescriptor
	GlobalColorTable Opt[ColorTable]
	Frames           []Frame
	Trailer          byte
}

type Header struct {
	Signature [3]byte // "GIF"
	Version   [3]byte // "87a" or "89a"
}

// NewHeader returns the header for the given version string.
func NewHeader(version string) Header {
	var h Header
	copy(h.Signature[:], Signature)
	copy(h.Version[:], version)
	return h
}

// Logical Screen Descriptor
type ScreenDescriptor struct {
	Width           uint16
	Height          uint16
	Fields          ScreenFields
	BackgroundIndex byte // unused if Fields.GlobalColorTable is unset
	AspectRatio     byte
}

type ImageDescriptor struct {
	Left   uint16 // X position of image
	Top    uint16 // Y position of image
	Width  uint16 // width of image in pixels
	Height uint16 // height of image in pixels
	Fields ImageFields
}

// ImageData is the compressed pixel stream of a frame. Blocks are never
// interpreted.
type ImageData struct {
	MinCodeSize byte
	Blocks      []SubBlock
}

// Frame is an image block together with the extensions preceding it.
type Frame struct {
	GraphicControl  Opt[GraphicControl]
	Comment         Opt[Comment]
	PlainText       Opt[PlainText]
	Application     Opt[Application]
	Descriptor      ImageDescriptor
	LocalColorTable Opt[ColorTable]
	Data            ImageData

	// ExtensionOrder lists extension kinds in the order they appeared in
	// the stream. Present extensions missing from it are written after the
	// listed ones, in label order GCE, comment, plain text, application.
	ExtensionOrder []ExtensionLabel
}

// Opt holds a value that may be absent. The zero Opt is absent.
type Opt[T any] struct {
	v  T
	ok bool
}

func Some[T any](v T) Opt[T] { return Opt[T]{v: v, ok: true} }

func None[T any]() Opt[T] { return Opt[T]{} }

func (o Opt[T]) Get() (T, bool) { return o.v, o.ok }

func (o Opt[T]) IsSome() bool { return o.ok }
