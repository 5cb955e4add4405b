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

// Masks shared by the screen and image descriptor fields.
const (
	fColorTable         = 1 << 7
	fInterlace          = 1 << 6
	fColorTableBitsMask = 7
)

// Disposal methods of the graphic control extension.
const (
	DisposalUnspecified = 0
	DisposalNone        = 1
	DisposalBackground  = 2
	DisposalPrevious    = 3
)

/*
ScreenFields {
	7:   GlobalColorTable
	4-6: ColorResolution
	3:   Sort
	0-2: GlobalTableSize
}
*/
type ScreenFields struct {
	GlobalColorTable bool
	ColorResolution  uint8
	Sort             bool
	GlobalTableSize  uint8
}

func DecodeScreenFields(b byte) ScreenFields {
	return ScreenFields{
		GlobalColorTable: b&fColorTable != 0,
		ColorResolution:  (b >> 4) & 7,
		Sort:             b&(1<<3) != 0,
		GlobalTableSize:  b & fColorTableBitsMask,
	}
}

func (f ScreenFields) Byte() byte {
	var b byte
	if f.GlobalColorTable {
		b |= fColorTable
	}
	b |= (f.ColorResolution & 7) << 4
	if f.Sort {
		b |= 1 << 3
	}
	return b | f.GlobalTableSize&fColorTableBitsMask
}

/*
ImageFields {
	7:   LocalColorTable
	6:   Interlace
	5:   Sort
	3-4: Reserved
	0-2: LocalTableSize
}
*/
type ImageFields struct {
	LocalColorTable bool
	Interlace       bool
	Sort            bool
	Reserved        uint8
	LocalTableSize  uint8
}

func DecodeImageFields(b byte) ImageFields {
	return ImageFields{
		LocalColorTable: b&fColorTable != 0,
		Interlace:       b&fInterlace != 0,
		Sort:            b&(1<<5) != 0,
		Reserved:        (b >> 3) & 3,
		LocalTableSize:  b & fColorTableBitsMask,
	}
}

func (f ImageFields) Byte() byte {
	var b byte
	if f.LocalColorTable {
		b |= fColorTable
	}
	if f.Interlace {
		b |= fInterlace
	}
	if f.Sort {
		b |= 1 << 5
	}
	b |= (f.Reserved & 3) << 3
	return b | f.LocalTableSize&fColorTableBitsMask
}

/*
ControlFields {
	5-7: Reserved
	2-4: DisposalMethod
	1:   UserInput
	0:   Transparent
}
*/
type ControlFields struct {
	Reserved       uint8
	DisposalMethod uint8
	UserInput      bool
	Transparent    bool
}

func DecodeControlFields(b byte) ControlFields {
	return ControlFields{
		Reserved:       b >> 5,
		DisposalMethod: (b >> 2) & 7,
		UserInput:      b&(1<<1) != 0,
		Transparent:    b&1 != 0,
	}
}

func (f ControlFields) Byte() byte {
	b := (f.Reserved&7)<<5 | (f.DisposalMethod&7)<<2
	if f.UserInput {
		b |= 1 << 1
	}
	if f.Transparent {
		b |= 1
	}
	return b
}

// TableEntries returns the number of colors a table declared with the given
// 3-bit size field holds.
func TableEntries(size uint8) int {
	return 1 << (1 + uint(size&fColorTableBitsMask))
}
