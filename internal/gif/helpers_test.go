package gif_test

import (
	"bytes"
	"image"
	"image/color"
	stdgif "image/gif"
	"testing"

	"github.com/stretchr/testify/require"
)

var screenNoTable = []byte{
	'G', 'I', 'F', '8', '9', 'a',
	0x01, 0x00, 0x01, 0x00, // 1x1
	0x00, // no global color table
	0x00, // background
	0x00, // aspect ratio
}

// minimalGIF is a single frame with a 2-color local table and one 1-byte
// image data sub-block.
func minimalGIF() []byte {
	b := append([]byte{}, screenNoTable...)
	b = append(b,
		0x2C,
		0x00, 0x00, 0x00, 0x00, // left, top
		0x01, 0x00, 0x01, 0x00, // 1x1
		0x80, // local color table, 2 entries
		0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF,
		0x02,       // LZW minimum code size
		0x01, 0xAB, // one sub-block
		0x00,
		0x3B,
	)
	return b
}

var testPalette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xFF},
	color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	color.RGBA{0xFF, 0x00, 0x00, 0xFF},
	color.RGBA{0x00, 0x00, 0xFF, 0xFF},
}

// animatedGIF encodes n distinct frames with the standard library encoder.
func animatedGIF(t *testing.T, n int) ([]byte, *stdgif.GIF) {
	t.Helper()

	g := &stdgif.GIF{LoopCount: 0}
	for i := range n {
		img := image.NewPaletted(image.Rect(0, 0, 8, 6), testPalette)
		for j := range img.Pix {
			img.Pix[j] = uint8((i + j/3) % len(testPalette))
		}
		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, 10*(i+1))
		g.Disposal = append(g.Disposal, stdgif.DisposalNone)
	}

	var buf bytes.Buffer
	require.NoError(t, stdgif.EncodeAll(&buf, g))
	return buf.Bytes(), g
}
