package gif_test

import (
	"bytes"
	stdgif "image/gif"
	"testing"

	"github.com/ostafen/gifkit/internal/gif"
	"github.com/stretchr/testify/require"
)

func decodeAnimated(t *testing.T, n int) (gif.GIF, *stdgif.GIF) {
	t.Helper()

	data, src := animatedGIF(t, n)
	g, err := gif.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return g, src
}

func TestReverse(t *testing.T) {
	g, _ := decodeAnimated(t, 4)
	orig, err := g.MarshalBinary()
	require.NoError(t, err)

	r := g.Reverse()
	require.Len(t, r.Frames, 4)
	for i := range g.Frames {
		require.Equal(t, g.Frames[i], r.Frames[len(r.Frames)-1-i])
	}
	require.Equal(t, g.Header, r.Header)
	require.Equal(t, g.Screen, r.Screen)
	require.Equal(t, g.GlobalColorTable, r.GlobalColorTable)

	// the receiver is left untouched
	after, err := g.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, orig, after)

	require.Equal(t, g, r.Reverse())
}

func TestReverseEmpty(t *testing.T) {
	g, err := gif.Decode(bytes.NewReader(append(append([]byte{}, screenNoTable...), 0x3B)))
	require.NoError(t, err)
	require.Equal(t, g, g.Reverse())
	require.Equal(t, g, g.Reverse().Reverse())
}

func TestReverseIsReadableByStandardLibrary(t *testing.T) {
	g, src := decodeAnimated(t, 3)

	out, err := g.Reverse().MarshalBinary()
	require.NoError(t, err)

	decoded, err := stdgif.DecodeAll(bytes.NewReader(out))
	require.NoError(t, err)
	require.Len(t, decoded.Image, len(src.Image))

	for i, img := range decoded.Image {
		want := src.Image[len(src.Image)-1-i]
		require.Equal(t, want.Pix, img.Pix)
		require.Equal(t, src.Delay[len(src.Delay)-1-i], decoded.Delay[i])
	}
	require.Equal(t, 0, decoded.LoopCount)
}

func TestResize(t *testing.T) {
	g, _ := decodeAnimated(t, 2)

	r := g.Resize(640, 480)
	require.Equal(t, uint16(640), r.Screen.Width)
	require.Equal(t, uint16(480), r.Screen.Height)

	// only the canvas size changes
	r.Screen.Width, r.Screen.Height = g.Screen.Width, g.Screen.Height
	require.Equal(t, g, r)

	orig, err := g.MarshalBinary()
	require.NoError(t, err)
	resized, err := g.Resize(640, 480).MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, len(orig), len(resized))
	require.Equal(t, orig[:6], resized[:6])
	require.Equal(t, orig[10:], resized[10:])
	require.Equal(t, []byte{0x80, 0x02, 0xE0, 0x01}, resized[6:10])

	cfg, err := stdgif.DecodeConfig(bytes.NewReader(resized))
	require.NoError(t, err)
	require.Equal(t, 640, cfg.Width)
	require.Equal(t, 480, cfg.Height)
}

func TestFrame(t *testing.T) {
	g, src := decodeAnimated(t, 3)

	single, err := g.Frame(1)
	require.NoError(t, err)
	require.Len(t, single.Frames, 1)
	require.Equal(t, g.Frames[1], single.Frames[0])
	require.Len(t, g.Frames, 3)

	out, err := single.MarshalBinary()
	require.NoError(t, err)

	decoded, err := stdgif.DecodeAll(bytes.NewReader(out))
	require.NoError(t, err)
	require.Len(t, decoded.Image, 1)
	require.Equal(t, src.Image[1].Pix, decoded.Image[0].Pix)

	_, err = g.Frame(3)
	require.ErrorIs(t, err, gif.ErrFrameIndex)
	_, err = g.Frame(-1)
	require.ErrorIs(t, err, gif.ErrFrameIndex)
}
