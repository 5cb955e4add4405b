package gif

import (
	"fmt"
	"slices"
)

// Reverse returns a copy of g whose frames are in reverse order.
func (g GIF) Reverse() GIF {
	if len(g.Frames) == 0 {
		return g
	}
	g.Frames = slices.Clone(g.Frames)
	slices.Reverse(g.Frames)
	return g
}

// Resize returns a copy of g with the logical screen set to width x height.
// Frames, color tables and image data are left untouched: no pixel is scaled.
func (g GIF) Resize(width, height uint16) GIF {
	g.Screen.Width = width
	g.Screen.Height = height
	return g
}

// Frame returns a standalone GIF holding only the i-th frame.
func (g GIF) Frame(i int) (GIF, error) {
	if i < 0 || i >= len(g.Frames) {
		return GIF{}, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameIndex, i, len(g.Frames))
	}
	g.Frames = []Frame{g.Frames[i]}
	return g, nil
}
