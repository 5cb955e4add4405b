package gif

import (
	"slices"
	"time"

	"golang.org/x/text/encoding/charmap"
)

// Application identifiers that carry a loop count in their first sub-block.
var loopApplications = []string{"NETSCAPE2.0", "ANIMEXTS1.0"}

// LoopCount returns the number of times the animation repeats as declared by
// a looping application extension (0 means forever). It reports false if no
// frame carries one.
func (g GIF) LoopCount() (int, bool) {
	for _, f := range g.Frames {
		app, ok := f.Application.Get()
		if !ok || !app.isLoop() {
			continue
		}
		// Sub-block index 1 followed by the little-endian count.
		if len(app.Data) > 0 {
			if blk := app.Data[0]; len(blk) == 3 && blk[0] == 1 {
				return int(blk[1]) | int(blk[2])<<8, true
			}
		}
	}
	return 0, false
}

func (a Application) isLoop() bool {
	id := string(a.Identifier[:]) + string(a.AuthCode[:])
	return slices.Contains(loopApplications, id)
}

// NewLoopApplication returns a NETSCAPE2.0 application extension that repeats
// the animation n times.
func NewLoopApplication(n uint16) Application {
	app := Application{
		BlockSize: ApplicationBlockSize,
		Data:      []SubBlock{{1, byte(n), byte(n >> 8)}},
	}
	copy(app.Identifier[:], "NETSCAPE")
	copy(app.AuthCode[:], "2.0")
	return app
}

// WithLoopCount returns a copy of g whose first frame carries a loop
// application extension with count n, written before its other extensions.
// Any application extension already attached to that frame is replaced.
func (g GIF) WithLoopCount(n uint16) GIF {
	if len(g.Frames) == 0 {
		return g
	}

	g.Frames = slices.Clone(g.Frames)

	f := g.Frames[0]
	f.Application = Some(NewLoopApplication(n))
	f.ExtensionOrder = append(
		[]ExtensionLabel{LabelApplication},
		slices.DeleteFunc(slices.Clone(f.ExtensionOrder), func(l ExtensionLabel) bool {
			return l == LabelApplication
		})...,
	)
	g.Frames[0] = f
	return g
}

// Text decodes the comment payload. GIF comments are 7-bit ASCII in
// practice; bytes above 0x7F are read as ISO-8859-1.
func (c Comment) Text() (string, error) {
	return charmap.ISO8859_1.NewDecoder().String(string(Join(c.Data)))
}

// Duration returns the delay of the frame, zero if it has no graphic control
// extension.
func (f Frame) Duration() time.Duration {
	gce, ok := f.GraphicControl.Get()
	if !ok {
		return 0
	}
	return time.Duration(gce.Delay) * 10 * time.Millisecond
}

type Summary struct {
	Version      string
	Width        uint16
	Height       uint16
	GlobalColors int
	Frames       int
	LoopCount    int // -1 if the file does not loop
	Duration     time.Duration
	Comments     []string
}

func (g GIF) Summary() Summary {
	s := Summary{
		Version:   string(g.Header.Version[:]),
		Width:     g.Screen.Width,
		Height:    g.Screen.Height,
		Frames:    len(g.Frames),
		LoopCount: -1,
	}

	if t, ok := g.GlobalColorTable.Get(); ok {
		s.GlobalColors = len(t)
	}
	if n, ok := g.LoopCount(); ok {
		s.LoopCount = n
	}

	for _, f := range g.Frames {
		s.Duration += f.Duration()

		if c, ok := f.Comment.Get(); ok {
			if text, err := c.Text(); err == nil {
				s.Comments = append(s.Comments, text)
			}
		}
	}
	return s
}
