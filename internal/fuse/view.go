package fuse

import (
	"fmt"
	"strings"

	"github.com/ostafen/gifkit/internal/gif"
)

// Entry is a file exposed by the mounted view.
type Entry struct {
	Name string
	Data []byte
}

// Entries lays out the files exposed for g: every frame as a standalone GIF,
// the reversed animation, and the comments when there are any.
func Entries(g gif.GIF) ([]Entry, error) {
	entries := make([]Entry, 0, len(g.Frames)+2)

	for i := range g.Frames {
		single, err := g.Frame(i)
		if err != nil {
			return nil, err
		}

		data, err := single.MarshalBinary()
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: FrameName(i), Data: data})
	}

	data, err := g.Reverse().MarshalBinary()
	if err != nil {
		return nil, err
	}
	entries = append(entries, Entry{Name: "reversed.gif", Data: data})

	if comments := g.Summary().Comments; len(comments) > 0 {
		entries = append(entries, Entry{
			Name: "comments.txt",
			Data: []byte(strings.Join(comments, "\n") + "\n"),
		})
	}
	return entries, nil
}

func FrameName(i int) string {
	return fmt.Sprintf("frame_%03d.gif", i)
}
