package gif

import "fmt"

type Color struct {
	R, G, B uint8
}

// ColorTable is a global or local palette. Its length is always
// TableEntries(size) for the size field of the owning descriptor.
type ColorTable []Color

func readColorTable(r *reader, size uint8, what string) (ColorTable, error) {
	n := TableEntries(size)

	var buf [3 * 256]byte
	if err := r.readFull(buf[:3*n], what); err != nil {
		return nil, err
	}

	var t ColorTable
	if err := t.UnmarshalBinary(buf[:3*n]); err != nil {
		return nil, err
	}
	return t, nil
}

func (t ColorTable) appendTo(b []byte) []byte {
	for _, c := range t {
		b = append(b, c.R, c.G, c.B)
	}
	return b
}

func (t ColorTable) MarshalBinary() ([]byte, error) {
	return t.appendTo(make([]byte, 0, 3*len(t))), nil
}

// UnmarshalBinary replaces t with the RGB triples in data. The length must be
// 3*TableEntries(size) for some size field value.
func (t *ColorTable) UnmarshalBinary(data []byte) error {
	n := len(data) / 3
	if len(data)%3 != 0 || n < 2 || n > 256 || n&(n-1) != 0 {
		return fmt.Errorf("gif: color table length is not valid: %d bytes", len(data))
	}
	tt := make(ColorTable, n)
	for i := range tt {
		tt[i] = Color{R: data[3*i], G: data[3*i+1], B: data[3*i+2]}
	}
	*t = tt
	return nil
}
