package gif

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadSubBlocks(t *testing.T) {
	data := []byte{0x02, 'a', 'b', 0x01, 'c', 0x00, 0xEE}
	r := newReader(bytes.NewReader(data))

	blocks, err := readSubBlocks(r, "data")
	require.NoError(t, err)
	require.Equal(t, []SubBlock{SubBlock("ab"), SubBlock("c")}, blocks)
	require.Equal(t, int64(6), r.n)
}

func TestReadSubBlocksEmptyChain(t *testing.T) {
	blocks, err := readSubBlocks(newReader(bytes.NewReader([]byte{0x00})), "data")
	require.NoError(t, err)
	require.Nil(t, blocks)
}

func TestReadSubBlocksTruncated(t *testing.T) {
	for _, data := range [][]byte{
		{},
		{0x03, 'a', 'b'},
		{0x01, 'a'},
	} {
		_, err := readSubBlocks(newReader(bytes.NewReader(data)), "data")
		require.ErrorIs(t, err, ErrTruncated)
	}
}

func TestAppendSubBlocks(t *testing.T) {
	b := appendSubBlocks([]byte{0xFF}, []SubBlock{SubBlock("ab"), SubBlock("c")})
	require.Equal(t, []byte{0xFF, 0x02, 'a', 'b', 0x01, 'c', 0x00}, b)

	require.Equal(t, []byte{0x00}, appendSubBlocks(nil, nil))
}

func TestChunkJoin(t *testing.T) {
	data := bytes.Repeat([]byte{0x5A}, 2*MaxSubBlockSize+10)

	blocks := Chunk(data)
	require.Len(t, blocks, 3)
	require.Len(t, blocks[0], MaxSubBlockSize)
	require.Len(t, blocks[1], MaxSubBlockSize)
	require.Len(t, blocks[2], 10)
	require.Equal(t, data, Join(blocks))

	require.Nil(t, Chunk(nil))
	require.Empty(t, Join(nil))
}

func TestChunkedChainRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 60)

	encoded := appendSubBlocks(nil, Chunk(data))
	blocks, err := readSubBlocks(newReader(bytes.NewReader(encoded)), "data")
	require.NoError(t, err)
	require.Equal(t, data, Join(blocks))
}
