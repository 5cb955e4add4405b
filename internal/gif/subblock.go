package gif

// MaxSubBlockSize is the largest payload a single sub-block can carry.
const MaxSubBlockSize = 255

// SubBlock is one chunk of a sub-block chain. Its length byte is len(SubBlock).
type SubBlock []byte

func readSubBlocks(r *reader, what string) ([]SubBlock, error) {
	var blocks []SubBlock
	for {
		n, err := r.readByte(what)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return blocks, nil
		}

		b := make(SubBlock, n)
		if err := r.readFull(b, what); err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
}

// appendSubBlocks writes each block as [len, payload...] followed by the zero
// terminator. Blocks longer than MaxSubBlockSize are not split.
func appendSubBlocks(b []byte, blocks []SubBlock) []byte {
	for _, blk := range blocks {
		b = append(b, byte(len(blk)))
		b = append(b, blk...)
	}
	return append(b, 0)
}

// Chunk splits data into a chain of sub-blocks of at most MaxSubBlockSize bytes.
func Chunk(data []byte) []SubBlock {
	var blocks []SubBlock
	for len(data) > 0 {
		n := min(len(data), MaxSubBlockSize)
		blocks = append(blocks, SubBlock(data[:n:n]))
		data = data[n:]
	}
	return blocks
}

// Join concatenates the payloads of a chain.
func Join(blocks []SubBlock) []byte {
	size := 0
	for _, blk := range blocks {
		size += len(blk)
	}

	data := make([]byte, 0, size)
	for _, blk := range blocks {
		data = append(data, blk...)
	}
	return data
}
