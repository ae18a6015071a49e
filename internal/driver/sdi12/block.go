package sdi12

import "github.com/jRubio4/EW-Payload-Plotter/internal/driver/codec"

const pointSize = 4

// Block is the decoded measurement section trailing an SDI-12 uplink.
type Block struct {
	// Groups holds the data points of each group whose header was read, in
	// order. A truncated group keeps the points decoded before the cut.
	Groups [][]float32
	// Complete counts groups whose declared points were all present.
	Complete int
	// Incomplete is set when the bytes ran out before the declared groups
	// and points were read. It is not an error.
	Incomplete bool
	// Trailing is the number of bytes left unread when parsing stopped.
	Trailing int
}

// ParseBlock walks up to groups measurement groups. Each group starts with a
// header byte whose low nibble is the number of float32 points that follow.
func ParseBlock(data []byte, groups int) Block {
	var blk Block
	i := 0
	for g := 0; g < groups; g++ {
		if i >= len(data) {
			blk.Incomplete = true
			break
		}
		count := int(data[i] & 0x0F)
		i++
		points := make([]float32, 0, count)
		for p := 0; p < count; p++ {
			if i+pointSize > len(data) {
				blk.Incomplete = true
				break
			}
			v, _ := codec.Float32LE(data[i : i+pointSize])
			points = append(points, v)
			i += pointSize
		}
		blk.Groups = append(blk.Groups, points)
		if blk.Incomplete {
			break
		}
		blk.Complete++
	}
	blk.Trailing = len(data) - i
	return blk
}
