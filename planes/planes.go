// Package planes turns a board into one-hot piece planes for network input.
package planes

import (
	"fmt"

	"gorgonia.org/tensor"

	"chess-board/board"
)

// NumPlanes is one plane per piece slot: plane i holds slot i+2.
const NumPlanes = board.NumSlots - 2

// Encode returns a float32 tensor shaped (12, 8, 8). Row 0 is rank 8 and
// column 0 is the a-file, the order a FEN placement is written in.
func Encode(b *board.Board) *tensor.Dense {
	data := make([]float32, NumPlanes*64)
	for p := board.WhitePawn; p <= board.BlackKing; p++ {
		plane := int(p-board.WhitePawn) * 64
		for _, sq := range b.Pieces(p) {
			data[plane+cell(sq)] = 1
		}
	}
	return tensor.New(tensor.WithShape(NumPlanes, 8, 8), tensor.WithBacking(data))
}

// Decode rebuilds a board from planes laid out as Encode writes them. Any
// nonzero cell counts as a piece; two planes claiming one square is an error.
func Decode(t tensor.Tensor) (*board.Board, error) {
	if shape := t.Shape(); !shape.Eq(tensor.Shape{NumPlanes, 8, 8}) {
		return nil, fmt.Errorf("planes: shape %v, want (%d, 8, 8)", shape, NumPlanes)
	}
	data, ok := t.Data().([]float32)
	if !ok {
		return nil, fmt.Errorf("planes: dtype %v, want float32", t.Dtype())
	}
	var bbs [board.NumSlots]uint64
	for i, v := range data {
		if v == 0 {
			continue
		}
		p := board.Piece(i/64) + board.WhitePawn
		sq := square(i % 64)
		if bbs[board.White]&sq.Bit() != 0 || bbs[board.Black]&sq.Bit() != 0 {
			return nil, fmt.Errorf("planes: square %s set in more than one plane", sq)
		}
		bbs[p] |= sq.Bit()
		bbs[p.Color()] |= sq.Bit()
	}
	return board.FromBitboards(bbs)
}

func cell(sq board.Square) int {
	return (7-sq.Rank())*8 + sq.File()
}

func square(cell int) board.Square {
	return board.NewSquare(cell%8, 7-cell/8)
}
