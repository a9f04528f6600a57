package board

import (
	"math/bits"
	"math/rand"
)

// Zobrist keys per piece slot and square. Slots 0 and 1 are unused.
var zobristPiece [NumSlots][NumSquares]uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := WhitePawn; p <= BlackKing; p++ {
		for sq := 0; sq < NumSquares; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
}

// Hash returns a Zobrist key of the piece placement. Side to move, castling
// and en passant are not part of the board and do not contribute.
func (b *Board) Hash() uint64 {
	var key uint64
	for p := WhitePawn; p <= BlackKing; p++ {
		for mask := b.bitboards[p]; mask != 0; mask &= mask - 1 {
			key ^= zobristPiece[p][bits.TrailingZeros64(mask)]
		}
	}
	return key
}
