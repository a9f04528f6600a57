// Package board is a bitboard chess position: fourteen 64-bit occupancy masks
// with FEN placement decoding and encoding and a low-level move mutator.
//
// The board does not know whose turn it is, castling or en-passant rights, or
// move history, and MakeMove does not check legality. Those belong to the move
// generator layered on top.
package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// NumSlots is the length of the bitboard vector: two color aggregates
// followed by twelve piece slots.
const NumSlots = 14

// StartFEN is the piece-placement field of the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Board holds the bitboard vector. Slot 0 and 1 are the White and Black
// aggregates; slot p in [2, 13] holds the pieces of slot p, and its bits are
// always a subset of slot p%2. The zero value is an empty board.
type Board struct {
	bitboards [NumSlots]uint64
}

// New returns a board set up with the standard start placement.
func New() *Board {
	b, err := FromFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// Blank returns a board with every mask zero.
func Blank() *Board { return &Board{} }

// FromBitboards builds a board from a raw vector, rejecting one that breaks
// the invariants checked by Validate.
func FromBitboards(bbs [NumSlots]uint64) (*Board, error) {
	b := &Board{bitboards: bbs}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Bitboard returns the raw mask stored in slot, which may be a color
// aggregate (0, 1) or a piece slot (2-13).
func (b *Board) Bitboard(slot int) uint64 { return b.bitboards[slot] }

// Bitboards returns a copy of the whole vector.
func (b *Board) Bitboards() [NumSlots]uint64 { return b.bitboards }

// Occupancy returns the aggregate mask for one side.
func (b *Board) Occupancy(c Color) uint64 { return b.bitboards[c&1] }

// Occupied returns every occupied square.
func (b *Board) Occupied() uint64 { return b.bitboards[White] | b.bitboards[Black] }

// Count returns the number of pieces one side has on the board.
func (b *Board) Count(c Color) int { return bits.OnesCount64(b.bitboards[c&1]) }

// Pieces lists the squares holding p, lowest square first.
func (b *Board) Pieces(p Piece) []Square {
	if !p.Valid() {
		return nil
	}
	mask := b.bitboards[p]
	out := make([]Square, 0, bits.OnesCount64(mask))
	for ; mask != 0; mask &= mask - 1 {
		out = append(out, Square(bits.TrailingZeros64(mask)))
	}
	return out
}

// PieceAt returns the piece on sq, or NoPiece when it is empty or off the
// board.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	bit := sq.Bit()
	for p := WhitePawn; p <= BlackKing; p++ {
		if b.bitboards[p]&bit != 0 {
			return p
		}
	}
	return NoPiece
}

// MakeMove relocates the piece on m.From to m.To, removing whatever stands on
// m.To first. It fails, leaving the board untouched, when either square is
// off the board or m.From is empty.
//
// No legality is checked and either color may be captured. Callers must not
// pass a destination holding a piece of the mover's own color.
// En-passant captures, castling rook moves and promotion are not handled.
func (b *Board) MakeMove(m Move) error {
	_, err := b.makeMove(m)
	return err
}

func (b *Board) makeMove(m Move) (captured Piece, err error) {
	if !m.From.Valid() || !m.To.Valid() {
		return NoPiece, &MoveError{Move: m}
	}
	piece := b.PieceAt(m.From)
	if piece == NoPiece {
		return NoPiece, &MoveError{Move: m}
	}
	to := m.To.Bit()
	if captured = b.PieceAt(m.To); captured != NoPiece {
		b.bitboards[captured] ^= to
		b.bitboards[captured&1] ^= to
	}
	flip := m.From.Bit() | to
	b.bitboards[piece] ^= flip
	b.bitboards[piece&1] ^= flip
	return captured, nil
}

// Validate checks the structural invariants of the vector: every piece mask
// lies inside its color aggregate, the aggregates are disjoint, no two piece
// masks share a square, and the aggregates hold nothing but pieces.
func (b *Board) Validate() error {
	if b.bitboards[White]&b.bitboards[Black] != 0 {
		return fmt.Errorf("%w: color aggregates overlap on %#x", ErrCorrupt, b.bitboards[White]&b.bitboards[Black])
	}
	var seen [2]uint64
	for p := WhitePawn; p <= BlackKing; p++ {
		mask := b.bitboards[p]
		if stray := mask &^ b.bitboards[p&1]; stray != 0 {
			return fmt.Errorf("%w: %s outside its aggregate on %#x", ErrCorrupt, p, stray)
		}
		if dup := mask & (seen[0] | seen[1]); dup != 0 {
			return fmt.Errorf("%w: %s overlaps another piece on %#x", ErrCorrupt, p, dup)
		}
		seen[p&1] |= mask
	}
	if seen != [2]uint64{b.bitboards[White], b.bitboards[Black]} {
		return fmt.Errorf("%w: aggregate holds squares with no piece", ErrCorrupt)
	}
	return nil
}

// ASCII renders the board as eight lines, rank 8 first. Each square is a
// space followed by its FEN letter or '.'.
func (b *Board) ASCII() string {
	var sb strings.Builder
	sb.Grow(8 * 17)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(b.PieceAt(NewSquare(file, rank)).Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String returns the FEN placement field.
func (b *Board) String() string { return b.FEN() }
