package board

import (
	"fmt"
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Dragontooth returns a dragontoothmg board with the same placement, for
// handing the position to its legal move generator. The board carries no
// castling or en-passant rights and starts from move 1.
//
// The generator indexes by king square, so a placement without exactly one
// king per side is rejected with ErrKings.
func (b *Board) Dragontooth(whiteToMove bool) (dragontoothmg.Board, error) {
	wk := bits.OnesCount64(b.bitboards[WhiteKing])
	bk := bits.OnesCount64(b.bitboards[BlackKing])
	if wk != 1 || bk != 1 {
		return dragontoothmg.Board{}, fmt.Errorf("%w: white has %d, black has %d", ErrKings, wk, bk)
	}
	side := " w"
	if !whiteToMove {
		side = " b"
	}
	return dragontoothmg.ParseFen(b.FEN() + side + " - - 0 1"), nil
}

// FromDragontooth copies the piece placement out of a dragontoothmg board.
// Its side to move, rights and clocks are dropped.
func FromDragontooth(db *dragontoothmg.Board) *Board {
	b := &Board{}
	b.loadSide(White, &db.White)
	b.loadSide(Black, &db.Black)
	return b
}

func (b *Board) loadSide(c Color, bbs *dragontoothmg.Bitboards) {
	b.bitboards[NewPiece(c, Pawn)] = bbs.Pawns
	b.bitboards[NewPiece(c, Knight)] = bbs.Knights
	b.bitboards[NewPiece(c, Bishop)] = bbs.Bishops
	b.bitboards[NewPiece(c, Rook)] = bbs.Rooks
	b.bitboards[NewPiece(c, Queen)] = bbs.Queens
	b.bitboards[NewPiece(c, King)] = bbs.Kings
	b.bitboards[c] = bbs.Pawns | bbs.Knights | bbs.Bishops | bbs.Rooks | bbs.Queens | bbs.Kings
}

// MoveFromDragontooth drops the promotion of a dragontoothmg move.
func MoveFromDragontooth(m dragontoothmg.Move) Move {
	return Move{From: Square(m.From()), To: Square(m.To())}
}
