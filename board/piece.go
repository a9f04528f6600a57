package board

// Color selects one of the two occupancy aggregates. The value is also the
// aggregate's slot index in the bitboard vector.
type Color uint8

const (
	White Color = 0 // FEN uppercase, side A
	Black Color = 1 // FEN lowercase, side B
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Kind is a colorless piece kind.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindChars = [...]byte{'?', 'p', 'n', 'b', 'r', 'q', 'k'}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is a piece slot: an index in [2, 13] into the bitboard vector that
// identifies a (kind, color) pair. p&1 is the color, p>>1 is the kind.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = 2
	BlackPawn   Piece = 3
	WhiteKnight Piece = 4
	BlackKnight Piece = 5
	WhiteBishop Piece = 6
	BlackBishop Piece = 7
	WhiteRook   Piece = 8
	BlackRook   Piece = 9
	WhiteQueen  Piece = 10
	BlackQueen  Piece = 11
	WhiteKing   Piece = 12
	BlackKing   Piece = 13
)

// NewPiece combines a color and a kind into a slot. NoKind yields NoPiece.
func NewPiece(c Color, k Kind) Piece {
	if k == NoKind || k > King {
		return NoPiece
	}
	return Piece(k)<<1 | Piece(c&1)
}

// Valid reports whether p names one of the twelve piece slots.
func (p Piece) Valid() bool { return p >= WhitePawn && p <= BlackKing }

// Color returns the owning side. NoPiece reports White.
func (p Piece) Color() Color { return Color(p & 1) }

// Kind returns the colorless kind, or NoKind for NoPiece.
func (p Piece) Kind() Kind {
	if !p.Valid() {
		return NoKind
	}
	return Kind(p >> 1)
}

// Char returns the FEN letter for the piece: uppercase for White, lowercase
// for Black. NoPiece renders as '.'.
func (p Piece) Char() byte {
	if !p.Valid() {
		return '.'
	}
	ch := kindChars[p>>1]
	if p.Color() == White {
		ch -= 'a' - 'A'
	}
	return ch
}

func (p Piece) String() string {
	if !p.Valid() {
		return "none"
	}
	return p.Color().String() + " " + p.Kind().String()
}

// PieceFromChar converts a FEN letter to its slot. It returns NoPiece for
// anything outside PNBRQK / pnbrqk.
func PieceFromChar(ch byte) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}
