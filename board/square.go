package board

// Square is a board index in [0, 63]: rank*8 + file, so a1 = 0, h1 = 7,
// a8 = 56 and h8 = 63.
type Square uint8

const NumSquares = 64

// NoSquare is returned by NewSquare for coordinates off the board.
const NoSquare Square = 0xFF

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from a file and rank, both in [0, 7]. Anything
// else yields NoSquare.
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// ParseSquare reads algebraic notation such as "e4". The file letter is
// case-insensitive; the rank digit must be 1-8. No whitespace is trimmed.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, parseErr(s, -1, "square must be exactly two characters")
	}
	f := s[0] | 0x20 // ASCII lowercase; non-letters stay out of range
	if f < 'a' || f > 'h' {
		return 0, parseErr(s, 0, "file must be a-h")
	}
	r := s[1]
	if r < '1' || r > '8' {
		return 0, parseErr(s, 1, "rank must be 1-8")
	}
	return NewSquare(int(f-'a'), int(r-'1')), nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether sq < 64.
func (sq Square) Valid() bool { return sq < NumSquares }

// File returns the file index, 0 for the a-file.
func (sq Square) File() int { return int(sq & 7) }

// Rank returns the rank index, 0 for rank 1.
func (sq Square) Rank() int { return int(sq >> 3) }

// Bit returns the single-bit mask for sq, or 0 when sq is off the board.
func (sq Square) Bit() uint64 { return uint64(1) << sq }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}
