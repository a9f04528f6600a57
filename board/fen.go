package board

import "strings"

// FromFEN returns a board decoded from a FEN piece-placement field.
func FromFEN(placement string) (*Board, error) {
	b := &Board{}
	if err := b.SetFEN(placement); err != nil {
		return nil, err
	}
	return b, nil
}

// SetFEN replaces the whole board with the decoded placement field. Only the
// field before the first space of a full FEN is accepted; callers strip the
// rest. On error b is left unchanged.
//
// Decoding is lenient about shape: short ranks and missing ranks leave
// squares empty, a piece letter past the h-file drops the remainder of its
// rank group, and groups after the eighth are ignored. Any other character
// than a digit 1-8, a piece letter or '/' is an error.
func (b *Board) SetFEN(placement string) error {
	var draft Board
	rank, file := 7, 0
	overflow := false
	for i := 0; i < len(placement); i++ {
		ch := placement[i]
		if ch == '/' {
			if rank == 0 {
				break
			}
			rank--
			file = 0
			overflow = false
			continue
		}
		if overflow {
			continue
		}
		if ch >= '0' && ch <= '9' {
			if ch == '0' || ch == '9' {
				return parseErr(placement, i, "empty-run digit must be 1-8")
			}
			file += int(ch - '0')
			continue
		}
		p := PieceFromChar(ch)
		if p == NoPiece {
			return parseErr(placement, i, "unrecognized character")
		}
		if file > 7 {
			// a piece past the h-file drops the rest of the rank group
			overflow = true
			continue
		}
		bit := NewSquare(file, rank).Bit()
		draft.bitboards[p] |= bit
		draft.bitboards[p&1] |= bit
		file++
	}
	*b = draft
	return nil
}

// FEN encodes the placement field: ranks 8 to 1 separated by '/', runs of
// empty squares as a single digit.
func (b *Board) FEN() string {
	var sb strings.Builder
	sb.Grow(len(StartFEN))
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
