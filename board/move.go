package board

// Move is an intended relocation of whatever stands on From to To. It has no
// promotion field and no flags.
type Move struct {
	From Square
	To   Square
}

// ParseMove reads a four character UCI move such as "e2e4". Promotion
// suffixes are rejected because a Move cannot carry one.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, parseErr(s, -1, "move must be exactly four characters")
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, parseErr(s, err.(*ParseError).Offset, "bad origin square")
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, parseErr(s, 2+err.(*ParseError).Offset, "bad destination square")
	}
	return Move{From: from, To: to}, nil
}

// String produces the UCI form, e.g. "e2e4".
func (m Move) String() string { return m.From.String() + m.To.String() }
