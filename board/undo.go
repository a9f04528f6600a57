package board

// MoveState holds what UnmakeMove needs to reverse a MakeMoveState call.
type MoveState struct {
	Move     Move
	Moved    Piece
	Captured Piece
}

// MakeMoveState is MakeMove that also returns the state needed to undo it.
func (b *Board) MakeMoveState(m Move) (MoveState, error) {
	moved := b.PieceAt(m.From)
	captured, err := b.makeMove(m)
	if err != nil {
		return MoveState{}, err
	}
	return MoveState{Move: m, Moved: moved, Captured: captured}, nil
}

// UnmakeMove reverses the move recorded in st. The board must be exactly as
// MakeMoveState left it.
func (b *Board) UnmakeMove(st MoveState) {
	flip := st.Move.From.Bit() | st.Move.To.Bit()
	b.bitboards[st.Moved] ^= flip
	b.bitboards[st.Moved&1] ^= flip
	if st.Captured != NoPiece {
		to := st.Move.To.Bit()
		b.bitboards[st.Captured] ^= to
		b.bitboards[st.Captured&1] ^= to
	}
}

// Apply plays m and returns a closure that undoes it.
func (b *Board) Apply(m Move) (func(), error) {
	st, err := b.MakeMoveState(m)
	if err != nil {
		return nil, err
	}
	return func() { b.UnmakeMove(st) }, nil
}
