package board

import (
	"errors"
	"fmt"
)

var (
	ErrParse   = errors.New("board: parse error")
	ErrMove    = errors.New("board: move error")
	ErrCorrupt = errors.New("board: corrupt encoding")
)

// ParseError reports input rejected by ParseSquare, ParseMove or SetFEN.
// Offset is the byte index of the offending character, or -1 when the input
// as a whole was rejected (for example a wrong length).
type ParseError struct {
	Input  string
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("board: parse %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("board: parse %q at offset %d (%q): %s", e.Input, e.Offset, e.Input[e.Offset], e.Reason)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// MoveError reports a move with a square off the board or an empty origin.
type MoveError struct {
	Move Move
}

func (e *MoveError) Error() string {
	if !e.Move.From.Valid() || !e.Move.To.Valid() {
		return fmt.Sprintf("board: move %s: square off the board", e.Move)
	}
	return fmt.Sprintf("board: move %s: no piece on %s", e.Move, e.Move.From)
}

// ErrKings rejects a position dragontoothmg cannot generate moves for.
var ErrKings = errors.New("board: each side needs exactly one king")

func (e *MoveError) Is(target error) bool { return target == ErrMove }

func parseErr(input string, offset int, reason string) error {
	return &ParseError{Input: input, Offset: offset, Reason: reason}
}
