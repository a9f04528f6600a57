package board_test

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"

	"chess-board/board"
)

func mustFEN(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return b
}

func mv(from, to string) board.Move {
	return board.Move{From: board.MustSquare(from), To: board.MustSquare(to)}
}

func TestMakeMoveQuiet(t *testing.T) {
	b := board.New()
	before := b.Bitboards()
	if err := b.MakeMove(mv("e2", "e4")); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	checkInvariants(t, b)
	if b.PieceAt(board.E4) != board.WhitePawn {
		t.Fatalf("e4 holds %v", b.PieceAt(board.E4))
	}
	if b.PieceAt(board.E2) != board.NoPiece {
		t.Fatalf("e2 holds %v", b.PieceAt(board.E2))
	}
	for sq := board.A1; sq <= board.H8; sq++ {
		if sq == board.E2 || sq == board.E4 {
			continue
		}
		if got, want := b.PieceAt(sq), pieceIn(before, sq); got != want {
			t.Fatalf("%s changed from %v to %v", sq, want, got)
		}
	}
	if b.Count(board.White) != 16 || b.Count(board.Black) != 16 {
		t.Fatalf("populations changed: %d/%d", b.Count(board.White), b.Count(board.Black))
	}
	want := []board.Square{board.A2, board.B2, board.C2, board.D2, board.E4, board.F2, board.G2, board.H2}
	slices.Sort(want)
	if got := b.Pieces(board.WhitePawn); !slices.Equal(got, want) {
		t.Fatalf("white pawns on %v, want %v", got, want)
	}
}

func pieceIn(bbs [board.NumSlots]uint64, sq board.Square) board.Piece {
	for p := board.WhitePawn; p <= board.BlackKing; p++ {
		if bbs[p]&sq.Bit() != 0 {
			return p
		}
	}
	return board.NoPiece
}

func TestMakeMoveIntoEmptySquare(t *testing.T) {
	b := mustFEN(t, "8/8/8/8/8/8/4P3/8")
	if err := b.MakeMove(mv("e2", "e4")); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	checkInvariants(t, b)
	if b.FEN() != "8/8/8/8/4P3/8/8/8" {
		t.Fatalf("FEN() = %q", b.FEN())
	}
}

func TestMakeMoveCapture(t *testing.T) {
	b := mustFEN(t, "8/8/8/8/3p4/8/4P3/8")
	if err := b.MakeMove(mv("e2", "d4")); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	checkInvariants(t, b)
	if b.PieceAt(board.D4) != board.WhitePawn {
		t.Fatalf("d4 holds %v", b.PieceAt(board.D4))
	}
	if b.Count(board.Black) != 0 || b.Count(board.White) != 1 {
		t.Fatalf("populations %d/%d, want 1/0", b.Count(board.White), b.Count(board.Black))
	}
	if b.Bitboard(int(board.BlackPawn)) != 0 {
		t.Fatalf("captured pawn still on its mask")
	}
}

func TestMakeMoveCapturePopulations(t *testing.T) {
	cases := []struct {
		fen  string
		move board.Move
	}{
		{"r3k2r/8/8/8/8/8/8/R3K2R", mv("a1", "a8")},
		{"r3k2r/8/8/8/8/8/8/R3K2R", mv("h8", "h1")},
		{"4k3/8/3q4/8/8/3Q4/8/4K3", mv("d3", "d6")},
		{"4k3/8/8/2n5/8/3B4/8/4K3", mv("c5", "d3")},
	}
	for _, c := range cases {
		b := mustFEN(t, c.fen)
		moved := b.PieceAt(c.move.From)
		captured := b.PieceAt(c.move.To)
		us, them := b.Count(moved.Color()), b.Count(captured.Color())
		if err := b.MakeMove(c.move); err != nil {
			t.Fatalf("%s %s: %v", c.fen, c.move, err)
		}
		checkInvariants(t, b)
		if b.PieceAt(c.move.To) != moved || b.PieceAt(c.move.From) != board.NoPiece {
			t.Fatalf("%s %s: piece not relocated", c.fen, c.move)
		}
		if b.Count(moved.Color()) != us {
			t.Fatalf("%s %s: mover population changed", c.fen, c.move)
		}
		if b.Count(captured.Color()) != them-1 {
			t.Fatalf("%s %s: captured side population %d, want %d", c.fen, c.move, b.Count(captured.Color()), them-1)
		}
	}
}

func TestMakeMoveEmptyOrigin(t *testing.T) {
	b := board.New()
	before := b.Bitboards()
	m := mv("a3", "a4")
	err := b.MakeMove(m)
	if !errors.Is(err, board.ErrMove) {
		t.Fatalf("expected ErrMove, got %v", err)
	}
	var me *board.MoveError
	if !errors.As(err, &me) || me.Move != m {
		t.Fatalf("expected *MoveError for %s, got %#v", m, err)
	}
	if b.Bitboards() != before {
		t.Fatalf("board changed after failed move")
	}
}

func TestMakeMoveOffBoardSquare(t *testing.T) {
	for _, m := range []board.Move{
		{From: board.E2, To: board.Square(68)},
		{From: board.Square(76), To: board.E4},
		{From: board.E2, To: board.NoSquare},
	} {
		b := board.New()
		before := b.Bitboards()
		err := b.MakeMove(m)
		if !errors.Is(err, board.ErrMove) {
			t.Fatalf("MakeMove(%d->%d): expected ErrMove, got %v", m.From, m.To, err)
		}
		if b.Bitboards() != before {
			t.Fatalf("MakeMove(%d->%d) changed the board: %s", m.From, m.To, b.FEN())
		}
		if _, err := b.MakeMoveState(m); !errors.Is(err, board.ErrMove) {
			t.Fatalf("MakeMoveState(%d->%d): expected ErrMove, got %v", m.From, m.To, err)
		}
	}
	if p := board.New().PieceAt(board.Square(68)); p != board.NoPiece {
		t.Fatalf("PieceAt(68) = %v, want NoPiece", p)
	}
}

func TestMakeMovePreservesPieceKind(t *testing.T) {
	// No promotion at this layer: the pawn stays a pawn on the last rank.
	b := mustFEN(t, "8/4P3/8/8/8/8/8/8")
	if err := b.MakeMove(mv("e7", "e8")); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	if b.PieceAt(board.E8) != board.WhitePawn {
		t.Fatalf("e8 holds %v", b.PieceAt(board.E8))
	}
}

func TestMakeUnmake(t *testing.T) {
	b := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R")
	start := b.Bitboards()
	startHash := b.Hash()
	for _, m := range []board.Move{mv("e5", "f7"), mv("f3", "h3"), mv("a1", "b1"), mv("e2", "a6")} {
		st, err := b.MakeMoveState(m)
		if err != nil {
			t.Fatalf("MakeMoveState(%s): %v", m, err)
		}
		checkInvariants(t, b)
		if b.Hash() == startHash {
			t.Fatalf("hash unchanged after %s", m)
		}
		b.UnmakeMove(st)
		checkInvariants(t, b)
		if b.Bitboards() != start {
			t.Fatalf("unmake of %s did not restore the board", m)
		}
		if b.Hash() != startHash {
			t.Fatalf("hash mismatch after unmake of %s", m)
		}
	}
	if _, err := b.MakeMoveState(mv("d4", "d5")); !errors.Is(err, board.ErrMove) {
		t.Fatalf("expected ErrMove, got %v", err)
	}
}

func TestApplyUndo(t *testing.T) {
	b := board.New()
	var undos []func()
	for _, m := range []board.Move{mv("e2", "e4"), mv("d7", "d5"), mv("e4", "d5"), mv("d8", "d5")} {
		undo, err := b.Apply(m)
		if err != nil {
			t.Fatalf("Apply(%s): %v", m, err)
		}
		checkInvariants(t, b)
		undos = append(undos, undo)
	}
	if b.FEN() != "rnb1kbnr/ppp1pppp/8/3q4/8/8/PPPP1PPP/RNBQKBNR" {
		t.Fatalf("FEN() = %q", b.FEN())
	}
	for i := len(undos) - 1; i >= 0; i-- {
		undos[i]()
	}
	if b.Bitboards() != board.New().Bitboards() {
		t.Fatalf("undo chain did not restore the start position: %s", b.FEN())
	}
	if undo, err := b.Apply(mv("e4", "e5")); err == nil || undo != nil {
		t.Fatalf("Apply from empty square should fail")
	}
}

func TestHashDependsOnPlacementOnly(t *testing.T) {
	a := board.New()
	b := board.New()
	if a.Hash() != b.Hash() {
		t.Fatalf("equal boards hash differently")
	}
	// Transposition: knights out and back.
	for _, m := range []board.Move{mv("g1", "f3"), mv("g8", "f6"), mv("f3", "g1"), mv("f6", "g8")} {
		if err := b.MakeMove(m); err != nil {
			t.Fatalf("MakeMove(%s): %v", m, err)
		}
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("transposed boards hash differently")
	}
	if board.Blank().Hash() != 0 {
		t.Fatalf("blank board hash should be zero")
	}
}

func TestBinaryMarshaling(t *testing.T) {
	src := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R")
	data, err := src.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != board.BinarySize || board.BinarySize != 112 {
		t.Fatalf("encoded %d bytes", len(data))
	}
	var dst board.Board
	if err := dst.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if dst.Bitboards() != src.Bitboards() {
		t.Fatalf("binary round trip changed the board")
	}
}

func TestUnmarshalBinaryRejectsCorruption(t *testing.T) {
	good, _ := board.New().MarshalBinary()

	short := good[:board.BinarySize-1]
	overlap := slices.Clone(good)
	overlap[15] |= 0x01 // a1 now in both aggregates
	orphan := slices.Clone(good)
	orphan[8*4+3] |= 0x01 // white knight on a5 missing from the aggregate

	for name, data := range map[string][]byte{"short": short, "overlap": overlap, "orphan": orphan} {
		b := board.New()
		before := b.Bitboards()
		if err := b.UnmarshalBinary(data); !errors.Is(err, board.ErrCorrupt) {
			t.Errorf("%s: expected ErrCorrupt, got %v", name, err)
		}
		if b.Bitboards() != before {
			t.Errorf("%s: board changed on error", name)
		}
	}
}

func TestValidateDetectsBrokenMasks(t *testing.T) {
	var b board.Board
	data, _ := b.MarshalBinary()
	if err := b.UnmarshalBinary(data); err != nil {
		t.Fatalf("empty board should validate: %v", err)
	}
	// aggregate bit with no piece behind it
	data[7] = 0x10
	if err := b.UnmarshalBinary(data); !errors.Is(err, board.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt for orphan aggregate bit, got %v", err)
	}
}
