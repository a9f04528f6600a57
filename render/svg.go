// Package render draws board diagrams.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chess-board/board"
)

type config struct {
	size        int
	light, dark string
	marks       map[board.Square]string
	flipped     bool
	coords      bool
}

// Option customizes SVG output.
type Option func(*config)

// SquareSize sets the edge length of one square in pixels.
func SquareSize(px int) Option {
	return func(c *config) {
		if px > 0 {
			c.size = px
		}
	}
}

// SquareColors sets the CSS fill of light and dark squares.
func SquareColors(light, dark string) Option {
	return func(c *config) { c.light, c.dark = light, dark }
}

// MarkSquares fills the given squares with color instead of their own.
func MarkSquares(color string, sqs ...board.Square) Option {
	return func(c *config) {
		for _, sq := range sqs {
			c.marks[sq] = color
		}
	}
}

// Flipped draws the board from Black's side, rank 1 at the top.
func Flipped() Option {
	return func(c *config) { c.flipped = true }
}

// Coordinates toggles file letters and rank digits along the edges.
func Coordinates(on bool) Option {
	return func(c *config) { c.coords = on }
}

var glyphs = [board.NumSlots]string{
	board.WhitePawn:   "♙",
	board.WhiteKnight: "♘",
	board.WhiteBishop: "♗",
	board.WhiteRook:   "♖",
	board.WhiteQueen:  "♕",
	board.WhiteKing:   "♔",
	board.BlackPawn:   "♟",
	board.BlackKnight: "♞",
	board.BlackBishop: "♝",
	board.BlackRook:   "♜",
	board.BlackQueen:  "♛",
	board.BlackKing:   "♚",
}

// SVG writes an 8x8 diagram of b to w.
func SVG(w io.Writer, b *board.Board, opts ...Option) error {
	c := &config{
		size:   45,
		light:  "#f0d9b5",
		dark:   "#b58863",
		marks:  map[board.Square]string{},
		coords: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	edge := c.size * 8
	canvas.Start(edge, edge)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := c.squareAt(row, col)
			x, y := col*c.size, row*c.size

			fill := c.dark
			if (sq.File()+sq.Rank())%2 == 1 {
				fill = c.light
			}
			if mark, ok := c.marks[sq]; ok {
				fill = mark
			}
			canvas.Rect(x, y, c.size, c.size, "fill:"+fill)

			if c.coords {
				c.drawCoords(canvas, sq, row, col, x, y)
			}
			if p := b.PieceAt(sq); p != board.NoPiece {
				canvas.Text(x+c.size/2, y+c.size*4/5, glyphs[p],
					fmt.Sprintf("font-size:%dpx;text-anchor:middle;font-family:serif", c.size*4/5))
			}
		}
	}
	canvas.End()
	return ew.err
}

// squareAt maps a screen cell to a board square, row 0 at the top.
func (c *config) squareAt(row, col int) board.Square {
	if c.flipped {
		return board.NewSquare(7-col, row)
	}
	return board.NewSquare(col, 7-row)
}

func (c *config) drawCoords(canvas *svg.SVG, sq board.Square, row, col, x, y int) {
	style := fmt.Sprintf("font-size:%dpx;font-family:sans-serif;fill:#333", c.size/5)
	if row == 7 {
		canvas.Text(x+c.size-c.size/6, y+c.size-2, string(rune('a'+sq.File())), style)
	}
	if col == 0 {
		canvas.Text(x+2, y+c.size/5+1, string(rune('1'+sq.Rank())), style)
	}
}

// errWriter keeps the first write error; svgo itself does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
