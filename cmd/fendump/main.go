// Command fendump decodes a FEN placement, optionally plays moves on it, and
// prints the result in one of several debugging formats.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"chess-board/board"
	"chess-board/planes"
	"chess-board/render"
)

var formats = []string{"ascii", "fen", "svg", "hex", "planes", "pieces"}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fendump: ")

	fen := flag.String("fen", getenv("FENDUMP_FEN", board.StartFEN), "FEN placement field; a full FEN is cut at the first space")
	moves := flag.String("moves", "", "moves to play in UCI form, separated by commas or spaces (e2e4,e7e5)")
	format := flag.String("format", getenv("FENDUMP_FORMAT", "ascii"), "output format: "+strings.Join(formats, ", "))
	out := flag.String("out", "", "write output to this file instead of stdout")
	mark := flag.Bool("mark", true, "highlight the last move in svg output")
	flipped := flag.Bool("flip", false, "draw svg output from Black's side")
	flag.Parse()

	if !slices.Contains(formats, *format) {
		log.Printf("unknown format %q (want one of %s)", *format, strings.Join(formats, ", "))
		os.Exit(2)
	}

	placement, _, _ := strings.Cut(strings.TrimSpace(*fen), " ")
	b, err := board.FromFEN(placement)
	if err != nil {
		log.Printf("decode: %v", err)
		os.Exit(2)
	}

	played, err := play(b, *moves)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	var opts []render.Option
	if *mark && len(played) > 0 {
		last := played[len(played)-1]
		opts = append(opts, render.MarkSquares("#cdd26a", last.From, last.To))
	}
	if *flipped {
		opts = append(opts, render.Flipped())
	}

	if *out == "" {
		err = write(os.Stdout, b, *format, opts)
	} else {
		err = writeFile(*out, b, *format, opts)
	}
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

// writeFile dumps b into a new file at path. A failed Close is reported like
// a failed write.
func writeFile(path string, b *board.Board, format string, opts []render.Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	err = write(f, b, format, opts)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", path, cerr)
	}
	return err
}

// write dumps b to w through a buffer and flushes it.
func write(w io.Writer, b *board.Board, format string, opts []render.Option) error {
	bw := bufio.NewWriter(w)
	if err := dump(bw, b, format, opts); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// play applies each move in list to b, stopping at the first failure.
func play(b *board.Board, list string) ([]board.Move, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ' ' })
	played := make([]board.Move, 0, len(fields))
	for i, s := range fields {
		m, err := board.ParseMove(s)
		if err != nil {
			return played, fmt.Errorf("move %d: %w", i+1, err)
		}
		if err := b.MakeMove(m); err != nil {
			return played, fmt.Errorf("move %d: %w", i+1, err)
		}
		played = append(played, m)
	}
	return played, nil
}

func dump(w io.Writer, b *board.Board, format string, opts []render.Option) error {
	switch format {
	case "ascii":
		_, err := io.WriteString(w, b.ASCII())
		return err
	case "fen":
		_, err := fmt.Fprintln(w, b.FEN())
		return err
	case "svg":
		return render.SVG(w, b, opts...)
	case "hex":
		bbs := b.Bitboards()
		for slot, bb := range bbs {
			if _, err := fmt.Fprintf(w, "%2d %-13s 0x%016x\n", slot, slotName(slot), bb); err != nil {
				return err
			}
		}
		return nil
	case "planes":
		return dumpPlanes(w, b)
	case "pieces":
		return dumpPieces(w, b)
	}
	return fmt.Errorf("unknown format %q", format)
}

func slotName(slot int) string {
	switch slot {
	case int(board.White), int(board.Black):
		return board.Color(slot).String()
	}
	return board.Piece(slot).String()
}

func dumpPlanes(w io.Writer, b *board.Board) error {
	d := planes.Encode(b)
	data := d.Data().([]float32)
	for p := 0; p < planes.NumPlanes; p++ {
		piece := board.Piece(p) + board.WhitePawn
		if _, err := fmt.Fprintf(w, "plane %d (%c)\n", p, piece.Char()); err != nil {
			return err
		}
		for row := 0; row < 8; row++ {
			var sb strings.Builder
			for col := 0; col < 8; col++ {
				fmt.Fprintf(&sb, " %.0f", data[p*64+row*8+col])
			}
			if _, err := fmt.Fprintln(w, sb.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpPieces(w io.Writer, b *board.Board) error {
	for p := board.WhitePawn; p <= board.BlackKing; p++ {
		names := make([]string, 0, 8)
		for _, sq := range b.Pieces(p) {
			names = append(names, sq.String())
		}
		if len(names) == 0 {
			continue
		}
		slices.Sort(names)
		if _, err := fmt.Fprintf(w, "%c %s\n", p.Char(), strings.Join(names, " ")); err != nil {
			return err
		}
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
