package board

import (
	"encoding/binary"
	"fmt"
)

// BinarySize is the length of the MarshalBinary encoding.
const BinarySize = NumSlots * 8

// MarshalBinary implements encoding.BinaryMarshaler: the fourteen masks in
// slot order, each big-endian.
func (b *Board) MarshalBinary() ([]byte, error) {
	data := make([]byte, BinarySize)
	for i, bb := range b.bitboards {
		binary.BigEndian.PutUint64(data[i*8:], bb)
	}
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Input that is the
// wrong length or breaks the board invariants is rejected and b is left
// unchanged.
func (b *Board) UnmarshalBinary(data []byte) error {
	if len(data) != BinarySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrCorrupt, len(data), BinarySize)
	}
	var bbs [NumSlots]uint64
	for i := range bbs {
		bbs[i] = binary.BigEndian.Uint64(data[i*8:])
	}
	draft, err := FromBitboards(bbs)
	if err != nil {
		return err
	}
	*b = *draft
	return nil
}

// MarshalText implements encoding.TextMarshaler with the FEN placement field.
func (b *Board) MarshalText() ([]byte, error) {
	return []byte(b.FEN()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; see SetFEN.
func (b *Board) UnmarshalText(text []byte) error {
	return b.SetFEN(string(text))
}
