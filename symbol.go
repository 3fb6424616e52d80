package huffman

import (
	"fmt"
	"unicode/utf8"

	"github.com/icza/bitio"
)

// SymbolCodec reads and writes a single Symbol as a fixed number of bits.  It
// is used by WriteTree and ReadTree.
type SymbolCodec[S comparable] interface {
	WriteSymbol(w *bitio.Writer, symbol S) error
	ReadSymbol(r *bitio.Reader) (S, error)
}

// ByteCodec is a SymbolCodec that stores each byte Symbol as 8 bits.
type ByteCodec struct{}

// WriteSymbol writes symbol as 8 bits.
func (ByteCodec) WriteSymbol(w *bitio.Writer, symbol byte) error {
	return w.WriteByte(symbol)
}

// ReadSymbol reads an 8-bit Symbol.
func (ByteCodec) ReadSymbol(r *bitio.Reader) (byte, error) {
	return r.ReadByte()
}

var _ SymbolCodec[byte] = ByteCodec{}

// RuneCodec is a SymbolCodec that stores each rune Symbol as 32 bits.  Only
// valid Unicode code points are accepted when reading.
type RuneCodec struct{}

// WriteSymbol writes symbol as 32 bits.
func (RuneCodec) WriteSymbol(w *bitio.Writer, symbol rune) error {
	return w.WriteBits(uint64(uint32(symbol)), 32)
}

// ReadSymbol reads a 32-bit Symbol.
func (RuneCodec) ReadSymbol(r *bitio.Reader) (rune, error) {
	u, err := r.ReadBits(32)
	if err != nil {
		return utf8.RuneError, err
	}
	symbol := rune(int32(uint32(u)))
	if !utf8.ValidRune(symbol) {
		return utf8.RuneError, fmt.Errorf("%w: invalid rune %#x", ErrMalformedTree, uint32(u))
	}
	return symbol, nil
}

var _ SymbolCodec[rune] = RuneCodec{}

func formatSymbol[S comparable](symbol S) string {
	switch x := any(symbol).(type) {
	case rune:
		return fmt.Sprintf("%q", x)
	case byte:
		return fmt.Sprintf("%q", x)
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
