package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder maps a sequence of symbols to the concatenation of their codes.
type Encoder[S comparable] struct {
	table *CodeTable[S]
}

// NewEncoder returns an Encoder that uses the codes in table.
func NewEncoder[S comparable](table *CodeTable[S]) *Encoder[S] {
	return &Encoder[S]{table: table}
}

// Table returns the CodeTable used by this Encoder.
func (e *Encoder[S]) Table() *CodeTable[S] {
	return e.table
}

// Encode encodes seq into a bitstream.  It fails with an error wrapping
// ErrUnknownSymbol if seq contains a symbol that has no code.
func (e *Encoder[S]) Encode(seq []S) (Bits, error) {
	var out Bits
	if len(seq) == 0 {
		return out, nil
	}

	out.Grow(len(seq) * e.table.minSize)
	for index, symbol := range seq {
		code, found := e.table.codes[symbol]
		if !found {
			return Bits{}, fmt.Errorf("%w: %s at index %d", ErrUnknownSymbol, formatSymbol(symbol), index)
		}
		out.AppendBits(code)
	}
	return out, nil
}

// EncodedSize returns the number of bits that Encode would produce for a
// sequence with the given symbol frequencies.
func (e *Encoder[S]) EncodedSize(freqs *FrequencyTable[S]) (uint64, error) {
	var total uint64
	for _, entry := range freqs.entries {
		code, found := e.table.codes[entry.Symbol]
		if !found {
			return 0, fmt.Errorf("%w: %s", ErrUnknownSymbol, formatSymbol(entry.Symbol))
		}
		total += entry.Count * uint64(code.Len())
	}
	return total, nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.table.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.table.maxSize)
	for _, symbol := range e.table.order {
		fmt.Fprintf(&buf, "\tEncode(%s) = %q\n", formatSymbol(symbol), e.table.codes[symbol].String())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode builds a Huffman tree for seq and encodes seq with it.  The returned
// Tree is needed to decode the returned bitstream.
//
// A nil or empty seq yields an empty bitstream and an empty Tree.
func Encode[S comparable](seq []S) (Bits, *Tree[S], error) {
	if len(seq) == 0 {
		return Bits{}, &Tree[S]{root: NoNode}, nil
	}

	tree := BuildTree(CountFrequencies(seq))
	bits, err := NewEncoder(NewCodeTable(tree)).Encode(seq)
	if err != nil {
		return Bits{}, nil, err
	}
	return bits, tree, nil
}

// EncodeString encodes the runes of str.
func EncodeString(str string) (Bits, *Tree[rune], error) {
	return Encode([]rune(str))
}

// EncodeBytes encodes the bytes of data.
func EncodeBytes(data []byte) (Bits, *Tree[byte], error) {
	return Encode(data)
}
