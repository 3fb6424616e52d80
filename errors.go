package huffman

import (
	"errors"
)

var (
	// ErrUnknownSymbol indicates that a Symbol being encoded has no code in
	// the CodeTable, i.e. the table was built from a different input.
	ErrUnknownSymbol = errors.New("symbol not in code table")

	// ErrMalformedStream indicates that a bitstream does not describe a
	// whole number of codes from the given tree.
	ErrMalformedStream = errors.New("malformed Huffman bitstream")

	// ErrMalformedTree indicates that a serialized tree could not be read.
	ErrMalformedTree = errors.New("malformed serialized Huffman tree")
)
