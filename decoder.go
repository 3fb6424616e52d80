package huffman

import (
	"fmt"
)

// Decoder reconstructs a sequence of symbols by walking a Tree one bit at a
// time.  It does not need a CodeTable.
type Decoder[S comparable] struct {
	tree *Tree[S]
}

// NewDecoder returns a Decoder that walks t.
func NewDecoder[S comparable](t *Tree[S]) *Decoder[S] {
	return &Decoder[S]{tree: t}
}

// Decode decodes bits into the sequence of symbols it encodes.
//
// Starting from the root, a 0 bit moves to the left child and a 1 bit to the
// right child.  Reaching a leaf emits its symbol and returns to the root.  If
// the root is itself a leaf, each 0 bit emits its symbol.
//
// Decode fails with an error wrapping ErrMalformedStream if a bit asks for a
// child that does not exist, if the stream is non-empty but the Tree is empty,
// or if the stream ends partway through a code.  On failure no symbols are
// returned.  An empty stream always decodes to an empty sequence.
func (d *Decoder[S]) Decode(bits Bits) ([]S, error) {
	size := bits.Len()
	if size == 0 {
		return []S{}, nil
	}

	t := d.tree
	root, ok := t.Root()
	if !ok {
		return nil, fmt.Errorf("%w: %d bits but the tree is empty", ErrMalformedStream, size)
	}

	if t.IsLeaf(root) {
		symbol, _ := t.Symbol(root)
		out := make([]S, size)
		for i := 0; i < size; i++ {
			if bits.At(i) != 0 {
				return nil, fmt.Errorf("%w: bit %d is 1 but the tree has a single leaf", ErrMalformedStream, i)
			}
			out[i] = symbol
		}
		return out, nil
	}

	out := make([]S, 0, size/t.NumLeaves()+1)
	cursor := root
	for i := 0; i < size; i++ {
		var next NodeRef
		if bits.At(i) == 0 {
			next = t.Left(cursor)
		} else {
			next = t.Right(cursor)
		}
		if next == NoNode {
			return nil, fmt.Errorf("%w: bit %d steps past a leaf", ErrMalformedStream, i)
		}
		if symbol, isLeaf := t.Symbol(next); isLeaf {
			out = append(out, symbol)
			next = root
		}
		cursor = next
	}

	if cursor != root {
		return nil, fmt.Errorf("%w: stream ends in the middle of a code", ErrMalformedStream)
	}
	return out, nil
}

// Decode decodes bits using t.  See Decoder.Decode.
func Decode[S comparable](bits Bits, t *Tree[S]) ([]S, error) {
	return NewDecoder(t).Decode(bits)
}

// DecodeString decodes bits into a string of runes.
func DecodeString(bits Bits, t *Tree[rune]) (string, error) {
	runes, err := Decode(bits, t)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

// DecodeBytes decodes bits into a slice of bytes.
func DecodeBytes(bits Bits, t *Tree[byte]) ([]byte, error) {
	return Decode(bits, t)
}
