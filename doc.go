// Package huffman implements Huffman prefix codes over arbitrary alphabets.
//
// Encode counts how often each symbol occurs, builds a minimum-redundancy code
// tree from those counts, and concatenates each symbol's code into a
// bitstream.  Decode walks the same tree bit by bit to recover the input.
// Symbols may be of any comparable type; EncodeString and EncodeBytes cover
// the common cases of runes and bytes.
//
// Trees are built deterministically: equal frequencies are resolved by the
// order in which symbols first appear, so encoding the same input always
// yields the same tree and the same bits.  WriteTree and ReadTree convert a
// tree to and from a compact bit-level form.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Prefix_code>
//
package huffman
