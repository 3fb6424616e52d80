// Package archive stores Huffman-coded data in a self-describing format.
//
// An archive holds, in order and without padding except where noted:
//
//	magic "HUFT"               4 bytes
//	version                    1 byte
//	alphabet                   1 byte (1 = bytes, 2 = runes)
//	symbol count               64 bits
//	payload bit count          64 bits
//	xxhash64 of original data  64 bits
//	tree                       see huffman.WriteTree, zero-padded to a byte
//	payload                    zero-padded to a byte
//
// All multi-bit fields are written most significant bit first.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/icza/bitio"

	huffman "github.com/chronos-tachyon/huffmantree"
)

// Magic is the first four bytes of every archive.
const Magic = "HUFT"

// Version is the archive format version written by Compress.
const Version = 1

var (
	// ErrBadMagic indicates that the input is not an archive.
	ErrBadMagic = errors.New("not a Huffman archive")
	// ErrUnsupportedVersion indicates an archive from a newer format.
	ErrUnsupportedVersion = errors.New("unsupported archive version")
	// ErrUnknownAlphabet indicates an alphabet byte this package does not know.
	ErrUnknownAlphabet = errors.New("unknown alphabet")
	// ErrInvalidUTF8 indicates that the Runes alphabet was requested for
	// data that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")
	// ErrTruncated indicates that the archive ends before its payload does.
	ErrTruncated = errors.New("archive is truncated")
	// ErrSymbolCount indicates that the payload decoded to a different
	// number of symbols than the header promises.
	ErrSymbolCount = errors.New("symbol count mismatch")
	// ErrChecksumMismatch indicates that the decoded data does not match the
	// checksum in the header.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Alphabet selects the unit of data that is treated as one Symbol.
type Alphabet byte

const (
	// Bytes codes each byte as a Symbol.
	Bytes Alphabet = 1
	// Runes codes each UTF-8 encoded code point as a Symbol.
	Runes Alphabet = 2
)

// ParseAlphabet parses "bytes" or "runes".
func ParseAlphabet(str string) (Alphabet, error) {
	switch str {
	case "bytes":
		return Bytes, nil
	case "runes":
		return Runes, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlphabet, str)
	}
}

// String returns "bytes" or "runes".
func (a Alphabet) String() string {
	switch a {
	case Bytes:
		return "bytes"
	case Runes:
		return "runes"
	default:
		return fmt.Sprintf("Alphabet(%d)", byte(a))
	}
}

var _ fmt.Stringer = Alphabet(0)

// Header describes an archive.
type Header struct {
	Version    byte
	Alphabet   Alphabet
	NumSymbols uint64
	NumBits    uint64
	Checksum   uint64
}

func (h Header) write(w *bitio.Writer) error {
	if _, err := w.Write([]byte(Magic)); err != nil {
		return err
	}
	if err := w.WriteByte(h.Version); err != nil {
		return err
	}
	if err := w.WriteByte(byte(h.Alphabet)); err != nil {
		return err
	}
	for _, field := range [...]uint64{h.NumSymbols, h.NumBits, h.Checksum} {
		if err := w.WriteBits(field, 64); err != nil {
			return err
		}
	}
	return nil
}

// ReadHeader reads and validates the header at the start of an archive.
func ReadHeader(r io.Reader) (Header, error) {
	return readHeader(bitio.NewReader(r))
}

func readHeader(r *bitio.Reader) (Header, error) {
	var h Header

	var magic [len(Magic)]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return h, fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	if string(magic[:]) != Magic {
		return h, fmt.Errorf("%w: got %q", ErrBadMagic, magic[:])
	}

	var err error
	if h.Version, err = r.ReadByte(); err != nil {
		return h, truncated(err)
	}
	if h.Version != Version {
		return h, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}

	alphabet, err := r.ReadByte()
	if err != nil {
		return h, truncated(err)
	}
	h.Alphabet = Alphabet(alphabet)
	if h.Alphabet != Bytes && h.Alphabet != Runes {
		return h, fmt.Errorf("%w: %d", ErrUnknownAlphabet, alphabet)
	}

	for _, field := range [...]*uint64{&h.NumSymbols, &h.NumBits, &h.Checksum} {
		if *field, err = r.ReadBits(64); err != nil {
			return h, truncated(err)
		}
	}
	if h.NumBits > math.MaxInt32*8 {
		return h, fmt.Errorf("%w: payload of %d bits is too large", huffman.ErrMalformedStream, h.NumBits)
	}
	return h, nil
}

func truncated(err error) error {
	return fmt.Errorf("%w: %v", ErrTruncated, err)
}

// Compress Huffman-codes data and writes it to w as an archive.
func Compress(w io.Writer, data []byte, opts ...Option) (Header, error) {
	o := buildOptions(opts)

	h := Header{
		Version:  Version,
		Alphabet: o.alphabet,
		Checksum: xxhash.Sum64(data),
	}

	bw := bitio.NewWriter(w)
	var err error
	switch o.alphabet {
	case Bytes:
		h.NumSymbols = uint64(len(data))
		err = compress[byte](bw, &h, data, huffman.ByteCodec{})
	case Runes:
		if !utf8.Valid(data) {
			return Header{}, ErrInvalidUTF8
		}
		runes := bytes.Runes(data)
		h.NumSymbols = uint64(len(runes))
		err = compress[rune](bw, &h, runes, huffman.RuneCodec{})
	default:
		return Header{}, fmt.Errorf("%w: %d", ErrUnknownAlphabet, byte(o.alphabet))
	}
	if err != nil {
		return Header{}, err
	}
	if err := bw.Close(); err != nil {
		return Header{}, err
	}

	o.logger.Debug("compressed",
		"alphabet", h.Alphabet.String(),
		"symbols", h.NumSymbols,
		"payloadBits", h.NumBits,
		"checksum", fmt.Sprintf("%016x", h.Checksum))
	return h, nil
}

func compress[S comparable](bw *bitio.Writer, h *Header, symbols []S, codec huffman.SymbolCodec[S]) error {
	bits, tree, err := huffman.Encode(symbols)
	if err != nil {
		return err
	}
	h.NumBits = uint64(bits.Len())

	if err := h.write(bw); err != nil {
		return err
	}
	if err := huffman.WriteTree(bw, tree, codec); err != nil {
		return err
	}
	if _, err := bw.Align(); err != nil {
		return err
	}
	_, err = bw.Write(bits.Bytes())
	return err
}

// Decompress reads an archive from r and returns the original data.  It
// verifies the symbol count and checksum stored in the header.
func Decompress(r io.Reader, opts ...Option) ([]byte, error) {
	o := buildOptions(opts)

	br := bitio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch h.Alphabet {
	case Bytes:
		data, err = decompress[byte](br, h, huffman.ByteCodec{})
	case Runes:
		var runes []rune
		runes, err = decompress[rune](br, h, huffman.RuneCodec{})
		data = []byte(string(runes))
	}
	if err != nil {
		return nil, err
	}

	if sum := xxhash.Sum64(data); sum != h.Checksum {
		return nil, fmt.Errorf("%w: expected %016x, got %016x", ErrChecksumMismatch, h.Checksum, sum)
	}

	o.logger.Debug("decompressed",
		"alphabet", h.Alphabet.String(),
		"symbols", h.NumSymbols,
		"bytes", len(data))
	return data, nil
}

func decompress[S comparable](br *bitio.Reader, h Header, codec huffman.SymbolCodec[S]) ([]S, error) {
	tree, err := huffman.ReadTree(br, codec)
	if err != nil {
		return nil, err
	}
	br.Align()

	numBytes := int64((h.NumBits + 7) / 8)
	payload, err := io.ReadAll(io.LimitReader(br, numBytes))
	if err != nil {
		return nil, truncated(err)
	}
	if int64(len(payload)) != numBytes {
		return nil, fmt.Errorf("%w: expected %d payload bytes, got %d", ErrTruncated, numBytes, len(payload))
	}

	symbols, err := huffman.Decode(huffman.MakeBits(payload, int(h.NumBits)), tree)
	if err != nil {
		return nil, err
	}
	if uint64(len(symbols)) != h.NumSymbols {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrSymbolCount, h.NumSymbols, len(symbols))
	}
	return symbols, nil
}

// Inspect reads the header and tree of an archive from r and writes a
// programmer-readable description of them to w.  The payload is not read.
func Inspect(r io.Reader, w io.Writer, opts ...Option) (Header, error) {
	o := buildOptions(opts)

	br := bitio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return h, err
	}
	o.logger.Debug("inspecting", "alphabet", h.Alphabet.String(), "symbols", h.NumSymbols)

	var buf bytes.Buffer
	buf.WriteString("Header{\n")
	fmt.Fprintf(&buf, "\tVersion = %d\n", h.Version)
	fmt.Fprintf(&buf, "\tAlphabet = %s\n", h.Alphabet)
	fmt.Fprintf(&buf, "\tNumSymbols = %d\n", h.NumSymbols)
	fmt.Fprintf(&buf, "\tNumBits = %d\n", h.NumBits)
	fmt.Fprintf(&buf, "\tChecksum = %016x\n", h.Checksum)
	buf.WriteString("}\n")

	switch h.Alphabet {
	case Bytes:
		err = dumpTree[byte](&buf, br, huffman.ByteCodec{})
	case Runes:
		err = dumpTree[rune](&buf, br, huffman.RuneCodec{})
	}
	if err != nil {
		return h, err
	}

	_, err = buf.WriteTo(w)
	return h, err
}

func dumpTree[S comparable](buf *bytes.Buffer, br *bitio.Reader, codec huffman.SymbolCodec[S]) error {
	tree, err := huffman.ReadTree(br, codec)
	if err != nil {
		return err
	}
	if _, err := tree.Dump(buf); err != nil {
		return err
	}
	_, err = huffman.NewCodeTable(tree).Dump(buf)
	return err
}
