package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Bits represents a sequence of bits of arbitrary length.  It is used both for
// the code of a single Symbol and for an entire encoded stream.
//
// The zero value is an empty sequence ready for use.  Bits are packed most
// significant bit first: bit 0 of the sequence is the high bit of data[0].
//
// Copies of a Bits value share storage.  Clone before appending to a copy.
type Bits struct {
	data []byte
	size int
}

// MakeBits is a convenience function that constructs Bits from the first size
// bits of data.  The data is copied.
func MakeBits(data []byte, size int) Bits {
	assert.Assertf(size >= 0, "size %d < 0", size)
	assert.Assertf(size <= len(data)*8, "size %d > %d bits available", size, len(data)*8)

	numBytes := (size + 7) / 8
	out := Bits{data: make([]byte, numBytes), size: size}
	copy(out.data, data[:numBytes])
	if rem := size % 8; rem != 0 {
		out.data[numBytes-1] &= byte(0xff << (8 - rem))
	}
	return out
}

// ParseBits parses a string of '0' and '1' characters into Bits.
func ParseBits(str string) (Bits, error) {
	var out Bits
	out.Grow(len(str))
	for index, ch := range str {
		switch ch {
		case '0':
			out.Append(0)
		case '1':
			out.Append(1)
		default:
			return Bits{}, fmt.Errorf("invalid character %q at index %d in bit string", ch, index)
		}
	}
	return out, nil
}

// MustParseBits is like ParseBits, but panics on error.
func MustParseBits(str string) Bits {
	out, err := ParseBits(str)
	if err != nil {
		panic(err)
	}
	return out
}

// Len returns the number of bits in the sequence.
func (b Bits) Len() int {
	return b.size
}

// At returns the i'th bit of the sequence, either 0 or 1.
func (b Bits) At(i int) uint8 {
	assert.Assertf(i >= 0 && i < b.size, "bit index %d out of range [0, %d)", i, b.size)
	return (b.data[i>>3] >> (7 - uint(i&7))) & 1
}

// Bytes returns the packed representation of the sequence.  Unused low bits
// of the final byte are zero.  The returned slice must not be modified.
func (b Bits) Bytes() []byte {
	return b.data[:(b.size+7)/8]
}

// Grow ensures that at least n more bits can be appended without another
// allocation.
func (b *Bits) Grow(n int) {
	need := (b.size + n + 7) / 8
	if need <= cap(b.data) {
		return
	}
	data := make([]byte, len(b.data), need)
	copy(data, b.data)
	b.data = data
}

// Append appends a single bit.  Any non-zero value appends a 1.
func (b *Bits) Append(bit uint8) {
	if b.size&7 == 0 {
		b.data = append(b.data[:b.size>>3], 0)
	}
	if bit != 0 {
		b.data[b.size>>3] |= 0x80 >> uint(b.size&7)
	}
	b.size++
}

// AppendBits appends every bit of other.
func (b *Bits) AppendBits(other Bits) {
	if other.size == 0 {
		return
	}
	if b.size&7 == 0 {
		b.data = append(b.data[:b.size>>3], other.Bytes()...)
		b.size += other.size
		return
	}
	b.Grow(other.size)
	for i := 0; i < other.size; i++ {
		b.Append(other.At(i))
	}
}

// Clone returns a copy of b that shares no memory with it.
func (b Bits) Clone() Bits {
	return MakeBits(b.data, b.size)
}

// Equal returns true iff b and other hold the same sequence.
func (b Bits) Equal(other Bits) bool {
	return b.size == other.size && bytes.Equal(b.Bytes(), other.Bytes())
}

// HasPrefix returns true iff prefix is a prefix of b.
func (b Bits) HasPrefix(prefix Bits) bool {
	if prefix.size > b.size {
		return false
	}
	for i := 0; i < prefix.size; i++ {
		if b.At(i) != prefix.At(i) {
			return false
		}
	}
	return true
}

// String returns the sequence as a string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		sb.WriteByte('0' + b.At(i))
	}
	return sb.String()
}

// GoString returns a Go expression that reconstructs b.
func (b Bits) GoString() string {
	return fmt.Sprintf("huffman.MustParseBits(%q)", b.String())
}

var _ fmt.Stringer = Bits{}
var _ fmt.GoStringer = Bits{}

// withBit returns a copy of b with one more bit appended.  Unlike Append, it
// never writes into memory shared with b.
func (b Bits) withBit(bit uint8) Bits {
	out := Bits{data: make([]byte, len(b.Bytes()), (b.size+8)/8), size: b.size}
	copy(out.data, b.Bytes())
	out.Append(bit)
	return out
}
