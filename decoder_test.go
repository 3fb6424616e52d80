package huffman

import (
	"errors"
	"testing"
)

func makeTestTree() *Tree[rune] {
	return BuildTree(CountFrequencies([]rune(workedExample)))
}

func TestDecoder_Decode(t *testing.T) {
	d := NewDecoder(makeTestTree())

	type testRow struct {
		bits   string
		expect string
	}

	testData := [...]testRow{
		{bits: "", expect: ""},
		{bits: "000", expect: "D"},
		{bits: "001", expect: "B"},
		{bits: "01", expect: "E"},
		{bits: "10", expect: "A"},
		{bits: "11", expect: "C"},
		{bits: "1011000", expect: "ACD"},
		{bits: "0100100001", expect: "EBDE"},
	}
	for _, row := range testData {
		t.Run(row.bits, func(t *testing.T) {
			symbols, err := d.Decode(MustParseBits(row.bits))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if actual := string(symbols); actual != row.expect {
				t.Errorf("expected %q, got %q", row.expect, actual)
			}
		})
	}
}

func TestDecoder_Malformed(t *testing.T) {
	type testRow struct {
		name string
		tree *Tree[rune]
		bits string
	}

	single := BuildTree(CountFrequencies([]rune("AAAA")))

	testData := [...]testRow{
		{name: "truncated-1", tree: makeTestTree(), bits: "0"},
		{name: "truncated-2", tree: makeTestTree(), bits: "00"},
		{name: "truncated-tail", tree: makeTestTree(), bits: "10110"},
		{name: "single-leaf-one-bit", tree: single, bits: "01"},
		{name: "rootless", tree: &Tree[rune]{root: NoNode}, bits: "0"},
		{name: "nil-tree", tree: nil, bits: "1"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			symbols, err := Decode(MustParseBits(row.bits), row.tree)
			if !errors.Is(err, ErrMalformedStream) {
				t.Fatalf("expected ErrMalformedStream, got %v", err)
			}
			if symbols != nil {
				t.Errorf("expected no partial output, got %q", string(symbols))
			}
		})
	}
}

func TestDecoder_EmptyStream(t *testing.T) {
	trees := []*Tree[rune]{nil, {root: NoNode}, makeTestTree()}
	for _, tree := range trees {
		symbols, err := Decode(Bits{}, tree)
		if err != nil {
			t.Errorf("Decode failed: %v", err)
		}
		if symbols == nil || len(symbols) != 0 {
			t.Errorf("expected empty non-nil output, got %#v", symbols)
		}
	}
}

func TestDecoder_TruncatedParagraph(t *testing.T) {
	bits, tree, err := EncodeString(paragraph)
	if err != nil {
		t.Fatalf("EncodeString failed: %v", err)
	}
	truncated := MakeBits(bits.Bytes(), bits.Len()-1)
	if _, err := DecodeString(truncated, tree); !errors.Is(err, ErrMalformedStream) {
		t.Errorf("expected ErrMalformedStream, got %v", err)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("a"),
		[]byte("ab"),
		[]byte("hello, world"),
		[]byte("null\x00byte"),
		{0x00, 0xff, 0x00, 0xff, 0x80},
		[]byte(paragraph),
	}
	for _, input := range inputs {
		bits, tree, err := EncodeBytes(input)
		if err != nil {
			t.Fatalf("EncodeBytes(%q) failed: %v", input, err)
		}
		decoded, err := DecodeBytes(bits, tree)
		if err != nil {
			t.Fatalf("DecodeBytes(%q) failed: %v", input, err)
		}
		if string(decoded) != string(input) {
			t.Errorf("wrong round trip:\n\texpect: %q\n\tactual: %q", input, decoded)
		}
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add("hello")
	f.Add("")
	f.Add("a")
	f.Add("AAAA")
	f.Add(workedExample)
	f.Add("hello世界")
	f.Add("🚀rocket")
	f.Add("tab\there")
	f.Add("null\x00byte")

	f.Fuzz(func(t *testing.T, input string) {
		bits, tree, err := EncodeBytes([]byte(input))
		if err != nil {
			t.Fatalf("EncodeBytes failed: %v", err)
		}
		decoded, err := DecodeBytes(bits, tree)
		if err != nil {
			t.Fatalf("DecodeBytes failed: %v", err)
		}
		if string(decoded) != input {
			t.Errorf("expected %q, got %q", input, decoded)
		}

		table := NewCodeTable(tree)
		symbols := table.Symbols()
		for i, a := range symbols {
			for j, b := range symbols {
				if i == j {
					continue
				}
				ca, _ := table.Lookup(a)
				cb, _ := table.Lookup(b)
				if cb.HasPrefix(ca) {
					t.Errorf("code %s for %q is a prefix of code %s for %q", ca, a, cb, b)
				}
			}
		}
	})
}
