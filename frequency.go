package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// SymbolCount pairs a Symbol with its number of occurrences.
type SymbolCount[S comparable] struct {
	Symbol S
	Count  uint64
}

// FrequencyTable maps each distinct Symbol of an input sequence to its number
// of occurrences.  It remembers the order in which distinct symbols were first
// seen, which BuildTree uses to break ties between equal frequencies.
//
// A FrequencyTable is never modified after CountFrequencies returns it.
type FrequencyTable[S comparable] struct {
	entries []SymbolCount[S]
	index   map[S]int
	total   uint64
}

// CountFrequencies scans seq once and returns the occurrence count of every
// distinct Symbol in it.
func CountFrequencies[S comparable](seq []S) *FrequencyTable[S] {
	ft := &FrequencyTable[S]{index: make(map[S]int)}
	for _, symbol := range seq {
		i, found := ft.index[symbol]
		if !found {
			i = len(ft.entries)
			ft.index[symbol] = i
			ft.entries = append(ft.entries, SymbolCount[S]{Symbol: symbol})
		}
		ft.entries[i].Count++
	}
	ft.total = uint64(len(seq))
	return ft
}

// Len returns the number of distinct symbols.
func (ft *FrequencyTable[S]) Len() int {
	return len(ft.entries)
}

// Total returns the length of the sequence that was counted.
func (ft *FrequencyTable[S]) Total() uint64 {
	return ft.total
}

// Count returns the number of occurrences of symbol.
func (ft *FrequencyTable[S]) Count(symbol S) (uint64, bool) {
	i, found := ft.index[symbol]
	if !found {
		return 0, false
	}
	return ft.entries[i].Count, true
}

// Entries returns a copy of the table's entries in first-seen order.
func (ft *FrequencyTable[S]) Entries() []SymbolCount[S] {
	out := make([]SymbolCount[S], len(ft.entries))
	copy(out, ft.entries)
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft *FrequencyTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, entry := range ft.entries {
		fmt.Fprintf(&buf, "\tCount(%s) = %d\n", formatSymbol(entry.Symbol), entry.Count)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
