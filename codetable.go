package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol of a Tree to its code, the path of left (0) and
// right (1) steps from the root to the Symbol's leaf.  No code is a prefix of
// another.
type CodeTable[S comparable] struct {
	codes   map[S]Bits
	order   []S
	minSize int
	maxSize int
}

// NewCodeTable derives the code for every leaf of t.
//
// If the root of t is itself a leaf, its Symbol is assigned the one-bit code
// "0" rather than the empty path, so that every encoded Symbol occupies at
// least one bit.  An empty Tree yields an empty CodeTable.
func NewCodeTable[S comparable](t *Tree[S]) *CodeTable[S] {
	ct := &CodeTable[S]{codes: make(map[S]Bits, t.NumLeaves())}

	root, ok := t.Root()
	if !ok {
		return ct
	}

	if t.IsLeaf(root) {
		symbol, _ := t.Symbol(root)
		ct.record(symbol, MakeBits([]byte{0x00}, 1))
		return ct
	}

	// Walk the tree with an explicit stack, so that deep trees from skewed
	// frequency distributions cannot exhaust the goroutine stack.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are pushed.  Leaves are recorded as soon as they
	// are reached.

	type stackItem struct {
		ref  NodeRef
		path Bits
		x    byte
	}

	stack := make([]stackItem, 0, log2int(t.NumLeaves())+1)

	processChild := func(child NodeRef, path Bits) {
		if !t.IsLeaf(child) {
			stack = append(stack, stackItem{ref: child, path: path})
			return
		}
		symbol, _ := t.Symbol(child)
		ct.record(symbol, path)
	}

	stack = append(stack, stackItem{ref: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.Left(top.ref), top.path.withBit(0))
		case 1:
			processChild(t.Right(top.ref), top.path.withBit(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}

	ct.sortByLeafOrder(t)
	return ct
}

func (ct *CodeTable[S]) record(symbol S, code Bits) {
	size := code.Len()
	if len(ct.order) == 0 {
		ct.minSize = size
		ct.maxSize = size
	} else if ct.minSize > size {
		ct.minSize = size
	} else if ct.maxSize < size {
		ct.maxSize = size
	}
	ct.codes[symbol] = code
	ct.order = append(ct.order, symbol)
}

// sortByLeafOrder reorders ct.order to match the order of t's leaves, which
// BuildTree creates in first-seen order.
func (ct *CodeTable[S]) sortByLeafOrder(t *Tree[S]) {
	order := make([]S, 0, len(ct.order))
	for ref := NodeRef(0); int(ref) < t.Len(); ref++ {
		if symbol, ok := t.Symbol(ref); ok {
			order = append(order, symbol)
		}
	}
	ct.order = order
}

// Len returns the number of symbols in the table.
func (ct *CodeTable[S]) Len() int {
	return len(ct.order)
}

// Lookup returns the code for symbol.
func (ct *CodeTable[S]) Lookup(symbol S) (Bits, bool) {
	code, found := ct.codes[symbol]
	return code, found
}

// Symbols returns the table's symbols in leaf order.  For a Tree made by
// BuildTree this is the order in which the symbols were first seen.
func (ct *CodeTable[S]) Symbols() []S {
	out := make([]S, len(ct.order))
	copy(out, ct.order)
	return out
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable[S]) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable[S]) MaxSize() int {
	return ct.maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.order {
		fmt.Fprintf(&buf, "\tLookup(%s) = %q\n", formatSymbol(symbol), ct.codes[symbol].String())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
