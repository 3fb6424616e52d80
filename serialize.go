package huffman

import (
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

// WriteTree serializes t to w in pre-order.
//
// The first bit is 1 if the Tree has a root and 0 if it is empty.  Each node
// then follows its parent: a 1 bit introduces a leaf, followed by its symbol
// as written by codec and its frequency as 64 bits; a 0 bit introduces an
// internal node, followed by its left and then its right subtree.
//
// WriteTree does not align or flush w.
func WriteTree[S comparable](w *bitio.Writer, t *Tree[S], codec SymbolCodec[S]) error {
	root, ok := t.Root()
	if err := w.WriteBool(ok); err != nil || !ok {
		return err
	}

	stack := make([]NodeRef, 0, log2int(t.NumLeaves())+1)
	stack = append(stack, root)
	for len(stack) != 0 {
		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.node(ref)
		if err := w.WriteBool(n.isLeaf()); err != nil {
			return err
		}
		if !n.isLeaf() {
			stack = append(stack, n.right, n.left)
			continue
		}
		if err := codec.WriteSymbol(w, n.symbol); err != nil {
			return err
		}
		if err := w.WriteBits(n.freq, 64); err != nil {
			return err
		}
	}
	return nil
}

// ReadTree reads a Tree serialized by WriteTree.  It fails with an error
// wrapping ErrMalformedTree if the input ends early or a symbol appears in
// more than one leaf.
func ReadTree[S comparable](r *bitio.Reader, codec SymbolCodec[S]) (*Tree[S], error) {
	present, err := r.ReadBool()
	if err != nil {
		return nil, malformedTree(err)
	}
	if !present {
		return &Tree[S]{root: NoNode}, nil
	}

	t := &Tree[S]{root: 0}
	seen := make(map[S]struct{})

	// open holds internal nodes that are still missing their right child.
	var open []NodeRef

	for {
		isLeaf, err := r.ReadBool()
		if err != nil {
			return nil, malformedTree(err)
		}

		var ref NodeRef
		if isLeaf {
			symbol, err := codec.ReadSymbol(r)
			if err != nil {
				return nil, malformedTree(err)
			}
			freq, err := r.ReadBits(64)
			if err != nil {
				return nil, malformedTree(err)
			}
			if _, dup := seen[symbol]; dup {
				return nil, fmt.Errorf("%w: symbol %s appears twice", ErrMalformedTree, formatSymbol(symbol))
			}
			seen[symbol] = struct{}{}
			ref = t.addLeaf(symbol, freq)
		} else {
			ref = NodeRef(len(t.nodes))
			t.nodes = append(t.nodes, treeNode[S]{left: NoNode, right: NoNode})
		}

		if ref != 0 {
			parent := &t.nodes[open[len(open)-1]]
			if parent.left == NoNode {
				parent.left = ref
			} else {
				parent.right = ref
				open = open[:len(open)-1]
			}
		}

		if !isLeaf {
			open = append(open, ref)
		}
		if len(open) == 0 {
			break
		}
	}

	// Children always follow their parent, so a reverse scan sees both
	// children of a node before the node itself.
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := &t.nodes[i]
		if !n.isLeaf() {
			n.freq = saturatingAdd(t.nodes[n.left].freq, t.nodes[n.right].freq)
		}
	}
	return t, nil
}

func malformedTree(err error) error {
	if errors.Is(err, ErrMalformedTree) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMalformedTree, err)
}
