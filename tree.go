package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// NodeRef identifies a node within a Tree.
type NodeRef int32

// NoNode is the NodeRef of a missing child or of the root of an empty Tree.
const NoNode = NodeRef(-1)

type treeNode[S comparable] struct {
	symbol S
	freq   uint64
	left   NodeRef
	right  NodeRef
}

func (n *treeNode[S]) isLeaf() bool {
	return n.left == NoNode
}

// Tree is a Huffman code tree.  Leaves hold symbols; internal nodes hold
// exactly two children and a frequency equal to the sum of theirs.
//
// Nodes live in a single slice and refer to their children by index.  A Tree
// is never modified after it is built, so it may be shared by any number of
// goroutines.  The zero value is an empty Tree with no root.
type Tree[S comparable] struct {
	nodes  []treeNode[S]
	root   NodeRef
	leaves int
}

// Empty returns true iff the Tree has no root.
func (t *Tree[S]) Empty() bool {
	return t == nil || len(t.nodes) == 0
}

// Len returns the total number of nodes in the Tree.
func (t *Tree[S]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. distinct symbols, in the Tree.
func (t *Tree[S]) NumLeaves() int {
	if t == nil {
		return 0
	}
	return t.leaves
}

// Root returns the root of the Tree.  The second return value is false if the
// Tree is empty.
func (t *Tree[S]) Root() (NodeRef, bool) {
	if t.Empty() {
		return NoNode, false
	}
	return t.root, true
}

// IsLeaf returns true iff ref is a leaf.
func (t *Tree[S]) IsLeaf(ref NodeRef) bool {
	return t.node(ref).isLeaf()
}

// Left returns the left child of ref, or NoNode if ref is a leaf.
func (t *Tree[S]) Left(ref NodeRef) NodeRef {
	return t.node(ref).left
}

// Right returns the right child of ref, or NoNode if ref is a leaf.
func (t *Tree[S]) Right(ref NodeRef) NodeRef {
	return t.node(ref).right
}

// Symbol returns the symbol held by ref.  The second return value is false if
// ref is an internal node.
func (t *Tree[S]) Symbol(ref NodeRef) (S, bool) {
	n := t.node(ref)
	if !n.isLeaf() {
		var zero S
		return zero, false
	}
	return n.symbol, true
}

// Frequency returns the frequency of ref.
func (t *Tree[S]) Frequency(ref NodeRef) uint64 {
	return t.node(ref).freq
}

func (t *Tree[S]) node(ref NodeRef) *treeNode[S] {
	assert.Assertf(ref >= 0 && int(ref) < t.Len(), "NodeRef %d out of range [0, %d)", ref, t.Len())
	return &t.nodes[ref]
}

func (t *Tree[S]) addLeaf(symbol S, freq uint64) NodeRef {
	ref := NodeRef(len(t.nodes))
	t.nodes = append(t.nodes, treeNode[S]{symbol: symbol, freq: freq, left: NoNode, right: NoNode})
	t.leaves++
	return ref
}

func (t *Tree[S]) addInternal(left, right NodeRef) NodeRef {
	ref := NodeRef(len(t.nodes))
	t.nodes = append(t.nodes, treeNode[S]{
		freq:  saturatingAdd(t.nodes[left].freq, t.nodes[right].freq),
		left:  left,
		right: right,
	})
	return ref
}

// BuildTree builds a Huffman tree from the given frequencies.
//
// The two lowest-frequency nodes are repeatedly merged into a new internal
// node, the lower one becoming the left child, until one node remains.  Ties
// between equal frequencies go to whichever node entered the queue first:
// leaves in the order their symbols were first seen, and each merged node
// after every node already queued.  The same input therefore always produces
// the same tree.
//
// freqs must not be empty.
func BuildTree[S comparable](freqs *FrequencyTable[S]) *Tree[S] {
	assert.Assertf(freqs != nil && freqs.Len() != 0, "BuildTree called with an empty FrequencyTable")

	numLeaves := freqs.Len()
	t := &Tree[S]{nodes: make([]treeNode[S], 0, 2*numLeaves-1)}

	// Step 1: build a minheap of leaves.

	q := nodeQueue{list: make([]queueItem, 0, numLeaves)}
	for _, entry := range freqs.entries {
		ref := t.addLeaf(entry.Symbol, entry.Count)
		q.list = append(q.list, queueItem{ref: ref, freq: entry.Count, seq: q.nextSeq})
		q.nextSeq++
	}
	q.Init()

	// Step 2: pop the two lowest nodes, merge them, push the merged node.
	//
	// With a single leaf this loop never runs and that leaf is the root.

	for q.Len() > 1 {
		a := q.PopItem()
		b := q.PopItem()
		ref := t.addInternal(a.ref, b.ref)
		q.PushItem(ref, t.nodes[ref].freq)
	}

	t.root = q.PopItem().ref
	return t
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer, one node per line in pre-order, indented by depth.
func (t *Tree[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if root, ok := t.Root(); ok {
		type stackItem struct {
			ref   NodeRef
			depth int
		}
		stack := []stackItem{{root, 1}}
		for len(stack) != 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			indent := strings.Repeat("\t", top.depth)
			n := t.node(top.ref)
			if n.isLeaf() {
				fmt.Fprintf(&buf, "%sLeaf(%s, %d)\n", indent, formatSymbol(n.symbol), n.freq)
				continue
			}
			fmt.Fprintf(&buf, "%sNode(%d)\n", indent, n.freq)
			stack = append(stack, stackItem{n.right, top.depth + 1}, stackItem{n.left, top.depth + 1})
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type queueItem + type nodeQueue {{{

type queueItem struct {
	ref  NodeRef
	freq uint64
	seq  uint32
}

// nodeQueue orders nodes by ascending frequency, then by ascending seq.
type nodeQueue struct {
	list    []queueItem
	nextSeq uint32
}

func (q *nodeQueue) Init() {
	heap.Init(q)
}

func (q *nodeQueue) PushItem(ref NodeRef, freq uint64) {
	heap.Push(q, queueItem{ref: ref, freq: freq, seq: q.nextSeq})
	q.nextSeq++
}

func (q *nodeQueue) PopItem() queueItem {
	return heap.Pop(q).(queueItem)
}

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queueItem))
}

func (q *nodeQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// }}}
