package huffman

import (
	"math/rand"
	"strings"
	"testing"
)

func TestTree_Dump(t *testing.T) {
	tree := makeTestTree()

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tNode(25)\n",
		"\t\tNode(11)\n",
		"\t\t\tNode(5)\n",
		"\t\t\t\tLeaf('D', 2)\n",
		"\t\t\t\tLeaf('B', 3)\n",
		"\t\t\tLeaf('E', 6)\n",
		"\t\tNode(14)\n",
		"\t\t\tLeaf('A', 7)\n",
		"\t\t\tLeaf('C', 7)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestTree_SingleLeafDump(t *testing.T) {
	tree := BuildTree(CountFrequencies([]rune("AAAA")))

	expectDump := "Tree{\n\tLeaf('A', 4)\n}\n"
	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestTree_Shape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		input := make([]byte, 1+rng.Intn(2000))
		alphabet := 1 + rng.Intn(64)
		for i := range input {
			input[i] = byte(rng.Intn(alphabet))
		}

		freqs := CountFrequencies(input)
		tree := BuildTree(freqs)

		numLeaves := freqs.Len()
		if tree.NumLeaves() != numLeaves {
			t.Errorf("expected %d leaves, got %d", numLeaves, tree.NumLeaves())
		}
		if tree.Len() != 2*numLeaves-1 {
			t.Errorf("expected %d nodes, got %d", 2*numLeaves-1, tree.Len())
		}

		root, _ := tree.Root()
		if tree.Frequency(root) != uint64(len(input)) {
			t.Errorf("expected root frequency %d, got %d", len(input), tree.Frequency(root))
		}

		for ref := NodeRef(0); int(ref) < tree.Len(); ref++ {
			if tree.IsLeaf(ref) {
				if tree.Right(ref) != NoNode {
					t.Errorf("leaf %d has a right child", ref)
				}
				continue
			}
			left, right := tree.Left(ref), tree.Right(ref)
			if left == NoNode || right == NoNode {
				t.Fatalf("internal node %d is missing a child", ref)
			}
			if sum := tree.Frequency(left) + tree.Frequency(right); sum != tree.Frequency(ref) {
				t.Errorf("node %d: expected frequency %d, got %d", ref, sum, tree.Frequency(ref))
			}
			if tree.Frequency(left) > tree.Frequency(right) {
				t.Errorf("node %d: left frequency %d > right frequency %d", ref, tree.Frequency(left), tree.Frequency(right))
			}
			if _, ok := tree.Symbol(ref); ok {
				t.Errorf("internal node %d holds a symbol", ref)
			}
		}
	}
}

func TestTree_CodeLengthsFollowFrequencies(t *testing.T) {
	freqs := CountFrequencies([]rune(workedExample))
	table := NewCodeTable(BuildTree(freqs))

	size := func(symbol rune) int {
		code, _ := table.Lookup(symbol)
		return code.Len()
	}

	minAC := size('A')
	if size('C') < minAC {
		minAC = size('C')
	}
	if !(size('D') >= size('B') && size('B') >= size('E') && size('E') >= minAC) {
		t.Errorf("code lengths out of order: D=%d B=%d E=%d A=%d C=%d",
			size('D'), size('B'), size('E'), size('A'), size('C'))
	}

	rng := rand.New(rand.NewSource(2))
	for iter := 0; iter < 20; iter++ {
		input := make([]rune, 500)
		for i := range input {
			input[i] = 'a' + rune(rng.Intn(5)*rng.Intn(6))
		}
		freqs := CountFrequencies(input)
		table := NewCodeTable(BuildTree(freqs))
		for _, x := range freqs.Entries() {
			for _, y := range freqs.Entries() {
				cx, _ := table.Lookup(x.Symbol)
				cy, _ := table.Lookup(y.Symbol)
				if x.Count > y.Count && cx.Len() > cy.Len() {
					t.Errorf("%q (count %d) has a longer code than %q (count %d)", x.Symbol, x.Count, y.Symbol, y.Count)
				}
			}
		}
	}
}

func TestTree_Skewed(t *testing.T) {
	// Doubling frequencies produce a tree that is a single spine, one level
	// per symbol.
	const numSymbols = 60

	ft := &FrequencyTable[int]{index: make(map[int]int)}
	for i := 0; i < numSymbols; i++ {
		ft.index[i] = len(ft.entries)
		ft.entries = append(ft.entries, SymbolCount[int]{Symbol: i, Count: uint64(1) << i})
	}

	tree := BuildTree(ft)
	table := NewCodeTable(tree)
	if table.MaxSize() != numSymbols-1 {
		t.Errorf("expected MaxSize %d, got %d", numSymbols-1, table.MaxSize())
	}
	if table.MinSize() != 1 {
		t.Errorf("expected MinSize 1, got %d", table.MinSize())
	}

	input := make([]int, 0, 2*numSymbols)
	for i := 0; i < numSymbols; i++ {
		input = append(input, i, numSymbols-1-i)
	}
	bits, err := NewEncoder(table).Encode(input)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := Decode(bits, tree)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for i := range input {
		if decoded[i] != input[i] {
			t.Fatalf("symbol %d: expected %d, got %d", i, input[i], decoded[i])
		}
	}
}

func TestCodeTable_Dump(t *testing.T) {
	table := NewCodeTable(makeTestTree())

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 2\n",
		"\tMaxSize() = 3\n",
		"\tLookup('A') = \"10\"\n",
		"\tLookup('B') = \"001\"\n",
		"\tLookup('C') = \"11\"\n",
		"\tLookup('D') = \"000\"\n",
		"\tLookup('E') = \"01\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodeTable_Empty(t *testing.T) {
	table := NewCodeTable(&Tree[byte]{root: NoNode})
	if table.Len() != 0 {
		t.Errorf("expected empty table, got %d entries", table.Len())
	}
	if _, found := table.Lookup('a'); found {
		t.Errorf("expected no code for 'a'")
	}
}

func TestFrequencyTable(t *testing.T) {
	freqs := CountFrequencies([]rune(workedExample))

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tTotal() = 25\n",
		"\tCount('A') = 7\n",
		"\tCount('B') = 3\n",
		"\tCount('C') = 7\n",
		"\tCount('D') = 2\n",
		"\tCount('E') = 6\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = freqs.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if count, found := freqs.Count('C'); !found || count != 7 {
		t.Errorf("Count('C'): expected (7, true), got (%d, %v)", count, found)
	}
	if _, found := freqs.Count('Z'); found {
		t.Errorf("Count('Z'): expected not found")
	}
}

func TestBuildTree_EmptyTablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected BuildTree to panic on an empty FrequencyTable")
		}
	}()
	BuildTree(CountFrequencies([]byte(nil)))
}
