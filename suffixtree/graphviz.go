package suffixtree

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Graphviz renders the tree as a dot graph for debugging. Node boxes show
// the node id and its membership vector as zero-padded binary; nodes
// covering every appended string are filled red, suffix links are dashed.
// Nothing in the library consumes this output.
func (t *Tree) Graphviz() string {
	var b strings.Builder
	b.WriteString("digraph G {edge [arrowsize=0.4,fontsize=10];")
	t.writeDot(&b, t.root)
	b.WriteString("}")
	return b.String()
}

func (t *Tree) writeDot(b *strings.Builder, n *node) {
	fmt.Fprintf(b, "%d[label=\"%d\\n%s\"", n.id, n.id, t.vectorLabel(n.bits))
	if t.coversAll(n.bits) {
		b.WriteString(",style=\"filled\",fillcolor=\"red\"")
	}
	b.WriteString("];")

	if n.suffixLink != nil {
		fmt.Fprintf(b, "%d->%d[style=\"dashed\"];", n.id, n.suffixLink.id)
	}

	for _, child := range n.edges {
		fmt.Fprintf(b, "%d->%d[label=%q];", n.id, child.id, t.edgeLabel(child))
		t.writeDot(b, child)
	}
}

func (t *Tree) vectorLabel(bits *bitset.BitSet) string {
	if t.stringsCount == 0 {
		return "0"
	}
	buf := make([]byte, t.stringsCount)
	for i := 0; i < t.stringsCount; i++ {
		if bits.Test(uint(t.stringsCount - 1 - i)) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

func (t *Tree) coversAll(bits *bitset.BitSet) bool {
	for i := 0; i < t.stringsCount; i++ {
		if !bits.Test(uint(i)) {
			return false
		}
	}
	return true
}
