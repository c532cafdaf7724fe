package suffixtree

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set/v2"
)

// leafPos ties a string index to a leaf's depth below a candidate node,
// measured in symbols and truncated at the leaf edge's terminator marker.
type leafPos struct {
	str   uint
	depth int
}

// FindCommonSubstrings searches the completed tree for every substring that
// occurs in all string classes at least once and is at least minLength
// symbols long. The result maps each substring to one offset list per
// appended string, in append order; strings without an occurrence get an
// empty list. Offsets within a list are ascending and unique.
//
// Calling it again on the same tree yields the same result; appending more
// strings afterwards and searching again is fine too.
func (t *Tree) FindCommonSubstrings(minLength int) (map[string][][]int, error) {
	if minLength < 1 {
		return nil, InvalidArgument{Reason: fmt.Sprintf("minimum length must be at least 1, got %d", minLength)}
	}

	t.propagate()

	candidates := mapset.NewThreadUnsafeSet[*node]()
	t.collectCandidates(t.root, candidates)

	results := make(map[string][][]int)
	for _, candidate := range candidates.ToSlice() {
		text := string(t.pathLabel(candidate))
		if len(text) < minLength {
			continue
		}

		edgeLen := contentLength(t.edgeLabel(candidate))
		offsets := t.resolveOffsets(t.subtreeLeaves(candidate), edgeLen, len(text))

		// distinct candidates can strip down to the same text; their
		// occurrence sets are merged, not arbitrarily discarded
		if prior, ok := results[text]; ok {
			for i := range prior {
				prior[i] = append(prior[i], offsets[i]...)
			}
		} else {
			results[text] = offsets
		}
	}

	for _, lists := range results {
		for i, offsets := range lists {
			sort.Ints(offsets)
			lists[i] = dedupeSorted(offsets)
		}
	}

	return results, nil
}

// propagate ORs every leaf's membership vector into its ancestors. The
// vectors only ever grow, so a walk can stop as soon as an ancestor
// absorbs nothing new: everything above it already took this contribution
// during an earlier walk.
func (t *Tree) propagate() {
	for _, leaf := range t.leaves {
		var prev *bitset.BitSet
		for n := leaf; n != nil; n = n.parent {
			if prev != nil {
				if n.bits.IsSuperSet(prev) {
					break
				}
				n.bits.InPlaceUnion(prev)
			}
			prev = n.bits
		}
	}
}

// collectCandidates gathers every node whose propagated vector covers all
// classes. A node's children carry subsets of its vector, so a failing
// node cuts off its whole subtree.
func (t *Tree) collectCandidates(n *node, out mapset.Set[*node]) {
	if !t.isSuccessful(n.bits) {
		return
	}
	out.Add(n)
	for _, child := range n.edges {
		t.collectCandidates(child, out)
	}
}

// isSuccessful reports whether the vector has, for every class, at least
// one bit belonging to a string of that class.
func (t *Tree) isSuccessful(bits *bitset.BitSet) bool {
	for _, members := range t.classes {
		found := false
		for _, idx := range members {
			if bits.Test(idx) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// pathLabel reconstructs the candidate's substring by concatenating edge
// labels from the node up to the root, then stripping the trailing
// terminator artifact.
func (t *Tree) pathLabel(n *node) []byte {
	var parts [][]byte
	for ; n.parent != nil; n = n.parent {
		parts = append(parts, t.edgeLabel(n))
	}
	var label []byte
	for i := len(parts) - 1; i >= 0; i-- {
		label = append(label, parts[i]...)
	}
	return stripTerminator(label)
}

// stripTerminator drops a trailing terminator remnant: a run of index
// digits plus the delimiter in front of it, either of which may be absent
// when an edge ends mid-terminator.
func stripTerminator(label []byte) []byte {
	i := len(label)
	for i > 0 && label[i-1] >= '0' && label[i-1] <= '9' {
		i--
	}
	if i > 0 && label[i-1] == delimiter {
		i--
	}
	return label[:i]
}

// contentLength is the symbol count of an edge label up to its embedded
// terminator marker, if any.
func contentLength(label []byte) int {
	if i := bytes.IndexByte(label, delimiter); i >= 0 {
		return i
	}
	return len(label)
}

// subtreeLeaves reports, for every leaf below n, the originating string
// index and the leaf's depth below n. A node whose edge embeds the
// delimiter terminates the descent: its depth stops there so terminator
// digits are not counted as substring content, and its vector already
// names every string reaching it.
func (t *Tree) subtreeLeaves(n *node) []leafPos {
	label := t.edgeLabel(n)
	if i := bytes.IndexByte(label, delimiter); i >= 0 {
		var vals []leafPos
		for idx, ok := n.bits.NextSet(0); ok; idx, ok = n.bits.NextSet(idx + 1) {
			vals = append(vals, leafPos{str: idx, depth: i})
		}
		return vals
	}

	var vals []leafPos
	for _, child := range n.edges {
		for _, v := range t.subtreeLeaves(child) {
			v.depth += len(label)
			vals = append(vals, v)
		}
	}
	return vals
}

// resolveOffsets converts (string index, depth below candidate) pairs into
// absolute offsets within the original input strings.
func (t *Tree) resolveOffsets(positions []leafPos, candidateEdgeLen, matchLen int) [][]int {
	offsets := make([][]int, t.stringsCount)
	for i := range offsets {
		offsets[i] = []int{}
	}
	for _, p := range positions {
		off := t.lengths[p.str] - (p.depth - candidateEdgeLen) - matchLen
		offsets[p.str] = append(offsets[p.str], off)
	}
	return offsets
}

func dedupeSorted(offsets []int) []int {
	if len(offsets) < 2 {
		return offsets
	}
	out := offsets[:1]
	for _, v := range offsets[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
