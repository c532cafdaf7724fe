// Package suffixtree builds a generalized suffix tree over a collection of
// input strings using Ukkonen's online construction and finds the common
// substrings shared across all string classes, with every occurrence
// position in every input string.
package suffixtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const (
	// delimiter starts every per-string terminator. Input strings must not
	// contain it; the index digits following it keep terminators unique.
	delimiter = '$'

	// openEnd marks an edge that still grows with the current append pass.
	// It is rewritten to the real buffer length when the pass completes.
	openEnd = -1
)

// node represents the edge that points at it together with the subtree
// hanging below it. Symbols are not stored here, only [start, end) indices
// into the tree's shared input buffer.
type node struct {
	id         int
	start, end int
	edges      map[byte]*node
	parent     *node
	suffixLink *node

	// bits marks which strings have a leaf in this node's subtree. Leaves
	// carry exactly their own string's bit; internal nodes are filled in
	// by the finder's upward propagation.
	bits *bitset.BitSet
}

// edgeEnd resolves an open end against the given limit, usually the index
// of the symbol being processed plus one, or the buffer length once the
// tree is complete.
func (n *node) edgeEnd(limit int) int {
	if n.end == openEnd || n.end > limit {
		return limit
	}
	return n.end
}

func (n *node) edgeLength(pos int) int {
	return n.edgeEnd(pos+1) - n.start
}

// adopt hangs an existing node below n, keyed by the first symbol of the
// child's edge.
func (n *node) adopt(key byte, child *node) {
	child.parent = n
	n.edges[key] = child
}

// Tree is a generalized suffix tree. Strings are appended one at a time,
// each terminated by a unique marker, and share one concatenated symbol
// buffer that all node ranges point into.
type Tree struct {
	root         *node
	input        []byte
	stringsCount int
	leaves       []*node
	lengths      []int

	// classes maps a class id to the indices of its member strings. The
	// finder reports substrings present in every class at least once.
	// Unclassed strings get a synthetic singleton class.
	classes map[string][]uint

	nextID int
}

// New creates an empty generalized suffix tree.
func New() *Tree {
	t := &Tree{classes: make(map[string][]uint)}
	t.root = t.newNode(0, openEnd)
	return t
}

func (t *Tree) newNode(start, end int) *node {
	n := &node{
		id:    t.nextID,
		start: start,
		end:   end,
		edges: make(map[byte]*node),
		bits:  bitset.New(8),
	}
	t.nextID++
	return n
}

// addChild creates a new child below n. The key must be vacant: two edges
// starting with the same symbol would make traversal ambiguous, so a
// collision here is a construction bug, not bad input.
func (t *Tree) addChild(n *node, key byte, start, end int) *node {
	if _, ok := n.edges[key]; ok {
		panic(fmt.Sprintf("suffixtree: edge key %q already present on node %d", key, n.id))
	}
	child := t.newNode(start, end)
	child.parent = n
	n.edges[key] = child
	return child
}

// splitEdge breaks the edge pointing at next after length symbols,
// inserting a new internal node between parent and next.
func (t *Tree) splitEdge(parent, next *node, activeEdge, length int) *node {
	split := t.newNode(next.start, next.start+length)
	split.parent = parent
	parent.edges[t.input[activeEdge]] = split
	next.start += length
	split.adopt(t.input[next.start], next)
	return split
}

func (t *Tree) edgeLabel(n *node) []byte {
	return t.input[n.start:n.edgeEnd(len(t.input))]
}

// AppendString adds one more string to the tree, extending it in place via
// Ukkonen's algorithm. An empty classID leaves the string unclassed, which
// puts it in its own singleton class. The input must not contain the
// reserved delimiter; if it does, InvalidInput is returned and the tree is
// left exactly as it was.
func (t *Tree) AppendString(input string, classID string) error {
	if strings.IndexByte(input, delimiter) >= 0 {
		return InvalidInput{Input: input}
	}

	start := len(t.input)
	current := t.stringsCount
	terminator := string(delimiter) + strconv.Itoa(current)

	t.input = append(t.input, input...)
	t.input = append(t.input, terminator...)
	t.stringsCount++
	t.lengths = append(t.lengths, len(input))

	if classID == "" {
		classID = terminator
	}
	t.classes[classID] = append(t.classes[classID], uint(current))

	activeNode := t.root
	activeEdge := 0
	activeLength := 0
	remainder := 0

	var newLeaves []*node

	for index := start; index < len(t.input); index++ {
		var previous *node
		remainder++
		for remainder > 0 {
			if activeLength == 0 {
				activeEdge = index
			}

			next, ok := activeNode.edges[t.input[activeEdge]]
			if !ok {
				// no edge starts with the current symbol: new leaf
				leaf := t.addChild(activeNode, t.input[activeEdge], index, openEnd)
				leaf.bits.Set(uint(current))
				newLeaves = append(newLeaves, leaf)

				if previous != nil {
					previous.suffixLink = activeNode
				}
				previous = activeNode
			} else {
				// hop down the edge when the active length spans it;
				// this only normalizes the active point, no suffix
				// gets inserted
				if length := next.edgeLength(index); activeLength >= length {
					activeEdge += length
					activeLength -= length
					activeNode = next
					continue
				}

				// the suffix is already implicit on this edge
				if t.input[next.start+activeLength] == t.input[index] {
					activeLength++
					if previous != nil {
						previous.suffixLink = activeNode
					}
					previous = activeNode
					break
				}

				split := t.splitEdge(activeNode, next, activeEdge, activeLength)
				leaf := t.addChild(split, t.input[index], index, openEnd)
				leaf.bits.Set(uint(current))
				newLeaves = append(newLeaves, leaf)

				if previous != nil {
					previous.suffixLink = split
				}
				previous = split
			}

			remainder--

			if activeNode == t.root && activeLength > 0 {
				activeLength--
				activeEdge = index - remainder + 1
			} else if activeNode.suffixLink != nil {
				activeNode = activeNode.suffixLink
			} else {
				activeNode = t.root
			}
		}
	}

	for _, leaf := range newLeaves {
		leaf.end = len(t.input)
	}
	t.leaves = append(t.leaves, newLeaves...)

	return nil
}

// StringCount reports how many strings have been appended so far.
func (t *Tree) StringCount() int {
	return t.stringsCount
}
