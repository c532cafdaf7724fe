package suffixtree

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAppendString(t *testing.T) {
	Convey("Appending a string inserts one leaf per suffix", t, func() {
		tree := New()

		So(tree.AppendString("xabxac", ""), ShouldBeNil)

		Convey("leaf count covers the string plus its 2-symbol terminator", func() {
			So(len(tree.leaves), ShouldEqual, 8)
			So(tree.stringsCount, ShouldEqual, 1)
		})

		Convey("every leaf belongs to exactly one string", func() {
			for _, leaf := range tree.leaves {
				So(leaf.bits.Count(), ShouldEqual, uint(1))
				So(leaf.bits.Test(0), ShouldBeTrue)
			}
		})

		Convey("a second string extends the same tree in place", func() {
			So(tree.AppendString("abc", "B"), ShouldBeNil)

			So(len(tree.leaves), ShouldEqual, 8+5)
			So(tree.stringsCount, ShouldEqual, 2)
			for _, leaf := range tree.leaves {
				So(leaf.bits.Count(), ShouldEqual, uint(1))
			}
		})
	})
}

func TestAppendSingleSymbolString(t *testing.T) {
	Convey("A single-symbol string hangs its suffixes directly under root", t, func() {
		tree := New()
		So(tree.AppendString("a", ""), ShouldBeNil)

		// suffixes a$0, $0 and 0
		So(len(tree.leaves), ShouldEqual, 3)
		So(len(tree.root.edges), ShouldEqual, 3)
		for _, child := range tree.root.edges {
			So(len(child.edges), ShouldEqual, 0)
		}
	})
}

func TestAppendEmptyString(t *testing.T) {
	Convey("An empty string still gets its terminator leaf", t, func() {
		tree := New()
		So(tree.AppendString("", ""), ShouldBeNil)

		So(tree.stringsCount, ShouldEqual, 1)
		So(len(tree.leaves), ShouldEqual, 2)

		var labels []string
		for _, leaf := range tree.leaves {
			labels = append(labels, string(tree.edgeLabel(leaf)))
		}
		So(labels, ShouldContain, "$0")
	})
}

func TestAppendStringRejectsDelimiter(t *testing.T) {
	Convey("Input containing the reserved delimiter is rejected", t, func() {
		tree := New()
		So(tree.AppendString("abc", ""), ShouldBeNil)

		leaves := len(tree.leaves)
		bufLen := len(tree.input)

		err := tree.AppendString("ab$c", "")
		So(err, ShouldNotBeNil)
		So(err, ShouldHaveSameTypeAs, InvalidInput{})

		Convey("and the tree is left untouched", func() {
			So(tree.stringsCount, ShouldEqual, 1)
			So(len(tree.leaves), ShouldEqual, leaves)
			So(len(tree.input), ShouldEqual, bufLen)
			So(len(tree.classes), ShouldEqual, 1)
		})
	})
}

func TestEdgeKeysAreUnique(t *testing.T) {
	Convey("No node carries two edges starting with the same symbol", t, func() {
		tree := New()
		So(tree.AppendString("mississippi", ""), ShouldBeNil)
		So(tree.AppendString("missouri", "B"), ShouldBeNil)

		var walk func(n *node)
		walk = func(n *node) {
			for key, child := range n.edges {
				So(tree.edgeLabel(child)[0], ShouldEqual, key)
				walk(child)
			}
		}
		walk(tree.root)
	})
}

func TestSplitStructure(t *testing.T) {
	Convey("Shared prefixes end up on shared internal nodes", t, func() {
		tree := New()
		So(tree.AppendString("xabxac", ""), ShouldBeNil)

		Convey("the x edge is split at xa", func() {
			xa := tree.root.edges['x']
			So(xa, ShouldNotBeNil)
			So(string(tree.edgeLabel(xa)), ShouldEqual, "xa")
			So(len(xa.edges), ShouldEqual, 2)
		})

		Convey("the a edge is split after one symbol", func() {
			a := tree.root.edges['a']
			So(a, ShouldNotBeNil)
			So(string(tree.edgeLabel(a)), ShouldEqual, "a")
			So(len(a.edges), ShouldEqual, 2)
		})
	})
}

func TestGraphviz(t *testing.T) {
	Convey("The dot dump names every node and edge", t, func() {
		tree := New()
		So(tree.AppendString("ab", ""), ShouldBeNil)

		dot := tree.Graphviz()
		So(dot, ShouldStartWith, "digraph G {")
		So(dot, ShouldEndWith, "}")
		So(strings.Contains(dot, `label="ab$0"`), ShouldBeTrue)
	})
}
