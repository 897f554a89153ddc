package mueddi

import (
	"encoding/binary"
	"sort"
)

// dawgEdge is one labelled transition out of a DawgState, kept sorted by
// label within a node's edge slice so iteration (and the product
// iterator's breadth-first order) follows the symbol ordering spec.md
// §4.8 requires.
type dawgEdge struct {
	label  rune
	target int32
}

// dawgNode is a DawgState (spec.md §3). Its identity for the purposes of
// the minimisation register is (final, ordered edge labels, ordered edge
// targets): two nodes with the same shape are the same automaton state.
//
// Nodes live in Dawg.nodes, an arena; target indices stand in for the
// Rc<RefCell<_>> pointer identity the original implementation relies on
// (spec.md §9's Design Note). The arena is append-only during
// construction and frozen once BuildDawg returns.
type dawgNode struct {
	final bool
	edges []dawgEdge
}

func (n *dawgNode) childIndex(label rune) int {
	return sort.Search(len(n.edges), func(i int) bool {
		return n.edges[i].label >= label
	})
}

func (n *dawgNode) getChild(label rune) (int32, bool) {
	i := n.childIndex(label)
	if i < len(n.edges) && n.edges[i].label == label {
		return n.edges[i].target, true
	}
	return 0, false
}

// addChild appends a new edge. Construction only ever adds children in
// increasing label order (words are inserted sorted), so appending
// preserves the sorted invariant; an edge for an already-present label is
// an internal inconsistency, not a data condition, so it panics.
func (n *dawgNode) addChild(label rune, target int32) {
	if len(n.edges) > 0 && n.edges[len(n.edges)-1].label >= label {
		panic("mueddi: dawg child added out of order or already exists")
	}
	n.edges = append(n.edges, dawgEdge{label: label, target: target})
}

func (n *dawgNode) hasChildren() bool {
	return len(n.edges) > 0
}

// lastChildIndex returns the index of the node's last (highest-label) child
// edge, or -1 if it has none.
func (n *dawgNode) lastChildIndex() int {
	if len(n.edges) == 0 {
		return -1
	}
	return len(n.edges) - 1
}

// Dawg is a minimal acyclic deterministic automaton over a word set: its
// language is exactly the set of words BuildDawg was called with. It is
// immutable after construction and safe to share read-only across any
// number of goroutines.
type Dawg struct {
	nodes []dawgNode
	root  int32
}

// Root returns the arena index of the Dawg's root state.
func (d *Dawg) Root() int32 {
	return d.root
}

// IsFinal reports whether the node at idx is an accepting state.
func (d *Dawg) IsFinal(idx int32) bool {
	return d.nodes[idx].final
}

// Edges returns the node at idx's outgoing transitions, ordered by
// symbol.
func (d *Dawg) Edges(idx int32) []dawgEdge {
	return d.nodes[idx].edges
}

// Accepts reports whether w is in the language of the Dawg: walk the
// edges for each code point, returning false the moment an edge is
// missing, else the terminal node's final flag.
func (d *Dawg) Accepts(w string) bool {
	idx := d.root
	for _, r := range w {
		next, ok := d.nodes[idx].getChild(r)
		if !ok {
			return false
		}
		idx = next
	}
	return d.nodes[idx].final
}

// trackPrefix follows the longest prefix of word already present in the
// Dawg, returning how many code points matched and the deepest existing
// node reached.
func (d *Dawg) trackPrefix(word []rune) (matched int, last int32) {
	idx := d.root
	prev := idx
	for i, r := range word {
		prev = idx
		next, ok := d.nodes[prev].getChild(r)
		if !ok {
			return i, prev
		}
		idx = next
	}
	return len(word), idx
}

// nodeKey is an exact structural encoding of the node at idx - final flag
// plus every (label, target-index) edge pair - used as the minimisation
// register's map key. Because children are always minimised (and thus
// assigned their final canonical index) before their parent is compared,
// comparing target indices for equality here is sound.
func (d *Dawg) nodeKey(idx int32) string {
	n := &d.nodes[idx]
	buf := make([]byte, 1, 1+len(n.edges)*8)
	if n.final {
		buf[0] = 1
	}
	var tmp [8]byte
	for _, e := range n.edges {
		binary.BigEndian.PutUint32(tmp[0:4], uint32(e.label))
		binary.BigEndian.PutUint32(tmp[4:8], uint32(e.target))
		buf = append(buf, tmp[:]...)
	}
	return string(buf)
}

func (d *Dawg) newNode(final bool) int32 {
	d.nodes = append(d.nodes, dawgNode{final: final})
	return int32(len(d.nodes) - 1)
}
