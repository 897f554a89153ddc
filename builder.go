package mueddi

import "sort"

// builder runs the Daciuk-Mihov-Watson incremental minimisation (spec.md
// §4.7) over a sorted word list. It is transient: consumed by BuildDawg
// and discarded once the Dawg is frozen.
type builder struct {
	dawg     *Dawg
	register map[string]int32 // structural key -> canonical node index
}

func newBuilder(rootFinal bool) *builder {
	return &builder{
		dawg:     &Dawg{nodes: []dawgNode{{final: rootFinal}}, root: 0},
		register: make(map[string]int32),
	}
}

// BuildDawg builds a minimal acyclic automaton whose language is exactly
// words. words need not be pre-sorted or de-duplicated: the builder sorts
// defensively, and re-inserting a word already present is a harmless
// no-op (its suffix from the common prefix is empty).
func BuildDawg(words []string) *Dawg {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)

	rootFinal := len(sorted) > 0 && sorted[0] == ""
	b := newBuilder(rootFinal)
	b.build(sorted)
	return b.dawg
}

func (b *builder) build(words []string) {
	for _, word := range words {
		runes := []rune(word)
		matched, last := b.dawg.trackPrefix(runes)
		if b.dawg.nodes[last].hasChildren() {
			b.replaceOrRegister(last)
		}
		b.addSuffix(last, runes[matched:])
	}
	b.replaceOrRegister(b.dawg.root)
}

// replaceOrRegister minimises the branch hanging off state's last child
// before it closes over: it first recurses into that child's own last
// child (post-order, so leaves register before their parents), then
// either rewires state's edge to an already-registered equivalent node
// or registers the child as newly canonical.
func (b *builder) replaceOrRegister(state int32) {
	li := b.dawg.nodes[state].lastChildIndex()
	if li < 0 {
		return
	}
	childIdx := b.dawg.nodes[state].edges[li].target

	if b.dawg.nodes[childIdx].hasChildren() {
		b.replaceOrRegister(childIdx)
	}

	key := b.dawg.nodeKey(childIdx)
	if canon, ok := b.register[key]; ok {
		b.dawg.nodes[state].edges[li].target = canon
	} else {
		b.register[key] = childIdx
	}
}

// addSuffix appends a fresh linear chain of states spelling suffix below
// state, marking the terminal node final. Fresh nodes are not registered
// here: their shape can still change while later words extend them, so a
// later replaceOrRegister call registers each one (or merges it with an
// equivalent canonical node) once its branch is closed.
func (b *builder) addSuffix(state int32, suffix []rune) {
	prev := state
	for i, r := range suffix {
		final := i == len(suffix)-1
		next := b.dawg.newNode(final)
		b.dawg.nodes[prev].addChild(r, next)
		prev = next
	}
}
