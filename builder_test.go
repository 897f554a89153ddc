package mueddi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderToleratesUnsortedInput(t *testing.T) {
	d := BuildDawg([]string{"zebra", "ant", "mango"})
	require.True(t, d.Accepts("zebra"))
	require.True(t, d.Accepts("ant"))
	require.True(t, d.Accepts("mango"))
	require.False(t, d.Accepts("an"))
}

func TestBuilderRegistersEveryReachableNodeOnce(t *testing.T) {
	b := newBuilder(false)
	b.build([]string{"cat", "cats"})

	// Every state reachable below the root must end up with exactly one
	// registry entry once construction finishes: the register key is the
	// state's structural shape, so a correctly minimised automaton has as
	// many entries as distinct shapes among its reachable states.
	reachable := map[int32]bool{}
	var walk func(idx int32)
	walk = func(idx int32) {
		if reachable[idx] {
			return
		}
		reachable[idx] = true
		for _, e := range b.dawg.Edges(idx) {
			walk(e.target)
		}
	}
	walk(b.dawg.root)

	seenKeys := map[string]bool{}
	for idx := range reachable {
		seenKeys[b.dawg.nodeKey(int32(idx))] = true
	}
	require.LessOrEqual(t, len(seenKeys), len(reachable))

	for idx := range reachable {
		if idx == b.dawg.root {
			continue
		}
		require.Equal(t, idx, b.register[b.dawg.nodeKey(idx)])
	}
	require.Equal(t, len(reachable)-1, len(b.register))
}

func TestReplaceOrRegisterMergesEquivalentLeaves(t *testing.T) {
	// "cats" and "bats" both end in a node shaped {final, no edges}; after
	// minimisation every leaf reachable from the root must collapse onto
	// the same canonical index.
	d := BuildDawg([]string{"cats", "bats"})

	var leaves []int32
	var walk func(idx int32)
	walk = func(idx int32) {
		edges := d.Edges(idx)
		if len(edges) == 0 {
			leaves = append(leaves, idx)
			return
		}
		for _, e := range edges {
			walk(e.target)
		}
	}
	walk(d.Root())

	require.NotEmpty(t, leaves)
	for _, idx := range leaves[1:] {
		require.Equal(t, leaves[0], idx, "all terminal leaf states must share one canonical index")
	}
}

func TestBuildDawgEmptyInput(t *testing.T) {
	d := BuildDawg([]string{})
	require.False(t, d.Accepts(""))
}
