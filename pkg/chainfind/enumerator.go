package chainfind

import (
	"anagramd/pkg/index"
	"anagramd/pkg/signature"
	"anagramd/pkg/store"
)

// Result is the outcome of one FindLongest call: every chain in Chains
// has length MaxLength. An empty Chains means nothing was produced — the
// start word was absent, or every chain from it reached the depth cap and
// was dropped. A start word with no extension yields one chain of length 1.
type Result struct {
	MaxLength int
	Chains    [][]int
}

// FindLongest resolves start to its id in s (the lowest id on a
// duplicate), then depth-first searches every add-one-letter extension
// reachable from it, returning every chain tied for the longest length
// found. A start word absent from s yields an empty Result, not an error.
//
// Because a signature strictly grows by one byte at every step, no id can
// repeat on a single DFS stack — cycles are structurally impossible, so
// no visited set is needed or used here.
func FindLongest(idx *index.Index, s store.Store, start []byte, maxDepth, maxChains int) Result {
	startID := s.FindID(start)
	if startID == store.NoID {
		return Result{}
	}
	if maxDepth < 1 {
		maxDepth = 1
	}

	path := make([]int, maxDepth)
	path[0] = startID
	acc := NewAccumulator(maxChains)

	dfs(idx, s, path, 1, maxDepth, acc)

	maxLength, chains := acc.Snapshot()
	return Result{MaxLength: maxLength, Chains: chains}
}

// dfs explores every one-letter extension of path[depth-1], recursing for
// each successor id found. depth is the current chain length (number of
// ids filled into path[0:depth]). Hitting maxDepth is a silent cap cut:
// the branch is dropped without emitting anything, and the caller that
// recursed into it already marked found, so the caller's own leaf
// emission is suppressed too — a chain whose true length exceeds the cap
// is dropped entirely, not truncated and kept.
func dfs(idx *index.Index, s store.Store, path []int, depth, maxDepth int, acc *Accumulator) {
	if depth >= maxDepth {
		return
	}

	sig := s.Signature(path[depth-1])
	found := false

	for c := signature.ASCIIMin; c <= signature.ASCIIMax; c++ {
		candidate := signature.InsertSorted(sig, byte(c))
		ids, ok := idx.Find(candidate)
		if !ok {
			continue
		}
		for _, next := range ids {
			found = true
			path[depth] = next
			dfs(idx, s, path, depth+1, maxDepth, acc)
		}
	}

	if !found {
		acc.Emit(path[:depth])
	}
}
