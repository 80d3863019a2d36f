// Package index maps a signature to the word ids that share it, so the
// chain enumerator can answer "who has this candidate signature" in O(1).
//
// The index is a closed-addressing hash table keyed by signature bytes,
// hashed with FNV-1a (the exact algorithm the original anagram-chain
// implementation specifies: small, allocation-free, well distributed for
// short byte sequences over a dense alphabet). The FNV-1a accumulator
// loop is hand-inlined rather than built on hash/fnv, since that
// constructor's interface return allocates on every call. Collisions
// chain; within a chain, entries are compared by full byte equality.
// Index.Find never allocates.
//
// The index borrows signature bytes from the store it was built over — it
// never copies them — so the store must outlive the index, and the store
// must be frozen (no further Add calls) for as long as the index is in
// use.
package index

import (
	"bytes"

	"anagramd/pkg/store"
)

// fnv1aOffsetBasis and fnv1aPrime are the 32-bit FNV-1a constants from
// anagram_chain_core.c's hash_fnv1a.
const (
	fnv1aOffsetBasis uint32 = 2166136261
	fnv1aPrime       uint32 = 16777619
)

// fnv1a computes the 32-bit FNV-1a hash of sig. It is hand-inlined rather
// than built on hash/fnv.New32a so that bucketFor never allocates: the
// stdlib constructor returns a hash.Hash32 interface whose concrete value
// escapes to the heap, which Find cannot afford on its hot path.
func fnv1a(sig []byte) uint32 {
	h := fnv1aOffsetBasis
	for _, b := range sig {
		h ^= uint32(b)
		h *= fnv1aPrime
	}
	return h
}

// MinHostBuckets is the minimum bucket count on the host regime,
// regardless of how small the dictionary is.
const MinHostBuckets = 1024

// entry is one signature's bucket-chain node: the signature bytes
// (borrowed from the store) plus every id sharing that signature.
type entry struct {
	sig  []byte
	ids  []int
	next *entry
}

// Index is the signature -> ids mapping. The same type backs both memory
// regimes; maxIDsPerSig distinguishes them: 0 means unbounded (heap
// regime), a positive value caps each entry's id list (static regime),
// silently dropping ids past the cap.
type Index struct {
	buckets      []*entry
	entryCount   int
	maxIDsPerSig int
}

// BuildHeap constructs a heap-regime index over every id currently in
// store. Each entry's id list grows without bound.
func BuildHeap(s store.Store) *Index {
	return build(s, bucketCountFor(s.Count(), MinHostBuckets), 0)
}

// BuildStatic constructs a static-regime index over every id currently in
// store, with a fixed bucket count and a per-signature id-list cap. Ids
// past the cap for a given signature are dropped silently, per the static
// regime's documented truncation trade-off.
func BuildStatic(s store.Store, buckets, maxIDsPerSig int) *Index {
	return build(s, buckets, maxIDsPerSig)
}

func build(s store.Store, buckets, maxIDsPerSig int) *Index {
	if buckets < 1 {
		buckets = 1
	}
	idx := &Index{
		buckets:      make([]*entry, buckets),
		maxIDsPerSig: maxIDsPerSig,
	}
	for id := 0; id < s.Count(); id++ {
		idx.insert(s.Signature(id), id)
	}
	return idx
}

func bucketCountFor(wordCount, floor int) int {
	n := floor
	if wordCount > n {
		n = wordCount
	}
	return n
}

func (idx *Index) insert(sig []byte, id int) {
	b := idx.bucketFor(sig)
	for e := idx.buckets[b]; e != nil; e = e.next {
		if bytes.Equal(e.sig, sig) {
			if idx.maxIDsPerSig > 0 && len(e.ids) >= idx.maxIDsPerSig {
				return
			}
			e.ids = append(e.ids, id)
			return
		}
	}
	ids := make([]int, 1, 4)
	ids[0] = id
	idx.buckets[b] = &entry{sig: sig, ids: ids, next: idx.buckets[b]}
	idx.entryCount++
}

// Find returns the ids sharing signature sig, and whether any entry for
// that signature exists at all.
func (idx *Index) Find(sig []byte) ([]int, bool) {
	b := idx.bucketFor(sig)
	for e := idx.buckets[b]; e != nil; e = e.next {
		if bytes.Equal(e.sig, sig) {
			return e.ids, true
		}
	}
	return nil, false
}

// EntryCount returns the number of distinct signatures indexed.
func (idx *Index) EntryCount() int { return idx.entryCount }

func (idx *Index) bucketFor(sig []byte) int {
	return int(fnv1a(sig) % uint32(len(idx.buckets)))
}
