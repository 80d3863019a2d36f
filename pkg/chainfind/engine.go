package chainfind

import (
	"errors"

	"anagramd/pkg/index"
	"anagramd/pkg/store"
)

// State is the engine's position in the load -> build -> search lifecycle
// described by spec.md's state-machine view of find_longest.
type State int

const (
	StateLoading State = iota
	StateReady
	StateSearching
)

// ErrStoreFrozen is returned by Add once Build has run: a session cannot
// transition from ready back to loading.
var ErrStoreFrozen = errors.New("chainfind: store is frozen after build")

// Engine ties the word store, signature index, enumerator and accumulator
// together behind the single entry point callers use: load words, build
// the index once, then run any number of find-longest searches. One
// Engine is owned by one search at a time; it holds no synchronization
// primitives and needs none (see spec.md section 5).
type Engine struct {
	store         store.Store
	idx           *index.Index
	state         State
	maxChainDepth int
	maxChains     int
}

// NewEngine wraps an already-created, empty Store. maxChainDepth and
// maxChains are the deployment's MAX_CHAIN_DEPTH and MAX_CHAINS knobs.
func NewEngine(s store.Store, maxChainDepth, maxChains int) *Engine {
	return &Engine{
		store:         s,
		state:         StateLoading,
		maxChainDepth: maxChainDepth,
		maxChains:     maxChains,
	}
}

// Add appends word to the underlying store. It fails with ErrStoreFrozen
// once BuildHeap/BuildStatic has run.
func (e *Engine) Add(word []byte) (int, error) {
	if e.state != StateLoading {
		return 0, ErrStoreFrozen
	}
	return e.store.Add(word)
}

// BuildHeap builds a heap-regime signature index over the current store
// contents and freezes the store for the rest of the session.
func (e *Engine) BuildHeap() {
	e.idx = index.BuildHeap(e.store)
	e.state = StateReady
}

// BuildStatic builds a static-regime signature index, with the given
// bucket count and per-signature id cap, and freezes the store.
func (e *Engine) BuildStatic(buckets, maxIDsPerSig int) {
	e.idx = index.BuildStatic(e.store, buckets, maxIDsPerSig)
	e.state = StateReady
}

// Store returns the underlying word store, for callers that need direct
// lookups (id -> word, id -> signature) alongside a Result.
func (e *Engine) Store() store.Store { return e.store }

// State reports the engine's current lifecycle state.
func (e *Engine) State() State { return e.state }

// FindLongest runs one depth-first search from start and returns every
// chain tied for the longest length reachable. Calling it before Build
// has run returns an empty Result rather than panicking — an engine with
// no index behaves as if nothing is reachable from any start word.
func (e *Engine) FindLongest(start []byte) Result {
	if e.idx == nil {
		return Result{}
	}
	e.state = StateSearching
	result := FindLongest(e.idx, e.store, start, e.maxChainDepth, e.maxChains)
	e.state = StateReady
	return result
}
