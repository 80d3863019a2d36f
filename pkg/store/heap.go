package store

import (
	"bytes"

	"anagramd/pkg/signature"
)

// span locates one word's (or signature's) bytes inside an arena.
type span struct {
	off int
	len int
}

// Heap is the heap-pool memory regime: two byte arenas (one for word text,
// one for signatures) that grow geometrically, with per-id offset/length
// tables instead of raw pointers. Storing offsets rather than pointers
// means a slice reallocation during growth never leaves a stale pointer
// behind — the Go analogue of the original implementation's pointer-rebase
// step, without needing one.
//
// Adding N words results in O(1) amortized arena reallocations: both
// arenas grow geometrically through append on overflow, the same bulk-allocation
// strategy the original dynamic-memory dictionary uses one malloc for.
type Heap struct {
	wordArena []byte
	sigArena  []byte
	words     []span
	sigs      []span
	maxLen    int
}

// NewHeap creates an empty heap-regime store. capacityHint sizes the
// initial arenas (24 bytes per word, matching the original pool_size
// estimate); maxLen bounds word length, or 0 for unbounded.
func NewHeap(capacityHint, maxLen int) *Heap {
	if capacityHint <= 0 {
		capacityHint = 1024
	}
	return &Heap{
		wordArena: make([]byte, 0, capacityHint*24),
		sigArena:  make([]byte, 0, capacityHint*24),
		words:     make([]span, 0, capacityHint),
		sigs:      make([]span, 0, capacityHint),
		maxLen:    maxLen,
	}
}

func (h *Heap) Add(word []byte) (int, error) {
	if err := signature.Validate(word, h.maxLen); err != nil {
		return 0, ErrInvalidWord
	}
	sig := signature.Compute(word)

	wOff := len(h.wordArena)
	h.wordArena = append(h.wordArena, word...)
	sOff := len(h.sigArena)
	h.sigArena = append(h.sigArena, sig...)

	id := len(h.words)
	h.words = append(h.words, span{off: wOff, len: len(word)})
	h.sigs = append(h.sigs, span{off: sOff, len: len(sig)})
	return id, nil
}

func (h *Heap) FindID(word []byte) int {
	for id, sp := range h.words {
		if bytes.Equal(h.wordArena[sp.off:sp.off+sp.len], word) {
			return id
		}
	}
	return NoID
}

func (h *Heap) FindAllIDs(word []byte) []int {
	var ids []int
	for id, sp := range h.words {
		if bytes.Equal(h.wordArena[sp.off:sp.off+sp.len], word) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (h *Heap) Word(id int) []byte {
	sp := h.words[id]
	return h.wordArena[sp.off : sp.off+sp.len]
}

func (h *Heap) Signature(id int) []byte {
	sp := h.sigs[id]
	return h.sigArena[sp.off : sp.off+sp.len]
}

func (h *Heap) Count() int { return len(h.words) }

func (h *Heap) MaxWordLength() int { return h.maxLen }
