package store

import (
	"bytes"

	"anagramd/pkg/signature"
)

// Static is the static-pool memory regime: fixed-size arrays sized
// (maxWords x maxWordLen), allocated once by NewStatic and never grown.
// It is the regime required for the embedded target, where no runtime
// allocator is assumed to exist.
//
// An Add past maxWords fails with ErrCapacityExceeded; a word longer than
// maxWordLen fails validation with ErrInvalidWord. Either way the store is
// left unchanged — no partial insert.
type Static struct {
	maxWords  int
	maxLen    int
	words     [][]byte // len == maxWords, each capacity maxLen, sliced to actual length
	sigs      [][]byte
	wordLens  []int
	count     int
}

// NewStatic creates an empty static-regime store with fixed capacity
// maxWords and a per-word length ceiling of maxLen.
func NewStatic(maxWords, maxLen int) *Static {
	words := make([][]byte, maxWords)
	sigs := make([][]byte, maxWords)
	for i := range words {
		words[i] = make([]byte, maxLen)
		sigs[i] = make([]byte, maxLen)
	}
	return &Static{
		maxWords: maxWords,
		maxLen:   maxLen,
		words:    words,
		sigs:     sigs,
		wordLens: make([]int, maxWords),
	}
}

func (s *Static) Add(word []byte) (int, error) {
	if err := signature.Validate(word, s.maxLen); err != nil {
		return 0, ErrInvalidWord
	}
	if s.count >= s.maxWords {
		return 0, ErrCapacityExceeded
	}
	id := s.count
	copy(s.words[id], word)
	s.wordLens[id] = len(word)

	sig := signature.Compute(word)
	copy(s.sigs[id], sig)

	s.count++
	return id, nil
}

func (s *Static) FindID(word []byte) int {
	for id := 0; id < s.count; id++ {
		if bytes.Equal(s.words[id][:s.wordLens[id]], word) {
			return id
		}
	}
	return NoID
}

func (s *Static) FindAllIDs(word []byte) []int {
	var ids []int
	for id := 0; id < s.count; id++ {
		if bytes.Equal(s.words[id][:s.wordLens[id]], word) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *Static) Word(id int) []byte {
	return s.words[id][:s.wordLens[id]]
}

func (s *Static) Signature(id int) []byte {
	return s.sigs[id][:s.wordLens[id]]
}

func (s *Static) Count() int { return s.count }

func (s *Static) MaxWordLength() int { return s.maxLen }
