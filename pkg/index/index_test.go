package index

import (
	"testing"

	"anagramd/pkg/signature"
	"anagramd/pkg/store"
)

func buildBoth(t *testing.T, words []string) []*Index {
	t.Helper()
	h := store.NewHeap(len(words), 256)
	s := store.NewStatic(len(words), 256)
	for _, w := range words {
		h.Add([]byte(w))
		s.Add([]byte(w))
	}
	return []*Index{BuildHeap(h), BuildStatic(s, 64, 256)}
}

func TestFindReturnsIDsSharingSignature(t *testing.T) {
	words := []string{"abc", "cab", "bac", "abcd"}
	for _, idx := range buildBoth(t, words) {
		ids, ok := idx.Find(signature.Compute([]byte("abc")))
		if !ok {
			t.Fatal("expected signature 'abc' to be present")
		}
		if len(ids) != 3 {
			t.Errorf("expected 3 ids sharing signature abc, got %d: %v", len(ids), ids)
		}
	}
}

func TestFindAbsentSignature(t *testing.T) {
	for _, idx := range buildBoth(t, []string{"abc"}) {
		if _, ok := idx.Find(signature.Compute([]byte("xyz"))); ok {
			t.Error("expected absent signature to report ok=false")
		}
	}
}

func TestStaticRegimeCapsIDsPerSignature(t *testing.T) {
	s := store.NewStatic(10, 256)
	words := []string{"abc", "cab", "bac", "bca", "acb", "cba"}
	for _, w := range words {
		s.Add([]byte(w))
	}
	idx := BuildStatic(s, 8, 3)
	ids, ok := idx.Find(signature.Compute([]byte("abc")))
	if !ok {
		t.Fatal("expected signature present")
	}
	if len(ids) != 3 {
		t.Errorf("static regime should cap at 3 ids, got %d", len(ids))
	}
}

func TestHeapRegimeDoesNotCapIDsPerSignature(t *testing.T) {
	h := store.NewHeap(10, 256)
	words := []string{"abc", "cab", "bac", "bca", "acb", "cba"}
	for _, w := range words {
		h.Add([]byte(w))
	}
	idx := BuildHeap(h)
	ids, _ := idx.Find(signature.Compute([]byte("abc")))
	if len(ids) != len(words) {
		t.Errorf("heap regime should keep all %d ids, got %d", len(words), len(ids))
	}
}
