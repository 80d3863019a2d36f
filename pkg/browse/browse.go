// Package browse offers prefix lookups over an already-loaded word store,
// for interactive inspection of what a dictionary actually contains. It has
// no bearing on find_longest: a browser is built from the same store a
// chainfind.Engine loads, but the two never share state beyond that.
package browse

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"anagramd/pkg/store"
)

// Browser answers prefix queries over a frozen snapshot of a store's
// words, backed by a patricia trie keyed on the word bytes with the
// store id as the trie item.
type Browser struct {
	trie *patricia.Trie
}

// Build indexes every word currently in s. Unlike an Index, a Browser
// borrows nothing from s after Build returns — it copies word bytes into
// the trie — so it stays valid even if s is later mutated (though
// chainfind.Engine never does that once built).
func Build(s store.Store) *Browser {
	trie := patricia.NewTrie()
	for id := 0; id < s.Count(); id++ {
		word := s.Word(id)
		key := make([]byte, len(word))
		copy(key, word)
		trie.Set(patricia.Prefix(key), id)
	}
	return &Browser{trie: trie}
}

// Match is one word found under a prefix query.
type Match struct {
	Word string
	ID   int
}

// Prefix returns every word with the given prefix, sorted lexically. An
// empty prefix matches every word in the browser.
func (b *Browser) Prefix(prefix string) []Match {
	var matches []Match
	err := b.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		id, ok := item.(int)
		if !ok {
			log.Errorf("browse: unexpected trie item type %T for %q", item, p)
			return nil
		}
		matches = append(matches, Match{Word: string(p), ID: id})
		return nil
	})
	if err != nil {
		log.Errorf("browse: VisitSubtree(%q): %v", prefix, err)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Word < matches[j].Word })
	return matches
}

// Contains reports whether word is present in the browser's snapshot.
func (b *Browser) Contains(word string) bool {
	return b.trie.Get(patricia.Prefix(word)) != nil
}

// Len returns the number of distinct words indexed.
func (b *Browser) Len() int {
	n := 0
	b.trie.Visit(func(patricia.Prefix, patricia.Item) error {
		n++
		return nil
	})
	return n
}
