package chainfind

import (
	"fmt"
	"io"
	"strings"

	"anagramd/pkg/store"
)

// Render writes a Result in the caller-facing output format: a one-line
// summary, then one "word0->word1->...->wordk" line per chain, with no
// trailing whitespace on chain lines. A Result with no chains prints
// "No chains found." instead of a zero-count summary line.
func Render(w io.Writer, s store.Store, r Result) {
	if len(r.Chains) == 0 {
		fmt.Fprintln(w, "No chains found.")
		return
	}

	fmt.Fprintf(w, "Found %d chain(s) of length %d:\n", len(r.Chains), r.MaxLength)
	for _, chain := range r.Chains {
		fmt.Fprintln(w, ChainString(s, chain))
	}
}

// ChainString renders one id chain as "word0->word1->...->wordk".
func ChainString(s store.Store, chain []int) string {
	words := make([]string, len(chain))
	for i, id := range chain {
		words[i] = string(s.Word(id))
	}
	return strings.Join(words, "->")
}
