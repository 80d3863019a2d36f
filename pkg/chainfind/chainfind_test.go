package chainfind

import (
	"reflect"
	"strings"
	"testing"

	"anagramd/pkg/index"
	"anagramd/pkg/store"
)

// buildEngines returns a heap-regime and a static-regime engine, both
// loaded with words and built, so every scenario can be checked against
// both memory regimes per spec.md section 8's cross-regime stability
// requirement.
func buildEngines(t *testing.T, words []string, maxDepth, maxChains int) []*Engine {
	t.Helper()
	engines := make([]*Engine, 0, 2)

	heapEngine := NewEngine(store.NewHeap(len(words), 256), maxDepth, maxChains)
	for _, w := range words {
		if _, err := heapEngine.Add([]byte(w)); err != nil {
			t.Fatalf("heap Add(%q): %v", w, err)
		}
	}
	heapEngine.BuildHeap()
	engines = append(engines, heapEngine)

	staticEngine := NewEngine(store.NewStatic(len(words)+1, 256), maxDepth, maxChains)
	for _, w := range words {
		if _, err := staticEngine.Add([]byte(w)); err != nil {
			t.Fatalf("static Add(%q): %v", w, err)
		}
	}
	staticEngine.BuildStatic(index.MinHostBuckets, 256)
	engines = append(engines, staticEngine)

	return engines
}

func chainsAsWords(e *Engine, chains [][]int) [][]string {
	out := make([][]string, len(chains))
	for i, c := range chains {
		words := make([]string, len(c))
		for j, id := range c {
			words[j] = string(e.Store().Word(id))
		}
		out[i] = words
	}
	return out
}

func containsChain(chains [][]string, want []string) bool {
	for _, c := range chains {
		if reflect.DeepEqual(c, want) {
			return true
		}
	}
	return false
}

func TestScenarioS1(t *testing.T) {
	words := []string{"abcdg", "abcd", "abcdgh", "abcek", "abck", "abc",
		"abcdp", "abcdghi", "bafced", "akjpqwmn", "abcelk", "baclekt"}
	for _, e := range buildEngines(t, words, 256, 10000) {
		r := e.FindLongest([]byte("abck"))
		if r.MaxLength != 4 {
			t.Fatalf("MaxLength = %d, want 4", r.MaxLength)
		}
		if len(r.Chains) != 1 {
			t.Fatalf("len(Chains) = %d, want 1", len(r.Chains))
		}
		got := chainsAsWords(e, r.Chains)
		if !containsChain(got, []string{"abck", "abcek", "abcelk", "baclekt"}) {
			t.Errorf("chains = %v, missing expected chain", got)
		}
	}
}

func TestScenarioS2StartAbsent(t *testing.T) {
	words := []string{"abcdg", "abcd", "abcdgh", "abcek", "abck", "abc",
		"abcdp", "abcdghi", "bafced", "akjpqwmn", "abcelk", "baclekt"}
	for _, e := range buildEngines(t, words, 256, 10000) {
		r := e.FindLongest([]byte("xyz"))
		if len(r.Chains) != 0 {
			t.Errorf("expected empty result set for absent start word, got %v", r.Chains)
		}
	}
}

func TestScenarioS3(t *testing.T) {
	words := []string{"a", "ab", "abc", "abcd", "abcde"}
	for _, e := range buildEngines(t, words, 256, 10000) {
		r := e.FindLongest([]byte("a"))
		if r.MaxLength != 5 {
			t.Fatalf("MaxLength = %d, want 5", r.MaxLength)
		}
		got := chainsAsWords(e, r.Chains)
		if !containsChain(got, []string{"a", "ab", "abc", "abcd", "abcde"}) {
			t.Errorf("chains = %v, missing expected chain", got)
		}
		if len(r.Chains) != 1 {
			t.Errorf("len(Chains) = %d, want 1", len(r.Chains))
		}
	}
}

func TestScenarioS4(t *testing.T) {
	words := []string{"sail", "nails", "aliens", "salines"}
	for _, e := range buildEngines(t, words, 256, 10000) {
		r := e.FindLongest([]byte("sail"))
		if r.MaxLength != 4 {
			t.Fatalf("MaxLength = %d, want 4", r.MaxLength)
		}
		got := chainsAsWords(e, r.Chains)
		if !containsChain(got, []string{"sail", "nails", "aliens", "salines"}) {
			t.Errorf("chains = %v, missing expected chain", got)
		}
	}
}

func TestScenarioS5NoCrossStartDuplication(t *testing.T) {
	words := []string{"abc", "cab", "bac", "abcd"}
	for _, e := range buildEngines(t, words, 256, 10000) {
		r := e.FindLongest([]byte("abc"))
		if r.MaxLength != 2 {
			t.Fatalf("MaxLength = %d, want 2", r.MaxLength)
		}
		if len(r.Chains) != 1 {
			t.Fatalf("len(Chains) = %d, want 1 (got %v)", len(r.Chains), chainsAsWords(e, r.Chains))
		}
		got := chainsAsWords(e, r.Chains)
		if !containsChain(got, []string{"abc", "abcd"}) {
			t.Errorf("chains = %v, want [[abc abcd]]", got)
		}
	}
}

func TestScenarioS6DeterministicOrder(t *testing.T) {
	words := []string{"abc", "abcd", "abce", "abcf"}
	for _, e := range buildEngines(t, words, 256, 10000) {
		r := e.FindLongest([]byte("abc"))
		got := chainsAsWords(e, r.Chains)
		want := [][]string{
			{"abc", "abcd"},
			{"abc", "abce"},
			{"abc", "abcf"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("chains = %v, want %v (DFS order by ascending added letter)", got, want)
		}
	}
}

func TestEmptyStoreYieldsEmptyResult(t *testing.T) {
	for _, e := range buildEngines(t, nil, 256, 10000) {
		r := e.FindLongest([]byte("anything"))
		if len(r.Chains) != 0 {
			t.Errorf("expected empty result on empty store, got %v", r.Chains)
		}
	}
}

func TestStartPresentNoExtensionYieldsSingleton(t *testing.T) {
	for _, e := range buildEngines(t, []string{"lonely"}, 256, 10000) {
		r := e.FindLongest([]byte("lonely"))
		if r.MaxLength != 1 {
			t.Fatalf("MaxLength = %d, want 1", r.MaxLength)
		}
		got := chainsAsWords(e, r.Chains)
		if !containsChain(got, []string{"lonely"}) {
			t.Errorf("chains = %v, want [[lonely]]", got)
		}
	}
}

func TestDeterministicRepeatedInvocations(t *testing.T) {
	words := []string{"abc", "abcd", "abce", "abcf", "abcdx"}
	for _, e := range buildEngines(t, words, 256, 10000) {
		first := e.FindLongest([]byte("abc"))
		second := e.FindLongest([]byte("abc"))
		if !reflect.DeepEqual(chainsAsWords(e, first.Chains), chainsAsWords(e, second.Chains)) {
			t.Error("repeated FindLongest calls produced different results")
		}
	}
}

func TestDepthCapSilentlyDropsTheWholeBranch(t *testing.T) {
	words := []string{"a", "ab", "abc", "abcd", "abcde"}
	e := NewEngine(store.NewHeap(len(words), 256), 3, 10000)
	for _, w := range words {
		e.Add([]byte(w))
	}
	e.BuildHeap()
	r := e.FindLongest([]byte("a"))
	if r.MaxLength != 0 {
		t.Fatalf("MaxLength = %d, want 0: every node on the path has a valid extension, so the depth cap drops the branch without emitting a truncated leaf", r.MaxLength)
	}
	if len(r.Chains) != 0 {
		t.Errorf("Chains = %v, want none", chainsAsWords(e, r.Chains))
	}
}

func TestChainCapSilentlyDropsExcess(t *testing.T) {
	words := []string{"abc", "abcd", "abce", "abcf", "abcg"}
	e := NewEngine(store.NewHeap(len(words), 256), 256, 2)
	for _, w := range words {
		e.Add([]byte(w))
	}
	e.BuildHeap()
	r := e.FindLongest([]byte("abc"))
	if r.MaxLength != 2 {
		t.Fatalf("MaxLength = %d, want 2", r.MaxLength)
	}
	if len(r.Chains) != 2 {
		t.Fatalf("len(Chains) = %d, want 2 (capped)", len(r.Chains))
	}
}

func TestRenderOutputFormat(t *testing.T) {
	words := []string{"abc", "abcd"}
	e := NewEngine(store.NewHeap(len(words), 256), 256, 10000)
	for _, w := range words {
		e.Add([]byte(w))
	}
	e.BuildHeap()
	r := e.FindLongest([]byte("abc"))

	var buf strings.Builder
	Render(&buf, e.Store(), r)
	want := "Found 1 chain(s) of length 2:\nabc->abcd\n"
	if buf.String() != want {
		t.Errorf("Render = %q, want %q", buf.String(), want)
	}
}

func TestRenderNoChainsFound(t *testing.T) {
	e := NewEngine(store.NewHeap(1, 256), 256, 10000)
	e.Add([]byte("abc"))
	e.BuildHeap()
	r := e.FindLongest([]byte("missing"))

	var buf strings.Builder
	Render(&buf, e.Store(), r)
	if buf.String() != "No chains found.\n" {
		t.Errorf("Render = %q, want %q", buf.String(), "No chains found.\n")
	}
}
