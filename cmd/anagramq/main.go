// Command anagramq is the minimal, no-flags form of the find-longest
// query: two positional arguments, no config file, no server mode. It
// mirrors the original PC build's invocation contract exactly.
//
//	anagramq <dictionary_file> <starting_word>
package main

import (
	"fmt"
	"os"
	"time"

	"anagramd/pkg/chainfind"
	"anagramd/pkg/dictionary"
	"anagramd/pkg/store"
)

const (
	initialCapacity = 1024
	maxWordLength   = 256
	maxChainDepth   = 256
	maxChains       = 1_000_000
)

func main() {
	if len(os.Args) != 3 {
		printUsage()
		os.Exit(1)
	}
	dictFile := os.Args[1]
	startWord := os.Args[2]

	totalStart := time.Now()

	fmt.Printf("Loading dictionary: %s\n", dictFile)
	loadStart := time.Now()

	s := store.NewHeap(initialCapacity, maxWordLength)
	stats, err := dictionary.LoadFile(dictFile, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Dictionary loaded [ %v ]\n", time.Since(loadStart))
	fmt.Printf("Words loaded: %d\n", stats.Loaded)

	if s.FindID([]byte(startWord)) == store.NoID {
		fmt.Fprintf(os.Stderr, "Error: Starting word '%s' not found in dictionary\n", startWord)
		os.Exit(1)
	}

	fmt.Println("\nBuilding index...")
	indexStart := time.Now()
	engine := chainfind.NewEngine(s, maxChainDepth, maxChains)
	engine.BuildHeap()
	fmt.Printf("Index built [ %v ]\n", time.Since(indexStart))

	fmt.Printf("\nSearching for longest chains starting from '%s'...\n", startWord)
	searchStart := time.Now()
	result := engine.FindLongest([]byte(startWord))
	fmt.Printf("Search completed [ %v ]\n", time.Since(searchStart))

	fmt.Println()
	chainfind.Render(os.Stdout, s, result)

	fmt.Printf("\nTotal execution time: [ %v ]\n", time.Since(totalStart))
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <dictionary_file> <starting_word>\n", os.Args[0])
}
