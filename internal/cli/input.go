// Package cli implements the interactive REPL for debugging and manually
// exploring a loaded dictionary: type a start word, see its longest
// derived-anagram chains.
package cli

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"anagramd/pkg/chainfind"
	"anagramd/pkg/correct"
)

var wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

// InputHandler drives the interactive find-longest loop: read a start
// word, run the search, print the result, repeat.
type InputHandler struct {
	engine        *chainfind.Engine
	matcher       *correct.Matcher
	suggestOnMiss bool
	suggestLimit  int
	requestCount  int
}

// NewInputHandler wraps engine for interactive use. matcher may be nil,
// in which case a miss is reported with no "did you mean" suggestion.
func NewInputHandler(engine *chainfind.Engine, matcher *correct.Matcher, suggestOnMiss bool, suggestLimit int) *InputHandler {
	return &InputHandler{
		engine:        engine,
		matcher:       matcher,
		suggestOnMiss: suggestOnMiss,
		suggestLimit:  suggestLimit,
	}
}

// Start begins the read-eval-print loop against r, logging output through
// charmbracelet/log. It returns when r is exhausted or a read error other
// than clean EOF occurs.
func (h *InputHandler) Start(r io.Reader) error {
	log.Print("anagramd interactive [debug]")
	log.Print("type a start word and press Enter (Ctrl+C to exit):")

	reader := bufio.NewReader(r)
	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		h.handleInput(word)
	}
}

func (h *InputHandler) handleInput(word string) {
	h.requestCount++

	start := time.Now()
	result := h.engine.FindLongest([]byte(word))
	elapsed := time.Since(start)

	if len(result.Chains) == 0 {
		log.Warnf("No chains found for start word %q (%v)", word, elapsed)
		h.suggest(word)
		return
	}

	log.Printf("Found %d chain(s) of length %d for %q (%v):", len(result.Chains), result.MaxLength, word, elapsed)
	for i, chain := range result.Chains {
		log.Printf("%2d. %s", i+1, renderChain(h.engine, chain))
	}
}

func (h *InputHandler) suggest(word string) {
	if !h.suggestOnMiss || h.matcher == nil {
		return
	}
	suggestions := h.matcher.Suggest(word, h.suggestLimit)
	if len(suggestions) == 0 {
		return
	}
	log.Infof("Did you mean: %s?", strings.Join(suggestions, ", "))
}

func renderChain(e *chainfind.Engine, chain []int) string {
	words := make([]string, len(chain))
	for i, id := range chain {
		words[i] = wordStyle.Render(string(e.Store().Word(id)))
	}
	return strings.Join(words, " -> ")
}
