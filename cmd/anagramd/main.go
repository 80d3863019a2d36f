/*
Package main implements the anagramd dictionary server and CLI application.

anagramd loads a word list, builds a derived-anagram signature index over
it, and answers "find the longest chain of words reachable from this start
word by adding one character at a time" queries — either once from the
command line, interactively, or as a long-running MessagePack IPC server.

# Usage

Run a single query and exit:

	anagramd -dict words.txt -start abck

Run the interactive debug REPL:

	anagramd -dict words.txt -c

Run as a MessagePack IPC server on stdin/stdout:

	anagramd -dict words.txt -server

# Configuration

Engine limits are controlled by a TOML config file, or by -regime, which
selects between the host profile (unbounded, heap-backed) and the embedded
profile (fixed-size, static-backed):

	[engine]
	regime = "host"
	max_word_length = 256
	max_chain_depth = 256
	max_chains = 100000
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"anagramd/internal/cli"
	"anagramd/internal/config"
	"anagramd/internal/logger"
	"anagramd/pkg/chainfind"
	"anagramd/pkg/correct"
	"anagramd/pkg/dictionary"
	"anagramd/pkg/ipc"
	"anagramd/pkg/store"
)

const (
	Version = "0.1.0"
	AppName = "anagramd"
)

// sigHandler exits cleanly on SIGINT/SIGTERM rather than leaving the
// terminal in whatever state the interactive REPL left it in.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Fprintln(os.Stderr, "\nExiting...")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Path to the word list file, one word per line")
	startWord := flag.String("start", "", "Run one find-longest query for this start word and exit")
	cliMode := flag.Bool("c", false, "Run the interactive debug REPL")
	serverMode := flag.Bool("server", false, "Run the MessagePack IPC server on stdin/stdout")
	debugMode := flag.Bool("d", false, "Enable debug logging")
	configPath := flag.String("config", "", "Path to a TOML config file")
	regime := flag.String("regime", string(defaults.Engine.Regime), "Memory regime: host or embedded")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *regime == string(config.RegimeEmbedded) {
		cfg = config.DefaultEmbeddedConfig()
	}

	if *dictPath == "" {
		log.Fatal("missing required -dict flag")
	}

	s := newStore(cfg)
	stats, err := dictionary.LoadFile(*dictPath, s)
	if err != nil {
		log.Fatalf("failed to load dictionary %s: %v", *dictPath, err)
	}
	log.Debugf("loaded %d words (%d skipped) from %s", stats.Loaded, stats.Skipped, *dictPath)

	engine := chainfind.NewEngine(s, cfg.Engine.MaxChainDepth, cfg.Engine.MaxChains)
	buildIndex(engine, cfg)

	matcher := buildMatcher(s, cfg)

	switch {
	case *cliMode:
		runCLI(engine, matcher, cfg)
	case *serverMode:
		runServer(engine)
	case *startWord != "":
		runOnce(engine, matcher, cfg, *startWord)
	default:
		log.Fatal("specify one of -start, -c, or -server")
	}
}

// newStore allocates an empty store in the configured regime, ready for
// dictionary.Load to fill.
func newStore(cfg *config.Config) store.Store {
	if cfg.Engine.Regime == config.RegimeEmbedded {
		return store.NewStatic(cfg.Engine.MaxWords, cfg.Engine.MaxWordLength)
	}
	return store.NewHeap(cfg.Engine.MaxWords, cfg.Engine.MaxWordLength)
}

// buildIndex freezes engine's store and builds the signature index in the
// regime the config selected.
func buildIndex(engine *chainfind.Engine, cfg *config.Config) {
	if cfg.Engine.Regime == config.RegimeEmbedded {
		engine.BuildStatic(cfg.Engine.HashBuckets, cfg.Engine.MaxIDsPerSig)
		return
	}
	engine.BuildHeap()
}

func buildMatcher(s store.Store, cfg *config.Config) *correct.Matcher {
	if !cfg.CLI.SuggestOnMiss {
		return nil
	}
	words := make([]string, s.Count())
	for id := 0; id < s.Count(); id++ {
		words[id] = string(s.Word(id))
	}
	return correct.NewMatcher(words)
}

func runOnce(engine *chainfind.Engine, matcher *correct.Matcher, cfg *config.Config, start string) {
	result := engine.FindLongest([]byte(start))
	chainfind.Render(os.Stdout, engine.Store(), result)
	if len(result.Chains) == 0 && matcher != nil {
		if suggestions := matcher.Suggest(start, cfg.CLI.SuggestLimit); len(suggestions) > 0 {
			log.Infof("Did you mean one of: %v?", suggestions)
		}
	}
}

func runCLI(engine *chainfind.Engine, matcher *correct.Matcher, cfg *config.Config) {
	log.SetReportTimestamp(false)
	handler := cli.NewInputHandler(engine, matcher, cfg.CLI.SuggestOnMiss, cfg.CLI.SuggestLimit)
	if err := handler.Start(os.Stdin); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

func runServer(engine *chainfind.Engine) {
	srvLog := logger.Server(AppName)
	srvLog.Debug("spawning IPC server")
	srv := ipc.New(engine, os.Stdin, os.Stdout)
	if err := srv.Serve(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})
	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ anagramd ] finds the longest derived-anagram word chains")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
}
