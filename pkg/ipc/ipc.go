// Package ipc implements a msgpack IPC server so a long-running anagramd
// process can serve find_longest requests without paying dictionary-load
// cost per query. One request corresponds to one msgpack-encoded value on
// stdin; one response follows immediately on stdout. Because msgpack
// values are self-delimiting, requests need no line framing.
package ipc

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"anagramd/pkg/chainfind"
)

// FindRequest is one find_longest query.
type FindRequest struct {
	ID    string `msgpack:"id"`
	Start string `msgpack:"start"`
}

// FindResponse answers a FindRequest. Chains holds one []string per chain,
// each already rendered as word sequences so the client never needs its
// own copy of the dictionary to interpret ids.
type FindResponse struct {
	ID          string     `msgpack:"id"`
	MaxLength   int        `msgpack:"max_length"`
	Chains      [][]string `msgpack:"chains"`
	TimeTakenUS int64      `msgpack:"time_us"`
	Error       string     `msgpack:"error,omitempty"`
}

// Server serves FindRequests against a single, already-built Engine. The
// engine must already be in chainfind.StateReady; Server never mutates
// the store.
type Server struct {
	engine *chainfind.Engine
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
}

// New wraps engine with an IPC server reading requests from r and writing
// responses to w. Typical callers pass os.Stdin and os.Stdout.
func New(engine *chainfind.Engine, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine: engine,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
	}
}

// Serve decodes requests one at a time until r is exhausted or a decode
// fails for a reason other than clean EOF. Each request is answered before
// the next is read, so requests are implicitly serialized: the engine
// needs no locking of its own (see chainfind.Engine's own concurrency
// note).
func (s *Server) Serve() error {
	log.Debug("ipc: server starting")
	for {
		var req FindRequest
		if err := s.dec.Decode(&req); err != nil {
			if err == io.EOF {
				log.Debug("ipc: stdin closed, server exiting")
				return nil
			}
			return fmt.Errorf("ipc: decode request: %w", err)
		}
		resp := s.handle(req)
		if err := s.enc.Encode(resp); err != nil {
			return fmt.Errorf("ipc: encode response: %w", err)
		}
	}
}

func (s *Server) handle(req FindRequest) FindResponse {
	if req.Start == "" {
		return FindResponse{ID: req.ID, Error: "start word is empty"}
	}

	start := time.Now()
	result := s.engine.FindLongest([]byte(req.Start))
	elapsed := time.Since(start)

	chains := make([][]string, len(result.Chains))
	for i, chain := range result.Chains {
		words := make([]string, len(chain))
		for j, id := range chain {
			words[j] = string(s.engine.Store().Word(id))
		}
		chains[i] = words
	}

	return FindResponse{
		ID:          req.ID,
		MaxLength:   result.MaxLength,
		Chains:      chains,
		TimeTakenUS: elapsed.Microseconds(),
	}
}
