// Package diag provides an optional, headless HTTP introspection endpoint
// for a running engine: current simulated time, pending-event count, and a
// pprof-format profile of how many events each source has scheduled so far. It
// never touches the engine's control flow — everything it reports is read
// through accessors already exposed by des.Engine, wired in with a
// des.Hook so it stays in sync without polling engine internals directly.
package diag

import (
	"encoding/json"
	"net"
	"net/http"
	"sort"
	"sync"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"

	"github.com/dailypips/dcsxx-des/des"
)

// Server exposes a small read-only HTTP API over a single engine. It is
// safe to construct and Start even before the engine's Run call, but every
// handler reads engine state on the calling goroutine, so a caller that
// also drives the engine from a request handler would violate the engine's
// single-threaded contract; Server never does this itself.
type Server struct {
	engine *des.Engine

	mu     sync.Mutex
	counts map[string]int64

	listener net.Listener
	server   *http.Server
}

// NewServer creates a Server over engine and subscribes a hook that tallies
// events per event source name as Engine.Schedule inserts them. Canceled
// events stay counted, and events the engine fires immediately without
// scheduling them (begin/end of simulation, system initialization and
// finalization) are not counted.
func NewServer(engine *des.Engine) *Server {
	s := &Server{
		engine: engine,
		counts: make(map[string]int64),
	}

	engine.AcceptHook(des.HookFunc(func(ctx des.HookCtx) {
		if ctx.Pos != des.HookPosEventScheduled {
			return
		}

		evt, ok := ctx.Item.(*des.Event)
		if !ok || evt.Source == nil {
			return
		}

		s.mu.Lock()
		s.counts[evt.Source.Name()]++
		s.mu.Unlock()
	}))

	return s
}

// ListenAndServe starts the HTTP server on addr, blocking until it stops or
// errors. Pass "" or ":0" to bind an ephemeral port and read it back via
// Addr after the listener is up.
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = ln

	s.server = &http.Server{Handler: s.router()}

	return s.server.Serve(ln)
}

// Addr returns the address the server is bound to. Only meaningful after
// ListenAndServe has started listening.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// Close shuts the server down.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	return s.server.Close()
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/now", s.handleNow)
	r.HandleFunc("/api/pending", s.handlePending)
	r.HandleFunc("/api/sources", s.handleSources)
	r.HandleFunc("/api/profile", s.handleProfile)

	return r
}

type nowResponse struct {
	SimulatedTime float64 `json:"simulated_time"`
	LastEventTime float64 `json:"last_event_time"`
	EndOfSim      bool    `json:"end_of_simulation"`
}

func (s *Server) handleNow(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, nowResponse{
		SimulatedTime: float64(s.engine.SimulatedTime()),
		LastEventTime: float64(s.engine.LastEventTime()),
		EndOfSim:      s.engine.EndOfSimulation(),
	})
}

type pendingResponse struct {
	PendingEvents int `json:"pending_events"`
}

func (s *Server) handlePending(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, pendingResponse{PendingEvents: s.engine.PendingEvents()})
}

func (s *Server) handleSources(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	snapshot := make(map[string]int64, len(s.counts))
	for name, n := range s.counts {
		snapshot[name] = n
	}
	s.mu.Unlock()

	writeJSON(w, snapshot)
}

// handleProfile exports the per-source scheduling tally as a pprof-format
// profile, one sample per source with a single "events" value type, so it
// can be inspected with `go tool pprof`.
func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	names := make([]string, 0, len(s.counts))
	for name := range s.counts {
		names = append(names, name)
	}
	sort.Strings(names)

	prof := &profile.Profile{
		SampleType: []*profile.ValueType{{Type: "events", Unit: "count"}},
	}

	locByName := make(map[string]*profile.Location, len(names))
	for i, name := range names {
		fn := &profile.Function{ID: uint64(i + 1), Name: name}
		loc := &profile.Location{ID: uint64(i + 1), Line: []profile.Line{{Function: fn}}}
		prof.Function = append(prof.Function, fn)
		prof.Location = append(prof.Location, loc)
		locByName[name] = loc

		prof.Sample = append(prof.Sample, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{s.counts[name]},
		})
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/octet-stream")
	if err := prof.Write(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
