// Package hud serves game state over HTTP and websocket for external dashboards
// Handlers only read the store and enqueue commands; the main loop applies them
package hud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/core"
	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/input"
	"github.com/lixenwraith/undead/status"
)

// Server is the HUD HTTP surface
type Server struct {
	game     *engine.GameContext
	commands chan<- input.Intent
	interval time.Duration

	router   *mux.Router
	upgrader websocket.Upgrader
	http     *http.Server
	listener net.Listener

	clients *atomic.Int64
	wg      sync.WaitGroup // websocket handlers
	done    chan struct{}
	once    sync.Once
}

// NewServer creates a HUD server; commands receives validated action triggers
func NewServer(game *engine.GameContext, addr string, pushInterval time.Duration, commands chan<- input.Intent) *Server {
	if pushInterval <= 0 {
		pushInterval = constants.HUDPushInterval
	}

	s := &Server{
		game:     game,
		commands: commands,
		interval: pushInterval,
		router:   mux.NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Local dashboards on other ports are expected
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: game.Status.Ints.Get(status.KeyHUDClients),
		done:    make(chan struct{}),
	}

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	s.router.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)
	s.router.HandleFunc("/actions/{action}", s.handleAction).Methods(http.MethodPost)
	s.router.HandleFunc("/ws", s.handleWS)

	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler exposes the routes, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the listen address and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("hud listen: %w", err)
	}
	s.listener = ln
	log.Printf("HUD: listening on %s", ln.Addr())

	core.Go(func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HUD: serve: %v", err)
		}
	})
	return nil
}

// Addr returns the bound address once started
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.http.Addr
	}
	return s.listener.Addr().String()
}

// Shutdown stops accepting requests and closes websocket streams
func (s *Server) Shutdown(ctx context.Context) error {
	s.once.Do(func() { close(s.done) })
	err := s.http.Shutdown(ctx)

	// Hijacked websocket connections are not tracked by http.Server
	waited := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}
	log.Printf("HUD: stopped")
	return err
}

// ===== HANDLERS =====

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.game.State.Snapshot(s.game.Now()))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.game.Status.Snapshot())
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["action"]
	intent, ok := input.ParseIntent(name)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown action %q", name), http.StatusNotFound)
		return
	}

	select {
	case s.commands <- intent:
		writeJSON(w, http.StatusAccepted, map[string]string{"action": intent.String()})
	default:
		http.Error(w, "command queue full", http.StatusServiceUnavailable)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("HUD: upgrade: %v", err)
		return
	}

	s.wg.Add(1)
	defer s.wg.Done()
	defer conn.Close()

	id := uuid.NewString()
	s.clients.Add(1)
	defer s.clients.Add(-1)
	log.Printf("HUD: client %s connected", id)

	// Reader only detects the peer going away
	gone := make(chan struct{})
	conn.SetReadLimit(1024)
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.push(conn); err != nil {
			log.Printf("HUD: client %s write: %v", id, err)
			return
		}
		select {
		case <-ticker.C:
		case <-gone:
			log.Printf("HUD: client %s disconnected", id)
			return
		case <-s.done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
				time.Now().Add(constants.HUDWriteTimeout))
			return
		}
	}
}

func (s *Server) push(conn *websocket.Conn) error {
	_ = conn.SetWriteDeadline(time.Now().Add(constants.HUDWriteTimeout))
	return conn.WriteJSON(s.game.State.Snapshot(s.game.Now()))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("HUD: encode response: %v", err)
	}
}
