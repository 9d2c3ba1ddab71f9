// Package remote serves game sessions over websockets. Every connection gets
// its own grid and game; the server ticks it and pushes frames after each
// change while the client sends input.
package remote

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"gridgames/internal/app"
	"gridgames/internal/core"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message is sent by clients.
type Message struct {
	Type    string `json:"type"` // select, start, key, command, edit
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Key     string `json:"key,omitempty"`
	Command string `json:"command,omitempty"`
	Value   string `json:"value,omitempty"`
}

// Update is pushed to clients whenever their grid may have changed.
type Update struct {
	Client string `json:"client"`
	app.Frame
}

// Server hands out one session per websocket connection.
type Server struct {
	defaults core.GridConfig
	tps      int
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[uuid.UUID]*app.Session
}

// NewServer returns a server whose sessions default to cfg and tick at tps.
// URL query parameters override cfg per connection.
func NewServer(cfg core.GridConfig, tps int) *Server {
	if tps <= 0 {
		tps = 4
	}
	return &Server{
		defaults: cfg,
		tps:      tps,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		clients:  make(map[uuid.UUID]*app.Session),
	}
}

// Handler returns the HTTP routes served by s.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

// Clients reports how many connections are open.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) sessionConfig(r *http.Request) core.GridConfig {
	values := s.defaults.Values()
	for key, v := range r.URL.Query() {
		if len(v) > 0 {
			values[key] = v[0]
		}
	}
	return core.FromMap(values)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	cfg := s.sessionConfig(r)
	session, err := app.NewSession(cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	id := uuid.New()
	s.mu.Lock()
	s.clients[id] = session
	s.mu.Unlock()
	log.Printf("client %s joined: %s %dx%d", id, cfg.Game, cfg.Rows, cfg.Columns)

	ctx, cancel := context.WithCancel(r.Context())
	defer func() {
		cancel()
		s.mu.Lock()
		delete(s.clients, id)
		s.mu.Unlock()
		conn.Close()
		log.Printf("client %s left", id)
	}()

	dirty := make(chan struct{}, 1)
	markDirty := func() {
		select {
		case dirty <- struct{}{}:
		default:
		}
	}
	markDirty()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.pump(ctx, id, conn, session, dirty)
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		apply(session, msg)
		markDirty()
	}
	cancel()
	wg.Wait()
}

// pump owns all writes to conn: it ticks the session and sends a frame
// whenever a tick or an input changed something.
func (s *Server) pump(ctx context.Context, id uuid.UUID, conn *websocket.Conn, session *app.Session, dirty <-chan struct{}) {
	ticker := time.NewTicker(time.Second / time.Duration(s.tps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res := session.Tick(ctx)
			if res.Ended() {
				log.Printf("client %s: %s", id, res.Outcome)
			}
			if !res.Repaint() {
				continue
			}
		case <-dirty:
		}
		if err := conn.WriteJSON(Update{Client: id.String(), Frame: session.Frame()}); err != nil {
			return
		}
	}
}

func apply(session *app.Session, msg Message) {
	loc := core.Loc(msg.Row, msg.Col)
	switch msg.Type {
	case "select":
		session.Select(loc)
	case "start":
		session.Start()
	case "key":
		for _, r := range msg.Key {
			session.Key(r)
		}
	case "command":
		if cmd, ok := core.ParseCommand(msg.Command); ok {
			session.Command(cmd)
		}
	case "edit":
		session.Edit(loc, msg.Value)
	}
}
