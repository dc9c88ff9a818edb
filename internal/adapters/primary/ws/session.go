// Package ws serves the live dashboard over WebSocket. Each connection is a
// session holding its own widget selection; widget events read from the
// connection are dispatched and the recomputed charts are written back.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"launch-dashboard-service/internal/adapters/primary/http/dto"
	"launch-dashboard-service/internal/core/services"
)

const (
	// writeTimeout is the deadline for a single write to a viewer.
	writeTimeout = 10 * time.Second

	// pongWait is how long to wait for a pong before treating the
	// connection as dead.
	pongWait = 60 * time.Second

	// pingPeriod must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// sendBufSize is the per-session outgoing message buffer depth.
	sendBufSize = 16

	maxEventSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 8192,
	// Origin checks belong to the reverse proxy in front of the service.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Observer is told about session lifecycle and events rejected before they
// reach the dispatcher.
type Observer interface {
	SessionOpened()
	SessionClosed()
	ObserveRejected(signal string)
}

type nopObserver struct{}

func (nopObserver) SessionOpened() {}
func (nopObserver) SessionClosed() {}
func (nopObserver) ObserveRejected(string) {}

// Dispatcher recomputes charts for a session's selection.
type Dispatcher interface {
	InitialSelection() services.Selection
	Render(sel services.Selection) ([]services.Update, error)
	Apply(sel *services.Selection, ev services.Event) ([]services.Update, error)
}

// Server upgrades connections into dashboard sessions.
type Server struct {
	dashboard Dispatcher
	observer  Observer

	mu       sync.RWMutex
	sessions map[*session]struct{}
}

// session is one connected viewer. Only its read loop touches selection.
type session struct {
	id        string
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	selection services.Selection
}

// NewServer creates a Server dispatching through dashboard. observer may be nil.
func NewServer(dashboard Dispatcher, observer Observer) *Server {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Server{
		dashboard: dashboard,
		observer:  observer,
		sessions:  make(map[*session]struct{}),
	}
}

// ServeHTTP upgrades the connection, renders both charts for the initial
// selection and then serves widget events until the connection closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader has already written the error response.
		return
	}

	sess := &session{
		id:        uuid.New().String(),
		conn:      conn,
		send:      make(chan []byte, sendBufSize),
		done:      make(chan struct{}),
		selection: s.dashboard.InitialSelection(),
	}
	s.register(sess)
	defer s.unregister(sess)

	logger := log.WithField("session", sess.id)
	logger.Debug("dashboard session opened")

	updates, err := s.dashboard.Render(sess.selection)
	if err != nil {
		logger.WithError(err).Error("initial render failed")
		conn.WriteControl(websocket.CloseMessage, //nolint:errcheck
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "render failed"),
			time.Now().Add(writeTimeout))
		conn.Close()
		return
	}
	for _, u := range updates {
		sess.enqueue(dto.ToUpdateMessage(sess.id, u))
	}

	go sess.writePump()
	s.readPump(sess) // blocks until connection closes

	logger.Debug("dashboard session closed")
}

// Count returns the number of open sessions.
func (s *Server) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close ends every open session.
func (s *Server) Close() {
	s.mu.RLock()
	targets := make([]*session, 0, len(s.sessions))
	for sess := range s.sessions {
		targets = append(targets, sess)
	}
	s.mu.RUnlock()

	for _, sess := range targets {
		sess.close()
	}
}

// --- internal ---------------------------------------------------------------

func (s *Server) register(sess *session) {
	s.mu.Lock()
	s.sessions[sess] = struct{}{}
	s.mu.Unlock()
	s.observer.SessionOpened()
}

func (s *Server) unregister(sess *session) {
	s.mu.Lock()
	_, ok := s.sessions[sess]
	delete(s.sessions, sess)
	s.mu.Unlock()

	sess.close()
	if ok {
		s.observer.SessionClosed()
	}
}

// readPump decodes widget events and answers each with the updates it
// triggers, or with an error message leaving the selection unchanged.
func (s *Server) readPump(sess *session) {
	defer sess.conn.Close()
	sess.conn.SetReadLimit(maxEventSize)
	sess.conn.SetReadDeadline(time.Now().Add(pongWait))
	sess.conn.SetPongHandler(func(string) error {
		sess.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg dto.EventMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.observer.ObserveRejected("")
			sess.enqueue(dto.ErrorMessage{Session: sess.id, Error: "malformed event: " + err.Error()})
			continue
		}

		ev, err := dto.ToEvent(msg)
		if err != nil {
			s.observer.ObserveRejected(msg.Signal)
			sess.enqueue(dto.ErrorMessage{Session: sess.id, Signal: msg.Signal, Error: err.Error()})
			continue
		}

		updates, err := s.dashboard.Apply(&sess.selection, ev)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"session": sess.id,
				"signal":  msg.Signal,
			}).Debug("dashboard event rejected")
			sess.enqueue(dto.ErrorMessage{Session: sess.id, Signal: msg.Signal, Error: err.Error()})
			continue
		}
		for _, u := range updates {
			sess.enqueue(dto.ToUpdateMessage(sess.id, u))
		}
	}
}

// enqueue queues v for the write pump. A session whose buffer is full is
// too slow to follow the dashboard and is closed.
func (sess *session) enqueue(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).WithField("session", sess.id).Error("encode message failed")
		return
	}
	select {
	case <-sess.done:
	case sess.send <- data:
	default:
		sess.close()
	}
}

func (sess *session) close() {
	sess.closeOnce.Do(func() { close(sess.done) })
}

// writePump drains the send channel to the connection and sends periodic
// pings. Runs in its own goroutine per session.
func (sess *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		sess.conn.Close()
	}()

	for {
		select {
		case msg := <-sess.send:
			sess.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := sess.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			sess.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := sess.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-sess.done:
			sess.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			sess.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")) //nolint:errcheck
			return
		}
	}
}
