package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/databonnd/site/internal/animation"
	"github.com/databonnd/site/internal/rendering"
	"github.com/databonnd/site/internal/viewport"
)

const (
	maxMessageSize = 512
	writeWait      = 10 * time.Second
)

// clientMessage is sent by the browser on load and on every resize.
type clientMessage struct {
	Type  string  `json:"type"`
	Width float64 `json:"width"`
}

// ModeMessage is pushed to the browser on mount and on every mode change.
type ModeMessage struct {
	Type string `json:"type"`
	Mode string `json:"mode"`
	SVG  string `json:"svg"`
}

// Session is one browser's viewport channel. It owns a window fed by the
// browser's resize messages and the Classifier mounted on it.
type Session struct {
	ID         string
	conn       *websocket.Conn
	window     *viewport.EventWindow
	classifier *viewport.Classifier
	src        animation.Source
}

func newSession(conn *websocket.Conn, src animation.Source) *Session {
	return &Session{
		ID:         uuid.NewString(),
		conn:       conn,
		window:     viewport.NewEventWindow(0),
		classifier: viewport.NewClassifier(),
		src:        src,
	}
}

// run reads resize messages until the connection closes. The read loop is
// the only writer to the window, so listener dispatch and pushes are
// serialised.
func (sess *Session) run() {
	sess.conn.SetReadLimit(maxMessageSize)

	var unmount, unsubscribe func()
	defer func() {
		if unsubscribe != nil {
			unsubscribe()
		}
		if unmount != nil {
			unmount()
		}
	}()

	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] %s read error: %v", sess.ID, err)
			}
			return
		}

		width, err := parseResize(data)
		if err != nil {
			log.Printf("[ws] %s ignoring message: %v", sess.ID, err)
			continue
		}

		if unmount == nil {
			sess.window.Resize(width)
			unmount = sess.classifier.Mount(sess.window)
			if err := sess.push(sess.classifier.Mode()); err != nil {
				log.Printf("[ws] %s initial push failed: %v", sess.ID, err)
				return
			}
			unsubscribe = sess.classifier.Subscribe(func(mode viewport.Mode) {
				if err := sess.push(mode); err != nil {
					log.Printf("[ws] %s push failed: %v", sess.ID, err)
				}
			})
			continue
		}
		sess.window.Resize(width)
	}
}

// push renders the background for mode and sends it to the browser.
func (sess *Session) push(mode viewport.Mode) error {
	svg, err := rendering.CanvasString(rendering.NewBackground(mode, sess.src))
	if err != nil {
		return err
	}
	_ = sess.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return sess.conn.WriteJSON(ModeMessage{Type: "mode", Mode: mode.String(), SVG: svg})
}

// close sends a going-away frame and closes the connection. WriteControl
// and Close may be called concurrently with the read loop.
func (sess *Session) close(reason string) {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, reason)
	_ = sess.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	_ = sess.conn.Close()
}

func parseResize(data []byte) (int, error) {
	var msg clientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return 0, fmt.Errorf("malformed JSON: %w", err)
	}
	if msg.Type != "resize" {
		return 0, fmt.Errorf("unknown message type %q", msg.Type)
	}
	width, ok := viewport.WidthFromFloat(msg.Width)
	if !ok {
		return 0, fmt.Errorf("invalid width %v", msg.Width)
	}
	return width, nil
}

// SessionManager tracks the open viewport sessions.
type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewSessionManager creates a new manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Add registers a session.
func (sm *SessionManager) Add(sess *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[sess.ID] = sess
	log.Printf("[ws] session %s opened from %s", sess.ID, sess.conn.RemoteAddr())
}

// Remove forgets a session.
func (sm *SessionManager) Remove(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if _, ok := sm.sessions[id]; ok {
		delete(sm.sessions, id)
		log.Printf("[ws] session %s closed", id)
	}
}

// Count returns the number of open sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// CloseAll closes every open session.
func (sm *SessionManager) CloseAll() {
	sm.mu.RLock()
	open := make([]*Session, 0, len(sm.sessions))
	for _, sess := range sm.sessions {
		open = append(open, sess)
	}
	sm.mu.RUnlock()

	for _, sess := range open {
		sess.close("server shutting down")
	}
}

// handleViewportSocket upgrades the request and runs a viewport session
// until the browser goes away.
func (s *Server) handleViewportSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}

	sess := newSession(conn, s.source())
	s.sessions.Add(sess)
	defer s.sessions.Remove(sess.ID)
	defer conn.Close()

	sess.run()
}
