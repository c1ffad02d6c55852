package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgSubmissionCompleted MessageType = "submission.completed"
	MsgScoreboardUpdate    MessageType = "scoreboard.update"
	MsgError               MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for admin dashboards. Admins subscribe
// per assessment and receive live submission events.
type Hub struct {
	// assessmentID -> set of admin connections
	adminConns map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	AssessmentID string
	UserID       string
	Send         chan []byte
	Hub          *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	AssessmentID string
	Message      *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		adminConns: make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.adminConns[conn.AssessmentID] == nil {
				h.adminConns[conn.AssessmentID] = make(map[*Connection]bool)
			}
			h.adminConns[conn.AssessmentID][conn] = true
			h.mu.Unlock()
			log.Printf("Admin %s subscribed to assessment %s", conn.UserID, conn.AssessmentID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.adminConns[conn.AssessmentID]; ok {
				if conns[conn] {
					delete(conns, conn)
					close(conn.Send)
					log.Printf("Admin %s unsubscribed from assessment %s", conn.UserID, conn.AssessmentID)
				}
				if len(conns) == 0 {
					delete(h.adminConns, conn.AssessmentID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.adminConns[msg.AssessmentID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToAdmins sends a message to every admin watching an assessment
// (implements service.Broadcaster)
func (h *Hub) BroadcastToAdmins(assessmentID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		AssessmentID: assessmentID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
