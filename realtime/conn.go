// Package realtime is the client end of the backend's websocket hub:
// one connection per surface, joined to a logical room, dispatching
// pushed events to registered handlers. Connection trouble is never
// fatal; reconnection is automatic and the poll timer covers gaps.
package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/restaurant-client/utils"
)

// Handler consumes one pushed event's payload.
type Handler func(data json.RawMessage)

// Conn maintains one websocket connection to the backend. After
// Start it keeps reconnecting with a fixed delay up to MaxRetries
// consecutive failures; a successful connect resets the counter.
type Conn struct {
	URL        string
	Room       Room
	MaxRetries int
	RetryDelay time.Duration

	dialer *websocket.Dialer

	mu       sync.Mutex
	handlers map[string][]Handler
	ws       *websocket.Conn
	closed   bool
}

func NewConn(url string, room Room, maxRetries int, retryDelay time.Duration) *Conn {
	return &Conn{
		URL:        url,
		Room:       room,
		MaxRetries: maxRetries,
		RetryDelay: retryDelay,
		dialer:     websocket.DefaultDialer,
		handlers:   make(map[string][]Handler),
	}
}

// On registers a handler for an event. Must be called before Start;
// registrations after Close are dropped.
func (c *Conn) On(event string, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.handlers[event] = append(c.handlers[event], h)
}

// Start runs the connect/read loop in the background.
func (c *Conn) Start() {
	go c.run()
}

func (c *Conn) run() {
	attempts := 0
	for {
		if c.isClosed() {
			return
		}
		ws, _, err := c.dialer.Dial(c.URL, nil)
		if err != nil {
			attempts++
			utils.ErrorLogger.Printf("realtime: connect attempt %d failed: %v", attempts, err)
			if attempts >= c.MaxRetries {
				utils.ErrorLogger.Printf("realtime: giving up after %d attempts, poll remains active", attempts)
				return
			}
			time.Sleep(c.RetryDelay)
			continue
		}

		if !c.adopt(ws) {
			ws.Close()
			return
		}
		attempts = 0

		if err := c.join(ws); err != nil {
			utils.ErrorLogger.Printf("realtime: join room failed: %v", err)
			ws.Close()
			continue
		}

		c.readLoop(ws)
		if c.isClosed() {
			return
		}
		// Read loop ended on a transport error; fall through to
		// reconnect after the fixed delay.
		time.Sleep(c.RetryDelay)
	}
}

// adopt publishes the live connection so Close can reach it. Returns
// false when the conn was closed while dialing.
func (c *Conn) adopt(ws *websocket.Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.ws = ws
	return true
}

func (c *Conn) join(ws *websocket.Conn) error {
	raw, err := json.Marshal(c.Room)
	if err != nil {
		return err
	}
	return ws.WriteJSON(Message{Event: eventJoinRoom, Data: raw})
}

func (c *Conn) readLoop(ws *websocket.Conn) {
	for {
		var msg Message
		if err := ws.ReadJSON(&msg); err != nil {
			if !c.isClosed() {
				utils.ErrorLogger.Printf("realtime: read: %v", err)
			}
			return
		}
		c.dispatch(msg)
	}
}

func (c *Conn) dispatch(msg Message) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	handlers := make([]Handler, len(c.handlers[msg.Event]))
	copy(handlers, c.handlers[msg.Event])
	c.mu.Unlock()

	for _, h := range handlers {
		h(msg.Data)
	}
}

// Close tears the connection down: the read loop stops, reconnection
// stops, handlers are dropped and no buffered event fires afterwards.
func (c *Conn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	ws := c.ws
	c.ws = nil
	c.handlers = make(map[string][]Handler)
	c.mu.Unlock()

	if ws != nil {
		ws.Close()
	}
}

func (c *Conn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
