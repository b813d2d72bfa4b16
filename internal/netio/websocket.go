// Package netio gives xb scripts a WebSocket client, wired to
// gorilla/websocket and grounded on sentra's internal/network/websocket.go
// connection-registry design (message reader goroutine feeding a buffered
// channel, rather than blocking the script's single evaluation goroutine on
// every read).
package netio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type conn struct {
	ws     *websocket.Conn
	mu     sync.Mutex
	closed bool
	inbox  chan []byte
}

// Manager owns every open socket a script has asked for, keyed by the
// handle name the script chose.
type Manager struct {
	mu    sync.RWMutex
	conns map[string]*conn
}

func NewManager() *Manager {
	return &Manager{conns: make(map[string]*conn)}
}

func (m *Manager) Connect(handle, url string) error {
	m.mu.Lock()
	if _, exists := m.conns[handle]; exists {
		m.mu.Unlock()
		return fmt.Errorf("connection %q already exists", handle)
	}
	m.mu.Unlock()

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	ws, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("dial %q: %w", url, err)
	}

	c := &conn{ws: ws, inbox: make(chan []byte, 64)}
	go c.readLoop()

	m.mu.Lock()
	m.conns[handle] = c
	m.mu.Unlock()
	return nil
}

func (c *conn) readLoop() {
	defer close(c.inbox)
	for {
		_, msg, err := c.ws.ReadMessage()
		if err != nil {
			c.mu.Lock()
			c.closed = true
			c.mu.Unlock()
			return
		}
		select {
		case c.inbox <- msg:
		default:
			<-c.inbox
			c.inbox <- msg
		}
	}
}

func (m *Manager) get(handle string) (*conn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.conns[handle]
	if !ok {
		return nil, fmt.Errorf("no open connection %q", handle)
	}
	return c, nil
}

func (m *Manager) Send(handle, message string) error {
	c, err := m.get(handle)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("connection %q is closed", handle)
	}
	return c.ws.WriteMessage(websocket.TextMessage, []byte(message))
}

func (m *Manager) Recv(handle string, timeout time.Duration) (string, error) {
	c, err := m.get(handle)
	if err != nil {
		return "", err
	}
	select {
	case msg, ok := <-c.inbox:
		if !ok {
			return "", fmt.Errorf("connection %q closed", handle)
		}
		return string(msg), nil
	case <-time.After(timeout):
		return "", fmt.Errorf("receive on %q timed out", handle)
	}
}

func (m *Manager) Close(handle string) error {
	m.mu.Lock()
	c, ok := m.conns[handle]
	if ok {
		delete(m.conns, handle)
	}
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("no open connection %q", handle)
	}
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.ws.Close()
}
