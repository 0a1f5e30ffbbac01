// Package network moves protocol lines between the client and its servers:
// a websocket connection for the remote server and an in-process pipe for
// practice games. It never interprets the lines it carries.
package network

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hexhaven/hexhaven/internal/apperrors"
	"github.com/hexhaven/hexhaven/internal/journal"
	"github.com/hexhaven/hexhaven/internal/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	handshakeTimeout = 10 * time.Second
)

// Conn is the websocket connection to the remote game server. Inbound lines
// are delivered one at a time on the read goroutine through OnLine, so
// message handling is naturally sequential per connection.
type Conn struct {
	ServerURL string

	// OnLine receives each inbound protocol line. Set before Connect.
	OnLine func(line string)
	// OnError is called for unexpected read failures.
	OnError func(err error)
	// OnClose is called once when the connection is gone.
	OnClose func()

	conn *websocket.Conn
	send chan string
	done chan struct{}
	jrnl *journal.Journal

	mu     sync.Mutex
	closed bool
}

// NewConn prepares a connection to serverURL. jrnl may be nil to disable
// journaling.
func NewConn(serverURL string, jrnl *journal.Journal) *Conn {
	return &Conn{
		ServerURL: serverURL,
		send:      make(chan string, 256),
		done:      make(chan struct{}),
		jrnl:      jrnl,
	}
}

// Connect dials the server and starts the read and write goroutines.
func (c *Conn) Connect() error {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.Dial(c.ServerURL, nil)
	if err != nil {
		return err
	}
	c.conn = conn

	go c.readPump()
	go c.writePump()
	return nil
}

// Send queues one outbound line.
func (c *Conn) Send(line string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return apperrors.ErrNotConnected
	}
	c.mu.Unlock()

	c.jrnl.Record(journal.Outbound, line)
	select {
	case c.send <- line:
		return nil
	case <-c.done:
		return apperrors.ErrNotConnected
	}
}

// Close shuts the connection down. Safe to call more than once.
func (c *Conn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	close(c.done)
	if c.conn != nil {
		c.conn.Close()
	}
}

func (c *Conn) readPump() {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		c.Close()
		if c.OnClose != nil {
			c.OnClose()
		}
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				if c.OnError != nil {
					c.OnError(err)
				}
			}
			return
		}

		line := string(data)
		c.jrnl.Record(journal.Inbound, line)
		if c.OnLine != nil {
			c.OnLine(line)
		}
	}
}

func (c *Conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case line := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
