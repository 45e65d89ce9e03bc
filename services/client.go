package services

import (
	"sync"

	"github.com/carlosmnz/bingo-salas-backend/utils/logger"
	"github.com/gorilla/websocket"
)

type Client struct {
	roomID string
	conn   *websocket.Conn
	hub    *Hub
	send   chan []byte
	once   sync.Once
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// readPump drains incoming frames so close events are noticed; the feed is
// one-way and inbound payloads are ignored.
func (c *Client) readPump() {
	defer c.hub.remove(c.roomID, c)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("[WS] client left room %s", c.roomID)
			} else {
				logger.Debugf("[WS] read error on room %s: %v", c.roomID, err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debugf("[WS] write error on room %s: %v", c.roomID, err)
			return
		}
	}
}
