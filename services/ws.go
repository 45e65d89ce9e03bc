package services

import (
	"encoding/json"
	"net/http"

	"github.com/carlosmnz/bingo-salas-backend/utils/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket subscribes the caller to a room's snapshot feed.
func HandleWebSocket(c *gin.Context) {
	roomID := c.Param("id")
	if _, err := Rooms.RoomSnapshot(roomID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("[WS] upgrade error: %v", err)
		return
	}

	client := &Client{
		roomID: roomID,
		conn:   conn,
		hub:    Rooms.Hub(),
		send:   make(chan []byte, 32),
	}
	Rooms.Hub().add(roomID, client)

	go client.writePump()
	go client.readPump()

	// Current state straight to the new client only; everyone else keeps
	// getting deltas as mutations broadcast them.
	if snap, err := Rooms.RoomSnapshot(roomID); err == nil {
		if b, err := json.Marshal(snap); err == nil {
			select {
			case client.send <- b:
			default:
			}
		}
	}
}
