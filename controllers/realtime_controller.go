package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the SPA dev server.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type RealtimeController struct {
	hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

// Connect upgrades to a websocket and streams hub events until the
// client goes away. Inbound messages are discarded; the socket is
// push-only.
func (rc *RealtimeController) Connect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	client := &services.WSClient{Conn: conn}
	rc.hub.Register(client)
	defer rc.hub.Unregister(client)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
