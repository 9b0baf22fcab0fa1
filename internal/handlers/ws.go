package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/indrad3v4/Vibratonic/internal/services"
	"github.com/indrad3v4/Vibratonic/internal/ws"
)

type WSHandler struct {
	hub        *ws.Hub
	mvpService *services.MVPService
}

func NewWSHandler(hub *ws.Hub, mvpService *services.MVPService) *WSHandler {
	return &WSHandler{hub: hub, mvpService: mvpService}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleMVPSocket godoc
// @Summary      Live funding updates for one MVP
// @Tags         websocket
// @Param        id path string true "MVP ID"
// @Router       /ws/mvps/{id} [get]
func (h *WSHandler) HandleMVPSocket(c *gin.Context) {
	mvpID := c.Param("id")
	if _, err := h.mvpService.Get(mvpID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	topic := ws.MVPTopic(mvpID)
	h.hub.AddConnection(topic, conn)
	defer h.hub.RemoveConnection(topic, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// HandleFeedSocket streams the platform-wide activity feed.
func (h *WSHandler) HandleFeedSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(ws.FeedTopic, conn)
	defer h.hub.RemoveConnection(ws.FeedTopic, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
