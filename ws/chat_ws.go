package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/services"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ChatHub fans order-chat messages out to every connection in a room.
type ChatHub struct {
	clients    map[uint]map[*websocket.Conn]bool // roomID -> set of clients
	broadcast  chan BroadcastMessage
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	service    *services.ChatService
}

// Subscription is one user's connection to one room.
type Subscription struct {
	Conn   *websocket.Conn
	RoomID uint
	UserID uint
}

type BroadcastMessage struct {
	RoomID  uint
	Message *entity.Message
}

func NewChatHub(service *services.ChatService) *ChatHub {
	return &ChatHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan BroadcastMessage),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		service:    service,
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *ChatHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RoomID] == nil {
				h.clients[sub.RoomID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RoomID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RoomID][sub.Conn]; ok {
				delete(h.clients[sub.RoomID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.RoomID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.RoomID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves /ws/chat/:roomId. The auth middleware has already
// put userId on the context.
func (h *ChatHub) HandleWebSocket(c *gin.Context) {
	roomID := paramRoomID(c)
	userID := utils.CurrentUserID(c)

	room, err := h.service.GetRoomByID(roomID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "room not found"})
		return
	}

	// only the order parties may join
	ok, err := h.service.CanAccessRoom(userID, room.OrderID)
	if err != nil || !ok {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, RoomID: room.ID, UserID: userID}
	h.register <- sub

	go h.listenMessages(sub)
}

// listenMessages reads client frames, persists them and broadcasts the
// stored message. The sender always comes from the JWT, never the frame.
func (h *ChatHub) listenMessages(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		_, msgData, err := sub.Conn.ReadMessage()
		if err != nil {
			break
		}

		var payload struct {
			Body string `json:"body"`
		}
		if err := json.Unmarshal(msgData, &payload); err != nil {
			log.Printf("invalid ws payload: %v", err)
			continue
		}

		msg, err := h.service.SendMessage(sub.RoomID, sub.UserID, payload.Body)
		if err != nil {
			log.Printf("save message error: %v", err)
			continue
		}

		h.broadcast <- BroadcastMessage{RoomID: sub.RoomID, Message: msg}
	}
}

func paramRoomID(c *gin.Context) uint {
	n, _ := strconv.ParseUint(c.Param("roomId"), 10, 64)
	return uint(n)
}
