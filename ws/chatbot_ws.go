package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/quark1412/FoodyRush-sub000/services"
	"github.com/quark1412/FoodyRush-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// ChatbotHub fans bot replies out to every panel a user has open. There
// is no transcript persistence; a reload starts a fresh conversation.
type ChatbotHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> open panels
	broadcast  chan botEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	service    *services.ChatbotService
}

type subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

type botEvent struct {
	UserID uint
	Reply  *services.BotReply
}

func NewChatbotHub(service *services.ChatbotService) *ChatbotHub {
	return &ChatbotHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan botEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		service:    service,
	}
}

func (h *ChatbotHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.UserID] == nil {
				h.clients[sub.UserID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.UserID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.UserID][sub.Conn]; ok {
				delete(h.clients[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.UserID] {
				if err := conn.WriteJSON(ev.Reply); err != nil {
					logrus.WithError(err).Warn("chatbot ws write")
					conn.Close()
					delete(h.clients[ev.UserID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/chatbot
func (h *ChatbotHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("chatbot ws upgrade")
		return
	}

	sub := subscription{Conn: conn, UserID: userID}
	h.register <- sub

	go h.listen(sub)
}

func (h *ChatbotHub) listen(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		_, raw, err := sub.Conn.ReadMessage()
		if err != nil {
			break
		}

		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil || payload.Message == "" {
			continue
		}

		reply, err := h.service.Ask(sub.UserID, payload.Message)
		if err != nil {
			logrus.WithError(err).Warn("chatbot ws reply")
			continue
		}

		h.broadcast <- botEvent{UserID: sub.UserID, Reply: reply}
	}
}
