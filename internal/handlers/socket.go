package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"
	"github.com/yuxuan3d/odin-messaging-app/internal/models"
	"github.com/yuxuan3d/odin-messaging-app/pkg/logger"
	"github.com/yuxuan3d/odin-messaging-app/pkg/utils"
)

var SocketServer *socketio.Server

// Presence tracking
var (
	onlineUsers   = make(map[uint]string) // userId -> socketId
	onlineUsersMu sync.RWMutex
)

// Typing throttle: one emit per sender per interval
var (
	lastTypingEmit = make(map[uint]time.Time)
	lastTypingMu   sync.RWMutex
)

const typingThrottle = 3 * time.Second

func userRoom(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}

// GetOnlineUsers returns the ids of currently connected users.
func GetOnlineUsers() []uint {
	onlineUsersMu.RLock()
	defer onlineUsersMu.RUnlock()

	users := make([]uint, 0, len(onlineUsers))
	for userID := range onlineUsers {
		users = append(users, userID)
	}
	return users
}

// BroadcastMessage pushes a freshly stored message to both participants'
// personal rooms. Delivery is best-effort: the authoritative copy is already
// in the store and reachable through the history endpoint.
func BroadcastMessage(msg *models.Message) {
	if SocketServer == nil {
		return
	}
	data := map[string]interface{}{"message": msg}
	SocketServer.BroadcastToRoom("/", userRoom(msg.ReceiverID), "receive_message", data)
	SocketServer.BroadcastToRoom("/", userRoom(msg.SenderID), "receive_message", data)
}

func broadcastPresence(userID uint, isOnline bool) {
	if SocketServer == nil {
		return
	}
	SocketServer.BroadcastToRoom("/", "presence", "presence_update", map[string]interface{}{
		"userId":   userID,
		"isOnline": isOnline,
	})
}

func InitSocketServer() *socketio.Server {
	server := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&websocket.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
			&polling.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
		},
	})

	server.OnConnect("/", func(s socketio.Conn) error {
		url := s.URL()
		token := url.Query().Get("token")
		if token == "" {
			logger.Warn().Str("socket", s.ID()).Msg("Socket rejected: no token")
			return fmt.Errorf("authentication required")
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			logger.Warn().Str("socket", s.ID()).Msg("Socket rejected: invalid token")
			return fmt.Errorf("invalid token")
		}

		userID := claims.UserID
		s.SetContext(userID)

		onlineUsersMu.Lock()
		onlineUsers[userID] = s.ID()
		onlineUsersMu.Unlock()

		// Personal room for message pushes, shared room for presence fanout
		s.Join(userRoom(userID))
		s.Join("presence")

		broadcastPresence(userID, true)
		s.Emit("online_users", GetOnlineUsers())

		return nil
	})

	server.OnEvent("/", "typing", func(s socketio.Conn, data map[string]interface{}) {
		receiverRaw, ok := data["receiverId"].(float64)
		if !ok {
			return
		}
		receiverID := uint(receiverRaw)

		senderID, ok := s.Context().(uint)
		if !ok {
			return
		}

		lastTypingMu.RLock()
		last, seen := lastTypingEmit[senderID]
		lastTypingMu.RUnlock()
		if seen && time.Since(last) < typingThrottle {
			return
		}

		lastTypingMu.Lock()
		lastTypingEmit[senderID] = time.Now()
		lastTypingMu.Unlock()

		server.BroadcastToRoom("/", userRoom(receiverID), "user_typing", map[string]interface{}{
			"userId":    senderID,
			"expiresAt": time.Now().Add(4 * time.Second).Unix(),
		})
	})

	server.OnEvent("/", "get_online_users", func(s socketio.Conn, msg string) {
		s.Emit("online_users", GetOnlineUsers())
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		onlineUsersMu.Lock()
		var disconnected uint
		for userID, socketID := range onlineUsers {
			if socketID == s.ID() {
				disconnected = userID
				delete(onlineUsers, userID)
				break
			}
		}
		onlineUsersMu.Unlock()

		if disconnected != 0 {
			broadcastPresence(disconnected, false)
		}
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logger.Warn().Err(e).Msg("Socket error")
	})

	go server.Serve()
	SocketServer = server
	return server
}

// SocketHandler wraps the socket.io server for gin.
func SocketHandler(server *socketio.Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		server.ServeHTTP(c.Writer, c.Request)
	}
}
