package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yuxuan3d/odin-messaging-app/internal/handlers"
	"github.com/yuxuan3d/odin-messaging-app/internal/middleware"
)

func RegisterChatRoutes(r gin.IRouter) {
	chat := r.Group("/chat")
	chat.Use(middleware.AuthMiddleware())
	{
		chat.GET("/conversations", handlers.GetConversations)
		chat.GET("/history", handlers.GetHistory) // ?partner=&limit=&cursor=
		chat.POST("/messages", middleware.ChatRateLimit(), handlers.SendMessage)
	}
}
