package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yuxuan3d/odin-messaging-app/internal/handlers"
	"github.com/yuxuan3d/odin-messaging-app/internal/middleware"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/profile", handlers.GetProfile)
		users.PUT("/bio", handlers.UpdateBio)
		users.GET("/search", handlers.SearchUser) // ?username=
	}
}
