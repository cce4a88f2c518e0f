package router

import (
	"go-splendor/controller"
	"go-splendor/middleware"
	"go-splendor/ws"

	"github.com/gin-gonic/gin"
)

func InitRouter(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/guest", controller.GuestLogin)
		auth.POST("/refresh", controller.RefreshToken)
	}

	// 游戏接口路由
	api := r.Group("/room")
	{
		api.POST("/create", middleware.AuthMiddleware(), controller.CreateRoom)
		api.POST("/delete", middleware.AuthMiddleware(), controller.DeleteRoom)
		api.GET("/list", controller.GetRoomList)
		api.GET("/:roomID", controller.GetRoomInfo)
	}

	r.GET("/stats/:userID", controller.GetPlayerStats)

	// WebSocket 路由
	r.GET("/ws", ws.HandleWebSocket)
}
