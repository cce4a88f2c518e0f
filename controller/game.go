package controller

import (
	"net/http"

	"go-splendor/service"

	"github.com/gin-gonic/gin"
)

// GetRoomInfo 房间详情，包括最近保存的局面
func GetRoomInfo(c *gin.Context) {
	roomID := c.Param("roomID")
	detail, err := service.GetRoomDetail(roomID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"data":        detail,
	})
}

func GetPlayerStats(c *gin.Context) {
	stats, err := service.GetPlayerStats(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"data":        stats,
	})
}
