package controller

import (
	"net/http"

	"go-splendor/dto"
	"go-splendor/service"

	"github.com/gin-gonic/gin"
)

func GuestLogin(c *gin.Context) {
	var req dto.GuestLoginRequest
	// 允许空 body
	_ = c.ShouldBindJSON(&req)

	resp, err := service.GuestLogin(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"msg":         "登录成功",
		"data":        resp,
	})
}

func RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少必要字段"})
		return
	}
	resp, err := service.RefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"data":        resp,
	})
}
