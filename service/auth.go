package service

import (
	"fmt"
	"strings"

	"go-splendor/dto"
	"go-splendor/utils"
)

// GuestLogin 游客登录，没有带 userID 时随机生成一个
func GuestLogin(req dto.GuestLoginRequest) (*dto.TokenResponse, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = "guest_" + RandString(8)
	}
	if strings.HasPrefix(userID, "ai_") {
		return nil, fmt.Errorf("用户名不能以 ai_ 开头")
	}
	return issueTokens(userID)
}

// RefreshToken 用 refresh token 换一对新的 token
func RefreshToken(refresh string) (*dto.TokenResponse, error) {
	claims, err := utils.ParseRefreshToken(refresh)
	if err != nil {
		return nil, fmt.Errorf("refresh token 无效: %w", err)
	}
	return issueTokens(claims.UserID)
}

func issueTokens(userID string) (*dto.TokenResponse, error) {
	access, err := utils.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		UserID:       userID,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
