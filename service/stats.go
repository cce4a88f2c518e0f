package service

import (
	"context"
	"time"

	"go-splendor/repository"
)

func GetPlayerStats(playerID string) (*repository.PlayerStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return repository.QueryPlayerStats(ctx, repository.DB, playerID)
}
