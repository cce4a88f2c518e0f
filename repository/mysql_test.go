package repository

import (
	"context"
	"testing"

	"go-splendor/config"

	"github.com/stretchr/testify/require"
)

func TestInitMySQLWithoutDSN(t *testing.T) {
	require.NoError(t, InitMySQL(&config.Config{}))
	require.Nil(t, DB)
}

func TestInitMySQLBadDSN(t *testing.T) {
	err := InitMySQL(&config.Config{MySQLDSN: "no-slash-here"})
	require.ErrorContains(t, err, "MYSQL_DSN")
}

func TestResultsWithoutDatabase(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, SaveGameResults(ctx, nil, []GameResult{{RoomID: "r1", PlayerID: "u1"}}))

	stats, err := QueryPlayerStats(ctx, nil, "u1")
	require.NoError(t, err)
	require.Equal(t, &PlayerStats{PlayerID: "u1"}, stats)
}
