package ai

import (
	"fmt"
	"testing"

	"go-splendor/engine"
	"go-splendor/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/exp/rand"
)

type stubStrategy struct {
	cmd engine.Command
}

func (stubStrategy) Name() string { return "stub" }

func (s stubStrategy) Decide(*engine.Snapshot, *rand.Rand) engine.Command {
	return s.cmd
}

func aiPlayers(n int) []engine.PlayerConfig {
	configs := make([]engine.PlayerConfig, n)
	for i := range configs {
		configs[i] = engine.PlayerConfig{ID: fmt.Sprintf("ai_%d", i), IsAI: true}
	}
	return configs
}

func requireConserved(t *testing.T, s *engine.Snapshot) {
	t.Helper()
	for _, tok := range entities.AllTokenTypes {
		total := s.Supply.Count(tok)
		for _, p := range s.Players {
			total += p.Tokens[tok]
		}
		require.Equal(t, s.Supply.InitialCount(tok), total, "token %s", tok)
	}
}

func playTurns(t *testing.T, g *engine.Game, policy *Policy, turns int) *engine.Snapshot {
	t.Helper()
	runner := NewTurnRunner(g, policy, nil)
	for i := 0; i < turns && !g.Finished(); i++ {
		_, err := runner.RunTurn()
		require.NoError(t, err)

		s := g.Snapshot()
		requireConserved(t, s)
		for _, p := range s.Players {
			require.LessOrEqual(t, p.TotalTokenCount(), engine.MaxHandTokens)
			require.LessOrEqual(t, len(p.Reserved), engine.MaxReservedCard)
		}
	}
	return g.Snapshot()
}

func TestRunnerPlaysWholeGames(t *testing.T) {
	for _, name := range []string{StrategyCascade, StrategyWeighted} {
		for players := engine.MinPlayers; players <= engine.MaxPlayers; players++ {
			for seed := uint64(1); seed <= 5; seed++ {
				t.Run(fmt.Sprintf("%s/%dp/seed%d", name, players, seed), func(t *testing.T) {
					g, err := engine.Setup(aiPlayers(players), seed)
					require.NoError(t, err)
					strategy, err := StrategyByName(name)
					require.NoError(t, err)

					s := playTurns(t, g, NewPolicy(strategy, seed), 400)
					if s.Finished {
						require.GreaterOrEqual(t, s.WinnerIndex, 0)
						require.GreaterOrEqual(t, s.Players[s.WinnerIndex].VictoryPoints(), engine.WinningPoints)
					}
				})
			}
		}
	}
}

func TestRunnerIsDeterministic(t *testing.T) {
	play := func() *engine.Snapshot {
		g, err := engine.Setup(aiPlayers(3), 2024)
		require.NoError(t, err)
		return playTurns(t, g, NewPolicy(CascadeStrategy{}, 7), 60)
	}
	require.Equal(t, play(), play())
}

func TestRunnerDegradesToEndTurn(t *testing.T) {
	g, err := engine.Setup(aiPlayers(2), 3)
	require.NoError(t, err)
	core, logs := observer.New(zap.WarnLevel)

	runner := NewTurnRunner(g, NewPolicy(stubStrategy{cmd: engine.BuyCardCommand(9999, false)}, 1), zap.New(core))
	res, err := runner.Step()
	require.NoError(t, err)
	require.Equal(t, engine.EndTurnCommand().By("ai_0"), res.Command)
	require.True(t, res.TurnOver)
	require.Equal(t, 1, res.Snapshot.CurrentPlayerIndex)
	require.Equal(t, 1, logs.FilterMessage("🤖 AI 命令被拒绝，改为结束回合").Len())
}

func TestRunnerDiscardsDownToLimit(t *testing.T) {
	g, err := engine.Setup(aiPlayers(2), 5)
	require.NoError(t, err)

	turns := [][]entities.TokenType{
		{white, blue, green},
		{red, black, white},
		{blue, green, red},
	}
	for _, turn := range turns {
		for _, tok := range turn {
			_, _, err := g.CollectToken(tok)
			require.NoError(t, err)
		}
		_, _, err = g.EndTurn()
		require.NoError(t, err)
		_, _, err = g.EndTurn()
		require.NoError(t, err)
	}
	for _, tok := range []entities.TokenType{black, blue} {
		_, _, err := g.CollectToken(tok)
		require.NoError(t, err)
	}
	require.Equal(t, 11, g.Snapshot().Players[0].TotalTokenCount())

	runner := NewTurnRunner(g, NewPolicy(CascadeStrategy{}, 1), nil)
	res, err := runner.Step()
	require.NoError(t, err)
	require.Equal(t, engine.DiscardTokenCommand(blue).By("ai_0"), res.Command)
	require.False(t, res.TurnOver)

	_, err = runner.RunTurn()
	require.NoError(t, err)
	s := g.Snapshot()
	require.Equal(t, 1, s.CurrentPlayerIndex)
	require.LessOrEqual(t, s.Players[0].TotalTokenCount(), engine.MaxHandTokens)
	requireConserved(t, s)
}

func TestRunnerWaitsForHumans(t *testing.T) {
	g, err := engine.Setup([]engine.PlayerConfig{{ID: "u1"}, {ID: "ai_1", IsAI: true}}, 9)
	require.NoError(t, err)
	before := g.Snapshot()

	res, err := NewTurnRunner(g, NewPolicy(nil, 1), nil).Step()
	require.NoError(t, err)
	require.True(t, res.TurnOver)
	require.Empty(t, res.Events)
	require.Equal(t, before, g.Snapshot())
}

func TestDiscardChoice(t *testing.T) {
	p := engine.NewPlayerState(engine.PlayerConfig{ID: "ai_1"})
	p.Tokens[gold] = 3
	require.Equal(t, gold, discardChoice(p))

	p.Tokens[green] = 2
	p.Tokens[red] = 4
	require.Equal(t, red, discardChoice(p))
}
