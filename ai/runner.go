package ai

import (
	"fmt"

	"go-splendor/engine"
	"go-splendor/entities"

	"go.uber.org/zap"
)

// 单个 AI 回合最多的子步骤数：3 次拿宝石 + 3 次弃宝石 + 结束回合，留足余量
const maxStepsPerTurn = 16

// StepResult 一个子步骤的结果
type StepResult struct {
	Command  engine.Command
	Snapshot *engine.Snapshot
	Events   []engine.Event
	TurnOver bool // AI 回合结束，或者当前不是 AI 玩家
}

// TurnRunner 由调用方反复调用 Step 推进 AI 回合，内部没有定时器，节奏由调用方决定
type TurnRunner struct {
	game   *engine.Game
	policy *Policy
	log    *zap.Logger
}

func NewTurnRunner(g *engine.Game, policy *Policy, log *zap.Logger) *TurnRunner {
	if log == nil {
		log = zap.NewNop()
	}
	return &TurnRunner{game: g, policy: policy, log: log}
}

// Step 决策 → 校验 → 执行一条命令。被拒绝时退化为结束回合
func (r *TurnRunner) Step() (StepResult, error) {
	s := r.game.Snapshot()
	if s.Finished || !s.CurrentPlayer().IsAI {
		return StepResult{Snapshot: s, TurnOver: true}, nil
	}
	player := s.CurrentPlayer().ID

	cmd := r.next(s).By(player)
	snap, events, err := r.game.Apply(cmd)
	if err != nil && !engine.IsDeckExhausted(err) {
		r.log.Warn("🤖 AI 命令被拒绝，改为结束回合",
			zap.String("player", player),
			zap.Stringer("command", cmd),
			zap.String("reason", engine.Reason(err)),
		)
		if cmd.Kind == engine.CommandEndTurn {
			return StepResult{Command: cmd, Snapshot: s}, err
		}
		cmd = engine.EndTurnCommand().By(player)
		snap, events, err = r.game.Apply(cmd)
		if err != nil {
			return StepResult{Command: cmd, Snapshot: s}, err
		}
	}

	r.log.Debug("🤖 AI 执行操作", zap.String("player", player), zap.Stringer("command", cmd))
	return StepResult{
		Command:  cmd,
		Snapshot: snap,
		Events:   events,
		TurnOver: cmd.Kind == engine.CommandEndTurn || snap.Finished,
	}, nil
}

// RunTurn 连续执行直到 AI 回合结束，返回期间的全部事件
func (r *TurnRunner) RunTurn() ([]engine.Event, error) {
	var all []engine.Event
	for i := 0; i < maxStepsPerTurn; i++ {
		res, err := r.Step()
		if err != nil {
			return all, err
		}
		all = append(all, res.Events...)
		if res.TurnOver {
			return all, nil
		}
	}
	return all, fmt.Errorf("AI 回合超过 %d 步仍未结束", maxStepsPerTurn)
}

// next 超出手牌上限先弃宝石；已购买/预定或拿满后结束回合；其余交给策略
func (r *TurnRunner) next(s *engine.Snapshot) engine.Command {
	p := s.CurrentPlayer()
	if p.TotalTokenCount() > engine.MaxHandTokens {
		return engine.DiscardTokenCommand(discardChoice(p))
	}
	if !collectionOpen(s) {
		return engine.EndTurnCommand()
	}
	return r.policy.Decide(s)
}

// discardChoice 弃掉持有最多的普通宝石，万能宝石留到最后
func discardChoice(p *engine.PlayerState) entities.TokenType {
	var choice entities.TokenType
	most := 0
	for _, t := range entities.StandardTokenTypes {
		if p.Tokens[t] > most {
			choice, most = t, p.Tokens[t]
		}
	}
	if most == 0 {
		return entities.TokenGold
	}
	return choice
}
