package engine

import (
	"errors"
	"sync"

	"go-splendor/const_data"
	"go-splendor/entities"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

type options struct {
	logger *zap.Logger
	cards  [TierCount][]entities.NormalCard
	nobles []entities.NobleCard
}

type Option func(*options)

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCatalog 替换默认的卡牌和贵族（测试或变体规则用）
func WithCatalog(cards [TierCount][]entities.NormalCard, nobles []entities.NobleCard) Option {
	return func(o *options) {
		o.cards = cards
		o.nobles = nobles
	}
}

// Game 回合状态机，是共享状态唯一的修改者。所有命令串行执行
type Game struct {
	mu  sync.Mutex
	log *zap.Logger

	seed      uint64
	players   []*PlayerState
	supply    *TokenSupply
	visible   [TierCount][]*entities.NormalCard
	decks     [TierCount][]entities.NormalCard
	nobles    []entities.NobleCard
	current   int
	round     int
	action    TurnAction
	collected []entities.TokenType
	finished  bool
	winner    int
}

// Setup 按人数初始化宝石池、洗牌翻开每级 4 张、抽取人数 +1 个贵族
func Setup(configs []PlayerConfig, seed uint64, opts ...Option) (*Game, error) {
	if len(configs) < MinPlayers || len(configs) > MaxPlayers {
		return nil, illegal("玩家人数必须在 %d 到 %d 之间，当前 %d", MinPlayers, MaxPlayers, len(configs))
	}
	seen := make(map[string]bool, len(configs))
	for _, cfg := range configs {
		if cfg.ID == "" || seen[cfg.ID] {
			return nil, illegal("玩家ID为空或重复: %q", cfg.ID)
		}
		seen[cfg.ID] = true
	}

	o := options{
		logger: zap.NewNop(),
		cards:  const_data.SplendorCards,
		nobles: const_data.NobleTilesList,
	}
	for _, opt := range opts {
		opt(&o)
	}

	rng := rand.New(rand.NewSource(seed))
	g := &Game{
		log:     o.logger,
		seed:    seed,
		supply:  NewTokenSupply(len(configs)),
		round:   1,
		action:  TurnActionNone,
		winner:  -1,
		players: make([]*PlayerState, 0, len(configs)),
	}
	for _, cfg := range configs {
		g.players = append(g.players, NewPlayerState(cfg))
	}

	for tier := 0; tier < TierCount; tier++ {
		cards := make([]entities.NormalCard, len(o.cards[tier]))
		for i, c := range o.cards[tier] {
			cards[i] = c.Clone()
		}
		rng.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
		g.visible[tier] = make([]*entities.NormalCard, VisibleSlots)
		n := min(VisibleSlots, len(cards))
		for i := 0; i < n; i++ {
			c := cards[i]
			g.visible[tier][i] = &c
		}
		g.decks[tier] = cards[n:]
	}

	nobles := make([]entities.NobleCard, len(o.nobles))
	for i, n := range o.nobles {
		nobles[i] = n.Clone()
	}
	rng.Shuffle(len(nobles), func(i, j int) {
		nobles[i], nobles[j] = nobles[j], nobles[i]
	})
	g.nobles = nobles[:min(len(nobles), len(configs)+1)]

	g.log.Info("🎲 游戏初始化完成",
		zap.Uint64("seed", seed),
		zap.Int("players", len(configs)),
		zap.Int("nobles", len(g.nobles)),
	)
	return g, nil
}

func (g *Game) Seed() uint64 {
	return g.seed
}

func (g *Game) Finished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.finished
}

// Snapshot 当前局面的拷贝
func (g *Game) Snapshot() *Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() *Snapshot {
	s := &Snapshot{
		Seed:                    g.seed,
		Round:                   g.round,
		CurrentPlayerIndex:      g.current,
		Players:                 make([]*PlayerState, len(g.players)),
		Supply:                  g.supply.Clone(),
		Nobles:                  make([]entities.NobleCard, len(g.nobles)),
		TokensCollectedThisTurn: len(g.collected),
		CollectedTypesThisTurn:  append([]entities.TokenType{}, g.collected...),
		TurnAction:              g.action,
		Finished:                g.finished,
		WinnerIndex:             g.winner,
	}
	for i, p := range g.players {
		s.Players[i] = p.Clone()
	}
	for i, n := range g.nobles {
		s.Nobles[i] = n.Clone()
	}
	for tier := 0; tier < TierCount; tier++ {
		s.Visible[tier] = make([]*entities.NormalCard, len(g.visible[tier]))
		for i, c := range g.visible[tier] {
			if c != nil {
				cc := c.Clone()
				s.Visible[tier][i] = &cc
			}
		}
		s.DeckCounts[tier] = len(g.decks[tier])
	}
	return s
}

// Apply 执行一条命令。被拒绝时状态不变，返回 EngineError；
// 从空牌堆预定是唯一会同时返回新局面和错误（ErrDeckExhausted）的情况
func (g *Game) Apply(cmd Command) (*Snapshot, []Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.finished {
		return nil, nil, illegal("游戏已经结束")
	}
	if current := g.players[g.current].ID; cmd.PlayerID != "" && cmd.PlayerID != current {
		return nil, nil, illegal("现在是 %s 的回合，不是 %s", current, cmd.PlayerID)
	}

	var (
		events []Event
		err    error
	)
	switch cmd.Kind {
	case CommandCollectToken:
		events, err = g.collectToken(cmd.Token)
	case CommandUndoCollectToken:
		events, err = g.undoCollectToken(cmd.Token)
	case CommandBuyCard:
		events, err = g.buyCard(cmd.CardID, cmd.FromReserved)
	case CommandReserveCard:
		events, err = g.reserveCard(cmd.CardID)
	case CommandReserveFromDeck:
		events, err = g.reserveFromDeck(cmd.Tier)
	case CommandDiscardToken:
		events, err = g.discardToken(cmd.Token)
	case CommandEndTurn:
		events, err = g.endTurn()
	default:
		err = illegal("未知的命令 %q", cmd.Kind)
	}

	if err != nil && events == nil {
		g.log.Debug("命令被拒绝",
			zap.String("player", g.players[g.current].ID),
			zap.Stringer("command", cmd),
			zap.String("reason", Reason(err)),
		)
		return nil, nil, err
	}
	g.log.Debug("命令已执行",
		zap.String("player", g.players[g.current].ID),
		zap.Stringer("command", cmd),
		zap.Int("events", len(events)),
	)
	return g.snapshotLocked(), events, err
}

func (g *Game) CollectToken(t entities.TokenType) (*Snapshot, []Event, error) {
	return g.Apply(CollectTokenCommand(t))
}

func (g *Game) UndoCollectToken(t entities.TokenType) (*Snapshot, []Event, error) {
	return g.Apply(UndoCollectTokenCommand(t))
}

func (g *Game) BuyCard(cardID int, fromReserved bool) (*Snapshot, []Event, error) {
	return g.Apply(BuyCardCommand(cardID, fromReserved))
}

func (g *Game) ReserveCard(cardID int) (*Snapshot, []Event, error) {
	return g.Apply(ReserveCardCommand(cardID))
}

func (g *Game) ReserveFromDeck(tier int) (*Snapshot, []Event, error) {
	return g.Apply(ReserveFromDeckCommand(tier))
}

func (g *Game) DiscardToken(t entities.TokenType) (*Snapshot, []Event, error) {
	return g.Apply(DiscardTokenCommand(t))
}

func (g *Game) EndTurn() (*Snapshot, []Event, error) {
	return g.Apply(EndTurnCommand())
}

func (g *Game) event(typ EventType) Event {
	return Event{
		Type:        typ,
		PlayerIndex: g.current,
		PlayerID:    g.players[g.current].ID,
		Round:       g.round,
	}
}

func (g *Game) collectToken(t entities.TokenType) ([]Event, error) {
	p := g.players[g.current]
	if err := CheckCollectToken(t, g.supply, g.action, g.collected); err != nil {
		return nil, err
	}
	taken, err := g.supply.Take(t, 1)
	if err != nil {
		return nil, err
	}
	p.addTokens(taken)
	g.collected = append(g.collected, t)
	g.action = TurnActionCollecting

	ev := g.event(EventTokenCollected)
	ev.Token = t
	return []Event{ev}, nil
}

// undoCollectToken 只能撤销本回合拿到的宝石
func (g *Game) undoCollectToken(t entities.TokenType) ([]Event, error) {
	p := g.players[g.current]
	idx := -1
	for i := len(g.collected) - 1; i >= 0; i-- {
		if g.collected[i] == t {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, illegal("本回合没有拿过 %s 宝石", t)
	}
	if p.Tokens[t] <= 0 {
		return nil, illegal("手里已经没有 %s 宝石", t)
	}

	g.collected = append(g.collected[:idx:idx], g.collected[idx+1:]...)
	p.removeTokens(map[entities.TokenType]int{t: 1})
	g.supply.Return(map[entities.TokenType]int{t: 1})
	if len(g.collected) == 0 {
		g.action = TurnActionNone
	}

	ev := g.event(EventTokenReturned)
	ev.Token = t
	return []Event{ev}, nil
}

func (g *Game) findVisible(cardID int) (int, int) {
	for tier := range g.visible {
		for slot, c := range g.visible[tier] {
			if c != nil && c.ID == cardID {
				return tier, slot
			}
		}
	}
	return -1, -1
}

// takeVisible 拿走桌面上的卡，并从同级牌堆补一张（牌堆空了就留空位）
func (g *Game) takeVisible(tier, slot int) entities.NormalCard {
	card := *g.visible[tier][slot]
	g.visible[tier][slot] = nil
	if len(g.decks[tier]) > 0 {
		next := g.decks[tier][0]
		g.decks[tier] = g.decks[tier][1:]
		g.visible[tier][slot] = &next
	}
	return card
}

func (g *Game) buyCard(cardID int, fromReserved bool) ([]Event, error) {
	p := g.players[g.current]
	if !CanBuyCard(g.action) {
		return nil, illegal("本回合已经行动过，购买必须是回合内唯一的动作")
	}

	var card entities.NormalCard
	reservedIdx, tier, slot := -1, -1, -1
	if fromReserved {
		reservedIdx = p.ReservedIndex(cardID)
		if reservedIdx < 0 {
			return nil, newError(ErrInvalidCardReference, "预定区没有卡牌 %d", cardID)
		}
		card = p.Reserved[reservedIdx]
	} else {
		tier, slot = g.findVisible(cardID)
		if tier < 0 {
			return nil, newError(ErrInvalidCardReference, "桌面上没有卡牌 %d", cardID)
		}
		card = *g.visible[tier][slot]
	}

	paid, ok := Payment(p, &card)
	if !ok {
		return nil, illegal("宝石不足，无法购买卡牌 %d", cardID)
	}
	p.removeTokens(paid)
	g.supply.Return(paid)

	if fromReserved {
		p.Reserved = append(p.Reserved[:reservedIdx:reservedIdx], p.Reserved[reservedIdx+1:]...)
	} else {
		card = g.takeVisible(tier, slot)
	}
	p.Purchased = append(p.Purchased, card)
	g.action = TurnActionBought

	bought := card.Clone()
	ev := g.event(EventCardBought)
	ev.Card = &bought
	ev.Points = p.VictoryPoints()
	events := []Event{ev}

	if noble := g.claimNoble(p); noble != nil {
		nev := g.event(EventNobleClaimed)
		nev.Noble = noble
		nev.Points = p.VictoryPoints()
		events = append(events, nev)
	}
	return events, nil
}

// claimNoble 每次购买最多拜访一位贵族，按贵族池顺序取第一个满足条件的
func (g *Game) claimNoble(p *PlayerState) *entities.NobleCard {
	for i := range g.nobles {
		if !NobleSatisfied(p, &g.nobles[i]) {
			continue
		}
		noble := g.nobles[i]
		g.nobles = append(g.nobles[:i:i], g.nobles[i+1:]...)
		p.Nobles = append(p.Nobles, noble)
		g.log.Info("👑 贵族来访", zap.String("player", p.ID), zap.String("noble", noble.ID))
		claimed := noble.Clone()
		return &claimed
	}
	return nil
}

func (g *Game) checkReserve(p *PlayerState) error {
	if !CanBuyCard(g.action) {
		return illegal("本回合已经行动过，预定必须是回合内唯一的动作")
	}
	if !CanReserve(p) {
		return illegal("最多只能预定 %d 张卡牌", MaxReservedCard)
	}
	return nil
}

// grantWildcard 池里还有万能宝石就给一个
func (g *Game) grantWildcard(p *PlayerState) bool {
	gold, err := g.supply.Take(entities.TokenGold, 1)
	if err != nil {
		return false
	}
	p.addTokens(gold)
	return true
}

func (g *Game) reserveCard(cardID int) ([]Event, error) {
	p := g.players[g.current]
	if err := g.checkReserve(p); err != nil {
		return nil, err
	}
	tier, slot := g.findVisible(cardID)
	if tier < 0 {
		return nil, newError(ErrInvalidCardReference, "桌面上没有卡牌 %d", cardID)
	}

	card := g.takeVisible(tier, slot)
	p.Reserved = append(p.Reserved, card)
	g.action = TurnActionReserved

	reserved := card.Clone()
	ev := g.event(EventCardReserved)
	ev.Card = &reserved
	ev.Wildcard = g.grantWildcard(p)
	return []Event{ev}, nil
}

// reserveFromDeck 直接预定牌堆顶的卡，不翻开也不补牌
func (g *Game) reserveFromDeck(tier int) ([]Event, error) {
	p := g.players[g.current]
	if tier < 1 || tier > TierCount {
		return nil, illegal("卡牌等级必须是 1 到 %d", TierCount)
	}
	if err := g.checkReserve(p); err != nil {
		return nil, err
	}

	idx := tier - 1
	if len(g.decks[idx]) == 0 {
		if g.supply.Count(entities.TokenGold) == 0 {
			return nil, newError(ErrDeckExhausted, "%d 级牌堆已空，也没有万能宝石", tier)
		}
		// 牌堆空了仍然算本回合的预定动作，只拿万能宝石
		g.action = TurnActionReserved
		ev := g.event(EventCardReserved)
		ev.FromDeck = true
		ev.Wildcard = g.grantWildcard(p)
		return []Event{ev}, newError(ErrDeckExhausted, "%d 级牌堆已空，只获得万能宝石", tier)
	}

	card := g.decks[idx][0]
	g.decks[idx] = g.decks[idx][1:]
	p.Reserved = append(p.Reserved, card)
	g.action = TurnActionReserved

	reserved := card.Clone()
	ev := g.event(EventCardReserved)
	ev.Card = &reserved
	ev.FromDeck = true
	ev.Wildcard = g.grantWildcard(p)
	return []Event{ev}, nil
}

func (g *Game) discardToken(t entities.TokenType) ([]Event, error) {
	p := g.players[g.current]
	if !t.Valid() {
		return nil, illegal("未知的宝石类型 %q", t)
	}
	if p.TotalTokenCount() <= MaxHandTokens {
		return nil, illegal("手里宝石不超过 %d 个，不需要弃掉", MaxHandTokens)
	}
	if p.Tokens[t] <= 0 {
		return nil, illegal("手里没有 %s 宝石", t)
	}
	p.removeTokens(map[entities.TokenType]int{t: 1})
	g.supply.Return(map[entities.TokenType]int{t: 1})

	ev := g.event(EventTokenDiscarded)
	ev.Token = t
	return []Event{ev}, nil
}

// endTurn 只有一轮最后一位玩家结束回合时才判定胜负
func (g *Game) endTurn() ([]Event, error) {
	p := g.players[g.current]
	if !CanEndTurn(p) {
		return nil, newError(ErrOverTokenLimit, "手里有 %d 个宝石，需要先弃到 %d 个", p.TotalTokenCount(), MaxHandTokens)
	}

	ev := g.event(EventTurnEnded)
	ev.Points = p.VictoryPoints()
	events := []Event{ev}

	if g.current == len(g.players)-1 {
		if winner := g.evaluateWinner(); winner >= 0 {
			g.finished = true
			g.winner = winner
			end := g.event(EventGameEnded)
			end.WinnerIndex = &winner
			end.WinnerID = g.players[winner].ID
			end.Points = g.players[winner].VictoryPoints()
			g.log.Info("🏆 游戏结束",
				zap.String("winner", end.WinnerID),
				zap.Int("points", end.Points),
				zap.Int("round", g.round),
			)
			return append(events, end), nil
		}
	}

	g.current = (g.current + 1) % len(g.players)
	if g.current == 0 {
		g.round++
	}
	g.action = TurnActionNone
	g.collected = nil
	return events, nil
}

// evaluateWinner 达到 15 分的玩家中分数最高者胜，同分比购买卡牌少，再同则座位靠前
func (g *Game) evaluateWinner() int {
	best := -1
	for i, p := range g.players {
		points := p.VictoryPoints()
		if points < WinningPoints {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		bp := g.players[best]
		if points > bp.VictoryPoints() ||
			(points == bp.VictoryPoints() && len(p.Purchased) < len(bp.Purchased)) {
			best = i
		}
	}
	return best
}

// IsDeckExhausted 判断错误是否只是牌堆已空（状态已经提交）
func IsDeckExhausted(err error) bool {
	return errors.Is(err, ErrDeckExhausted)
}
