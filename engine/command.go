package engine

import (
	"fmt"

	"go-splendor/entities"
)

// TurnAction 本回合已经做出的动作，回合内只会往前走
type TurnAction string

const (
	TurnActionNone       TurnAction = "none"
	TurnActionCollecting TurnAction = "collecting"
	TurnActionBought     TurnAction = "bought"
	TurnActionReserved   TurnAction = "reserved"
)

type CommandKind string

const (
	CommandCollectToken     CommandKind = "collect_token"
	CommandUndoCollectToken CommandKind = "undo_collect_token"
	CommandBuyCard          CommandKind = "buy_card"
	CommandReserveCard      CommandKind = "reserve_card"
	CommandReserveFromDeck  CommandKind = "reserve_deck"
	CommandDiscardToken     CommandKind = "discard_token"
	CommandEndTurn          CommandKind = "end_turn"
)

// Command 一次玩家操作，只作用于当前玩家。
// PlayerID 非空时必须是当前玩家，否则被拒绝
type Command struct {
	Kind         CommandKind        `json:"kind"`
	PlayerID     string             `json:"playerID,omitempty"`
	Token        entities.TokenType `json:"token,omitempty"`
	CardID       int                `json:"cardID,omitempty"`
	FromReserved bool               `json:"fromReserved,omitempty"`
	Tier         int                `json:"tier,omitempty"`
}

func CollectTokenCommand(t entities.TokenType) Command {
	return Command{Kind: CommandCollectToken, Token: t}
}

func UndoCollectTokenCommand(t entities.TokenType) Command {
	return Command{Kind: CommandUndoCollectToken, Token: t}
}

func BuyCardCommand(cardID int, fromReserved bool) Command {
	return Command{Kind: CommandBuyCard, CardID: cardID, FromReserved: fromReserved}
}

func ReserveCardCommand(cardID int) Command {
	return Command{Kind: CommandReserveCard, CardID: cardID}
}

func ReserveFromDeckCommand(tier int) Command {
	return Command{Kind: CommandReserveFromDeck, Tier: tier}
}

func DiscardTokenCommand(t entities.TokenType) Command {
	return Command{Kind: CommandDiscardToken, Token: t}
}

func EndTurnCommand() Command {
	return Command{Kind: CommandEndTurn}
}

// By 标明发出命令的玩家
func (c Command) By(playerID string) Command {
	c.PlayerID = playerID
	return c
}

func (c Command) String() string {
	switch c.Kind {
	case CommandCollectToken, CommandUndoCollectToken, CommandDiscardToken:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Token)
	case CommandBuyCard:
		return fmt.Sprintf("%s(%d, reserved=%t)", c.Kind, c.CardID, c.FromReserved)
	case CommandReserveCard:
		return fmt.Sprintf("%s(%d)", c.Kind, c.CardID)
	case CommandReserveFromDeck:
		return fmt.Sprintf("%s(tier %d)", c.Kind, c.Tier)
	}
	return string(c.Kind)
}
