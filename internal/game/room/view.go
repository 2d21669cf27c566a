package room

import (
	"github.com/palemoky/kaboom/internal/game/card"
	"github.com/palemoky/kaboom/internal/protocol"
)

// 对手暗牌的脱敏占位
const (
	HiddenValue = "HIDDEN"
	HiddenName  = "??"
)

// stateFor 生成指定观察者视角的完整游戏状态（需持锁）
//
// 脱敏规则：
//  1. 自己的手牌始终可见（即使是暗牌，自己也知道是什么）
//  2. 亮牌（FaceUp）对所有人可见
//  3. 其他情况对手的牌只给占位符
//
// 每次广播必须按观察者逐个重算，绝不能把序列化结果跨观察者复用
func (r *Room) stateFor(viewerID string) protocol.GameStatePayload {
	turnID := r.currentTurnID()

	players := make([]protocol.PlayerInfo, 0, len(r.players))
	for _, id := range r.joinOrder {
		p := r.players[id]
		hand := make([]protocol.CardInfo, 0, len(p.Hand))
		for _, c := range p.Hand {
			hand = append(hand, maskCard(c, id == viewerID))
		}
		players = append(players, protocol.PlayerInfo{
			ID:              id,
			Name:            p.Name,
			Hand:            hand,
			IsCurrentPlayer: id == turnID,
		})
	}

	var drawn *protocol.CardInfo
	if r.drawnCard != nil {
		// 待处理摸牌已经亮牌，对所有人不脱敏
		info := cardInfo(r.drawnCard)
		drawn = &info
	}

	return protocol.GameStatePayload{
		RoomID:        r.ID,
		Status:        string(r.status),
		Players:       players,
		DeckCount:     r.deck.Count(),
		DiscardCount:  r.deck.DiscardCount(),
		DrawnCard:     drawn,
		CurrentTurnID: turnID,
	}
}

// maskCard 单张牌的视角投影
func maskCard(c *card.Card, own bool) protocol.CardInfo {
	info := cardInfo(c)
	if !own && !c.FaceUp {
		info.Rank = HiddenValue
		info.Suit = HiddenValue
		info.DisplayName = HiddenName
	}
	return info
}

// cardInfo 不脱敏的牌信息
func cardInfo(c *card.Card) protocol.CardInfo {
	return protocol.CardInfo{
		Rank:        c.Rank.String(),
		Suit:        c.Suit.String(),
		FaceUp:      c.FaceUp,
		DisplayName: c.DisplayName(),
	}
}

// broadcastState 给每个玩家发送各自视角的状态（需持锁）
func (r *Room) broadcastState() {
	for id, p := range r.players {
		state := r.stateFor(id)
		p.Client.SendMessage(mustStateMessage(state))
	}
}
