package room

import (
	"math/rand"
	"sync"

	"github.com/palemoky/kaboom/internal/apperrors"
	"github.com/palemoky/kaboom/internal/game/card"
	"github.com/palemoky/kaboom/internal/protocol"
)

// Status 房间状态
type Status string

const (
	StatusWaiting Status = "WAITING"
	StatusPlaying Status = "PLAYING"
	// StatusEnded 已声明但当前没有任何路径触发，结算入口见 Scores
	StatusEnded Status = "ENDED"
)

const (
	// MaxPlayers 房间容量
	MaxPlayers = 2
	// HandSize 发牌后每人手牌数
	HandSize = 4
	// initialFaceUp 开局亮牌数：每人先看自己前两张
	initialFaceUp = 2
)

// ClientInterface 房间对连接的最小依赖
type ClientInterface interface {
	GetID() string
	GetRoom() string
	SetRoom(roomID string)
	SendMessage(msg *protocol.Message)
}

// Player 房间中的玩家
type Player struct {
	Client ClientInterface
	Name   string
	Hand   []*card.Card
}

// Room 游戏房间
// 所有字段都由 mu 保护，持锁范围覆盖整个事件处理（包括广播）
type Room struct {
	ID        string
	players   map[string]*Player
	joinOrder []string // 加入顺序，发牌时保证确定性
	deck      *card.Deck
	drawnCard *card.Card // 房间内最多一张待处理的摸牌
	turnOrder []string
	turnIndex int
	status    Status

	mu sync.Mutex
}

func newRoom(id string) *Room {
	return &Room{
		ID:      id,
		players: make(map[string]*Player),
		deck:    card.NewDeck(),
		status:  StatusWaiting,
	}
}

// isFull 房间是否已满（需持锁）
func (r *Room) isFull() bool {
	return len(r.players) >= MaxPlayers
}

// currentTurnID 当前回合玩家 ID（需持锁）
func (r *Room) currentTurnID() string {
	if len(r.turnOrder) == 0 {
		return ""
	}
	return r.turnOrder[r.turnIndex]
}

// addPlayer 把玩家加入房间（需持锁）
func (r *Room) addPlayer(client ClientInterface, name string) {
	r.players[client.GetID()] = &Player{Client: client, Name: name}
	r.joinOrder = append(r.joinOrder, client.GetID())
	client.SetRoom(r.ID)
}

// startGame 发牌并进入 PLAYING（需持锁）
// 每人按加入顺序依次摸 4 张，前两张开局亮给自己；先手随机
func (r *Room) startGame() {
	r.status = StatusPlaying

	for _, id := range r.joinOrder {
		p := r.players[id]
		for i := 0; i < HandSize; i++ {
			c := r.deck.Draw()
			if c == nil {
				break
			}
			if i < initialFaceUp {
				c.FaceUp = true
			}
			p.Hand = append(p.Hand, c)
		}
	}

	r.turnOrder = append([]string(nil), r.joinOrder...)
	rand.Shuffle(len(r.turnOrder), func(i, j int) {
		r.turnOrder[i], r.turnOrder[j] = r.turnOrder[j], r.turnOrder[i]
	})
	r.turnIndex = 0
}

// advanceTurn 轮到下一个玩家（需持锁）
func (r *Room) advanceTurn() {
	r.turnIndex = (r.turnIndex + 1) % len(r.turnOrder)
}

// checkTurn 校验是否轮到该玩家操作（需持锁）
// 游戏未开始或不是本人回合都算回合违规，不区分细节（与客户端提示一致）
func (r *Room) checkTurn(playerID string) error {
	if r.status != StatusPlaying || r.currentTurnID() != playerID {
		return apperrors.ErrGameNotRdy
	}
	return nil
}

// drawCard 摸一张牌作为待处理牌（需持锁）
// 返回 (nil, nil) 表示牌已耗尽：不改状态、不轮转，调用方只发一条房间通知
func (r *Room) drawCard(playerID string) (*card.Card, error) {
	if err := r.checkTurn(playerID); err != nil {
		return nil, err
	}
	if r.drawnCard != nil {
		return nil, apperrors.ErrCardPending
	}

	c := r.deck.Draw()
	if c == nil {
		return nil, nil
	}

	c.FaceUp = true
	r.drawnCard = c
	return c, nil
}

// replaceCard 用待处理牌替换 pos 位置的手牌（需持锁）
// 返回被换下的牌；换上的牌保持亮牌，换下的进弃牌堆，然后轮转
func (r *Room) replaceCard(playerID string, pos *int) (*card.Card, error) {
	if err := r.checkTurn(playerID); err != nil {
		return nil, err
	}
	if r.drawnCard == nil {
		return nil, apperrors.ErrNoDrawnCard
	}
	if pos == nil || *pos < 0 || *pos >= HandSize {
		return nil, apperrors.ErrInvalidPos
	}

	p := r.players[playerID]
	old := p.Hand[*pos]
	p.Hand[*pos] = r.drawnCard
	p.Hand[*pos].FaceUp = true

	r.deck.Discard(old)
	r.drawnCard = nil
	r.advanceTurn()
	return old, nil
}

// discardDrawn 直接弃掉待处理牌（需持锁）
func (r *Room) discardDrawn(playerID string) error {
	if err := r.checkTurn(playerID); err != nil {
		return err
	}
	if r.drawnCard == nil {
		return apperrors.ErrNoDrawnCard
	}

	r.deck.Discard(r.drawnCard)
	r.drawnCard = nil
	r.advanceTurn()
	return nil
}

// removePlayer 玩家离开（需持锁）
// 房间强制回到 WAITING；轮转指针被截断时收敛到 0
func (r *Room) removePlayer(playerID string) (name string, empty bool) {
	p, ok := r.players[playerID]
	if !ok {
		return "", len(r.players) == 0
	}
	name = p.Name

	delete(r.players, playerID)
	r.joinOrder = removeID(r.joinOrder, playerID)
	r.turnOrder = removeID(r.turnOrder, playerID)
	if r.turnIndex >= len(r.turnOrder) {
		r.turnIndex = 0
	}
	r.status = StatusWaiting

	return name, len(r.players) == 0
}

// Scores 结算入口：按玩家汇总手牌分值
// 目前没有任何胜负条件触发 ENDED，保留给将来的回合结算
func (r *Room) Scores() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	scores := make(map[string]int, len(r.players))
	for id, p := range r.players {
		total := 0
		for _, c := range p.Hand {
			total += c.ScoreValue()
		}
		scores[id] = total
	}
	return scores
}

// broadcast 给房间内所有玩家发消息（需持锁）
// 发送是尽力而为：单个接收方失败不影响其他人
func (r *Room) broadcast(msg *protocol.Message) {
	for _, p := range r.players {
		p.Client.SendMessage(msg)
	}
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
