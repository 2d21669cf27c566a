package room

import (
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/palemoky/kaboom/internal/apperrors"
	"github.com/palemoky/kaboom/internal/protocol"
	"github.com/palemoky/kaboom/internal/protocol/codec"
)

const (
	// 房间号长度
	roomCodeLength = 6
	// 房间号字符集
	roomCodeChars = "0123456789"
)

// RoomManager 房间注册表 + 匹配
// 注册表锁只覆盖 选房/建房/销毁，房间内部的修改由各房间自己的锁串行化，
// 不同房间完全并行
type RoomManager struct {
	rooms map[string]*Room
	mu    sync.RWMutex
}

// NewRoomManager 创建房间管理器
func NewRoomManager() *RoomManager {
	return &RoomManager{
		rooms: make(map[string]*Room),
	}
}

// Join 加入牌局：挑一个未满的房间，没有就新建
// 选房、建房和入座在注册表锁内完成，两个并发加入不会挤进同一个满员房间
func (rm *RoomManager) Join(client ClientInterface, name string) error {
	rm.mu.Lock()

	var room *Room
	for _, r := range rm.rooms {
		r.mu.Lock()
		if !r.isFull() && r.status == StatusWaiting {
			room = r
			break // 持有该房间的锁离开循环
		}
		r.mu.Unlock()
	}

	if room == nil {
		room = newRoom(rm.generateRoomCode())
		rm.rooms[room.ID] = room
		room.mu.Lock()
		log.Printf("🏠 房间 %s 已创建", room.ID)
	}
	rm.mu.Unlock()
	defer room.mu.Unlock()

	if room.isFull() {
		return apperrors.ErrRoomFull
	}

	if name == "" {
		name = fmt.Sprintf("Guest-%d", len(room.players)+1)
	}
	room.addPlayer(client, name)
	log.Printf("👤 玩家 %s 加入房间 %s (%d/%d)", name, room.ID, len(room.players), MaxPlayers)

	if room.isFull() {
		room.startGame()
		first := room.players[room.turnOrder[0]].Name
		room.broadcast(codec.MustNewMessage(protocol.MsgGameMessage, protocol.GameMessagePayload{
			Text: fmt.Sprintf("Game starting! %s goes first.", first),
		}))
		log.Printf("🎮 房间 %s 开局，%s 先手", room.ID, first)
	}

	room.broadcastState()
	return nil
}

// DrawCard 处理摸牌
func (rm *RoomManager) DrawCard(client ClientInterface) error {
	room := rm.roomOf(client)
	if room == nil {
		return apperrors.ErrNotInRoom
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	c, err := room.drawCard(client.GetID())
	if err != nil {
		return err
	}
	if c == nil {
		// 牌已耗尽：只发一条房间通知，不算错误，不轮转
		room.broadcast(codec.MustNewMessage(protocol.MsgGameMessage, protocol.GameMessagePayload{
			Text: "Deck is empty! Game might be nearing its end.",
		}))
		return nil
	}

	name := room.players[client.GetID()].Name
	room.broadcast(codec.MustNewMessage(protocol.MsgGameMessage, protocol.GameMessagePayload{
		Text: fmt.Sprintf("%s drew a %s. Action required.", name, c.DisplayName()),
	}))
	room.broadcastState()
	return nil
}

// ReplaceCard 处理替换手牌
func (rm *RoomManager) ReplaceCard(client ClientInterface, pos *int) error {
	room := rm.roomOf(client)
	if room == nil {
		return apperrors.ErrNotInRoom
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if _, err := room.replaceCard(client.GetID(), pos); err != nil {
		return err
	}

	name := room.players[client.GetID()].Name
	room.broadcast(codec.MustNewMessage(protocol.MsgGameMessage, protocol.GameMessagePayload{
		Text: fmt.Sprintf("%s replaced a card at position %d. Turn over.", name, *pos),
	}))
	room.broadcastState()
	return nil
}

// DiscardDrawn 处理弃掉摸到的牌
func (rm *RoomManager) DiscardDrawn(client ClientInterface) error {
	room := rm.roomOf(client)
	if room == nil {
		return apperrors.ErrNotInRoom
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if err := room.discardDrawn(client.GetID()); err != nil {
		return err
	}

	name := room.players[client.GetID()].Name
	room.broadcast(codec.MustNewMessage(protocol.MsgGameMessage, protocol.GameMessagePayload{
		Text: fmt.Sprintf("%s discarded the drawn card. Turn over.", name),
	}))
	room.broadcastState()
	return nil
}

// HandleDisconnect 玩家断线：移出房间，房间空了就销毁
// 锁顺序恒为 注册表 → 房间，销毁和并发加入不会竞争同一个空房间
func (rm *RoomManager) HandleDisconnect(client ClientInterface) {
	roomID := client.GetRoom()
	if roomID == "" {
		return
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, exists := rm.rooms[roomID]
	if !exists {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	name, empty := room.removePlayer(client.GetID())
	client.SetRoom("")

	if empty {
		delete(rm.rooms, roomID)
		log.Printf("🏠 房间 %s 已解散", roomID)
		return
	}

	room.broadcast(codec.MustNewMessage(protocol.MsgGameMessage, protocol.GameMessagePayload{
		Text: fmt.Sprintf("Player %s disconnected. Waiting for players.", name),
	}))
	room.broadcastState()

	log.Printf("👋 玩家 %s 离开房间 %s", name, roomID)
}

// GetRoom 获取房间（主要用于测试）
func (rm *RoomManager) GetRoom(id string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[id]
}

// RoomCount 当前房间数
func (rm *RoomManager) RoomCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.rooms)
}

// roomOf 通过连接找到所在房间
func (rm *RoomManager) roomOf(client ClientInterface) *Room {
	id := client.GetRoom()
	if id == "" {
		return nil
	}
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[id]
}

// generateRoomCode 生成唯一房间号（需持注册表锁）
func (rm *RoomManager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.Intn(len(roomCodeChars))]
		}
		codeStr := "game-" + string(code)
		if _, exists := rm.rooms[codeStr]; !exists {
			return codeStr
		}
	}
}

// mustStateMessage 包装一条状态更新消息
func mustStateMessage(state protocol.GameStatePayload) *protocol.Message {
	return codec.MustNewMessage(protocol.MsgGameStateUpdate, state)
}
