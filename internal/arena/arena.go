// Package arena 实现与牌局完全独立的位置同步子系统：
// 一张 连接ID → 最新位置 的平面表，每次更新原样回播给其他所有连接。
// 客户端上报的数据不做校验直接信任（last writer wins）。
package arena

import (
	"log"
	"sync"

	"github.com/palemoky/kaboom/internal/protocol"
	"github.com/palemoky/kaboom/internal/protocol/codec"
)

// 出生点默认值
const (
	SpawnX   = 400
	SpawnY   = 300
	SpawnDir = "down"
)

// ClientInterface 子系统对连接的最小依赖
type ClientInterface interface {
	GetID() string
	SendMessage(msg *protocol.Message)
}

// Arena 位置注册表
type Arena struct {
	players map[string]protocol.PlayerPosition
	clients map[string]ClientInterface
	mu      sync.RWMutex
}

// NewArena 创建位置注册表
func NewArena() *Arena {
	return &Arena{
		players: make(map[string]protocol.PlayerPosition),
		clients: make(map[string]ClientInterface),
	}
}

// HandleConnect 新连接：分配出生点，发 ID 和全量快照，再通知其他人
func (a *Arena) HandleConnect(client ClientInterface) {
	a.mu.Lock()

	id := client.GetID()
	a.players[id] = protocol.PlayerPosition{X: SpawnX, Y: SpawnY, Dir: SpawnDir}
	a.clients[id] = client

	// 快照在锁内复制，发送在锁外进行
	snapshot := make(map[string]protocol.PlayerPosition, len(a.players))
	for pid, pos := range a.players {
		snapshot[pid] = pos
	}
	others := a.othersLocked(id)
	a.mu.Unlock()

	client.SendMessage(codec.MustNewMessage(protocol.MsgYourID, protocol.YourIDPayload{ID: id}))
	client.SendMessage(codec.MustNewMessage(protocol.MsgInitialState, protocol.InitialStatePayload{Players: snapshot}))

	msg := codec.MustNewMessage(protocol.MsgPlayerConnected, protocol.PlayerConnectedPayload{ID: id})
	for _, c := range others {
		c.SendMessage(msg)
	}

	log.Printf("🕹️ 玩家 %s 进入同步区 (在线 %d)", id, len(snapshot))
}

// HandleUpdate 位置上报：只合并出现的字段，缺失字段保留旧值，再回播给其他人
func (a *Arena) HandleUpdate(client ClientInterface, data *protocol.PlayerDataPayload) {
	id := client.GetID()

	a.mu.Lock()
	pos, ok := a.players[id]
	if !ok {
		a.mu.Unlock()
		return
	}

	if data.X != nil {
		pos.X = *data.X
	}
	if data.Y != nil {
		pos.Y = *data.Y
	}
	if data.Dir != nil {
		pos.Dir = *data.Dir
	}
	a.players[id] = pos

	others := a.othersLocked(id)
	a.mu.Unlock()

	msg := codec.MustNewMessage(protocol.MsgPlayerMoved, protocol.PlayerMovedPayload{ID: id, Data: pos})
	for _, c := range others {
		c.SendMessage(msg)
	}
}

// HandleDisconnect 连接断开：删除记录并通知其他人
func (a *Arena) HandleDisconnect(client ClientInterface) {
	id := client.GetID()

	a.mu.Lock()
	if _, ok := a.players[id]; !ok {
		a.mu.Unlock()
		return
	}
	delete(a.players, id)
	delete(a.clients, id)
	others := a.othersLocked(id)
	a.mu.Unlock()

	msg := codec.MustNewMessage(protocol.MsgPlayerDisconnected, protocol.PlayerDisconnectedPayload{ID: id})
	for _, c := range others {
		c.SendMessage(msg)
	}

	log.Printf("🕹️ 玩家 %s 离开同步区", id)
}

// Position 查询当前位置（主要用于测试）
func (a *Arena) Position(id string) (protocol.PlayerPosition, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	pos, ok := a.players[id]
	return pos, ok
}

// Count 在线人数
func (a *Arena) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.players)
}

// othersLocked 除自己外的所有连接（需持锁）
func (a *Arena) othersLocked(selfID string) []ClientInterface {
	others := make([]ClientInterface, 0, len(a.clients))
	for id, c := range a.clients {
		if id != selfID {
			others = append(others, c)
		}
	}
	return others
}
