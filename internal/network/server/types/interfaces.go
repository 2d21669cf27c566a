package types

import (
	"github.com/palemoky/kaboom/internal/arena"
	"github.com/palemoky/kaboom/internal/game/room"
	"github.com/palemoky/kaboom/internal/network/server/storage"
	"github.com/palemoky/kaboom/internal/protocol"
)

// ClientInterface 客户端连接的抽象，方便测试替身
type ClientInterface interface {
	GetID() string
	GetName() string
	SetName(name string)
	GetRoom() string
	SetRoom(roomID string)
	SendMessage(msg *protocol.Message)
	Close()
}

// ServerContext 处理器依赖的服务器上下文
type ServerContext interface {
	GetRoomManager() *room.RoomManager
	GetArena() *arena.Arena
	GetStats() *storage.StatsStore // 未配置 Redis 时为 nil
	GetOnlineCount() int
}
