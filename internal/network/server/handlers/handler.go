package handlers

import (
	"log"

	"github.com/palemoky/kaboom/internal/network/server/types"
	"github.com/palemoky/kaboom/internal/protocol"
	"github.com/palemoky/kaboom/internal/protocol/codec"
)

// Handler 消息处理器
type Handler struct {
	server types.ServerContext
}

// NewHandler 创建处理器
func NewHandler(s types.ServerContext) *Handler {
	return &Handler{server: s}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	switch msg.Type {
	// 连接操作
	case protocol.MsgPing:
		h.handlePing(client, msg)

	// 牌局操作
	case protocol.MsgJoinGame:
		h.handleJoinGame(client, msg)
	case protocol.MsgDrawCard:
		h.handleDrawCard(client)
	case protocol.MsgReplaceCard:
		h.handleReplaceCard(client, msg)
	case protocol.MsgDiscardDrawnCard:
		h.handleDiscardDrawnCard(client)

	// 位置同步操作
	case protocol.MsgPlayerData:
		h.handlePlayerData(client, msg)

	// 统计
	case protocol.MsgGetStats:
		h.handleGetStats(client)

	default:
		log.Printf("⚠️  未知消息类型: '%s' (玩家 ID: %s)", msg.Type, client.GetID())
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}
