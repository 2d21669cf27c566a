package handlers

import (
	"log"

	"github.com/palemoky/kaboom/internal/network/server/types"
	"github.com/palemoky/kaboom/internal/protocol"
	"github.com/palemoky/kaboom/internal/protocol/codec"
)

// handlePlayerData 处理位置上报
// 畸形数据记日志后丢弃，不回错误也不广播
func (h *Handler) handlePlayerData(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.PlayerDataPayload](msg)
	if err != nil {
		log.Printf("⚠️  玩家 %s 位置数据畸形，已丢弃: %v", client.GetID(), err)
		return
	}

	h.server.GetArena().HandleUpdate(client, payload)
}
