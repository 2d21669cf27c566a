package handlers

import (
	"context"
	"log"
	"time"

	"github.com/palemoky/kaboom/internal/network/server/types"
	"github.com/palemoky/kaboom/internal/protocol"
	"github.com/palemoky/kaboom/internal/protocol/codec"
)

// handleGetStats 处理个人统计查询
func (h *Handler) handleGetStats(client types.ClientInterface) {
	store := h.server.GetStats()
	if store == nil {
		client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, "Stats are not enabled on this server."))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	stats, err := store.GetPlayerStats(ctx, client.GetID())
	if err != nil {
		log.Printf("查询统计失败: %v", err)
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeUnknown))
		return
	}

	result := protocol.StatsResultPayload{
		PlayerID:   client.GetID(),
		PlayerName: client.GetName(),
	}
	if stats != nil {
		result.GamesJoined = stats.GamesJoined
		result.CardsDrawn = stats.CardsDrawn
		result.TurnsPlayed = stats.TurnsPlayed
		result.LastPlayedAt = stats.LastPlayedAt
	}

	client.SendMessage(codec.MustNewMessage(protocol.MsgStatsResult, result))
}

// recordStats 异步记一条统计，未启用时是空操作
func (h *Handler) recordStats(record func(context.Context) error) {
	if h.server.GetStats() == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := record(ctx); err != nil {
			log.Printf("写入统计失败: %v", err)
		}
	}()
}
