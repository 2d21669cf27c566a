package handlers

import (
	"context"
	"errors"

	"github.com/palemoky/kaboom/internal/apperrors"
	"github.com/palemoky/kaboom/internal/network/server/types"
	"github.com/palemoky/kaboom/internal/protocol"
	"github.com/palemoky/kaboom/internal/protocol/codec"
)

// handleJoinGame 处理加入牌局
func (h *Handler) handleJoinGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.JoinGamePayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if payload.Name != "" {
		client.SetName(payload.Name)
	}

	if err := h.server.GetRoomManager().Join(client, payload.Name); err != nil {
		h.sendGameError(client, err)
		return
	}

	h.recordStats(func(ctx context.Context) error {
		return h.server.GetStats().RecordJoin(ctx, client.GetID(), client.GetName())
	})
}

// handleDrawCard 处理摸牌
func (h *Handler) handleDrawCard(client types.ClientInterface) {
	if err := h.server.GetRoomManager().DrawCard(client); err != nil {
		h.sendGameError(client, err)
		return
	}

	h.recordStats(func(ctx context.Context) error {
		return h.server.GetStats().RecordDraw(ctx, client.GetID())
	})
}

// handleReplaceCard 处理替换手牌
func (h *Handler) handleReplaceCard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.ReplaceCardPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.server.GetRoomManager().ReplaceCard(client, payload.Position); err != nil {
		h.sendGameError(client, err)
		return
	}

	h.recordStats(func(ctx context.Context) error {
		return h.server.GetStats().RecordTurn(ctx, client.GetID())
	})
}

// handleDiscardDrawnCard 处理弃掉摸到的牌
func (h *Handler) handleDiscardDrawnCard(client types.ClientInterface) {
	if err := h.server.GetRoomManager().DiscardDrawn(client); err != nil {
		h.sendGameError(client, err)
		return
	}

	h.recordStats(func(ctx context.Context) error {
		return h.server.GetStats().RecordTurn(ctx, client.GetID())
	})
}

// sendGameError 把游戏错误只回给违规的连接
func (h *Handler) sendGameError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(codec.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
