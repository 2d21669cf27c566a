package apperrors

import (
	"github.com/palemoky/kaboom/internal/protocol"
)

// GameError 游戏错误（房间和会话共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
// 所有错误只回给违规的连接，绝不广播到房间
var (
	ErrRoomFull    = &GameError{Code: protocol.ErrCodeRoomFull, Message: protocol.ErrorMessages[protocol.ErrCodeRoomFull]}
	ErrNotInRoom   = &GameError{Code: protocol.ErrCodeNotInRoom, Message: protocol.ErrorMessages[protocol.ErrCodeNotInRoom]}
	ErrGameNotRdy  = &GameError{Code: protocol.ErrCodeGameNotRdy, Message: protocol.ErrorMessages[protocol.ErrCodeGameNotRdy]}
	ErrCardPending = &GameError{Code: protocol.ErrCodeCardPending, Message: protocol.ErrorMessages[protocol.ErrCodeCardPending]}
	ErrNoDrawnCard = &GameError{Code: protocol.ErrCodeNoDrawnCard, Message: protocol.ErrorMessages[protocol.ErrCodeNoDrawnCard]}
	ErrInvalidPos  = &GameError{Code: protocol.ErrCodeInvalidPos, Message: protocol.ErrorMessages[protocol.ErrCodeInvalidPos]}
)
