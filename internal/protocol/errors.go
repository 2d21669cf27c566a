package protocol

// 错误码
const (
	ErrCodeUnknown     = 1000
	ErrCodeInvalidMsg  = 1001
	ErrCodeRoomFull    = 2002
	ErrCodeNotInRoom   = 2003
	ErrCodeGameNotRdy  = 3001 // 游戏未开始或不是你的回合（不区分细节）
	ErrCodeCardPending = 3003 // 已有待处理的摸牌
	ErrCodeNoDrawnCard = 3004 // 没有待处理的摸牌
	ErrCodeInvalidPos  = 3005 // 手牌位置越界
)

// ErrorMessages 错误码对应的消息（发给浏览器客户端，保持英文）
var ErrorMessages = map[int]string{
	ErrCodeUnknown:     "Unknown error.",
	ErrCodeInvalidMsg:  "Invalid message format.",
	ErrCodeRoomFull:    "Room is full. Try again later.",
	ErrCodeNotInRoom:   "You are not in a game.",
	ErrCodeGameNotRdy:  "It is not your turn, or the game is not ready.",
	ErrCodeCardPending: "You already have a drawn card to resolve.",
	ErrCodeNoDrawnCard: "No card has been drawn.",
	ErrCodeInvalidPos:  "Invalid hand position specified (must be 0-3).",
}
