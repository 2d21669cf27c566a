package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// JoinGamePayload 加入牌局请求
type JoinGamePayload struct {
	Name string `json:"name"` // 玩家昵称，为空时服务端生成 Guest-N
}

// ReplaceCardPayload 替换手牌请求
// Position 使用指针区分"未填写"和 0
type ReplaceCardPayload struct {
	Position *int `json:"position"`
}

// PlayerDataPayload 位置上报
// 三个字段都是指针：缺失的字段保留上一次的值，只合并出现的字段
type PlayerDataPayload struct {
	X   *float64 `json:"x,omitempty"`
	Y   *float64 `json:"y,omitempty"`
	Dir *string  `json:"dir,omitempty"`
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"` // 客户端发送的时间戳
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// GameMessagePayload 房间内文字通知
type GameMessagePayload struct {
	Text string `json:"text"`
}

// GameStatePayload 完整游戏状态（已按观察者脱敏）
type GameStatePayload struct {
	RoomID        string       `json:"room_id"`
	Status        string       `json:"status"`
	Players       []PlayerInfo `json:"players"`
	DeckCount     int          `json:"deck_count"`
	DiscardCount  int          `json:"discard_count"`
	DrawnCard     *CardInfo    `json:"drawn_card"` // 无待处理摸牌时为 null
	CurrentTurnID string       `json:"current_turn_sid"`
}

// YourIDPayload 告知客户端自己的 ID
type YourIDPayload struct {
	ID string `json:"id"`
}

// InitialStatePayload 当前所有玩家位置快照
type InitialStatePayload struct {
	Players map[string]PlayerPosition `json:"players"`
}

// PlayerConnectedPayload 新玩家加入通知
type PlayerConnectedPayload struct {
	ID string `json:"id"`
}

// PlayerMovedPayload 玩家位置更新通知
type PlayerMovedPayload struct {
	ID   string         `json:"id"`
	Data PlayerPosition `json:"data"`
}

// PlayerDisconnectedPayload 玩家离开通知
type PlayerDisconnectedPayload struct {
	ID string `json:"id"`
}

// StatsResultPayload 个人统计结果
type StatsResultPayload struct {
	PlayerID     string `json:"player_id"`
	PlayerName   string `json:"player_name"`
	GamesJoined  int    `json:"games_joined"`
	CardsDrawn   int    `json:"cards_drawn"`
	TurnsPlayed  int    `json:"turns_played"`
	LastPlayedAt int64  `json:"last_played_at"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// --- 通用数据结构 ---

// PlayerInfo 玩家信息
type PlayerInfo struct {
	ID              string     `json:"sid"`
	Name            string     `json:"name"`
	Hand            []CardInfo `json:"hand"`
	IsCurrentPlayer bool       `json:"is_current_player"`
}

// CardInfo 牌信息
// 对手的暗牌 Rank/Suit 会被替换成 "HIDDEN"，DisplayName 替换成 "??"
type CardInfo struct {
	Rank        string `json:"rank"`
	Suit        string `json:"suit,omitempty"`
	FaceUp      bool   `json:"is_face_up"`
	DisplayName string `json:"display_name"`
}

// PlayerPosition 玩家位置与朝向
type PlayerPosition struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Dir string  `json:"dir"`
}
