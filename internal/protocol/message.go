package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 牌局操作
	MsgJoinGame         MessageType = "join_game"          // 加入牌局（自动匹配房间）
	MsgDrawCard         MessageType = "draw_card"          // 摸牌
	MsgReplaceCard      MessageType = "replace_card"       // 用摸到的牌替换手牌
	MsgDiscardDrawnCard MessageType = "discard_drawn_card" // 直接弃掉摸到的牌

	// 位置同步操作
	MsgPlayerData MessageType = "player_data" // 上报自己的位置

	// 统计
	MsgGetStats MessageType = "get_stats" // 获取个人统计
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 牌局流程
	MsgGameStateUpdate MessageType = "game_state_update" // 完整游戏状态（按观察者脱敏）
	MsgGameMessage     MessageType = "game_message"      // 房间内文字通知

	// 位置同步
	MsgYourID             MessageType = "your_id"             // 告知客户端自己的 ID
	MsgInitialState       MessageType = "initial_state"       // 当前所有玩家位置快照
	MsgPlayerConnected    MessageType = "player_connected"    // 新玩家加入
	MsgPlayerMoved        MessageType = "player_moved"        // 玩家位置更新
	MsgPlayerDisconnected MessageType = "player_disconnected" // 玩家离开

	// 统计
	MsgStatsResult MessageType = "stats_result" // 个人统计结果

	// 错误
	MsgError MessageType = "error" // 错误消息
)
