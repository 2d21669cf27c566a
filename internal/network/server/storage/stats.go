package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key
const playerStatsKey = "player:stats:"

// PlayerStats 玩家游玩统计
// 只记录聚合计数，牌局状态本身不落盘
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	GamesJoined int `json:"games_joined"` // 加入牌局次数
	CardsDrawn  int `json:"cards_drawn"`  // 摸牌次数
	TurnsPlayed int `json:"turns_played"` // 完成回合数（替换或弃牌）

	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64 `json:"created_at"`     // 首次游戏时间
}

// StatsStore 基于 Redis 的统计存储
type StatsStore struct {
	redis *redis.Client
}

// NewStatsStore 创建统计存储
func NewStatsStore(client *redis.Client) *StatsStore {
	return &StatsStore{redis: client}
}

// GetPlayerStats 获取玩家统计，不存在时返回 (nil, nil)
func (s *StatsStore) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	data, err := s.redis.Get(ctx, playerStatsKey+playerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SavePlayerStats 保存玩家统计
func (s *StatsStore) SavePlayerStats(ctx context.Context, stats *PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, playerStatsKey+stats.PlayerID, data, 0).Err()
}

// RecordJoin 记录一次加入牌局
func (s *StatsStore) RecordJoin(ctx context.Context, playerID, playerName string) error {
	return s.update(ctx, playerID, playerName, func(stats *PlayerStats) {
		stats.GamesJoined++
	})
}

// RecordDraw 记录一次摸牌
func (s *StatsStore) RecordDraw(ctx context.Context, playerID string) error {
	return s.update(ctx, playerID, "", func(stats *PlayerStats) {
		stats.CardsDrawn++
	})
}

// RecordTurn 记录一个完成的回合
func (s *StatsStore) RecordTurn(ctx context.Context, playerID string) error {
	return s.update(ctx, playerID, "", func(stats *PlayerStats) {
		stats.TurnsPlayed++
	})
}

// update 读改写一条统计记录
func (s *StatsStore) update(ctx context.Context, playerID, playerName string, apply func(*PlayerStats)) error {
	stats, err := s.GetPlayerStats(ctx, playerID)
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	if stats == nil {
		stats = &PlayerStats{
			PlayerID:  playerID,
			CreatedAt: now,
		}
	}
	if playerName != "" {
		stats.PlayerName = playerName
	}

	apply(stats)
	stats.LastPlayedAt = now

	return s.SavePlayerStats(ctx, stats)
}
