package repository

import (
	"context"

	"github.com/go-redis/redis/v8"
)

const leaderboardKey = "leaderboard:stars"

// LeaderboardEntry 排行榜里的一行
type LeaderboardEntry struct {
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	TotalStars int    `json:"totalStars"`
	Rank       int    `json:"rank"`
}

// LeaderboardRepository 用 Redis ZSet 维护总星数排行
type LeaderboardRepository struct {
	Redis *redis.Client
}

func NewLeaderboardRepository(rdb *redis.Client) *LeaderboardRepository {
	return &LeaderboardRepository{Redis: rdb}
}

// SetScore 写入用户当前总星数。星数是全量重算的结果，直接覆盖
func (r *LeaderboardRepository) SetScore(ctx context.Context, userID string, totalStars int) error {
	return r.Redis.ZAdd(ctx, leaderboardKey, &redis.Z{
		Score:  float64(totalStars),
		Member: userID,
	}).Err()
}

func (r *LeaderboardRepository) Remove(ctx context.Context, userID string) error {
	return r.Redis.ZRem(ctx, leaderboardKey, userID).Err()
}

// Top 取前 limit 名，分数从高到低
func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	zs, err := r.Redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		userID, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			UserID:     userID,
			TotalStars: int(z.Score),
			Rank:       i + 1,
		})
	}
	return entries, nil
}

// Rank 用户当前名次（1 起），不在榜上返回 0
func (r *LeaderboardRepository) Rank(ctx context.Context, userID string) (int, error) {
	rank, err := r.Redis.ZRevRank(ctx, leaderboardKey, userID).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(rank) + 1, nil
}
