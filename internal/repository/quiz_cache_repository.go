package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// QuizCacheRepository 把刚生成的答卷暂存到 Redis，
// 提交时按 quizId 取回做服务端判分。条目带 TTL，过期即视为作废。
type QuizCacheRepository struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewQuizCacheRepository(rdb *redis.Client, ttl time.Duration) *QuizCacheRepository {
	return &QuizCacheRepository{Redis: rdb, TTL: ttl}
}

func quizCacheKey(userID, quizID string) string {
	return fmt.Sprintf("quiz:pending:%s:%s", userID, quizID)
}

// StoreAnswers 缓存 questionId -> 正确答案 的映射
func (r *QuizCacheRepository) StoreAnswers(ctx context.Context, userID, quizID string, answers map[string]string) error {
	data, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	return r.Redis.Set(ctx, quizCacheKey(userID, quizID), data, r.TTL).Err()
}

// TakeAnswers 取回并删除缓存的答案。缓存缺失（过期或从未生成）返回 nil 映射
func (r *QuizCacheRepository) TakeAnswers(ctx context.Context, userID, quizID string) (map[string]string, error) {
	key := quizCacheKey(userID, quizID)
	data, err := r.Redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// 一份答卷只判一次
	r.Redis.Del(ctx, key)

	var answers map[string]string
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
