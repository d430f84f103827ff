package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/qs3c/gym_go_server/internal/model"
)

const sessionKeyPrefix = "session:"

// Store 活跃会话存储。登录时把完整用户记录写入 Redis，
// 登出删除记录，Token 随之在服务端失效。
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a session store. ttlHours <= 0 falls back to 24h.
func NewStore(rdb *redis.Client, ttlHours int) *Store {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &Store{
		rdb: rdb,
		ttl: time.Duration(ttlHours) * time.Hour,
	}
}

// Save 写入活跃会话
func (s *Store) Save(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.rdb.Set(ctx, s.key(user.ID), data, s.ttl).Err()
}

// Get 读取活跃会话，不存在返回 (nil, nil)
func (s *Store) Get(ctx context.Context, userID int64) (*model.User, error) {
	val, err := s.rdb.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var user model.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &user, nil
}

// Delete 清除活跃会话（登出）
func (s *Store) Delete(ctx context.Context, userID int64) error {
	return s.rdb.Del(ctx, s.key(userID)).Err()
}

func (s *Store) key(userID int64) string {
	return fmt.Sprintf("%s%d", sessionKeyPrefix, userID)
}
