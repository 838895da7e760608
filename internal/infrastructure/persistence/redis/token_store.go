package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// TokenStore 登录会话与Token黑名单
// 设计说明：
// 1. JWT是无状态的，服务端无法主动让Token失效，登出时把Token放进黑名单
// 2. 黑名单过期时间 = Token剩余有效期，过期后Redis自动删除
// 3. Key设计：session:{username}、blacklist:{token}
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore 创建Token存储
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func sessionKey(username string) string {
	return fmt.Sprintf("session:%s", username)
}

func blacklistKey(token string) string {
	return fmt.Sprintf("blacklist:%s", token)
}

// SaveSession 记录登录信息（登录时间、客户端IP）
// 过期时间与Refresh Token一致
func (s *TokenStore) SaveSession(ctx context.Context, username string, data map[string]any, ttl time.Duration) error {
	key := sessionKey(username)

	// Pipeline：HSET + EXPIRE 一次往返
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, data)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.ErrCodeRedisError, "保存会话失败")
	}
	return nil
}

// GetSession 获取登录信息，不存在时返回ErrUnauthorized
func (s *TokenStore) GetSession(ctx context.Context, username string) (map[string]string, error) {
	result, err := s.client.HGetAll(ctx, sessionKey(username)).Result()
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeRedisError, "获取会话失败")
	}
	if len(result) == 0 {
		return nil, apperrors.ErrUnauthorized
	}
	return result, nil
}

// DeleteSession 删除登录信息
func (s *TokenStore) DeleteSession(ctx context.Context, username string) error {
	if err := s.client.Del(ctx, sessionKey(username)).Err(); err != nil {
		return apperrors.WrapWithCode(err, apperrors.ErrCodeRedisError, "删除会话失败")
	}
	return nil
}

// AddToBlacklist 将Token加入黑名单
// ttl<=0 说明Token已经过期，不需要再记录
func (s *TokenStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, blacklistKey(token), "revoked", ttl).Err(); err != nil {
		return apperrors.WrapWithCode(err, apperrors.ErrCodeRedisError, "添加Token到黑名单失败")
	}
	return nil
}

// IsInBlacklist 检查Token是否在黑名单中
func (s *TokenStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	exists, err := s.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, apperrors.WrapWithCode(err, apperrors.ErrCodeRedisError, "检查黑名单失败")
	}
	return exists > 0, nil
}
