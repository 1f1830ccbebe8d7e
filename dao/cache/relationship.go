package cache

import (
	"Linkup/pkg/log"
	"Linkup/types"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EventChannel 关系变更通知频道。只是缓存失效信号，
// 不保证送达，客户端断线重连后需要重新拉取。
const EventChannel = "relationship:events"

// 状态缓存有效期
const statusTTL = 10 * time.Minute

type RelationshipStorage struct {
	redis *redis.Client
}

func NewRelationshipStorage(redis *redis.Client) *RelationshipStorage {
	return &RelationshipStorage{redis: redis}
}

func (c *RelationshipStorage) statusKey(actorID, otherID uint64) string {
	return fmt.Sprintf("rel:status:%d:%d", actorID, otherID)
}

// GetStatus 读取关系状态缓存，未命中返回 false
func (c *RelationshipStorage) GetStatus(ctx context.Context, actorID, otherID uint64) (*types.RelationshipStatus, bool) {
	val, err := c.redis.Get(ctx, c.statusKey(actorID, otherID)).Result()
	if err != nil {
		return nil, false
	}

	var status types.RelationshipStatus
	if err := json.Unmarshal([]byte(val), &status); err != nil {
		return nil, false
	}
	return &status, true
}

// SetStatus 写入关系状态缓存
func (c *RelationshipStorage) SetStatus(ctx context.Context, actorID, otherID uint64, status *types.RelationshipStatus) {
	data, err := json.Marshal(status)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, c.statusKey(actorID, otherID), data, statusTTL).Err(); err != nil {
		log.L.Warn("set relationship status cache", zap.Error(err))
	}
}

// InvalidatePair 删除两个方向的状态缓存
func (c *RelationshipStorage) InvalidatePair(ctx context.Context, userA, userB uint64) {
	err := c.redis.Del(ctx,
		c.statusKey(userA, userB),
		c.statusKey(userB, userA),
	).Err()
	if err != nil {
		log.L.Warn("invalidate relationship cache", zap.Error(err))
	}
}

// PublishEvent 发布关系变更通知（尽力而为）
func (c *RelationshipStorage) PublishEvent(ctx context.Context, evt *types.RelationshipEvent) {
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}
	if err := c.redis.Publish(ctx, EventChannel, data).Err(); err != nil {
		log.L.Warn("publish relationship event", zap.Error(err))
	}
}

// Subscribe 订阅关系变更通知
func (c *RelationshipStorage) Subscribe(ctx context.Context) *redis.PubSub {
	return c.redis.Subscribe(ctx, EventChannel)
}
