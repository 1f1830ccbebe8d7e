package service

import (
	"Linkup/models"
	"Linkup/types"
	"context"
)

// 存储接口由 dao 层实现，service 只依赖接口，测试用内存实现替换。

type UserStore interface {
	ExistsById(ctx context.Context, userID uint64) (bool, error)
}

type FollowStore interface {
	IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error)
	// CreateEdge 返回是否真的新建了边
	CreateEdge(ctx context.Context, followerID, followeeID uint64) (bool, error)
	// DeleteEdge 返回是否真的删除了边
	DeleteEdge(ctx context.Context, followerID, followeeID uint64) (bool, error)
	GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error)
}

type ConnectionStore interface {
	Exists(ctx context.Context, userA, userB uint64) (bool, error)
	CreateIfAbsent(ctx context.Context, userA, userB uint64) (bool, error)
	Delete(ctx context.Context, userA, userB uint64) (bool, error)
	ListForUser(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error)
}

type RequestStore interface {
	HasPending(ctx context.Context, senderID, receiverID uint64) (bool, error)
	CreateIfAbsent(ctx context.Context, senderID, receiverID uint64) (bool, error)
	DeletePending(ctx context.Context, senderID, receiverID uint64) (bool, error)
	ListIncoming(ctx context.Context, receiverID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error)
}

type StatsStore interface {
	GetOrCreate(ctx context.Context, userID uint64) (*models.UserStats, error)
	GetByUserID(ctx context.Context, userID uint64) (*models.UserStats, error)
	IncrFollowerCount(ctx context.Context, userID uint64, delta int) error
	IncrFollowingCount(ctx context.Context, userID uint64, delta int) error
	IncrConnectionCount(ctx context.Context, userID uint64, delta int) error
}

// RelationshipCache 状态缓存与变更通知，全部尽力而为
type RelationshipCache interface {
	GetStatus(ctx context.Context, actorID, otherID uint64) (*types.RelationshipStatus, bool)
	SetStatus(ctx context.Context, actorID, otherID uint64, status *types.RelationshipStatus)
	InvalidatePair(ctx context.Context, userA, userB uint64)
	PublishEvent(ctx context.Context, evt *types.RelationshipEvent)
}
