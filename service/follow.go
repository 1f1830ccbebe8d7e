package service

import (
	"Linkup/models"
	"Linkup/types"
	"context"
	"time"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followeeID uint64) error
	Unfollow(ctx context.Context, followerID, followeeID uint64) error
	IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error)
	GetFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error)
}

type FollowService struct {
	FollowDAO     FollowStore
	ConnectionDAO ConnectionStore
	StatsDAO      StatsStore
	UserDAO       UserStore
	Cache         RelationshipCache
}

// Follow 关注用户。重复关注是幂等空操作，计数只在真的建边时调整。
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint64) error {
	// 不能关注自己
	if followerID == followeeID {
		return ErrInvalidTarget
	}

	// 校验被关注用户是否存在
	exist, err := s.UserDAO.ExistsById(ctx, followeeID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrUserNotFound
	}

	created, err := s.FollowDAO.CreateEdge(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !created {
		// 已经关注过，直接返回成功
		return nil
	}

	// 更新统计：被关注人的粉丝数+1，关注人的关注数+1
	if err := s.StatsDAO.IncrFollowerCount(ctx, followeeID, 1); err != nil {
		return err
	}
	if err := s.StatsDAO.IncrFollowingCount(ctx, followerID, 1); err != nil {
		return err
	}

	s.Cache.InvalidatePair(ctx, followerID, followeeID)
	s.Cache.PublishEvent(ctx, &types.RelationshipEvent{
		Type:      types.EventFollowerAdded,
		ActorID:   followerID,
		TargetID:  followeeID,
		Timestamp: time.Now().Unix(),
	})

	return nil
}

// Unfollow 取消关注。已建立联系时必须先解除联系，
// 由解除联系的 keep_following 决定关注边的去留。
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uint64) error {
	if followerID == followeeID {
		return ErrInvalidTarget
	}

	connected, err := s.ConnectionDAO.Exists(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if connected {
		return ErrCannotUnfollowConnected
	}

	deleted, err := s.FollowDAO.DeleteEdge(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !deleted {
		// 没有关注过，直接返回成功
		return nil
	}

	// 更新统计：被关注人的粉丝数-1，关注人的关注数-1
	if err := s.StatsDAO.IncrFollowerCount(ctx, followeeID, -1); err != nil {
		return err
	}
	if err := s.StatsDAO.IncrFollowingCount(ctx, followerID, -1); err != nil {
		return err
	}

	s.Cache.InvalidatePair(ctx, followerID, followeeID)
	s.Cache.PublishEvent(ctx, &types.RelationshipEvent{
		Type:      types.EventFollowerRemoved,
		ActorID:   followerID,
		TargetID:  followeeID,
		Timestamp: time.Now().Unix(),
	})

	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
}

func (s *FollowService) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if stats == nil {
		return 0, nil
	}
	return int64(stats.FollowerCount), nil
}

func (s *FollowService) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if stats == nil {
		return 0, nil
	}
	return int64(stats.FollowingCount), nil
}

func (s *FollowService) GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error) {
	return s.FollowDAO.GetFollowingList(ctx, userID, limit, offset)
}
