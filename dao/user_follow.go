package dao

import (
	"Linkup/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

// IsFollowing 检查是否已关注
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	var follow models.UserFollow
	err := d.Db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ? AND status = 1", followerID, followeeID).
		First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateEdge 建立关注边。返回是否真的新建了边，已在关注中返回 false，
// RowsAffected 作为并发下的判定依据，计数只在返回 true 时调整。
func (d *UserFollowDAO) CreateEdge(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	now := time.Now()

	// 有历史记录则把 status 从 0 翻到 1
	res := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ? AND followee_id = ? AND status = 0", followerID, followeeID).
		Updates(map[string]any{
			"status":     1,
			"updated_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// 已在关注中
	active, err := d.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return false, err
	}
	if active {
		return false, nil
	}

	// 无记录则插入，唯一索引冲突说明并发下已被建立
	follow := models.UserFollow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		Status:     1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = d.Db.WithContext(ctx).Create(&follow).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteEdge 取消关注边。返回是否真的取消了一条关注中的边。
func (d *UserFollowDAO) DeleteEdge(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ? AND followee_id = ? AND status = 1", followerID, followeeID).
		Updates(map[string]any{
			"status":     0,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetFollowerCount 获取粉丝数
func (d *UserFollowDAO) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("followee_id = ? AND status = 1", userID).
		Count(&count).Error
	return count, err
}

// GetFollowingCount 获取关注数
func (d *UserFollowDAO) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ? AND status = 1", userID).
		Count(&count).Error
	return count, err
}

// GetFollowingList 获取用户关注的用户列表（按关注时间倒序）
func (d *UserFollowDAO) GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error) {
	var follows []*models.FollowingQueryResult
	var total int64

	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ? AND status = 1", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	// 联接用户表获取用户信息，按创建时间倒序
	err = d.Db.WithContext(ctx).
		Table("user_follow uf").
		Select("u.id as user_id, u.nickname, u.avatar, uf.created_at as follow_time").
		Joins("LEFT JOIN users u ON uf.followee_id = u.id").
		Where("uf.follower_id = ? AND uf.status = 1", userID).
		Order("uf.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&follows).Error

	return follows, total, err
}
