package dao

import (
	"Linkup/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConnectionDAO struct {
	Repo[models.Connection]
}

func NewConnectionDAO(db *gorm.DB) *ConnectionDAO {
	return &ConnectionDAO{
		Repo: NewRepo[models.Connection](db),
	}
}

// Exists 判断两个用户之间是否已建立联系
func (d *ConnectionDAO) Exists(ctx context.Context, userA, userB uint64) (bool, error) {
	a, b := models.NormalizePair(userA, userB)
	return d.IsExist(ctx, "user_a_id = ? AND user_b_id = ?", a, b)
}

// CreateIfAbsent 建立联系，已存在则不重复插入。
// 返回是否真的新建了联系，并发下重复接受只会有一方返回 true。
func (d *ConnectionDAO) CreateIfAbsent(ctx context.Context, userA, userB uint64) (bool, error) {
	a, b := models.NormalizePair(userA, userB)
	conn := models.Connection{
		UserAID:   a,
		UserBID:   b,
		CreatedAt: time.Now(),
	}
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&conn)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete 解除联系。返回是否真的删除了一条联系。
func (d *ConnectionDAO) Delete(ctx context.Context, userA, userB uint64) (bool, error) {
	a, b := models.NormalizePair(userA, userB)
	res := d.Db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		Delete(&models.Connection{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListForUser 获取用户的联系人列表（按建立时间倒序）
func (d *ConnectionDAO) ListForUser(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error) {
	var items []*models.FollowingQueryResult
	var total int64

	err := d.Db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = d.Db.WithContext(ctx).
		Table("connection c").
		Select("u.id as user_id, u.nickname, u.avatar, c.created_at as follow_time").
		Joins("JOIN users u ON u.id = IF(c.user_a_id = ?, c.user_b_id, c.user_a_id)", userID).
		Where("c.user_a_id = ? OR c.user_b_id = ?", userID, userID).
		Order("c.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&items).Error

	return items, total, err
}
